package service

import (
	"fmt"
	"net/url"

	"github.com/atotto/clipboard"

	"github.com/horizone-blog/horizone/internal/logger"
	"github.com/horizone-blog/horizone/models"
)

// siteBaseURL is the canonical location posts are shared from.
const siteBaseURL = "https://horizone.example.com"

type shareService struct {
	logger *logger.Logger
}

// NewShareService constructs a [ShareService].
func NewShareService(logger *logger.Logger) ShareService {
	return &shareService{logger: logger}
}

// PostURL returns the canonical link to a post.
func PostURL(post models.Post) string {
	return siteBaseURL + "/post?id=" + url.QueryEscape(post.ID)
}

func (s *shareService) ShareURL(platform string, post models.Post) (string, error) {
	postURL := url.QueryEscape(PostURL(post))
	title := url.QueryEscape(post.Title)

	switch platform {
	case "twitter":
		return fmt.Sprintf("https://twitter.com/intent/tweet?url=%s&text=%s", postURL, title), nil
	case "facebook":
		return fmt.Sprintf("https://www.facebook.com/sharer/sharer.php?u=%s", postURL), nil
	case "linkedin":
		return fmt.Sprintf("https://www.linkedin.com/sharing/share-offsite/?url=%s", postURL), nil
	case "email":
		description := url.QueryEscape("Check out this article: " + post.Title)
		return fmt.Sprintf("mailto:?subject=%s&body=%s%%0A%%0A%s", title, description, postURL), nil
	default:
		return "", fmt.Errorf("unknown share platform: %s", platform)
	}
}

func (s *shareService) CopyLink(post models.Post) error {
	link := PostURL(post)
	if err := clipboard.WriteAll(link); err != nil {
		s.logger.Warn().Err(err).Msg("clipboard write failed")
		return err
	}

	s.logger.Debug().Str("url", link).Msg("link copied to clipboard")
	return nil
}
