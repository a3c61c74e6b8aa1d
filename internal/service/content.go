package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"

	"github.com/horizone-blog/horizone/internal/catalog"
	"github.com/horizone-blog/horizone/internal/config"
	"github.com/horizone-blog/horizone/internal/logger"
	"github.com/horizone-blog/horizone/internal/store"
	"github.com/horizone-blog/horizone/models"
)

// fallbackPostImage is used for posts created without an uploaded header.
const fallbackPostImage = "https://images.unsplash.com/photo-1515263487990-61b07816b324?q=80&w=2070&auto=format&fit=crop"

// Rate-limited actions. Each action has its own window.
const (
	actionComment    = "comment"
	actionCreatePost = "createPost"
)

const (
	maxTitleLength   = 200
	maxContentLength = 10000
	maxCommentLength = 2000
	maxRelatedPosts  = 3
)

type contentService struct {
	posts    store.PostRepository
	comments store.CommentRepository
	users    store.UserRepository
	auth     AuthService
	limiter  RateLimiter
	cfg      config.RateLimit
	logger   *logger.Logger
	now      func() time.Time
	newID    func() string
}

// NewContentService constructs a [ContentService] over the content
// repositories, using auth to resolve the acting user and limiter to bound
// write actions.
func NewContentService(posts store.PostRepository, comments store.CommentRepository, users store.UserRepository, auth AuthService, limiter RateLimiter, cfg config.RateLimit, logger *logger.Logger) ContentService {
	return &contentService{
		posts:    posts,
		comments: comments,
		users:    users,
		auth:     auth,
		limiter:  limiter,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
		newID:    func() string { return uuid.NewString() },
	}
}

func (c *contentService) MergedPosts(ctx context.Context) (map[string]models.Post, error) {
	merged := catalog.Posts()

	local, err := c.posts.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for id, post := range local {
		merged[id] = post
	}

	return merged, nil
}

func (c *contentService) GetPost(ctx context.Context, id string) (models.Post, error) {
	merged, err := c.MergedPosts(ctx)
	if err != nil {
		return models.Post{}, err
	}

	post, ok := merged[id]
	if !ok {
		return models.Post{}, ErrPostNotFound
	}
	return post, nil
}

func (c *contentService) CreatePost(ctx context.Context, title, category, content, imageDataURL string) (models.Post, error) {
	user, err := c.auth.CurrentUser(ctx)
	if err != nil {
		return models.Post{}, err
	}

	if !ValidateTextInput(title, maxTitleLength) {
		return models.Post{}, ErrInvalidTitle
	}
	if !ValidateTextInput(content, maxContentLength) {
		return models.Post{}, ErrInvalidContent
	}
	if category == "" {
		return models.Post{}, ErrMissingCategory
	}

	allowed, err := c.limiter.Allow(ctx, actionCreatePost, c.cfg.PostLimit, c.cfg.PostWindow)
	if err != nil {
		return models.Post{}, err
	}
	if !allowed {
		return models.Post{}, ErrRateLimited
	}

	image := imageDataURL
	if image == "" {
		image = fallbackPostImage
	}

	post := models.Post{
		ID:       Slugify(title),
		Title:    SanitizeInput(title),
		Author:   SanitizeInput(user.Name),
		Date:     c.now().Format("02 Jan 2006"),
		Category: SanitizeInput(category),
		Image:    image,
		Content:  content,
	}

	if err := c.posts.Save(ctx, post); err != nil {
		return models.Post{}, err
	}

	c.logger.Info().Str("id", post.ID).Str("author", post.Author).Msg("post created")
	return post, nil
}

func (c *contentService) SaveArticle(ctx context.Context, postID string) error {
	user, err := c.auth.CurrentUser(ctx)
	if err != nil {
		return err
	}

	if user.HasSaved(postID) {
		return nil
	}

	user.SavedArticles = append(user.SavedArticles, postID)
	return c.users.Update(ctx, user)
}

func (c *contentService) UnsaveArticle(ctx context.Context, postID string) error {
	user, err := c.auth.CurrentUser(ctx)
	if err != nil {
		return err
	}

	for i, saved := range user.SavedArticles {
		if saved == postID {
			user.SavedArticles = append(user.SavedArticles[:i], user.SavedArticles[i+1:]...)
			return c.users.Update(ctx, user)
		}
	}

	return nil
}

func (c *contentService) Comments(ctx context.Context, postID string) ([]models.Comment, error) {
	return c.comments.ListForPost(ctx, postID)
}

func (c *contentService) AddComment(ctx context.Context, postID, text string) (models.Comment, error) {
	user, err := c.auth.CurrentUser(ctx)
	if err != nil {
		return models.Comment{}, err
	}

	text = strings.TrimSpace(text)
	if !ValidateTextInput(text, maxCommentLength) {
		return models.Comment{}, ErrInvalidComment
	}

	allowed, err := c.limiter.Allow(ctx, actionComment, c.cfg.CommentLimit, c.cfg.CommentWindow)
	if err != nil {
		return models.Comment{}, err
	}
	if !allowed {
		return models.Comment{}, ErrRateLimited
	}

	comment := models.Comment{
		ID:     c.newID(),
		Author: SanitizeInput(user.Name),
		Text:   SanitizeInput(text),
		Date:   c.now(),
	}

	if err := c.comments.Append(ctx, postID, comment); err != nil {
		return models.Comment{}, err
	}

	return comment, nil
}

func (c *contentService) RelatedPosts(ctx context.Context, postID string) ([]models.Post, error) {
	merged, err := c.MergedPosts(ctx)
	if err != nil {
		return nil, err
	}

	current, ok := merged[postID]
	if !ok {
		return []models.Post{}, nil
	}

	currentKeywords := extractKeywords(strings.ToLower(StripHTML(current.Content)))

	type scoredPost struct {
		post  models.Post
		score float64
	}
	scored := make([]scoredPost, 0, len(merged)-1)

	for id, post := range merged {
		if id == postID {
			continue
		}

		var score float64
		if post.Category == current.Category {
			score += 50
		}
		if post.Author == current.Author {
			score += 20
		}

		postKeywords := extractKeywords(strings.ToLower(StripHTML(post.Content)))
		score += float64(keywordOverlap(currentKeywords, postKeywords)) * 5

		score += titleSimilarity(current.Title, post.Title) * 10

		scored = append(scored, scoredPost{post: post, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	related := make([]models.Post, 0, maxRelatedPosts)
	for _, sp := range scored {
		if len(related) == maxRelatedPosts {
			break
		}
		if sp.score > 0 {
			related = append(related, sp.post)
		}
	}

	return related, nil
}

// searchablePosts adapts the merged collection to the fuzzy matcher. Each
// entry concatenates the fields a reader would search by.
type searchablePosts struct {
	posts []models.Post
}

func (s searchablePosts) String(i int) string {
	p := s.posts[i]
	return strings.ToLower(strings.Join([]string{p.Title, StripHTML(p.Content), p.Author, p.Category}, " "))
}

func (s searchablePosts) Len() int { return len(s.posts) }

func (c *contentService) Search(ctx context.Context, query string) ([]models.Post, error) {
	merged, err := c.MergedPosts(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return []models.Post{}, nil
	}

	source := searchablePosts{posts: make([]models.Post, 0, len(merged))}
	for _, post := range merged {
		source.posts = append(source.posts, post)
	}
	// deterministic order so equal-score matches don't shuffle between calls
	sort.Slice(source.posts, func(i, j int) bool { return source.posts[i].ID < source.posts[j].ID })

	matches := fuzzy.FindFrom(query, source)

	results := make([]models.Post, 0, len(matches))
	for _, m := range matches {
		results = append(results, source.posts[m.Index])
	}
	return results, nil
}

// stopWords are skipped during keyword extraction.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "could": {}, "should": {}, "may": {},
	"might": {}, "must": {}, "can": {}, "this": {}, "that": {},
	"these": {}, "those": {},
}

// extractKeywords pulls up to 20 significant words (longer than 3 letters,
// not a stop word) from already-lowercased plain text.
func extractKeywords(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_')
	})

	keywords := make([]string, 0, 20)
	for _, word := range fields {
		if len(word) <= 3 {
			continue
		}
		if _, skip := stopWords[word]; skip {
			continue
		}
		keywords = append(keywords, word)
		if len(keywords) == 20 {
			break
		}
	}
	return keywords
}

func keywordOverlap(a, b []string) int {
	set := make(map[string]struct{}, len(b))
	for _, w := range b {
		set[w] = struct{}{}
	}

	count := 0
	for _, w := range a {
		if _, ok := set[w]; ok {
			count++
		}
	}
	return count
}

// titleSimilarity is the share of words the two titles have in common,
// relative to their combined vocabulary.
func titleSimilarity(a, b string) float64 {
	wordsA := strings.Fields(strings.ToLower(a))
	wordsB := strings.Fields(strings.ToLower(b))

	setB := make(map[string]struct{}, len(wordsB))
	for _, w := range wordsB {
		setB[w] = struct{}{}
	}

	common := 0
	for _, w := range wordsA {
		if _, ok := setB[w]; ok {
			common++
		}
	}

	union := make(map[string]struct{}, len(wordsA)+len(wordsB))
	for _, w := range wordsA {
		union[w] = struct{}{}
	}
	for _, w := range wordsB {
		union[w] = struct{}{}
	}

	if len(union) == 0 {
		return 0
	}
	return float64(common) / float64(len(union))
}
