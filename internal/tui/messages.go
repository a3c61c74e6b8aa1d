package tui

import "github.com/horizone-blog/horizone/models"

// NavigateTo switches the root router to another page, optionally
// delivering a payload message to it.
type NavigateTo struct {
	Page    string
	Payload interface{}
}

// AuthResult finishes the login/register flow.
type AuthResult struct {
	User models.User
	Err  error
}

type postsLoadedMsg struct {
	posts []models.Post
	user  models.User
	err   error
}

type detailLoadedMsg struct {
	post     models.Post
	comments []models.Comment
	related  []models.Post
	err      error
}

type commentAddedMsg struct {
	err error
}

type postCreatedMsg struct {
	id  string
	err error
}

type savedToggledMsg struct {
	err error
}

type linkCopiedMsg struct {
	err error
}

type shareLinkMsg struct {
	platform string
	url      string
	err      error
}

type avatarUpdatedMsg struct {
	err error
}

type themeToggledMsg struct {
	theme string
	err   error
}
