package tui

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/horizone-blog/horizone/internal/service"
	"github.com/horizone-blog/horizone/models"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenCreate
	screenProfile
)

type createField int

const (
	createFieldTitle createField = iota
	createFieldCategory
	createFieldImage
	createFieldContent
)

// postCategories mirror the categories the built-in catalog uses. Index 0
// means "no filter".
var postCategories = []string{"All", "Culture", "Travel", "Food", "Adventure", "Lifestyle", "Technology", "Tips & Hacks"}

type mainLoopModel struct {
	ctx      context.Context
	services *service.Services
	user     models.User

	screen  screen
	loading bool
	status  string
	errMsg  string

	// list screen
	posts       []models.Post
	idx         int
	categoryIdx int
	searchInput textinput.Model
	searching   bool

	// detail screen
	detail     models.Post
	comments   []models.Comment
	related    []models.Post
	commenting bool
	comment    textinput.Model

	// create screen
	createFocus   createField
	createTitle   textinput.Model
	createImage   textinput.Model
	createContent textarea.Model
	createCatIdx  int
	creating      bool

	// profile screen
	avatarInput  textinput.Model
	avatarFocus  bool
	currentTheme string

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.Services, user models.User) mainLoopModel {
	search := textinput.New()
	search.Placeholder = "search posts"
	search.CharLimit = 100
	search.Width = 40

	comment := textinput.New()
	comment.Placeholder = "write a comment"
	comment.CharLimit = 2000
	comment.Width = 60

	title := textinput.New()
	title.Placeholder = "post title"
	title.CharLimit = 200
	title.Width = 60

	imagePath := textinput.New()
	imagePath.Placeholder = "header image path (optional)"
	imagePath.CharLimit = 500
	imagePath.Width = 60

	content := textarea.New()
	content.Placeholder = "write your story"
	content.CharLimit = 10000
	content.SetWidth(70)
	content.SetHeight(10)

	avatar := textinput.New()
	avatar.Placeholder = "avatar image path"
	avatar.CharLimit = 500
	avatar.Width = 60

	return mainLoopModel{
		ctx:           ctx,
		services:      services,
		user:          user,
		loading:       true,
		searchInput:   search,
		comment:       comment,
		createTitle:   title,
		createImage:   imagePath,
		createContent: content,
		avatarInput:   avatar,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadPosts()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case postsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.posts = msg.posts
		m.user = msg.user
		if m.idx >= len(m.posts) {
			m.idx = len(m.posts) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case detailLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.screen = screenList
			return m, nil
		}
		m.errMsg = ""
		m.detail = msg.post
		m.comments = msg.comments
		m.related = msg.related
		m.screen = screenDetail
		return m, nil

	case commentAddedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Comment added"
		m.commenting = false
		m.comment.Reset()
		m.loading = true
		return m, m.cmdLoadDetail(m.detail.ID)

	case postCreatedMsg:
		m.creating = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Post published"
		m.resetCreateForm()
		m.loading = true
		return m, m.cmdLoadDetail(msg.id)

	case savedToggledMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadPosts()

	case linkCopiedMsg:
		if msg.err != nil {
			m.errMsg = "Clipboard unavailable: " + msg.err.Error()
		} else {
			m.status = "Link copied to clipboard!"
		}
		return m, nil

	case shareLinkMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		} else {
			m.errMsg = ""
			m.status = "Share on " + msg.platform + ": " + msg.url
		}
		return m, nil

	case avatarUpdatedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Profile image updated"
		m.avatarFocus = false
		m.avatarInput.Reset()
		m.loading = true
		return m, m.cmdLoadPosts()

	case themeToggledMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.currentTheme = msg.theme
		m.status = "Theme: " + msg.theme
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m mainLoopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// text-entry modes swallow most keys
	if m.searching || m.commenting || m.screen == screenCreate || m.avatarFocus {
		return m.handleTextEntryKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "L":
		m.logout = true
		return m, tea.Quit
	}

	switch m.screen {
	case screenList:
		return m.handleListKey(msg)
	case screenDetail:
		return m.handleDetailKey(msg)
	case screenProfile:
		return m.handleProfileKey(msg)
	}
	return m, nil
}

func (m mainLoopModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.posts)-1 {
			m.idx++
		}
	case "left", "h":
		m.categoryIdx = (m.categoryIdx - 1 + len(postCategories)) % len(postCategories)
		m.loading = true
		return m, m.cmdLoadPosts()
	case "right", "l":
		m.categoryIdx = (m.categoryIdx + 1) % len(postCategories)
		m.loading = true
		return m, m.cmdLoadPosts()
	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink
	case "enter":
		if len(m.posts) > 0 {
			m.loading = true
			return m, m.cmdLoadDetail(m.posts[m.idx].ID)
		}
	case "n":
		m.screen = screenCreate
		m.createFocus = createFieldTitle
		m.createTitle.Focus()
		return m, textinput.Blink
	case "p":
		m.screen = screenProfile
		return m, nil
	case "s":
		if len(m.posts) > 0 {
			return m, m.cmdToggleSave(m.posts[m.idx].ID)
		}
	}
	return m, nil
}

func (m mainLoopModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.screen = screenList
		m.status = ""
		return m, nil
	case "c":
		m.commenting = true
		m.comment.Focus()
		return m, textinput.Blink
	case "s":
		return m, m.cmdToggleSave(m.detail.ID)
	case "y":
		return m, m.cmdCopyLink(m.detail)
	case "1":
		return m, m.cmdShare("twitter", m.detail)
	case "2":
		return m, m.cmdShare("facebook", m.detail)
	case "3":
		return m, m.cmdShare("linkedin", m.detail)
	case "4":
		return m, m.cmdShare("email", m.detail)
	}
	return m, nil
}

func (m mainLoopModel) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.screen = screenList
		m.status = ""
		return m, nil
	case "a":
		m.avatarFocus = true
		m.avatarInput.Focus()
		return m, textinput.Blink
	case "r":
		return m, m.cmdRemoveAvatar()
	case "t":
		return m, m.cmdToggleTheme()
	}
	return m, nil
}

func (m mainLoopModel) handleTextEntryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch {
	case m.searching:
		switch key {
		case "esc":
			m.searching = false
			m.searchInput.Blur()
			m.searchInput.Reset()
			m.loading = true
			return m, m.cmdLoadPosts()
		case "enter":
			m.searching = false
			m.searchInput.Blur()
			m.loading = true
			return m, m.cmdLoadPosts()
		}

	case m.commenting:
		switch key {
		case "esc":
			m.commenting = false
			m.comment.Blur()
			m.comment.Reset()
			return m, nil
		case "enter":
			text := strings.TrimSpace(m.comment.Value())
			if text == "" {
				return m, nil
			}
			return m, m.cmdAddComment(m.detail.ID, text)
		}

	case m.avatarFocus:
		switch key {
		case "esc":
			m.avatarFocus = false
			m.avatarInput.Blur()
			m.avatarInput.Reset()
			return m, nil
		case "enter":
			path := strings.TrimSpace(m.avatarInput.Value())
			if path == "" {
				return m, nil
			}
			return m, m.cmdSetAvatar(path)
		}

	case m.screen == screenCreate:
		switch key {
		case "esc":
			m.screen = screenList
			m.resetCreateForm()
			return m, nil
		case "tab":
			m.focusNextCreateField()
			return m, nil
		case "shift+tab":
			m.focusPrevCreateField()
			return m, nil
		case "left", "right":
			if m.createFocus == createFieldCategory {
				delta := 1
				if key == "left" {
					delta = len(postCategories) - 2
				}
				// category choices exclude the "All" filter entry
				m.createCatIdx = (m.createCatIdx + delta) % (len(postCategories) - 1)
				return m, nil
			}
		case "ctrl+s":
			if m.creating {
				return m, nil
			}
			m.creating = true
			return m, m.cmdCreatePost()
		}
	}

	return m.updateInputs(msg)
}

func (m mainLoopModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case m.searching:
		m.searchInput, cmd = m.searchInput.Update(msg)
	case m.commenting:
		m.comment, cmd = m.comment.Update(msg)
	case m.avatarFocus:
		m.avatarInput, cmd = m.avatarInput.Update(msg)
	case m.screen == screenCreate:
		switch m.createFocus {
		case createFieldTitle:
			m.createTitle, cmd = m.createTitle.Update(msg)
		case createFieldImage:
			m.createImage, cmd = m.createImage.Update(msg)
		case createFieldContent:
			m.createContent, cmd = m.createContent.Update(msg)
		}
	}

	return m, cmd
}

func (m *mainLoopModel) focusNextCreateField() {
	m.blurCreateFields()
	m.createFocus = (m.createFocus + 1) % 4
	m.focusCreateField()
}

func (m *mainLoopModel) focusPrevCreateField() {
	m.blurCreateFields()
	m.createFocus = (m.createFocus + 3) % 4
	m.focusCreateField()
}

func (m *mainLoopModel) blurCreateFields() {
	m.createTitle.Blur()
	m.createImage.Blur()
	m.createContent.Blur()
}

func (m *mainLoopModel) focusCreateField() {
	switch m.createFocus {
	case createFieldTitle:
		m.createTitle.Focus()
	case createFieldImage:
		m.createImage.Focus()
	case createFieldContent:
		m.createContent.Focus()
	}
}

func (m *mainLoopModel) resetCreateForm() {
	m.createTitle.Reset()
	m.createImage.Reset()
	m.createContent.Reset()
	m.createCatIdx = 0
	m.createFocus = createFieldTitle
	m.blurCreateFields()
	m.createTitle.Focus()
	m.screen = screenList
}

// commands

func (m mainLoopModel) cmdLoadPosts() tea.Cmd {
	ctx := m.ctx
	services := m.services
	query := strings.TrimSpace(m.searchInput.Value())
	category := ""
	if m.categoryIdx > 0 {
		category = postCategories[m.categoryIdx]
	}

	return func() tea.Msg {
		started := time.Now()

		user, err := services.Auth.CurrentUser(ctx)
		if err != nil {
			return postsLoadedMsg{err: err}
		}

		var posts []models.Post
		if query != "" {
			posts, err = services.Content.Search(ctx, query)
		} else {
			var merged map[string]models.Post
			merged, err = services.Content.MergedPosts(ctx)
			if err == nil {
				posts = make([]models.Post, 0, len(merged))
				for _, p := range merged {
					posts = append(posts, p)
				}
				sort.Slice(posts, func(i, j int) bool { return posts[i].Title < posts[j].Title })
			}
		}
		if err != nil {
			return postsLoadedMsg{err: err}
		}

		if category != "" {
			filtered := posts[:0]
			for _, p := range posts {
				if p.Category == category {
					filtered = append(filtered, p)
				}
			}
			posts = filtered
		}

		elapsed := float64(time.Since(started).Milliseconds())
		_ = services.Perf.RecordSample(ctx, "home", elapsed, elapsed)

		return postsLoadedMsg{posts: posts, user: user}
	}
}

func (m mainLoopModel) cmdLoadDetail(id string) tea.Cmd {
	ctx := m.ctx
	services := m.services

	return func() tea.Msg {
		started := time.Now()

		post, err := services.Content.GetPost(ctx, id)
		if err != nil {
			return detailLoadedMsg{err: err}
		}

		comments, err := services.Content.Comments(ctx, id)
		if err != nil {
			return detailLoadedMsg{err: err}
		}

		related, err := services.Content.RelatedPosts(ctx, id)
		if err != nil {
			return detailLoadedMsg{err: err}
		}

		elapsed := float64(time.Since(started).Milliseconds())
		_ = services.Perf.RecordSample(ctx, "post", elapsed, elapsed)

		return detailLoadedMsg{post: post, comments: comments, related: related}
	}
}

func (m mainLoopModel) cmdAddComment(postID, text string) tea.Cmd {
	ctx := m.ctx
	services := m.services

	return func() tea.Msg {
		_, err := services.Content.AddComment(ctx, postID, text)
		return commentAddedMsg{err: err}
	}
}

func (m mainLoopModel) cmdCreatePost() tea.Cmd {
	ctx := m.ctx
	services := m.services
	title := strings.TrimSpace(m.createTitle.Value())
	category := postCategories[m.createCatIdx+1]
	content := m.createContent.Value()
	imagePath := strings.TrimSpace(m.createImage.Value())

	return func() tea.Msg {
		imageDataURL := ""
		if imagePath != "" {
			var err error
			imageDataURL, err = services.Image.Load(ctx, imagePath)
			if err != nil {
				return postCreatedMsg{err: err}
			}
		}

		post, err := services.Content.CreatePost(ctx, title, category, content, imageDataURL)
		if err != nil {
			return postCreatedMsg{err: err}
		}
		return postCreatedMsg{id: post.ID}
	}
}

func (m mainLoopModel) cmdToggleSave(postID string) tea.Cmd {
	ctx := m.ctx
	services := m.services
	saved := m.user.HasSaved(postID)

	return func() tea.Msg {
		var err error
		if saved {
			err = services.Content.UnsaveArticle(ctx, postID)
		} else {
			err = services.Content.SaveArticle(ctx, postID)
		}
		return savedToggledMsg{err: err}
	}
}

func (m mainLoopModel) cmdCopyLink(post models.Post) tea.Cmd {
	services := m.services
	return func() tea.Msg {
		return linkCopiedMsg{err: services.Share.CopyLink(post)}
	}
}

func (m mainLoopModel) cmdShare(platform string, post models.Post) tea.Cmd {
	services := m.services
	return func() tea.Msg {
		url, err := services.Share.ShareURL(platform, post)
		return shareLinkMsg{platform: platform, url: url, err: err}
	}
}

func (m mainLoopModel) cmdSetAvatar(path string) tea.Cmd {
	ctx := m.ctx
	services := m.services

	return func() tea.Msg {
		dataURL, err := services.Image.Load(ctx, path)
		if err != nil {
			return avatarUpdatedMsg{err: err}
		}

		return avatarUpdatedMsg{err: services.Profile.SetAvatar(ctx, dataURL)}
	}
}

func (m mainLoopModel) cmdRemoveAvatar() tea.Cmd {
	ctx := m.ctx
	services := m.services
	return func() tea.Msg {
		return avatarUpdatedMsg{err: services.Profile.RemoveAvatar(ctx)}
	}
}

func (m mainLoopModel) cmdToggleTheme() tea.Cmd {
	ctx := m.ctx
	services := m.services
	return func() tea.Msg {
		theme, err := services.Profile.ToggleTheme(ctx)
		return themeToggledMsg{theme: theme, err: err}
	}
}
