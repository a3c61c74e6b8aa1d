package tui

import (
	"fmt"
	"strings"

	"github.com/horizone-blog/horizone/internal/service"
)

func (m mainLoopModel) View() string {
	if m.loading {
		return renderPage(titleStyle.Render("HORIZONE"), "Loading...", "")
	}

	switch m.screen {
	case screenDetail:
		return m.viewDetail()
	case screenCreate:
		return m.viewCreate()
	case screenProfile:
		return m.viewProfile()
	default:
		return m.viewList()
	}
}

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	b.WriteString("Category: ")
	for i, cat := range postCategories {
		if i == m.categoryIdx {
			b.WriteString("[" + cat + "] ")
		} else {
			b.WriteString(helpStyle.Render(cat) + " ")
		}
	}
	b.WriteString("\n")

	if m.searching || m.searchInput.Value() != "" {
		b.WriteString("Search: [")
		b.WriteString(m.searchInput.View())
		b.WriteString("]\n")
	}
	b.WriteString("\n")

	if len(m.posts) == 0 {
		b.WriteString("No posts found.\n")
	}

	for i, post := range m.posts {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}

		saved := "   "
		if m.user.HasSaved(post.ID) {
			saved = savedStyle.Render(" ★ ")
		}

		b.WriteString(fmt.Sprintf("%s%s%s\n", cursor, saved, fitText(post.Title, 60)))
		b.WriteString(fmt.Sprintf("      %s\n", helpStyle.Render(post.Author+" · "+post.Date+" · "+post.Category)))
	}

	b.WriteString(m.statusLine())

	return renderPage(
		titleStyle.Render("HORIZONE")+" · "+m.user.Name,
		strings.TrimRight(b.String(), "\n"),
		"↑/↓: select │ ←/→: category │ /: search │ enter: open │ n: new post │ s: save │ p: profile │ L: logout │ q: quit",
	)
}

func (m mainLoopModel) viewDetail() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.detail.Title))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.detail.Author + " · " + m.detail.Date + " · " + m.detail.Category))
	if m.user.HasSaved(m.detail.ID) {
		b.WriteString(savedStyle.Render("  ★ saved"))
	}
	b.WriteString("\n\n")

	b.WriteString(excerptParagraphs(m.detail.Content, 12))
	b.WriteString("\n")

	if len(m.related) > 0 {
		b.WriteString("\nRelated posts:\n")
		for _, p := range m.related {
			b.WriteString("  · " + p.Title + "\n")
		}
	}

	b.WriteString(fmt.Sprintf("\nComments (%d):\n", len(m.comments)))
	if len(m.comments) == 0 {
		b.WriteString("  Be the first to comment.\n")
	}
	for _, c := range m.comments {
		b.WriteString(fmt.Sprintf("  %s %s\n", titleStyle.Render(c.Author), helpStyle.Render(c.Date.Format("02 Jan 2006 15:04"))))
		b.WriteString("    " + fitText(c.Text, 70) + "\n")
	}

	if m.commenting {
		b.WriteString("\nComment: [")
		b.WriteString(m.comment.View())
		b.WriteString("]\n")
		b.WriteString(helpStyle.Render("esc: cancel │ enter: post"))
		b.WriteString("\n")
	}

	b.WriteString(m.statusLine())

	return renderPage(
		"POST",
		strings.TrimRight(b.String(), "\n"),
		"esc: back │ c: comment │ s: save/unsave │ y: copy link │ 1-4: share",
	)
}

func (m mainLoopModel) viewCreate() string {
	var b strings.Builder

	b.WriteString("Title    │ [")
	b.WriteString(m.createTitle.View())
	b.WriteString("]\n")

	b.WriteString("Category │ ")
	marker := "  "
	if m.createFocus == createFieldCategory {
		marker = "< "
	}
	b.WriteString(marker + postCategories[m.createCatIdx+1])
	if m.createFocus == createFieldCategory {
		b.WriteString(" >")
	}
	b.WriteString("\n")

	b.WriteString("Image    │ [")
	b.WriteString(m.createImage.View())
	b.WriteString("]\n\n")

	b.WriteString("Content:\n")
	b.WriteString(m.createContent.View())
	b.WriteString("\n")

	if m.creating {
		b.WriteString("\n[Publishing...]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}

	return renderPage(
		"NEW POST",
		strings.TrimRight(b.String(), "\n"),
		"tab: next field │ ←/→: category │ ctrl+s: publish │ esc: cancel",
	)
}

func (m mainLoopModel) viewProfile() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.user.Name))
	b.WriteString("\n")
	b.WriteString(m.user.Email + "\n")
	b.WriteString(helpStyle.Render("Member since "+m.user.JoinDate.Format("January 2006")) + "\n\n")

	if m.user.ProfileImage != nil {
		b.WriteString(fmt.Sprintf("Profile image: set (%d KB)\n", len(*m.user.ProfileImage)/1024))
	} else {
		b.WriteString("Profile image: none (showing initial '" + m.user.Initial() + "')\n")
	}

	if m.currentTheme != "" {
		b.WriteString("Theme: " + m.currentTheme + "\n")
	}

	b.WriteString(fmt.Sprintf("\nSaved articles (%d):\n", len(m.user.SavedArticles)))
	if len(m.user.SavedArticles) == 0 {
		b.WriteString("  You have no saved articles yet.\n")
	}
	for _, id := range m.user.SavedArticles {
		b.WriteString("  · " + id + "\n")
	}

	if m.avatarFocus {
		b.WriteString("\nImage path: [")
		b.WriteString(m.avatarInput.View())
		b.WriteString("]\n")
		b.WriteString(helpStyle.Render("esc: cancel │ enter: upload"))
		b.WriteString("\n")
	}

	b.WriteString(m.statusLine())

	return renderPage(
		"PROFILE",
		strings.TrimRight(b.String(), "\n"),
		"a: set avatar │ r: remove avatar │ t: toggle theme │ esc: back",
	)
}

func (m mainLoopModel) statusLine() string {
	var b strings.Builder
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}
	return b.String()
}

// excerptParagraphs renders stripped post content as up to maxLines wrapped
// lines.
func excerptParagraphs(html string, maxLines int) string {
	text := strings.TrimSpace(service.StripHTML(html))
	words := strings.Fields(text)

	var (
		b    strings.Builder
		line strings.Builder
		n    int
	)
	for _, word := range words {
		if line.Len()+len(word)+1 > 76 {
			b.WriteString(line.String() + "\n")
			line.Reset()
			n++
			if n == maxLines {
				b.WriteString("...\n")
				return b.String()
			}
		}
		if line.Len() > 0 {
			line.WriteString(" ")
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		b.WriteString(line.String() + "\n")
	}
	return b.String()
}
