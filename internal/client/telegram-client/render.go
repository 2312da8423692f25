package telegram_client

import (
	"fmt"
	"html"
	"strings"

	"twitch_live_notifier/internal/models"
)

// zero-width joiner link: makes Telegram show the preview image above the
// text without rendering a visible anchor
const hiddenPreviewAnchor = `<a href="%s">&#8205;</a>`

func renderCardHTML(card models.StreamCard) string {

	var b strings.Builder

	if card.ImageURL != "" {
		b.WriteString(fmt.Sprintf(hiddenPreviewAnchor, html.EscapeString(card.ImageURL)))
	}

	if card.Announcement != "" {
		b.WriteString(html.EscapeString(card.Announcement))
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf(`<b><a href="%s">%s</a></b>`,
		html.EscapeString(card.URL), html.EscapeString(card.Title)))
	b.WriteString("\n")

	if card.AuthorName != "" {
		b.WriteString(fmt.Sprintf(`<a href="%s">%s</a>`,
			html.EscapeString(card.AuthorURL), html.EscapeString(card.AuthorName)))
		b.WriteString("\n")
	}

	for _, field := range card.Fields {
		if strings.TrimSpace(field.Name) == "" || field.Name == models.BlankField {
			continue
		}
		b.WriteString(fmt.Sprintf("<b>%s</b> %s\n",
			html.EscapeString(field.Name), html.EscapeString(field.Value)))
	}

	if card.Footer != "" {
		b.WriteString(fmt.Sprintf("<i>%s</i>\n", html.EscapeString(card.Footer)))
	}

	return b.String()
}
