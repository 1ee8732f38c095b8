package tui

import (
	"fmt"
	"strings"
)

// logo and connection details shown above the search box
func welcomeView(client *Client) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(logo))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("the sim racing wiki, searchable in plain words"))
	b.WriteString("\n")

	locale := client.locale
	if locale == "" {
		locale = "auto"
	}

	b.WriteString(infoStyle.Render(fmt.Sprintf("api: %s | lang: %s", client.endpoint, locale)))
	b.WriteString("\n\n")

	return b.String()
}
