package format

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

const DEFAULT_WORD_WRAP = 80

func FormatMarkdown(text string) (string, error) {
	return FormatMarkdownWidth(text, DEFAULT_WORD_WRAP)
}

// FormatMarkdownWidth wraps at width; a width below 1 uses the default.
func FormatMarkdownWidth(text string, width int) (string, error) {
	if width < 1 {
		width = DEFAULT_WORD_WRAP
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styles.DarkStyle),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(text)
}
