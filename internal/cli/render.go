package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/milele-cleaning/milele/internal/account"
	"github.com/milele-cleaning/milele/internal/form"
	"github.com/milele-cleaning/milele/internal/ui"
)

// kvPair is one row of a key/value listing.
type kvPair struct {
	Key   string
	Value string
}

func cardStyle(t *ui.Theme) lipgloss.Style {
	return t.Card().Padding(0, 2)
}

// renderCard renders content inside a rounded border box with a styled title.
func renderCard(t *ui.Theme, title, content string) string {
	return cardStyle(t).Render(t.Title().Render(title) + "\n\n" + content)
}

// renderSuccessCard renders a checkmarked title followed by detail lines.
func renderSuccessCard(t *ui.Theme, title string, details ...string) string {
	return renderStatusCard(t, t.Success().Render("✓")+" "+title, details)
}

// renderErrorCard renders a crossed title followed by detail lines.
func renderErrorCard(t *ui.Theme, title string, details ...string) string {
	return renderStatusCard(t, t.Error().Render("✗")+" "+title, details)
}

func renderStatusCard(t *ui.Theme, titleLine string, details []string) string {
	var body strings.Builder
	body.WriteString(titleLine)
	if len(details) > 0 {
		body.WriteString("\n\n")
		body.WriteString(strings.Join(details, "\n"))
	}
	return cardStyle(t).Render(body.String())
}

// renderKeyValueLines aligns keys into a column.
func renderKeyValueLines(t *ui.Theme, pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		width = max(width, lipgloss.Width(p.Key))
	}
	lines := make([]string, len(pairs))
	for i, p := range pairs {
		key := t.Subtle().Render(fmt.Sprintf("%-*s", width, p.Key))
		lines[i] = key + "  " + p.Value
	}
	return strings.Join(lines, "\n")
}

// fieldLines formats validation failures as "field: message" lines.
func fieldLines(t *ui.Theme, errs *form.FieldErrors) []string {
	if errs == nil {
		return nil
	}
	lines := make([]string, len(errs.Errors))
	for i, fe := range errs.Errors {
		lines[i] = fmt.Sprintf("%s: %s", fe.Field, t.Error().Render(fe.Message))
	}
	return lines
}

// renderResult renders a submission outcome. success is the title used
// when the result carries no message of its own.
func renderResult(t *ui.Theme, res account.Result, success string) string {
	if res.OK() {
		title := res.Message
		if title == "" {
			title = success
		}
		return renderSuccessCard(t, title)
	}
	return renderErrorCard(t, res.Message, fieldLines(t, res.Fields)...)
}
