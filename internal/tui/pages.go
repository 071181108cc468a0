package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/milele-cleaning/milele/internal/catalog"
	"github.com/milele-cleaning/milele/internal/ui"
)

// Routes.
const (
	RouteHome         = "/"
	RouteServices     = "/services"
	RouteTestimonials = "/testimonials"
	RouteContact      = "/contact"
	RouteLogin        = "/login"
	RouteSignup       = "/signup"
)

type route struct {
	path  string
	title string
}

var routes = []route{
	{RouteHome, "Home"},
	{RouteServices, "Services"},
	{RouteTestimonials, "Testimonials"},
	{RouteContact, "Contact"},
	{RouteLogin, "Login"},
	{RouteSignup, "Sign up"},
}

// Routes returns every navigable path in navbar order.
func Routes() []string {
	out := make([]string, len(routes))
	for i, r := range routes {
		out[i] = r.path
	}
	return out
}

// IsRoute reports whether path is a known route.
func IsRoute(path string) bool {
	return routeIndex(path) >= 0
}

func routeIndex(path string) int {
	for i, r := range routes {
		if r.path == path {
			return i
		}
	}
	return -1
}

// hasCarousel reports whether a route shows the testimonial carousel.
func hasCarousel(path string) bool {
	return path == RouteHome || path == RouteTestimonials
}

// formKind maps a form route to its form.
func formKind(path string) (FormKind, bool) {
	switch path {
	case RouteContact:
		return FormQuote, true
	case RouteLogin:
		return FormLogin, true
	case RouteSignup:
		return FormSignup, true
	}
	return 0, false
}

func renderNavbar(theme *ui.Theme, current, user string, width int) string {
	tabs := make([]string, len(routes))
	for i, r := range routes {
		label := fmt.Sprintf("%d %s", i+1, r.title)
		if r.path == current {
			tabs[i] = theme.ActiveTab().Render(label)
		} else {
			tabs[i] = theme.Tab().Render(label)
		}
	}
	brand := theme.Title().Render("✦ Milele")
	left := lipgloss.JoinHorizontal(lipgloss.Center, append([]string{brand, "  "}, tabs...)...)

	right := theme.Subtle().Render("not signed in")
	if user != "" {
		right = theme.Success().Render("● " + user)
	}
	pad := max(1, width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", pad) + right
}

func renderHero(theme *ui.Theme, width int) string {
	title := theme.Title().Render("Professional Cleaning Services in Nairobi")
	tagline := wordwrap.String("Spotless homes and offices, eco-friendly products and a team you can trust. We handle the mess so you can focus on what matters.", max(20, width-4))
	cta := theme.ActiveTab().Render("[b] Book Now") + "  " + theme.Tab().Render("[4] Get a Free Quote")
	return lipgloss.JoinVertical(lipgloss.Left, title, "", tagline, "", cta)
}

func renderStats(theme *ui.Theme, width int) string {
	stats := catalog.QuickStats()
	cellW := max(12, width/len(stats))
	cells := make([]string, len(stats))
	for i, s := range stats {
		cells[i] = lipgloss.NewStyle().Width(cellW).Align(lipgloss.Center).Render(
			theme.Title().Render(s.Value) + "\n" + theme.Subtle().Render(s.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func renderServiceSummary(theme *ui.Theme, width int) string {
	var b strings.Builder
	b.WriteString(theme.Title().Render("Our Services"))
	b.WriteString("\n")
	for _, s := range catalog.Services() {
		line := fmt.Sprintf("• %s: %s", s.Name, s.Summary)
		b.WriteString(wordwrap.String(line, max(20, width-4)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderContactInfo(theme *ui.Theme) string {
	c := catalog.BusinessContact()
	rows := []string{
		theme.Title().Render("Get In Touch"),
		"",
		"Phone     " + theme.Link().Render(c.Phone),
		"          " + theme.Subtle().Render(c.PhoneNote),
		"Email     " + theme.Link().Render(c.Email),
		"          " + theme.Subtle().Render(c.EmailNote),
		"Area      " + c.Area,
		"          " + theme.Subtle().Render(c.AreaNote),
		"WhatsApp  " + theme.Link().Render(c.WhatsAppURL),
	}
	return strings.Join(rows, "\n")
}

// renderServices renders the service menu markdown for the services page.
func renderServices(theme *ui.Theme, width int) string {
	style := "dark"
	if theme.NoColor {
		style = "notty"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(20, width-4)),
	)
	md := catalog.ServicesMarkdown()
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
