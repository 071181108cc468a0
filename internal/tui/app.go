// Package tui is the terminal storefront: a Bubble Tea app with a navbar,
// the home, services, testimonials, contact, login and signup pages, the
// testimonial carousel, the book-now modal and the demo chat.
package tui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/milele-cleaning/milele/internal/catalog"
	"github.com/milele-cleaning/milele/internal/schedule"
	"github.com/milele-cleaning/milele/internal/ui"
)

// Options configures the App.
type Options struct {
	Theme    *ui.Theme
	Service  Submitter
	Carousel CarouselOptions
	// Start is the initial route; unknown routes fall back to home.
	Start string
	// Clock drives every timer; nil uses the real clock.
	Clock         schedule.Clock
	SubmitTimeout time.Duration
	Logger        *slog.Logger
	// Testimonials overrides the catalog, mainly for tests.
	Testimonials []catalog.Testimonial
}

// App is the root model.
type App struct {
	opts     Options
	theme    *ui.Theme
	logger   *slog.Logger
	route    string
	width    int
	height   int
	user     string
	notice   string
	showHelp bool

	carousel *Carousel
	chat     *Chat
	modal    *BookNow
	forms    map[string]*FormPage
	timers   *timerBridge
	services viewport.Model
	help     help.Model
}

// New creates the App.
func New(opts Options) *App {
	if opts.Theme == nil {
		opts.Theme = ui.NewTheme(false)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.SubmitTimeout <= 0 {
		opts.SubmitTimeout = 15 * time.Second
	}
	if opts.Carousel == (CarouselOptions{}) {
		opts.Carousel = DefaultCarouselOptions()
	}
	opts.Carousel.Inset = pageInset
	if opts.Testimonials == nil {
		opts.Testimonials = catalog.Testimonials()
	}
	if !IsRoute(opts.Start) {
		opts.Start = RouteHome
	}

	a := &App{
		opts:     opts,
		theme:    opts.Theme,
		logger:   opts.Logger,
		route:    opts.Start,
		width:    80,
		height:   24,
		chat:     NewChat(opts.Theme),
		modal:    NewBookNow(opts.Theme),
		forms:    make(map[string]*FormPage),
		timers:   newTimerBridge(opts.Clock),
		services: viewport.New(80, 20),
		help:     help.New(),
	}
	for _, path := range []string{RouteContact, RouteLogin, RouteSignup} {
		kind, _ := formKind(path)
		a.forms[path] = NewFormPage(kind, opts.Theme, a.width)
	}
	a.refreshUser()
	return a
}

// Route returns the current route.
func (a *App) Route() string { return a.route }

// Carousel returns the mounted carousel, or nil on pages without one.
func (a *App) Carousel() *Carousel { return a.carousel }

// Chat returns the chat panel.
func (a *App) Chat() *Chat { return a.chat }

// Modal returns the book-now modal.
func (a *App) Modal() *BookNow { return a.modal }

// Form returns the form page for route, or nil.
func (a *App) Form(route string) *FormPage { return a.forms[route] }

// User returns the signed-in display name, or "".
func (a *App) User() string { return a.user }

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.timers.listen(), a.mount(a.route))
}

// Close releases every timer. It is safe to call more than once.
func (a *App) Close() {
	if a.carousel != nil {
		a.carousel.Close()
	}
	a.timers.close()
}

// Navigate switches to route, unmounting the old page.
func (a *App) Navigate(route string) tea.Cmd {
	if !IsRoute(route) || route == a.route {
		return nil
	}
	a.logger.Debug("navigate", "from", a.route, "to", route)
	a.notice = ""
	a.route = route
	return a.mount(route)
}

func (a *App) mount(route string) tea.Cmd {
	if a.carousel != nil {
		a.carousel.Close()
		a.carousel = nil
	}
	if hasCarousel(route) {
		a.carousel = NewCarousel(a.opts.Testimonials, a.opts.Carousel, a.opts.Clock, a.theme, a.width)
		return a.carousel.Init()
	}
	if p, ok := a.forms[route]; ok {
		return p.Init()
	}
	if route == RouteServices {
		a.services.SetContent(renderServices(a.theme, a.contentWidth()))
		a.services.GotoTop()
	}
	return nil
}

// pageInset is the margin pages keep around their content.
const pageInset = 4

// contentWidth is the layout width inside the page margin. Breakpoints are
// classified on the full terminal width instead.
func (a *App) contentWidth() int {
	return max(20, a.width-pageInset)
}

func (a *App) refreshUser() {
	if a.opts.Service != nil {
		a.user = a.opts.Service.DisplayName()
	}
}

func (a *App) step(delta int) tea.Cmd {
	i := routeIndex(a.route)
	n := len(routes)
	return a.Navigate(routes[((i+delta)%n+n)%n].path)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil

	case timerMsg:
		if a.carousel != nil && a.carousel.Owns(msg) {
			return a, a.carousel.Update(msg)
		}
		if msg.src == a.timers {
			a.modal.Update(msg, a.opts.Service, a.timers, a.opts.SubmitTimeout)
			return a, a.timers.listen()
		}
		// Late message from an unmounted carousel.
		return a, nil

	case formResultMsg:
		for _, p := range a.forms {
			if p.Kind() == msg.kind {
				cmd := p.Update(msg, a.opts.Service, a.opts.SubmitTimeout)
				a.refreshUser()
				if r := p.Redirect(); r != "" {
					cmd = tea.Batch(cmd, a.Navigate(r))
				}
				return a, cmd
			}
		}
		return a, nil

	case bookingResultMsg:
		return a, a.modal.Update(msg, a.opts.Service, a.timers, a.opts.SubmitTimeout)

	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}

	return a, a.forward(msg)
}

// forward passes non-key messages (cursor blinks, form internals) to the
// active widgets.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	if a.modal.Open() {
		return a.modal.Update(msg, a.opts.Service, a.timers, a.opts.SubmitTimeout)
	}
	var cmds []tea.Cmd
	if p, ok := a.forms[a.route]; ok {
		cmds = append(cmds, p.Update(msg, a.opts.Service, a.opts.SubmitTimeout))
	}
	if a.chat.Open() {
		cmds = append(cmds, a.chat.Update(msg))
	}
	return tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		a.Close()
		return tea.Quit
	}
	if a.modal.Open() {
		return a.modal.Update(msg, a.opts.Service, a.timers, a.opts.SubmitTimeout)
	}
	if a.chat.Open() {
		return a.chat.Update(msg)
	}
	if i, ok := functionKey(msg); ok {
		return a.Navigate(routes[i].path)
	}
	if p, ok := a.forms[a.route]; ok {
		return p.Update(msg, a.opts.Service, a.opts.SubmitTimeout)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		a.Close()
		return tea.Quit
	case key.Matches(msg, keys.NextPage):
		return a.step(1)
	case key.Matches(msg, keys.PrevPage):
		return a.step(-1)
	case key.Matches(msg, keys.Num1):
		return a.Navigate(routes[0].path)
	case key.Matches(msg, keys.Num2):
		return a.Navigate(routes[1].path)
	case key.Matches(msg, keys.Num3):
		return a.Navigate(routes[2].path)
	case key.Matches(msg, keys.Num4):
		return a.Navigate(routes[3].path)
	case key.Matches(msg, keys.Num5):
		return a.Navigate(routes[4].path)
	case key.Matches(msg, keys.Num6):
		return a.Navigate(routes[5].path)
	case key.Matches(msg, keys.Left), key.Matches(msg, keys.Right):
		if a.carousel != nil {
			return a.carousel.Update(msg)
		}
	case key.Matches(msg, keys.Up), key.Matches(msg, keys.Down):
		if a.route == RouteServices {
			var cmd tea.Cmd
			a.services, cmd = a.services.Update(msg)
			return cmd
		}
	case key.Matches(msg, keys.Book):
		a.modal.SetWidth(a.width)
		return a.modal.Show()
	case key.Matches(msg, keys.Chat):
		return a.chat.Toggle()
	case key.Matches(msg, keys.WhatsApp):
		a.notice = "Chat with us on WhatsApp: " + catalog.BusinessContact().WhatsAppURL
	case key.Matches(msg, keys.Logout):
		if a.user != "" && a.opts.Service != nil {
			if err := a.opts.Service.Logout(); err != nil {
				a.logger.Warn("logout failed", "error", err)
				a.notice = "Could not sign out."
			} else {
				a.notice = "Signed out."
			}
			a.refreshUser()
		}
	case key.Matches(msg, keys.Help):
		a.showHelp = !a.showHelp
		a.help.ShowAll = a.showHelp
	}
	return nil
}

// functionKey maps f1-f6 to a route index. Function keys switch pages even
// while a form has focus.
func functionKey(msg tea.KeyMsg) (int, bool) {
	s := msg.String()
	if len(s) != 2 || s[0] != 'f' || s[1] < '1' || s[1] > '6' {
		return 0, false
	}
	return int(s[1] - '1'), true
}

func (a *App) resize(w, h int) {
	a.width, a.height = w, h
	a.help.Width = w
	a.chat.SetWidth(w / 2)
	a.modal.SetWidth(w)
	for _, p := range a.forms {
		p.SetWidth(a.contentWidth())
	}
	if a.carousel != nil {
		a.carousel.Resize(w)
	}
	a.services.Width = a.contentWidth()
	a.services.Height = max(5, h-6)
	a.services.SetContent(renderServices(a.theme, a.contentWidth()))
}

// View implements tea.Model.
func (a *App) View() string {
	nav := renderNavbar(a.theme, a.route, a.user, a.width)

	var body string
	if a.modal.Open() {
		body = lipgloss.Place(a.width, max(10, a.height-6), lipgloss.Center, lipgloss.Center, a.modal.View())
	} else {
		body = a.page()
	}

	footer := []string{}
	if a.notice != "" {
		footer = append(footer, a.theme.Link().Render(a.notice))
	}
	chat := a.chat.View()
	footer = append(footer, lipgloss.PlaceHorizontal(a.width, lipgloss.Right, chat))
	footer = append(footer, a.help.View(keys))

	bodyHeight := max(3, a.height-lipgloss.Height(nav)-lipgloss.Height(strings.Join(footer, "\n"))-1)
	body = lipgloss.NewStyle().MaxHeight(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, nav, "", body, strings.Join(footer, "\n"))
}

func (a *App) page() string {
	w := a.contentWidth()
	pad := lipgloss.NewStyle().PaddingLeft(2)

	switch a.route {
	case RouteServices:
		return pad.Render(a.services.View())
	case RouteTestimonials:
		head := a.theme.Title().Render("What Our Clients Say")
		sub := a.theme.Subtle().Render("Don't just take our word for it. Here's what our satisfied customers have to say.")
		return pad.Render(lipgloss.JoinVertical(lipgloss.Left, head, sub, "", a.carouselView()))
	case RouteContact:
		return pad.Render(lipgloss.JoinHorizontal(lipgloss.Top,
			a.forms[RouteContact].View(), "    ", renderContactInfo(a.theme)))
	case RouteLogin, RouteSignup:
		return pad.Render(a.forms[a.route].View())
	default:
		return pad.Render(lipgloss.JoinVertical(lipgloss.Left,
			renderHero(a.theme, w),
			"",
			renderStats(a.theme, w),
			"",
			a.theme.Title().Render("What Our Clients Say"),
			a.carouselView(),
			"",
			renderServiceSummary(a.theme, w),
		))
	}
}

func (a *App) carouselView() string {
	if a.carousel == nil {
		return ""
	}
	return a.carousel.View()
}
