package tui

import (
	"context"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/milele-cleaning/milele/internal/account"
	"github.com/milele-cleaning/milele/internal/form"
	"github.com/milele-cleaning/milele/internal/schedule"
	"github.com/milele-cleaning/milele/internal/ui"
)

// fakeSubmitter returns canned results and records what it was given.
type fakeSubmitter struct {
	mu      sync.Mutex
	result  account.Result
	login   form.Login
	booking form.Booking
	name    string
	logouts int
}

func (f *fakeSubmitter) SubmitQuote(context.Context, form.Quote) account.Result {
	return f.result
}

func (f *fakeSubmitter) SubmitBooking(_ context.Context, b form.Booking) account.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.booking = b
	return f.result
}

func (f *fakeSubmitter) Login(_ context.Context, l form.Login) account.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.login = l
	if f.result.OK() {
		f.name = "Amina"
	}
	return f.result
}

func (f *fakeSubmitter) Signup(context.Context, form.Signup) account.Result {
	return f.result
}

func (f *fakeSubmitter) DisplayName() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.name
}

func (f *fakeSubmitter) Logout() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logouts++
	f.name = ""
	return nil
}

func newTestApp(t *testing.T, start string, svc *fakeSubmitter) (*App, *schedule.ManualClock) {
	t.Helper()
	clock := schedule.NewManualClock()
	a := New(Options{
		Theme:   ui.NewTheme(true),
		Service: svc,
		Start:   start,
		Clock:   clock,
	})
	t.Cleanup(a.Close)
	a.Init()
	a.Update(tea.WindowSizeMsg{Width: colsMD, Height: 40})
	return a, clock
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestApp_StartRoute(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t, "/nowhere", &fakeSubmitter{})
	if a.Route() != RouteHome {
		t.Errorf("Route() = %q, want home for unknown start", a.Route())
	}
	if a.Carousel() == nil {
		t.Error("home page should mount the carousel")
	}
}

func TestApp_NavigationUnmountsCarousel(t *testing.T) {
	t.Parallel()

	a, clock := newTestApp(t, RouteTestimonials, &fakeSubmitter{})
	first := a.Carousel()
	if first == nil {
		t.Fatal("testimonials page has no carousel")
	}

	a.Update(runes("2"))
	if a.Route() != RouteServices {
		t.Fatalf("Route() = %q, want services", a.Route())
	}
	if !first.closed() {
		t.Error("carousel not closed when leaving the page")
	}
	if a.Carousel() != nil {
		t.Error("services page should not have a carousel")
	}
	if clock.Pending() != 0 {
		t.Errorf("%d timers pending after unmount", clock.Pending())
	}

	a.Update(runes("1"))
	if a.Carousel() == nil || a.Carousel() == first {
		t.Error("returning home should mount a fresh carousel")
	}
}

func TestApp_TabCycles(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t, RouteHome, &fakeSubmitter{})
	a.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if a.Route() != RouteSignup {
		t.Errorf("shift+tab from home = %q, want signup", a.Route())
	}
	a.Update(tea.KeyMsg{Type: tea.KeyF1})
	if a.Route() != RouteHome {
		t.Errorf("f1 from a form page = %q, want home", a.Route())
	}
	a.Update(tea.KeyMsg{Type: tea.KeyTab})
	if a.Route() != RouteServices {
		t.Errorf("tab from home = %q, want services", a.Route())
	}
}

func TestApp_FormPageSwallowsDigits(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t, RouteLogin, &fakeSubmitter{})
	a.Update(runes("2"))
	if a.Route() != RouteLogin {
		t.Errorf("typing a digit on the login page navigated to %q", a.Route())
	}
}

func TestApp_LoginSuccessNavigatesHome(t *testing.T) {
	t.Parallel()

	svc := &fakeSubmitter{result: account.Result{Status: form.StatusSuccess, Route: account.RouteHome}}
	a, _ := newTestApp(t, RouteLogin, svc)

	page := a.Form(RouteLogin)
	page.login.Email = "amina@example.com"
	page.login.Password = "secret1"
	page.sub.Begin()
	msg := page.submit(svc, a.opts.SubmitTimeout)()

	a.Update(msg)
	if a.Route() != RouteHome {
		t.Fatalf("Route() = %q, want home after login", a.Route())
	}
	if svc.login.Email != "amina@example.com" {
		t.Errorf("login sent email %q", svc.login.Email)
	}
	if a.User() != "Amina" {
		t.Errorf("User() = %q, want signed-in name", a.User())
	}
	if !strings.Contains(a.View(), "Amina") {
		t.Error("navbar does not show the signed-in user")
	}
}

func TestApp_LoginFailureStays(t *testing.T) {
	t.Parallel()

	svc := &fakeSubmitter{result: account.Result{Status: form.StatusError, Message: "Invalid credentials"}}
	a, _ := newTestApp(t, RouteLogin, svc)

	page := a.Form(RouteLogin)
	page.sub.Begin()
	a.Update(page.submit(svc, a.opts.SubmitTimeout)())

	if a.Route() != RouteLogin {
		t.Errorf("Route() = %q, want to stay on login", a.Route())
	}
	if got := page.Submission(); got.Status != form.StatusError || got.Message != "Invalid credentials" {
		t.Errorf("Submission() = %+v", got)
	}
	if !strings.Contains(a.View(), "Invalid credentials") {
		t.Error("View() does not show the server message")
	}
	if a.User() != "" {
		t.Errorf("User() = %q after failed login", a.User())
	}
}

func TestFormPage_ValidationResult(t *testing.T) {
	t.Parallel()

	p := NewFormPage(FormQuote, ui.NewTheme(true), 80)
	errs := form.Quote{Email: "not-an-email"}.Validate()
	p.sub.Begin()
	p.Update(formResultMsg{kind: FormQuote, result: account.Result{Status: form.StatusError, Fields: errs}}, nil, 0)

	if got := p.Submission(); got.Status != form.StatusIdle || !got.Fields.Has("email") {
		t.Errorf("Submission() = %+v, want idle with email error", got)
	}
	if p.Redirect() != "" {
		t.Error("validation failure requested a redirect")
	}
	if !strings.Contains(p.View(), form.MsgInvalidEmail) {
		t.Error("View() missing the inline message")
	}
}

func TestFormPage_IgnoresOtherKinds(t *testing.T) {
	t.Parallel()

	p := NewFormPage(FormSignup, ui.NewTheme(true), 80)
	p.Update(formResultMsg{kind: FormLogin, result: account.Result{Status: form.StatusSuccess, Route: "/"}}, nil, 0)
	if p.Redirect() != "" || p.Submission().Status != form.StatusIdle {
		t.Error("signup page reacted to a login result")
	}
}

func TestApp_BookNowAutoCloses(t *testing.T) {
	t.Parallel()

	svc := &fakeSubmitter{result: account.Result{Status: form.StatusSuccess, Message: account.BookingSent}}
	a, clock := newTestApp(t, RouteHome, svc)

	a.Update(runes("b"))
	if !a.Modal().Open() {
		t.Fatal("b did not open the book-now modal")
	}

	a.Update(bookingResultMsg{result: svc.result})
	if a.Modal().Submission().Status != form.StatusSuccess {
		t.Fatalf("modal status = %v", a.Modal().Submission().Status)
	}
	if !strings.Contains(a.View(), account.BookingSent) {
		t.Error("thank-you note not shown")
	}

	clock.Advance(BookingCloseDelay - 1)
	if len(a.timers.events) != 0 {
		t.Fatal("modal close fired early")
	}
	clock.Advance(1)
	a.Update(<-a.timers.events)
	if a.Modal().Open() {
		t.Error("modal still open after the close delay")
	}
}

func TestApp_BookNowEscCancelsClose(t *testing.T) {
	t.Parallel()

	svc := &fakeSubmitter{result: account.Result{Status: form.StatusSuccess}}
	a, clock := newTestApp(t, RouteHome, svc)

	a.Update(runes("b"))
	a.Update(bookingResultMsg{result: svc.result})
	a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if a.Modal().Open() {
		t.Fatal("esc did not close the modal")
	}
	if a.timers.sched.Pending(timerModalClose) {
		t.Error("auto-close still pending after manual close")
	}
	clock.Advance(BookingCloseDelay)
	if len(a.timers.events) != 0 {
		t.Error("cancelled auto-close delivered a message")
	}
}

func TestApp_BookNowFailureKeepsOpen(t *testing.T) {
	t.Parallel()

	svc := &fakeSubmitter{result: account.Result{Status: form.StatusError, Message: "Failed to send quote"}}
	a, _ := newTestApp(t, RouteHome, svc)

	a.Update(runes("b"))
	a.Update(bookingResultMsg{result: svc.result})
	if !a.Modal().Open() {
		t.Fatal("modal closed after a failed booking")
	}
	if !strings.Contains(a.View(), "Failed to send quote") {
		t.Error("failure banner not shown")
	}
}

func TestApp_ChatDemoBot(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t, RouteHome, &fakeSubmitter{})
	a.Update(runes("c"))
	if !a.Chat().Open() {
		t.Fatal("c did not open the chat")
	}

	a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(a.Chat().Lines()) != 1 {
		t.Errorf("blank message was sent: %+v", a.Chat().Lines())
	}

	a.Chat().input.SetValue("Do you clean carpets?")
	a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	lines := a.Chat().Lines()
	if len(lines) != 3 {
		t.Fatalf("Lines() = %+v, want greeting, question, reply", lines)
	}
	if lines[0].Text != ChatGreeting || lines[2].Text != ChatReply || lines[1].From != SenderUser {
		t.Errorf("Lines() = %+v", lines)
	}

	// Keys go to the chat while it is open.
	a.Update(runes("2"))
	if a.Route() != RouteHome {
		t.Error("navigation key leaked through the open chat")
	}
	a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if a.Chat().Open() {
		t.Error("esc did not close the chat")
	}
}

func TestApp_WhatsAppAndLogout(t *testing.T) {
	t.Parallel()

	svc := &fakeSubmitter{name: "Amina"}
	a, _ := newTestApp(t, RouteHome, svc)

	a.Update(runes("w"))
	if !strings.Contains(a.View(), "wa.me/254740786838") {
		t.Error("WhatsApp link not shown")
	}

	if a.User() != "Amina" {
		t.Fatalf("User() = %q", a.User())
	}
	a.Update(runes("o"))
	if svc.logouts != 1 || a.User() != "" {
		t.Errorf("logout: calls=%d user=%q", svc.logouts, a.User())
	}
}

func TestApp_ResizeReclassifies(t *testing.T) {
	t.Parallel()

	// 8px cells: 96 columns is 768px (md), 128 columns is 1024px (lg).
	tests := []struct {
		cols int
		want int
	}{
		{60, 1},
		{95, 1},
		{96, 2},
		{99, 2},
		{127, 2},
		{128, 4},
		{131, 4},
		{160, 4},
	}
	a, _ := newTestApp(t, RouteHome, &fakeSubmitter{})
	for _, tt := range tests {
		a.Update(tea.WindowSizeMsg{Width: tt.cols, Height: 40})
		if got := a.Carousel().Controller().CardsPerView(); got != tt.want {
			t.Errorf("CardsPerView() = %d at %d cols, want %d", got, tt.cols, tt.want)
		}
	}
}

func TestApp_MountClassifiesOnTerminalWidth(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t, RouteServices, &fakeSubmitter{})
	a.Update(tea.WindowSizeMsg{Width: 128, Height: 40})
	a.Navigate(RouteTestimonials)
	if got := a.Carousel().Controller().CardsPerView(); got != 4 {
		t.Errorf("CardsPerView() = %d after mounting at 128 cols, want 4", got)
	}
	for _, line := range strings.Split(a.Carousel().View(), "\n") {
		if w := lipgloss.Width(line); w > 128-pageInset {
			t.Errorf("carousel line is %d cols wide, want <= %d", w, 128-pageInset)
		}
	}
}

func TestApp_QuitClosesTimers(t *testing.T) {
	t.Parallel()

	a, clock := newTestApp(t, RouteHome, &fakeSubmitter{})
	_, cmd := a.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
	if clock.Pending() != 0 {
		t.Errorf("%d timers pending after quit", clock.Pending())
	}
}

func TestApp_StaleCarouselTimerIgnored(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t, RouteHome, &fakeSubmitter{})
	old := a.Carousel()
	old.Next()
	a.Navigate(RouteTestimonials)

	_, cmd := a.Update(timerMsg{src: old.timers, key: timerTransitionEnd, seq: 1})
	if cmd != nil {
		t.Error("stale carousel timer produced a command")
	}
	if a.Carousel().Controller().Index() != 0 {
		t.Error("stale timer moved the new carousel")
	}
}

func TestApp_ViewPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		route string
		want  string
	}{
		{RouteHome, "Book Now"},
		{RouteServices, "Residential Cleaning"},
		{RouteTestimonials, "What Our Clients Say"},
		{RouteContact, "Get In Touch"},
		{RouteLogin, "Password"},
		{RouteSignup, "First name"},
	}
	for _, tt := range tests {
		a, _ := newTestApp(t, tt.route, &fakeSubmitter{})
		a.Update(tea.WindowSizeMsg{Width: 120, Height: 80})
		if view := a.View(); !strings.Contains(view, tt.want) {
			t.Errorf("%s: View() missing %q", tt.route, tt.want)
		}
	}
}
