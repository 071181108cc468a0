package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/milele-cleaning/milele/internal/account"
	"github.com/milele-cleaning/milele/internal/form"
	"github.com/milele-cleaning/milele/internal/ui"
)

// Submitter runs form submissions. *account.Service implements it.
type Submitter interface {
	SubmitQuote(ctx context.Context, q form.Quote) account.Result
	SubmitBooking(ctx context.Context, b form.Booking) account.Result
	Login(ctx context.Context, l form.Login) account.Result
	Signup(ctx context.Context, s form.Signup) account.Result
	DisplayName() string
	Logout() error
}

// FormKind selects which form a FormPage hosts.
type FormKind int

const (
	FormQuote FormKind = iota
	FormLogin
	FormSignup
)

// formResultMsg carries a submission outcome back to its page.
type formResultMsg struct {
	kind   FormKind
	result account.Result
}

// embed detaches a huh form from program lifecycle commands so completing
// it does not quit the app.
func embed(f *huh.Form, width int) *huh.Form {
	f.SubmitCmd = nil
	f.CancelCmd = nil
	return f.WithWidth(width).WithShowHelp(false)
}

// FormPage hosts one of the quote, login or signup forms.
type FormPage struct {
	kind   FormKind
	theme  *ui.Theme
	form   *huh.Form
	quote  *form.Quote
	login  *form.Login
	signup *form.Signup
	sub    form.Submission
	width  int
	// redirect is the route a successful submission asked for.
	redirect string
}

// NewFormPage creates a page for kind with empty values.
func NewFormPage(kind FormKind, theme *ui.Theme, width int) *FormPage {
	p := &FormPage{kind: kind, theme: theme, width: width}
	p.reset()
	return p
}

// Kind returns the hosted form.
func (p *FormPage) Kind() FormKind { return p.kind }

// Submission returns the page's submit state.
func (p *FormPage) Submission() form.Submission { return p.sub }

// Init starts the embedded form.
func (p *FormPage) Init() tea.Cmd { return p.form.Init() }

// SetWidth resizes the embedded form.
func (p *FormPage) SetWidth(w int) {
	p.width = w
	p.form = p.form.WithWidth(p.formWidth())
}

func (p *FormPage) formWidth() int {
	return max(30, min(p.width-4, 70))
}

func (p *FormPage) reset() {
	p.quote = &form.Quote{}
	p.login = &form.Login{}
	p.signup = &form.Signup{}
	p.rebuild()
}

// rebuild recreates the form around the current values so a failed
// submission can be corrected and retried.
func (p *FormPage) rebuild() {
	var f *huh.Form
	switch p.kind {
	case FormLogin:
		f = p.theme.LoginForm(p.login)
	case FormSignup:
		f = p.theme.SignupForm(p.signup)
	default:
		f = p.theme.QuoteForm(p.quote)
	}
	p.form = embed(f, p.formWidth())
}

// Update drives the form and, once it completes, the submission.
func (p *FormPage) Update(msg tea.Msg, svc Submitter, timeout time.Duration) tea.Cmd {
	if res, ok := msg.(formResultMsg); ok {
		if res.kind != p.kind {
			return nil
		}
		return p.finish(res.result)
	}

	if p.sub.Status == form.StatusSubmitting {
		return nil
	}

	fm, cmd := p.form.Update(msg)
	if f, ok := fm.(*huh.Form); ok {
		p.form = f
	}
	switch p.form.State {
	case huh.StateCompleted:
		if !p.sub.Begin() {
			return cmd
		}
		return tea.Batch(cmd, p.submit(svc, timeout))
	case huh.StateAborted:
		p.sub.Reset()
		p.reset()
		return p.form.Init()
	}
	return cmd
}

func (p *FormPage) submit(svc Submitter, timeout time.Duration) tea.Cmd {
	kind := p.kind
	quote, login, signup := *p.quote, *p.login, *p.signup
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		var res account.Result
		switch kind {
		case FormLogin:
			res = svc.Login(ctx, login)
		case FormSignup:
			res = svc.Signup(ctx, signup)
		default:
			res = svc.SubmitQuote(ctx, quote)
		}
		return formResultMsg{kind: kind, result: res}
	}
}

func (p *FormPage) finish(res account.Result) tea.Cmd {
	switch {
	case res.OK():
		p.sub.Succeed(res.Message)
		p.reset()
	case res.Fields != nil:
		p.sub.Reject(res.Fields)
		p.rebuild()
	default:
		p.sub.Fail(res.Message)
		p.rebuild()
	}

	if res.OK() {
		p.redirect = res.Route
	}
	return p.form.Init()
}

// Redirect returns and clears the route requested by the last successful
// submission.
func (p *FormPage) Redirect() string {
	r := p.redirect
	p.redirect = ""
	return r
}

// View renders the banner and the form.
func (p *FormPage) View() string {
	var banner string
	switch p.sub.Status {
	case form.StatusSubmitting:
		banner = p.theme.Subtle().Render("Submitting...")
	case form.StatusSuccess:
		banner = p.theme.Success().Render(p.sub.Message)
	case form.StatusError:
		banner = p.theme.Error().Render(p.sub.Message)
	default:
		if p.sub.Fields != nil {
			banner = p.theme.Error().Render(p.sub.Fields.Error())
		}
	}
	if banner == "" {
		return p.form.View()
	}
	return banner + "\n\n" + p.form.View()
}
