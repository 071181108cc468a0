package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/milele-cleaning/milele/internal/account"
	"github.com/milele-cleaning/milele/internal/form"
	"github.com/milele-cleaning/milele/internal/ui"
)

// Book-now modal timing.
const (
	timerModalClose = "book-now-close"

	// BookingCloseDelay is how long the thank-you note stays up.
	BookingCloseDelay = 2 * time.Second
)

// bookingResultMsg carries a booking submission outcome.
type bookingResultMsg struct {
	result account.Result
}

// BookNow is the book-now modal opened from the hero call to action.
type BookNow struct {
	open    bool
	booking *form.Booking
	form    *huh.Form
	sub     form.Submission
	theme   *ui.Theme
	width   int
}

// NewBookNow creates a closed modal.
func NewBookNow(theme *ui.Theme) *BookNow {
	return &BookNow{theme: theme, width: 60}
}

// Open reports whether the modal is showing.
func (m *BookNow) Open() bool { return m.open }

// Submission returns the modal's submit state.
func (m *BookNow) Submission() form.Submission { return m.sub }

// Show opens the modal with an empty form.
func (m *BookNow) Show() tea.Cmd {
	m.open = true
	m.sub.Reset()
	m.booking = &form.Booking{}
	m.rebuild()
	return m.form.Init()
}

// Hide closes the modal and cancels its auto-close.
func (m *BookNow) Hide(timers *timerBridge) {
	m.open = false
	timers.cancel(timerModalClose)
}

// SetWidth sets the modal width in columns.
func (m *BookNow) SetWidth(w int) {
	m.width = max(40, min(w-4, 72))
	if m.form != nil {
		m.form = m.form.WithWidth(m.width - 4)
	}
}

func (m *BookNow) rebuild() {
	m.form = embed(m.theme.BookingForm(m.booking), m.width-4)
}

// Update drives the embedded form and starts the submission once it
// completes.
func (m *BookNow) Update(msg tea.Msg, svc Submitter, timers *timerBridge, timeout time.Duration) tea.Cmd {
	if !m.open {
		return nil
	}

	switch msg := msg.(type) {
	case bookingResultMsg:
		if msg.result.OK() {
			m.sub.Succeed(msg.result.Message)
			_ = timers.after(timerModalClose, BookingCloseDelay)
			return nil
		}
		if msg.result.Fields != nil {
			m.sub.Reject(msg.result.Fields)
		} else {
			m.sub.Fail(msg.result.Message)
		}
		m.rebuild()
		return m.form.Init()

	case timerMsg:
		if msg.key == timerModalClose && timers.current(msg) {
			m.open = false
		}
		return nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Back) || m.sub.Status == form.StatusSuccess {
			m.Hide(timers)
			return nil
		}
	}

	if m.sub.Status == form.StatusSubmitting || m.sub.Status == form.StatusSuccess {
		return nil
	}

	fm, cmd := m.form.Update(msg)
	if f, ok := fm.(*huh.Form); ok {
		m.form = f
	}
	switch m.form.State {
	case huh.StateCompleted:
		if !m.sub.Begin() {
			return cmd
		}
		booking := *m.booking
		return tea.Batch(cmd, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			return bookingResultMsg{result: svc.SubmitBooking(ctx, booking)}
		})
	case huh.StateAborted:
		m.Hide(timers)
		return nil
	}
	return cmd
}

// View renders the modal body.
func (m *BookNow) View() string {
	if !m.open {
		return ""
	}
	var body string
	switch m.sub.Status {
	case form.StatusSuccess:
		body = m.theme.Success().Render(m.sub.Message)
	case form.StatusSubmitting:
		body = m.theme.Subtle().Render("Sending your booking...")
	default:
		body = m.form.View()
		if m.sub.Status == form.StatusError && m.sub.Message != "" {
			body = m.theme.Error().Render(m.sub.Message) + "\n\n" + body
		}
		if m.sub.Fields != nil {
			body = m.theme.Error().Render(m.sub.Fields.Error()) + "\n\n" + body
		}
	}
	return m.theme.Card().Width(m.width).Render(m.theme.Title().Render("Book Now") + "\n\n" + body)
}
