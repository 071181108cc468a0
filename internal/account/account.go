// Package account runs the storefront's submissions: quote and booking
// requests, sign-in and registration. Each flow validates first, calls the
// backend only when the form is clean, and writes the session only after a
// successful auth response.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/milele-cleaning/milele/internal/api"
	"github.com/milele-cleaning/milele/internal/catalog"
	"github.com/milele-cleaning/milele/internal/form"
	"github.com/milele-cleaning/milele/internal/session"
)

// RouteHome is where a successful sign-in or registration lands.
const RouteHome = "/"

// Banner text for each outcome.
const (
	QuoteSent      = "Thanks! We'll get back to you with your free quote shortly."
	BookingSent    = "Thank you! You should receive a call from us soon."
	QuoteFailed    = "Failed to send quote"
	LoginFailed    = "Login failed"
	SignupFailed   = "Signup failed"
	ValidationHint = "Please fix the highlighted fields."
)

// Backend is the subset of the API client the flows need.
type Backend interface {
	SendQuote(ctx context.Context, req api.QuoteRequest) error
	Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error)
}

// Result is the outcome of a submission as the UI shows it.
type Result struct {
	Status  form.Status
	Message string
	// Fields holds per-field messages when validation failed.
	Fields *form.FieldErrors
	// Route is where the UI should navigate next, or "".
	Route string
	// Err is the underlying failure, if any.
	Err error
}

// OK reports whether the submission succeeded.
func (r Result) OK() bool { return r.Status == form.StatusSuccess }

// Service runs the flows against a backend and a session store.
type Service struct {
	backend Backend
	store   session.Store
	logger  *slog.Logger
}

// NewService creates a Service. A nil logger discards.
func NewService(backend Backend, store session.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{backend: backend, store: store, logger: logger}
}

// SubmitQuote validates and sends a contact-page quote request.
func (s *Service) SubmitQuote(ctx context.Context, q form.Quote) Result {
	if errs := q.Validate(); errs != nil {
		return invalid(errs)
	}
	n := q.Normalize()
	if n.ServiceType == "" {
		n.ServiceType = catalog.DefaultServiceType
	}
	if err := s.backend.SendQuote(ctx, quoteRequest(n)); err != nil {
		return s.failed(ctx, "quote request failed", err, QuoteFailed)
	}
	s.logger.Info("quote request sent", "service", n.ServiceType)
	return Result{Status: form.StatusSuccess, Message: QuoteSent}
}

// SubmitBooking validates a book-now request and sends it as a quote.
func (s *Service) SubmitBooking(ctx context.Context, b form.Booking) Result {
	if errs := b.Validate(); errs != nil {
		return invalid(errs)
	}
	q := b.Quote()
	if err := s.backend.SendQuote(ctx, quoteRequest(q)); err != nil {
		return s.failed(ctx, "booking request failed", err, QuoteFailed)
	}
	s.logger.Info("booking request sent", "service", q.ServiceType)
	return Result{Status: form.StatusSuccess, Message: BookingSent}
}

// Login signs in and stores the returned session.
func (s *Service) Login(ctx context.Context, l form.Login) Result {
	if errs := l.Validate(); errs != nil {
		return invalid(errs)
	}
	n := l.Normalize()
	resp, err := s.backend.Login(ctx, api.LoginRequest{Email: n.Email, Password: n.Password})
	if err != nil {
		return s.failed(ctx, "login failed", err, LoginFailed)
	}
	return s.signedIn(resp, LoginFailed)
}

// Signup registers an account and stores the returned session.
func (s *Service) Signup(ctx context.Context, su form.Signup) Result {
	if errs := su.Validate(); errs != nil {
		return invalid(errs)
	}
	n := su.Normalize()
	resp, err := s.backend.Register(ctx, api.RegisterRequest{
		FirstName: n.FirstName,
		LastName:  n.LastName,
		Phone:     n.Phone,
		Email:     n.Email,
		Password:  n.Password,
	})
	if err != nil {
		return s.failed(ctx, "signup failed", err, SignupFailed)
	}
	return s.signedIn(resp, SignupFailed)
}

// Logout clears the stored session.
func (s *Service) Logout() error {
	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("account: logout: %w", err)
	}
	return nil
}

// Current returns the signed-in session, or session.ErrNoSession.
func (s *Service) Current() (*session.Session, error) {
	return session.Current(s.store)
}

// DisplayName returns a short name for the signed-in user, or "" when
// signed out.
func (s *Service) DisplayName() string {
	sess, err := s.Current()
	if err != nil {
		return ""
	}
	return DisplayName(sess)
}

var titleCaser = cases.Title(language.English)

// DisplayName picks the best label from the stored user object: first
// name, then username, then email.
func DisplayName(sess *session.Session) string {
	if name := sess.UserField("first_name"); name != "" {
		return titleCaser.String(form.Clean(name))
	}
	for _, key := range []string{"username", "name", "email"} {
		if v := sess.UserField(key); v != "" {
			return v
		}
	}
	if sess.Valid() {
		return "signed in"
	}
	return ""
}

func (s *Service) signedIn(resp *api.AuthResponse, fallback string) Result {
	sess := &session.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		User:         string(resp.User),
	}
	if err := s.store.Save(sess); err != nil {
		s.logger.Error("save session", "error", err)
		return Result{Status: form.StatusError, Message: fallback, Err: err}
	}
	s.logger.Info("signed in", "user", DisplayName(sess))
	return Result{Status: form.StatusSuccess, Route: RouteHome}
}

func quoteRequest(q form.Quote) api.QuoteRequest {
	return api.QuoteRequest{
		FirstName:   q.FirstName,
		LastName:    q.LastName,
		Email:       q.Email,
		Phone:       q.Phone,
		ServiceType: q.ServiceType,
		Message:     q.Message,
	}
}

func invalid(errs *form.FieldErrors) Result {
	return Result{Status: form.StatusError, Message: ValidationHint, Fields: errs, Err: errs}
}

// failed logs a backend failure and maps it to a banner. Requests the
// server turned away are expected and logged at info; transport and server
// faults are warnings.
func (s *Service) failed(ctx context.Context, msg string, err error, fallback string) Result {
	level := slog.LevelWarn
	var se *api.StatusError
	if errors.As(err, &se) && se.IsClientError() {
		level = slog.LevelInfo
	}
	s.logger.Log(ctx, level, msg, "error", err)
	return Result{Status: form.StatusError, Message: api.UserMessage(err, fallback), Err: err}
}

// IsValidation reports whether r failed client-side validation.
func IsValidation(r Result) bool {
	var fe *form.FieldErrors
	return errors.As(r.Err, &fe)
}
