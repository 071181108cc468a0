package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/milele-cleaning/milele/internal/catalog"
	"github.com/milele-cleaning/milele/internal/form"
)

// ErrAborted is returned when the user cancels a form.
var ErrAborted = errors.New("ui: form aborted")

// RunForm runs f until it completes, the user aborts, or ctx is done.
func RunForm(ctx context.Context, f *huh.Form) error {
	if err := f.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return fmt.Errorf("ui: run form: %w", err)
	}
	return nil
}

// fieldValidator adapts one schema field to huh's validator signature.
// values snapshots the whole form so cross-field rules see siblings; the
// field's own value comes from the input since huh validates before it
// writes back. Free-text input is cleaned first, passwords are not.
func fieldValidator(schema form.Schema, name string, values func() form.Values, clean bool) func(string) error {
	return func(s string) error {
		v := values()
		if clean {
			s = form.Clean(s)
		}
		v[name] = s
		return schema.ValidateField(name, v)
	}
}

func serviceOptions() []huh.Option[string] {
	return huh.NewOptions(catalog.ServiceTypes()...)
}

// QuoteForm builds the free-quote request form bound to q.
func (t *Theme) QuoteForm(q *form.Quote) *huh.Form {
	if q.ServiceType == "" {
		q.ServiceType = catalog.DefaultServiceType
	}
	values := func() form.Values { return q.Values() }
	v := func(name string) func(string) error {
		return fieldValidator(form.QuoteSchema, name, values, true)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("First name").Value(&q.FirstName),
			huh.NewInput().Title("Last name").Value(&q.LastName),
			huh.NewInput().Title("Email").Placeholder("you@example.com").Value(&q.Email).Validate(v("email")),
			huh.NewInput().Title("Phone").Placeholder("+254...").Value(&q.Phone),
		).Title("Request a Free Quote"),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Service").Options(serviceOptions()...).Value(&q.ServiceType).
				Validate(v("serviceType")),
			huh.NewText().Title("Message").Placeholder("Tell us about your space").Value(&q.Message),
		),
	).WithTheme(t.Huh()).WithShowHelp(true)
}

// BookingForm builds the book-now form bound to b.
func (t *Theme) BookingForm(b *form.Booking) *huh.Form {
	if b.ServiceType == "" {
		b.ServiceType = catalog.DefaultServiceType
	}
	values := func() form.Values { return b.Values() }
	v := func(name string) func(string) error {
		return fieldValidator(form.BookingSchema, name, values, true)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Service type").Options(serviceOptions()...).Value(&b.ServiceType).
				Validate(v("serviceType")),
			huh.NewInput().Title("Location").Placeholder("Estate, town").Value(&b.Location).Validate(v("location")),
			huh.NewInput().Title("Date").Placeholder("YYYY-MM-DD").Value(&b.Date).Validate(v("date")),
			huh.NewInput().Title("Time").Placeholder("HH:MM").Value(&b.Time).Validate(v("time")),
		).Title("Book a Cleaning"),
		huh.NewGroup(
			huh.NewInput().Title("Email").Value(&b.Email).Validate(v("email")),
			huh.NewInput().Title("Phone").Value(&b.Phone).Validate(v("phone")),
			huh.NewText().Title("Notes").Value(&b.Notes),
		),
	).WithTheme(t.Huh()).WithShowHelp(true)
}

// LoginForm builds the sign-in form bound to l.
func (t *Theme) LoginForm(l *form.Login) *huh.Form {
	values := func() form.Values { return l.Values() }

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Email").Value(&l.Email).
				Validate(fieldValidator(form.LoginSchema, "email", values, true)),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&l.Password).
				Validate(fieldValidator(form.LoginSchema, "password", values, false)),
		).Title("Sign in"),
	).WithTheme(t.Huh()).WithShowHelp(true)
}

// SignupForm builds the registration form bound to s.
func (t *Theme) SignupForm(s *form.Signup) *huh.Form {
	values := func() form.Values { return s.Values() }
	v := func(name string, clean bool) func(string) error {
		return fieldValidator(form.SignupSchema, name, values, clean)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("First name").Value(&s.FirstName).Validate(v("first_name", true)),
			huh.NewInput().Title("Last name").Value(&s.LastName).Validate(v("last_name", true)),
			huh.NewInput().Title("Phone").Value(&s.Phone).Validate(v("phone", true)),
			huh.NewInput().Title("Email").Value(&s.Email).Validate(v("email", true)),
		).Title("Create an account"),
		huh.NewGroup(
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&s.Password).
				Validate(v("password", false)),
			huh.NewInput().Title("Confirm password").EchoMode(huh.EchoModePassword).Value(&s.ConfirmPassword).
				Validate(v("confirm_password", false)),
		),
	).WithTheme(t.Huh()).WithShowHelp(true)
}
