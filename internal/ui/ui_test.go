package ui

import (
	"strings"
	"testing"

	"github.com/milele-cleaning/milele/internal/form"
)

func TestHeadlessManager_Force(t *testing.T) {
	t.Parallel()

	hm := NewHeadlessManager()
	hm.ForceHeadless(true)
	if !hm.IsHeadless() {
		t.Error("IsHeadless() = false after ForceHeadless(true)")
	}
	hm.ForceHeadless(false)
	if hm.IsHeadless() {
		t.Error("IsHeadless() = true after ForceHeadless(false)")
	}
}

func TestHeadlessManager_Fill(t *testing.T) {
	t.Parallel()

	hm := NewHeadlessManager()
	hm.SetValues(map[string]string{"email": "a@b.co", "phone": ""})

	if _, ok := hm.Value("phone"); ok {
		t.Error("empty value should be dropped")
	}

	l := form.Login{Email: "old@b.co", Password: "kept"}
	hm.Fill(map[string]*string{"email": &l.Email, "password": &l.Password})
	if l.Email != "a@b.co" {
		t.Errorf("Email = %q", l.Email)
	}
	if l.Password != "kept" {
		t.Errorf("Password = %q, want untouched", l.Password)
	}
}

func TestFieldValidator(t *testing.T) {
	t.Parallel()

	s := form.Signup{Password: "secret1"}
	values := func() form.Values { return s.Values() }

	email := fieldValidator(form.SignupSchema, "email", values, true)
	if err := email("  amina@example.com "); err != nil {
		t.Errorf("cleaned email rejected: %v", err)
	}
	if err := email("nope"); err == nil || err.Error() != form.MsgInvalidEmail {
		t.Errorf("email(nope) = %v", err)
	}

	confirm := fieldValidator(form.SignupSchema, "confirm_password", values, false)
	if err := confirm("secret1"); err != nil {
		t.Errorf("matching confirm rejected: %v", err)
	}
	if err := confirm("secret1 "); err == nil || err.Error() != form.MsgPasswordsMatch {
		t.Errorf("confirm with trailing space = %v, want mismatch", err)
	}
}

func TestTheme_NoColor(t *testing.T) {
	t.Parallel()

	plain := NewTheme(true)
	if got := plain.Title().Render("Milele"); !strings.Contains(got, "Milele") {
		t.Errorf("Title().Render() = %q", got)
	}
	if plain.Huh() == nil || NewTheme(false).Huh() == nil {
		t.Error("Huh() returned nil")
	}
}

func TestForms_Build(t *testing.T) {
	t.Parallel()

	theme := NewTheme(true)
	q := &form.Quote{}
	if theme.QuoteForm(q) == nil {
		t.Fatal("QuoteForm() = nil")
	}
	if q.ServiceType != "Residential Cleaning" {
		t.Errorf("ServiceType default = %q", q.ServiceType)
	}
	b := &form.Booking{}
	if theme.BookingForm(b) == nil || b.ServiceType == "" {
		t.Error("BookingForm() did not preselect a service")
	}
	if theme.LoginForm(&form.Login{}) == nil || theme.SignupForm(&form.Signup{}) == nil {
		t.Error("auth forms = nil")
	}
}
