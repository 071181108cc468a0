package form

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/milele-cleaning/milele/internal/catalog"
)

// Messages shared by the forms.
const (
	MsgRequired        = "Required"
	MsgInvalidEmail    = "Invalid email"
	MsgPasswordShort   = "Password too short"
	MsgPasswordsMatch  = "Passwords must match"
	MsgConfirmPassword = "Confirm your password"
	MsgUnknownService  = "Choose one of our services"

	// MinPasswordLength is the shortest password signup accepts.
	MinPasswordLength = 6
)

// Clean NFC-normalizes and trims free-text input.
func Clean(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// Quote is the contact-page quote request.
type Quote struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ServiceType string `json:"serviceType"`
	Message     string `json:"message"`
}

// QuoteSchema validates a Quote.
var QuoteSchema = Schema{
	{Name: "firstName"},
	{Name: "lastName"},
	{Name: "email", Rules: []Rule{Required(MsgRequired), Email(MsgInvalidEmail)}},
	{Name: "phone"},
	{Name: "serviceType", Rules: []Rule{OneOf(catalog.ServiceTypes(), MsgUnknownService)}},
	{Name: "message"},
}

// Normalize returns a copy with every field cleaned.
func (q Quote) Normalize() Quote {
	return Quote{
		FirstName:   Clean(q.FirstName),
		LastName:    Clean(q.LastName),
		Email:       Clean(q.Email),
		Phone:       Clean(q.Phone),
		ServiceType: Clean(q.ServiceType),
		Message:     Clean(q.Message),
	}
}

// Values returns the fields keyed by their schema names.
func (q Quote) Values() Values {
	return Values{
		"firstName":   q.FirstName,
		"lastName":    q.LastName,
		"email":       q.Email,
		"phone":       q.Phone,
		"serviceType": q.ServiceType,
		"message":     q.Message,
	}
}

// Validate checks the quote after normalization.
func (q Quote) Validate() *FieldErrors {
	return QuoteSchema.Validate(q.Normalize().Values())
}

// Booking is the book-now request.
type Booking struct {
	ServiceType string
	Location    string
	Date        string // YYYY-MM-DD
	Time        string // HH:MM, 24h
	Email       string
	Phone       string
	Notes       string
}

// Date and time layouts accepted by the booking form.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// BookingSchema validates a Booking.
var BookingSchema = Schema{
	{Name: "serviceType", Rules: []Rule{Required("Service type is required"), OneOf(catalog.ServiceTypes(), MsgUnknownService)}},
	{Name: "location", Rules: []Rule{Required("Location is required")}},
	{Name: "date", Rules: []Rule{Required("Date is required"), Layout(DateLayout, "Use the date format YYYY-MM-DD")}},
	{Name: "time", Rules: []Rule{Required("Time is required"), Layout(TimeLayout, "Use the time format HH:MM")}},
	{Name: "email", Rules: []Rule{Required("Email is required"), Email(MsgInvalidEmail)}},
	{Name: "phone", Rules: []Rule{Required("Phone is required")}},
	{Name: "notes"},
}

// Normalize returns a copy with every field cleaned.
func (b Booking) Normalize() Booking {
	return Booking{
		ServiceType: Clean(b.ServiceType),
		Location:    Clean(b.Location),
		Date:        Clean(b.Date),
		Time:        Clean(b.Time),
		Email:       Clean(b.Email),
		Phone:       Clean(b.Phone),
		Notes:       Clean(b.Notes),
	}
}

// Values returns the fields keyed by their schema names.
func (b Booking) Values() Values {
	return Values{
		"serviceType": b.ServiceType,
		"location":    b.Location,
		"date":        b.Date,
		"time":        b.Time,
		"email":       b.Email,
		"phone":       b.Phone,
		"notes":       b.Notes,
	}
}

// Validate checks the booking after normalization.
func (b Booking) Validate() *FieldErrors {
	return BookingSchema.Validate(b.Normalize().Values())
}

// Quote folds the booking into a quote request. The quote endpoint is the
// only intake the backend offers, so location and schedule travel in the
// message body.
func (b Booking) Quote() Quote {
	n := b.Normalize()
	var msg strings.Builder
	msg.WriteString("Booking request\n")
	fmt.Fprintf(&msg, "Location: %s\n", n.Location)
	fmt.Fprintf(&msg, "Date: %s\n", n.Date)
	fmt.Fprintf(&msg, "Time: %s\n", n.Time)
	if n.Notes != "" {
		fmt.Fprintf(&msg, "Notes: %s\n", n.Notes)
	}
	return Quote{
		Email:       n.Email,
		Phone:       n.Phone,
		ServiceType: n.ServiceType,
		Message:     strings.TrimRight(msg.String(), "\n"),
	}
}

// Login is the sign-in form.
type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginSchema validates a Login.
var LoginSchema = Schema{
	{Name: "email", Rules: []Rule{Required(MsgRequired), Email(MsgInvalidEmail)}},
	{Name: "password", Rules: []Rule{Required(MsgRequired)}},
}

// Normalize cleans the email. Passwords are sent exactly as typed.
func (l Login) Normalize() Login {
	return Login{Email: Clean(l.Email), Password: l.Password}
}

// Values returns the fields keyed by their schema names.
func (l Login) Values() Values {
	return Values{"email": l.Email, "password": l.Password}
}

// Validate checks the login after normalization.
func (l Login) Validate() *FieldErrors {
	return LoginSchema.Validate(l.Normalize().Values())
}

// Signup is the registration form.
type Signup struct {
	FirstName       string
	LastName        string
	Phone           string
	Email           string
	Password        string
	ConfirmPassword string
}

// SignupSchema validates a Signup.
var SignupSchema = Schema{
	{Name: "first_name", Rules: []Rule{Required(MsgRequired)}},
	{Name: "last_name", Rules: []Rule{Required(MsgRequired)}},
	{Name: "phone", Rules: []Rule{Required(MsgRequired)}},
	{Name: "email", Rules: []Rule{Required(MsgRequired), Email(MsgInvalidEmail)}},
	{Name: "password", Rules: []Rule{Required(MsgRequired), MinLength(MinPasswordLength, MsgPasswordShort)}},
	{Name: "confirm_password", Rules: []Rule{Required(MsgConfirmPassword), Matches("password", MsgPasswordsMatch)}},
}

// Normalize cleans the text fields. Passwords are left untouched.
func (s Signup) Normalize() Signup {
	return Signup{
		FirstName:       Clean(s.FirstName),
		LastName:        Clean(s.LastName),
		Phone:           Clean(s.Phone),
		Email:           Clean(s.Email),
		Password:        s.Password,
		ConfirmPassword: s.ConfirmPassword,
	}
}

// Values returns the fields keyed by their schema names.
func (s Signup) Values() Values {
	return Values{
		"first_name":       s.FirstName,
		"last_name":        s.LastName,
		"phone":            s.Phone,
		"email":            s.Email,
		"password":         s.Password,
		"confirm_password": s.ConfirmPassword,
	}
}

// Validate checks the signup after normalization.
func (s Signup) Validate() *FieldErrors {
	return SignupSchema.Validate(s.Normalize().Values())
}
