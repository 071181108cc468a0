package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/milele-cleaning/milele/internal/account"
	"github.com/milele-cleaning/milele/internal/catalog"
	"github.com/milele-cleaning/milele/internal/form"
	"github.com/milele-cleaning/milele/internal/ui"
)

func init() {
	rootCmd.AddCommand(
		newQuoteCmd(),
		newBookCmd(),
		newLoginCmd(),
		newSignupCmd(),
	)
}

// formFlag binds a command flag to a form field.
type formFlag struct {
	flag  string
	field string
	usage string
}

// bindFormFlags registers one string flag per field.
func bindFormFlags(cmd *cobra.Command, specs []formFlag) {
	for _, s := range specs {
		cmd.Flags().String(s.flag, "", s.usage)
	}
}

// loadFormFlags hands the flag values to the headless manager keyed by
// field name.
func loadFormFlags(cmd *cobra.Command, specs []formFlag) error {
	values := make(map[string]string, len(specs))
	for _, s := range specs {
		v, err := cmd.Flags().GetString(s.flag)
		if err != nil {
			return fmt.Errorf("read --%s: %w", s.flag, err)
		}
		values[s.field] = v
	}
	deps.Headless.SetValues(values)
	return nil
}

// collect fills the form from flags, then prompts with build when a
// terminal is available. Flag values prefill the prompts.
func collect(ctx context.Context, fields map[string]*string, build func() *huh.Form) error {
	deps.Headless.Fill(fields)
	if deps.Headless.IsHeadless() {
		return nil
	}
	return ui.RunForm(ctx, build())
}

// submit runs fn behind a spinner and prints the outcome. A failed
// submission is returned as an error so the exit status reflects it.
func submit(cmd *cobra.Command, title, success string, fn func(context.Context) account.Result) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), submitTimeout())
	defer cancel()

	spin := ui.NewSpinner(deps.Theme, deps.Headless, title)
	res := fn(ctx)
	spin.Stop()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderResult(deps.Theme, res, success))
	if !res.OK() {
		return fmt.Errorf("%s: %s", cmd.Name(), res.Message)
	}
	return nil
}

// defaultSubmitTimeout bounds a submission when the config sets none.
const defaultSubmitTimeout = 15 * time.Second

func submitTimeout() time.Duration {
	if t := deps.Config.Get().API.Timeout(); t > 0 {
		return t
	}
	return defaultSubmitTimeout
}

// aborted reports a cancelled prompt without failing the command.
func aborted(cmd *cobra.Command, err error) (bool, error) {
	if errors.Is(err, ui.ErrAborted) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
		return true, nil
	}
	return err != nil, err
}

var quoteFlags = []formFlag{
	{"first-name", "firstName", "first name"},
	{"last-name", "lastName", "last name"},
	{"email", "email", "email address (required)"},
	{"phone", "phone", "phone number"},
	{"service", "serviceType", "service type, default " + catalog.DefaultServiceType},
	{"message", "message", "anything we should know"},
}

func newQuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Request a free quote",
		Long:  "Request a free quote. Services: " + strings.Join(catalog.ServiceTypes(), ", ") + ".",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := ready(); err != nil {
				return err
			}
			if err := loadFormFlags(cmd, quoteFlags); err != nil {
				return err
			}

			var q form.Quote
			err := collect(cmd.Context(), map[string]*string{
				"firstName":   &q.FirstName,
				"lastName":    &q.LastName,
				"email":       &q.Email,
				"phone":       &q.Phone,
				"serviceType": &q.ServiceType,
				"message":     &q.Message,
			}, func() *huh.Form { return deps.Theme.QuoteForm(&q) })
			if done, err := aborted(cmd, err); done {
				return err
			}

			return submit(cmd, "Sending your request...", account.QuoteSent, func(ctx context.Context) account.Result {
				return deps.Account.SubmitQuote(ctx, q)
			})
		},
	}
	bindFormFlags(cmd, quoteFlags)
	return cmd
}

var bookFlags = []formFlag{
	{"service", "serviceType", "service type, default " + catalog.DefaultServiceType},
	{"location", "location", "where we should clean"},
	{"date", "date", "date as YYYY-MM-DD"},
	{"time", "time", "time as HH:MM"},
	{"email", "email", "email address"},
	{"phone", "phone", "phone number"},
	{"notes", "notes", "access notes or special requests"},
}

func newBookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a cleaning",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := ready(); err != nil {
				return err
			}
			if err := loadFormFlags(cmd, bookFlags); err != nil {
				return err
			}

			b := form.Booking{ServiceType: catalog.DefaultServiceType}
			err := collect(cmd.Context(), map[string]*string{
				"serviceType": &b.ServiceType,
				"location":    &b.Location,
				"date":        &b.Date,
				"time":        &b.Time,
				"email":       &b.Email,
				"phone":       &b.Phone,
				"notes":       &b.Notes,
			}, func() *huh.Form { return deps.Theme.BookingForm(&b) })
			if done, err := aborted(cmd, err); done {
				return err
			}

			return submit(cmd, "Booking...", account.BookingSent, func(ctx context.Context) account.Result {
				return deps.Account.SubmitBooking(ctx, b)
			})
		},
	}
	bindFormFlags(cmd, bookFlags)
	return cmd
}

var loginFlags = []formFlag{
	{"email", "email", "account email"},
	{"password", "password", "account password (prefer --password-stdin)"},
}

func newLoginCmd() *cobra.Command {
	var passwordStdin bool
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to your account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := ready(); err != nil {
				return err
			}
			if err := loadFormFlags(cmd, loginFlags); err != nil {
				return err
			}

			var l form.Login
			if passwordStdin {
				pw, err := readPassword(cmd.InOrStdin())
				if err != nil {
					return err
				}
				l.Password = pw
			}
			err := collect(cmd.Context(), map[string]*string{
				"email":    &l.Email,
				"password": &l.Password,
			}, func() *huh.Form { return deps.Theme.LoginForm(&l) })
			if done, err := aborted(cmd, err); done {
				return err
			}

			return submit(cmd, "Signing in...", "", func(ctx context.Context) account.Result {
				res := deps.Account.Login(ctx, l)
				if res.OK() {
					res.Message = "Signed in as " + deps.Account.DisplayName()
				}
				return res
			})
		},
	}
	bindFormFlags(cmd, loginFlags)
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the password from stdin")
	return cmd
}

var signupFlags = []formFlag{
	{"first-name", "first_name", "first name"},
	{"last-name", "last_name", "last name"},
	{"phone", "phone", "phone number"},
	{"email", "email", "account email"},
	{"password", "password", "password (prefer --password-stdin)"},
	{"confirm-password", "confirm_password", "password again; defaults to --password when prompts are off"},
}

func newSignupCmd() *cobra.Command {
	var passwordStdin bool
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := ready(); err != nil {
				return err
			}
			if err := loadFormFlags(cmd, signupFlags); err != nil {
				return err
			}

			var s form.Signup
			if passwordStdin {
				pw, err := readPassword(cmd.InOrStdin())
				if err != nil {
					return err
				}
				s.Password = pw
			}
			err := collect(cmd.Context(), map[string]*string{
				"first_name":       &s.FirstName,
				"last_name":        &s.LastName,
				"phone":            &s.Phone,
				"email":            &s.Email,
				"password":         &s.Password,
				"confirm_password": &s.ConfirmPassword,
			}, func() *huh.Form { return deps.Theme.SignupForm(&s) })
			if done, err := aborted(cmd, err); done {
				return err
			}
			if deps.Headless.IsHeadless() && s.ConfirmPassword == "" {
				s.ConfirmPassword = s.Password
			}

			return submit(cmd, "Creating your account...", "", func(ctx context.Context) account.Result {
				res := deps.Account.Signup(ctx, s)
				if res.OK() {
					res.Message = "Welcome, " + deps.Account.DisplayName()
				}
				return res
			})
		},
	}
	bindFormFlags(cmd, signupFlags)
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the password from stdin")
	return cmd
}

// readPassword reads the first line of r without its line ending.
func readPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
