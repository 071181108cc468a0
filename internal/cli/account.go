package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milele-cleaning/milele/internal/account"
	"github.com/milele-cleaning/milele/internal/session"
)

func init() {
	rootCmd.AddCommand(newWhoamiCmd(), newLogoutCmd())
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if err := ready(); err != nil {
				return err
			}

			sess, err := deps.Account.Current()
			if errors.Is(err, session.ErrNoSession) {
				_, _ = fmt.Fprintln(out, "Not signed in. Run 'milele login' first.")
				return nil
			}
			if err != nil {
				return fmt.Errorf("read session: %w", err)
			}

			pairs := []kvPair{{"Name", account.DisplayName(sess)}}
			if email := sess.UserField("email"); email != "" {
				pairs = append(pairs, kvPair{"Email", email})
			}
			if phone := sess.UserField("phone"); phone != "" {
				pairs = append(pairs, kvPair{"Phone", phone})
			}
			if fs, ok := deps.Sessions.(*session.FileStore); ok {
				pairs = append(pairs, kvPair{"Session", fs.Path()})
			}
			_, _ = fmt.Fprintln(out, renderCard(deps.Theme, "Signed in", renderKeyValueLines(deps.Theme, pairs)))
			return nil
		},
	}
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := ready(); err != nil {
				return err
			}
			if err := deps.Account.Logout(); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSuccessCard(deps.Theme, "Signed out"))
			return nil
		},
	}
}
