package cli

import (
	"fmt"

	"github.com/dgilligan/folio/internal/contact"
	"github.com/spf13/cobra"
)

func newContactCmd(app *App) *cobra.Command {
	var f contact.Fields
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Compose a message in your mail client",
		Long: `Build a mailto link addressed to ` + contact.Recipient + ` and open it
with the system mail handler. Nothing is sent by folio itself.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateEmail(f.Email); err != nil {
				return fmt.Errorf("--email: %w", err)
			}
			if err := validateMessage(f.Message); err != nil {
				return fmt.Errorf("--message: %w", err)
			}

			if printOnly {
				fmt.Fprintln(cmd.OutOrStdout(), contact.BuildURI(f))
				return nil
			}

			uri, err := app.Contact.SubmitChecked(cmd.Context(), f)
			fmt.Fprintln(cmd.OutOrStdout(), uri)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), palette(app).Warn("could not open a mail client; copy the link above"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&f.Name, "name", "", "Your name (optional)")
	cmd.Flags().StringVar(&f.Email, "email", "", "Your email address")
	cmd.Flags().StringVar(&f.Message, "message", "", "Message body")
	cmd.Flags().BoolVar(&printOnly, "print", false, "Print the mailto link without opening it")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}
