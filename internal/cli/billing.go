package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tracker-tv/github-admin-bots/internal/browser"
)

func (app *Application) newBillingCommand() *cobra.Command {
	var noHeadless bool

	cmd := &cobra.Command{
		Use:   "billing ORG",
		Short: "Scrape Git LFS storage and bandwidth usage from the billing page",
		Long:  "Logs in to the web UI as GH_LOGIN with GH_PASSWORD. The one time password is read from standard input.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secrets, err := app.loadSecrets()
			if err != nil {
				return fmt.Errorf("loading secrets: %w", err)
			}
			login, password, err := secrets.BrowserCredentials()
			if err != nil {
				return err
			}

			out := app.printer()
			out.Line("Attempting login as '%s', please enter OTP when asked", login)
			out.Line("  (if wrong, set GH_LOGIN & GH_PASSWORD in environment properly)")
			fmt.Fprint(app.out, "OTP: ")
			otp, err := bufio.NewReader(app.in).ReadString('\n')
			if err != nil && otp == "" {
				return fmt.Errorf("reading OTP: %w", err)
			}

			scraper := browser.NewBillingScraper(app.logger, browser.WithHeadless(!noHeadless))
			usage, err := scraper.Usage(cmd.Context(), args[0], browser.Credentials{
				Login:    login,
				Password: password,
				OTP:      strings.TrimSpace(otp),
			})
			if err != nil {
				return err
			}

			data, err := json.Marshal(usage)
			if err != nil {
				return err
			}
			out.Line("%s", data)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noHeadless, "no-headless", false, "show the browser window")
	return cmd
}
