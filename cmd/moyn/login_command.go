package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moyn-dev/moyn-cli/internal/api"
	"github.com/moyn-dev/moyn-cli/internal/config"
	"github.com/moyn-dev/moyn-cli/internal/logging"
	"github.com/moyn-dev/moyn-cli/internal/services"
)

func newLoginCommand(ctx *commandContext) *cobra.Command {
	var tokenFlag string
	var urlFlag string
	var noVerify bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store your API token",
		Long: "Store your API token and service URL in the config file.\n\n" +
			"Values not passed as flags are read from stdin. The token is checked\n" +
			"against the service before it is saved unless --no-verify is set.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			in := cmd.InOrStdin()
			reader := bufio.NewReader(in)

			token := strings.TrimSpace(tokenFlag)
			apiURL := strings.TrimSpace(urlFlag)
			prompted := false
			if token == "" {
				if token, err = promptLine(in, reader, out, "Enter your API token (from your profile page): "); err != nil {
					return err
				}
				prompted = true
			}
			if apiURL == "" {
				apiURL = cfg.Session.APIURL
				if prompted {
					value, err := promptLine(in, reader, out, fmt.Sprintf("Enter API URL [%s]: ", apiURL))
					if err != nil {
						return err
					}
					if value != "" {
						apiURL = value
					}
				}
			}

			var session config.Session
			if noVerify {
				session, err = api.NewSession(token, apiURL)
			} else {
				session, err = api.Login(requestContext(cmd), token, apiURL, ctx.clientOptions(cfg)...)
			}
			if err != nil {
				return err
			}

			cfg.SetSession(session)
			if err := config.Save(ctx.configPath, cfg); err != nil {
				return err
			}
			ctx.loggerValue().Info("session stored",
				logging.String("config_path", ctx.configPath),
				logging.String("api_url", session.APIURL),
				logging.Bool("verified", !noVerify),
			)

			printStatus(out, statusOK, "Logged in", session.APIURL)
			fmt.Fprintf(out, "Token saved to %s\n", ctx.configPath)
			if noVerify {
				printStatus(out, statusWarn, "Not verified", "the token was saved without contacting the service")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tokenFlag, "token", "", "API token (prompted when omitted)")
	cmd.Flags().StringVar(&urlFlag, "url", "", "Service base URL")
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "Save the token without checking it against the service")
	return cmd
}

// promptLine writes prompt and reads one trimmed line. Prompts are only shown
// when stdin is a terminal or an in-memory reader, so piped input stays quiet.
// End of input yields an empty line.
func promptLine(in io.Reader, reader *bufio.Reader, out io.Writer, prompt string) (string, error) {
	if promptVisible(in) {
		fmt.Fprint(out, prompt)
	}
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", services.Wrap(services.ErrValidation, "login", "read input", "", err)
	}
	return strings.TrimSpace(line), nil
}

func promptVisible(in io.Reader) bool {
	file, ok := in.(*os.File)
	if !ok {
		return true
	}
	return isTerminal(file)
}
