package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/information-sharing-networks/teamsd/internal/client"
	"github.com/information-sharing-networks/teamsd/internal/config"
	"github.com/information-sharing-networks/teamsd/internal/logger"
	"github.com/information-sharing-networks/teamsd/internal/version"
	"github.com/spf13/cobra"

	// root certificates for backends served over https when the image has no system pool
	_ "golang.org/x/crypto/x509roots/fallback"
)

// app holds the state shared by the subcommands. It is populated before any subcommand runs.
type app struct {
	apiURL  string
	verbose bool

	cfg       *config.Config
	logger    *slog.Logger
	apiClient *client.Client
}

func main() {
	rootCmd := rootCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", errorMessage(err))
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "teamsd",
		Short:         "Teams and projects management",
		Long:          `Manage the teams, projects and users of a company, or run the ui-api gateway with "teamsd serve"`,
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.apiURL, "api-url", "", "backend base url (overrides API_BASE_URL)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log backend requests")

	rootCmd.AddCommand(
		serveCommand(a),
		loginCommand(a),
		projectsCommand(a),
		teamsCommand(a),
		usersCommand(a),
		versionCommand(),
	)

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	if a.apiURL != "" {
		if err := config.ValidateBaseURL(a.apiURL); err != nil {
			return fmt.Errorf("--api-url: %w", err)
		}
		cfg.APIBaseURL = a.apiURL
	}
	a.cfg = cfg

	// the gateway logs at the configured level, one-shot commands stay quiet unless asked
	level := slog.LevelWarn
	switch {
	case cmd.Name() == "serve":
		level = logger.ParseLogLevel(cfg.LogLevel)
	case a.verbose:
		level = slog.LevelDebug
	}
	a.logger = logger.InitLogger(level, cfg.Environment)

	a.apiClient = client.NewClient(cfg.APIBaseURL,
		client.WithTimeout(cfg.ClientTimeout),
		client.WithLogger(a.logger),
	)
	return nil
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the teamsd version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
			return nil
		},
	}
}

// errorMessage prefers the user facing message of backend errors
func errorMessage(err error) string {
	var ce *client.ClientError
	if errors.As(err, &ce) {
		return ce.UserError()
	}
	return err.Error()
}
