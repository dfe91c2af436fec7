// Command board is the terminal front end for the scheduling server: view
// the week grid, manage the roster, create shifts, and export printable
// schedules.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"

	"github.com/coffeelounge/shiftboard/internal/board/client"
	"github.com/coffeelounge/shiftboard/internal/board/view"
	"github.com/coffeelounge/shiftboard/pkg/logger"
)

type boardConfig struct {
	APIURL   string `env:"BOARD_API_URL, default=http://localhost:8080"`
	APIToken string `env:"BOARD_API_TOKEN"`
	LogLevel string `env:"BOARD_LOG_LEVEL, default=warn"`
}

var (
	apiURL   string
	apiToken string

	store        *client.Client
	synchronizer *view.Synchronizer
	presenter    *consolePresenter
)

var rootCmd = &cobra.Command{
	Use:   "board",
	Short: "Terminal scheduling board",
	Long: `board renders the weekly shift schedule as a grid: one row per
employee (open shifts share a row), one column per day. It talks to the
scheduling API configured via BOARD_API_URL / BOARD_API_TOKEN or flags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var cfg boardConfig
		if err := envconfig.Process(cmd.Context(), &cfg); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if apiURL == "" {
			apiURL = cfg.APIURL
		}
		if apiToken == "" {
			apiToken = cfg.APIToken
		}

		log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Output: os.Stderr})

		store = client.New(apiURL, apiToken)
		presenter = newConsolePresenter(os.Stdout, os.Stderr)
		synchronizer = view.NewSynchronizer(store, presenter, log)
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "scheduling API base URL (overrides BOARD_API_URL)")
	rootCmd.PersistentFlags().StringVar(&apiToken, "token", "", "bearer token (overrides BOARD_API_TOKEN)")

	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(employeesCmd)
	rootCmd.AddCommand(shiftCmd)
	rootCmd.AddCommand(exportCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		// User-facing failures were already rendered by the presenter.
		os.Exit(1)
	}
}
