// news2option is a terminal client for the news2option backend: financial
// news, per-article impact analyses and daily investment recommendations.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zappabad/news2option/internal/app"
	"github.com/zappabad/news2option/internal/config"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config
var settings *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "news2option",
	Short: "Financial news, impact analyses and investment recommendations",
	Long: `news2option browses financial news collected by the news2option backend,
shows the AI impact analysis of each article and the daily investment
recommendation. Without a subcommand it starts the interactive client.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			settings, err = config.LoadFromFile(configFile)
		} else {
			settings, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		apiURL, _ := cmd.Flags().GetString("api-url")
		logLevel, _ := cmd.Flags().GetString("log-level")
		settings.Apply(config.Overrides{BaseURL: apiURL, LogLevel: logLevel})
		return nil
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("api-url", "", "backend API root override (e.g. http://localhost:8080/api)")

	addTUIFlags(rootCmd)
	addTUIFlags(tuiCmd)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(newsCmd)
	rootCmd.AddCommand(analysisCmd)
	rootCmd.AddCommand(analysesCmd)
	rootCmd.AddCommand(recommendationCmd)
	rootCmd.AddCommand(recommendationsCmd)
	rootCmd.AddCommand(collectCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(digestCmd)
}

// newApp builds the client from the loaded settings. console receives
// log lines besides the log file.
func newApp(console io.Writer) (*app.App, error) {
	if settings == nil {
		return nil, fmt.Errorf("config not loaded")
	}
	return app.New(app.FromSettings(settings, console))
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "news2option %s\n", version)
		fmt.Fprintf(out, "  commit:  %s\n", commit)
		fmt.Fprintf(out, "  built:   %s\n", date)
	},
}
