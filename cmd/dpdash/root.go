package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/xid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/dataprotect/dpdash/internal/client"
	"github.com/dataprotect/dpdash/internal/config"
	"github.com/dataprotect/dpdash/internal/logging"
	"github.com/dataprotect/dpdash/internal/tui"
)

// defaultTUILogFile is where the TUI logs when no log file is configured;
// it owns the terminal, so it cannot log to stderr.
const defaultTUILogFile = "dpdash.log"

// newRootCmd builds the command tree around a fresh viper instance.
func newRootCmd() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)

	var cfgFile string
	root := &cobra.Command{
		Use:   "dpdash [api-url]",
		Short: "Terminal dashboard for backup operations",
		Long: `dpdash polls a DataProtect backend and shows backup health in the terminal:

- Active jobs, success rate, storage usage and monthly savings
- Recent backup jobs with live progress
- RTO, RPO and availability against their SLA targets
- Storage usage trend

The backend URL is given as the only argument, --api-url, DPDASH_API_URL
or api_url in the config file.`,
		Example: `  dpdash http://localhost:8000
  dpdash --interval 1m --compartment-id prod https://backup.example.com
  dpdash snapshot http://localhost:8000 > snapshot.json`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			home, _ := os.UserHomeDir()
			if err := config.ReadFile(v, cfgFile, home); err != nil {
				return err
			}
			if len(args) == 1 {
				v.Set(config.KeyAPIURL, args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), v)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.dpdash.yaml or $HOME/.dpdash.yaml)")
	config.RegisterFlags(root.PersistentFlags())
	cobra.CheckErr(config.BindFlags(v, root.PersistentFlags()))

	root.AddCommand(newSnapshotCmd(v), newWatchCmd(v), newVersionCmd())
	return root
}

// runTUI starts the interactive dashboard and blocks until the user quits.
func runTUI(ctx context.Context, v *viper.Viper) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logFile := cfg.LogFile
	if logFile == "" {
		logFile = defaultTUILogFile
	}
	logger, closeLog, err := newLogger(cfg, logFile, nil)
	if err != nil {
		return err
	}
	defer closeLog()

	api, err := client.NewDefaultClient(cfg.ClientConfig(), logger)
	if err != nil {
		return err
	}

	logger.Info("starting dashboard",
		zap.String("api_url", cfg.APIURL),
		zap.String("compartment", cfg.CompartmentID),
		zap.Duration("interval", cfg.Interval),
	)

	app := tui.NewApp(api, cfg.Request(), cfg.Interval, logger)
	defer app.Close()

	if _, err := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	logger.Info("dashboard closed")
	return nil
}

// newLogger builds the process logger. An empty fileName logs to stderr.
// Every line carries a per-run id so runs can be told apart in a shared file.
func newLogger(cfg *config.Config, fileName string, stderr io.Writer) (*zap.Logger, func(), error) {
	lc := logging.DefaultConfig()
	lc.Level = cfg.LogLevel
	lc.FileName = fileName
	lc.Stderr = stderr

	logger, closeLog, err := logging.New(lc)
	if err != nil {
		return nil, nil, err
	}
	return logger.With(zap.String("run", xid.New().String())), closeLog, nil
}
