package cli

import (
	"log/slog"
	"os"
	"priority-task-list/internal/config"
	"priority-task-list/internal/logging"
	"priority-task-list/internal/service"
	"priority-task-list/internal/store/memory"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

func Execute() error {
	return newRootCommand().Execute()
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "tasklist",
		Short:         "Task list with priorities and deadlines",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (yaml, toml or json)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override log_level (debug, info, warn, error)")

	root.AddCommand(
		newServeCommand(opts),
		newTUICommand(opts),
		newConfigCommand(opts),
	)
	return root
}

func (o *rootOptions) load() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	return cfg, nil
}

func (o *rootOptions) logger(cfg config.Config) (*slog.Logger, error) {
	return logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
}

func newBoardFactory(cfg config.Config, log *slog.Logger) func() (*service.TaskService, error) {
	return func() (*service.TaskService, error) {
		return service.New(memory.New(),
			service.WithLogger(log),
			service.WithDeadlineLayouts(cfg.DeadlineLayouts),
		)
	}
}
