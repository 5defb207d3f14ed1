package cli

import (
	"fmt"
	"io"
	"priority-task-list/internal/config"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCommand(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			return writeConfig(cmd.OutOrStdout(), cfg, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or toml")
	return cmd
}

// printable spells durations the way the config file accepts them.
type printable struct {
	HTTPAddr        string   `yaml:"http_addr" toml:"http_addr"`
	ShutdownTimeout string   `yaml:"shutdown_timeout" toml:"shutdown_timeout"`
	SessionTTL      string   `yaml:"session_ttl" toml:"session_ttl"`
	SweepInterval   string   `yaml:"sweep_interval" toml:"sweep_interval"`
	LogLevel        string   `yaml:"log_level" toml:"log_level"`
	LogFormat       string   `yaml:"log_format" toml:"log_format"`
	DeadlineLayouts []string `yaml:"deadline_layouts" toml:"deadline_layouts"`
}

func writeConfig(w io.Writer, cfg config.Config, format string) error {
	p := printable{
		HTTPAddr:        cfg.HTTPAddr,
		ShutdownTimeout: cfg.ShutdownTimeout.String(),
		SessionTTL:      cfg.SessionTTL.String(),
		SweepInterval:   cfg.SweepInterval.String(),
		LogLevel:        cfg.LogLevel,
		LogFormat:       cfg.LogFormat,
		DeadlineLayouts: cfg.DeadlineLayouts,
	}

	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "toml":
		if err := toml.NewEncoder(w).Encode(p); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
