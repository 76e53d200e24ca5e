// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli implements the gfwlist-smartdns command line.
package cli

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/gfwlist-smartdns/src/config"
)

// Version is set at build time with -ldflags "-X ...cli.Version=v1.2.3".
var Version = "dev"

// flags mirrors [config.Config] for command-line parsing.
type flags struct {
	configPath  string
	group       string
	mode        string
	source      string
	output      string
	suffixList  string
	report      string
	concurrency int
	timeout     time.Duration
	maxBytes    int64
	logLevel    string
}

// NewRootCommand builds the root command. Each call returns an
// independent command tree, so tests can run it in parallel.
func NewRootCommand() *cobra.Command {
	f := &flags{}
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "gfwlist-smartdns",
		Short: "Convert gfwlist into a SmartDNS domain configuration",
		Long: `gfwlist-smartdns downloads the base64-encoded gfwlist, reduces every
blocking rule to a domain with a known public suffix, and writes one
"nameserver /<domain>/<group>" line per unique domain.

Rules that cannot be reduced (IP addresses, unknown suffixes, malformed
hosts) are counted and reported; they never stop the conversion.`,
		Example: `  gfwlist-smartdns -g overseas -m smartdns
  gfwlist-smartdns -g overseas -o /etc/smartdns/gfwlist.conf --report gfwlist.xlsx
  gfwlist-smartdns -c gfwlist.yaml`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Version:      Version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}

			log, err := newLogger(cmd, cfg.LogLevel)
			if err != nil {
				return err
			}

			return run(cmd.Context(), cfg, log)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML configuration file; flags override its values")
	fs.StringVarP(&f.group, "group", "g", "", "SmartDNS upstream group name (required)")
	fs.StringVarP(&f.mode, "mode", "m", def.Mode, "output dialect, only smartdns is supported")
	fs.StringVarP(&f.source, "url", "u", def.Source, "feed location, http(s) URL or local path")
	fs.StringVarP(&f.output, "output", "o", def.Output, "output configuration file")
	fs.StringVar(&f.suffixList, "suffix-list", "", "public_suffix_list.dat URL or path (default: embedded list)")
	fs.StringVar(&f.report, "report", "", "write an .xlsx diagnostics report to this path")
	fs.IntVar(&f.concurrency, "concurrency", 0, "max rules normalized in parallel (default 100)")
	fs.DurationVar(&f.timeout, "timeout", def.Timeout, "timeout for each download")
	fs.Int64Var(&f.maxBytes, "max-bytes", 0, "max size of each download in bytes (default per resource)")
	fs.StringVar(&f.logLevel, "log-level", def.LogLevel, "log level: debug, info, warn, error")

	cmd.AddCommand(newVersionCommand())
	return cmd
}

// resolve merges the configuration file with the flags explicitly set
// on the command line and validates the result.
func (f *flags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed
	if changed("group") {
		cfg.Group = f.group
	}
	if changed("mode") {
		cfg.Mode = f.mode
	}
	if changed("url") {
		cfg.Source = f.source
	}
	if changed("output") {
		cfg.Output = f.output
	}
	if changed("suffix-list") {
		cfg.SuffixList = f.suffixList
	}
	if changed("report") {
		cfg.Report = f.report
	}
	if changed("concurrency") {
		cfg.Concurrency = f.concurrency
	}
	if changed("timeout") {
		cfg.Timeout = f.timeout
	}
	if changed("max-bytes") {
		cfg.MaxBytes = f.maxBytes
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger writes to the command's stderr so that stdout stays clean.
func newLogger(cmd *cobra.Command, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:          true,
		DisableLevelTruncation: true,
	})
	return log, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "gfwlist-smartdns "+Version)
		},
	}
}
