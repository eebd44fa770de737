package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/tandem/internal/config"
	"github.com/crimson-sun/tandem/internal/engine"
	"github.com/crimson-sun/tandem/internal/ingest"
	"github.com/crimson-sun/tandem/internal/logging"
	"github.com/crimson-sun/tandem/internal/output"
	filesink "github.com/crimson-sun/tandem/internal/output/file"
	"github.com/crimson-sun/tandem/internal/output/multi"
	"github.com/crimson-sun/tandem/internal/output/stdout"
	"github.com/crimson-sun/tandem/internal/pipeline"

	// Register ingest source implementations.
	_ "github.com/crimson-sun/tandem/internal/ingest/file"
	_ "github.com/crimson-sun/tandem/internal/ingest/stdin"
)

var (
	cfgFile   string
	encoding  string
	outFormat string
	outFile   string
	logLevel  string
	today     string
)

var rootCmd = &cobra.Command{
	Use:   "tandem [file]",
	Short: "tandem finds the employees who worked together longest",
	Long: `tandem ingests a CSV of employee/project assignments and reports the
pair (or pairs, on a tie) of employees that shared the longest overlapping
window on a common project. The date layout of the input is inferred from
the data itself. Pass "-" or pipe input to read from stdin.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "path to a YAML config file")
	rootCmd.Flags().StringVar(&encoding, "encoding", "", "input character set (utf-8, utf-16, utf-16be, windows-1252)")
	rootCmd.Flags().StringVar(&outFormat, "format", "", "output format: text or ndjson")
	rootCmd.Flags().StringVar(&outFile, "out", "", "also write NDJSON results to this file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&today, "today", "", "YYYY-MM-DD substitute for open-ended assignments")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tandem: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	logging.Init(cfg.Output.Format == "ndjson", cfg.Log.Level)

	clock, err := resolveClock(cfg.Input.Today)
	if err != nil {
		return err
	}

	ctor, err := ingest.Get(cfg.Input.Source)
	if err != nil {
		return err
	}

	out, err := buildOutput(cfg)
	if err != nil {
		return err
	}

	p := pipeline.New(ctor(), engine.New(clock), out)
	defer p.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_, err = p.Run(ctx, ingest.SourceConfig{
		Path:     cfg.Input.Path,
		Encoding: cfg.Input.Encoding,
	})
	return err
}

// loadConfig resolves the effective configuration: flags over environment
// variables over the optional config file over defaults.
func loadConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	var cfg config.Config
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFile(cfgFile)
		if err != nil {
			return config.Config{}, err
		}
	} else {
		cfg = config.Load()
	}

	if len(args) == 1 {
		cfg.Input.Path = args[0]
	}
	if cfg.Input.Path == "-" || cfg.Input.Path == "" {
		cfg.Input.Source = "stdin"
		cfg.Input.Path = ""
	}
	if cmd.Flags().Changed("encoding") {
		cfg.Input.Encoding = encoding
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = outFormat
	}
	if cmd.Flags().Changed("out") {
		cfg.Output.File = outFile
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if cmd.Flags().Changed("today") {
		cfg.Input.Today = today
	}

	if cfg.Output.Format != "text" && cfg.Output.Format != "ndjson" {
		return config.Config{}, fmt.Errorf("unknown output format %q", cfg.Output.Format)
	}
	return cfg, nil
}

// resolveClock returns the clock used to close open-ended assignments: the
// system clock, or a fixed day when an override is set.
func resolveClock(override string) (func() time.Time, error) {
	if override == "" {
		return time.Now, nil
	}
	day, err := time.ParseInLocation("2006-01-02", override, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid today override %q: %w", override, err)
	}
	return func() time.Time { return day }, nil
}

func buildOutput(cfg config.Config) (output.Output, error) {
	std := stdout.New(cfg.Output.Format == "ndjson")
	if cfg.Output.File == "" {
		return std, nil
	}
	sink, err := filesink.New(cfg.Output.File)
	if err != nil {
		return nil, err
	}
	return multi.New(std, sink), nil
}
