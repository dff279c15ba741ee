package run

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/sig-0/oddscan/cmd/env"
	"github.com/sig-0/oddscan/config"
	"github.com/sig-0/oddscan/export/console"
	"github.com/sig-0/oddscan/export/csv"
	"github.com/sig-0/oddscan/market"
	"github.com/sig-0/oddscan/provider/theoddsapi"
	"github.com/sig-0/oddscan/scan"
)

// runCfg wraps the run configuration
type runCfg struct {
	config *config.Config

	configPath string
	sports     string
	top        int
}

// NewRunCmd creates the run subcommand
func NewRunCmd() *ffcli.Command {
	cfg := &runCfg{
		config: config.DefaultConfig(),
	}

	fs := flag.NewFlagSet("run", flag.ExitOnError)
	cfg.registerFlags(fs)

	return &ffcli.Command{
		Name:       "run",
		ShortUsage: "run [flags]",
		LongHelp:   "Runs a single odds scan and exports the matches",
		FlagSet:    fs,
		Exec:       cfg.exec,
		Options: []ff.Option{
			// Allow using ENV variables
			ff.WithEnvVars(),
			ff.WithEnvVarPrefix(env.Prefix),
		},
	}
}

func (c *runCfg) registerFlags(fs *flag.FlagSet) {
	fs.Float64Var(
		&c.config.Target,
		"target",
		config.DefaultTarget,
		"the target decimal odds for all three outcomes",
	)

	fs.Float64Var(
		&c.config.Tolerance,
		"tolerance",
		config.DefaultTolerance,
		"the allowed deviation from the target odds",
	)

	fs.StringVar(
		&c.sports,
		"sports",
		config.DefaultSportKey,
		"the comma-separated sport keys to scan",
	)

	fs.StringVar(
		&c.config.Region,
		"region",
		config.DefaultRegion,
		"the bookmaker region (eu, uk, us, us2, au)",
	)

	fs.IntVar(
		&c.config.MaxEventsPerSport,
		"max-events",
		config.DefaultMaxEventsPerSport,
		"the per-sport cap on processed events, 0 for no cap",
	)

	fs.StringVar(
		&c.config.OutputPath,
		"output",
		config.DefaultOutputPath,
		"the path of the CSV export",
	)

	fs.BoolVar(
		&c.config.Append,
		"append",
		false,
		"append to the CSV export instead of overwriting it",
	)

	fs.BoolVar(
		&c.config.DeepLinks,
		"links",
		false,
		"request bookmaker deep links and export them",
	)

	fs.BoolVar(
		&c.config.SortByProduct,
		"sort",
		false,
		"order rows by combined odds product instead of API order",
	)

	fs.IntVar(
		&c.top,
		"top",
		0,
		"print the top N rows to the console, 0 to disable",
	)

	fs.StringVar(
		&c.configPath,
		"config",
		"",
		"the path to the scan TOML configuration, if any",
	)
}

// exec executes the odds scan command
func (c *runCfg) exec(ctx context.Context, _ []string) error {
	// Read the scan configuration, if any
	if c.configPath != "" {
		scanCfg, err := config.Read(c.configPath)
		if err != nil {
			return fmt.Errorf("unable to read scan config, %w", err)
		}

		c.config = scanCfg
	} else {
		c.config.Sports = splitList(c.sports)
	}

	if err := config.ValidateConfig(c.config); err != nil {
		return fmt.Errorf("invalid scan config, %w", err)
	}

	// Create a new logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load .env
	if err := godotenv.Load(); err != nil {
		logger.Warn("unable to load .env file")
	}

	// The API key needs to be present before any request goes out
	apiKey := os.Getenv(env.Prefix + env.APIKeySuffix)
	if apiKey == "" {
		return fmt.Errorf("missing %s", env.Prefix+env.APIKeySuffix)
	}

	// Create The Odds API client
	client, err := theoddsapi.NewClient(
		apiKey,
		theoddsapi.WithRegion(market.Region(c.config.Region)),
		theoddsapi.WithMaxEvents(c.config.MaxEventsPerSport),
		theoddsapi.WithDeepLinks(c.config.DeepLinks),
	)
	if err != nil {
		return fmt.Errorf("unable to create client: %w", err)
	}

	// Create the CSV sink
	fileSink := csv.NewExporter(
		c.config.OutputPath,
		csv.WithAppend(c.config.Append),
		csv.WithLinks(c.config.DeepLinks),
	)

	opts := []scan.Option{
		scan.WithLogger(logger),
		scan.WithProductOrder(c.config.SortByProduct),
		scan.WithAbortOn(
			theoddsapi.ErrUnauthorized,
			theoddsapi.ErrQuotaExceeded,
		),
	}

	// Mirror the top rows to the console, if requested
	if c.top > 0 {
		opts = append(opts, scan.WithSink(console.NewExporter(os.Stdout, c.top)))
	}

	// Create the scanner instance
	scanner, err := scan.New(client, fileSink, c.config.Criteria(), opts...)
	if err != nil {
		return fmt.Errorf("unable to create scanner, %w", err)
	}

	runCtx, cancelFn := signal.NotifyContext(
		ctx,
		os.Interrupt,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancelFn()

	report, err := scanner.Run(runCtx)
	if err != nil {
		return fmt.Errorf("unable to run scan: %w", err)
	}

	quota := client.LastQuota()

	logger.Info(
		"scan exported",
		"output", c.config.OutputPath,
		"rows", report.Rows,
		"requests_remaining", quota.Remaining,
		"requests_used", quota.Used,
	)

	return nil
}

// splitList splits a comma-separated flag value into its clean parts
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")

	out := make([]string, 0, len(parts))

	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
