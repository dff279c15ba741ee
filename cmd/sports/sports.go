package sports

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/sig-0/oddscan/cmd/env"
	"github.com/sig-0/oddscan/provider/theoddsapi"
)

// defaultGroup is the sport group listed when no flags are given
const defaultGroup = "Soccer"

// sportsCfg wraps the sports configuration
type sportsCfg struct {
	group string
	all   bool
}

// NewSportsCmd creates the sports subcommand
func NewSportsCmd() *ffcli.Command {
	cfg := &sportsCfg{}

	fs := flag.NewFlagSet("sports", flag.ExitOnError)
	cfg.registerFlags(fs)

	return &ffcli.Command{
		Name:       "sports",
		ShortUsage: "sports [flags]",
		LongHelp:   "Lists the sport keys available upstream",
		FlagSet:    fs,
		Exec:       cfg.exec,
		Options: []ff.Option{
			// Allow using ENV variables
			ff.WithEnvVars(),
			ff.WithEnvVarPrefix(env.Prefix),
		},
	}
}

func (c *sportsCfg) registerFlags(fs *flag.FlagSet) {
	fs.StringVar(
		&c.group,
		"group",
		defaultGroup,
		"the sport group to list",
	)

	fs.BoolVar(
		&c.all,
		"all",
		false,
		"list every sport group",
	)
}

// exec executes the sports listing command
func (c *sportsCfg) exec(ctx context.Context, _ []string) error {
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
	client, err := theoddsapi.NewClient(apiKey)
	if err != nil {
		return fmt.Errorf("unable to create client: %w", err)
	}

	sports, err := client.FetchSports(ctx)
	if err != nil {
		return fmt.Errorf("unable to fetch sports: %w", err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(tw, "KEY\tGROUP\tTITLE\tACTIVE")

	listed := 0

	for _, sport := range sports {
		if !c.all && !strings.EqualFold(sport.Group, c.group) {
			continue
		}

		_, _ = fmt.Fprintf(
			tw,
			"%s\t%s\t%s\t%t\n",
			sport.Key,
			sport.Group,
			sport.Title,
			sport.Active,
		)

		listed++
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("unable to render sports table: %w", err)
	}

	fmt.Printf("\n%d sports listed\n", listed)

	return nil
}
