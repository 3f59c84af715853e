package cli

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nvolker/neoprobe/internal/config"
	"github.com/nvolker/neoprobe/internal/db"
	"github.com/nvolker/neoprobe/internal/logging"
	"github.com/nvolker/neoprobe/internal/probe"
	"github.com/nvolker/neoprobe/internal/ui"
	"github.com/nvolker/neoprobe/pkg/neoprobe"
)

var runCmd = &cobra.Command{
	Use:   "run [path]",
	Short: "Connect to the endpoint and execute the probe sequence",
	Long: `Connect to the Neo4j endpoint with bounded retries, then run the
scripted operation sequence: cleanup, create, read, update, expand,
verify. The optional path argument points at a directory containing
` + config.ConfigFileName + `; it defaults to the working directory.

Connection parameters resolve in order: flags, NEO4J_* environment
variables (a .env file is honored), ` + config.ConfigFileName + `, then
documented defaults.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProbe,
}

func init() {
	runCmd.Flags().String("uri", "", "Bolt endpoint URI (default "+neoprobe.DefaultURI+")")
	runCmd.Flags().StringP("user", "u", "", "Username for basic auth")
	runCmd.Flags().StringP("database", "d", "", "Target database name")
	runCmd.Flags().Int("retry-attempts", 0, "Total connection attempts, including the first")
	runCmd.Flags().String("retry-delay", "", "Delay between connection attempts (e.g. 5s)")
	runCmd.Flags().String("retry-max-delay", "", "Delay cap for exponential backoff (e.g. 1m)")
	runCmd.Flags().String("backoff", "", "Delay strategy: constant or exponential")
	runCmd.Flags().String("task-name", "", "Name property for the demo Task node")
	runCmd.Flags().String("owner", "", "Name property for the demo Person node")
	runCmd.Flags().Bool("cleanup", false, "Remove the demo nodes after a successful run")

	rootCmd.AddCommand(runCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	// Load .env before reading the environment; ignore a missing file.
	_ = godotenv.Load()

	sourcePath := "."
	if len(args) == 1 {
		sourcePath = args[0]
	}

	project, err := config.Load(sourcePath)
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return err
		}
		project = nil
		logger.Verbose("No %s in %s, using flags and environment only", config.ConfigFileName, sourcePath)
	}

	flags, err := collectRunFlags(cmd)
	if err != nil {
		return err
	}

	cfg, err := resolveProbeConfig(flags, config.FromEnvironment(), project)
	if err != nil {
		return err
	}
	cfg.Verbose = verbose

	ctx := cmd.Context()

	connector := db.NewConnector(&cfg.Connection, logger)
	driver, err := connector.Connect(ctx)
	if err != nil {
		return err
	}
	// The driver must be released on every exit path.
	defer func() {
		if cerr := driver.Close(ctx); cerr != nil {
			logger.Error("Failed to close driver: %v", cerr)
		} else {
			logger.Verbose("Neo4j driver closed")
		}
	}()

	session := db.NewSession(ctx, driver, cfg.Connection.Database)
	defer func() {
		if cerr := session.Close(ctx); cerr != nil {
			logger.Error("Failed to close session: %v", cerr)
		}
	}()

	runner := probe.NewRunner(*cfg, logger)
	report, runErr := runner.Run(ctx, session)
	if report != nil {
		ui.RenderReport(os.Stdout, report, runner.Steps())
	}
	return runErr
}

func collectRunFlags(cmd *cobra.Command) (*runFlags, error) {
	f := &runFlags{}
	var err error

	if f.uri, err = cmd.Flags().GetString("uri"); err != nil {
		return nil, err
	}
	if f.username, err = cmd.Flags().GetString("user"); err != nil {
		return nil, err
	}
	if f.database, err = cmd.Flags().GetString("database"); err != nil {
		return nil, err
	}
	if f.retryAttempts, err = cmd.Flags().GetInt("retry-attempts"); err != nil {
		return nil, err
	}
	if f.retryDelay, err = cmd.Flags().GetString("retry-delay"); err != nil {
		return nil, err
	}
	if f.retryMaxDelay, err = cmd.Flags().GetString("retry-max-delay"); err != nil {
		return nil, err
	}
	if f.backoff, err = cmd.Flags().GetString("backoff"); err != nil {
		return nil, err
	}
	if f.taskName, err = cmd.Flags().GetString("task-name"); err != nil {
		return nil, err
	}
	if f.ownerName, err = cmd.Flags().GetString("owner"); err != nil {
		return nil, err
	}
	if f.cleanup, err = cmd.Flags().GetBool("cleanup"); err != nil {
		return nil, err
	}
	f.cleanupSet = cmd.Flags().Changed("cleanup")

	return f, nil
}
