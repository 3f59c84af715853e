package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nvolker/neoprobe/pkg/neoprobe"
)

const asciiLogo = `
  ___  ___  ___  ___  ___  ___  ___  ___
 | n || e || o || p || r || o || b || e |
 |___||___||___||___||___||___||___||___|`

var rootCmd = &cobra.Command{
	Use:   "neoprobe",
	Short: "Neo4j connectivity and CRUD smoke probe",
	Long: asciiLogo + `

neoprobe connects to a Neo4j endpoint, waiting out container startup
ordering with bounded retries, then runs a fixed sequence of graph
operations (cleanup, create, read, update, expand, verify) against a
demo Task/Person schema and reports each step.

Designed to run as a one-shot container next to a database service:
orchestration health checks only need the exit code.

Exit Codes:
  0  - Probe completed successfully
  1  - Any unrecoverable failure (connection exhaustion, failed step,
       rejected credentials)
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for neoprobe")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")

	// Flag parse failures are usage errors, not probe failures; tag them
	// so the exit code comes out as 2.
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", neoprobe.ErrUsage, err)
	})
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
