// Package main provides the jobdash CLI, which fills a static job dashboard page with generated listings.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	opts := &renderOptions{}
	rootCmd := &cobra.Command{
		Use:           "jobdash",
		Short:         "Render sample job data into the dashboard HTML",
		Long:          "jobdash generates a batch of sample job listings and writes the counters, a preview list and the update timestamp into index.html.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to YAML config file (default jobdash.yaml if present)")
	flags.StringVarP(&opts.document, "file", "f", "", "Dashboard HTML document to rewrite")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.BoolVar(&opts.silence, "silence", false, "Silence the banner and progress bar")
	flags.BoolVar(&opts.silence, "nobanner", false, "Silence the banner (alias for --silence)")

	rootCmd.Flags().IntVarP(&opts.count, "count", "n", 0, "Number of job records to generate")
	rootCmd.Flags().IntVar(&opts.preview, "preview", 0, "Number of records shown in the jobs list")
	rootCmd.Flags().Int64Var(&opts.seed, "seed", 0, "Seed for the random generator (0 seeds from the clock)")

	rootCmd.AddCommand(newCheckCmd(opts))
	return rootCmd
}

// execute runs the CLI with args and maps any error to exit code 1
func execute(args []string) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Printfln("Error occurred: %v", err)
		return 1
	}
	return 0
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	os.Exit(execute(os.Args[1:]))
}
