package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stamp-labs/stamp/internal/branding"
	"github.com/stamp-labs/stamp/internal/config"
	"github.com/stamp-labs/stamp/internal/runtime"
	"github.com/stamp-labs/stamp/internal/scaffold"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var skipInstall bool

func init() {
	rootCmd.Flags().BoolVar(&skipInstall, "skip-install", false, "Skip the dependency install step")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <project-name>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` copies its bundled project template into a new directory,
renames the project in package.json, and installs dependencies with the
configured package manager.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScaffold,
}

func runScaffold(cmd *cobra.Command, args []string) error {
	config.Load()

	req, err := scaffold.NewRequest(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	opts := scaffold.Options{
		Installer:   runtime.Dispatch(config.Get(config.KeyPackageManager)),
		SkipInstall: skipInstall,
		Progress:    out,
	}

	result, err := scaffold.Run(cmd.Context(), req, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nCreated %s/\n", req.ProjectName)
	for _, f := range result.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintln(out, "\nWarnings:")
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  - %s\n", w)
		}
	}

	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintf(out, "  cd %s\n", req.ProjectName)
	fmt.Fprintf(out, "  %s\n", config.Get(config.KeyDevCommand))
	return nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
