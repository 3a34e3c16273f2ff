package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/stamp-labs/stamp/internal/config"
	"github.com/stamp-labs/stamp/internal/runtime"
	"github.com/stamp-labs/stamp/internal/template"
)

var (
	checkRuntime  bool
	checkTemplate bool
	checkConfig   bool
)

func init() {
	doctorCmd.Flags().BoolVar(&checkRuntime, "check-runtime", false, "Verify Node.js and a package manager are available")
	doctorCmd.Flags().BoolVar(&checkTemplate, "check-template", false, "Verify the project template resolves")
	doctorCmd.Flags().BoolVar(&checkConfig, "check-config", false, "Show effective configuration")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the scaffolding environment",
	Long:  `Run diagnostic checks on the local Node.js toolchain, the bundled template, and user settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		// If no specific flag, run all checks.
		anyFlag := checkRuntime || checkTemplate || checkConfig
		if !anyFlag || checkRuntime {
			runRuntimeCheck(out)
		}
		if !anyFlag || checkTemplate {
			runTemplateCheck(out)
		}
		if !anyFlag || checkConfig {
			runConfigCheck(out)
		}
		return nil
	},
}

func runRuntimeCheck(out io.Writer) {
	version, err := runtime.NodeVersion()
	if err != nil {
		fmt.Fprintln(out, "  ✗ node: not found on PATH")
	} else {
		fmt.Fprintf(out, "  ✓ node: %s\n", version)
	}

	for _, mgr := range []string{runtime.ManagerNPM, runtime.ManagerYarn, runtime.ManagerPNPM} {
		if _, err := exec.LookPath(mgr); err != nil {
			fmt.Fprintf(out, "  ✗ %s: not found on PATH\n", mgr)
		} else {
			fmt.Fprintf(out, "  ✓ %s: available\n", mgr)
		}
	}
}

func runTemplateCheck(out io.Writer) {
	src, err := template.Resolve()
	if err != nil {
		fmt.Fprintf(out, "  ✗ template: %v\n", err)
		return
	}
	fmt.Fprintf(out, "  ✓ template: %s\n", src.Origin)
}

func runConfigCheck(out io.Writer) {
	config.Load()
	if _, err := os.Stat(config.FilePath()); err != nil {
		fmt.Fprintf(out, "  ✓ config: no file at %s (defaults in use)\n", config.FilePath())
	} else {
		fmt.Fprintf(out, "  ✓ config: %s\n", config.FilePath())
	}
	fmt.Fprintf(out, "    package_manager = %s\n", config.Get(config.KeyPackageManager))
	fmt.Fprintf(out, "    dev_command     = %s\n", config.Get(config.KeyDevCommand))
}
