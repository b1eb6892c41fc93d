//go:build linux

package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oblaser/fdmon/internal/output"
	"github.com/oblaser/fdmon/internal/pipeline"
	procpkg "github.com/oblaser/fdmon/internal/proc"
	"github.com/oblaser/fdmon/internal/tui"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func SetVersionBuildCommitString(v, c, d string) {
	if v != "" {
		version = v
	}
	if c != "" {
		commit = c
	}
	if d != "" {
		buildDate = d
	}
}

var (
	jsonFlag        bool
	noColorFlag     bool
	interactiveFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "fdmon (name | pid)",
	Short: "Show which files a process holds open, grouped by target",
	Long: `fdmon takes one snapshot of a process's open file descriptors and
reports them grouped by the resource they point at. Descriptors that reach
the same regular file or directory through different path strings (hard
links, differing path components) are counted together.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if interactiveFlag {
			if len(args) > 0 {
				return fmt.Errorf("--interactive takes no arguments")
			}
			return nil
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if interactiveFlag {
			cmd.SilenceUsage = true
			return tui.Run(version)
		}

		identifier := args[0]

		rep, err := pipeline.Analyze(pipeline.AnalyzeConfig{Identifier: identifier})
		if errors.Is(err, procpkg.ErrNotFound) {
			// Exact message and exit code 1, without cobra's error prefix.
			fmt.Printf("process %q not found\n", identifier)
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return err
		}
		if err != nil {
			cmd.SilenceUsage = true
			return err
		}

		if jsonFlag {
			out, err := output.ToJSON(rep)
			if err != nil {
				cmd.SilenceUsage = true
				return err
			}
			fmt.Println(out)
			return nil
		}

		if rep.Resolved {
			fmt.Printf("found process %q with PID %d\n", identifier, rep.PID)
		}
		output.RenderReport(rep, !noColorFlag)
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVar(&jsonFlag, "json", false, "output the report as JSON")
	rootCmd.Flags().BoolVar(&noColorFlag, "no-color", false, "disable colorized output")
	rootCmd.Flags().BoolVarP(&interactiveFlag, "interactive", "i", false, "interactive TUI mode")
}

func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
