package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/claude-delta/internal"
	"github.com/spf13/cobra"
)

var (
	compact bool
)

var stoppedStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("10"))

// rootCmd represents the base command; the watch loop is the whole program
var rootCmd = &cobra.Command{
	Use:   "claude-delta [project]",
	Short: "Track Claude Code conversation deltas in real-time",
	Long: `Tail Claude Code conversation files and print new user and assistant
turns as they are written.

claude-delta polls ~/.claude/projects for appended JSONL records, skips
everything that existed before it started, and renders each new message
with a timestamp, a color-coded role marker and the project it belongs to.
Press Ctrl+C to stop.`,
	Example: `  # Track all projects
  claude-delta

  # Track a specific project
  claude-delta temp

  # Compact output format
  claude-delta --compact`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := ""
		if len(args) > 0 {
			filter = args[0]
		}

		root, err := internal.ProjectsDir()
		if err != nil {
			return err
		}
		if err := internal.CheckProjectsDir(root); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		renderer := internal.NewRenderer(cmd.OutOrStdout(), compact, 0)
		watcher := internal.NewWatcher(root, filter, renderer)

		if err := watcher.Run(ctx); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), stoppedStyle.Render("Stopped tracking"))
		return nil
	},
}

// Execute runs the root command and maps failure to a non-zero exit.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&compact, "compact", "c", false, "Compact output format")
}
