// Package commands implements the CLI commands for the crew tool.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/crew/internal/app"
)

// CLI represents the command line interface for crew.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "crew",
		Short:         "Task-group registration front end for streaming build tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("modules-dir", "m", "tasks", "Directory scanned for <group>-tasks.yaml modules")
	rootCmd.PersistentFlags().StringP("prefix", "p", "", "Namespace prefix applied to every generated task identifier")
	rootCmd.PersistentFlags().Bool("action-first", false, "Generate action:group identifiers instead of group:action")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	// Apply the naming and discovery flags before any subcommand runs.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		dir, err := cmd.Flags().GetString("modules-dir")
		if err != nil {
			return err
		}
		prefix, err := cmd.Flags().GetString("prefix")
		if err != nil {
			return err
		}
		actionFirst, err := cmd.Flags().GetBool("action-first")
		if err != nil {
			return err
		}
		a.ConfigurePolicy(!actionFirst, prefix)
		a.UseModulesDir(dir)
		return nil
	}

	rootCmd.AddCommand(c.newLoadCmd())
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newGroupsCmd())
	rootCmd.AddCommand(c.newActionsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output and error streams.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}
