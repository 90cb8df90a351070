package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/crew/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [groups...]",
		Short: "Load groups and execute the resulting task graph",
		Long: "Load the named groups (or every available group when none are named), " +
			"register their tasks with the host, and execute the dependency graph.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, _ := cmd.Flags().GetInt("jobs")
			return c.app.Run(cmd.Context(), args, app.RunOptions{Jobs: jobs})
		},
	}
	cmd.Flags().IntP("jobs", "j", 0, "Maximum concurrent tasks (0 means number of CPUs)")
	return cmd
}
