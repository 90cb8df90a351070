package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <group> [action]",
		Short: "Register a group's tasks with the host and print their identifiers",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				id, err := c.app.AddTask(args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil
			}

			ids, err := c.app.AddTasks(args[0])
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}
