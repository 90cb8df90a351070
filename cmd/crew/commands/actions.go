package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newActionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "actions <group>",
		Short: "List the actions a group defines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := c.app.ListGroupActions(args[0])
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
