package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newGroupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "List the groups available in the modules directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loadedOnly, _ := cmd.Flags().GetBool("loaded")

			if loadedOnly {
				for _, name := range c.app.ListLoadedGroups() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}

			names, err := c.app.ListGroups()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.Flags().Bool("loaded", false, "List only groups already loaded this session")
	return cmd
}
