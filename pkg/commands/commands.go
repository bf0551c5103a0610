package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "tasklist",
		Short: base.Wrap80("Extract and query tasks from a notebook of outline pages."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addIndex(topLevel)
	addGet(topLevel)
	addTags(topLevel)
	addWatch(topLevel)
	addKey(topLevel)
	addVersion(topLevel)
}
