package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/guildner/tasklist/pkg/app"
	"github.com/guildner/tasklist/pkg/runner/reindex"
)

func addIndex(topLevel *cobra.Command) {
	force := false

	cmd := &cobra.Command{
		Use:   "index",
		Short: "Index the notebook and refresh the task store.",
		Example: `
tasklist index
tasklist index --rebuild
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.New(nil)
			if err != nil {
				return err
			}
			defer s.Close()

			r := reindex.Reindex{Indexer: s.Indexer, Force: force}
			return r.Do(context.Background())
		},
	}

	cmd.Flags().BoolVar(&force, "rebuild", false,
		"Reindex every page, even unchanged ones.")

	topLevel.AddCommand(cmd)
}
