package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/guildner/tasklist/pkg/app"
	"github.com/guildner/tasklist/pkg/runner/tags"
)

func addTags(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Show tag and label counts over all open tasks.",
		Example: `
tasklist tags
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.New(nil)
			if err != nil {
				return err
			}
			defer s.Close()

			t := tags.Tags{Service: s}
			return t.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
