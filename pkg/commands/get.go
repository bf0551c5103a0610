package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/guildner/tasklist/pkg/app"
	"github.com/guildner/tasklist/pkg/commands/options"
	"github.com/guildner/tasklist/pkg/runner/get"
	"github.com/guildner/tasklist/pkg/task"
)

func addGet(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List visible tasks under the given filters.",
		Example: `
tasklist get
tasklist get --actionable
tasklist get --tag home --untagged
tasklist get --label FIXME --filter 'not @waiting'
tasklist get --flat
tasklist get -o csv > tasks.csv
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.New(nil)
			if err != nil {
				return err
			}
			defer s.Close()

			tags := fo.Tags
			if fo.NoTags {
				tags = append(tags, task.NoTags)
			}
			g := get.Get{
				Service:    s,
				Actionable: fo.Actionable,
				Tags:       tags,
				Labels:     fo.Labels,
				Filter:     fo.Filter,
				Output:     oo.Output,
				ShowID:     oo.ShowID,
				Flat:       oo.Flat,
			}
			return g.Do(context.Background())
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddOutputArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
