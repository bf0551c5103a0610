package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/guildner/tasklist/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Show the bullet markers recognized on notebook pages.",
		Example: `
tasklist key
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{}
			return k.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
