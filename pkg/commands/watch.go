package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/guildner/tasklist/pkg/app"
	"github.com/guildner/tasklist/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow notebook changes and keep the task store current.",
		Example: `
tasklist watch
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.New(nil)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w := watch.Watch{Service: s}
			return w.Do(ctx)
		},
	}

	topLevel.AddCommand(cmd)
}
