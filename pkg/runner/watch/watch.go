package watch

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/guildner/tasklist/pkg/app"
	"github.com/guildner/tasklist/pkg/notebook"
)

// Watch follows notebook changes and keeps the task store current until
// the context is cancelled.
type Watch struct {
	Service *app.Service
}

func (w *Watch) Do(ctx context.Context) error {
	if w.Service == nil {
		return errors.New("can not watch, no service")
	}

	// Catch up before following changes.
	if _, err := w.Service.Indexer.Rebuild(ctx, false); err != nil {
		return err
	}

	events, err := w.Service.Notebook.Watch(ctx)
	if err != nil {
		return err
	}

	changes := w.Service.Store.Subscribe()
	go func() {
		for ev := range changes {
			fmt.Printf("task list changed: %s\n", ev.Document)
		}
	}()

	fmt.Printf("watching %s\n", w.Service.Config.Notebook)
	for ev := range events {
		var err error
		switch ev.Type {
		case notebook.EventPageChanged:
			err = w.Service.Indexer.IndexPage(ctx, ev.Path)
		case notebook.EventPageRemoved:
			_, err = w.Service.Indexer.RemovePage(ctx, ev.Path)
		case notebook.EventRescan:
			_, err = w.Service.Indexer.Rebuild(ctx, false)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "watch: %s: %v\n", ev.Path, err)
		}
	}
	return nil
}
