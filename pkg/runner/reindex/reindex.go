package reindex

import (
	"context"
	"errors"
	"fmt"
)

// Indexer is the slice of the app service this runner needs.
type Indexer interface {
	Rebuild(ctx context.Context, force bool) (int, error)
}

// Reindex walks the notebook and refreshes the task store.
type Reindex struct {
	Indexer Indexer
	Force   bool
}

func (r *Reindex) Do(ctx context.Context) error {
	if r.Indexer == nil {
		return errors.New("can not index, no indexer")
	}
	n, err := r.Indexer.Rebuild(ctx, r.Force)
	if err != nil {
		return err
	}
	switch n {
	case 1:
		fmt.Printf("indexed %d page\n", n)
	default:
		fmt.Printf("indexed %d pages\n", n)
	}
	return nil
}
