package tags

import (
	"context"
	"errors"
	"fmt"

	"github.com/guildner/tasklist/pkg/app"
	"github.com/guildner/tasklist/pkg/printers"
)

// Tags prints the tag and label counts over all open tasks.
type Tags struct {
	Service *app.Service
}

func (t *Tags) Do(ctx context.Context) error {
	if t.Service == nil {
		return errors.New("can not list tags, no service")
	}

	rows, err := t.Service.Store.ListAll(ctx)
	if err != nil {
		return err
	}
	docs, err := t.Service.Store.Documents(ctx)
	if err != nil {
		return err
	}
	docNames := make(map[int64]string, len(docs))
	for id, doc := range docs {
		docNames[id] = doc.Name
	}

	tagIndex, labelIndex := t.Service.Engine.Indexes(rows, docNames)

	pp := printers.PrettyPrint{UseWorkweek: t.Service.Config.UseWorkweek}
	fmt.Println("")
	pp.Title("Tags")
	// Keep the configured label ordering, the next label stays out of
	// the list.
	var ordered []string
	for _, label := range t.Service.Labels.All {
		if label != t.Service.Labels.Next {
			ordered = append(ordered, label)
		}
	}
	pp.Tags(tagIndex, labelIndex, ordered)
	return nil
}
