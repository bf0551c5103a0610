package get

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/guildner/tasklist/pkg/app"
	"github.com/guildner/tasklist/pkg/printers"
	"github.com/guildner/tasklist/pkg/query"
)

// Get lists the tasks visible under the given filter criteria.
type Get struct {
	Service *app.Service

	Actionable bool
	Tags       []string
	Labels     []string
	Filter     string

	Output string // pretty, csv, html
	ShowID bool

	// Flat lists only the leaves of the visible forest, without
	// nesting.
	Flat bool
}

func (g *Get) Do(ctx context.Context) error {
	if g.Service == nil {
		return errors.New("can not get, no service")
	}

	rows, err := g.Service.Store.ListAll(ctx)
	if err != nil {
		return err
	}
	docs, err := g.Service.Store.Documents(ctx)
	if err != nil {
		return err
	}
	docNames := make(map[int64]string, len(docs))
	for id, doc := range docs {
		docNames[id] = doc.Name
	}

	criteria := query.Criteria{
		ActionableOnly: g.Actionable,
		Tags:           g.Tags,
		Labels:         g.Labels,
		Text:           query.ParseTextFilter(g.Filter),
	}
	visible := g.Service.Engine.Visible(rows, docNames, criteria)
	var view []query.ViewRow
	if g.Flat {
		view = query.BuildFlatView(rows, docNames, visible)
	} else {
		view = query.BuildView(rows, docNames, visible)
	}

	switch g.Output {
	case "csv":
		return printers.CSV(os.Stdout, view)
	case "html":
		return printers.HTML(os.Stdout, view, time.Now())
	case "", "pretty":
		pp := printers.PrettyPrint{
			ShowID:      g.ShowID,
			Labels:      g.Service.Labels,
			UseWorkweek: g.Service.Config.UseWorkweek,
		}
		fmt.Println("")
		pp.Tasks(view)
		total, stats := g.Service.Engine.Statistics(rows)
		pp.Statistics(total, stats)
		return nil
	}
	return fmt.Errorf("unknown output format %q", g.Output)
}
