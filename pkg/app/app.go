// Package app assembles the pipeline from configuration so CLI commands
// share one wiring path.
package app

import (
	"github.com/guildner/tasklist/pkg/config"
	"github.com/guildner/tasklist/pkg/extract"
	"github.com/guildner/tasklist/pkg/index"
	"github.com/guildner/tasklist/pkg/notebook"
	"github.com/guildner/tasklist/pkg/query"
	"github.com/guildner/tasklist/pkg/store"
	"github.com/guildner/tasklist/pkg/task"
)

// Service bundles the configured components.
type Service struct {
	Config   *config.Config
	Labels   *task.Labels
	Notebook *notebook.Notebook
	Store    *store.Store
	Indexer  *index.Indexer
	Engine   *query.Engine
}

// New opens the notebook and the store and wires the indexer and query
// engine per the loaded configuration.
func New(cfg *config.Config) (*Service, error) {
	if cfg == nil {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return nil, err
		}
	}

	nb, err := notebook.Open(cfg.Notebook)
	if err != nil {
		return nil, err
	}
	nb.Include = config.Subtrees(cfg.IncludedSubtrees)
	nb.Exclude = config.Subtrees(cfg.ExcludedSubtrees)

	st, err := store.Open(cfg.DB)
	if err != nil {
		return nil, err
	}

	labels := task.NewLabels(cfg.Labels, cfg.NextLabel)

	ix := &index.Indexer{
		Notebook: nb,
		Extractor: &extract.Extractor{
			Labels:        labels,
			AllCheckboxes: cfg.AllCheckboxes,
		},
		Store:          st,
		DeadlineByPage: cfg.DeadlineByPage,
	}
	if cfg.Cache != "" {
		ix.WithCache(cfg.Cache)
	}

	return &Service{
		Config:   cfg,
		Labels:   labels,
		Notebook: nb,
		Store:    st,
		Indexer:  ix,
		Engine:   &query.Engine{Labels: labels, TagByPage: cfg.TagByPage},
	}, nil
}

func (s *Service) Close() error {
	return s.Store.Close()
}
