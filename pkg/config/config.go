// Package config loads the tasklist preferences. Configuration lives in
// a .tasklist file (yaml) found in the working directory or the home
// directory, overridable through TASKLIST_* environment variables.
package config

import (
	"fmt"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config holds all preferences. The extraction-relevant ones mirror the
// plugin preferences of the desktop original.
type Config struct {
	Notebook string `json:"notebook"`
	DB       string `json:"db"`
	Cache    string `json:"cache"`

	Labels         string `json:"labels"`
	NextLabel      string `json:"next_label"`
	AllCheckboxes  bool   `json:"all_checkboxes"`
	TagByPage      bool   `json:"tag_by_page"`
	DeadlineByPage bool   `json:"deadline_by_page"`
	UseWorkweek    bool   `json:"use_workweek"`

	IncludedSubtrees string `json:"included_subtrees"`
	ExcludedSubtrees string `json:"excluded_subtrees"`
}

// Load reads the configuration, tolerating a missing config file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("notebook", ".")
	v.SetDefault("db", "~/.tasklist/index.db")
	v.SetDefault("cache", "~/.tasklist/cache")
	v.SetDefault("labels", "FIXME, TODO")
	v.SetDefault("next_label", "Next:")
	v.SetDefault("all_checkboxes", true)
	v.SetDefault("tag_by_page", false)
	v.SetDefault("deadline_by_page", false)
	v.SetDefault("use_workweek", true)
	v.SetDefault("included_subtrees", "")
	v.SetDefault("excluded_subtrees", "")

	v.SetConfigName(".tasklist") // .yaml is implicit
	v.SetConfigType("yaml")
	v.SetEnvPrefix("TASKLIST")
	v.AutomaticEnv()

	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}

	c := &Config{
		Notebook:         v.GetString("notebook"),
		DB:               v.GetString("db"),
		Cache:            v.GetString("cache"),
		Labels:           v.GetString("labels"),
		NextLabel:        v.GetString("next_label"),
		AllCheckboxes:    v.GetBool("all_checkboxes"),
		TagByPage:        v.GetBool("tag_by_page"),
		DeadlineByPage:   v.GetBool("deadline_by_page"),
		UseWorkweek:      v.GetBool("use_workweek"),
		IncludedSubtrees: v.GetString("included_subtrees"),
		ExcludedSubtrees: v.GetString("excluded_subtrees"),
	}

	for _, p := range []*string{&c.Notebook, &c.DB, &c.Cache} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return nil, fmt.Errorf("config: expand path %s: %w", *p, err)
		}
		*p = expanded
	}

	return c, nil
}

// Subtrees splits a comma separated subtree preference into prefixes.
func Subtrees(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
