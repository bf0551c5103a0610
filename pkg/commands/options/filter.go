// Package options defines shared flag helpers for CLI commands.
package options

import "github.com/spf13/cobra"

// FilterOptions captures the query criteria flags.
type FilterOptions struct {
	Actionable bool
	Tags       []string
	Labels     []string
	Filter     string
	NoTags     bool
}

// AddFilterArgs wires filter-related flags on the provided command.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().BoolVarP(&o.Actionable, "actionable", "a", false,
		"Only show actionable tasks.")
	cmd.Flags().StringSliceVarP(&o.Tags, "tag", "t", nil,
		"Only show tasks carrying one of these tags.")
	cmd.Flags().BoolVar(&o.NoTags, "untagged", false,
		"Include tasks carrying no tags in the tag filter.")
	cmd.Flags().StringSliceVarP(&o.Labels, "label", "l", nil,
		"Only show tasks mentioning one of these labels.")
	cmd.Flags().StringVarP(&o.Filter, "filter", "f", "",
		"Text filter; prefix with 'not ' to negate.")
}
