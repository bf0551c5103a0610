package options

import "github.com/spf13/cobra"

// OutputOptions selects the rendering of query results.
type OutputOptions struct {
	Output string
	ShowID bool
	Flat   bool
}

// AddOutputArgs wires output-related flags on the provided command.
func AddOutputArgs(cmd *cobra.Command, o *OutputOptions) {
	cmd.Flags().StringVarP(&o.Output, "output", "o", "pretty",
		"Output format. One of 'pretty', 'csv' or 'html'.")
	cmd.Flags().BoolVar(&o.ShowID, "show-id", false,
		"Show task ids.")
	cmd.Flags().BoolVar(&o.Flat, "flat", false,
		"Show a flat list of leaf tasks instead of the tree.")
}
