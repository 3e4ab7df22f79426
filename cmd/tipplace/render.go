package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wesen/tipplace/internal/tipui"
	"github.com/wesen/tipplace/pkg/placement"
)

var renderOrientation string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the configured tooltip with its pointer",
	Long: `Render the tooltip surface once per orientation (or only the one given
with --orientation) to check the frame and pointer glyphs.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOrientation, "orientation", "o", "", "render only this orientation (e.g. north-east-flip)")
}

func runRender(cmd *cobra.Command, args []string) error {
	orientations := placement.All()
	if renderOrientation != "" {
		o, err := placement.ParseOrientation(renderOrientation)
		if err != nil {
			return err
		}
		if !o.Valid() {
			return fmt.Errorf("--orientation %q has no tooltip to render", renderOrientation)
		}
		orientations = []placement.Orientation{o}
	}

	out := cmd.OutOrStdout()
	for _, o := range orientations {
		fmt.Fprintf(out, "%s\n%s\n\n", o, tipui.Preview(cfg.Tooltip.Content, cfg.Tooltip.MaxWidth, o))
	}
	return nil
}
