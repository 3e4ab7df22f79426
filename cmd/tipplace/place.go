package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wesen/tipplace/pkg/placement"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	placeTrigger  []float64
	placeTooltip  []float64
	placeViewport []float64
)

var placeCmd = &cobra.Command{
	Use:   "place",
	Short: "Evaluate one placement and print it as YAML",
	Long: `Evaluate the orientation and offsets for a tooltip next to a trigger.

Prints "orientation: none" when no orientation fits; that is not an error.`,
	Example: `  tipplace place --trigger 10,300,50,20 --tooltip 200,100 --viewport 1000,800`,
	Args:    cobra.NoArgs,
	RunE:    runPlace,
}

func init() {
	placeCmd.Flags().Float64SliceVar(&placeTrigger, "trigger", nil, "trigger rect as top,left,width,height")
	placeCmd.Flags().Float64SliceVar(&placeTooltip, "tooltip", nil, "tooltip size as width,height")
	placeCmd.Flags().Float64SliceVar(&placeViewport, "viewport", nil, "viewport size as width,height")
	_ = placeCmd.MarkFlagRequired("trigger")
	_ = placeCmd.MarkFlagRequired("tooltip")
	_ = placeCmd.MarkFlagRequired("viewport")
}

func runPlace(cmd *cobra.Command, args []string) error {
	res, err := place(placeTrigger, placeTooltip, placeViewport)
	if err != nil {
		return err
	}
	if logger != nil {
		logger.Debug("placement evaluated", zap.Stringer("orientation", res.Orientation))
	}
	out, err := yaml.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

// place validates the flag values and runs the evaluator. An empty
// result carries orientation None.
func place(trigger, tip, vp []float64) (placement.Result, error) {
	if len(trigger) != 4 {
		return placement.Result{}, fmt.Errorf("--trigger needs 4 values (top,left,width,height), got %d", len(trigger))
	}
	if len(tip) != 2 {
		return placement.Result{}, fmt.Errorf("--tooltip needs 2 values (width,height), got %d", len(tip))
	}
	if len(vp) != 2 {
		return placement.Result{}, fmt.Errorf("--viewport needs 2 values (width,height), got %d", len(vp))
	}
	res, _ := placement.Place(
		placement.Rect{Top: trigger[0], Left: trigger[1], Width: trigger[2], Height: trigger[3]},
		placement.Size{Width: tip[0], Height: tip[1]},
		placement.Viewport{Width: vp[0], Height: vp[1]},
	)
	return res, nil
}
