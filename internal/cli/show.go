package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/viasplit/internal/engine"
	"github.com/danieljhkim/viasplit/internal/render"
)

var (
	showInput    string
	showWidth    int
	showHeight   int
	showKeyboard string
	showLayer    int
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render the layers of a layout as two halves",
	Long: `Split a layout and print its layers with the left and right halves side by
side. Without --layer every layer is printed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Inspect(context.Background(), &engine.InspectRequest{
			InputPath: showInput,
			Width:     showWidth,
			Height:    showHeight,
			Keyboard:  showKeyboard,
		})
		if err != nil {
			return describeError(err)
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), result)
		}

		var out string
		if cmd.Flags().Changed("layer") {
			if showLayer < 0 || showLayer >= result.Pair.Layers() {
				return fmt.Errorf("layer %d does not exist: layout has %s",
					showLayer, PrintCount(result.Pair.Layers(), "layer", "layers"))
			}
			out, err = render.Layer(result.Pair.Left, result.Pair.Right, showLayer)
		} else {
			out, err = render.Pair(result.Pair)
		}
		if err != nil {
			return err
		}

		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	showCmd.Flags().StringVarP(&showInput, "input", "i", "", "Layout file to read")
	showCmd.Flags().IntVarP(&showWidth, "width", "w", 0, "Columns per half")
	showCmd.Flags().IntVarP(&showHeight, "height", "h", 0, "Rows per half")
	showCmd.Flags().StringVar(&showKeyboard, "keyboard", "", "Profile to take width and height from")
	showCmd.Flags().IntVarP(&showLayer, "layer", "l", 0, "Only print this layer")

	_ = showCmd.MarkFlagRequired("input")
}
