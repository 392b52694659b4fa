package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/viasplit/internal/engine"
)

var (
	checkInput    string
	checkWidth    int
	checkHeight   int
	checkKeyboard string
)

// checkSummary is the --json shape of a check.
type checkSummary struct {
	*engine.InspectResult
	Compatible bool   `json:"compatible"`
	Error      string `json:"error,omitempty"`
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report whether a layout splits into two halves",
	Long: `Load a layout and check that every layer holds exactly 2 x width x height
keys. Layers of the wrong length are listed. Exits non-zero when the layout
does not split.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Inspect(context.Background(), &engine.InspectRequest{
			InputPath: checkInput,
			Width:     checkWidth,
			Height:    checkHeight,
			Keyboard:  checkKeyboard,
		})
		if result == nil {
			return err
		}
		err = describeError(err)

		if jsonOutput {
			summary := checkSummary{InspectResult: result, Compatible: result.Compatible()}
			if err != nil {
				summary.Error = err.Error()
			}
			if jsonErr := outputJSON(cmd.OutOrStdout(), summary); jsonErr != nil {
				return errors.Join(err, jsonErr)
			}
			return err
		}

		out := cmd.OutOrStdout()
		PrintSection(out, "Layout")
		PrintLabelValue(out, "Keyboard", result.Name)
		PrintLabelValue(out, "Vendor/Product ID", fmt.Sprintf("0x%08X", result.VendorProductID))
		PrintLabelValue(out, "Layers", strconv.Itoa(len(result.KeysPerLayer)))
		PrintLabelValue(out, "Macros", strconv.Itoa(result.Macros))
		PrintLabelValue(out, "Halves", result.Dimensions.String())
		PrintLabelValue(out, "Keys per layer", strconv.Itoa(result.ExpectedKeys))
		fmt.Fprintln(out)

		if len(result.KeysPerLayer) > 0 && result.ExpectedKeys > 0 {
			mismatched := make(map[int]bool, len(result.Mismatched))
			for _, i := range result.Mismatched {
				mismatched[i] = true
			}
			rows := make([][]string, 0, len(result.KeysPerLayer))
			for i, n := range result.KeysPerLayer {
				status := "ok"
				if mismatched[i] {
					status = "mismatch"
				}
				rows = append(rows, []string{strconv.Itoa(i), strconv.Itoa(n), status})
			}
			PrintTable(out, []string{"Layer", "Keys", "Status"}, rows)
			fmt.Fprintln(out)
		}
		if len(result.Mismatched) > 0 {
			PrintError(cmd.ErrOrStderr(), fmt.Sprintf("%s do not hold %d keys",
				PrintCount(len(result.Mismatched), "layer", "layers"), result.ExpectedKeys))
		}

		if err != nil {
			return err
		}
		PrintSuccess(out, fmt.Sprintf("Layout splits into two %s halves", result.Dimensions))
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVarP(&checkInput, "input", "i", "", "Layout file to read")
	checkCmd.Flags().IntVarP(&checkWidth, "width", "w", 0, "Columns per half")
	checkCmd.Flags().IntVarP(&checkHeight, "height", "h", 0, "Rows per half")
	checkCmd.Flags().StringVar(&checkKeyboard, "keyboard", "", "Profile to take width and height from")

	_ = checkCmd.MarkFlagRequired("input")
}
