package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/viasplit/internal/engine"
	"github.com/danieljhkim/viasplit/internal/layout"
	"github.com/danieljhkim/viasplit/internal/planner"
	"github.com/danieljhkim/viasplit/internal/render"
)

var (
	editInput        string
	editOutput       string
	editWidth        int
	editHeight       int
	editKeyboard     string
	editEdits        planner.Edits
	editCompact      bool
	editDryRun       bool
	editVerbose      bool
	editPreviewLayer int
)

// editSummary is the --json shape of an edit. Layout is only filled when
// the layout itself goes to stdout.
type editSummary struct {
	*engine.EditResult
	Layout *layout.FlatLayout `json:"layout,omitempty"`
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Add or remove rows and columns on both halves of a layout",
	Long: `Split every layer of a VIA layout into two halves, edit both halves the same
way and write the result.

Edits always run in this order, whatever the order of the flags:
  remove rows top, remove rows bottom, add rows top, add rows bottom,
  remove columns center, remove columns sides, add columns center,
  add columns sides, mirror.

Center columns sit next to the split line, side columns on the outer edges.
Inserted keys are KC_NO. Without --output (or with --output -) the layout is
printed to stdout.`,
	Example: `  viasplit edit -i corne.json -w 6 -h 4 --add-cols-sides 1 -o corne-7col.json
  viasplit edit -i lily58.json -w 6 -h 5 --rm-rows-top 1 --mirror -v`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if editPreviewLayer < 0 {
			return fmt.Errorf("invalid --preview-layer %d: must not be negative", editPreviewLayer)
		}

		plan, err := planner.NewEditPlan(editEdits)
		if err != nil {
			return err
		}

		eng, err := newEngine()
		if err != nil {
			return err
		}

		toStdout := editOutput == "" || editOutput == "-"
		req := &engine.EditRequest{
			InputPath: editInput,
			Width:     editWidth,
			Height:    editHeight,
			Keyboard:  editKeyboard,
			Plan:      plan,
			Compact:   editCompact,
			DryRun:    editDryRun,
			Trace:     editVerbose,
		}
		if !toStdout {
			req.OutputPath = editOutput
		}

		result, err := eng.Edit(context.Background(), req)
		if err != nil {
			return describeError(err)
		}

		if editVerbose {
			// Keep stdout clean for the layout when it goes there
			w := cmd.OutOrStdout()
			if toStdout || jsonOutput {
				w = cmd.ErrOrStderr()
			}
			if err := printTrace(w, result, editPreviewLayer); err != nil {
				return err
			}
		}

		if jsonOutput {
			summary := editSummary{EditResult: result}
			if toStdout {
				summary.Layout = result.Layout
			}
			return outputJSON(cmd.OutOrStdout(), summary)
		}

		if toStdout {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), string(result.Output))
			return err
		}

		if editDryRun {
			out := cmd.OutOrStdout()
			PrintSection(out, "Dry Run")
			PrintInfo(out, fmt.Sprintf("Would write %s to %s", PrintCount(len(result.Layout.Layers), "layer", "layers"), editOutput))
			printPlan(out, result)
			return nil
		}

		msg := fmt.Sprintf("Saved layout to %s", result.OutputPath)
		if result.Replaced {
			msg = fmt.Sprintf("Replaced layout at %s", result.OutputPath)
		}
		out := cmd.OutOrStdout()
		PrintSuccess(out, msg)
		PrintLabelValue(out, "Keyboard", result.Name)
		PrintLabelValue(out, "Halves", fmt.Sprintf("%s -> %s", result.Source, result.Final))
		if result.Unchanged {
			PrintWarning(out, "Layout is unchanged")
		}
		return nil
	},
}

// printPlan lists the operations of an edit with the size after each.
func printPlan(w io.Writer, result *engine.EditResult) {
	if len(result.Steps) == 0 {
		PrintEmptyState(w, "No edits requested")
		return
	}
	PrintSubsection(w, "Operations:")
	items := make([]string, 0, len(result.Steps))
	for _, step := range result.Steps {
		items = append(items, fmt.Sprintf("%s (%s)", step.Operation.Describe(), step.After))
	}
	PrintNumberedList(w, items, 1)
}

// printTrace renders every layer after the split and then the preview layer
// after every operation.
func printTrace(w io.Writer, result *engine.EditResult, previewLayer int) error {
	if len(result.Snapshots) == 0 {
		return nil
	}

	split := result.Snapshots[0]
	all, err := render.Pair(split.Pair)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Split Layout:\n%s\n", all)

	if len(result.Snapshots) > 1 && previewLayer >= split.Pair.Layers() {
		fmt.Fprintf(w, "Layer %d does not exist, skipping step previews\n", previewLayer)
		return nil
	}
	for _, snap := range result.Snapshots[1:] {
		preview, err := render.Layer(snap.Pair.Left, snap.Pair.Right, previewLayer)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s:\n%s\n", snap.Label, preview)
	}
	return nil
}

func init() {
	editCmd.Flags().StringVarP(&editInput, "input", "i", "", "Layout file to read")
	editCmd.Flags().StringVarP(&editOutput, "output", "o", "", "File to write (stdout if empty or -)")
	editCmd.Flags().IntVarP(&editWidth, "width", "w", 0, "Columns per half")
	editCmd.Flags().IntVarP(&editHeight, "height", "h", 0, "Rows per half")
	editCmd.Flags().StringVar(&editKeyboard, "keyboard", "", "Profile to take width and height from")

	editCmd.Flags().IntVar(&editEdits.AddRowsTop, "add-rows-top", 0, "Add rows at the top")
	editCmd.Flags().IntVar(&editEdits.AddRowsBottom, "add-rows-bottom", 0, "Add rows at the bottom")
	editCmd.Flags().IntVar(&editEdits.RemoveRowsTop, "rm-rows-top", 0, "Remove rows from the top")
	editCmd.Flags().IntVar(&editEdits.RemoveRowsBottom, "rm-rows-bottom", 0, "Remove rows from the bottom")
	editCmd.Flags().IntVar(&editEdits.AddColsCenter, "add-cols-center", 0, "Add columns next to the split line")
	editCmd.Flags().IntVar(&editEdits.AddColsSides, "add-cols-sides", 0, "Add columns on the outer edges")
	editCmd.Flags().IntVar(&editEdits.RemoveColsCenter, "rm-cols-center", 0, "Remove columns next to the split line")
	editCmd.Flags().IntVar(&editEdits.RemoveColsSides, "rm-cols-sides", 0, "Remove columns on the outer edges")
	editCmd.Flags().BoolVar(&editEdits.Mirror, "mirror", false, "Swap and mirror the halves")

	editCmd.Flags().BoolVar(&editCompact, "compact", false, "Write single-line JSON")
	editCmd.Flags().BoolVar(&editDryRun, "dry-run", false, "Show what would be written without writing")
	editCmd.Flags().BoolVarP(&editVerbose, "verbose", "v", false, "Print the layout after every step")
	editCmd.Flags().IntVar(&editPreviewLayer, "preview-layer", 0, "Layer shown after each step in verbose mode")

	_ = editCmd.MarkFlagRequired("input")
}
