package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	jsonOutput bool
	debugLog   bool
	configPath string

	// logger stays a no-op until PersistentPreRunE builds the real one
	logger = zap.NewNop()

	// Colors for help output sections
	groupTitleColor   = color.New(color.FgCyan, color.Bold)
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// rootCmd is the root command for viasplit.
var rootCmd = &cobra.Command{
	Use:     "viasplit",
	Version: "dev",
	Short:   "Split keyboard layout editor for VIA keymaps",
	Long: `viasplit edits VIA layout files for split keyboards.

It splits every layer of a flat layout into a left and a right half, adds or
removes rows and columns on both halves at once, optionally mirrors the
halves, and writes the layout back in the same format.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if debugLog {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// helpFunc prints help with colored section titles. Root lists its
// commands by group; other commands list their subcommands and examples.
func helpFunc(cmd *cobra.Command, args []string) {
	var help strings.Builder

	if cmd.Long != "" {
		help.WriteString(cmd.Long + "\n\n")
	} else if cmd.Short != "" {
		help.WriteString(cmd.Short + "\n\n")
	}

	section := func(title string, body string) {
		if body == "" {
			return
		}
		fmt.Fprintf(&help, "%s\n%s\n", sectionTitleColor.Sprint(title), body)
	}
	listing := func(match func(*cobra.Command) bool) string {
		var sb strings.Builder
		for _, c := range cmd.Commands() {
			if match(c) && c.IsAvailableCommand() {
				fmt.Fprintf(&sb, "  %-11s %s\n", c.Name(), c.Short)
			}
		}
		return sb.String()
	}

	section("Usage:", "  "+cmd.UseLine()+"\n")
	for _, group := range cmd.Groups() {
		body := listing(func(c *cobra.Command) bool { return c.GroupID == group.ID })
		if body != "" {
			fmt.Fprintf(&help, "%s\n%s\n", groupTitleColor.Sprint(group.Title), body)
		}
	}
	if len(cmd.Groups()) == 0 {
		section("Commands:", listing(func(*cobra.Command) bool { return true }))
	}
	if cmd.Example != "" {
		section("Examples:", cmd.Example+"\n")
	}
	section("Flags:", cmd.LocalFlags().FlagUsages())
	section("Global Flags:", cmd.InheritedFlags().FlagUsages())

	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(&help, "Use \"%s [command] --help\" for more information about a command.\n", cmd.CommandPath())
	}
	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

// normalizeFlagName accepts underscore spellings such as --add_cols_center.
func normalizeFlagName(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func init() {
	rootCmd.SetHelpFunc(helpFunc)
	rootCmd.SetGlobalNormalizationFunc(normalizeFlagName)

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Keyboard profiles file (default ~/.viasplit/config.toml)")

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "layout-editing",
		Title: "Layout Editing:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "layout-inspection",
		Title: "Layout Inspection:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "cli-tooling",
		Title: "CLI & Tooling:",
	})

	// CLI & Tooling commands
	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the viasplit CLI version",
		Args:    cobra.NoArgs,
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	helpCmd := &cobra.Command{
		Use:     "help [command]",
		Short:   "Help about any command",
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			target, _, err := cmd.Root().Find(args)
			if err != nil || target == nil {
				target = cmd.Root()
			}
			_ = target.Help()
		},
	}
	rootCmd.SetHelpCommand(helpCmd)

	completionCmd := &cobra.Command{
		Use:     "completion",
		Short:   "Generate the autocompletion script for the specified shell",
		GroupID: "cli-tooling",
		Long: `Generate the autocompletion script for viasplit for the specified shell.
See each sub-command's help for details on how to use the generated script.`,
	}
	shells := []struct {
		name string
		gen  func(w io.Writer) error
	}{
		{"bash", rootCmd.GenBashCompletion},
		{"zsh", rootCmd.GenZshCompletion},
		{"fish", func(w io.Writer) error { return rootCmd.GenFishCompletion(w, true) }},
		{"powershell", rootCmd.GenPowerShellCompletionWithDesc},
	}
	for _, sh := range shells {
		gen := sh.gen
		completionCmd.AddCommand(&cobra.Command{
			Use:                   sh.name,
			Short:                 "Generate the autocompletion script for " + sh.name,
			Args:                  cobra.NoArgs,
			DisableFlagsInUseLine: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				return gen(cmd.OutOrStdout())
			},
		})
	}
	rootCmd.AddCommand(completionCmd)

	// Layout Editing commands
	editCmd.GroupID = "layout-editing"
	rootCmd.AddCommand(editCmd)

	// Layout Inspection commands
	showCmd.GroupID = "layout-inspection"
	checkCmd.GroupID = "layout-inspection"
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(checkCmd)
}

// Execute executes the root command and prints any error to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
	}
	return err
}
