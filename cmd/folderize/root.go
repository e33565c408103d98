// Package folderize wires the conversion core into the command line
// interface.
package folderize

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/folderize/internal/version"
	"github.com/arthur-debert/folderize/pkg/cobrax/topics"
	"github.com/arthur-debert/folderize/pkg/commands/convert"
	"github.com/arthur-debert/folderize/pkg/config"
	"github.com/arthur-debert/folderize/pkg/errors"
	"github.com/arthur-debert/folderize/pkg/logging"
	"github.com/arthur-debert/folderize/pkg/types"
	"github.com/arthur-debert/folderize/pkg/ui/output"
	"github.com/arthur-debert/folderize/pkg/ui/prompts"
)

//go:embed docs
var docsFS embed.FS

// NewRootCmd creates and returns the root command. The root command itself is
// the converter; everything else is tooling around it.
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		dryRun    bool
		headless  bool
		strategy  string
	)

	rootCmd := &cobra.Command{
		Use:     "folderize [path]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) > 0 {
				target = args[0]
			}
			return runConvert(cmd, target, strategy, dryRun, headless)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.Flags().StringVar(&strategy, "strategy", "", MsgFlagStrategy)
	rootCmd.Flags().BoolVar(&headless, "headless", false, MsgFlagHeadless)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd(rootCmd))
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newDocsCmd())

	// Topic-based help backed by the embedded docs
	if docs, err := fs.Sub(docsFS, "docs"); err == nil {
		_ = topics.InitializeWithOptions(rootCmd, docs, topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(),
		})
	}

	return rootCmd
}

func runConvert(cmd *cobra.Command, target, strategy string, dryRun, headlessFlag bool) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	if headlessFlag || detectHeadless() {
		cfg.Headless = true
	}

	choice, err := parseStrategy(strategy)
	if err != nil {
		return err
	}

	var prompter types.Prompter
	if !cfg.Headless {
		prompter = prompts.NewConsole()
	}

	result, err := convert.Convert(convert.Options{
		TargetPath: target,
		Strategy:   choice,
		DryRun:     dryRun,
		Config:     cfg,
		Prompter:   prompter,
		Reveal: func(path string) {
			// The folder path goes to stdout so scripts can capture it.
			fmt.Fprintln(cmd.OutOrStdout(), path)
		},
	})
	if err != nil {
		return err
	}

	notifier := output.NewConsole()
	switch {
	case result.DryRun && result.Strategy == "":
		notifier.Info(MsgDryRunChoice, result.Target)
	case result.DryRun:
		notifier.Info(MsgDryRunNotice)
	case result.IndexPath != "":
		notifier.Success(MsgConvertedIndex, result.Target, result.IndexPath)
	default:
		notifier.Success(MsgConverted, result.Target)
	}
	return nil
}

// parseStrategy maps the --strategy flag to a conversion choice. The
// replace-empty strategy is derived from file size and cannot be forced.
func parseStrategy(flag string) (types.Choice, error) {
	switch flag {
	case "":
		return "", nil
	case "move":
		return types.ChoiceMoveToIndex, nil
	case "delete":
		return types.ChoiceDeleteToEmpty, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "invalid strategy %q (want move or delete)", flag)
	}
}

// detectHeadless reports whether the process runs without a user to prompt.
// An explicit FOLDERIZE_HEADLESS setting is handled by the config layer; this
// covers CI environments and piped stdin.
func detectHeadless() bool {
	if os.Getenv("CI") != "" {
		return true
	}
	fd := os.Stdin.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("folderize version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion script",
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate bash completion")
				}
			case "zsh":
				if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate zsh completion")
				}
			case "fish":
				if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
					log.Error().Err(err).Msg("Failed to generate fish completion")
				}
			case "powershell":
				if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate powershell completion")
				}
			}
		},
	}
}

func newManCmd(rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "man",
		Short: MsgManShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "FOLDERIZE",
				Section: "1",
			}
			return doc.GenManTree(rootCmd, header, "/tmp")
		},
	}
}

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "docs [topic]",
		Short: MsgDocsShort,
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			tm, err := loadDocs()
			if err != nil {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return tm.ListTopics(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			tm, err := loadDocs()
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "cannot load documentation")
			}

			if len(args) == 0 {
				names := tm.ListTopics()
				sort.Strings(names)
				fmt.Fprintln(cmd.OutOrStdout(), "Available topics:")
				for _, name := range names {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
				}
				return nil
			}

			rendered, ok := tm.Rendered(args[0])
			if !ok {
				return errors.Newf(errors.ErrInvalidInput, "unknown topic %q", args[0])
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}

func loadDocs() (*topics.TopicManager, error) {
	docs, err := fs.Sub(docsFS, "docs")
	if err != nil {
		return nil, err
	}
	return topics.Load(docs, topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	})
}

func newGenConfigCmd() *cobra.Command {
	var (
		write  bool
		format string
	)

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rendered, err := config.RenderDefault(format)
			if err != nil {
				return err
			}
			if !write {
				fmt.Fprint(cmd.OutOrStdout(), rendered)
				return nil
			}

			path, err := config.DefaultPath(format)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "cannot create config directory for %s", path)
			}
			if err := os.WriteFile(path, []byte(rendered), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "cannot write config to %s", path)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().StringVar(&format, "format", "toml", MsgFlagFormat)
	return cmd
}
