package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/sufftree/internal/configloader"
	"github.com/yaklabco/sufftree/internal/logging"
	"github.com/yaklabco/sufftree/internal/ui/pretty"
	"github.com/yaklabco/sufftree/pkg/config"
	"github.com/yaklabco/sufftree/pkg/export"
	"github.com/yaklabco/sufftree/pkg/suffixtree"
)

type buildFlags struct {
	file         string
	output       string
	format       string
	terminator   string
	lowercase    bool
	suffixLinks  bool
	suffixStarts bool
}

func newBuildCommand() *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build [text]",
		Short: "Build and render the suffix tree of a string",
		Long:  buildLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "read the input from a file instead of the argument")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the rendering to a file instead of stdout")
	cmd.Flags().StringVar(&flags.format, "format", string(config.FormatPretty),
		"output format: pretty, text, dot, stats")
	cmd.Flags().StringVar(&flags.terminator, "terminator", "$", "terminator symbol appended to the input")
	cmd.Flags().BoolVar(&flags.lowercase, "lowercase", false, "restrict the input to the letters a-z")
	cmd.Flags().BoolVar(&flags.suffixLinks, "suffix-links", false, "include suffix links (pretty and dot formats)")
	cmd.Flags().BoolVar(&flags.suffixStarts, "suffix-starts", true, "annotate leaves with their suffix start index")

	return cmd
}

const buildLongDescription = `Build the suffix tree of a string and render it.

The input comes from the single positional argument or from --file. A
terminator symbol ('$' by default) is appended; the input must not contain
it.

Examples:
  sufftree build banana                     # Styled outline on the terminal
  sufftree build banana --format text       # Plain outline
  sufftree build banana --format dot        # Graphviz, pipe into dot -Tsvg
  sufftree build banana --format stats      # Shape summary only
  sufftree build --file chromosome.txt -o tree.dot --format dot
  sufftree build mississippi --lowercase    # Reject anything outside a-z`

func runBuild(cmd *cobra.Command, args []string, flags *buildFlags) error {
	logger := logging.Default()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadBuildConfig(ctx, cmd, flags)
	if err != nil {
		return err
	}

	input, err := readInput(args, flags)
	if err != nil {
		return err
	}

	logger.Debug("building suffix tree",
		logging.FieldLength, len(input),
		logging.FieldTerminator, cfg.Terminator,
	)

	opts := []suffixtree.Option[rune]{suffixtree.WithTerminator(cfg.TerminatorRune())}
	if cfg.LowercaseEnabled() {
		opts = append(opts, suffixtree.Lowercase())
	}

	tree, err := suffixtree.BuildString(input, opts...)
	if err != nil {
		return fmt.Errorf("build tree: %w", err)
	}

	stats := suffixtree.Summarize(tree)
	logger.Debug("tree built",
		logging.FieldNodes, stats.Nodes,
		logging.FieldLeaves, stats.Leaves,
		logging.FieldDepth, stats.MaxDepth,
	)

	out, closeOut, err := openOutput(flags.output)
	if err != nil {
		return err
	}
	defer closeOut()

	return render(ctx, cfg, tree, stats, out)
}

// loadBuildConfig merges defaults, a discovered or named config file, and
// the flags that were explicitly set on the command line.
func loadBuildConfig(ctx context.Context, cmd *cobra.Command, flags *buildFlags) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loaded, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errConfig, err)
	}
	cfg := loaded.Config

	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("terminator") {
		cfg.Terminator = flags.terminator
	}
	if cmd.Flags().Changed("lowercase") {
		cfg.Lowercase = &flags.lowercase
	}
	if cmd.Flags().Changed("suffix-links") {
		cfg.SuffixLinks = &flags.suffixLinks
	}
	if cmd.Flags().Changed("suffix-starts") {
		cfg.SuffixStarts = &flags.suffixStarts
	}
	if colorFlag, err := cmd.Flags().GetString("color"); err == nil && cmd.Flags().Changed("color") {
		cfg.Color = colorFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errConfig, err)
	}
	return cfg, nil
}

func readInput(args []string, flags *buildFlags) (string, error) {
	haveArg := len(args) == 1

	switch {
	case haveArg && flags.file != "":
		return "", fmt.Errorf("%w: both a text argument and --file given", errUsage)
	case flags.file != "":
		data, err := os.ReadFile(flags.file)
		if err != nil {
			return "", fmt.Errorf("read input %s: %w", flags.file, err)
		}
		// A single trailing newline is an artifact of text files, not input.
		return strings.TrimSuffix(string(data), "\n"), nil
	case haveArg:
		return args[0], nil
	default:
		return "", fmt.Errorf("%w: no input; pass a text argument or --file", errUsage)
	}
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}

func render(
	ctx context.Context,
	cfg *config.Config,
	tree *suffixtree.Tree[rune],
	stats suffixtree.Stats,
	out io.Writer,
) error {
	exportOpts := export.Options{
		Writer:       out,
		SuffixLinks:  cfg.SuffixLinksEnabled(),
		SuffixStarts: cfg.SuffixStartsEnabled(),
	}

	switch cfg.Format {
	case config.FormatDOT:
		return export.NewDOT(export.Runes, exportOpts).Export(ctx, tree)

	case config.FormatText:
		return export.NewText(export.Runes, exportOpts).Export(ctx, tree)

	case config.FormatStats:
		styles := pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, out))
		return pretty.RenderSummary(out, styles, stats, tree.Len())

	case config.FormatPretty:
		styles := pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, out))
		renderer := pretty.NewTreeRenderer(styles)
		renderer.SuffixStarts = cfg.SuffixStartsEnabled()
		renderer.SuffixLinks = cfg.SuffixLinksEnabled()
		renderer.Width = terminalWidth(out)
		if err := renderer.Render(out, tree); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
		return pretty.RenderSummary(out, styles, stats, tree.Len())

	default:
		return fmt.Errorf("%w: unknown format %q", errConfig, cfg.Format)
	}
}

// terminalWidth returns the width of the terminal behind w, or 0 when w is
// not a terminal (no truncation).
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
