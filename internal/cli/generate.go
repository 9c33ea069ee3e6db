package cli

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bjaus/exhaust/internal/gen"
)

var (
	errNoTypes          = errors.New("no types: pass --type or --config, or add " + gen.DefaultConfigFile)
	errOutputWithConfig  = errors.New("--output cannot be used with a manifest")
	errPatternWithConfig = errors.New("a package pattern cannot be used with a manifest")
)

type generateOptions struct {
	types   []string
	cfgPath string
	output  string
	dir     string
	stdout  bool
	verbose bool
}

func newGenerateCmd() *cobra.Command {
	opts := generateOptions{dir: "."}
	cmd := &cobra.Command{
		Use:   "generate [pattern]",
		Short: "Write <type>_exhaust.go for the named string types",
		Long: `Generate writes a Set, a VisitorCases interface, and visitor and mapper
constructors for each named string type. Adding a constant to the type then
breaks the build wherever a case is missing.

Types come from --type, or from an exhaust.yaml manifest given by --config or
found in --dir. The pattern defaults to the package in --dir.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pattern string
			if len(args) == 1 {
				pattern = args[0]
			}
			return runGenerate(cmd, opts, pattern)
		},
	}
	fs := cmd.Flags()
	fs.StringSliceVarP(&opts.types, "type", "t", nil, "string type names, comma separated or repeated")
	fs.StringVarP(&opts.cfgPath, "config", "c", "", "manifest path")
	fs.StringVarP(&opts.output, "output", "o", "", "output file name (default <type>_exhaust.go)")
	fs.StringVar(&opts.dir, "dir", ".", "directory the pattern resolves against")
	fs.BoolVar(&opts.stdout, "stdout", false, "print generated source instead of writing files")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output")
	cmd.MarkFlagsMutuallyExclusive("type", "config")
	return cmd
}

func runGenerate(cmd *cobra.Command, opts generateOptions, pattern string) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)

	reqs, err := requests(opts, pattern)
	if err != nil {
		return err
	}

	for _, req := range reqs {
		logger.Debug("loading package", "dir", req.Dir, "pattern", req.Pattern, "types", strings.Join(req.Types, ","))
		f, err := gen.Generate(cmd.Context(), req)
		if err != nil {
			return err
		}
		if opts.stdout {
			if _, err := cmd.OutOrStdout().Write(f.Content); err != nil {
				return err
			}
			continue
		}
		if err := f.Write(); err != nil {
			return err
		}
		logger.Info("generated", "path", f.Path)
	}
	return nil
}

// requests resolves flags into generation requests. Explicit types win;
// otherwise a manifest is read from --config or from --dir. An empty pattern
// means none was given.
func requests(opts generateOptions, pattern string) ([]gen.Request, error) {
	if len(opts.types) > 0 {
		args := []string{"generate", "--type", strings.Join(opts.types, ",")}
		if opts.output != "" {
			args = append(args, "--output", opts.output)
		}
		if pattern == "" {
			pattern = "."
		} else {
			args = append(args, pattern)
		}
		return []gen.Request{{
			Dir:     opts.dir,
			Pattern: pattern,
			Types:   opts.types,
			Output:  opts.output,
			Args:    args,
		}}, nil
	}

	path := opts.cfgPath
	if path == "" {
		path = filepath.Join(opts.dir, gen.DefaultConfigFile)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil, errNoTypes
		}
	}
	if opts.output != "" {
		return nil, errOutputWithConfig
	}
	if pattern != "" {
		return nil, errPatternWithConfig
	}
	cfg, err := gen.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	reqs := cfg.Requests(filepath.Dir(path))
	for i := range reqs {
		reqs[i].Args = []string{"generate", "--config", filepath.Base(path)}
	}
	return reqs, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
