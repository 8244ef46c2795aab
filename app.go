package tree

import (
	"bufio"
	"io"
	"log/slog"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/google/wire"

	"github.com/hayeah/tree/render"
	"github.com/hayeah/tree/walk"
)

// Stdout receives the tree.
type Stdout io.Writer

// Stderr receives warnings.
type Stderr io.Writer

// ProvideOptions builds the run configuration from the flags and, when
// --config is set, the config file.
func ProvideOptions(args *Args) (*walk.Options, error) {
	var file *FileConfig
	if args.Config != "" {
		cfg, err := LoadFileConfig(args.Config)
		if err != nil {
			return nil, err
		}
		file = cfg
	}
	return args.Options(file), nil
}

// ProvideLogger creates the warning logger. Timestamps are dropped; the
// output is meant for a person watching the command.
func ProvideLogger(stderr Stderr) *slog.Logger {
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// ProvideFilesystem returns the host filesystem. The base is empty, so
// relative paths resolve against the working directory and absolute paths
// are used as given.
func ProvideFilesystem() billy.Filesystem {
	return osfs.New("")
}

func ProvideOutput(stdout Stdout) *bufio.Writer {
	return bufio.NewWriter(stdout)
}

func ProvidePalette(out *bufio.Writer, opts *walk.Options) *render.Palette {
	return render.NewPalette(out, opts.Color)
}

func ProvideDriver(fsys billy.Filesystem, opts *walk.Options, logger *slog.Logger, palette *render.Palette, out *bufio.Writer) *render.Driver {
	return render.NewDriver(fsys, opts, logger, palette, out)
}

// collect all the necessary providers
var Wires = wire.NewSet(
	ProvideOptions,
	ProvideLogger,
	ProvideFilesystem,
	ProvideOutput,
	ProvidePalette,
	ProvideDriver,

	wire.Struct(new(TreeCLI), "*"),
)
