package tree

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/alexflint/go-arg"

	"github.com/hayeah/tree/render"
	"github.com/hayeah/tree/walk"
)

// Args defines the command-line arguments for the tree CLI
type Args struct {
	All       bool     `arg:"-a,--all" help:"Include entries whose name starts with a dot"`
	DirsOnly  bool     `arg:"-d,--dirs-only" help:"List directories only"`
	Classify  bool     `arg:"-F,--classify" help:"Append a type indicator (one of /*@=|) to names"`
	DirsFirst bool     `arg:"-x,--dirsfirst" help:"List directories before files"`
	GroupDirs bool     `arg:"-G,--group-dirs" help:"Same as -x"`
	Exclude   []string `arg:"-I,--exclude,separate" placeholder:"PATTERN" help:"Do not list names matching the glob (repeatable)"`
	Pattern   []string `arg:"-P,--pattern,separate" placeholder:"PATTERN" help:"List only files matching the glob (repeatable)"`
	Level     Level    `arg:"-L,--level" placeholder:"DEPTH" help:"Descend at most DEPTH directories"`
	Color     bool     `arg:"-C,--color" help:"Colourise names by file type"`
	GitIgnore bool     `arg:"--gitignore" help:"Hide entries ignored by .gitignore files"`
	Config    string   `arg:"--config,env:TREE_CONFIG" placeholder:"FILE" help:"TOML file with default options"`
	Paths     []string `arg:"positional" placeholder:"PATH" help:"Paths to list (default: current directory)"`
}

// Level is a depth limit: a positive integer that fits in 32 bits.
// The zero value means no limit was given.
type Level int

// UnmarshalText implements encoding.TextUnmarshaler, so go-arg rejects bad
// values while parsing.
func (l *Level) UnmarshalText(text []byte) error {
	n, err := strconv.ParseInt(string(text), 10, 32)
	if err != nil || n < 1 {
		return fmt.Errorf("invalid level: %s", text)
	}
	*l = Level(n)
	return nil
}

// ParseArgs parses the command line, without the program name. A help
// request is reported as arg.ErrHelp. The parser is returned whenever it
// could be built, so callers can print usage on error.
func ParseArgs(argv []string) (*Args, *arg.Parser, error) {
	args := &Args{}
	parser, err := arg.NewParser(arg.Config{Program: "tree"}, args)
	if err != nil {
		return nil, nil, err
	}
	if err := parser.Parse(argv); err != nil {
		return nil, parser, err
	}
	return args, parser, nil
}

// Options merges the flags over the config file defaults. file may be nil.
// Switches are on if either source turns them on, patterns from the file come
// first, and a level given on the command line wins.
func (a *Args) Options(file *FileConfig) *walk.Options {
	if file == nil {
		file = &FileConfig{}
	}

	opts := &walk.Options{
		All:       a.All || file.All,
		DirsOnly:  a.DirsOnly || file.DirsOnly,
		Classify:  a.Classify || file.Classify,
		DirsFirst: a.DirsFirst || a.GroupDirs || file.DirsFirst,
		Color:     a.Color || file.Color,
		GitIgnore: a.GitIgnore || file.GitIgnore,
		Depth:     walk.Unlimited,
	}

	for _, p := range file.Exclude {
		opts.Exclude.Add(p)
	}
	for _, p := range a.Exclude {
		opts.Exclude.Add(p)
	}
	for _, p := range file.Include {
		opts.Include.Add(p)
	}
	for _, p := range a.Pattern {
		opts.Include.Add(p)
	}

	switch {
	case a.Level > 0:
		opts.Depth = int(a.Level)
	case file.Level != nil:
		opts.Depth = *file.Level
	}
	return opts
}

// TreeCLI represents the tree CLI application
type TreeCLI struct {
	Args   *Args
	Driver *render.Driver
	Out    *bufio.Writer
}

// Run prints the tree of every requested path. Buffered output is flushed
// even when a fatal error cuts the run short.
func (cli *TreeCLI) Run() (err error) {
	defer func() {
		if ferr := cli.Out.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("failed to write output: %w", ferr)
		}
	}()
	return cli.Driver.Run(cli.Args.Paths)
}
