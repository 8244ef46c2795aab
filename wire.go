//go:build wireinject

package tree

import (
	"github.com/google/wire"
)

// InitTreeCLI wires a TreeCLI for parsed args.
func InitTreeCLI(args *Args, stdout Stdout, stderr Stderr) (*TreeCLI, error) {
	panic(wire.Build(Wires))
}
