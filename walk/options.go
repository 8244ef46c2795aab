package walk

// Unlimited is the depth budget that never runs out.
const Unlimited = -1

// Options is the immutable configuration shared by every component of a run.
// It is built once by the CLI and passed down by pointer; nothing mutates it.
type Options struct {
	All       bool // include dot-prefixed names
	DirsOnly  bool // list directories only
	Classify  bool // append a type suffix to names
	DirsFirst bool // directories sort before everything else
	Color     bool // colourise names
	GitIgnore bool // honour .gitignore files under each root

	// Exclude removes any entry whose name matches.
	Exclude FilterSet
	// Include, when non-empty, keeps only non-directories whose name matches.
	Include FilterSet

	// Depth is the number of directory levels to descend, or Unlimited.
	Depth int
}

// DefaultOptions returns options for a plain, unlimited listing.
func DefaultOptions() *Options {
	return &Options{Depth: Unlimited}
}
