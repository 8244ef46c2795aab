package render

// Prefix is the branch art printed before the entries of one directory. Its
// last byte is the connector slot: '|' for an entry with siblings below it,
// '`' for the last one.
type Prefix string

// RootPrefix leads the immediate children of a root.
const RootPrefix Prefix = "|"

// Line returns the prefix for an entry line.
func (p Prefix) Line(last bool) string {
	if last {
		return string(p[:len(p)-1]) + "`"
	}
	return string(p)
}

// Child returns the prefix for the entries of a subdirectory. Below the last
// sibling the vertical branch stops, so its slot turns blank.
func (p Prefix) Child(last bool) Prefix {
	branch := Prefix("|")
	if last {
		branch = " "
	}
	return p[:len(p)-1] + branch + "   |"
}
