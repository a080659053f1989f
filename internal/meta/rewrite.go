package meta

import "strings"

// Attr is one metadata attribute: a name, a type label, and the value as
// dumped. Type and value pass through a rewrite untouched; only names
// change.
type Attr struct {
	Name  string
	Type  string
	Value string
}

// collidingPrefixes are the source namespaces that conflict with the EXR
// reserved namespace and must be renamed on conversion.
var collidingPrefixes = []string{"raw:", "oiio:"}

// safePrefix is the non-conflicting namespace the renamed attributes move
// into: "raw:wb" becomes "DNG:raw_wb".
const safePrefix = "DNG:"

// Rewrite is the result of mapping a source attribute set into an EXR-safe
// output set. Non-colliding attributes carry over unchanged on conversion,
// so only what the writer must patch is materialized: the renamed entries
// and the output compression.
type Rewrite struct {
	// Renamed holds the entries whose names were rewritten, in source
	// order, with type and value untouched.
	Renamed []Attr
	// Compression is the compression attribute value set on the output,
	// overriding any source value.
	Compression string
}

// RewriteAttrs renames the colliding namespaces of src and pins the output
// compression. Two distinct source names that rename to the same output
// name are not detected; the later entry simply follows the earlier one.
func RewriteAttrs(src []Attr, compression string) Rewrite {
	rw := Rewrite{Compression: compression}
	for _, a := range src {
		if renamed, ok := safeName(a.Name); ok {
			out := a
			out.Name = renamed
			rw.Renamed = append(rw.Renamed, out)
		}
	}
	return rw
}

// safeName reports whether name starts with a colliding prefix and, if so,
// returns the rewritten form: the safe prefix plus the original name with
// every namespace separator replaced by an underscore.
func safeName(name string) (string, bool) {
	for _, p := range collidingPrefixes {
		if strings.HasPrefix(name, p) {
			return safePrefix + strings.ReplaceAll(name, ":", "_"), true
		}
	}
	return name, false
}

// CollidingPrefixes returns the namespace prefixes that get renamed, for
// tool builders that erase the originals before re-adding the safe names.
func CollidingPrefixes() []string {
	out := make([]string, len(collidingPrefixes))
	copy(out, collidingPrefixes)
	return out
}
