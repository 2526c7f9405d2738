package fragment

import (
	"path"
	"sort"
	"strings"

	"github.com/venlo/commercegraph/internal/language"
)

// Fragment is one unit of raw SDL source text. Name is a normalized,
// path-independent identifier; Position fixes the fragment's place in the
// merged definition set regardless of retrieval order.
type Fragment struct {
	Name     string
	Position int
	Body     string
}

// Normalize converts a fragment identifier to forward-slash form so the same
// source merges identically whether its name came from a POSIX or Windows
// path.
func Normalize(name string) string {
	return path.Clean(strings.ReplaceAll(name, `\`, "/"))
}

// Merged is the output of Merge: the fragments in position order, the
// corresponding parser sources, and the concatenated text.
type Merged struct {
	Fragments []Fragment
	Sources   []*language.Source
	Text      string
}

// Merge orders fragments by position and concatenates them. The merge is
// purely textual; uniqueness of type declarations is checked when the merged
// sources are parsed into a schema.
func Merge(fragments []Fragment) *Merged {
	ordered := make([]Fragment, len(fragments))
	copy(ordered, fragments)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Position < ordered[j].Position })

	m := &Merged{Fragments: ordered}
	var b strings.Builder
	for i, f := range ordered {
		m.Sources = append(m.Sources, language.NewSource(f.Name, f.Body))
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.TrimRight(f.Body, "\n"))
		b.WriteString("\n")
	}
	m.Text = b.String()
	return m
}
