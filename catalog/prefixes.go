package catalog

import (
	"sort"

	"github.com/c360studio/ontocat/graph"
)

// UsedPrefixes returns the registered prefixes that compact at least one IRI
// term of the graph, sorted by prefix. The empty default prefix is rendered
// as ":".
func UsedPrefixes(g *graph.Graph) []Prefix {
	bindings := g.UsedBindings()
	prefixes := make([]Prefix, 0, len(bindings))
	for _, b := range bindings {
		p := b.Prefix
		if p == "" {
			p = ":"
		}
		prefixes = append(prefixes, Prefix{Prefix: p, Namespace: b.Namespace})
	}
	sort.Slice(prefixes, func(i, j int) bool {
		return prefixes[i].Prefix < prefixes[j].Prefix
	})
	return prefixes
}
