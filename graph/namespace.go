package graph

import "strings"

// Binding associates a namespace prefix with its namespace IRI.
type Binding struct {
	Prefix    string
	Namespace string
}

// Namespaces is an ordered prefix table. Binding is first-write-wins: once a
// prefix is registered it is never overwritten or removed.
type Namespaces struct {
	bindings []Binding
	byPrefix map[string]int
}

// NewNamespaces returns an empty prefix table.
func NewNamespaces() *Namespaces {
	return &Namespaces{byPrefix: make(map[string]int)}
}

// Bind registers prefix for namespace and reports whether the binding was
// added. A prefix that is already bound keeps its existing namespace.
func (n *Namespaces) Bind(prefix, namespace string) bool {
	if namespace == "" {
		return false
	}
	if _, exists := n.byPrefix[prefix]; exists {
		return false
	}
	n.byPrefix[prefix] = len(n.bindings)
	n.bindings = append(n.bindings, Binding{Prefix: prefix, Namespace: namespace})
	return true
}

// Lookup returns the namespace bound to prefix.
func (n *Namespaces) Lookup(prefix string) (string, bool) {
	i, ok := n.byPrefix[prefix]
	if !ok {
		return "", false
	}
	return n.bindings[i].Namespace, true
}

// Bindings returns a copy of the bindings in registration order.
func (n *Namespaces) Bindings() []Binding {
	out := make([]Binding, len(n.bindings))
	copy(out, n.bindings)
	return out
}

// QName resolves iri to its prefixed form using the longest matching
// registered namespace. The empty prefix yields a leading colon (":Name").
// ok is false when no namespace covers the IRI or the remainder would not be
// a usable local name.
func (n *Namespaces) QName(iri IRI) (qname string, ok bool) {
	s := string(iri)
	best := -1
	bestLen := -1
	for i, b := range n.bindings {
		if !strings.HasPrefix(s, b.Namespace) {
			continue
		}
		if len(b.Namespace) > bestLen {
			best = i
			bestLen = len(b.Namespace)
		}
	}
	if best < 0 {
		return "", false
	}
	local := s[bestLen:]
	if local == "" || strings.ContainsAny(local, "/#") {
		return "", false
	}
	return n.bindings[best].Prefix + ":" + local, true
}

// Compact returns the prefixed form of iri, falling back to the full IRI
// text when no registered namespace matches. It never fails.
func (n *Namespaces) Compact(iri IRI) string {
	if q, ok := n.QName(iri); ok {
		return q
	}
	return string(iri)
}

// cutQName splits a qname into prefix and local name.
func cutQName(qname string) (prefix, local string, ok bool) {
	return strings.Cut(qname, ":")
}
