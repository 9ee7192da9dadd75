package export

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/c360studio/ontocat/graph"
	"github.com/c360studio/ontocat/vocabulary"
)

// RDFXML serializes the graph as RDF/XML. Predicate element names require a
// namespace prefix: registered prefixes are used where possible and ns1,
// ns2, ... are generated for the rest. A predicate IRI that cannot be split
// into a namespace and a valid XML local name is a *SerializationError.
func RDFXML(g *graph.Graph) ([]byte, error) {
	prefixes := newXMLPrefixes(g.Namespaces())

	// Resolve every predicate up front so errors surface before output.
	for _, t := range g.Triples() {
		if _, err := prefixes.elementName(t.Predicate); err != nil {
			return nil, &SerializationError{Format: FormatRDFXML, Err: err}
		}
	}

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="utf-8"?>` + "\n")
	sb.WriteString("<rdf:RDF")
	for _, decl := range prefixes.declarations() {
		sb.WriteString("\n    xmlns:" + decl.Prefix + "=" + attr(decl.Namespace))
	}
	sb.WriteString(">\n")

	for _, subject := range subjectOrder(g) {
		writeDescription(&sb, g, prefixes, subject)
	}

	sb.WriteString("</rdf:RDF>\n")
	return []byte(sb.String()), nil
}

// subjectOrder returns the distinct subjects in first-appearance order.
func subjectOrder(g *graph.Graph) []graph.Term {
	seen := make(map[string]bool)
	var subjects []graph.Term
	for _, t := range g.Triples() {
		key := termID(t.Subject)
		if seen[key] {
			continue
		}
		seen[key] = true
		subjects = append(subjects, t.Subject)
	}
	return subjects
}

// termID distinguishes subjects of different kinds with the same text.
func termID(t graph.Term) string {
	if _, ok := t.(graph.BlankNode); ok {
		return "_:" + t.String()
	}
	return t.String()
}

// writeDescription writes one rdf:Description block.
func writeDescription(sb *strings.Builder, g *graph.Graph, prefixes *xmlPrefixes, subject graph.Term) {
	switch subject.(type) {
	case graph.BlankNode:
		sb.WriteString("  <rdf:Description rdf:nodeID=" + attr(subject.String()) + ">\n")
	default:
		sb.WriteString("  <rdf:Description rdf:about=" + attr(subject.String()) + ">\n")
	}

	subjectKey := termID(subject)
	for _, t := range g.Triples() {
		if termID(t.Subject) != subjectKey {
			continue
		}
		name, _ := prefixes.elementName(t.Predicate)
		switch o := t.Object.(type) {
		case graph.IRI:
			sb.WriteString("    <" + name + " rdf:resource=" + attr(string(o)) + "/>\n")
		case graph.BlankNode:
			sb.WriteString("    <" + name + " rdf:nodeID=" + attr(string(o)) + "/>\n")
		case graph.Literal:
			sb.WriteString("    <" + name)
			if o.Lang != "" {
				sb.WriteString(" xml:lang=" + attr(o.Lang))
			} else if o.Datatype != "" && string(o.Datatype) != vocabulary.XSDString {
				sb.WriteString(" rdf:datatype=" + attr(string(o.Datatype)))
			}
			sb.WriteString(">" + escapeXML(o.Value) + "</" + name + ">\n")
		}
	}

	sb.WriteString("  </rdf:Description>\n")
}

// xmlPrefixes assigns element-name prefixes to predicate namespaces.
type xmlPrefixes struct {
	prefixByNS map[string]string
	used       map[string]bool
	nextAuto   int
}

func newXMLPrefixes(ns *graph.Namespaces) *xmlPrefixes {
	p := &xmlPrefixes{
		prefixByNS: make(map[string]string),
		used:       make(map[string]bool),
		nextAuto:   1,
	}
	// rdf is always needed for the document structure.
	p.prefixByNS[vocabulary.RDF] = "rdf"
	p.used["rdf"] = true
	for _, b := range ns.Bindings() {
		if b.Prefix == "" || p.used[b.Prefix] {
			continue
		}
		if _, exists := p.prefixByNS[b.Namespace]; exists {
			continue
		}
		p.prefixByNS[b.Namespace] = b.Prefix
		p.used[b.Prefix] = true
	}
	return p
}

// xmlLocalRe matches names usable as XML element local parts.
var xmlLocalRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

// elementName resolves a predicate IRI to a prefixed XML element name,
// generating a prefix for unregistered namespaces.
func (p *xmlPrefixes) elementName(predicate graph.IRI) (string, error) {
	ns, local, ok := splitIRI(string(predicate))
	if !ok || !xmlLocalRe.MatchString(local) {
		return "", fmt.Errorf("predicate %q has no usable XML element name", predicate)
	}
	prefix, exists := p.prefixByNS[ns]
	if !exists {
		for {
			prefix = fmt.Sprintf("ns%d", p.nextAuto)
			p.nextAuto++
			if !p.used[prefix] {
				break
			}
		}
		p.prefixByNS[ns] = prefix
		p.used[prefix] = true
	}
	return prefix + ":" + local, nil
}

// declaration is one xmlns attribute of the document root.
type declaration struct {
	Prefix    string
	Namespace string
}

// declarations returns the xmlns table sorted by prefix.
func (p *xmlPrefixes) declarations() []declaration {
	decls := make([]declaration, 0, len(p.prefixByNS))
	for ns, prefix := range p.prefixByNS {
		decls = append(decls, declaration{Prefix: prefix, Namespace: ns})
	}
	sort.Slice(decls, func(i, j int) bool {
		return decls[i].Prefix < decls[j].Prefix
	})
	return decls
}

// splitIRI splits an IRI into a namespace part and a local name at the last
// "#" or "/".
func splitIRI(iri string) (ns, local string, ok bool) {
	if i := strings.LastIndex(iri, "#"); i >= 0 && i < len(iri)-1 {
		return iri[:i+1], iri[i+1:], true
	}
	if i := strings.LastIndex(iri, "/"); i >= 0 && i < len(iri)-1 {
		return iri[:i+1], iri[i+1:], true
	}
	return "", "", false
}

// attr escapes and quotes an attribute value.
func attr(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return `"` + s + `"`
}

// escapeXML escapes character data for element content.
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
