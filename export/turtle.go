package export

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/c360studio/ontocat/graph"
	"github.com/c360studio/ontocat/vocabulary"
)

// Turtle serializes the graph as Turtle. The output is byte-deterministic
// for a given graph: prefix directives cover the used prefixes sorted by
// prefix, subjects are sorted by their rendered form, rdf:type ("a") comes
// first within a subject, remaining predicates and their objects are sorted.
func Turtle(g *graph.Graph) ([]byte, error) {
	var sb strings.Builder

	bindings := g.UsedBindings()
	sort.Slice(bindings, func(i, j int) bool {
		return bindings[i].Prefix < bindings[j].Prefix
	})
	for _, b := range bindings {
		sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", b.Prefix, b.Namespace))
	}
	if len(bindings) > 0 {
		sb.WriteString("\n")
	}

	for _, subject := range sortedSubjects(g) {
		writeSubjectTurtle(&sb, g, subject)
		sb.WriteString("\n")
	}

	return []byte(sb.String()), nil
}

// subjectGroup pairs a subject with its rendered form for ordering.
type subjectGroup struct {
	term     graph.Term
	rendered string
}

// sortedSubjects returns the distinct subjects of the graph sorted by their
// rendered Turtle form.
func sortedSubjects(g *graph.Graph) []subjectGroup {
	ns := g.Namespaces()
	seen := make(map[string]bool)
	var subjects []subjectGroup
	for _, t := range g.Triples() {
		rendered := turtleTerm(ns, t.Subject)
		if seen[rendered] {
			continue
		}
		seen[rendered] = true
		subjects = append(subjects, subjectGroup{term: t.Subject, rendered: rendered})
	}
	sort.Slice(subjects, func(i, j int) bool {
		return subjects[i].rendered < subjects[j].rendered
	})
	return subjects
}

// writeSubjectTurtle writes one subject block.
func writeSubjectTurtle(sb *strings.Builder, g *graph.Graph, subject subjectGroup) {
	ns := g.Namespaces()
	rdfType := graph.IRI(vocabulary.RDFType)

	objectsByPredicate := make(map[graph.IRI]map[string]bool)
	for _, t := range g.Triples() {
		if turtleTerm(ns, t.Subject) != subject.rendered {
			continue
		}
		objects := objectsByPredicate[t.Predicate]
		if objects == nil {
			objects = make(map[string]bool)
			objectsByPredicate[t.Predicate] = objects
		}
		objects[turtleTerm(ns, t.Object)] = true
	}

	predicates := make([]graph.IRI, 0, len(objectsByPredicate))
	for p := range objectsByPredicate {
		predicates = append(predicates, p)
	}
	sort.Slice(predicates, func(i, j int) bool {
		// rdf:type sorts first; everything else by rendered form.
		if predicates[i] == rdfType || predicates[j] == rdfType {
			return predicates[i] == rdfType
		}
		return turtleTerm(ns, predicates[i]) < turtleTerm(ns, predicates[j])
	})

	sb.WriteString(subject.rendered)
	sb.WriteString("\n")
	for i, p := range predicates {
		rendered := turtleTerm(ns, p)
		if p == rdfType {
			rendered = "a"
		}

		objects := make([]string, 0, len(objectsByPredicate[p]))
		for o := range objectsByPredicate[p] {
			objects = append(objects, o)
		}
		sort.Strings(objects)

		sb.WriteString(fmt.Sprintf("    %s %s", rendered, strings.Join(objects, ", ")))
		if i < len(predicates)-1 {
			sb.WriteString(" ;\n")
		} else {
			sb.WriteString(" .\n")
		}
	}
}

// safeLocalRe matches local names that are safe to emit as part of a
// prefixed name; anything else falls back to an angle-bracket IRI.
var safeLocalRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// turtleTerm renders a term in Turtle syntax.
func turtleTerm(ns *graph.Namespaces, t graph.Term) string {
	switch v := t.(type) {
	case graph.IRI:
		if q, ok := ns.QName(v); ok {
			if _, local, _ := strings.Cut(q, ":"); safeLocalRe.MatchString(local) {
				return q
			}
		}
		return "<" + string(v) + ">"
	case graph.BlankNode:
		return "_:" + string(v)
	case graph.Literal:
		s := `"` + escapeLiteral(v.Value) + `"`
		if v.Lang != "" {
			return s + "@" + v.Lang
		}
		if v.Datatype != "" && string(v.Datatype) != vocabulary.XSDString {
			return s + "^^" + turtleTerm(ns, v.Datatype)
		}
		return s
	default:
		return `"` + escapeLiteral(t.String()) + `"`
	}
}

// escapeLiteral escapes special characters for a quoted Turtle literal.
func escapeLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\r`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	return s
}
