package graph

import "testing"

const (
	rdfType = IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type")
	owlCls  = IRI("http://www.w3.org/2002/07/owl#Class")
	label   = IRI("http://www.w3.org/2000/01/rdf-schema#label")
	animal  = IRI("http://example.org/zoo#Animal")
	plant   = IRI("http://example.org/zoo#Plant")
)

func testGraph() *Graph {
	g := New()
	g.Add(Triple{Subject: animal, Predicate: rdfType, Object: owlCls})
	g.Add(Triple{Subject: animal, Predicate: label, Object: Literal{Value: "Animal", Lang: "en"}})
	g.Add(Triple{Subject: animal, Predicate: label, Object: Literal{Value: "Tier", Lang: "de"}})
	g.Add(Triple{Subject: plant, Predicate: rdfType, Object: owlCls})
	return g
}

func TestObjects(t *testing.T) {
	g := testGraph()

	objects := g.Objects(animal, label)
	if len(objects) != 2 {
		t.Fatalf("expected 2 label objects, got %d", len(objects))
	}
	if objects[0].String() != "Animal" {
		t.Errorf("expected insertion order, got %q first", objects[0].String())
	}

	if got := g.Objects(plant, label); len(got) != 0 {
		t.Errorf("expected no labels for plant, got %d", len(got))
	}
}

func TestLiterals(t *testing.T) {
	g := testGraph()

	literals := g.Literals(animal, label)
	if len(literals) != 2 {
		t.Fatalf("expected 2 literals, got %d", len(literals))
	}
	if literals[1].Lang != "de" {
		t.Errorf("expected de literal second, got %q", literals[1].Lang)
	}

	// Objects that are not literals are skipped.
	if got := g.Literals(animal, rdfType); len(got) != 0 {
		t.Errorf("expected no literal types, got %d", len(got))
	}
}

func TestSubjects(t *testing.T) {
	g := testGraph()
	g.Add(Triple{Subject: animal, Predicate: rdfType, Object: owlCls}) // duplicate

	subjects := g.Subjects(rdfType, owlCls)
	if len(subjects) != 2 {
		t.Fatalf("expected 2 distinct class subjects, got %d", len(subjects))
	}
	if subjects[0].String() != string(animal) || subjects[1].String() != string(plant) {
		t.Errorf("expected first-occurrence order, got %v", subjects)
	}
}

func TestHas(t *testing.T) {
	g := testGraph()

	if !g.Has(animal, rdfType, owlCls) {
		t.Error("expected Has to find the type triple")
	}
	if !g.Has(animal, label, Literal{Value: "Animal", Lang: "en"}) {
		t.Error("expected Has to match language-tagged literals")
	}
	if g.Has(animal, label, Literal{Value: "Animal"}) {
		t.Error("literals with different language tags are different terms")
	}
	if g.Has(plant, label, Literal{Value: "Animal", Lang: "en"}) {
		t.Error("expected Has to miss for the wrong subject")
	}
}

func TestUsedBindings(t *testing.T) {
	g := testGraph()
	g.Namespaces().Bind("zoo", "http://example.org/zoo#")
	g.Namespaces().Bind("owl", "http://www.w3.org/2002/07/owl#")
	g.Namespaces().Bind("unused", "http://unused.example.org/ns#")

	used := g.UsedBindings()
	prefixes := make(map[string]bool)
	for _, b := range used {
		prefixes[b.Prefix] = true
	}

	if !prefixes["zoo"] || !prefixes["owl"] {
		t.Errorf("expected zoo and owl to be used, got %v", used)
	}
	if prefixes["unused"] {
		t.Error("unused prefix should not be reported")
	}
}
