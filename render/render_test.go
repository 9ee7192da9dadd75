package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontocat/catalog"
)

const testTemplate = `<h1>{{ ontology.Title|default:base_name }}</h1>
<p>{{ classes|length }} classes</p>
{% for c in classes %}<li>{{ c.QName }}</li>{% endfor %}
{% for p in properties %}<li>{{ p.Label }} ({{ p.Kind }})</li>{% endfor %}
`

func writeTemplate(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalogue.html.j2")
	require.NoError(t, os.WriteFile(path, []byte(testTemplate), 0o644))
	return path
}

func TestHTML(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "deployment", "zoo.html")

	data := Data{
		Ontology: catalog.Header{Title: "Zoo", IRI: "http://example.org/zoo"},
		Classes: []catalog.Class{
			{QName: "ex:Animal", Label: "Animal"},
			{QName: "ex:Plant", Label: "Plant"},
		},
		Properties: []catalog.Property{
			{QName: "ex:hasParent", Label: "has parent", Kind: catalog.KindObjectProperty},
		},
		BaseName:   "zoo",
		SourcePath: "zoo.ttl",
	}

	require.NoError(t, HTML(writeTemplate(t), data, outPath))

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	html := string(out)
	assert.Contains(t, html, "<h1>Zoo</h1>")
	assert.Contains(t, html, "2 classes")
	assert.Contains(t, html, "<li>ex:Animal</li>")
	assert.Contains(t, html, "has parent (ObjectProperty)")
}

func TestHTMLTitleFallsBackToBaseName(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "zoo.html")

	data := Data{BaseName: "zoo"}
	require.NoError(t, HTML(writeTemplate(t), data, outPath))

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<h1>zoo</h1>")
}

func TestHTMLMissingTemplate(t *testing.T) {
	err := HTML(filepath.Join(t.TempDir(), "missing.j2"), Data{}, filepath.Join(t.TempDir(), "out.html"))
	require.Error(t, err)

	var tplErr *TemplateError
	require.ErrorAs(t, err, &tplErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestHTMLBrokenTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.j2")
	require.NoError(t, os.WriteFile(path, []byte("{% for %}"), 0o644))

	err := HTML(path, Data{}, filepath.Join(t.TempDir(), "out.html"))
	var tplErr *TemplateError
	require.ErrorAs(t, err, &tplErr)
}
