package export_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/oagraph/export"
	"github.com/c360studio/oagraph/rdf"
	"github.com/c360studio/oagraph/vocabulary/oa"
)

const anno = rdf.IRI("http://my.identifiers.com/oa_comment")

func commentGraph() *rdf.Graph {
	body := rdf.BlankNode{ID: "body"}
	return rdf.NewGraph(
		rdf.NewStatement(anno, oa.Type, oa.Annotation),
		rdf.NewStatement(anno, oa.HasBody, body),
		rdf.NewStatement(body, oa.Type, oa.ContentAsText),
		rdf.NewStatement(body, oa.Type, oa.DCTypesText),
		rdf.NewStatement(body, oa.Chars, rdf.NewLiteral("I love this!")),
		rdf.NewStatement(anno, oa.HasTarget, rdf.IRI("http://purl.stanford.edu/kq131cs7229")),
		rdf.NewStatement(anno, oa.MotivatedBy, oa.Commenting),
		rdf.NewStatement(anno, oa.AnnotatedAt,
			rdf.NewTypedLiteral("2014-09-03T17:16:13Z", rdf.IRI(oa.XSDNamespace+"dateTime"))),
	)
}

func TestExportTurtle(t *testing.T) {
	output, err := export.Serialize(commentGraph(), export.FormatTurtle)
	require.NoError(t, err)

	assert.Contains(t, output, "@prefix oa: <http://www.w3.org/ns/oa#> .")
	assert.Contains(t, output, "<http://my.identifiers.com/oa_comment>\n")
	assert.Contains(t, output, "    a oa:Annotation ;")
	assert.Contains(t, output, "    oa:hasBody _:body ;")
	assert.Contains(t, output, `    cnt:chars "I love this!" .`)
	assert.Contains(t, output, `"2014-09-03T17:16:13Z"^^xsd:dateTime .`)
	assert.Contains(t, output, "oa:hasTarget <http://purl.stanford.edu/kq131cs7229>")
}

func TestExportNTriples(t *testing.T) {
	g := commentGraph()
	output, err := export.Serialize(g, export.FormatNTriples)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	assert.Len(t, lines, g.Size())
	for _, line := range lines {
		assert.True(t, strings.HasSuffix(line, " ."), "N-Triple line should end with ' .': %s", line)
	}
	assert.Contains(t, output,
		`_:body <http://www.w3.org/2011/content#chars> "I love this!" .`)
}

func TestExportJSONLD(t *testing.T) {
	output, err := export.Serialize(commentGraph(), export.FormatJSONLD)
	require.NoError(t, err)

	var doc struct {
		Context map[string]string `json:"@context"`
		Graph   []map[string]any  `json:"@graph"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &doc))

	assert.Equal(t, oa.Namespace, doc.Context["oa"])
	require.Len(t, doc.Graph, 2)

	root := doc.Graph[0]
	assert.Equal(t, string(anno), root["@id"])
	assert.Equal(t, []any{"oa:Annotation"}, root["@type"])
	assert.Equal(t, map[string]any{"@id": "_:body"}, root["oa:hasBody"])
	assert.Equal(t, map[string]any{"@id": string(oa.Commenting)}, root["oa:motivatedBy"])
	assert.Equal(t, map[string]any{"@value": "2014-09-03T17:16:13Z", "@type": "xsd:dateTime"}, root["oa:annotatedAt"])

	body := doc.Graph[1]
	assert.Equal(t, "_:body", body["@id"])
	assert.Equal(t, []any{"cnt:ContentAsText", "dctypes:Text"}, body["@type"])
	assert.Equal(t, "I love this!", body["cnt:chars"])
}

func TestExportJSONLD_MultipleValues(t *testing.T) {
	g := rdf.NewGraph(
		rdf.NewStatement(anno, oa.HasTarget, rdf.IRI("http://target.one.org")),
		rdf.NewStatement(anno, oa.HasTarget, rdf.IRI("http://target.two.org")),
		rdf.NewStatement(anno, rdf.IRI("http://example.org/label"), rdf.NewLangLiteral("chat", "fr")),
	)
	data, err := export.JSONLD(g)
	require.NoError(t, err)

	var doc struct {
		Graph []map[string]any `json:"@graph"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Graph, 1)
	assert.Equal(t, []any{
		map[string]any{"@id": "http://target.one.org"},
		map[string]any{"@id": "http://target.two.org"},
	}, doc.Graph[0]["oa:hasTarget"])
	assert.Equal(t, map[string]any{"@value": "chat", "@language": "fr"},
		doc.Graph[0]["http://example.org/label"])
}

func TestExportEmptyStore(t *testing.T) {
	output, err := export.Serialize(rdf.NewGraph(), export.FormatJSONLD)
	require.NoError(t, err)
	assert.Contains(t, output, `"@graph": []`)
}

func TestWithPrefix(t *testing.T) {
	e := export.NewRDFExporter(export.WithPrefix("ex", "http://example.org/"))
	g := rdf.NewGraph(rdf.NewStatement(rdf.IRI("http://example.org/a"), rdf.IRI("http://example.org/p"), rdf.NewLiteral("x")))

	output, err := e.Export(g, export.FormatTurtle)
	require.NoError(t, err)
	assert.Contains(t, output, "@prefix ex: <http://example.org/> .")
	assert.Contains(t, output, `ex:a`)
	assert.Contains(t, output, `    ex:p "x" .`)
	assert.Equal(t, "http://example.org/", e.Prefixes()["ex"])
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := export.Serialize(rdf.NewGraph(), "unknown")
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    export.Format
		wantErr bool
	}{
		{"turtle", export.FormatTurtle, false},
		{"NTriples", export.FormatNTriples, false},
		{" jsonld ", export.FormatJSONLD, false},
		{"rdfxml", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := export.ParseFormat(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGetFormatInfo(t *testing.T) {
	info, ok := export.GetFormatInfo(export.FormatJSONLD)
	require.True(t, ok)
	assert.Equal(t, "application/ld+json", info.MIMEType)
	assert.Equal(t, ".jsonld", info.Extension)

	_, ok = export.GetFormatInfo("bogus")
	assert.False(t, ok)
}
