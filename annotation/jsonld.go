package annotation

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/c360studio/oagraph/export"
	"github.com/c360studio/oagraph/vocabulary/oa"
)

// contextPath addresses the top-level "@context" key. The leading '@' is
// escaped so it is not read as a gjson modifier.
const contextPath = `\@context`

// JSONLD serializes the store as JSON-LD whose "@context" is the given
// context document identifier instead of an inline prefix map.
func (g *Graph) JSONLD(contextURL string) (string, error) {
	inline, err := export.JSONLD(g.store)
	if err != nil {
		return "", fmt.Errorf("serialize annotation: %w", err)
	}
	out, err := ReplaceContext(inline, contextURL)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// JSONLDOA serializes the store against the dated Open Annotation context.
func (g *Graph) JSONLDOA() (string, error) {
	return g.JSONLD(oa.DatedContextURL)
}

// JSONLDIIIF serializes the store against the IIIF Presentation context.
func (g *Graph) JSONLDIIIF() (string, error) {
	return g.JSONLD(oa.IIIFContextURL)
}

// ReplaceContext sets the top-level "@context" of a JSON-LD document to
// contextURL, leaving the rest of the document byte-for-byte unchanged.
func ReplaceContext(doc []byte, contextURL string) ([]byte, error) {
	if !gjson.ValidBytes(doc) {
		return nil, errors.New("replace context: document is not valid JSON")
	}
	root := gjson.ParseBytes(doc)
	if !root.IsObject() {
		return nil, errors.New("replace context: document is not a JSON object")
	}
	if !root.Get(contextPath).Exists() {
		return nil, errors.New("replace context: document has no @context")
	}
	out, err := sjson.SetBytes(doc, contextPath, contextURL)
	if err != nil {
		return nil, fmt.Errorf("replace context: %w", err)
	}
	return out, nil
}
