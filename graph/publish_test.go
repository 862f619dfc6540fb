package graph

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/oagraph/rdf"
	"github.com/c360studio/oagraph/vocabulary/oa"
)

func blankAnnotation() *rdf.Graph {
	root := rdf.BlankNode{ID: "root"}
	body := rdf.BlankNode{ID: "body"}
	return rdf.NewGraph(
		rdf.NewStatement(root, oa.Type, oa.Annotation),
		rdf.NewStatement(root, oa.MotivatedBy, oa.Commenting),
		rdf.NewStatement(root, oa.HasBody, body),
		rdf.NewStatement(body, oa.Chars, rdf.NewLiteral("I love this!")),
		rdf.NewStatement(root, oa.HasTarget, rdf.IRI("http://example.org/page")),
		rdf.NewStatement(root, rdf.IRI("http://example.org/custom"), rdf.NewLiteral("x")),
	)
}

func TestTriples(t *testing.T) {
	now := time.Date(2014, 3, 1, 12, 0, 0, 0, time.UTC)
	entityID := AnnotationEntityID("abc")

	triples := Triples(entityID, blankAnnotation(), now)
	require.Len(t, triples, 6)

	assert.Equal(t, entityID, triples[0].Subject)
	assert.Equal(t, oa.AnnotationType, triples[0].Predicate)
	assert.Equal(t, string(oa.Annotation), triples[0].Object)

	assert.Equal(t, oa.AnnotationMotivation, triples[1].Predicate)
	assert.Equal(t, string(oa.Commenting), triples[1].Object)

	bodyID := NodeEntityID(entityID, "body")
	assert.Equal(t, oa.AnnotationBody, triples[2].Predicate)
	assert.Equal(t, bodyID, triples[2].Object)

	assert.Equal(t, bodyID, triples[3].Subject)
	assert.Equal(t, oa.BodyChars, triples[3].Predicate)
	assert.Equal(t, "I love this!", triples[3].Object)

	assert.Equal(t, oa.AnnotationTarget, triples[4].Predicate)
	assert.Equal(t, "http://example.org/page", triples[4].Object)

	assert.Equal(t, "http://example.org/custom", triples[5].Predicate)

	for _, tr := range triples {
		assert.Equal(t, TripleSource, tr.Source)
		assert.Equal(t, now, tr.Timestamp)
		assert.InDelta(t, 1.0, tr.Confidence, 1e-9)
	}
}

func TestTriples_IRIRoot(t *testing.T) {
	anno := rdf.IRI("http://example.org/anno")
	store := rdf.NewGraph(rdf.NewStatement(anno, oa.Type, oa.Annotation))

	triples := Triples("entity", store, time.Now())
	require.Len(t, triples, 1)
	assert.Equal(t, "entity", triples[0].Subject)
}

func TestNewAnnotationPayload(t *testing.T) {
	now := time.Now()
	payload, err := NewAnnotationPayload("abc", blankAnnotation(), now)
	require.NoError(t, err)
	assert.Equal(t, "oagraph.local.annotation.annotation.abc", payload.EntityID())
	assert.Equal(t, AnnotationType, payload.Schema())
	assert.Len(t, payload.Triples(), 6)

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded AnnotationPayload
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, payload.EntityID(), decoded.EntityID())
	assert.Len(t, decoded.Triples(), 6)

	_, err = NewAnnotationPayload("empty", rdf.NewGraph(), now)
	assert.Error(t, err)
}

func TestAnnotationPayload_Validate(t *testing.T) {
	assert.Error(t, (&AnnotationPayload{}).Validate())
	assert.Error(t, (&AnnotationPayload{EntityID_: "x"}).Validate())
}

func TestPublishAnnotation_NilClient(t *testing.T) {
	assert.NoError(t, PublishAnnotation(context.Background(), nil, "abc", blankAnnotation()))
}

func TestGraphStreamConfig(t *testing.T) {
	cfg := GraphStreamConfig()
	assert.Equal(t, GraphStream, cfg.Name)
	assert.Equal(t, []string{GraphIngestSubject}, cfg.Subjects)
	assert.Equal(t, 24*time.Hour, cfg.MaxAge)
	assert.Equal(t, 1, cfg.Replicas)
}
