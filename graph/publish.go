// Package graph publishes annotation records to the knowledge graph.
package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/c360studio/semstreams/message"
	"github.com/c360studio/semstreams/natsclient"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/c360studio/oagraph/rdf"
	"github.com/c360studio/oagraph/vocabulary/oa"
)

// Subject for graph ingestion.
const GraphIngestSubject = "graph.ingest.entity"

// TripleSource is the Source recorded on every published triple.
const TripleSource = "oagraph.store"

// GraphStream is the JetStream stream that captures GraphIngestSubject.
const GraphStream = "GRAPH"

// GraphStreamConfig returns the stream configuration used when the graph
// stream does not exist yet.
func GraphStreamConfig() jetstream.StreamConfig {
	return jetstream.StreamConfig{
		Name:     GraphStream,
		Subjects: []string{GraphIngestSubject},
		MaxAge:   24 * time.Hour,
		Storage:  jetstream.MemoryStorage,
		Replicas: 1,
	}
}

// EnsureGraphStream creates the graph stream if no stream by that name
// exists. An existing stream is used as is.
func EnsureGraphStream(ctx context.Context, nc *natsclient.Client) error {
	if nc == nil {
		return nil
	}
	if _, err := nc.EnsureStream(ctx, GraphStreamConfig()); err != nil {
		return fmt.Errorf("ensure %s stream: %w", GraphStream, err)
	}
	return nil
}

// PublishAnnotation publishes an annotation's statements to the knowledge
// graph under the entity ID derived from recordID.
func PublishAnnotation(ctx context.Context, nc *natsclient.Client, recordID string, store rdf.Store) error {
	if nc == nil {
		return nil // Skip publishing if no NATS client (graceful degradation)
	}

	payload, err := NewAnnotationPayload(recordID, store, time.Now())
	if err != nil {
		return err
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal annotation entity: %w", err)
	}

	if err := nc.PublishToStream(ctx, GraphIngestSubject, data); err != nil {
		return fmt.Errorf("publish annotation entity: %w", err)
	}

	return nil
}

// NewAnnotationPayload builds the ingestion payload for a record.
func NewAnnotationPayload(recordID string, store rdf.Store, now time.Time) (*AnnotationPayload, error) {
	entityID := AnnotationEntityID(recordID)
	payload := &AnnotationPayload{
		EntityID_:  entityID,
		TripleData: Triples(entityID, store, now),
		UpdatedAt:  now,
	}
	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("build annotation entity: %w", err)
	}
	return payload, nil
}

// Triples converts the statements of store to graph triples. The annotation
// root becomes entityID; other blank nodes become child entities of it.
// Predicates use the registered dotted names where one exists and the full
// IRI otherwise.
func Triples(entityID string, store rdf.Store, now time.Time) []message.Triple {
	var root rdf.Term
	if annos := store.Query(rdf.Pattern{Predicate: oa.Type, Object: oa.Annotation}); len(annos) > 0 {
		root = annos[0].Subject
	}

	node := func(t rdf.Term) string {
		switch v := t.(type) {
		case rdf.BlankNode:
			if t == root {
				return entityID
			}
			return NodeEntityID(entityID, v.ID)
		case rdf.IRI:
			if t == root {
				return entityID
			}
			return string(v)
		default:
			return t.String()
		}
	}

	stmts := store.Query(rdf.Pattern{})
	triples := make([]message.Triple, 0, len(stmts))
	for _, s := range stmts {
		predicate, ok := oa.PredicateForIRI(s.Predicate)
		if !ok {
			predicate = string(s.Predicate)
		}

		var object any
		if lit, ok := s.Object.(rdf.Literal); ok {
			object = lit.Lexical
		} else {
			object = node(s.Object)
		}

		triples = append(triples, message.Triple{
			Subject:    node(s.Subject),
			Predicate:  predicate,
			Object:     object,
			Source:     TripleSource,
			Timestamp:  now,
			Confidence: 1.0,
		})
	}
	return triples
}

// AnnotationEntityID generates a consistent entity ID for an annotation record.
// Format: oagraph.local.annotation.annotation.<id>
func AnnotationEntityID(recordID string) string {
	return fmt.Sprintf("oagraph.local.annotation.annotation.%s", recordID)
}

// NodeEntityID generates the entity ID of a blank node inside an annotation.
// Format: <annotation entity>.<node id>
func NodeEntityID(entityID, nodeID string) string {
	return fmt.Sprintf("%s.%s", entityID, nodeID)
}
