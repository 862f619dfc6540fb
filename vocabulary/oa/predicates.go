package oa

import (
	"github.com/c360studio/oagraph/rdf"
	"github.com/c360studio/semstreams/vocabulary"
)

// Annotation predicates in dotted notation for knowledge graph ingestion.
const (
	// AnnotationType is the rdf:type of a resource in an annotation graph.
	AnnotationType = "oa.resource.type"

	// AnnotationBody links an annotation to a body resource.
	AnnotationBody = "oa.annotation.body"

	// AnnotationTarget links an annotation to a target resource.
	AnnotationTarget = "oa.annotation.target"

	// AnnotationMotivation is the motivation IRI.
	AnnotationMotivation = "oa.annotation.motivation"

	// AnnotationCreatedAt is the annotatedAt timestamp.
	AnnotationCreatedAt = "oa.annotation.annotated_at"

	// AnnotationCreator links to the annotating agent.
	AnnotationCreator = "oa.annotation.annotated_by"

	// AnnotationSerializedAt is the serializedAt timestamp.
	AnnotationSerializedAt = "oa.annotation.serialized_at"

	// AnnotationSerializer links to the serializing agent.
	AnnotationSerializer = "oa.annotation.serialized_by"

	// BodyChars is the text of a ContentAsText body.
	BodyChars = "oa.body.chars"

	// TargetSelector links a specific resource to its selector.
	TargetSelector = "oa.target.selector"

	// TargetSource links a specific resource to its source.
	TargetSource = "oa.target.source"
)

// predicateIRIs maps dotted predicates to their standard IRIs.
var predicateIRIs = map[string]rdf.IRI{
	AnnotationType:         Type,
	AnnotationBody:         HasBody,
	AnnotationTarget:       HasTarget,
	AnnotationMotivation:   MotivatedBy,
	AnnotationCreatedAt:    AnnotatedAt,
	AnnotationCreator:      AnnotatedBy,
	AnnotationSerializedAt: SerializedAt,
	AnnotationSerializer:   SerializedBy,
	BodyChars:              Chars,
	TargetSelector:         HasSelector,
	TargetSource:           HasSource,
}

var iriPredicates = func() map[rdf.IRI]string {
	m := make(map[rdf.IRI]string, len(predicateIRIs))
	for p, iri := range predicateIRIs {
		m[iri] = p
	}
	return m
}()

// PredicateForIRI returns the dotted predicate registered for iri.
func PredicateForIRI(iri rdf.IRI) (string, bool) {
	p, ok := iriPredicates[iri]
	return p, ok
}

// IRIForPredicate returns the standard IRI of a dotted predicate.
func IRIForPredicate(predicate string) (rdf.IRI, bool) {
	iri, ok := predicateIRIs[predicate]
	return iri, ok
}

func init() {
	vocabulary.Register(AnnotationType,
		vocabulary.WithDescription("Class of a resource within an annotation graph"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(string(Type)))

	vocabulary.Register(AnnotationBody,
		vocabulary.WithDescription("Body of an annotation"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(string(HasBody)))

	vocabulary.Register(AnnotationTarget,
		vocabulary.WithDescription("Target of an annotation"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(string(HasTarget)))

	vocabulary.Register(AnnotationMotivation,
		vocabulary.WithDescription("Reason the annotation was created"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(string(MotivatedBy)))

	vocabulary.Register(AnnotationCreatedAt,
		vocabulary.WithDescription("Time the annotation was created (xsd:dateTime)"),
		vocabulary.WithDataType("datetime"),
		vocabulary.WithIRI(string(AnnotatedAt)))

	vocabulary.Register(AnnotationCreator,
		vocabulary.WithDescription("Agent responsible for the annotation"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(string(AnnotatedBy)))

	vocabulary.Register(AnnotationSerializedAt,
		vocabulary.WithDescription("Time the annotation was serialized (xsd:dateTime)"),
		vocabulary.WithDataType("datetime"),
		vocabulary.WithIRI(string(SerializedAt)))

	vocabulary.Register(AnnotationSerializer,
		vocabulary.WithDescription("Software agent that serialized the annotation"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(string(SerializedBy)))

	vocabulary.Register(BodyChars,
		vocabulary.WithDescription("Character content of a textual body"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(string(Chars)))

	vocabulary.Register(TargetSelector,
		vocabulary.WithDescription("Selector identifying a segment of a target source"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(string(HasSelector)))

	vocabulary.Register(TargetSource,
		vocabulary.WithDescription("Source resource of a specific target"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(string(HasSource)))
}
