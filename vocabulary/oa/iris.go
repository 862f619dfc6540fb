package oa

import "github.com/c360studio/oagraph/rdf"

// Namespace IRIs.
const (
	// Namespace is the Open Annotation core namespace.
	Namespace = "http://www.w3.org/ns/oa#"

	// CNTNamespace is the Representing Content in RDF namespace.
	CNTNamespace = "http://www.w3.org/2011/content#"

	// RDFNamespace is the RDF syntax namespace.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// DCTypesNamespace is the DCMI Type vocabulary namespace.
	DCTypesNamespace = "http://purl.org/dc/dcmitype/"

	// XSDNamespace is the XML Schema datatypes namespace.
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"
)

// Context document identifiers.
const (
	// AnnotationContextURL is the current Open Annotation JSON-LD context.
	AnnotationContextURL = "http://www.w3.org/ns/oa.jsonld"

	// DatedContextURL is the 2013-02-08 Open Annotation context. Base records
	// are serialized against this context by default.
	DatedContextURL = "http://www.w3.org/ns/oa-context-20130208.json"

	// IIIFContextURL is the IIIF Presentation API 2 context.
	IIIFContextURL = "http://iiif.io/api/presentation/2/context.json"
)

// RDF terms.
const (
	// Type is rdf:type.
	Type rdf.IRI = RDFNamespace + "type"
)

// Class IRIs.
const (
	// Annotation is oa:Annotation, the type of an annotation root.
	Annotation rdf.IRI = Namespace + "Annotation"

	// SpecificResource is oa:SpecificResource.
	SpecificResource rdf.IRI = Namespace + "SpecificResource"

	// FragmentSelector is oa:FragmentSelector.
	FragmentSelector rdf.IRI = Namespace + "FragmentSelector"

	// SemanticTag is oa:SemanticTag.
	SemanticTag rdf.IRI = Namespace + "SemanticTag"

	// ContentAsText is cnt:ContentAsText, the type of a textual body.
	ContentAsText rdf.IRI = CNTNamespace + "ContentAsText"

	// DCTypesText is dctypes:Text.
	DCTypesText rdf.IRI = DCTypesNamespace + "Text"
)

// Property IRIs.
const (
	// HasBody links an annotation to its body.
	HasBody rdf.IRI = Namespace + "hasBody"

	// HasTarget links an annotation to its target.
	HasTarget rdf.IRI = Namespace + "hasTarget"

	// HasSelector links a specific resource to its selector.
	HasSelector rdf.IRI = Namespace + "hasSelector"

	// HasSource links a specific resource to its source.
	HasSource rdf.IRI = Namespace + "hasSource"

	// MotivatedBy links an annotation to its motivation.
	MotivatedBy rdf.IRI = Namespace + "motivatedBy"

	// AnnotatedAt is the annotation creation time.
	AnnotatedAt rdf.IRI = Namespace + "annotatedAt"

	// AnnotatedBy links an annotation to its creator.
	AnnotatedBy rdf.IRI = Namespace + "annotatedBy"

	// SerializedAt is the serialization time.
	SerializedAt rdf.IRI = Namespace + "serializedAt"

	// SerializedBy links an annotation to the serializing agent.
	SerializedBy rdf.IRI = Namespace + "serializedBy"

	// Chars is cnt:chars, the text of a ContentAsText body.
	Chars rdf.IRI = CNTNamespace + "chars"
)

// Motivation IRIs.
const (
	Bookmarking  rdf.IRI = Namespace + "bookmarking"
	Commenting   rdf.IRI = Namespace + "commenting"
	Describing   rdf.IRI = Namespace + "describing"
	Highlighting rdf.IRI = Namespace + "highlighting"
	Moderating   rdf.IRI = Namespace + "moderating"
	Tagging      rdf.IRI = Namespace + "tagging"
)

// Prefixes returns the namespace prefixes used when serializing annotations
// with an inline context.
func Prefixes() map[string]string {
	return map[string]string{
		"oa":      Namespace,
		"cnt":     CNTNamespace,
		"rdf":     RDFNamespace,
		"dctypes": DCTypesNamespace,
		"xsd":     XSDNamespace,
	}
}
