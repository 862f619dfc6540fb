// Package oa provides the Open Annotation vocabulary used by annotation graphs.
//
// It holds three kinds of constants:
//   - IRIs: namespaces, classes and properties from the OA, Content-in-RDF,
//     RDF and DCMI Type vocabularies, typed as rdf.IRI so they can be used
//     directly in statements and patterns
//   - Context documents: identifiers of the external JSON-LD contexts an
//     annotation can be serialized against
//   - Predicates: dotted names (domain.category.property) registered with the
//     semstreams vocabulary so annotation triples can be ingested into the
//     knowledge graph and mapped back to their standard IRIs
//
// # Context Documents
//
// The context identifiers are opaque. Nothing in this module fetches them;
// they are written verbatim as the "@context" value of JSON-LD output.
//
//	AnnotationContextURL  http://www.w3.org/ns/oa.jsonld
//	DatedContextURL       http://www.w3.org/ns/oa-context-20130208.json
//	IIIFContextURL        http://iiif.io/api/presentation/2/context.json
package oa
