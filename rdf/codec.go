package rdf

import (
	"encoding/json"
	"fmt"
)

// wireTerm is the JSON form of a Term used in stored records.
type wireTerm struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Datatype string `json:"datatype,omitempty"`
	Language string `json:"lang,omitempty"`
}

type wireStatement struct {
	Subject   wireTerm `json:"s"`
	Predicate string   `json:"p"`
	Object    wireTerm `json:"o"`
}

func toWire(t Term) (wireTerm, error) {
	switch v := t.(type) {
	case IRI:
		return wireTerm{Type: KindIRI.String(), Value: string(v)}, nil
	case BlankNode:
		return wireTerm{Type: KindBlank.String(), Value: v.ID}, nil
	case Literal:
		return wireTerm{
			Type:     KindLiteral.String(),
			Value:    v.Lexical,
			Datatype: string(v.Datatype),
			Language: v.Language,
		}, nil
	default:
		return wireTerm{}, fmt.Errorf("unsupported term %T", t)
	}
}

func fromWire(w wireTerm) (Term, error) {
	switch w.Type {
	case "iri":
		return IRI(w.Value), nil
	case "blank":
		if w.Value == "" {
			return nil, fmt.Errorf("blank node without id")
		}
		return BlankNode{ID: w.Value}, nil
	case "literal":
		return Literal{Lexical: w.Value, Datatype: IRI(w.Datatype), Language: w.Language}, nil
	default:
		return nil, fmt.Errorf("unknown term type %q", w.Type)
	}
}

// MarshalJSON encodes the statement with tagged term objects.
func (s Statement) MarshalJSON() ([]byte, error) {
	subj, err := toWire(s.Subject)
	if err != nil {
		return nil, fmt.Errorf("encode subject: %w", err)
	}
	obj, err := toWire(s.Object)
	if err != nil {
		return nil, fmt.Errorf("encode object: %w", err)
	}
	return json.Marshal(wireStatement{Subject: subj, Predicate: string(s.Predicate), Object: obj})
}

// UnmarshalJSON decodes a statement written by MarshalJSON.
func (s *Statement) UnmarshalJSON(data []byte) error {
	var w wireStatement
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	subj, err := fromWire(w.Subject)
	if err != nil {
		return fmt.Errorf("decode subject: %w", err)
	}
	if !IsNode(subj) {
		return fmt.Errorf("decode subject: %s cannot be a subject", subj.Kind())
	}
	obj, err := fromWire(w.Object)
	if err != nil {
		return fmt.Errorf("decode object: %w", err)
	}
	*s = Statement{Subject: subj, Predicate: IRI(w.Predicate), Object: obj}
	return nil
}
