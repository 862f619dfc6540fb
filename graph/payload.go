package graph

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/c360studio/semstreams/component"
	"github.com/c360studio/semstreams/message"
)

func init() {
	err := component.RegisterPayload(&component.PayloadRegistration{
		Domain:      "oa",
		Category:    "annotation",
		Version:     "v1",
		Description: "Open Annotation base record for graph ingestion",
		Factory:     func() any { return &AnnotationPayload{} },
	})
	if err != nil {
		panic("failed to register AnnotationPayload: " + err.Error())
	}
}

// AnnotationType is the message type for annotation payloads.
var AnnotationType = message.Type{Domain: "oa", Category: "annotation", Version: "v1"}

// AnnotationPayload implements message.Payload and graph.Graphable for
// annotation ingestion.
type AnnotationPayload struct {
	EntityID_  string           `json:"id"`
	TripleData []message.Triple `json:"triples"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

func (a *AnnotationPayload) EntityID() string          { return a.EntityID_ }
func (a *AnnotationPayload) Triples() []message.Triple { return a.TripleData }
func (a *AnnotationPayload) Schema() message.Type      { return AnnotationType }

func (a *AnnotationPayload) Validate() error {
	if a.EntityID_ == "" {
		return errors.New("annotation entity ID is required")
	}
	if len(a.TripleData) == 0 {
		return errors.New("annotation has no triples")
	}
	return nil
}

func (a *AnnotationPayload) MarshalJSON() ([]byte, error) {
	type Alias AnnotationPayload
	return json.Marshal((*Alias)(a))
}

func (a *AnnotationPayload) UnmarshalJSON(data []byte) error {
	type Alias AnnotationPayload
	return json.Unmarshal(data, (*Alias)(a))
}
