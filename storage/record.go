package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/c360studio/oagraph/rdf"
)

// RecordKind prefixes every record identifier.
const RecordKind = "annotation"

// RecordID identifies a stored annotation record.
type RecordID struct {
	ID string
}

// String returns the string representation of the record ID.
func (r RecordID) String() string {
	return fmt.Sprintf("%s:%s", RecordKind, r.ID)
}

// Key returns the KV key for the record.
func (r RecordID) Key() string {
	return r.ID
}

// ParseRecordID parses "annotation:<id>". A bare id is also accepted.
func ParseRecordID(s string) (RecordID, error) {
	kind, id, found := strings.Cut(s, ":")
	if !found {
		id = kind
	} else if kind != RecordKind {
		return RecordID{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidID, kind)
	}
	if id == "" || strings.ContainsAny(id, " .*>") {
		return RecordID{}, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return RecordID{ID: id}, nil
}

// NewRecordID generates a new unique record ID.
func NewRecordID() RecordID {
	return RecordID{ID: uuid.New().String()}
}

// Record is a persisted annotation: its statements plus bookkeeping.
type Record struct {
	ID         string          `json:"id"`
	Statements []rdf.Statement `json:"statements"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// NewRecord snapshots the statements of store into a record with no ID.
func NewRecord(store rdf.Store) *Record {
	stmts := store.Query(rdf.Pattern{})
	if stmts == nil {
		stmts = []rdf.Statement{}
	}
	return &Record{Statements: stmts}
}

// Graph returns the record's statements as an in-memory graph.
func (r *Record) Graph() *rdf.Graph {
	return rdf.NewGraph(r.Statements...)
}

// EncodeRecord marshals a record to its stored JSON form.
func EncodeRecord(r *Record) ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	return data, nil
}

// DecodeRecord unmarshals a record from its stored JSON form.
func DecodeRecord(data []byte) (*Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("unmarshal record: %w", err)
	}
	if r.Statements == nil {
		r.Statements = []rdf.Statement{}
	}
	return &r, nil
}
