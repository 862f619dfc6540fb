// Package storage persists annotation records in a NATS KV bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/c360studio/oagraph/rdf"
)

// DefaultBucket is the KV bucket holding annotation records.
const DefaultBucket = "OA_ANNOTATIONS"

// Store provides annotation record storage backed by NATS KV.
type Store struct {
	kv     jetstream.KeyValue
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*options)

type options struct {
	bucket  string
	history uint8
	logger  *slog.Logger
}

// WithBucket overrides the KV bucket name.
func WithBucket(name string) Option {
	return func(o *options) {
		if name != "" {
			o.bucket = name
		}
	}
}

// WithHistory sets how many revisions per key the bucket keeps when it is
// created.
func WithHistory(n uint8) Option {
	return func(o *options) {
		if n > 0 {
			o.history = n
		}
	}
}

// WithLogger sets the store's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewStore creates a new Store with the given JetStream context.
// It creates the KV bucket if it doesn't exist.
func NewStore(ctx context.Context, js jetstream.JetStream, opts ...Option) (*Store, error) {
	o := options{
		bucket:  DefaultBucket,
		history: 5,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	kv, err := getOrCreateBucket(ctx, js, o.bucket, o.history)
	if err != nil {
		return nil, fmt.Errorf("create annotations bucket: %w", err)
	}

	return &Store{kv: kv, logger: o.logger}, nil
}

func getOrCreateBucket(ctx context.Context, js jetstream.JetStream, name string, history uint8) (jetstream.KeyValue, error) {
	kv, err := js.KeyValue(ctx, name)
	if err == nil {
		return kv, nil
	}
	if !errors.Is(err, jetstream.ErrBucketNotFound) {
		return nil, err
	}
	return js.CreateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      name,
		Description: "Open Annotation base records",
		History:     history,
	})
}

// Create stores the statements of graph as a new record and returns its ID.
func (s *Store) Create(ctx context.Context, graph rdf.Store) (id RecordID, err error) {
	defer func() { recordOp("create", err) }()

	id = NewRecordID()
	rec := NewRecord(graph)
	rec.ID = id.String()
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt

	data, err := EncodeRecord(rec)
	if err != nil {
		return RecordID{}, err
	}
	if _, err := s.kv.Create(ctx, id.Key(), data); err != nil {
		return RecordID{}, fmt.Errorf("store record: %w", err)
	}
	recordStatements.Observe(float64(len(rec.Statements)))

	s.logger.Debug("Stored annotation record",
		"id", rec.ID,
		"statements", len(rec.Statements))
	return id, nil
}

// Get retrieves a record by ID.
func (s *Store) Get(ctx context.Context, id RecordID) (rec *Record, err error) {
	defer func() { recordOp("get", err) }()

	entry, err := s.kv.Get(ctx, id.Key())
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get record: %w", err)
	}
	return DecodeRecord(entry.Value())
}

// Put replaces the statements of an existing record.
func (s *Store) Put(ctx context.Context, id RecordID, graph rdf.Store) (err error) {
	defer func() { recordOp("put", err) }()

	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	rec := NewRecord(graph)
	rec.ID = id.String()
	rec.CreatedAt = existing.CreatedAt
	rec.UpdatedAt = time.Now()

	data, err := EncodeRecord(rec)
	if err != nil {
		return err
	}
	if _, err := s.kv.Put(ctx, id.Key(), data); err != nil {
		return fmt.Errorf("update record: %w", err)
	}
	recordStatements.Observe(float64(len(rec.Statements)))
	return nil
}

// Delete removes a record. Deleting a missing record is not an error.
func (s *Store) Delete(ctx context.Context, id RecordID) (err error) {
	defer func() { recordOp("delete", err) }()

	if err := s.kv.Delete(ctx, id.Key()); err != nil && !isNotFound(err) {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}

// List returns all records.
func (s *Store) List(ctx context.Context) (recs []*Record, err error) {
	defer func() { recordOp("list", err) }()

	keys, err := s.kv.Keys(ctx)
	if err != nil {
		if errors.Is(err, jetstream.ErrNoKeysFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("list record keys: %w", err)
	}

	recs = make([]*Record, 0, len(keys))
	for _, key := range keys {
		entry, err := s.kv.Get(ctx, key)
		if err != nil {
			s.logger.Warn("Skipping unreadable record", "key", key, "error", err)
			continue
		}
		rec, err := DecodeRecord(entry.Value())
		if err != nil {
			s.logger.Warn("Skipping malformed record", "key", key, "error", err)
			continue
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// isNotFound checks if an error indicates a key was not found.
func isNotFound(err error) bool {
	return errors.Is(err, jetstream.ErrKeyNotFound) || errors.Is(err, jetstream.ErrKeyDeleted)
}
