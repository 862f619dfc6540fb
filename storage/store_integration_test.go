//go:build integration

package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/c360studio/semstreams/natsclient"

	"github.com/c360studio/oagraph/rdf"
)

const ex = "http://example.org/"

func newTestStore(t *testing.T) (*Store, context.Context) {
	t.Helper()
	tc := natsclient.NewTestClient(t, natsclient.WithJetStream())
	ctx := context.Background()

	js, err := tc.Client.JetStream()
	if err != nil {
		t.Fatalf("Failed to get JetStream: %v", err)
	}
	store, err := NewStore(ctx, js, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return store, ctx
}

func sampleGraph() *rdf.Graph {
	anno := rdf.IRI(ex + "anno")
	return rdf.NewGraph(
		rdf.NewStatement(anno, rdf.IRI(ex+"motivatedBy"), rdf.IRI(ex+"commenting")),
		rdf.NewStatement(anno, rdf.IRI(ex+"annotatedAt"), rdf.NewLiteral("2014-03-01T12:00:00Z")),
	)
}

func assertSameStatements(t *testing.T, want *rdf.Graph, got *Record) {
	t.Helper()
	if len(got.Statements) != want.Size() {
		t.Fatalf("expected %d statements, got %d", want.Size(), len(got.Statements))
	}
	g := got.Graph()
	for _, s := range want.Statements() {
		if !g.Contains(s) {
			t.Errorf("missing statement %v", s)
		}
	}
}

func TestStore_CreateAndGet(t *testing.T) {
	store, ctx := newTestStore(t)
	graph := sampleGraph()

	id, err := store.Create(ctx, graph)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if id.ID == "" {
		t.Fatal("expected non-empty record ID")
	}

	rec, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if rec.ID != id.String() {
		t.Errorf("ID = %q, want %q", rec.ID, id.String())
	}
	if rec.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if !rec.UpdatedAt.Equal(rec.CreatedAt) {
		t.Errorf("expected UpdatedAt %v to equal CreatedAt %v", rec.UpdatedAt, rec.CreatedAt)
	}
	assertSameStatements(t, graph, rec)
}

func TestStore_CreateEmptyGraph(t *testing.T) {
	store, ctx := newTestStore(t)

	id, err := store.Create(ctx, rdf.NewGraph())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	rec, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if rec.Statements == nil || len(rec.Statements) != 0 {
		t.Errorf("expected empty non-nil statements, got %v", rec.Statements)
	}
}

func TestStore_GetMissing(t *testing.T) {
	store, ctx := newTestStore(t)

	_, err := store.Get(ctx, NewRecordID())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestStore_PutKeepsCreatedAt(t *testing.T) {
	store, ctx := newTestStore(t)

	id, err := store.Create(ctx, sampleGraph())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	original, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	replacement := rdf.NewGraph(
		rdf.NewStatement(rdf.IRI(ex+"anno"), rdf.IRI(ex+"motivatedBy"), rdf.IRI(ex+"tagging")),
	)
	if err := store.Put(ctx, id, replacement); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	updated, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !updated.CreatedAt.Equal(original.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", updated.CreatedAt, original.CreatedAt)
	}
	if !updated.UpdatedAt.After(original.UpdatedAt) {
		t.Errorf("expected UpdatedAt %v after %v", updated.UpdatedAt, original.UpdatedAt)
	}
	assertSameStatements(t, replacement, updated)
}

func TestStore_PutMissing(t *testing.T) {
	store, ctx := newTestStore(t)

	err := store.Put(ctx, NewRecordID(), sampleGraph())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Put() error = %v, want ErrNotFound", err)
	}
}

func TestStore_Delete(t *testing.T) {
	store, ctx := newTestStore(t)

	id, err := store.Create(ctx, sampleGraph())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := store.Delete(ctx, id); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Get(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}

	// Deleting again, or deleting a record that never existed, is fine.
	if err := store.Delete(ctx, id); err != nil {
		t.Errorf("second Delete() error = %v", err)
	}
	if err := store.Delete(ctx, NewRecordID()); err != nil {
		t.Errorf("Delete() of missing record error = %v", err)
	}
}

func TestStore_List(t *testing.T) {
	store, ctx := newTestStore(t)

	recs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() on empty bucket error = %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected no records, got %d", len(recs))
	}

	want := map[string]bool{}
	for i := 0; i < 2; i++ {
		id, err := store.Create(ctx, sampleGraph())
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		want[id.String()] = true
	}

	deleted, err := store.Create(ctx, sampleGraph())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := store.Delete(ctx, deleted); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := store.kv.Put(ctx, "malformed", []byte("{not json")); err != nil {
		t.Fatalf("failed to write malformed entry: %v", err)
	}

	recs, err = store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(recs) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(recs))
	}
	for _, rec := range recs {
		if !want[rec.ID] {
			t.Errorf("unexpected record %q", rec.ID)
		}
	}
}

func TestNewStore_ReopensBucket(t *testing.T) {
	tc := natsclient.NewTestClient(t, natsclient.WithJetStream())
	ctx := context.Background()

	js, err := tc.Client.JetStream()
	if err != nil {
		t.Fatalf("Failed to get JetStream: %v", err)
	}

	first, err := NewStore(ctx, js, WithBucket("OA_TEST"), WithHistory(2))
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	id, err := first.Create(ctx, sampleGraph())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	second, err := NewStore(ctx, js, WithBucket("OA_TEST"))
	if err != nil {
		t.Fatalf("NewStore() on existing bucket error = %v", err)
	}
	if _, err := second.Get(ctx, id); err != nil {
		t.Errorf("Get() through reopened bucket error = %v", err)
	}
}
