package vectorstore

import (
	"context"

	"github.com/google/uuid"
)

// Distance selects the similarity metric a collection is created with.
type Distance string

const (
	DistanceCosine Distance = "cosine"
)

// CollectionSpec describes a collection to ensure.
type CollectionSpec struct {
	Name       string
	Dimensions int
	Distance   Distance
}

// Payload carries the displayable passage fields stored next to the vector.
// Retrieval reads these payload copies only; the passage store is never
// consulted during a search.
type Payload struct {
	Title         string
	Content       string
	Section       string
	ChapterNumber int
	Ordinal       int
	Metadata      map[string]interface{}
}

// Point is one indexed entry. Upserting a point with an existing id
// overwrites it, so a collection holds at most one point per id.
type Point struct {
	Id      uuid.UUID
	Vector  []float32
	Payload Payload
}

// Hit is a search result. Score is a similarity, higher is more relevant.
// Ordering between equal scores is up to the index and not deterministic.
type Hit struct {
	Id      uuid.UUID
	Score   float64
	Payload Payload
}

// Store is the gateway to the vector index service.
type Store interface {
	// HasCollection reports whether the named collection exists.
	HasCollection(ctx context.Context, name string) (bool, error)

	// EnsureCollection creates the collection if absent. Idempotent: an
	// existing collection is left untouched regardless of its configuration.
	EnsureCollection(ctx context.Context, spec CollectionSpec) error

	// Upsert writes points, overwriting any existing point with the same id.
	Upsert(ctx context.Context, collection string, points []Point) error

	// Delete removes the point with the given id, if present.
	Delete(ctx context.Context, collection string, id uuid.UUID) error

	// Search returns at most topK hits ordered by descending score.
	// A non-positive topK falls back to the default of 5.
	Search(ctx context.Context, collection string, vector []float32, topK int) ([]Hit, error)
}
