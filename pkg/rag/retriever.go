package rag

import (
	"context"

	"robotics-rag-be/pkg/embedding"
	"robotics-rag-be/pkg/vectorstore"
)

// Retriever turns a query string into a ranked list of relevant passages.
// Stateless between calls.
type Retriever struct {
	embedder   embedding.Provider
	store      vectorstore.Store
	collection string
}

func NewRetriever(embedder embedding.Provider, store vectorstore.Store, collection string) *Retriever {
	return &Retriever{
		embedder:   embedder,
		store:      store,
		collection: collection,
	}
}

// Retrieve embeds the query and returns up to topK nearest neighbors in the
// index's ranked order. Every hit the index returns is passed through as-is:
// no re-ranking, no score threshold, no dedupe of near-identical passages.
// An empty index yields an empty slice, not an error.
func (r *Retriever) Retrieve(ctx context.Context, queryText string, topK int) ([]vectorstore.Hit, error) {
	queryVector, err := r.embedder.Generate(ctx, queryText)
	if err != nil {
		return nil, err
	}

	hits, err := r.store.Search(ctx, r.collection, queryVector, topK)
	if err != nil {
		return nil, err
	}

	return hits, nil
}
