package embedding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingProvider struct {
	vector []float32
	err    error
	calls  int
}

func (p *countingProvider) Generate(ctx context.Context, text string) ([]float32, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.vector, nil
}

func (p *countingProvider) Dimensions() int { return len(p.vector) }

func TestCachedProviderMemoizesByText(t *testing.T) {
	inner := &countingProvider{vector: []float32{1, 2, 3}}
	p := NewCachedProvider(inner)

	first, err := p.Generate(context.Background(), "same text")
	assert.NoError(t, err)

	second, err := p.Generate(context.Background(), "same text")
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls, "second call must be served from cache")

	_, err = p.Generate(context.Background(), "different text")
	assert.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCachedProviderDoesNotCacheErrors(t *testing.T) {
	inner := &countingProvider{err: errors.New("down")}
	p := NewCachedProvider(inner)

	_, err := p.Generate(context.Background(), "text")
	assert.Error(t, err)

	_, err = p.Generate(context.Background(), "text")
	assert.Error(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCachedProviderReportsInnerDimensions(t *testing.T) {
	inner := &countingProvider{vector: make([]float32, 1536)}
	p := NewCachedProvider(inner)

	assert.Equal(t, 1536, p.Dimensions())
}
