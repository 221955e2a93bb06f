package rag

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"admissions-chat-be/pkg/embedding"
)

// ScoredPassage is one retrieval hit. Distance is the index's cosine
// distance: lower means more relevant.
type ScoredPassage struct {
	Text     string
	Source   string
	Distance float64
}

// PassageIndex is the read side of the knowledge base. The ingestion
// pipeline owns the write side.
type PassageIndex interface {
	SearchNearest(ctx context.Context, vector []float32, limit int) ([]ScoredPassage, error)
}

// DefaultTopK bounds a single search; MaxContextPassages bounds how many
// hits across sources make it into the prompt context.
const (
	DefaultTopK        = 3
	MaxContextPassages = 5
)

// Retriever turns a user question into ranked knowledge-base passages.
type Retriever struct {
	embedder embedding.EmbeddingProvider
	index    PassageIndex
	logger   *log.Logger
}

func NewRetriever(embedder embedding.EmbeddingProvider, index PassageIndex, logger *log.Logger) *Retriever {
	return &Retriever{
		embedder: embedder,
		index:    index,
		logger:   logger,
	}
}

// Search embeds the query and returns up to k passages sorted ascending by
// distance.
func (r *Retriever) Search(ctx context.Context, query string, k int) ([]ScoredPassage, error) {
	if k <= 0 {
		k = DefaultTopK
	}

	embeddingRes, err := r.embedder.Generate(ctx, query, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("embedding generation failed: %w", err)
	}

	passages, err := r.index.SearchNearest(ctx, embeddingRes.Embedding.Values, k)
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}

	sort.SliceStable(passages, func(i, j int) bool {
		return passages[i].Distance < passages[j].Distance
	})

	return passages, nil
}

// TopContext truncates ranked passages to the context budget.
func TopContext(passages []ScoredPassage) []ScoredPassage {
	if len(passages) > MaxContextPassages {
		return passages[:MaxContextPassages]
	}
	return passages
}

// JoinContext assembles the prompt context block: passage texts joined by
// blank lines.
func JoinContext(passages []ScoredPassage) string {
	texts := make([]string, len(passages))
	for i, p := range passages {
		texts[i] = p.Text
	}
	return strings.Join(texts, "\n\n")
}

// Confidence derives a quality signal from the ranking distances:
// 1/(1+meanDistance), strictly in (0,1] when any passage exists, exactly 0
// when none do.
func Confidence(passages []ScoredPassage) float64 {
	if len(passages) == 0 {
		return 0
	}

	var total float64
	for _, p := range passages {
		total += p.Distance
	}
	mean := total / float64(len(passages))

	return 1 / (1 + mean)
}
