package search

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"gasthof/internal/models"

	"github.com/rs/zerolog"
)

type indexEntry struct {
	chunk  Chunk
	vector []float32
}

// Index is an in-memory vector index over hotel profile chunks. A
// rebuild embeds every chunk again and swaps the entry slice under
// the write lock, so searches never observe a half-built index.
type Index struct {
	mu         sync.RWMutex
	entries    []indexEntry
	embedder   Embedder
	loadChunks func() ([]Chunk, error)
	topK       int
	threshold  float64
	logger     *zerolog.Logger
}

func NewIndex(embedder Embedder, profilePath string, topK int, threshold float64, logger *zerolog.Logger) *Index {
	return &Index{
		embedder: embedder,
		loadChunks: func() ([]Chunk, error) {
			profile, err := LoadProfile(profilePath)
			if err != nil {
				return nil, err
			}
			return BuildChunks(profile), nil
		},
		topK:      topK,
		threshold: threshold,
		logger:    logger,
	}
}

// Rebuild re-reads the profile, embeds all chunks and atomically
// replaces the index contents. On error the previous contents stay
// in place.
func (idx *Index) Rebuild(ctx context.Context) error {
	chunks, err := idx.loadChunks()
	if err != nil {
		return err
	}

	entries := make([]indexEntry, 0, len(chunks))
	for _, chunk := range chunks {
		vector, err := idx.embedder.Embed(ctx, chunk.Text)
		if err != nil {
			return fmt.Errorf("embed chunk %s: %w", chunk.Category, err)
		}
		entries = append(entries, indexEntry{chunk: chunk, vector: vector})
	}

	idx.mu.Lock()
	idx.entries = entries
	idx.mu.Unlock()

	idx.logger.Info().Int("chunks", len(entries)).Msg("search index rebuilt")
	return nil
}

// Search embeds the query and returns up to topK chunks whose cosine
// similarity clears the threshold, best match first.
func (idx *Index) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	queryVector, err := idx.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if len(idx.entries) == 0 {
		return nil, fmt.Errorf("search index is empty, rebuild it first")
	}

	results := make([]models.SearchResult, 0, len(idx.entries))
	for _, entry := range idx.entries {
		score := cosineSimilarity(queryVector, entry.vector)
		if score < idx.threshold {
			continue
		}
		results = append(results, models.SearchResult{
			Text:     entry.chunk.Text,
			Category: entry.chunk.Category,
			Score:    score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > idx.topK {
		results = results[:idx.topK]
	}
	return results, nil
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
