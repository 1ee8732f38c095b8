package entries

import (
	"context"
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var _ Store = (*MemoryStore)(nil)

// in-process Store used in development and tests
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]Entry),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (m *MemoryStore) FindBySimilarity(
	_ context.Context,
	vector []float32,
	threshold float32,
	limit int,
) ([]ScoredEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var results []ScoredEntry

	for _, e := range m.entries {
		if len(e.Embedding) == 0 {
			continue
		}

		sim := CosineSimilarity(vector, e.Embedding)
		if sim > threshold {
			results = append(results, ScoredEntry{Entry: e, Similarity: sim})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Similarity == results[j].Similarity {
			return results[i].ID < results[j].ID
		}

		return results[i].Similarity > results[j].Similarity
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}

func (m *MemoryStore) FindByPattern(_ context.Context, fields []Field, substring string, limit int) ([]Entry, error) {
	if _, err := patternPredicate(fields); err != nil {
		return nil, err
	}

	needle := strings.ToLower(substring)

	m.mu.RLock()
	defer m.mu.RUnlock()

	var results []Entry

	for _, e := range m.sorted() {
		for _, f := range fields {
			value := e.Title
			if f == FieldCategory {
				value = string(e.Category)
			}

			if strings.Contains(strings.ToLower(value), needle) {
				results = append(results, e)
				break
			}
		}

		if limit > 0 && len(results) == limit {
			break
		}
	}

	return results, nil
}

func (m *MemoryStore) FindBySlug(_ context.Context, slug string) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var results []Entry

	for _, e := range m.entries {
		if e.Slug == slug {
			results = append(results, e)
		}
	}

	return results, nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[id]
	if !ok {
		return nil, ErrEntryNotFound
	}

	return &e, nil
}

func (m *MemoryStore) GetBySlug(_ context.Context, slug string) (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, e := range m.entries {
		if e.Slug == slug {
			return &e, nil
		}
	}

	return nil, ErrEntryNotFound
}

func (m *MemoryStore) List(_ context.Context, params ListParams) ([]Entry, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var filtered []Entry

	for _, e := range m.sorted() {
		if params.Category == "" || e.Category == params.Category {
			filtered = append(filtered, e)
		}
	}

	total := len(filtered)

	start := min(max(params.Offset, 0), total)
	end := total

	if params.Limit > 0 {
		end = min(start+params.Limit, total)
	}

	return filtered[start:end], total, nil
}

func (m *MemoryStore) Create(_ context.Context, draft Draft) (*Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.slugHeldByOther(draft.Slug, "") {
		return nil, fmt.Errorf("%w: %s", ErrSlugTaken, draft.Slug)
	}

	e := m.apply(Entry{ID: uuid.NewString()}, draft)
	m.entries[e.ID] = e

	return &e, nil
}

func (m *MemoryStore) Update(_ context.Context, id string, draft Draft) (*Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.entries[id]
	if !ok {
		return nil, ErrEntryNotFound
	}

	if m.slugHeldByOther(draft.Slug, id) {
		return nil, fmt.Errorf("%w: %s", ErrSlugTaken, draft.Slug)
	}

	e := m.apply(existing, draft)
	m.entries[id] = e

	return &e, nil
}

func (m *MemoryStore) UpsertBySlug(_ context.Context, draft Draft) (*Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing := Entry{ID: uuid.NewString()}

	for _, e := range m.entries {
		if e.Slug == draft.Slug {
			existing = e
			break
		}
	}

	e := m.apply(existing, draft)
	m.entries[e.ID] = e

	return &e, nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[id]; !ok {
		return ErrEntryNotFound
	}

	delete(m.entries, id)

	return nil
}

func (m *MemoryStore) ListWithoutEmbedding(_ context.Context, limit int) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var results []Entry

	for _, e := range m.sorted() {
		if len(e.Embedding) > 0 {
			continue
		}

		results = append(results, e)

		if limit > 0 && len(results) == limit {
			break
		}
	}

	return results, nil
}

func (m *MemoryStore) UpdateEmbedding(_ context.Context, id string, embedding []float32) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[id]
	if !ok {
		return ErrEntryNotFound
	}

	e.Embedding = slices.Clone(embedding)
	e.HasEmbedding = len(e.Embedding) > 0
	m.entries[id] = e

	return nil
}

// copies draft fields onto e; callers hold the write lock
func (m *MemoryStore) apply(e Entry, draft Draft) Entry {
	e.Title = draft.Title
	e.Slug = draft.Slug
	e.Category = draft.Category
	e.Content = draft.Content
	e.ImageURL = draft.ImageURL
	e.UpdatedAt = m.now()

	if len(draft.Embedding) > 0 {
		e.Embedding = slices.Clone(draft.Embedding)
	}

	e.HasEmbedding = len(e.Embedding) > 0

	return e
}

func (m *MemoryStore) slugHeldByOther(slug, id string) bool {
	for _, e := range m.entries {
		if e.Slug == slug && e.ID != id {
			return true
		}
	}

	return false
}

// newest first, ties broken by id so results are deterministic
func (m *MemoryStore) sorted() []Entry {
	list := make([]Entry, 0, len(m.entries))
	for _, e := range m.entries {
		list = append(list, e)
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].UpdatedAt.Equal(list[j].UpdatedAt) {
			return list[i].ID < list[j].ID
		}

		return list[i].UpdatedAt.After(list[j].UpdatedAt)
	})

	return list
}

// cosine of the angle between a and b; zero when lengths differ or either is a zero vector
func CosineSimilarity(a, b []float32) float32 {
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

	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
