package contributions

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var _ Store = (*MemoryStore)(nil)

type MemoryStore struct {
	mu            sync.RWMutex
	contributions map[string]Contribution
	now           func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		contributions: make(map[string]Contribution),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (m *MemoryStore) Create(_ context.Context, req *CreateRequest) (*Contribution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := Contribution{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Category:    strings.TrimSpace(req.Category),
		ImageURL:    normalizeImageURL(req.ImageURL),
		Content:     req.Content,
		Locale:      req.Locale,
		SubmittedBy: req.SubmittedBy,
		Status:      StatusPending,
		CreatedAt:   m.now(),
	}
	m.contributions[c.ID] = c

	return &c, nil
}

func (m *MemoryStore) List(_ context.Context, status Status, limit, offset int) ([]Contribution, int, error) {
	if status != "" && !status.Valid() {
		return nil, 0, ErrInvalidStatus
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := []Contribution{}
	for _, c := range m.contributions {
		if status == "" || c.Status == status {
			matched = append(matched, c)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	if offset >= total {
		return []Contribution{}, total, nil
	}

	end := min(offset+limit, total)

	return matched[offset:end], total, nil
}

func (m *MemoryStore) UpdateStatus(_ context.Context, id string, status Status) (*Contribution, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.contributions[id]
	if !ok {
		return nil, ErrContributionNotFound
	}

	c.Status = status
	m.contributions[id] = c

	return &c, nil
}
