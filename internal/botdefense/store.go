package botdefense

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// why an IP was trapped
type TrapReason string

const (
	ReasonHoneypot  TrapReason = "honeypot"
	ReasonProbePath TrapReason = "probe_path"
)

const trapKeyPrefix = "racewiki:botdefense:trap:"

// remembers trapped IPs until their trap expires
type Store interface {
	TrapIP(ctx context.Context, ip string, reason TrapReason) error
	IsTrapped(ctx context.Context, ip string) (bool, TrapReason, error)
}

// keeps traps in redis so every instance shares them
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) TrapIP(ctx context.Context, ip string, reason TrapReason) error {
	return s.client.Set(ctx, trapKeyPrefix+ip, string(reason), s.ttl).Err()
}

func (s *RedisStore) IsTrapped(ctx context.Context, ip string) (bool, TrapReason, error) {
	reason, err := s.client.Get(ctx, trapKeyPrefix+ip).Result()
	if errors.Is(err, redis.Nil) {
		return false, "", nil
	}

	if err != nil {
		return false, "", err
	}

	return true, TrapReason(reason), nil
}

type trap struct {
	reason  TrapReason
	expires time.Time
}

// keeps traps in process memory
type MemoryStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	traps map[string]trap
	now   func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:   ttl,
		traps: make(map[string]trap),
		now:   time.Now,
	}
}

func (s *MemoryStore) TrapIP(_ context.Context, ip string, reason TrapReason) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.traps[ip] = trap{reason: reason, expires: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) IsTrapped(_ context.Context, ip string) (bool, TrapReason, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.traps[ip]
	if !ok {
		return false, "", nil
	}

	if s.now().After(t.expires) {
		delete(s.traps, ip)
		return false, "", nil
	}

	return true, t.reason, nil
}
