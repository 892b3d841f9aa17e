// Package redis persists run results in Redis.
//
// Storage is one-way: results go in as JSON trees for reporting and come
// back as data, never as re-runnable scenarios.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/gauntlet/pkg/domain"
	"github.com/aretw0/gauntlet/pkg/ports"
)

// Store implements ports.ResultStore on a Redis client.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

var _ ports.ResultStore = (*Store)(nil)

// Option configures the store.
type Option func(*Store)

// WithTTL sets an expiration for stored results. Zero keeps them forever.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix overrides the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a store with its own client.
func New(address, password string, db int, opts ...Option) *Store {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a store over an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "gauntlet:result:",
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) scenarioKey(id string) string { return s.prefix + "scenario:" + id }
func (s *Store) testcaseKey(id string) string { return s.prefix + "testcase:" + id }
func (s *Store) indexKey() string             { return s.prefix + "scenario:index" }

// SaveScenario implements ports.ResultStore.
func (s *Store) SaveScenario(ctx context.Context, result domain.ScenarioResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal scenario result: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.scenarioKey(result.ID), data, s.ttl)
	pipe.SAdd(ctx, s.indexKey(), result.ID)
	if s.ttl > 0 {
		pipe.Expire(ctx, s.indexKey(), s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save scenario result: %w", err)
	}
	return nil
}

// SaveTestCase implements ports.ResultStore.
func (s *Store) SaveTestCase(ctx context.Context, result domain.TestCaseResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal testcase result: %w", err)
	}
	if err := s.client.Set(ctx, s.testcaseKey(result.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save testcase result: %w", err)
	}
	return nil
}

// GetScenario implements ports.ResultStore.
func (s *Store) GetScenario(ctx context.Context, id string) (domain.ScenarioResult, error) {
	val, err := s.client.Get(ctx, s.scenarioKey(id)).Result()
	if err != nil {
		if err == backend.Nil {
			return domain.ScenarioResult{}, domain.ErrResultNotFound
		}
		return domain.ScenarioResult{}, fmt.Errorf("get scenario result: %w", err)
	}

	var result domain.ScenarioResult
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		return domain.ScenarioResult{}, fmt.Errorf("unmarshal scenario result: %w", err)
	}
	return result, nil
}

// ListScenarios implements ports.ResultStore.
func (s *Store) ListScenarios(ctx context.Context) ([]string, error) {
	ids, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("list scenario results: %w", err)
	}
	return ids, nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
