package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/saadjs/lifetrack-cli/internal/model"
)

// StorageKey is the single store entry holding the serialized UserData.
const StorageKey = "lifeOptimizationData"

// ByteStore is an opaque key-value store.
type ByteStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

type Store struct {
	kv     ByteStore
	logger *log.Logger
	now    func() time.Time
}

// NewStore wraps kv. A nil logger discards store warnings.
func NewStore(kv ByteStore, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{kv: kv, logger: logger, now: time.Now}
}

// Load returns the persisted state merged over the defaults. Missing,
// unreadable or corrupt data yields the defaults; failures are logged and
// never returned.
func (s *Store) Load(ctx context.Context) model.UserData {
	raw, ok, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		s.logger.Printf("load state: %v; using defaults", err)
		return DefaultUserData(s.now())
	}
	if !ok {
		return DefaultUserData(s.now())
	}
	state, err := MergeOverDefaults(raw, s.now())
	if err != nil {
		s.logger.Printf("load state: %v; using defaults", err)
		return DefaultUserData(s.now())
	}
	return state
}

// Save overwrites the stored state with state.
func (s *Store) Save(ctx context.Context, state model.UserData) error {
	b, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := s.kv.Set(ctx, StorageKey, b); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// Clear removes the stored state; the next Load returns defaults.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Remove(ctx, StorageKey); err != nil {
		return fmt.Errorf("clear state: %w", err)
	}
	return nil
}
