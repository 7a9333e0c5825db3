// Package store keeps saved games in named slots of an embedded badger
// database. Blobs are opaque here; the game package produces and checks
// them.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

var (
	// ErrSlotNotFound is returned by Load and Delete for an unknown slot.
	ErrSlotNotFound = errors.New("store: slot not found")

	// ErrInvalidSlot is returned for empty or malformed slot names.
	ErrInvalidSlot = errors.New("store: invalid slot name")

	// ErrClosed is returned after Close.
	ErrClosed = errors.New("store: closed")
)

// DefaultSlot is used when the caller names no slot.
const DefaultSlot = "game_state"

const (
	slotPrefix  = "slot/"
	stampPrefix = "saved/"
)

var slotName = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,64}$`)

// Config controls how the database is opened.
type Config struct {
	// Path is the database directory; required unless InMemory.
	Path string
	// InMemory keeps everything in RAM (tests, throwaway sessions).
	InMemory bool
	// SyncWrites fsyncs every commit.
	SyncWrites bool
	// Logger receives badger's internal logs; nil silences them.
	Logger *zap.Logger
}

// DefaultConfig returns a durable on-disk configuration at path.
func DefaultConfig(path string) Config {
	return Config{Path: path, SyncWrites: true}
}

// InMemoryConfig returns a configuration that never touches disk.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// Slot describes one saved game.
type Slot struct {
	Name    string
	Size    int64
	SavedAt time.Time
}

// Store is a handle on the slot database. Safe for concurrent use.
type Store struct {
	db  *badger.DB
	log *zap.Logger
}

// badgerLogger adapts zap to badger.Logger.
type badgerLogger struct {
	log *zap.SugaredLogger
}

func (l badgerLogger) Errorf(format string, args ...interface{})   { l.log.Errorf(format, args...) }
func (l badgerLogger) Warningf(format string, args ...interface{}) { l.log.Warnf(format, args...) }
func (l badgerLogger) Infof(format string, args ...interface{})    { l.log.Infof(format, args...) }
func (l badgerLogger) Debugf(format string, args ...interface{})   { l.log.Debugf(format, args...) }

// Open opens (creating if needed) the slot database.
func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("store: path is required for persistent database")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("store: create directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
		opts = opts.WithLogger(nil)
	} else {
		opts = opts.WithLogger(badgerLogger{log: log.Named("badger").Sugar()})
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open badger: %w", err)
	}

	return &Store{db: db, log: log}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s.db.IsClosed() {
		return nil
	}
	return s.db.Close()
}

// Save writes blob under slot, replacing any previous save.
func (s *Store) Save(ctx context.Context, slot string, blob []byte) error {
	if err := s.check(ctx, slot); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	stamp := []byte(time.Now().UTC().Format(time.RFC3339Nano))
	err := s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key(slot), blob); err != nil {
			return err
		}
		return txn.Set(stampKey(slot), stamp)
	})
	if err != nil {
		return fmt.Errorf("Save(%s): %w", slot, err)
	}
	s.log.Debug("slot saved", zap.String("slot", slot), zap.Int("bytes", len(blob)))

	return nil
}

// Load returns a copy of the blob stored under slot.
func (s *Store) Load(ctx context.Context, slot string) ([]byte, error) {
	if err := s.check(ctx, slot); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	var blob []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(slot))
		if err != nil {
			return err
		}
		blob, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("Load(%s): %w", slot, ErrSlotNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", slot, err)
	}

	return blob, nil
}

// Delete removes slot.
func (s *Store) Delete(ctx context.Context, slot string) error {
	if err := s.check(ctx, slot); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key(slot)); err != nil {
			return err
		}
		if err := txn.Delete(stampKey(slot)); err != nil {
			return err
		}
		return txn.Delete(key(slot))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("Delete(%s): %w", slot, ErrSlotNotFound)
	}
	if err != nil {
		return fmt.Errorf("Delete(%s): %w", slot, err)
	}

	return nil
}

// List returns all slots sorted by name.
func (s *Store) List(ctx context.Context) ([]Slot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.db.IsClosed() {
		return nil, ErrClosed
	}

	var out []Slot
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(slotPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := it.Item()
			name := string(item.Key()[len(slotPrefix):])
			out = append(out, Slot{
				Name:    name,
				Size:    item.ValueSize(),
				SavedAt: savedAt(txn, name),
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (s *Store) check(ctx context.Context, slot string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.db.IsClosed() {
		return ErrClosed
	}
	if !slotName.MatchString(slot) {
		return fmt.Errorf("%q: %w", slot, ErrInvalidSlot)
	}

	return nil
}

func key(slot string) []byte { return []byte(slotPrefix + slot) }
func stampKey(slot string) []byte { return []byte(stampPrefix + slot) }

// savedAt reads a slot's save time; zero when missing or unreadable.
func savedAt(txn *badger.Txn, slot string) time.Time {
	item, err := txn.Get(stampKey(slot))
	if err != nil {
		return time.Time{}
	}
	var t time.Time
	_ = item.Value(func(v []byte) error {
		t, err = time.Parse(time.RFC3339Nano, string(v))
		return err
	})

	return t
}
