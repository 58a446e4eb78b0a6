// Package registry is the persistent tool index and its query engine. Writes
// go through to a bbolt database and a write-through in-memory cache; reads
// are served from the cache alone.
package registry

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/team-brain/toolregistry/internal/domain/catalog"
)

var (
	bucketTools = []byte("tools")
	bucketUsage = []byte("usage")
)

// Store persists tools and usage events in a bbolt database. The database is
// opened and closed around each logical operation; no handle outlives a call.
// Single-process, single-writer access is assumed.
type Store struct {
	path   string
	logger *zap.Logger
}

// NewStore creates a Store rooted at path, creating parent directories as
// needed. The database file itself is created lazily on first write.
func NewStore(path string, logger *zap.Logger) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("store path is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure store dir: %w", err)
	}
	return &Store{path: path, logger: logger.Named("store")}, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) update(fn func(tx *bolt.Tx) error) error {
	db, err := bolt.Open(s.path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return fmt.Errorf("open registry db: %w", err)
	}
	defer db.Close()
	return db.Update(fn)
}

func (s *Store) view(fn func(tx *bolt.Tx) error) error {
	db, err := bolt.Open(s.path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return fmt.Errorf("open registry db: %w", err)
	}
	defer db.Close()
	return db.View(fn)
}

// SaveTool upserts a tool by name, replacing any prior record wholesale.
func (s *Store) SaveTool(tool *catalog.Tool) error {
	data, err := json.Marshal(tool)
	if err != nil {
		return fmt.Errorf("encode tool %q: %w", tool.Name, err)
	}
	return s.update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketTools)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(tool.Name), data)
	})
}

// LoadTools reads every tool row. Rows that fail to decode are skipped
// individually; one corrupt row never aborts the load.
func (s *Store) LoadTools() ([]*catalog.Tool, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil, nil
	}

	var tools []*catalog.Tool
	err := s.view(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketTools)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(key, value []byte) error {
			var tool catalog.Tool
			if err := json.Unmarshal(value, &tool); err != nil {
				s.logger.Warn("skipping corrupt tool row", zap.ByteString("name", key), zap.Error(err))
				return nil
			}
			tools = append(tools, &tool)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return tools, nil
}

// AppendUsage appends a usage event under a fresh auto-incrementing id.
// Events are never updated or deleted.
func (s *Store) AppendUsage(event catalog.UsageEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode usage event: %w", err)
	}
	return s.update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketUsage)
		if err != nil {
			return err
		}
		id, err := bucket.NextSequence()
		if err != nil {
			return err
		}
		return bucket.Put(itob(id), data)
	})
}

// LoadUsage reads every usage event in insertion order, skipping corrupt rows.
func (s *Store) LoadUsage() ([]catalog.UsageEvent, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil, nil
	}

	var events []catalog.UsageEvent
	err := s.view(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketUsage)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(key, value []byte) error {
			var event catalog.UsageEvent
			if err := json.Unmarshal(value, &event); err != nil {
				s.logger.Warn("skipping corrupt usage row", zap.ByteString("id", key), zap.Error(err))
				return nil
			}
			events = append(events, event)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
