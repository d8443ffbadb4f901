package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	bolt "go.etcd.io/bbolt"

	"github.com/latticelabs/latticedns/pkg/log"
	"github.com/latticelabs/latticedns/pkg/names"
	"github.com/latticelabs/latticedns/pkg/types"
)

var (
	// Bucket names
	bucketPublishes = []byte("publishes")
)

// Store is a bbolt-backed audit log of DNS publish attempts. Records
// are keyed by zero-padded UnixNano plus the record ID, so a cursor
// walk is time-ordered.
type Store struct {
	db     *bolt.DB
	logger zerolog.Logger
}

// Open opens or creates the history database at path, creating parent
// directories as needed.
func Open(path string, logger zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketPublishes); err != nil {
			return fmt.Errorf("create bucket %s: %w", bucketPublishes, err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db:     db,
		logger: log.Component(logger, "history"),
	}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// NewRecord builds a PublishRecord with a fresh ID and timestamp. The
// domain is stored in relative form, matching what went over the wire.
func NewRecord(networkID types.NetworkID, domain names.Domain, server string, outcome types.PublishOutcome, detail string) types.PublishRecord {
	return types.PublishRecord{
		ID:        uuid.NewString(),
		NetworkID: networkID,
		Domain:    domain.Relative(),
		Server:    server,
		Outcome:   outcome,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	}
}

// Record appends one publish attempt.
func (s *Store) Record(rec types.PublishRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal publish record: %w", err)
	}

	key := []byte(fmt.Sprintf("%020d/%s", rec.Timestamp.UnixNano(), rec.ID))
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketPublishes).Put(key, data)
	})
}

// List returns publish records newest first. A non-empty networkID
// filters to that network; limit <= 0 means no limit.
func (s *Store) List(networkID types.NetworkID, limit int) ([]types.PublishRecord, error) {
	records := []types.PublishRecord{}

	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketPublishes).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			var rec types.PublishRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("unmarshal publish record %s: %w", k, err)
			}
			if networkID != "" && rec.NetworkID != networkID {
				continue
			}
			records = append(records, rec)
			if limit > 0 && len(records) >= limit {
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
