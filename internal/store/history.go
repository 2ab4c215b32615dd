// Package store keeps a local journal of every timestamp this tool has
// written into a repository, so past runs can be audited.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/gitpace/internal/application"
	"go.etcd.io/bbolt"
)

const (
	historyFileName    = "history.db"
	bucketHistory      = "history" // key: RFC3339Nano recorded-at -> Entry JSON
	defaultOpenTimeout = 1 * time.Second
)

// Entry is one journal record: a timestamp that was handed to git.
type Entry struct {
	ID         string    `json:"id"`
	RepoPath   string    `json:"repo_path"`
	Mode       string    `json:"mode"` // "commit" or "amend"
	Timestamp  time.Time `json:"timestamp"`
	RecordedAt time.Time `json:"recorded_at"`
}

// History is a bbolt-backed journal.
type History struct {
	storage *bbolt.DB
}

// OpenDefault opens the journal in the application config directory.
func OpenDefault() (*History, error) {
	dir, err := application.GetApplicationDirectory()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	return Open(filepath.Join(dir, historyFileName))
}

// Open opens (or creates) a journal at the specified path.
// This is primarily exposed for testing purposes.
func Open(path string) (*History, error) {
	instance, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: defaultOpenTimeout})
	if err != nil {
		return nil, err
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketHistory))
		return err
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &History{storage: instance}, nil
}

// Close closes the underlying database.
func (h *History) Close() error {
	return h.storage.Close()
}

// Record appends a journal entry for a timestamp that was just used.
func (h *History) Record(repoPath, mode string, ts, recordedAt time.Time) error {
	entry := Entry{
		ID:         uuid.NewString(),
		RepoPath:   repoPath,
		Mode:       mode,
		Timestamp:  ts,
		RecordedAt: recordedAt,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return h.storage.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketHistory))

		return b.Put([]byte(entry.RecordedAt.Format(time.RFC3339Nano)), data)
	})
}

// List returns journal entries newest first, at most limit of them.
// A limit of zero or less returns everything.
func (h *History) List(limit int) ([]Entry, error) {
	var entries []Entry

	err := h.storage.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketHistory))

		return b.ForEach(func(_, v []byte) error {
			var entry Entry
			if err := json.Unmarshal(v, &entry); err != nil {
				return err
			}

			entries = append(entries, entry)

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].RecordedAt.After(entries[j].RecordedAt)
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	return entries, nil
}
