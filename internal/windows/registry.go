package windows

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketWindows = []byte("windows")

// Record marks one terminal window this client opened, keyed by the
// session it belongs to. Sessions merely attached to never get a
// record.
type Record struct {
	SessionID string    `json:"session_id"`
	PID       int       `json:"pid"`
	Command   []string  `json:"command,omitempty"`
	OpenedAt  time.Time `json:"opened_at"`
}

type Registry interface {
	Put(rec Record) error
	Get(sessionID string) (Record, bool, error)
	Delete(sessionID string) error
	List() ([]Record, error)
	Close() error
}

type boltRegistry struct {
	db *bolt.DB
}

// OpenRegistry opens (or creates) the window registry database. The
// registry outlives the process so ownership survives client restarts.
func OpenRegistry(path string) (Registry, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("registry path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketWindows)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &boltRegistry{db: db}, nil
}

func (r *boltRegistry) Put(rec Record) error {
	if strings.TrimSpace(rec.SessionID) == "" {
		return errors.New("session id is required")
	}
	if rec.PID <= 0 {
		return errors.New("window pid is required")
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketWindows).Put([]byte(rec.SessionID), data)
	})
}

func (r *boltRegistry) Get(sessionID string) (Record, bool, error) {
	var rec Record
	var found bool
	err := r.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketWindows).Get([]byte(sessionID))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &rec)
	})
	if err != nil {
		return Record{}, false, err
	}
	return rec, found, nil
}

func (r *boltRegistry) Delete(sessionID string) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketWindows).Delete([]byte(sessionID))
	})
}

func (r *boltRegistry) List() ([]Record, error) {
	var records []Record
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketWindows).ForEach(func(_, data []byte) error {
			var rec Record
			if err := json.Unmarshal(data, &rec); err != nil {
				return err
			}
			records = append(records, rec)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *boltRegistry) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}
