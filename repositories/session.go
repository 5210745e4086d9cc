package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"realtime-relay/contract"
	"realtime-relay/domain"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const SessionPrefix = "session:"

var _ contract.ISessionRepository = SessionRepository{}

type SessionRepository struct {
	db  *badger.DB
	log *slog.Logger
	ttl time.Duration
}

// NewSessionRepository stores entries that expire after ttl; zero keeps them forever.
func NewSessionRepository(db *badger.DB, log *slog.Logger, ttl time.Duration) SessionRepository {
	return SessionRepository{db: db, log: log, ttl: ttl}
}

// Store persists a lifecycle event.
// The key is "session:{timestamp_padded}:{socket_id}": 19-digit zero padding keeps
// lexicographic order chronological, the socket id separates same-nanosecond events.
func (r SessionRepository) Store(evt domain.SessionEvent) error {
	key := fmt.Sprintf("%s%019d:%s", SessionPrefix, evt.At.UnixNano(), evt.ConnectionID)
	bytes, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(key), bytes)
		if r.ttl > 0 {
			entry = entry.WithTTL(r.ttl)
		}
		return txn.SetEntry(entry)
	})
}

// List returns at most limit events, newest first.
func (r SessionRepository) List(limit int) ([]domain.SessionEvent, error) {
	var res []domain.SessionEvent
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(SessionPrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		// Reverse iteration starts from the greatest key under the prefix.
		seekKey := append([]byte(SessionPrefix), 0xFF)
		for it.Seek(seekKey); it.ValidForPrefix(prefix) && len(res) < limit; it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var evt domain.SessionEvent
				if err := json.Unmarshal(val, &evt); err != nil {
					r.log.Warn("Skipping unreadable session entry", "key", string(it.Item().Key()), "error", err)
					return nil
				}
				res = append(res, evt)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return res, err
}
