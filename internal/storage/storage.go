package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/hailam/clickboard/internal/board"
)

// Storage keys
const (
	keyPreferences   = "preferences"
	keyLastSession   = "last_session"
	keySessionPrefix = "session/"
)

// ErrNoSession is returned by LoadLastSession when nothing has been saved yet.
var ErrNoSession = errors.New("no saved session")

// UserPreferences stores user settings
type UserPreferences struct {
	AssetDir     string    `json:"asset_dir"`
	Resume       bool      `json:"resume"`
	SoundEnabled bool      `json:"sound_enabled"`
	LastPlayed   time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		AssetDir:     "images",
		Resume:       true,
		SoundEnabled: true,
		LastPlayed:   time.Now(),
	}
}

// Session is a persisted board snapshot. Moves counts applied moves;
// the moves themselves are not kept.
type Session struct {
	ID        uuid.UUID                           `json:"id"`
	Grid      [board.Size][board.Size]board.Piece `json:"grid"`
	Moves     int                                 `json:"moves"`
	UpdatedAt time.Time                           `json:"updated_at"`
}

// NewSession starts a session record for b with a fresh ID.
func NewSession(b *board.Board) *Session {
	return &Session{
		ID:        uuid.New(),
		Grid:      b.Grid(),
		UpdatedAt: time.Now(),
	}
}

// Board rebuilds the board held by the session.
func (s *Session) Board() (*board.Board, error) {
	return board.FromGrid(s.Grid)
}

// Update records the current state of b after one more applied move.
func (s *Session) Update(b *board.Board) {
	s.Grid = b.Grid()
	s.Moves++
	s.UpdatedAt = time.Now()
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database under dataDir, or the platform data
// directory when dataDir is empty.
func NewStorage(dataDir string) (*Storage, error) {
	dbDir, err := GetDatabaseDir(dataDir)
	if err != nil {
		return nil, err
	}
	return Open(badger.DefaultOptions(dbDir))
}

// NewMemoryStorage opens a database that lives only in memory.
func NewMemoryStorage() (*Storage, error) {
	return Open(badger.DefaultOptions("").WithInMemory(true))
}

// Open opens a database with the given options. Badger logging is disabled.
func Open(opts badger.Options) (*Storage, error) {
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences saves user preferences
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	prefs.LastPlayed = time.Now()
	return s.put(keyPreferences, prefs)
}

// LoadPreferences loads user preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*UserPreferences, error) {
	prefs := DefaultPreferences()
	if _, err := s.get(keyPreferences, prefs); err != nil {
		return prefs, err
	}
	return prefs, nil
}

// SaveSession stores the session and marks it as the latest one.
func (s *Storage) SaveSession(sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(keySessionPrefix+sess.ID.String()), data); err != nil {
			return err
		}
		return txn.Set([]byte(keyLastSession), []byte(sess.ID.String()))
	})
}

// LoadSession loads a session by ID.
func (s *Storage) LoadSession(id uuid.UUID) (*Session, error) {
	sess := &Session{}
	found, err := s.get(keySessionPrefix+id.String(), sess)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("session %s: %w", id, ErrNoSession)
	}
	return sess, nil
}

// LoadLastSession loads the most recently saved session.
func (s *Storage) LoadLastSession() (*Session, error) {
	var id uuid.UUID

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyLastSession))
		if err == badger.ErrKeyNotFound {
			return ErrNoSession
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			id, err = uuid.ParseBytes(val)
			return err
		})
	})
	if err != nil {
		return nil, err
	}

	return s.LoadSession(id)
}

func (s *Storage) put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// get decodes the value at key into v. It reports false if the key is absent.
func (s *Storage) get(key string, v any) (bool, error) {
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})

	return found, err
}
