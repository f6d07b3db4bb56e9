package play

import (
	"errors"
	"log"

	"github.com/hailam/clickboard/internal/board"
	"github.com/hailam/clickboard/internal/storage"
)

// Store persists session snapshots. *storage.Storage satisfies it.
type Store interface {
	SaveSession(sess *storage.Session) error
}

// Session owns the board of one game and turns click pairs into applied moves.
type Session struct {
	board     *board.Board
	selection Selection
	store     Store
	record    *storage.Session
}

// NewSession starts a session on the standard starting board.
// store may be nil, in which case nothing is persisted.
func NewSession(store Store) *Session {
	b := board.New()
	return &Session{
		board:  b,
		store:  store,
		record: storage.NewSession(b),
	}
}

// ResumeSession continues a previously stored session.
func ResumeSession(store Store, rec *storage.Session) (*Session, error) {
	b, err := rec.Board()
	if err != nil {
		return nil, err
	}
	return &Session{
		board:  b,
		store:  store,
		record: rec,
	}, nil
}

// Board returns the board being played on.
func (s *Session) Board() *board.Board {
	return s.board
}

// Record returns the persisted form of the session.
func (s *Session) Record() *storage.Session {
	return s.record
}

// Selected returns the currently highlighted square, if any.
func (s *Session) Selected() (board.Square, bool) {
	return s.selection.Selected()
}

// Click feeds sq into the selection buffer. When the click completes a pair
// the move is built, applied and returned with applied set.
func (s *Session) Click(sq board.Square) (m board.Move, applied bool, err error) {
	if _, err := s.board.PieceAt(sq); err != nil {
		return board.Move{}, false, err
	}

	start, end, ready := s.selection.Click(sq)
	if !ready {
		return board.Move{}, false, nil
	}

	m, err = s.Play(start, end)
	if err != nil {
		return board.Move{}, false, err
	}
	return m, true, nil
}

// Play builds the move from start to end against the current board and applies it.
func (s *Session) Play(start, end board.Square) (board.Move, error) {
	m, err := board.NewMove(start, end, s.board)
	if err != nil {
		return board.Move{}, err
	}
	if err := s.board.ApplyMove(m); err != nil {
		return board.Move{}, err
	}

	s.record.Update(s.board)
	s.save()

	return m, nil
}

// Reset puts the starting position back and begins a new stored session.
func (s *Session) Reset() {
	s.board = board.New()
	s.selection.Clear()
	s.record = storage.NewSession(s.board)
	s.save()
}

func (s *Session) save() {
	if s.store == nil {
		return
	}
	if err := s.store.SaveSession(s.record); err != nil {
		log.Printf("Warning: Failed to save session: %v", err)
	}
}

// Open returns the last session stored in store when resume is set and one
// exists, otherwise a new session. A nil store gives an unpersisted session.
func Open(store *storage.Storage, resume bool) *Session {
	if store == nil {
		return NewSession(nil)
	}

	if resume {
		rec, err := store.LoadLastSession()
		switch {
		case err == nil:
			sess, err := ResumeSession(store, rec)
			if err == nil {
				log.Printf("Resumed session %s after %d moves", rec.ID, rec.Moves)
				return sess
			}
			log.Printf("Warning: Stored session %s is unusable: %v", rec.ID, err)
		case errors.Is(err, storage.ErrNoSession):
		default:
			log.Printf("Warning: Failed to load session: %v", err)
		}
	}

	return NewSession(store)
}
