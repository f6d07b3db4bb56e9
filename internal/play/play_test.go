package play

import (
	"errors"
	"testing"

	"github.com/hailam/clickboard/internal/board"
	"github.com/hailam/clickboard/internal/storage"
)

func TestGeometry(t *testing.T) {
	g := DefaultGeometry()
	if g.SquareSize() != 64 {
		t.Fatalf("SquareSize = %d, want 64", g.SquareSize())
	}

	tests := []struct {
		x, y int
		want board.Square
		ok   bool
	}{
		{0, 0, board.Sq(0, 0), true},
		{63, 63, board.Sq(0, 0), true},
		{64, 0, board.Sq(0, 1), true},
		{300, 400, board.Sq(6, 4), true},
		{511, 511, board.Sq(7, 7), true},
		{512, 10, board.Square{}, false},
		{10, 512, board.Square{}, false},
		{-1, 10, board.Square{}, false},
	}
	for _, tt := range tests {
		got, ok := g.SquareAt(tt.x, tt.y)
		if ok != tt.ok || got != tt.want {
			t.Errorf("SquareAt(%d,%d) = %v,%v want %v,%v", tt.x, tt.y, got, ok, tt.want, tt.ok)
		}
	}

	if x, y := g.SquareOrigin(board.Sq(6, 4)); x != 256 || y != 384 {
		t.Errorf("SquareOrigin(e2) = %d,%d want 256,384", x, y)
	}

	if _, ok := (Geometry{}).SquareAt(1, 1); ok {
		t.Error("zero geometry mapped a square")
	}
}

func TestSelection(t *testing.T) {
	t.Run("TwoClicks", func(t *testing.T) {
		var s Selection
		if _, _, ready := s.Click(board.Sq(6, 4)); ready {
			t.Fatal("ready after one click")
		}
		if sq, ok := s.Selected(); !ok || sq != board.Sq(6, 4) {
			t.Errorf("Selected = %v,%v", sq, ok)
		}
		start, end, ready := s.Click(board.Sq(4, 4))
		if !ready || start != board.Sq(6, 4) || end != board.Sq(4, 4) {
			t.Errorf("Click = %v,%v,%v", start, end, ready)
		}
		if s.Pending() != 0 {
			t.Errorf("Pending = %d after pair", s.Pending())
		}
		if _, ok := s.Selected(); ok {
			t.Error("selection kept after pair")
		}
	})

	t.Run("SameSquareDeselects", func(t *testing.T) {
		var s Selection
		s.Click(board.Sq(1, 1))
		if _, _, ready := s.Click(board.Sq(1, 1)); ready {
			t.Fatal("same square produced a move")
		}
		if s.Pending() != 0 {
			t.Errorf("Pending = %d, want 0", s.Pending())
		}

		// The next two clicks form a fresh pair.
		s.Click(board.Sq(1, 1))
		start, end, ready := s.Click(board.Sq(3, 1))
		if !ready || start != board.Sq(1, 1) || end != board.Sq(3, 1) {
			t.Errorf("Click = %v,%v,%v", start, end, ready)
		}
	})
}

type memStore struct {
	saved []*storage.Session
	err   error
}

func (m *memStore) SaveSession(sess *storage.Session) error {
	copied := *sess
	m.saved = append(m.saved, &copied)
	return m.err
}

func TestSessionClick(t *testing.T) {
	store := &memStore{}
	s := NewSession(store)

	if _, applied, err := s.Click(board.Sq(6, 4)); applied || err != nil {
		t.Fatalf("first click applied=%v err=%v", applied, err)
	}
	m, applied, err := s.Click(board.Sq(4, 4))
	if err != nil || !applied {
		t.Fatalf("second click applied=%v err=%v", applied, err)
	}
	if m.Notation() != "e2e4" {
		t.Errorf("notation = %s, want e2e4", m.Notation())
	}
	if p, _ := s.Board().PieceAt(board.Sq(4, 4)); p != board.WhitePawn {
		t.Errorf("e4 = %s, want wp", p)
	}

	if len(store.saved) != 1 {
		t.Fatalf("saved %d snapshots, want 1", len(store.saved))
	}
	if store.saved[0].Moves != 1 || store.saved[0].Grid != s.Board().Grid() {
		t.Errorf("snapshot does not match board")
	}
}

func TestSessionOutOfBounds(t *testing.T) {
	s := NewSession(nil)
	before := s.Board().Grid()

	if _, _, err := s.Click(board.Sq(8, 0)); !errors.Is(err, board.ErrOutOfBounds) {
		t.Errorf("Click err = %v, want ErrOutOfBounds", err)
	}
	if _, err := s.Play(board.Sq(3, 3), board.Sq(-1, 3)); !errors.Is(err, board.ErrOutOfBounds) {
		t.Errorf("Play err = %v, want ErrOutOfBounds", err)
	}
	if s.Board().Grid() != before {
		t.Error("grid changed after rejected input")
	}
}

func TestSessionPermissive(t *testing.T) {
	s := NewSession(nil)
	// Black moves first and captures its own pawn.
	if _, err := s.Play(board.Sq(0, 1), board.Sq(1, 1)); err != nil {
		t.Fatal(err)
	}
	if p, _ := s.Board().PieceAt(board.Sq(1, 1)); p != board.BlackKnight {
		t.Errorf("b7 = %s, want bN", p)
	}
}

func TestSessionSaveFailureKeepsPlaying(t *testing.T) {
	s := NewSession(&memStore{err: errors.New("disk full")})
	if _, err := s.Play(board.Sq(6, 0), board.Sq(5, 0)); err != nil {
		t.Fatalf("Play failed on store error: %v", err)
	}
}

func TestResumeAndReset(t *testing.T) {
	s := NewSession(nil)
	if _, err := s.Play(board.Sq(6, 4), board.Sq(4, 4)); err != nil {
		t.Fatal(err)
	}

	resumed, err := ResumeSession(nil, s.Record())
	if err != nil {
		t.Fatal(err)
	}
	if resumed.Board().Grid() != s.Board().Grid() {
		t.Error("resumed board differs")
	}
	if resumed.Record().ID != s.Record().ID {
		t.Error("resumed session got a new ID")
	}

	id := resumed.Record().ID
	resumed.Reset()
	if resumed.Board().Grid() != board.New().Grid() {
		t.Error("reset did not restore the starting position")
	}
	if resumed.Record().ID == id {
		t.Error("reset kept the old session ID")
	}
}

func TestOpen(t *testing.T) {
	if s := Open(nil, true); s.Board().Grid() != board.New().Grid() {
		t.Error("Open(nil) did not start from the initial board")
	}

	store, err := storage.NewMemoryStorage()
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	// Nothing stored yet: resume falls back to a new session.
	first := Open(store, true)
	if _, err := first.Play(board.Sq(6, 3), board.Sq(4, 3)); err != nil {
		t.Fatal(err)
	}

	resumed := Open(store, true)
	if resumed.Record().ID != first.Record().ID {
		t.Errorf("resumed ID = %s, want %s", resumed.Record().ID, first.Record().ID)
	}
	if p, _ := resumed.Board().PieceAt(board.Sq(4, 3)); p != board.WhitePawn {
		t.Errorf("d4 = %s, want wp", p)
	}

	fresh := Open(store, false)
	if fresh.Record().ID == first.Record().ID {
		t.Error("Open without resume reused the stored session")
	}
}
