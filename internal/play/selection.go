package play

import "github.com/hailam/clickboard/internal/board"

// Selection accumulates two clicked squares.
// Clicking the selected square again clears the buffer.
type Selection struct {
	selected    board.Square
	hasSelected bool
	clicks      []board.Square
}

// Click records a click on sq. Once two squares have been collected it
// returns them with ready set and the buffer is cleared.
func (s *Selection) Click(sq board.Square) (start, end board.Square, ready bool) {
	if s.hasSelected && s.selected == sq {
		s.Clear()
		return board.Square{}, board.Square{}, false
	}

	s.selected = sq
	s.hasSelected = true
	s.clicks = append(s.clicks, sq)

	if len(s.clicks) == 2 {
		start, end = s.clicks[0], s.clicks[1]
		s.Clear()
		return start, end, true
	}
	return board.Square{}, board.Square{}, false
}

// Selected returns the last clicked square, if any.
func (s *Selection) Selected() (board.Square, bool) {
	return s.selected, s.hasSelected
}

// Pending returns how many clicks are buffered.
func (s *Selection) Pending() int {
	return len(s.clicks)
}

// Clear drops any buffered clicks.
func (s *Selection) Clear() {
	s.selected = board.Square{}
	s.hasSelected = false
	s.clicks = s.clicks[:0]
}
