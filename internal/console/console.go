// Package console drives a board from text commands, one per line.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/hailam/clickboard/internal/board"
	"github.com/hailam/clickboard/internal/play"
)

// Console reads commands from in and writes replies to out.
//
// Commands:
//   - click <row> <col> | click <square>
//   - move <from><to>   | move <from> <to>
//   - board | d
//   - reset
//   - quit
type Console struct {
	session *play.Session
	in      io.Reader
	out     io.Writer

	white, black, empty, selected *color.Color
}

// New creates a console over session. When colors is false output is plain text.
func New(session *play.Session, in io.Reader, out io.Writer, colors bool) *Console {
	c := &Console{
		session:  session,
		in:       in,
		out:      out,
		white:    color.New(color.FgHiWhite, color.Bold),
		black:    color.New(color.FgHiRed, color.Bold),
		empty:    color.New(color.FgHiBlack),
		selected: color.New(color.BgYellow, color.FgBlack),
	}
	for _, col := range []*color.Color{c.white, c.black, c.empty, c.selected} {
		if colors {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	return c
}

// Run processes commands until quit or end of input.
func (c *Console) Run() error {
	scanner := bufio.NewScanner(c.in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		var err error
		switch cmd {
		case "click":
			err = c.handleClick(args)
		case "move":
			err = c.handleMove(args)
		case "board", "d":
			c.printBoard()
		case "reset":
			c.session.Reset()
			fmt.Fprintln(c.out, "ok")
		case "quit":
			return nil
		default:
			err = fmt.Errorf("unknown command %q", cmd)
		}
		if err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
	}

	return scanner.Err()
}

func (c *Console) handleClick(args []string) error {
	sq, err := parseClick(args)
	if err != nil {
		return err
	}

	m, applied, err := c.session.Click(sq)
	if err != nil {
		return err
	}
	if applied {
		fmt.Fprintln(c.out, m.Notation())
		return nil
	}

	if sel, ok := c.session.Selected(); ok {
		fmt.Fprintf(c.out, "selected %s\n", sel)
	} else {
		fmt.Fprintln(c.out, "cleared")
	}
	return nil
}

func (c *Console) handleMove(args []string) error {
	joined := strings.Join(args, "")
	if len(joined) != 4 {
		return fmt.Errorf("move wants two squares, e.g. e2e4")
	}
	start, err := board.ParseSquare(joined[:2])
	if err != nil {
		return err
	}
	end, err := board.ParseSquare(joined[2:])
	if err != nil {
		return err
	}

	m, err := c.session.Play(start, end)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, m.Notation())
	return nil
}

// parseClick accepts either "<row> <col>" or a single square label.
func parseClick(args []string) (board.Square, error) {
	switch len(args) {
	case 1:
		return board.ParseSquare(args[0])
	case 2:
		row, err := strconv.Atoi(args[0])
		if err != nil {
			return board.Square{}, fmt.Errorf("row %q: %w", args[0], err)
		}
		col, err := strconv.Atoi(args[1])
		if err != nil {
			return board.Square{}, fmt.Errorf("col %q: %w", args[1], err)
		}
		return board.Sq(row, col), nil
	default:
		return board.Square{}, fmt.Errorf("click wants <row> <col> or a square")
	}
}

// printBoard writes the grid with white and black pieces in distinct colors.
func (c *Console) printBoard() {
	grid := c.session.Board().Grid()
	sel, hasSel := c.session.Selected()

	for row := range grid {
		fmt.Fprintf(c.out, "%d  ", board.Size-row)
		for col, piece := range grid[row] {
			if col > 0 {
				fmt.Fprint(c.out, " ")
			}
			style := c.empty
			switch piece.Color() {
			case board.White:
				style = c.white
			case board.Black:
				style = c.black
			}
			if hasSel && sel == board.Sq(row, col) {
				style = c.selected
			}
			style.Fprint(c.out, piece.String())
		}
		fmt.Fprintln(c.out)
	}
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "   a  b  c  d  e  f  g  h")
}
