// Package level reads the textual level format: sixteen grid rows, top row first,
// followed by a title line and a move budget line
package level

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lixenwraith/rockfall/constant"
)

var (
	ErrShortLevel  = errors.New("level: fewer than 18 lines")
	ErrBadTrailer  = errors.New("level: move budget is not a non-negative integer")
	ErrNoPlayer    = errors.New("level: no player")
	ErrManyPlayers = errors.New("level: more than one player")
	ErrNotFound    = errors.New("level: not found")
)

// trailer lines after the grid
const (
	titleLine  = constant.BoardHeight
	budgetLine = constant.BoardHeight + 1
)

// Level is a parsed level description
type Level struct {
	Number int
	Title  string
	Moves  int // as authored, 0 means unlimited
	Rows   [constant.BoardHeight]string
}

// Parse reads a level from r
func Parse(r io.Reader) (*Level, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("level: read: %w", err)
	}
	if len(lines) <= budgetLine {
		return nil, fmt.Errorf("%w: got %d", ErrShortLevel, len(lines))
	}

	l := &Level{Title: lines[titleLine]}
	copy(l.Rows[:], lines[:constant.BoardHeight])

	raw := strings.TrimSpace(lines[budgetLine])
	moves, err := strconv.Atoi(raw)
	if err != nil || moves < 0 {
		return nil, fmt.Errorf("%w: %q", ErrBadTrailer, raw)
	}
	l.Moves = moves
	return l, nil
}

// ParseString parses a level held in memory
func ParseString(s string) (*Level, error) {
	return Parse(strings.NewReader(s))
}

// Budget returns the playable move budget, unlimited levels get the sentinel
func (l *Level) Budget() int {
	if l.Moves == 0 {
		return constant.UnlimitedMoves
	}
	return l.Moves
}

// String renders the level back to its text form
func (l *Level) String() string {
	var sb strings.Builder
	for _, row := range l.Rows {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	sb.WriteString(l.Title)
	sb.WriteByte('\n')
	sb.WriteString(strconv.Itoa(l.Moves))
	sb.WriteByte('\n')
	return sb.String()
}
