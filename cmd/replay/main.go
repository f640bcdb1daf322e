// Command replay runs a level headless from a move script and reports how it ends
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lixenwraith/rockfall/core"
	"github.com/lixenwraith/rockfall/engine"
	"github.com/lixenwraith/rockfall/level"
)

// Exit codes
const (
	exitComplete = 0
	exitDead     = 1
	exitOther    = 2
)

// settleLimit bounds the ticks spent after one intent
const settleLimit = 10000

var scriptMoves = map[rune]core.Direction{
	'U': core.DirUp,
	'D': core.DirDown,
	'L': core.DirLeft,
	'R': core.DirRight,
	'.': core.DirNone,
}

func main() {
	levelFlag := flag.Int("level", 1, "Level number")
	levelsFlag := flag.String("levels", "", "Directory of screen.N.txt files, default is the bundled levels")
	shareFlag := flag.String("share", "", "Play a share string instead of a level file")
	movesFlag := flag.String("moves", "", "Move script: U D L R, '.' stays put")
	strictFlag := flag.Bool("strict", false, "Panic on interactions missing from the rule table")
	flag.Parse()

	var src level.Source = level.Embedded()
	switch {
	case *shareFlag != "":
		src = shareSource(level.DecodeShare(*shareFlag))
	case *levelsFlag != "":
		src = level.NewDirSource(*levelsFlag)
	}

	code, err := replay(os.Stdout, src, *levelFlag, *movesFlag, *strictFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		os.Exit(exitOther)
	}
	os.Exit(code)
}

// shareSource serves a single decoded level under every number
type shareSource string

func (s shareSource) Load(n int) (*level.Level, error) {
	l, err := level.ParseString(string(s))
	if err != nil {
		return nil, err
	}
	l.Number = n
	return l, nil
}

func (s shareSource) Count() int { return 1 }

// replay plays script on level n of src, writing a line per intent and a final summary
func replay(out io.Writer, src level.Source, n int, script string, strict bool) (int, error) {
	rec := engine.NewRecorder()
	session := engine.NewSession(src, engine.Options{Strict: strict}, rec.Sinks())
	if err := session.Start(n); err != nil {
		return exitOther, err
	}
	w := session.World()
	fmt.Fprintf(out, "level %d %q: %d diamonds\n", n, session.Level().Title, w.DiamondsTarget())

	for i, r := range script {
		dir, ok := scriptMoves[r]
		if !ok {
			return exitOther, fmt.Errorf("move %d: unknown move %q", i+1, r)
		}

		if w.Held() && w.Pending() == engine.FollowUpDismiss {
			f, err := session.Acknowledge()
			if err != nil {
				return exitOther, fmt.Errorf("move %d: acknowledge %s: %w", i+1, f, err)
			}
			fmt.Fprintf(out, "%3d %c acknowledged %s\n", i+1, r, f)
		}

		rec.Reset()
		if err := session.Submit(dir); err != nil {
			fmt.Fprintf(out, "%3d %c refused: %v\n", i+1, r, err)
			if errors.Is(err, engine.ErrDead) || errors.Is(err, engine.ErrComplete) {
				break
			}
			continue
		}
		phases := settle(session)
		fmt.Fprintf(out, "%3d %c %s%s\n", i+1, r, phases, describeMessages(rec))
		if w.PlayerDead() || w.LevelComplete() {
			break
		}
	}

	return summarize(out, w), nil
}

// settle ticks until the world is quiet and returns the phases run, run-length encoded
func settle(s *engine.Session) string {
	var (
		parts []string
		last  engine.Phase
		count int
	)
	flush := func() {
		if count == 0 {
			return
		}
		if count == 1 {
			parts = append(parts, last.String())
		} else {
			parts = append(parts, fmt.Sprintf("%s x%d", last, count))
		}
	}

	for i := 0; i < settleLimit && s.World().Busy(); i++ {
		p := s.Tick()
		if p != last {
			flush()
			last, count = p, 0
		}
		count++
	}
	flush()
	if len(parts) == 0 {
		return "idle"
	}
	return strings.Join(parts, ", ")
}

func describeMessages(rec *engine.Recorder) string {
	var sb strings.Builder
	for _, m := range rec.Messages {
		fmt.Fprintf(&sb, " [%s -> %s]", m.Text, m.FollowUp)
	}
	return sb.String()
}

func summarize(out io.Writer, w *engine.World) int {
	moves := "unlimited"
	if m := w.MovesRemaining(); m >= 0 {
		moves = fmt.Sprint(m)
	}
	switch {
	case w.LevelComplete():
		fmt.Fprintf(out, "complete after %d ticks\n", w.Ticks())
		return exitComplete
	case w.PlayerDead():
		fmt.Fprintf(out, "dead after %d ticks\n", w.Ticks())
		return exitDead
	}
	fmt.Fprintf(out, "in play: %d diamonds remaining, %s moves left\n", w.DiamondsRemaining(), moves)
	return exitOther
}
