package main

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/rockfall/constant"
	"github.com/lixenwraith/rockfall/level"
)

func levelText(title, moves string, top ...string) string {
	rows := make([]string, constant.BoardHeight)
	for i := range rows {
		if i < len(top) {
			rows[i] = top[i]
		} else {
			rows[i] = strings.Repeat(" ", constant.BoardWidth)
		}
	}
	return strings.Join(rows, "\n") + "\n" + title + "\n" + moves + "\n"
}

func source(text string) level.Source {
	return level.NewFSSource(fstest.MapFS{"screen.1.txt": {Data: []byte(text)}}, "test")
}

func TestReplay_Outcomes(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		script string
		code   int
		want   string
	}{
		{"complete", levelText("Out", "0", "@X"), "R", exitComplete, "complete after"},
		{"dead", levelText("Burn", "0", "@!"), "R", exitDead, "dead after"},
		{"in play", levelText("Stay", "5", "@ *"), "R.", exitOther, "1 diamonds remaining, 3 moves left"},
		{"unlimited", levelText("Stay", "0", "@"), "L", exitOther, "unlimited moves"},
		{"blocked exit dismissed", levelText("Shut", "0", "@X*"), "RR", exitOther, "1 diamonds remaining"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			code, err := replay(&out, source(tt.text), 1, tt.script, true)
			require.NoError(t, err)
			assert.Equal(t, tt.code, code)
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestReplay_StopsAfterDeath(t *testing.T) {
	var out bytes.Buffer
	code, err := replay(&out, source(levelText("Burn", "0", "@!")), 1, "RRRR", false)
	require.NoError(t, err)
	assert.Equal(t, exitDead, code)
	assert.NotContains(t, out.String(), "  2 R")
	assert.Contains(t, out.String(), "You were killed by an exploding landmine!")
}

func TestReplay_FallingBoulderPhases(t *testing.T) {
	var out bytes.Buffer
	text := levelText("Drop", "0", "O", ":@")
	code, err := replay(&out, source(text), 1, "LR", true)
	require.NoError(t, err)
	assert.Equal(t, exitOther, code)
	assert.Contains(t, out.String(), "propel x")
}

func TestReplay_Errors(t *testing.T) {
	var out bytes.Buffer
	_, err := replay(&out, source(levelText("Out", "0", "@X")), 1, "RZ", true)
	assert.ErrorContains(t, err, "unknown move")

	_, err = replay(&out, source(levelText("Out", "0", "@X")), 7, "R", true)
	assert.ErrorIs(t, err, level.ErrNotFound)
}

func TestReplay_ShareString(t *testing.T) {
	l, err := level.ParseString(levelText("Shared", "0", "@X"))
	require.NoError(t, err)

	var out bytes.Buffer
	code, err := replay(&out, shareSource(level.DecodeShare(level.EncodeShare(l))), 1, "R", true)
	require.NoError(t, err)
	assert.Equal(t, exitComplete, code)
	assert.Contains(t, out.String(), `"Shared"`)
}

func TestReplay_AcknowledgesBlockedExit(t *testing.T) {
	var out bytes.Buffer
	code, err := replay(&out, source(levelText("Shut", "0", "@X*")), 1, "R.", true)
	require.NoError(t, err)
	assert.Equal(t, exitOther, code)

	lines := out.String()
	assert.Contains(t, lines, "  2 . acknowledged dismiss")
	assert.NotContains(t, lines, "refused", "the hold is released before the next intent")
	assert.Equal(t, 1, strings.Count(lines, "acknowledged"))
}
