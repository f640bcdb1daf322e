package level

import (
	"strconv"
	"strings"

	"github.com/lixenwraith/rockfall/constant"
)

// share link alphabet, URL safe stand-ins for the grid symbols
var shareToGrid = map[rune]rune{
	'p': '@',
	'.': ' ',
	'h': '-',
	'w': '=',
	'l': '#',
	'f': '/',
	'r': '\\',
	'o': 'O',
	'd': '*',
	't': ':',
	'a': '<',
	'e': '>',
	'i': '!',
	'b': '^',
	'n': 'T',
	'u': 'A',
	'x': 'X',
	'm': 'C',
	'y': 'S',
	'g': 'M',
	'c': '+',
	'q': 'B',
	'~': '\n',
}

var gridToShare = func() map[rune]rune {
	out := make(map[rune]rune, len(shareToGrid))
	for s, g := range shareToGrid {
		out[g] = s
	}
	// '-' and ' ' are both empty, prefer the compact form
	out[' '] = '.'
	return out
}()

// DecodeShare turns a share string into level text
// Only the grid part is translated; unknown grid characters are dropped and the
// trailer is kept as is, with '~' or ';' standing for line breaks
func DecodeShare(s string) string {
	var sb strings.Builder
	for i, r := range []rune(s) {
		if i < constant.ShareGridLength {
			if g, ok := shareToGrid[r]; ok {
				sb.WriteRune(g)
			}
			continue
		}
		switch r {
		case '~', ';':
			sb.WriteByte('\n')
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// EncodeShare produces the share string for a level
func EncodeShare(l *Level) string {
	var sb strings.Builder
	for _, row := range l.Rows {
		runes := []rune(row)
		for x := 0; x < constant.BoardWidth; x++ {
			r := ' '
			if x < len(runes) {
				r = runes[x]
			}
			s, ok := gridToShare[r]
			if !ok {
				s = '.'
			}
			sb.WriteRune(s)
		}
		sb.WriteByte('~')
	}
	sb.WriteString(l.Title)
	sb.WriteByte('~')
	sb.WriteString(strconv.Itoa(l.Moves))
	return sb.String()
}
