package ui

import "strings"

const glyphRows = 5

var glyphs = map[rune][glyphRows]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {"  █", "  █", "  █", "  █", "  █"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {" ", "█", " ", "█", " "},
	'.': {" ", " ", " ", " ", "█"},
}

// bigText renders s in block glyphs, one space between characters.
// Characters without a glyph are left blank.
func bigText(s string) string {
	var rows [glyphRows]strings.Builder
	for i, r := range s {
		g, ok := glyphs[r]
		if !ok {
			g = [glyphRows]string{" ", " ", " ", " ", " "}
		}
		for row := range rows {
			if i > 0 {
				rows[row].WriteByte(' ')
			}
			rows[row].WriteString(g[row])
		}
	}

	lines := make([]string, glyphRows)
	for row := range rows {
		lines[row] = rows[row].String()
	}
	return strings.Join(lines, "\n")
}
