// Package grapheme truncates display strings on grapheme cluster boundaries.
package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Width returns the terminal cell width of text.
func Width(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	w := 0
	for g.Next() {
		w += clusterWidth(g.Str())
	}
	return w
}

// Truncate shortens text to at most maxCells terminal cells, appending tail
// when something was cut. Clusters are never split. A maxCells <= 0 yields "".
func Truncate(text string, maxCells int, tail string) string {
	if maxCells <= 0 || text == "" {
		return ""
	}
	if Width(text) <= maxCells {
		return text
	}

	tailW := Width(tail)
	if tailW >= maxCells {
		tail, tailW = "", 0
	}
	limit := maxCells - tailW

	g := uniseg.NewGraphemes(text)
	var sb strings.Builder
	w := 0
	for g.Next() {
		cw := clusterWidth(g.Str())
		if w+cw > limit {
			break
		}
		sb.WriteString(g.Str())
		w += cw
	}
	sb.WriteString(tail)
	return sb.String()
}

func clusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w > 2 {
		// Emoji sequences report the sum of their runes; terminals draw two cells.
		return 2
	}
	return w
}
