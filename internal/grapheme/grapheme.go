// Package grapheme turns host strings into the atomic units the layout
// package indexes, and measures how many terminal cells a unit takes.
package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Join concatenates clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// Index returns the position of the first cluster equal to target, or -1.
func Index(clusters []string, target string) int {
	for i, c := range clusters {
		if c == target {
			return i
		}
	}
	return -1
}

// Remove returns clusters without the element at i.
func Remove(clusters []string, i int) []string {
	out := make([]string, 0, len(clusters))
	out = append(out, clusters[:i]...)
	return append(out, clusters[i+1:]...)
}

// Insert returns clusters with c inserted before index i.
func Insert(clusters []string, i int, c string) []string {
	out := make([]string, 0, len(clusters)+1)
	out = append(out, clusters[:i]...)
	out = append(out, c)
	return append(out, clusters[i:]...)
}

// Repeat returns n copies of c.
func Repeat(c string, n int) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = c
	}
	return out
}

// Width returns the terminal cell width of a cluster. Zero-width results from
// runewidth fall back to uniseg, which knows about emoji sequences.
func Width(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w == 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		w = 0
	}
	return w
}

// Cells returns the total cell width of clusters.
func Cells(clusters []string) int {
	n := 0
	for _, c := range clusters {
		n += Width(c)
	}
	return n
}
