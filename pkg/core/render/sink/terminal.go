package sink

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/wordstorm/pkg/core/cloud"
	"github.com/matzehuels/wordstorm/pkg/core/cloud/motion"
)

const (
	termBoldRanks   = 3    // ranks drawn bold in static output
	termFaintBelow  = 0.5  // frame opacity drawn faint
	termHiddenBelow = 0.05 // frame opacity not drawn at all
)

// termWord is one word projected onto the character grid.
type termWord struct {
	text  string
	color string
	x, y  float64
	bold  bool
	faint bool
}

// RenderTerminal draws the layout on a cols x rows character grid. Words are
// drawn horizontally in placement order; a word whose cells are taken is
// moved one row up or down, and dropped if neither fits.
func RenderTerminal(l cloud.Layout, cols, rows int) string {
	words := make([]termWord, 0, len(l.Words))
	for _, p := range l.Words {
		words = append(words, termWord{
			text:  p.Text,
			color: p.Color,
			x:     p.X,
			y:     p.Y,
			bold:  p.Rank < termBoldRanks,
		})
	}
	return paint(words, l.Width, l.Height, cols, rows)
}

// RenderTerminalFrame draws one animation frame. Words still fading in are
// drawn faint; invisible ones are skipped.
func RenderTerminalFrame(poses []motion.Pose, width, height float64, cols, rows int) string {
	var maxSize float64
	for _, p := range poses {
		maxSize = max(maxSize, p.FontSize)
	}
	words := make([]termWord, 0, len(poses))
	for _, p := range poses {
		if p.Opacity < termHiddenBelow {
			continue
		}
		words = append(words, termWord{
			text:  p.Text,
			color: p.Color,
			x:     p.X,
			y:     p.Y,
			bold:  p.FontSize >= 0.75*maxSize,
			faint: p.Opacity < termFaintBelow,
		})
	}
	return paint(words, width, height, cols, rows)
}

func paint(words []termWord, width, height float64, cols, rows int) string {
	if cols <= 0 || rows <= 0 || width <= 0 || height <= 0 {
		return ""
	}

	owner := make([]int, cols*rows)
	for i := range owner {
		owner[i] = -1
	}
	glyphs := make([]string, cols*rows)

	for i, w := range words {
		tw := runewidth.StringWidth(w.text)
		if tw == 0 || tw > cols {
			continue
		}
		col := clampInt(int(w.x/width*float64(cols))-tw/2, 0, cols-tw)
		row := clampInt(int(w.y/height*float64(rows)), 0, rows-1)
		for _, r := range []int{row, row - 1, row + 1} {
			if r < 0 || r >= rows || !free(owner, r*cols+col, tw) {
				continue
			}
			stamp(owner, glyphs, r*cols+col, i, w.text)
			break
		}
	}

	looks := make([]lipgloss.Style, len(words))
	for i, w := range words {
		s := lipgloss.NewStyle().Bold(w.bold).Faint(w.faint)
		if w.color != "" {
			s = s.Foreground(lipgloss.Color(w.color))
		}
		looks[i] = s
	}

	var out strings.Builder
	for r := range rows {
		line := owner[r*cols : (r+1)*cols]
		for c := 0; c < cols; {
			o := line[c]
			if o < 0 {
				out.WriteByte(' ')
				c++
				continue
			}
			var run strings.Builder
			for c < cols && line[c] == o {
				run.WriteString(glyphs[r*cols+c])
				c++
			}
			out.WriteString(looks[o].Render(run.String()))
		}
		if r < rows-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func free(owner []int, at, n int) bool {
	for i := at; i < at+n; i++ {
		if owner[i] >= 0 {
			return false
		}
	}
	return true
}

// stamp writes text into the grid; the trailing cell of a wide rune keeps an
// empty glyph so the rendered row stays cols cells wide.
func stamp(owner []int, glyphs []string, at, id int, text string) {
	i := at
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			glyphs[max(at, i-1)] += string(r)
			continue
		}
		owner[i] = id
		glyphs[i] = string(r)
		for j := 1; j < rw; j++ {
			owner[i+j] = id
		}
		i += rw
	}
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
