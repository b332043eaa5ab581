// Package render draws cube states and analysis headings for the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/rubik"
)

// Background colors per facelet color, indexed by rubik.Color.
var palette = [rubik.NumColors]lipgloss.Color{
	rubik.White:  lipgloss.Color("15"),
	rubik.Yellow: lipgloss.Color("11"),
	rubik.Red:    lipgloss.Color("9"),
	rubik.Orange: lipgloss.Color("208"),
	rubik.Blue:   lipgloss.Color("12"),
	rubik.Green:  lipgloss.Color("10"),
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("82"))

	badStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// Renderer draws cubes either with lipgloss styles or as plain text.
type Renderer struct {
	color    bool
	facelets [rubik.NumColors]lipgloss.Style
}

// New returns a renderer. With color off every method returns plain text.
func New(color bool) *Renderer {
	r := &Renderer{color: color}
	for i, bg := range palette {
		r.facelets[i] = lipgloss.NewStyle().
			Background(bg).
			Foreground(lipgloss.Color("0"))
	}
	return r
}

// Facelet renders one facelet as a three-cell block.
func (r *Renderer) Facelet(c rubik.Color) string {
	cell := " " + c.String() + " "
	if !r.color || c >= rubik.NumColors {
		return cell
	}
	return r.facelets[c].Render(cell)
}

// Net renders the cube as an unfolded net: Up on top, then Left Front Right
// Back, then Down.
func (r *Renderer) Net(c *rubik.Cube) string {
	var sb strings.Builder
	indent := strings.Repeat(" ", 9)

	writeRow := func(face rubik.Face, row int) {
		for col := 0; col < 3; col++ {
			sb.WriteString(r.Facelet(c.Facelet(face, row, col)))
		}
	}

	for row := 0; row < 3; row++ {
		sb.WriteString(indent)
		writeRow(rubik.Up, row)
		sb.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		for _, face := range []rubik.Face{rubik.Left, rubik.Front, rubik.Right, rubik.Back} {
			writeRow(face, row)
		}
		sb.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		sb.WriteString(indent)
		writeRow(rubik.Down, row)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Compact renders one line per face in enumeration order, e.g. "U: YYYYYYYYY".
func (r *Renderer) Compact(c *rubik.Cube) string {
	var sb strings.Builder
	for face := rubik.Face(0); face < rubik.NumFaces; face++ {
		sb.WriteString(face.String())
		sb.WriteString(": ")
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				sb.WriteString(c.Facelet(face, row, col).String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Title renders a heading.
func (r *Renderer) Title(s string) string {
	return r.style(titleStyle, s)
}

// Label renders a dimmed field label.
func (r *Renderer) Label(s string) string {
	return r.style(labelStyle, s)
}

// Phase renders a phase name.
func (r *Renderer) Phase(p rubik.Phase) string {
	return r.style(phaseStyle, p.DisplayName())
}

// Check renders a boolean as a mark.
func (r *Renderer) Check(ok bool) string {
	if ok {
		return r.style(okStyle, "yes")
	}
	return r.style(badStyle, "no")
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}
