package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/rubik"
)

// Report is the serializable form of an analysis.
type Report struct {
	Sequence string        `yaml:"sequence"`
	Solved   bool          `yaml:"solved"`
	Phase    string        `yaml:"phase"`
	Progress float64       `yaml:"progress"`
	Layers   LayerReport   `yaml:"layers"`
	Crosses  CrossReport   `yaml:"crosses"`
	Edges    []PieceReport `yaml:"edges"`
	Corners  []PieceReport `yaml:"corners"`
}

type LayerReport struct {
	White  bool `yaml:"white"`
	Middle bool `yaml:"middle"`
	Yellow bool `yaml:"yellow"`
}

type CrossReport struct {
	White  bool `yaml:"white"`
	Yellow bool `yaml:"yellow"`
}

type PieceReport struct {
	Slot       string `yaml:"slot"`
	Current    string `yaml:"current"`
	InPosition bool   `yaml:"in_position"`
	Oriented   bool   `yaml:"oriented"`
}

// NewReport converts an analysis into a Report.
func NewReport(sequence string, s rubik.Analysis) Report {
	r := Report{
		Sequence: sequence,
		Solved:   s.Solved,
		Phase:    s.Phase.String(),
		Progress: s.Progress,
		Layers:   LayerReport{White: s.Layers.White, Middle: s.Layers.Middle, Yellow: s.Layers.Yellow},
		Crosses:  CrossReport{White: s.Crosses.White, Yellow: s.Crosses.Yellow},
	}
	for _, st := range s.Edges {
		r.Edges = append(r.Edges, pieceReport(st))
	}
	for _, st := range s.Corners {
		r.Corners = append(r.Corners, pieceReport(st))
	}
	return r
}

func pieceReport(st rubik.PieceState) PieceReport {
	return PieceReport{
		Slot:       st.Code,
		Current:    colorCode(st.Current),
		InPosition: st.InPosition,
		Oriented:   st.CorrectlyOriented,
	}
}

func colorCode(colors []rubik.Color) string {
	var sb strings.Builder
	for _, c := range colors {
		sb.WriteString(c.String())
	}
	return sb.String()
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		asYAML bool
		pieces bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [moves...]",
		Short: "Analyze the cube after a move sequence",
		Long: `Apply a move sequence to a solved cube and report which layers and
crosses are complete, the solve phase, and the share of pieces that are
home and correctly oriented.`,
		Example: `  rubik analyze "F R U' R' F' R U R'"
  rubik analyze --pieces R U
  rubik analyze --yaml "R U R' U'"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seq := sequenceArg(args)
			c, _ := a.cubeFrom(seq)
			report := NewReport(seq, a.analyzer.Analyze(c))

			if asYAML {
				out, err := yaml.Marshal(report)
				if err != nil {
					return fmt.Errorf("encode report: %w", err)
				}
				a.print.Info("%s", out)
				return nil
			}

			a.printReport(c, report, pieces)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the report as YAML")
	cmd.Flags().BoolVar(&pieces, "pieces", false, "List every edge and corner slot")
	return cmd
}

func (a *app) printReport(c *rubik.Cube, r Report, pieces bool) {
	rd := a.render
	a.print.Info("%s\n\n", rd.Title("Cube Analysis"))
	a.print.Info("%s\n", a.drawCube(c))

	a.print.Info("%s %s\n", rd.Label("Solved:  "), rd.Check(r.Solved))
	a.print.Info("%s %s\n", rd.Label("Phase:   "), rd.Phase(c.DetectPhase()))
	a.print.Info("%s %.1f%%\n", rd.Label("Progress:"), r.Progress)
	a.print.Info("%s white %s  middle %s  yellow %s\n", rd.Label("Layers:  "),
		rd.Check(r.Layers.White), rd.Check(r.Layers.Middle), rd.Check(r.Layers.Yellow))
	a.print.Info("%s white %s  yellow %s\n", rd.Label("Crosses: "),
		rd.Check(r.Crosses.White), rd.Check(r.Crosses.Yellow))

	if !pieces {
		return
	}

	for _, group := range []struct {
		title  string
		pieces []PieceReport
	}{
		{"Edges", r.Edges},
		{"Corners", r.Corners},
	} {
		a.print.Info("\n%s\n", rd.Title(group.title))
		for _, p := range group.pieces {
			a.print.Info("  %-3s  holds %-3s  in place %s  oriented %s\n",
				p.Slot, p.Current, rd.Check(p.InPosition), rd.Check(p.Oriented))
		}
	}
}
