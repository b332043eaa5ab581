package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rubik"
)

func newFindCmd(a *app) *cobra.Command {
	var moves string

	cmd := &cobra.Command{
		Use:   "find <edge|corner> <colors>",
		Short: "Locate a piece by its colors",
		Long: `Locate an edge or corner by its colors, given as letters in any order
(W Y R O B G), on the cube produced by --moves.`,
		Example: `  rubik find edge WR
  rubik find corner WRB --moves "R U"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := rubik.ParsePieceKind(args[0])
			if err != nil {
				return a.print.Error("Unknown piece kind", err.Error(), []string{"Use edge or corner"})
			}

			c, _ := a.cubeFrom(moves)
			loc, ok, err := a.analyzer.FindPieceByCode(c, kind, args[1])
			if err != nil {
				return a.print.Error("Invalid colors", err.Error(), []string{"Use the letters W Y R O B G"})
			}
			if !ok {
				return a.print.Error(
					"Piece not found",
					fmt.Sprintf("No %s carries the colors %s", kind, args[1]),
					[]string{fmt.Sprintf("A %s has %d distinct colors from adjacent faces", kind, kind.Size())},
				)
			}

			a.log.WithFields(map[string]any{
				"piece": loc.Piece,
				"slot":  loc.Slot,
			}).Debug("piece located")

			a.print.Info("%s %s\n", a.render.Label("Piece:      "), loc.Piece)
			a.print.Info("%s %s (%s layer)\n", a.render.Label("Slot:       "), loc.Slot, loc.Location)
			a.print.Info("%s %s\n", a.render.Label("Colors:     "), colorCode(loc.Colors))
			a.print.Info("%s %s\n", a.render.Label("Oriented:   "), a.render.Check(loc.CorrectlyOriented))
			if kind == rubik.Corner {
				a.print.Info("%s %s\n", a.render.Label("Orientation:"), loc.Orientation)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&moves, "moves", "m", "", "Move sequence applied to a solved cube first")
	return cmd
}
