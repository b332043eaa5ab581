package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rubik"
	"github.com/SeamusWaldron/rubik/internal/notation"
)

// sequenceArg joins positional arguments so both `apply "R U"` and
// `apply R U` work.
func sequenceArg(args []string) string {
	return strings.Join(args, " ")
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [moves...]",
		Short: "Show the cube after a move sequence",
		Long: `Apply a move sequence to a solved cube and print the result.
With no moves the solved cube is shown.`,
		Example: `  rubik show
  rubik show "R U R' U'"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _ := a.cubeFrom(sequenceArg(args))
			a.print.Info("%s", a.drawCube(c))
			return nil
		},
	}
}

func newApplyCmd(a *app) *cobra.Command {
	var (
		strict bool
		spoken bool
	)

	cmd := &cobra.Command{
		Use:   "apply <moves...>",
		Short: "Apply a move sequence and summarize the result",
		Long: `Apply a move sequence to a solved cube, print the cube and report
whether it is solved.

Unknown tokens are skipped with a warning unless --strict is set.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq := sequenceArg(args)

			if bad := notation.Validate(seq); strict && len(bad) > 0 {
				return a.print.Error(
					"Invalid move sequence",
					fmt.Sprintf("%d token(s) are not moves: %s", len(bad), joinTokens(bad)),
					[]string{"Use U D F B R L with an optional ' or 2"},
				)
			}

			c, applied := a.cubeFrom(seq)
			a.print.Info("%s\n", a.drawCube(c))

			if spoken {
				moves, _ := rubik.ParseMoves(seq)
				a.print.Info("%s\n\n", notation.SpokenSequence(moves))
			}

			a.print.Success("Applied %d move(s)\n", applied)
			if c.IsSolved() {
				a.print.Success("Cube is solved\n")
			} else {
				a.print.Info("Phase: %s\n", a.render.Phase(c.DetectPhase()))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on unknown tokens instead of skipping them")
	cmd.Flags().BoolVar(&spoken, "spoken", false, "Also print the sequence in plain language")
	return cmd
}

func newInvertCmd(a *app) *cobra.Command {
	var simplify bool

	cmd := &cobra.Command{
		Use:   "invert <moves...>",
		Short: "Print the sequence that undoes a move sequence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			moves, err := rubik.ParseMoves(sequenceArg(args))
			if err != nil {
				for _, e := range notation.Validate(sequenceArg(args)) {
					a.print.Warning("skipped %q at position %d\n", e.Token, e.Index)
				}
			}

			inv := notation.Invert(moves)
			if simplify {
				inv = notation.Simplify(inv)
			}
			a.print.Println(rubik.FormatMoves(inv))
			return nil
		},
	}

	cmd.Flags().BoolVar(&simplify, "simplify", false, "Merge and cancel adjacent same-face turns")
	return cmd
}

func newSimplifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "simplify <moves...>",
		Short: "Merge adjacent same-face turns and drop cancellations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			moves, _ := rubik.ParseMoves(sequenceArg(args))
			a.print.Println(rubik.FormatMoves(notation.Simplify(moves)))
			return nil
		},
	}
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <moves...>",
		Short: "Check that every token is a move",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq := sequenceArg(args)
			bad := notation.Validate(seq)
			if len(bad) == 0 {
				a.print.Success("%d move(s) valid\n", len(strings.Fields(seq)))
				return nil
			}

			a.log.WithError(notation.Errors(bad)).Debug("validation failed")
			return a.print.Error(
				"Invalid move sequence",
				fmt.Sprintf("%d token(s) are not moves: %s", len(bad), joinTokens(bad)),
				[]string{"Use U D F B R L with an optional ' or 2"},
			)
		},
	}
}

func joinTokens(bad []*rubik.MoveError) string {
	parts := make([]string, len(bad))
	for i, e := range bad {
		parts[i] = fmt.Sprintf("%q (position %d)", e.Token, e.Index)
	}
	return strings.Join(parts, ", ")
}
