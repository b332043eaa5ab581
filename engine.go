package rubik

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
)

// ApplyMove applies a single move to the cube. Invalid moves are ignored.
func (c *Cube) ApplyMove(m Move) {
	if !m.Valid() {
		return
	}
	c.permute(&movePerms[m.Face][m.Turn.quarters()])
}

// Apply applies moves in order.
func (c *Cube) Apply(moves ...Move) {
	for _, m := range moves {
		c.ApplyMove(m)
	}
}

// ApplyMoves applies a sequence of moves to the cube.
func (c *Cube) ApplyMoves(moves []Move) {
	c.Apply(moves...)
}

// ApplyToken parses and applies one notation token such as "R'" or "U2".
// On an unknown token the cube is left unchanged and a *MoveError is returned.
func (c *Cube) ApplyToken(token string) error {
	m, err := ParseMove(token)
	if err != nil {
		return &MoveError{Token: token, Index: 0}
	}
	c.ApplyMove(m)
	return nil
}

// ApplyNotation applies a whitespace-separated move sequence left to right.
//
// Unknown tokens are skipped: each one is logged as a warning and the rest of
// the sequence is still applied. The returned error joins one *MoveError per
// skipped token and is nil when every token was applied. It never means the
// cube was left half-updated.
func (c *Cube) ApplyNotation(sequence string) error {
	var errs []error
	for i, token := range strings.Fields(sequence) {
		m, err := ParseMove(token)
		if err != nil {
			c.logger().WithFields(logrus.Fields{
				"token": token,
				"index": i,
			}).Warn("skipping unknown move token")
			errs = append(errs, &MoveError{Token: token, Index: i})
			continue
		}
		c.ApplyMove(m)
	}
	return errors.Join(errs...)
}

func (c *Cube) logger() logrus.FieldLogger {
	if c.log == nil {
		return defaultConfig().logger
	}
	return c.log
}
