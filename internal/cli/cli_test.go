package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the CLI with plain output and no env file.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args, "--no-color", "--env-file="))

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootShowsHelp(t *testing.T) {
	out, _, err := run(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "analyze")
}

func TestShowSolved(t *testing.T) {
	out, _, err := run(t, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "          Y  Y  Y \n")
	assert.Contains(t, out, " G  G  G  R  R  R  B  B  B  O  O  O \n")
}

func TestShowCompactFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rubik.yaml")
	require.NoError(t, os.WriteFile(path, []byte("compact: true\n"), 0o600))

	out, _, err := run(t, "show", "U", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "F: BBBRRRRRR\n")
}

func TestApplySkipsUnknownTokens(t *testing.T) {
	out, errOut, err := run(t, "apply", "R U X")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Applied 2 move(s)")
	assert.Contains(t, out, "Phase: Scrambled")
	assert.Contains(t, errOut, `skipped "X" at position 2`)
	assert.Contains(t, errOut, "token=X")
}

func TestApplySolvedAndSpoken(t *testing.T) {
	out, _, err := run(t, "apply", "R", "R'", "--spoken")
	require.NoError(t, err)
	assert.Contains(t, out, "right up, right down")
	assert.Contains(t, out, "✓ Cube is solved")
}

func TestApplyStrict(t *testing.T) {
	_, errOut, err := run(t, "apply", "--strict", "R r")
	require.EqualError(t, err, "Invalid move sequence")
	assert.Contains(t, errOut, `"r" (position 1)`)
}

func TestApplyJSONLogs(t *testing.T) {
	_, errOut, err := run(t, "apply", "Q", "--log-format", "json", "--log-level", "info")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"token":"Q"`)
	assert.Contains(t, errOut, `"run_id":"`)
}

func TestAnalyzeYAML(t *testing.T) {
	out, _, err := run(t, "analyze", "--yaml", "R")
	require.NoError(t, err)

	var r Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, "R", r.Sequence)
	assert.False(t, r.Solved)
	assert.Equal(t, "scrambled", r.Phase)
	assert.InDelta(t, 60.0, r.Progress, 1e-9)
	assert.Equal(t, LayerReport{}, r.Layers)
	assert.Len(t, r.Edges, 12)
	assert.Len(t, r.Corners, 8)
	assert.Equal(t, PieceReport{Slot: "WR", Current: "WR", InPosition: true, Oriented: true}, r.Edges[0])
}

func TestAnalyzeText(t *testing.T) {
	out, _, err := run(t, "analyze", "--pieces", "R U R' U'")
	require.NoError(t, err)
	assert.Contains(t, out, "Cube Analysis")
	assert.Contains(t, out, "Solved:   no")
	assert.Contains(t, out, "Phase:    White Cross")
	assert.Contains(t, out, "Progress: 65.0%")
	assert.Contains(t, out, "Crosses:  white yes  yellow no")
	assert.Contains(t, out, "Corners")
}

func TestFindCorner(t *testing.T) {
	out, _, err := run(t, "find", "corner", "WRB", "--moves", "R U")
	require.NoError(t, err)
	assert.Contains(t, out, "Piece:       WRB")
	assert.Contains(t, out, "Slot:        YRG (top layer)")
	assert.Contains(t, out, "Colors:      RBW")
	assert.Contains(t, out, "Orientation: rotated_two_steps")
}

func TestFindEdgeSolved(t *testing.T) {
	out, _, err := run(t, "find", "edges", "RW")
	require.NoError(t, err)
	assert.Contains(t, out, "Slot:        WR (bottom layer)")
	assert.Contains(t, out, "Oriented:    yes")
	assert.NotContains(t, out, "Orientation")
}

func TestFindErrors(t *testing.T) {
	_, _, err := run(t, "find", "center", "W")
	assert.EqualError(t, err, "Unknown piece kind")

	_, _, err = run(t, "find", "edge", "WX")
	assert.EqualError(t, err, "Invalid colors")

	_, errOut, err := run(t, "find", "edge", "WY")
	assert.EqualError(t, err, "Piece not found")
	assert.Contains(t, errOut, "No edge carries the colors WY")
}

func TestInvert(t *testing.T) {
	out, _, err := run(t, "invert", "R U R' U2")
	require.NoError(t, err)
	assert.Equal(t, "U2 R U' R'\n", out)

	out, _, err = run(t, "invert", "--simplify", "R R U")
	require.NoError(t, err)
	assert.Equal(t, "U' R2\n", out)
}

func TestSimplify(t *testing.T) {
	out, _, err := run(t, "simplify", "R U U' R F F")
	require.NoError(t, err)
	assert.Equal(t, "R2 F2\n", out)
}

func TestValidate(t *testing.T) {
	out, _, err := run(t, "validate", "R U R' U'")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ 4 move(s) valid")

	_, errOut, err := run(t, "validate", "R", "M", "U`")
	assert.EqualError(t, err, "Invalid move sequence")
	assert.Contains(t, errOut, `2 token(s) are not moves: "M" (position 1), "U`+"`"+`" (position 2)`)
}

func TestBadConfig(t *testing.T) {
	_, _, err := run(t, "show", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, _, err = run(t, "show", "--log-level", "loud")
	assert.Error(t, err)
}
