package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokereval/equity"
	"github.com/lox/pokereval/internal/config"
)

func testGlobals() (*Globals, *bytes.Buffer) {
	var buf bytes.Buffer
	return &Globals{cfg: config.Default(), logger: zerolog.Nop(), out: &buf}, &buf
}

func intPtr(n int) *int { return &n }

func TestParsePockets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   []string
		want    [][]string
		wantErr bool
	}{
		{name: "compact", input: []string{"AcKh", "tc ac"}, want: [][]string{{"Ac", "Kh"}, {"Tc", "Ac"}}},
		{name: "hidden and folded", input: []string{"____", "-", "As__"}, want: [][]string{{"__", "__"}, {}, {"As", "__"}}},
		{name: "invalid card", input: []string{"AcXy"}, wantErr: true},
		{name: "odd length", input: []string{"AcK"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parsePockets(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCLIParses(t *testing.T) {
	t.Parallel()

	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{
		"version":     "test",
		"config_file": config.DefaultFile,
		"games":       strings.Join(equity.Games(), ", "),
	})
	require.NoError(t, err)

	_, err = parser.Parse([]string{"eval", "AsKs", "QhQd", "--board", "Td7s8h", "-i", "500", "--mode", "monte-carlo", "--seed", "4"})
	require.NoError(t, err)
	assert.Equal(t, []string{"AsKs", "QhQd"}, cli.Eval.Pockets)
	assert.Equal(t, "Td7s8h", cli.Eval.Board)
	require.NotNil(t, cli.Eval.Iterations)
	assert.Equal(t, 500, *cli.Eval.Iterations)
	require.NotNil(t, cli.Eval.Seed)
	assert.Equal(t, int64(4), *cli.Eval.Seed)

	_, err = parser.Parse([]string{"best", "AcAsTd7s7h3s2c", "--side", "lo"})
	require.NoError(t, err)
	assert.Equal(t, "lo", cli.Best.Side)

	_, err = parser.Parse([]string{"best", "AcAsTd7s7h3s2c", "--side", "middle"})
	require.Error(t, err)
}

func TestEvalCmdJSON(t *testing.T) {
	t.Parallel()

	g, out := testGlobals()
	cmd := &EvalCmd{
		Pockets:    []string{"TcAc", "ThAh", "8c6h"},
		Board:      "7h3s2c7s7d",
		Iterations: intPtr(10000),
		JSON:       true,
	}
	require.NoError(t, cmd.Run(g))

	var got struct {
		Info struct {
			Samples  int `json:"samples"`
			HasLoPot int `json:"haslopot"`
			HasHiPot int `json:"hashipot"`
		} `json:"info"`
		Eval []struct {
			Seat int `json:"seat"`
			EV   int `json:"ev"`
		} `json:"eval"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, 1, got.Info.Samples)
	assert.Equal(t, 0, got.Info.HasLoPot)
	assert.Equal(t, 1, got.Info.HasHiPot)
	require.Len(t, got.Eval, 3)
	assert.Equal(t, 500, got.Eval[0].EV)
	assert.Equal(t, 500, got.Eval[1].EV)
	assert.Equal(t, 0, got.Eval[2].EV)
}

func TestEvalCmdTable(t *testing.T) {
	t.Parallel()

	g, out := testGlobals()
	cmd := &EvalCmd{
		Pockets:    []string{"AsKs", "-", "QhQd"},
		Board:      "Td7s8h",
		Iterations: intPtr(0),
	}
	require.NoError(t, cmd.Run(g))

	text := out.String()
	assert.Contains(t, text, "As Ks AKs premium")
	assert.Contains(t, text, "Qh Qd QQ premium")
	assert.Contains(t, text, "1 seat(s) folded or hidden")
	assert.Contains(t, text, "990 samples (exhaustive)")
}

func TestEvalCmdRequestFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "request.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"game": "omaha8",
		"board": ["2h", "3d", "4c", "Ks", "Kd"],
		"pockets": [["Ah", "5c", "Qs", "Qd"], ["Kh", "Kc", "7s", "8s"]]
	}`), 0o644))

	g, out := testGlobals()
	require.NoError(t, (&EvalCmd{Request: path, JSON: true}).Run(g))
	assert.Contains(t, out.String(), `"haslopot": 1`)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"game": "holdem", "pockets": [["Zz", "Ac"]]}`), 0o644))
	err := (&EvalCmd{Request: bad}).Run(g)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.json")
}

func TestEvalCmdErrors(t *testing.T) {
	t.Parallel()

	g, _ := testGlobals()
	require.Error(t, (&EvalCmd{}).Run(g))

	err := (&EvalCmd{Pockets: []string{"AsKs"}, Game: "badugi"}).Run(g)
	require.ErrorIs(t, err, equity.ErrUnsupportedGame)

	err = (&EvalCmd{Pockets: []string{"AsKs"}, Mode: "guess"}).Run(g)
	require.Error(t, err)
}

func TestBestCmd(t *testing.T) {
	t.Parallel()

	g, out := testGlobals()
	require.NoError(t, (&BestCmd{Cards: "AcAsTd7s7h3s2c", Side: "hi", JSON: true}).Run(g))

	var report equity.HandReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, uint32(34363392), report.Value)
	assert.Equal(t, []string{"TwoPair", "As", "Ac", "7s", "7h", "Td"}, report.Combination)

	g, out = testGlobals()
	require.NoError(t, (&BestCmd{Cards: "Ah5cQsQd", Board: "2h3d4cKsKd", Side: "lo"}).Run(g))
	assert.Contains(t, out.String(), "5c 4c 3d 2h Ah")
}

func TestBatchCmd(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scenarios.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[scenario]]
name = "trips tie"
game = "holdem"
board = ["7h", "3s", "2c", "7s", "7d"]
pockets = [["tc", "ac"], ["th", "ah"], ["8c", "6h"]]

[[scenario]]
name = "aces preflop"
pockets = [["As", "Ah"], ["__", "__"]]
fill_pockets = true
iterations = 2000
seed = 11
mode = "monte-carlo"
`), 0o644))

	g, out := testGlobals()
	require.NoError(t, (&BatchCmd{File: path, JSON: true}).Run(g))

	var runs []struct {
		Name   string          `json:"name"`
		Game   string          `json:"game"`
		Result json.RawMessage `json:"result"`
		Err    string          `json:"error"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &runs))
	require.Len(t, runs, 2)
	assert.Equal(t, "trips tie", runs[0].Name)
	assert.Equal(t, "holdem", runs[1].Game)
	assert.Empty(t, runs[1].Err)
	assert.Contains(t, string(runs[1].Result), `"samples": 2000`)
}

func TestBatchCmdReportsFailures(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scenarios.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[scenario]]
name = "duplicate"
board = ["As"]
pockets = [["As", "Kd"]]
`), 0o644))

	g, out := testGlobals()
	err := (&BatchCmd{File: path}).Run(g)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 scenarios failed")
	assert.Contains(t, out.String(), "duplicate card")
}

func TestLoadBatchRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scenarios.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[scenario]]
name = "typo"
pocket = [["As", "Kd"]]
`), 0o644))

	_, err := loadBatch(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown keys")
}

func TestEvalCmdOutputFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "result.json")
	g, out := testGlobals()
	cmd := &EvalCmd{
		Pockets: []string{"AsKs", "QhQd"},
		Board:   "Td7s8h2c",
		JSON:    true,
		Output:  path,
	}
	require.NoError(t, cmd.Run(g))
	assert.Empty(t, out.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"samples": 44`)
}
