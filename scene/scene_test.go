package scene

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sweep/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const tomlScene = `
steps = 8
frame_size = 0.25

[[curve]]
name = "arch"
kind = "bezier"
points = [[0.0, 0.0, 0.0], [1.0, 2.0, 0.0], [3.0, 2.0, 0.0], [4.0, 0.0, 0.0]]

[[curve]]
name = "wave"
kind = "bspline"
steps = 4
points = [[0.0, 0.0, 0.0], [1.0, 3.0, 0.0], [3.0, 3.0, 0.0], [4.0, 0.0, 0.0], [6.0, 0.0, 0.0]]

[[curve]]
name = "ring"
kind = "circle"
radius = 2.0
`

const yamlScene = `
steps: 8
curves:
  - name: arch
    kind: bezier
    points: [[0, 0, 0], [1, 2, 0], [3, 2, 0], [4, 0, 0]]
  - name: ring
    kind: circle
    radius: 2
    steps: 4
`

func TestFormatOf(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f, err := FormatOf("a/b/scene.TOML")
	require.NoError(t, err)
	assert.Equal(t, TOML, f)
	f, err = FormatOf("scene.yml")
	require.NoError(t, err)
	assert.Equal(t, YAML, f)
	_, err = FormatOf("scene.swp")
	assert.True(t, errors.Is(err, ErrUnknownFormat), "err = %v", err)
}

func TestDecodeTOML(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, err := Decode(strings.NewReader(tomlScene), TOML)
	require.NoError(t, err)
	require.Len(t, s.Curves, 3)
	assert.Equal(t, 0.25, s.FrameSize)
	assert.Equal(t, BSpline, s.Curves[1].Kind)
	assert.Equal(t, 8, s.StepsFor(s.Curves[0]))
	assert.Equal(t, 4, s.StepsFor(s.Curves[1]))
	results, err := s.Evaluate()
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Len(t, results[0].Curve, 9)
	assert.Len(t, results[1].Curve, 2*4+1)
	assert.Len(t, results[2].Curve, 9)
	assert.Equal(t, HullInside, results[0].Hull)
	assert.Equal(t, HullInside, results[1].Hull)
	assert.Equal(t, HullUnchecked, results[2].Hull)
}

func TestDecodeYAML(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, err := Decode(strings.NewReader(yamlScene), YAML)
	require.NoError(t, err)
	require.Len(t, s.Curves, 2)
	results, err := s.Evaluate()
	require.NoError(t, err)
	assert.Len(t, results[0].Curve, 9)
	assert.Len(t, results[1].Curve, 5)
}

func TestDecodeErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := Decode(strings.NewReader(""), YAML)
	assert.True(t, errors.Is(err, ErrEmptyScene), "err = %v", err)
	_, err = Decode(strings.NewReader("steps = 3\n"), TOML)
	assert.True(t, errors.Is(err, ErrEmptyScene), "err = %v", err)
	_, err = Decode(strings.NewReader("stepz = 3\n"), TOML)
	assert.Error(t, err, "unknown keys must be rejected")
	_, err = Decode(strings.NewReader("curves:\n  - name: x\n    colour: red\n"), YAML)
	assert.Error(t, err, "unknown keys must be rejected")
}

func TestEvaluateErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := &Scene{Curves: []CurveDef{{Name: "short", Kind: Bezier, Points: [][]float64{{0, 0, 0}, {1, 1, 1}}}}}
	_, err := s.Evaluate()
	assert.True(t, errors.Is(err, curve.ErrTooFewControlPoints), "err = %v", err)
	assert.Contains(t, err.Error(), `"short"`)
	s = &Scene{Curves: []CurveDef{{Kind: "nurbs", Points: [][]float64{{0, 0, 0}}}}}
	_, err = s.Evaluate()
	assert.True(t, errors.Is(err, ErrUnknownKind), "err = %v", err)
	assert.Contains(t, err.Error(), `"curve0"`)
	s = &Scene{Curves: []CurveDef{{Kind: BSpline, Points: [][]float64{{0, 0}}}}}
	_, err = s.Evaluate()
	assert.True(t, errors.Is(err, ErrBadPoint), "err = %v", err)
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlScene), 0o644))
	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Curves, 2)
	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
	s.ForceSteps(2)
	assert.Equal(t, 2, s.StepsFor(s.Curves[1]))
}

func TestWriters(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, err := Decode(strings.NewReader(yamlScene), YAML)
	require.NoError(t, err)
	results, err := s.Evaluate()
	require.NoError(t, err)

	var text bytes.Buffer
	require.NoError(t, WriteText(&text, results))
	lines := strings.Split(strings.TrimSpace(text.String()), "\n")
	assert.Len(t, lines, 2+9+5)
	assert.Equal(t, "# ring (circle): 5 samples, hull unchecked", lines[10])
	assert.Len(t, strings.Fields(lines[1]), 12)

	var obj bytes.Buffer
	require.NoError(t, WriteOBJ(&obj, results, 0.1))
	var v, l int
	for _, line := range strings.Split(obj.String(), "\n") {
		switch {
		case strings.HasPrefix(line, "v "):
			v++
		case strings.HasPrefix(line, "l "):
			l++
		}
	}
	assert.Equal(t, 14+2*3*14, v)
	assert.Equal(t, 2+3*14, l)

	var out bytes.Buffer
	require.NoError(t, WriteYAML(&out, results))
	var doc struct {
		Curves []struct {
			Name    string `yaml:"name"`
			Hull    string `yaml:"hull"`
			Samples []struct {
				V []float64 `yaml:"v"`
			} `yaml:"samples"`
		} `yaml:"curves"`
	}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))
	require.Len(t, doc.Curves, 2)
	assert.Equal(t, "arch", doc.Curves[0].Name)
	assert.Equal(t, "inside", doc.Curves[0].Hull)
	assert.Equal(t, []float64{4, 0, 0}, doc.Curves[0].Samples[8].V)
}
