// Package scene reads curve descriptions from configuration files and
// evaluates them.
//
// A scene is written in TOML
//
//	steps = 16
//	frame_size = 0.1
//
//	[[curve]]
//	name = "arch"
//	kind = "bezier"
//	points = [[0.0, 0.0, 0.0], [1.0, 2.0, 0.0], [3.0, 2.0, 0.0], [4.0, 0.0, 0.0]]
//
//	[[curve]]
//	name = "ring"
//	kind = "circle"
//	radius = 2.0
//	steps = 32
//
// or, equivalently, in YAML with a list "curves".
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'scene'
func tracer() tracing.Trace {
	return tracing.Select("scene")
}

// DefaultSteps is the sampling density used if neither the scene nor the
// curve specify one.
const DefaultSteps = 16

var (
	// ErrUnknownFormat indicates a scene file with an unsupported extension.
	ErrUnknownFormat = errors.New("unknown scene file format")
	// ErrUnknownKind indicates a curve of unsupported kind.
	ErrUnknownKind = errors.New("unknown curve kind")
	// ErrBadPoint indicates a control point without exactly 3 coordinates.
	ErrBadPoint = errors.New("control point must have 3 coordinates")
	// ErrEmptyScene indicates a scene file without any curves.
	ErrEmptyScene = errors.New("scene contains no curves")
)

// Format is the encoding of a scene file.
type Format int

// Supported scene file formats.
const (
	TOML Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatOf derives the file format from a file name's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Kind is the type of curve a control point sequence describes.
type Kind string

// Curve kinds.
const (
	Bezier  Kind = "bezier"
	BSpline Kind = "bspline"
	Circle  Kind = "circle"
)

// Scene is a collection of curves with common sampling parameters.
type Scene struct {
	Steps     int        `toml:"steps" yaml:"steps"`
	FrameSize float64    `toml:"frame_size" yaml:"frame_size"`
	Curves    []CurveDef `toml:"curve" yaml:"curves"`
}

// CurveDef describes a single curve. Steps overrides the scene's
// sampling density if non-zero. Radius is used for circles only, Points for
// Bézier chains and B-splines only.
type CurveDef struct {
	Name   string      `toml:"name" yaml:"name"`
	Kind   Kind        `toml:"kind" yaml:"kind"`
	Steps  int         `toml:"steps,omitempty" yaml:"steps,omitempty"`
	Radius float64     `toml:"radius,omitempty" yaml:"radius,omitempty"`
	Points [][]float64 `toml:"points,omitempty" yaml:"points,omitempty"`
}

// Load reads a scene from a file. The format is derived from the file name.
func Load(path string) (*Scene, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tracer().Infof("loading %s scene from %s", format, path)
	return Decode(f, format)
}

// Decode reads a scene in the given format. Unknown keys are rejected.
func Decode(r io.Reader, format Format) (*Scene, error) {
	s := &Scene{}
	switch format {
	case TOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(s); err != nil {
			return nil, fmt.Errorf("decoding TOML scene: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(s); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrEmptyScene
			}
			return nil, fmt.Errorf("decoding YAML scene: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	if len(s.Curves) == 0 {
		return nil, ErrEmptyScene
	}
	tracer().Debugf("scene has %d curves", len(s.Curves))
	return s, nil
}

// ForceSteps sets the sampling density for all curves of the scene,
// dropping per-curve settings.
func (s *Scene) ForceSteps(steps int) {
	s.Steps = steps
	for i := range s.Curves {
		s.Curves[i].Steps = 0
	}
}

// StepsFor returns the effective sampling density of curve definition c.
func (s *Scene) StepsFor(c CurveDef) int {
	if c.Steps != 0 {
		return c.Steps
	}
	if s.Steps != 0 {
		return s.Steps
	}
	return DefaultSteps
}

// ControlPoints converts the points of a curve definition to vectors.
func (c CurveDef) ControlPoints() ([]mgl64.Vec3, error) {
	pts := make([]mgl64.Vec3, len(c.Points))
	for i, p := range c.Points {
		if len(p) != 3 {
			return nil, fmt.Errorf("%w: point %d has %d", ErrBadPoint, i, len(p))
		}
		pts[i] = mgl64.Vec3{p[0], p[1], p[2]}
	}
	return pts, nil
}
