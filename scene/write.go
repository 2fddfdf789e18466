package scene

import (
	"bufio"
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/sweep"
	"gopkg.in/yaml.v3"
)

// WriteText writes the samples of all results as plain text, one sample
// per line with 12 numbers: V, T, N, B.
func WriteText(w io.Writer, results []Result) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		fmt.Fprintf(bw, "# %s (%s): %d samples, hull %s\n", r.Name, r.Kind, len(r.Curve), r.Hull)
		for _, s := range r.Curve {
			fmt.Fprintf(bw, "%s  %s  %s  %s\n", vecstring(s.V), vecstring(s.T),
				vecstring(s.N), vecstring(s.B))
		}
	}
	return bw.Flush()
}

type yamlSample struct {
	V []float64 `yaml:"v,flow"`
	T []float64 `yaml:"t,flow"`
	N []float64 `yaml:"n,flow"`
	B []float64 `yaml:"b,flow"`
}

type yamlCurve struct {
	Name    string       `yaml:"name"`
	Kind    Kind         `yaml:"kind"`
	Hull    string       `yaml:"hull"`
	Samples []yamlSample `yaml:"samples"`
}

// WriteYAML writes all results as a YAML document with a list "curves".
func WriteYAML(w io.Writer, results []Result) error {
	doc := struct {
		Curves []yamlCurve `yaml:"curves"`
	}{}
	for _, r := range results {
		yc := yamlCurve{Name: r.Name, Kind: r.Kind, Hull: r.Hull.String()}
		for _, s := range r.Curve {
			yc.Samples = append(yc.Samples, yamlSample{
				V: s.V[:], T: s.T[:], N: s.N[:], B: s.B[:],
			})
		}
		doc.Curves = append(doc.Curves, yc)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// WriteOBJ writes all results as Wavefront OBJ line elements: one polyline
// per curve and, if frameSize is non-zero, one line per frame gizmo axis.
func WriteOBJ(w io.Writer, results []Result, frameSize float64) error {
	bw := bufio.NewWriter(w)
	next := 1 // OBJ vertex indices start at 1
	for _, r := range results {
		fmt.Fprintf(bw, "o %s\n", r.Name)
		first := next
		for _, v := range r.Curve.Positions() {
			fmt.Fprintf(bw, "v %s\n", vecstring(v))
			next++
		}
		fmt.Fprint(bw, "l")
		for i := first; i < next; i++ {
			fmt.Fprintf(bw, " %d", i)
		}
		fmt.Fprintln(bw)
		for _, seg := range r.Curve.Gizmos(frameSize) {
			fmt.Fprintf(bw, "v %s\nv %s\nl %d %d\n", vecstring(seg.From), vecstring(seg.To), next, next+1)
			next += 2
		}
	}
	return bw.Flush()
}

func vecstring(v mgl64.Vec3) string {
	v = sweep.Zapped(v)
	return fmt.Sprintf("%g %g %g", v[0], v[1], v[2])
}
