// Command sweep samples the curves of a scene file and writes them, together
// with their coordinate frames, as text, YAML or Wavefront OBJ.
//
//	sweep eval scene.toml --format obj --frames 0.1 -o scene.obj
//	sweep circle --radius 2 --steps 32
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sweep/curve"
	"github.com/npillmayer/sweep/scene"
	"github.com/spf13/cobra"
)

// tracer writes to trace with key 'cli'
func tracer() tracing.Trace {
	return tracing.Select("cli")
}

type options struct {
	format string
	output string
	steps  int
	frames float64
	radius float64
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sweep: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sweep",
		Short:         "Sample cubic curves with coordinate frames",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newEvalCmd(), newCircleCmd())
	return root
}

func outputFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format: text, yaml or obj")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().Float64Var(&opts.frames, "frames", 0, "size of frame gizmos in OBJ output (0 = none)")
}

func newEvalCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "eval <scene-file>",
		Short: "Evaluate all curves of a TOML or YAML scene file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("steps") {
				if opts.steps < 1 {
					return fmt.Errorf("%w: --steps %d", curve.ErrInvalidSteps, opts.steps)
				}
				s.ForceSteps(opts.steps)
			}
			if !cmd.Flags().Changed("frames") {
				opts.frames = s.FrameSize
			}
			results, err := s.Evaluate()
			if err != nil {
				return err
			}
			return emit(opts, results)
		},
	}
	outputFlags(cmd, opts)
	cmd.Flags().IntVarP(&opts.steps, "steps", "s", scene.DefaultSteps, "samples per segment, overrides the scene")
	return cmd
}

func newCircleCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "circle",
		Short: "Sample the reference circle in the xy-plane",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := curve.EvalCircle(opts.radius, opts.steps)
			if err != nil {
				return err
			}
			return emit(opts, []scene.Result{{Name: "circle", Kind: scene.Circle, Curve: c}})
		},
	}
	outputFlags(cmd, opts)
	cmd.Flags().IntVarP(&opts.steps, "steps", "s", scene.DefaultSteps, "number of samples minus one")
	cmd.Flags().Float64VarP(&opts.radius, "radius", "r", 1, "radius of the circle")
	return cmd
}

func emit(opts *options, results []scene.Result) (err error) {
	var write func(io.Writer) error
	switch opts.format {
	case "text":
		write = func(w io.Writer) error { return scene.WriteText(w, results) }
	case "yaml":
		write = func(w io.Writer) error { return scene.WriteYAML(w, results) }
	case "obj":
		write = func(w io.Writer) error { return scene.WriteOBJ(w, results, opts.frames) }
	default:
		return fmt.Errorf("unknown output format %q", opts.format)
	}
	tracer().Infof("writing %d curves as %s", len(results), opts.format)
	if opts.output == "" {
		return write(os.Stdout)
	}
	f, ferr := os.Create(opts.output)
	if ferr != nil {
		return ferr
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
