// Package replay drives an editor from a text script without a window. Each line is one
// command; the result is printed as a JSON snapshot of the scene.
package replay

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"brickyard/internal/commands"
	"brickyard/internal/editor"
	"brickyard/internal/scene"
)

// Viewport size used by click when no size is given.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// DefaultWaitTimeout bounds how long wait blocks for pending loads.
const DefaultWaitTimeout = 30 * time.Second

var errArgs = errors.New("wrong number of arguments")

// Runner executes script commands against an editor.
type Runner struct {
	editor  *editor.Editor
	reg     *commands.Registry
	out     io.Writer
	timeout time.Duration
	ctx     context.Context
	async   bool
}

// New returns a runner for e that prints snapshots to out.
func New(e *editor.Editor, out io.Writer) *Runner {
	r := &Runner{editor: e, reg: commands.NewRegistry(), out: out, timeout: DefaultWaitTimeout, ctx: context.Background()}
	r.register()
	return r
}

// SetAsync makes spawn, baseplate and wait return without blocking on loads. The window
// uses it since its frame loop applies loads as they finish.
func (r *Runner) SetAsync(async bool) {
	r.async = async
}

// SetContext sets the context loads started by Exec belong to.
func (r *Runner) SetContext(ctx context.Context) {
	r.ctx = ctx
}

// Help lists the script commands.
func (r *Runner) Help() string {
	return r.reg.Help()
}

// Run executes every line of script, stopping at the first failing command.
func (r *Runner) Run(ctx context.Context, script io.Reader) error {
	prev := r.ctx
	r.ctx = ctx
	defer func() { r.ctx = prev }()
	sc := bufio.NewScanner(script)
	n := 0
	for sc.Scan() {
		n++
		args, ok := commands.Parse(sc.Text())
		if !ok {
			continue
		}
		if err := r.Exec(args); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return sc.Err()
}

// Exec runs one command and applies any loads that finished meanwhile.
func (r *Runner) Exec(args []string) error {
	err := r.reg.Execute(args)
	r.editor.Poll()
	return err
}

func (r *Runner) register() {
	spawnFlags := flag.NewFlagSet("spawn", flag.ContinueOnError)
	async := spawnFlags.Bool("async", false, "return without waiting for the mesh")
	r.reg.Register("spawn", "[-async] <brick>", spawnFlags, func(args []string) error {
		if len(args) != 1 {
			return errArgs
		}
		if _, err := r.editor.Spawn(r.ctx, args[0]); err != nil {
			return err
		}
		if *async {
			return nil
		}
		return r.wait()
	})

	r.reg.Register("baseplate", "", nil, func(args []string) error {
		if _, ok := r.editor.LoadBaseplate(r.ctx); !ok {
			return errors.New("catalog has no baseplate")
		}
		return r.wait()
	})

	r.reg.Register("wait", "", nil, func([]string) error {
		return r.wait()
	})

	clickFlags := flag.NewFlagSet("click", flag.ContinueOnError)
	width := clickFlags.Float64("w", DefaultWidth, "viewport width")
	height := clickFlags.Float64("h", DefaultHeight, "viewport height")
	alt := clickFlags.Bool("alt", false, "hold Alt")
	r.reg.Register("click", "[-w px] [-h px] <x> <y>", clickFlags, func(args []string) error {
		v, err := floats(args, 2)
		if err != nil {
			return err
		}
		p := editor.Pointer{X: v[0], Y: v[1], Width: float32(*width), Height: float32(*height), Alt: *alt}
		r.editor.PointerDown(p)
		r.editor.PointerUp()
		return nil
	})

	r.reg.Register("select", "<index>", nil, func(args []string) error {
		if len(args) != 1 {
			return errArgs
		}
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		children := r.editor.Scene.Children()
		if i < 0 || i >= len(children) {
			return fmt.Errorf("no object %d", i)
		}
		r.editor.Selection.Toggle(children[i])
		return nil
	})

	r.reg.Register("key", "<Key>...", nil, func(args []string) error {
		if len(args) == 0 {
			return errArgs
		}
		for _, a := range args {
			k, err := editor.ParseKey(a)
			if err != nil {
				return err
			}
			r.editor.KeyDown(k)
		}
		return nil
	})

	r.reg.Register("color", "<#rrggbb>", nil, func(args []string) error {
		if len(args) != 1 {
			return errArgs
		}
		c, err := scene.ParseHexColor(args[0])
		if err != nil {
			return err
		}
		r.editor.SetColor(c)
		return nil
	})

	r.reg.Register("drag", "<dx> <dy> <dz>", nil, func(args []string) error {
		v, err := floats(args, 3)
		if err != nil {
			return err
		}
		g := r.editor.Gizmo
		if g.Object() == nil {
			return errors.New("gizmo is not attached")
		}
		g.DragBy([3]float32{v[0], v[1], v[2]})
		g.End()
		return nil
	})

	r.reg.Register("attach", "<index>", nil, func(args []string) error {
		if len(args) != 1 {
			return errArgs
		}
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		children := r.editor.Scene.Children()
		if i < 0 || i >= len(children) || !children[i].Draggable {
			return fmt.Errorf("no draggable object %d", i)
		}
		r.editor.Gizmo.Attach(children[i])
		return nil
	})

	r.reg.Register("orbit", "<azimuth> <polar>", nil, func(args []string) error {
		v, err := floats(args, 2)
		if err != nil {
			return err
		}
		r.editor.Orbit(v[0], v[1])
		return nil
	})

	r.reg.Register("zoom", "<notches>", nil, func(args []string) error {
		v, err := floats(args, 1)
		if err != nil {
			return err
		}
		r.editor.Wheel(v[0])
		return nil
	})

	r.reg.Register("print", "", nil, func([]string) error {
		return r.Print()
	})
}

// Print writes the current snapshot.
func (r *Runner) Print() error {
	snap, err := Take(r.editor)
	if err != nil {
		return err
	}
	return snap.Write(r.out)
}

func (r *Runner) wait() error {
	if r.async {
		return nil
	}
	ctx, cancel := context.WithTimeout(r.ctx, r.timeout)
	defer cancel()
	return r.editor.WaitIdle(ctx)
}

func floats(args []string, n int) ([]float32, error) {
	if len(args) != n {
		return nil, errArgs
	}
	out := make([]float32, n)
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(v)
	}
	return out, nil
}
