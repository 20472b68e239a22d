package render

import (
	"fmt"
	"image/color"

	"github.com/sveg/paintercore/backend"
	"github.com/sveg/paintercore/document/cache"
	"github.com/sveg/paintercore/editcontext"
	"github.com/sveg/paintercore/entities"
	"github.com/sveg/paintercore/executor"
	"github.com/sveg/paintercore/id"
	"github.com/sveg/paintercore/scheduler"
)

// Register wraps a backend's presented Output(0) contents, before
// Present copies them (if it can) into a PixmapTarget.
type Register struct {
	Contents backend.RegisterContents
}

// Render schedules and executes ctx's document against be, using
// registers memory slots, and returns the presented Output(0) register
// if be implements backend.Presenter.
//
// c is optional. When nil, Render always fully re-schedules and
// re-executes. When non-nil, Render first asks c which operations
// changed since the last call; if none did, it skips scheduling and
// execution entirely and just re-presents whatever be already holds
// from the previous call, since nothing could have changed it.
func Render(ctx *editcontext.EditContext, be backend.Backend, registers int, c *cache.Cache) (Register, error) {
	outputID, err := findOutputZero(ctx)
	if err != nil {
		return Register{}, err
	}
	outs := []id.Id[id.Operation]{outputID}

	if c != nil {
		if pruned := c.PrunedOutputs(ctx.Image, outs); len(pruned) == 0 {
			return presented(be), nil
		}
	}

	stages, err := scheduler.ComputeExecution(ctx.Image.Graph, outs, registers)
	if err != nil {
		return Register{}, fmt.Errorf("render: schedule: %w", err)
	}
	if err := executor.Run(stages, registers, be); err != nil {
		return Register{}, fmt.Errorf("render: execute: %w", err)
	}

	return presented(be), nil
}

func presented(be backend.Backend) Register {
	presenter, ok := be.(backend.Presenter)
	if !ok {
		return Register{}
	}
	return Register{Contents: presenter.Output(0)}
}

// Pixeler is implemented by RegisterContents that expose direct pixel
// access, letting Present copy them into a host-facing PixmapTarget.
// backend/software.Pixmap satisfies this; a GPU-backed register does
// not, since its contents never leave device memory.
type Pixeler interface {
	backend.RegisterContents
	At(x, y int) entities.Color
}

// Present copies reg's contents into target, converting each pixel to
// 8-bit RGBA. It returns an error if reg's contents expose no CPU
// pixel access.
func Present(reg Register, target *PixmapTarget) error {
	src, ok := reg.Contents.(Pixeler)
	if !ok {
		return fmt.Errorf("render: register contents do not expose pixel access")
	}

	img := target.Image()
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if src.Width() < w {
		w = src.Width()
	}
	if src.Height() < h {
		h = src.Height()
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(bounds.Min.X+x, bounds.Min.Y+y, colorToRGBA(src.At(x, y)))
		}
	}
	return nil
}

func colorToRGBA(c entities.Color) color.RGBA {
	return color.RGBA{R: clamp8(c.R), G: clamp8(c.G), B: clamp8(c.B), A: clamp8(c.A)}
}

func clamp8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}

func findOutputZero(ctx *editcontext.EditContext) (id.Id[id.Operation], error) {
	for _, pair := range ctx.Image.Operations.Iter() {
		if pair.Value.IsOutputZero() {
			return pair.Id, nil
		}
	}
	return 0, fmt.Errorf("render: document has no Output(0) operation")
}
