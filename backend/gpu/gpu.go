// Package gpu implements paintercore's GPU-backed backend. It manages
// device/texture lifecycle only — Load/Unload allocate and release one
// GPU texture per register — since shading is out of core scope
// (spec.md §1); Compute always fails with ErrComputeNotImplemented.
package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/sveg/paintercore/backend"
	"github.com/sveg/paintercore/document"
	"github.com/sveg/paintercore/id"
	"github.com/sveg/paintercore/render"
)

// ErrComputeNotImplemented is returned by every Compute call: this
// backend only proves out device/texture lifecycle management, not
// shading (spec.md §1's explicit non-goal).
var ErrComputeNotImplemented = errors.New("gpu backend: compute is not implemented, shading is out of core scope")

// TextureFactory creates a texture on device, the way a host's
// gogpu.App would. Backend takes this as a constructor argument
// instead of calling device.Device() methods directly: nothing in the
// example pack calls concrete methods on gpucontext.Device, so it is
// treated as an opaque handle passed straight through to the host.
type TextureFactory func(device render.DeviceHandle, desc render.TextureDescriptor) (render.Texture, error)

// Backend manages one GPU texture per register, on behalf of whatever
// host device it is bound to.
type Backend struct {
	device        render.DeviceHandle
	newTexture    TextureFactory
	format        gputypes.TextureFormat
	width, height uint32

	textures map[id.Id[id.Operation]]render.Texture
}

// New returns a Backend bound to device, sized width x height, using
// newTexture to allocate registers.
func New(device render.DeviceHandle, newTexture TextureFactory, width, height uint32) *Backend {
	return &Backend{
		device:     device,
		newTexture: newTexture,
		format:     device.SurfaceFormat(),
		width:      width,
		height:     height,
		textures:   make(map[id.Id[id.Operation]]render.Texture),
	}
}

// Register installs a Factory for this backend under backend.NameGPU,
// bound to device and newTexture. Unlike backend/software, this
// backend needs a host-supplied device and is never auto-registered
// by an init(): a host must call Register itself once it has a real
// DeviceHandle.
func Register(device render.DeviceHandle, newTexture TextureFactory) {
	backend.Register(backend.NameGPU, func(_ *document.Document, width, height int) backend.Backend {
		return New(device, newTexture, uint32(width), uint32(height))
	})
}

// Load allocates a GPU texture for op at addr.
func (b *Backend) Load(op id.Id[id.Operation], addr int) error {
	desc := render.DefaultTextureDescriptor(b.width, b.height, b.format)
	tex, err := b.newTexture(b.device, desc)
	if err != nil {
		return fmt.Errorf("gpu backend: allocate texture for %s: %w", op, err)
	}
	b.textures[op] = tex
	return nil
}

// Unload destroys op's texture.
func (b *Backend) Unload(op id.Id[id.Operation], addr int) error {
	if tex, ok := b.textures[op]; ok {
		tex.Destroy()
		delete(b.textures, op)
	}
	return nil
}

// Compute always fails: this backend does not shade.
func (b *Backend) Compute(op id.Id[id.Operation], deps []id.Id[id.Operation], mayConsume []id.Id[id.Operation]) error {
	return ErrComputeNotImplemented
}
