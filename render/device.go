package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// This is the integration point between paintercore and whatever GPU
// framework the host runs (gogpu or otherwise). The host implements
// DeviceHandle and passes it to backend/gpu, so a GPU-backed
// backend.Backend shares the host's device and queue instead of
// opening its own.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider: a
// paintercore-specific name for the same interface, so backend/gpu and
// render don't need to import gpucontext directly themselves.
type DeviceHandle = gpucontext.DeviceProvider

// TextureDescriptor describes the parameters for allocating a register's
// backing texture on a GPU backend. It mirrors the WebGPU
// GPUTextureDescriptor shape that gputypes.TextureFormat already
// follows.
type TextureDescriptor struct {
	// Label is an optional debug label, surfaced in GPU profiling tools.
	Label string

	// Width and Height size the texture in pixels.
	Width, Height uint32

	// Format is the texture's pixel format.
	Format gputypes.TextureFormat

	// Usage specifies how the texture will be used.
	Usage TextureUsage
}

// TextureUsage specifies how a register's texture can be used. Flags
// combine with bitwise OR.
type TextureUsage uint32

const (
	// TextureUsageTextureBinding allows sampling the texture in a shader.
	TextureUsageTextureBinding TextureUsage = 1 << iota

	// TextureUsageRenderAttachment allows the texture to be written to
	// as a render target.
	TextureUsageRenderAttachment
)

// Texture is a GPU-resident register's backing resource, as allocated
// by a TextureFactory and managed by backend/gpu.
type Texture interface {
	// Width and Height return the texture's dimensions in pixels.
	Width() uint32
	Height() uint32

	// Format returns the texture's pixel format.
	Format() gputypes.TextureFormat

	// CreateView creates a view for binding this texture to a shader
	// stage.
	CreateView() TextureView

	// Destroy releases the texture's GPU resources. Called by
	// backend/gpu's Unload once a register is freed.
	Destroy()
}

// TextureView is a view into a Texture, used to bind it to shader
// stages.
type TextureView interface {
	// Destroy releases resources associated with this view.
	Destroy()
}

// DefaultTextureDescriptor returns a TextureDescriptor suitable for a
// register's render target: sampleable and renderable, at the given
// size and format.
func DefaultTextureDescriptor(width, height uint32, format gputypes.TextureFormat) TextureDescriptor {
	return TextureDescriptor{
		Width:  width,
		Height: height,
		Format: format,
		Usage:  TextureUsageTextureBinding | TextureUsageRenderAttachment,
	}
}

// NullDeviceHandle is a DeviceHandle with nil implementations, for
// binding backend/gpu in tests without a real GPU device.
type NullDeviceHandle struct{}

func (NullDeviceHandle) Device() gpucontext.Device   { return nil }
func (NullDeviceHandle) Queue() gpucontext.Queue     { return nil }
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

var _ DeviceHandle = NullDeviceHandle{}
