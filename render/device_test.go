package render

import (
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

func TestNullDeviceHandle(t *testing.T) {
	var handle DeviceHandle = NullDeviceHandle{}

	if handle.Device() != nil {
		t.Error("NullDeviceHandle.Device() should return nil")
	}
	if handle.Queue() != nil {
		t.Error("NullDeviceHandle.Queue() should return nil")
	}
	if handle.Adapter() != nil {
		t.Error("NullDeviceHandle.Adapter() should return nil")
	}
	if handle.SurfaceFormat() != gputypes.TextureFormatUndefined {
		t.Error("NullDeviceHandle.SurfaceFormat() should return Undefined")
	}
}

func TestDefaultTextureDescriptor(t *testing.T) {
	desc := DefaultTextureDescriptor(256, 128, gputypes.TextureFormatRGBA8Unorm)

	if desc.Width != 256 {
		t.Errorf("Width = %d, want 256", desc.Width)
	}
	if desc.Height != 128 {
		t.Errorf("Height = %d, want 128", desc.Height)
	}
	if desc.Format != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format = %v, want RGBA8Unorm", desc.Format)
	}

	want := TextureUsageTextureBinding | TextureUsageRenderAttachment
	if desc.Usage != want {
		t.Errorf("Usage = %v, want %v", desc.Usage, want)
	}
}

func TestTextureUsageFlagsCombine(t *testing.T) {
	usage := TextureUsageTextureBinding | TextureUsageRenderAttachment

	if usage&TextureUsageTextureBinding == 0 {
		t.Error("missing TextureBinding flag")
	}
	if usage&TextureUsageRenderAttachment == 0 {
		t.Error("missing RenderAttachment flag")
	}
}

func TestDeviceHandleIsADeviceProvider(t *testing.T) {
	handle := NullDeviceHandle{}

	acceptProvider := func(gpucontext.DeviceProvider) {}
	acceptProvider(handle)
}
