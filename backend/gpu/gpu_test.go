package gpu_test

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/sveg/paintercore/backend/gpu"
	"github.com/sveg/paintercore/id"
	"github.com/sveg/paintercore/render"
)

type fakeTextureView struct{ destroyed bool }

func (v *fakeTextureView) Destroy() { v.destroyed = true }

type fakeTexture struct {
	w, h      uint32
	format    gputypes.TextureFormat
	destroyed bool
}

func (t *fakeTexture) Width() uint32                    { return t.w }
func (t *fakeTexture) Height() uint32                    { return t.h }
func (t *fakeTexture) Format() gputypes.TextureFormat    { return t.format }
func (t *fakeTexture) CreateView() render.TextureView    { return &fakeTextureView{} }
func (t *fakeTexture) Destroy()                          { t.destroyed = true }

func fakeFactory(textures *[]*fakeTexture) gpu.TextureFactory {
	return func(device render.DeviceHandle, desc render.TextureDescriptor) (render.Texture, error) {
		tex := &fakeTexture{w: desc.Width, h: desc.Height, format: desc.Format}
		*textures = append(*textures, tex)
		return tex, nil
	}
}

func TestLoadAllocatesATextureSizedToTheBackend(t *testing.T) {
	var created []*fakeTexture
	b := gpu.New(render.NullDeviceHandle{}, fakeFactory(&created), 64, 32)

	op := id.FromUint64[id.Operation](1)
	if err := b.Load(op, 0); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("created %d textures, want 1", len(created))
	}
	if created[0].w != 64 || created[0].h != 32 {
		t.Fatalf("texture size = %dx%d, want 64x32", created[0].w, created[0].h)
	}
}

func TestUnloadDestroysTheTexture(t *testing.T) {
	var created []*fakeTexture
	b := gpu.New(render.NullDeviceHandle{}, fakeFactory(&created), 16, 16)

	op := id.FromUint64[id.Operation](1)
	if err := b.Load(op, 0); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := b.Unload(op, 0); err != nil {
		t.Fatalf("Unload: %v", err)
	}
	if !created[0].destroyed {
		t.Fatal("texture was not destroyed by Unload")
	}
}

func TestComputeAlwaysFails(t *testing.T) {
	var created []*fakeTexture
	b := gpu.New(render.NullDeviceHandle{}, fakeFactory(&created), 16, 16)

	op := id.FromUint64[id.Operation](1)
	err := b.Compute(op, nil, nil)
	if !errors.Is(err, gpu.ErrComputeNotImplemented) {
		t.Fatalf("Compute err = %v, want ErrComputeNotImplemented", err)
	}
}

func TestUnloadOnUnknownOperationIsANoop(t *testing.T) {
	var created []*fakeTexture
	b := gpu.New(render.NullDeviceHandle{}, fakeFactory(&created), 16, 16)

	if err := b.Unload(id.FromUint64[id.Operation](99), 0); err != nil {
		t.Fatalf("Unload on an unloaded id should not error, got: %v", err)
	}
}
