package paintercore

import (
	"io"

	"github.com/sveg/paintercore/backend"
	"github.com/sveg/paintercore/codec"
	"github.com/sveg/paintercore/document"
	"github.com/sveg/paintercore/document/cache"
	"github.com/sveg/paintercore/document/template"
	"github.com/sveg/paintercore/editcontext"
	"github.com/sveg/paintercore/render"
)

// NewDocument returns the canonical starting document every new painting
// begins from: one background layer over an empty canvas.
func NewDocument() *document.Document {
	return template.New()
}

// Save writes doc to w using the codec's current version.
func Save(w io.Writer, doc *document.Document) error {
	return codec.Save(w, doc)
}

// Load reads a document previously written by Save.
func Load(r io.Reader) (*document.Document, error) {
	return codec.Load(r)
}

// Render schedules and executes ctx's document against be, presenting
// whatever the backend produces for Output(0). c is optional; pass nil
// to always fully recompute, or a *cache.Cache to skip recomputation
// when nothing has changed since the previous call.
func Render(ctx *editcontext.EditContext, be backend.Backend, registers int, c *cache.Cache) (render.Register, error) {
	return render.Render(ctx, be, registers, c)
}

// GenerateDotgraph renders ctx's operation graph as DOT source, for
// visualizing or debugging a document's dependency structure.
func GenerateDotgraph(ctx *editcontext.EditContext) string {
	return ctx.GenerateDotgraph()
}
