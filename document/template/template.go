// Package template builds the canonical starting Document every new
// painting begins from (spec.md §6's new_document()).
package template

import (
	"github.com/sveg/paintercore/document"
	"github.com/sveg/paintercore/entities"
	"github.com/sveg/paintercore/id"
)

// DefaultCanvasWidth and DefaultCanvasHeight size the preview canvas a
// fresh document is given until the host resizes it.
const (
	DefaultCanvasWidth  = 1920 * 2
	DefaultCanvasHeight = 1080 * 2
)

// New builds the canonical initial Document, grounded on the source
// repository's own default-image constructor: two leaf tags,
// "CanvasBase" (slot 0, underneath) and "BackgroundLayerStart" (slot 1,
// above), feeding the "Background" layer's Composite, terminating in a
// single Output(0). It is always valid per Document.Validate.
func New() *document.Document {
	doc := document.New()

	doc.Metadata = document.Metadata{
		PreviewCanvasSize:     [2]uint32{DefaultCanvasWidth, DefaultCanvasHeight},
		CanvasBackgroundColor: entities.Opaque(1, 1, 1),
	}

	canvasBase := doc.Operations.Insert(entities.NewTagOperation("CanvasBase"))
	doc.Graph.Insert(canvasBase, nil)

	backgroundLayerStart := doc.Operations.Insert(entities.NewTagOperation("BackgroundLayerStart"))
	doc.Graph.Insert(backgroundLayerStart, nil)

	backgroundBlend := doc.Operations.Insert(entities.NewCompositeOperation(entities.Mix(1.0)))
	doc.Graph.Insert(backgroundBlend, []id.Id[id.Operation]{canvasBase, backgroundLayerStart})

	output := doc.Operations.Insert(entities.NewOutputOperation(0))
	doc.Graph.Insert(output, []id.Id[id.Operation]{backgroundBlend})

	doc.Layers.Insert(entities.Layer{
		Name:             "Background",
		BlendOperationId: backgroundBlend,
	})

	return doc
}
