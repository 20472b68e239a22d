package paintercore_test

import (
	"bytes"
	"testing"

	"github.com/sveg/paintercore"
	"github.com/sveg/paintercore/backend/software"
	"github.com/sveg/paintercore/editcontext"
)

func TestNewDocumentHasAnOutputOperation(t *testing.T) {
	doc := paintercore.NewDocument()
	if err := doc.Validate(); err != nil {
		t.Fatalf("NewDocument produced an invalid document: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	doc := paintercore.NewDocument()

	var buf bytes.Buffer
	if err := paintercore.Save(&buf, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := paintercore.Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := loaded.Validate(); err != nil {
		t.Fatalf("loaded document is invalid: %v", err)
	}
}

func TestRenderAndGenerateDotgraph(t *testing.T) {
	doc := paintercore.NewDocument()
	ctx := editcontext.New(doc)
	be := software.New(doc, 4, 4)

	reg, err := paintercore.Render(ctx, be, 4, nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if reg.Contents == nil {
		t.Fatal("Render returned no contents")
	}

	dot := paintercore.GenerateDotgraph(ctx)
	if dot == "" {
		t.Fatal("GenerateDotgraph returned an empty string")
	}
}
