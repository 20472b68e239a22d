package codec_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/sveg/paintercore/codec"
	"github.com/sveg/paintercore/document"
	"github.com/sveg/paintercore/document/template"
	"github.com/sveg/paintercore/entities"
)

func TestSaveLoadRoundTripsTemplateDocument(t *testing.T) {
	doc := template.New()

	var buf bytes.Buffer
	if err := codec.Save(&buf, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := codec.Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got.Operations.Len() != doc.Operations.Len() {
		t.Fatalf("Operations.Len() = %d, want %d", got.Operations.Len(), doc.Operations.Len())
	}
	if got.Layers.Len() != doc.Layers.Len() {
		t.Fatalf("Layers.Len() = %d, want %d", got.Layers.Len(), doc.Layers.Len())
	}
	if got.Metadata.PreviewCanvasSize != doc.Metadata.PreviewCanvasSize {
		t.Fatalf("PreviewCanvasSize = %v, want %v", got.Metadata.PreviewCanvasSize, doc.Metadata.PreviewCanvasSize)
	}
	if err := got.Validate(); err != nil {
		t.Fatalf("round-tripped document failed Validate: %v", err)
	}
}

func TestSaveLoadRoundTripsBrushNameAndPressure(t *testing.T) {
	doc := document.New()
	glyphID := doc.Glyphs.Insert(entities.PngGlyph([]byte{0x89, 'P', 'N', 'G'}))
	brushID := doc.Brushes.Insert(entities.Brush{
		Name:  "Round Brush",
		Glyph: glyphID,
		Size:  entities.PressureSettings{Min: 1, Max: 10, Random: 0.2},
		Flow:  entities.Fixed(1),
	})

	var buf bytes.Buffer
	if err := codec.Save(&buf, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := codec.Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	brush, ok := got.Brushes.Get(brushID)
	if !ok {
		t.Fatalf("brush %v missing after round trip", brushID)
	}
	if brush.Name != "Round Brush" {
		t.Fatalf("Name = %q, want %q", brush.Name, "Round Brush")
	}
	if brush.Size != (entities.PressureSettings{Min: 1, Max: 10, Random: 0.2}) {
		t.Fatalf("Size = %+v, want {1 10 0.2}", brush.Size)
	}
}

func TestSaveLoadNormalizesNameToNFC(t *testing.T) {
	// "e" + combining acute accent (NFD) should round-trip as the
	// single precomposed "é" (NFC).
	decomposed := "Café"
	doc := document.New()
	doc.Layers.Insert(entities.Layer{Name: decomposed})

	var buf bytes.Buffer
	if err := codec.Save(&buf, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := codec.Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for _, pair := range got.Layers.Iter() {
		if pair.Value.Name == decomposed {
			t.Fatalf("layer name was not NFC-normalized: %q", pair.Value.Name)
		}
		if pair.Value.Name != "Café" {
			t.Fatalf("layer name = %q, want %q", pair.Value.Name, "Café")
		}
	}
}

func TestLoadRejectsInvalidMagic(t *testing.T) {
	_, err := codec.Load(bytes.NewReader([]byte("not a painter file at all")))
	var bad *codec.InvalidMagic
	if !errors.As(err, &bad) {
		t.Fatalf("err = %v (%T), want *InvalidMagic", err, err)
	}
}

func TestLoadRejectsShortInput(t *testing.T) {
	_, err := codec.Load(bytes.NewReader([]byte("PAINTER_")))
	var bad *codec.InvalidMagic
	if !errors.As(err, &bad) {
		t.Fatalf("err = %v (%T), want *InvalidMagic", err, err)
	}
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	buf := make([]byte, 16)
	copy(buf, codec.Magic)
	binary.LittleEndian.PutUint32(buf[12:], 99)

	_, err := codec.Load(bytes.NewReader(buf))
	var bad *codec.UnknownVersion
	if !errors.As(err, &bad) {
		t.Fatalf("err = %v (%T), want *UnknownVersion", err, err)
	}
	if bad.Version != 99 {
		t.Fatalf("Version = %d, want 99", bad.Version)
	}
}

func TestLoadRejectsCorruptPayload(t *testing.T) {
	buf := make([]byte, 0, 20)
	buf = append(buf, []byte(codec.Magic)...)
	versionBytes := make([]byte, 4)
	binary.LittleEndian.PutUint32(versionBytes, codec.CurrentVersion)
	buf = append(buf, versionBytes...)
	buf = append(buf, []byte("{not json")...)

	_, err := codec.Load(bytes.NewReader(buf))
	var bad *codec.DeserializeError
	if !errors.As(err, &bad) {
		t.Fatalf("err = %v (%T), want *DeserializeError", err, err)
	}
}

func TestEncodeProducesExpectedHeader(t *testing.T) {
	doc := document.New()
	data, err := codec.Encode(doc)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if string(data[:12]) != codec.Magic {
		t.Fatalf("magic = %q, want %q", data[:12], codec.Magic)
	}
	version := binary.LittleEndian.Uint32(data[12:16])
	if version != codec.CurrentVersion {
		t.Fatalf("version = %d, want %d", version, codec.CurrentVersion)
	}
}

func TestCounterSurvivesRoundTrip(t *testing.T) {
	doc := document.New()
	doc.Layers.Insert(entities.Layer{Name: "a"})
	doc.Layers.Insert(entities.Layer{Name: "b"})

	var buf bytes.Buffer
	if err := codec.Save(&buf, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := codec.Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	next := got.Layers.Insert(entities.Layer{Name: "c"})
	if next.Uint64() != 2 {
		t.Fatalf("next id after reload = %d, want 2 (counter must survive the round trip)", next.Uint64())
	}
}
