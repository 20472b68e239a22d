// Package codec implements paintercore's versioned binary file format:
// a fixed magic, a little-endian format version, and a
// version-specific payload (spec.md §4.4). Only format_version 1 ships
// here; RegisterVersion exists so a future revision can be added
// without touching Save/Load call sites (spec.md §9's versioned
// painter-data modules motivate keeping this seam open).
package codec

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"io"

	"golang.org/x/text/unicode/norm"

	"github.com/sveg/paintercore/depgraph"
	"github.com/sveg/paintercore/document"
	"github.com/sveg/paintercore/entities"
	"github.com/sveg/paintercore/id"
	"github.com/sveg/paintercore/idmap"
)

// Magic identifies a paintercore file. It is always the first 12
// bytes of a valid stream.
const Magic = "PAINTER_SVEG"

// CurrentVersion is the format_version Save writes.
const CurrentVersion uint32 = 1

const headerSize = len(Magic) + 4 // magic + little-endian u32 version

type encodeFunc func(*document.Document) ([]byte, error)
type decodeFunc func([]byte) (*document.Document, error)

type versionCodec struct {
	encode encodeFunc
	decode decodeFunc
}

var versions = map[uint32]versionCodec{
	1: {encode: encodeV1, decode: decodeV1},
}

// RegisterVersion installs encode/decode functions for format_version,
// so Save/Load can target or accept it without any change to this
// package's exported surface. Intended for a future format revision;
// registering over an existing version replaces it.
func RegisterVersion(version uint32, encode encodeFunc, decode decodeFunc) {
	versions[version] = versionCodec{encode: encode, decode: decode}
}

// Encode serializes doc at CurrentVersion into a full file image:
// magic, version, payload.
func Encode(doc *document.Document) ([]byte, error) {
	vc, ok := versions[CurrentVersion]
	if !ok {
		panic("codec: CurrentVersion has no registered codec, this is a programmer error")
	}
	payload, err := vc.encode(doc)
	if err != nil {
		return nil, &SerializeError{Err: err}
	}

	buf := make([]byte, headerSize+len(payload))
	copy(buf, Magic)
	binary.LittleEndian.PutUint32(buf[len(Magic):headerSize], CurrentVersion)
	copy(buf[headerSize:], payload)
	return buf, nil
}

// Decode parses a full file image, dispatching to the codec registered
// for its format_version.
func Decode(data []byte) (*document.Document, error) {
	if len(data) < headerSize || string(data[:len(Magic)]) != Magic {
		got := data
		if len(got) > len(Magic) {
			got = got[:len(Magic)]
		}
		return nil, &InvalidMagic{Got: got}
	}

	version := binary.LittleEndian.Uint32(data[len(Magic):headerSize])
	vc, ok := versions[version]
	if !ok {
		return nil, &UnknownVersion{Version: version}
	}

	doc, err := vc.decode(data[headerSize:])
	if err != nil {
		return nil, &DeserializeError{Err: err}
	}
	return doc, nil
}

// Save writes doc to w in the current format version.
func Save(w io.Writer, doc *document.Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

// Load reads a full file image from r and decodes it.
func Load(r io.Reader) (*document.Document, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, &ReadError{Err: err}
	}
	return Decode(buf.Bytes())
}

// payloadV1 is the canonical JSON shape of format_version 1: every
// entity store as a counter+entries snapshot, the operation graph as
// a plain adjacency map, and canvas metadata verbatim.
type payloadV1 struct {
	Brushes    idmap.Snapshot[entities.Brush]                `json:"brushes"`
	Glyphs     idmap.Snapshot[entities.Glyph]                `json:"glyphs"`
	Layers     idmap.Snapshot[entities.Layer]                `json:"layers"`
	Operations idmap.Snapshot[entities.Operation]            `json:"operations"`
	Graph      map[id.Id[id.Operation]][]id.Id[id.Operation] `json:"graph"`
	Metadata   document.Metadata                             `json:"metadata"`
}

func encodeV1(doc *document.Document) ([]byte, error) {
	brushes := doc.Brushes.ToSnapshot()
	for k, b := range brushes.Entries {
		b.Name = norm.NFC.String(b.Name)
		brushes.Entries[k] = b
	}
	layers := doc.Layers.ToSnapshot()
	for k, l := range layers.Entries {
		l.Name = norm.NFC.String(l.Name)
		layers.Entries[k] = l
	}

	p := payloadV1{
		Brushes:    brushes,
		Glyphs:     doc.Glyphs.ToSnapshot(),
		Layers:     layers,
		Operations: doc.Operations.ToSnapshot(),
		Graph:      doc.Graph.Export(),
		Metadata:   doc.Metadata,
	}
	return json.Marshal(p)
}

func decodeV1(data []byte) (*document.Document, error) {
	var p payloadV1
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &document.Document{
		Brushes:    idmap.FromSnapshot[id.Brush](p.Brushes),
		Glyphs:     idmap.FromSnapshot[id.Glyph](p.Glyphs),
		Layers:     idmap.FromSnapshot[id.Layer](p.Layers),
		Operations: idmap.FromSnapshot[id.Operation](p.Operations),
		Graph:      depgraph.Import(p.Graph),
		Metadata:   p.Metadata,
	}, nil
}
