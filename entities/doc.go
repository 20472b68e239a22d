// Package entities defines the value types that make up a paintercore
// document: Color, BlendMode, Brush, Glyph, Layer, Stroke data, and
// Operation. See spec §3.
package entities
