package encode

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/WJJJ2004/motion-editor/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	indent      int
	legacyOrder bool

	Color func(ColorAttr, string) string
}

// Encode writes doc to w as a YAML top-level sequence. Entries appear in
// their original document order unless LegacyOrder is set, in which case all
// blobs precede all frames (the ordering of the legacy tool).
func Encode(doc *ir.Document, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	seq := make([]any, 0, len(doc.Entries))
	for _, e := range ordered(doc, es) {
		switch {
		case e.Blob != nil:
			seq = append(seq, e.Blob.ToYAML())
		case e.Frame != nil:
			seq = append(seq, frameYAML(e.Frame))
		}
	}
	out, err := yaml.MarshalWithOptions(seq,
		yaml.Indent(es.indent),
		yaml.IndentSequence(true),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return nil
}

func ordered(doc *ir.Document, es *EncState) []ir.Entry {
	if !es.legacyOrder {
		return doc.Entries
	}
	res := make([]ir.Entry, 0, len(doc.Entries))
	for _, b := range doc.Blobs() {
		res = append(res, ir.Entry{Blob: b})
	}
	for _, f := range doc.Frames() {
		res = append(res, ir.Entry{Frame: f})
	}
	return res
}

// frameYAML emits the canonical frame mapping. Key order is fixed.
func frameYAML(f *ir.Frame) yaml.MapSlice {
	dxl := make([]any, len(f.Dxl))
	for i := range f.Dxl {
		jv := &f.Dxl[i]
		dxl[i] = yaml.MapSlice{
			{Key: "id", Value: jv.ID},
			{Key: "position", Value: jv.Position},
		}
	}
	return yaml.MapSlice{
		{Key: "time", Value: f.Time},
		{Key: "delay", Value: f.Delay},
		{Key: "repeat", Value: f.Repeat},
		{Key: "name", Value: f.Name},
		{Key: "selected", Value: f.Selected},
		{Key: "dxl", Value: dxl},
	}
}
