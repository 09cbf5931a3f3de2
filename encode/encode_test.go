package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/WJJJ2004/motion-editor/ir"
	"github.com/WJJJ2004/motion-editor/parse"
)

const testDoc = `- meta
- author: robit
  version: 3
- time: 100
  delay: 10
  name: "1"
  selected: true
  dxl:
    - id: 1
      position: 0.5
    - id: 22
      position: -0.25
- time: 200
  name: "2"
  dxl: []
`

func mustParse(t *testing.T, d []byte) *ir.Document {
	t.Helper()
	doc, err := parse.Parse(d)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return doc
}

func encodeString(t *testing.T, doc *ir.Document, opts ...EncodeOption) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Encode(doc, &buf, opts...); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return buf.String()
}

func TestEncodeRoundTrip(t *testing.T) {
	doc := mustParse(t, []byte(testDoc))
	out := encodeString(t, doc)
	doc2 := mustParse(t, []byte(out))

	if d := cmp.Diff(doc.Frames(), doc2.Frames()); d != "" {
		t.Errorf("frames (-first +second):\n%s", d)
	}
	blobs, blobs2 := doc.Blobs(), doc2.Blobs()
	if len(blobs) != len(blobs2) {
		t.Fatalf("got %d blobs, want %d", len(blobs2), len(blobs))
	}
	for i := range blobs {
		if !ir.Equal(blobs[i], blobs2[i]) {
			t.Errorf("blob %d changed across round trip", i)
		}
	}
}

func TestEncodeStable(t *testing.T) {
	doc := mustParse(t, []byte(testDoc))
	out1 := encodeString(t, doc)
	out2 := encodeString(t, mustParse(t, []byte(out1)))
	if out1 != out2 {
		dmp := diffpatch.New()
		diffs := dmp.DiffMain(out1, out2, false)
		t.Fatalf("encoding not stable:\n%s", dmp.DiffPrettyText(diffs))
	}
}

func TestEncodePreservesInterleaving(t *testing.T) {
	in := `- {time: 0, name: a, dxl: []}
- meta
- {time: 1, name: b, dxl: []}
`
	out := encodeString(t, mustParse(t, []byte(in)))
	doc := mustParse(t, []byte(out))
	var kinds []string
	for _, e := range doc.Entries {
		if e.Frame != nil {
			kinds = append(kinds, "frame")
		} else {
			kinds = append(kinds, "blob")
		}
	}
	want := []string{"frame", "blob", "frame"}
	if d := cmp.Diff(want, kinds); d != "" {
		t.Errorf("entry order (-want +got):\n%s", d)
	}
}

func TestEncodeLegacyOrder(t *testing.T) {
	in := `- {time: 0, name: a, dxl: []}
- meta
- {time: 1, name: b, dxl: []}
`
	out := encodeString(t, mustParse(t, []byte(in)), LegacyOrder())
	doc := mustParse(t, []byte(out))
	var kinds []string
	for _, e := range doc.Entries {
		if e.Frame != nil {
			kinds = append(kinds, "frame")
		} else {
			kinds = append(kinds, "blob")
		}
	}
	want := []string{"blob", "frame", "frame"}
	if d := cmp.Diff(want, kinds); d != "" {
		t.Errorf("entry order (-want +got):\n%s", d)
	}
}

func TestEncodeFrameFieldOrder(t *testing.T) {
	in := "- {selected: true, dxl: [], name: f, repeat: 2, delay: 1, time: 0}\n"
	out := encodeString(t, mustParse(t, []byte(in)))
	last := -1
	for _, key := range []string{"time:", "delay:", "repeat:", "name:", "selected:", "dxl:"} {
		i := strings.Index(out, key)
		if i < 0 {
			t.Fatalf("key %s missing in output:\n%s", key, out)
		}
		if i < last {
			t.Fatalf("key %s out of order in output:\n%s", key, out)
		}
		last = i
	}
}

func TestFprint(t *testing.T) {
	f := &ir.Frame{
		Time: 100,
		Name: "wave",
		Dxl:  []ir.JointValue{{ID: 1, Position: 0.33}},
	}
	var buf bytes.Buffer
	if err := Fprint(&buf, f); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"wave", "100", "id: 1", "0.33"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
