// Package encode serializes motion documents back to YAML.
//
// # Usage
//
//	var buf bytes.Buffer
//	if err := encode.Encode(doc, &buf); err != nil {
//	    return err
//	}
//
//	// Legacy ordering (all blobs before all frames)
//	err := encode.Encode(doc, &buf, encode.LegacyOrder())
//
// Frames are re-emitted canonically: a mapping with exactly the keys time,
// delay, repeat, name, selected, dxl in that order. Blobs are re-expanded
// from their node trees, so they round-trip structurally; scalar quoting and
// layout are best effort.
//
// # Related Packages
//
//   - github.com/WJJJ2004/motion-editor/ir - IR representation
//   - github.com/WJJJ2004/motion-editor/parse - Parse YAML to IR
package encode
