// Package parse classifies and parses motion document YAML into IR.
//
// # Usage
//
//	doc, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//	names := doc.FrameNames()
//
// The top level of a motion document must be a YAML sequence. Each element
// is classified: a mapping carrying all of the keys dxl, time and name is a
// frame candidate and is parsed into an ir.Frame; every other element is
// kept verbatim as an ir.Node blob. Classification looks only at key
// presence; a candidate with a malformed dxl fails the whole parse.
//
// # Related Packages
//
//   - github.com/WJJJ2004/motion-editor/ir - IR representation
//   - github.com/WJJJ2004/motion-editor/encode - Encode IR to YAML
package parse
