package parse

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/WJJJ2004/motion-editor/debug"
	"github.com/WJJJ2004/motion-editor/ir"
)

// Parse decodes a motion document. The top level must be a YAML sequence;
// every other shape is ErrFormat. Entries carrying the dxl, time and name
// keys are parsed as frames, the rest are preserved as blobs. Any malformed
// frame makes the whole parse fail with ErrParse.
func Parse(d []byte, opts ...ParseOption) (*ir.Document, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	var root any
	if err := yaml.UnmarshalWithOptions(d, &root, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	seq, ok := root.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: top level must be a sequence", ErrFormat)
	}
	doc := &ir.Document{}
	seen := map[string]bool{}
	for i, item := range seq {
		y, err := ir.FromYAML(item)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrFormat, i, err)
		}
		if !isFrameCandidate(y) {
			doc.AppendBlob(y)
			continue
		}
		f, err := parseFrame(y)
		if err != nil {
			return nil, err
		}
		if pOpts.uniqueNames {
			if seen[f.Name] {
				return nil, fmt.Errorf("%w: duplicate frame name %q", ErrParse, f.Name)
			}
			seen[f.Name] = true
		}
		doc.AppendFrame(f)
	}
	if debug.Load() {
		debug.Logf("parse: %d entries, %d frames\n", len(doc.Entries), len(doc.Frames()))
	}
	return doc, nil
}

// isFrameCandidate applies the classification rule: a mapping with all of
// dxl, time and name present. Key presence only, values are not inspected.
func isFrameCandidate(y *ir.Node) bool {
	if y.Type != ir.ObjectType {
		return false
	}
	return ir.Get(y, "dxl") != nil &&
		ir.Get(y, "time") != nil &&
		ir.Get(y, "name") != nil
}

func parseFrame(y *ir.Node) (*ir.Frame, error) {
	f := &ir.Frame{}
	var err error
	// name first so later errors can identify the frame
	if f.Name, err = stringField(y, "name", ""); err != nil {
		return nil, err
	}
	if f.Time, err = intField(y, f.Name, "time"); err != nil {
		return nil, err
	}
	if f.Delay, err = intField(y, f.Name, "delay"); err != nil {
		return nil, err
	}
	if f.Repeat, err = intField(y, f.Name, "repeat"); err != nil {
		return nil, err
	}
	if f.Selected, err = boolField(y, f.Name); err != nil {
		return nil, err
	}

	dxl := ir.Get(y, "dxl")
	if dxl == nil || dxl.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: frame %q: missing dxl sequence", ErrParse, f.Name)
	}
	for _, e := range dxl.Values {
		if e.Type != ir.ObjectType {
			// tolerated, same as unknown metadata within a frame
			continue
		}
		jv, err := parseJoint(e, f.Name)
		if err != nil {
			return nil, err
		}
		f.Dxl = append(f.Dxl, jv)
	}
	return f, nil
}

func parseJoint(e *ir.Node, frame string) (ir.JointValue, error) {
	var jv ir.JointValue
	idY := ir.Get(e, "id")
	posY := ir.Get(e, "position")
	if idY == nil {
		return jv, fmt.Errorf("%w: frame %q: dxl entry missing id", ErrParse, frame)
	}
	if posY == nil {
		return jv, fmt.Errorf("%w: frame %q: dxl entry missing position", ErrParse, frame)
	}
	id, ok := intVal(idY)
	if !ok {
		return jv, fmt.Errorf("%w: frame %q: dxl id is not an integer", ErrParse, frame)
	}
	pos, ok := floatVal(posY)
	if !ok {
		return jv, fmt.Errorf("%w: frame %q: dxl position is not a number", ErrParse, frame)
	}
	jv.ID = id
	jv.Position = pos
	return jv, nil
}

func intField(y *ir.Node, frame, field string) (int, error) {
	v := ir.Get(y, field)
	if v == nil {
		return 0, nil
	}
	i, ok := intVal(v)
	if !ok {
		return 0, fmt.Errorf("%w: frame %q: field %s is not an integer", ErrParse, frame, field)
	}
	return i, nil
}

func stringField(y *ir.Node, field, dflt string) (string, error) {
	v := ir.Get(y, field)
	if v == nil {
		return dflt, nil
	}
	// scalars coerce textually: a frame named "1" is written back
	// unquoted and reads in as a number
	switch v.Type {
	case ir.StringType:
		return v.String, nil
	case ir.NumberType:
		if v.Int64 != nil {
			return strconv.FormatInt(*v.Int64, 10), nil
		}
		if v.Float64 != nil {
			return strconv.FormatFloat(*v.Float64, 'g', -1, 64), nil
		}
	case ir.BoolType:
		return strconv.FormatBool(v.Bool), nil
	}
	return "", fmt.Errorf("%w: field %s is not a string", ErrParse, field)
}

func boolField(y *ir.Node, frame string) (bool, error) {
	v := ir.Get(y, "selected")
	if v == nil {
		return false, nil
	}
	switch v.Type {
	case ir.BoolType:
		return v.Bool, nil
	case ir.StringType:
		if b, err := strconv.ParseBool(v.String); err == nil {
			return b, nil
		}
	}
	return false, fmt.Errorf("%w: frame %q: field selected is not a bool", ErrParse, frame)
}

func intVal(y *ir.Node) (int, bool) {
	switch y.Type {
	case ir.NumberType:
		if y.Int64 != nil {
			return int(*y.Int64), true
		}
	case ir.StringType:
		if i, err := strconv.ParseInt(y.String, 10, 64); err == nil {
			return int(i), true
		}
	}
	return 0, false
}

func floatVal(y *ir.Node) (float64, bool) {
	switch y.Type {
	case ir.NumberType:
		if y.Float64 != nil {
			return *y.Float64, true
		}
		if y.Int64 != nil {
			return float64(*y.Int64), true
		}
	case ir.StringType:
		if f, err := strconv.ParseFloat(y.String, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
