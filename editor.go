package motion

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/WJJJ2004/motion-editor/debug"
	"github.com/WJJJ2004/motion-editor/encode"
	"github.com/WJJJ2004/motion-editor/ir"
	"github.com/WJJJ2004/motion-editor/parse"
)

// Editor holds one loaded motion document plus the joint mapping used for
// edits. Not safe for concurrent use.
type Editor struct {
	doc       *ir.Document
	jointMap  JointMap
	parseOpts []parse.ParseOption
	encOpts   []encode.EncodeOption
}

type Option func(*Editor)

// WithJointMap replaces the default joint mapping.
func WithJointMap(m map[string]int) Option {
	return func(e *Editor) { e.jointMap = JointMap(m).clone() }
}

// WithParseOptions forwards options to parsing on Load, e.g.
// parse.UniqueNames().
func WithParseOptions(opts ...parse.ParseOption) Option {
	return func(e *Editor) { e.parseOpts = opts }
}

// WithEncodeOptions forwards options to serialization on Save, e.g.
// encode.LegacyOrder().
func WithEncodeOptions(opts ...encode.EncodeOption) Option {
	return func(e *Editor) { e.encOpts = opts }
}

func New(opts ...Option) *Editor {
	e := &Editor{
		doc:      &ir.Document{},
		jointMap: DefaultJointMap(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load reads and parses the motion file at path, replacing all editor
// state. The previous document is dropped before parsing, so a failed load
// leaves an empty document rather than the old one.
func (e *Editor) Load(path string) error {
	e.doc = &ir.Document{}
	d, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read %q: %w", path, err)
	}
	doc, err := parse.Parse(d, e.parseOpts...)
	if err != nil {
		return err
	}
	e.doc = doc
	if debug.Load() {
		debug.Logf("load %q: frames %v\n", path, doc.FrameNames())
	}
	return nil
}

// Save serializes the document to path, overwriting existing content. The
// write goes to a temp file in the target directory which is then renamed
// into place, so an interrupted save does not clobber the target. The
// target's file mode survives the rename; a new file gets 0644.
func (e *Editor) Save(path string) error {
	mode := os.FileMode(0o644)
	if st, err := os.Stat(path); err == nil {
		mode = st.Mode().Perm()
	}
	f, err := os.CreateTemp(filepath.Dir(path), ".motion-*")
	if err != nil {
		return fmt.Errorf("could not open file to write %q: %w", path, err)
	}
	tmp := f.Name()
	if err := encode.Encode(e.doc, f, e.encOpts...); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	if err := os.Chmod(tmp, mode); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	if debug.Save() {
		debug.Logf("save %q: %d entries\n", path, len(e.doc.Entries))
	}
	return nil
}

// FrameNames returns frame names in document order, duplicates included.
func (e *Editor) FrameNames() []string {
	return e.doc.FrameNames()
}

// Frame returns a copy of the first frame with the given name. The second
// result is false when no frame matches; mutating the copy does not affect
// editor state.
func (e *Editor) Frame(name string) (*ir.Frame, bool) {
	f := e.doc.FrameByName(name)
	if f == nil {
		return nil, false
	}
	return f.Clone(), true
}

// EditJoints applies named joint-position updates to the first frame with
// the given name. A missing frame is ErrNotFound regardless of strict. Each
// pair is applied independently: an unresolvable joint name fails the whole
// call with ErrUnknownJoint under strict and is skipped otherwise; pairs
// applied before a strict failure stay applied. A resolved id absent from
// the frame gets a new joint entry appended.
func (e *Editor) EditJoints(name string, updates map[string]float64, strict bool) error {
	f := e.doc.FrameByName(name)
	if f == nil {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	for jname, rad := range updates {
		id, ok := e.jointMap[jname]
		if !ok {
			if strict {
				return fmt.Errorf("%w: %q", ErrUnknownJoint, jname)
			}
			continue
		}
		if jv := f.Joint(id); jv != nil {
			jv.Position = rad
		} else {
			// some files omit ids; add the entry rather than fail
			f.Dxl = append(f.Dxl, ir.JointValue{ID: id, Position: rad})
		}
		if debug.Edit() {
			debug.Logf("edit %q: %s (id %d) -> %g\n", name, jname, id, rad)
		}
	}
	return nil
}

// EditArmJoints is EditJoints restricted to the arm+torso joint group, non
// strict. An update set with no relevant joints is a silent no-op, before
// the frame name is even resolved.
func (e *Editor) EditArmJoints(name string, updates map[string]float64) error {
	sub := make(map[string]float64, len(armJoints))
	for _, j := range armJoints {
		if v, ok := updates[j]; ok {
			sub[j] = v
		}
	}
	if len(sub) == 0 {
		return nil
	}
	return e.EditJoints(name, sub, false)
}

// JointMap returns a copy of the current joint mapping.
func (e *Editor) JointMap() JointMap {
	return e.jointMap.clone()
}

// SetJointMap replaces the joint mapping. Only subsequent edits are
// affected; loaded frame data is untouched.
func (e *Editor) SetJointMap(m map[string]int) {
	e.jointMap = JointMap(m).clone()
}

// PrintFrame dumps one frame to stdout, colored on terminals.
func PrintFrame(f *ir.Frame) {
	var opts []encode.EncodeOption
	if isatty.IsTerminal(os.Stdout.Fd()) {
		opts = append(opts, encode.EncodeColors(encode.NewColors()))
	}
	encode.Fprint(os.Stdout, f, opts...)
}
