package ir

// JointValue is one servo target within a frame.
type JointValue struct {
	ID       int
	Position float64 // rad
}

// Frame is one motion keyframe. Field values mirror the on-disk mapping;
// Dxl holds the joint targets in document order. IDs are not required to be
// unique or sorted.
type Frame struct {
	Time     int
	Delay    int
	Repeat   int
	Name     string
	Selected bool
	Dxl      []JointValue
}

func (f *Frame) Clone() *Frame {
	res := &Frame{}
	*res = *f
	res.Dxl = make([]JointValue, len(f.Dxl))
	copy(res.Dxl, f.Dxl)
	return res
}

// Joint returns a pointer to the first joint entry with the given id, or nil.
func (f *Frame) Joint(id int) *JointValue {
	for i := range f.Dxl {
		if f.Dxl[i].ID == id {
			return &f.Dxl[i]
		}
	}
	return nil
}

// Entry is one top-level document element: exactly one of Frame, Blob is
// non-nil.
type Entry struct {
	Frame *Frame
	Blob  *Node
}

// Document is the ordered top-level sequence of one motion file. The entry
// order is the original document order, so frames and blobs keep their
// interleaving through a load/save round trip.
type Document struct {
	Entries []Entry
}

func (d *Document) AppendFrame(f *Frame) {
	d.Entries = append(d.Entries, Entry{Frame: f})
}

func (d *Document) AppendBlob(y *Node) {
	d.Entries = append(d.Entries, Entry{Blob: y})
}

// Frames returns the frames in document order.
func (d *Document) Frames() []*Frame {
	var res []*Frame
	for i := range d.Entries {
		if f := d.Entries[i].Frame; f != nil {
			res = append(res, f)
		}
	}
	return res
}

// Blobs returns the unrecognized entries in document order.
func (d *Document) Blobs() []*Node {
	var res []*Node
	for i := range d.Entries {
		if b := d.Entries[i].Blob; b != nil {
			res = append(res, b)
		}
	}
	return res
}

// FrameNames returns frame names in document order, duplicates included.
func (d *Document) FrameNames() []string {
	var res []string
	for i := range d.Entries {
		if f := d.Entries[i].Frame; f != nil {
			res = append(res, f.Name)
		}
	}
	return res
}

// FrameByName returns the first frame with the given name, or nil.
func (d *Document) FrameByName(name string) *Frame {
	for i := range d.Entries {
		if f := d.Entries[i].Frame; f != nil && f.Name == name {
			return f
		}
	}
	return nil
}
