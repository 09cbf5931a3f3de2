package motion

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/WJJJ2004/motion-editor/ir"
	"github.com/WJJJ2004/motion-editor/parse"
)

const testMotion = `- meta
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
  dxl:
    - id: 0
      position: 0.1
`

func writeMotion(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "motion.yaml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func loadEditor(t *testing.T, data string) (*Editor, string) {
	t.Helper()
	path := writeMotion(t, data)
	me := New()
	if err := me.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return me, path
}

func TestLoadSaveRoundTrip(t *testing.T) {
	me, path := loadEditor(t, testMotion)
	before, ok := me.Frame("1")
	if !ok {
		t.Fatal("frame 1 missing")
	}
	if err := me.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	me2 := New()
	if err := me2.Load(path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	after, ok := me2.Frame("1")
	if !ok {
		t.Fatal("frame 1 missing after round trip")
	}
	if d := cmp.Diff(before, after); d != "" {
		t.Errorf("frame 1 (-before +after):\n%s", d)
	}
	if d := cmp.Diff(me.FrameNames(), me2.FrameNames()); d != "" {
		t.Errorf("frame names (-before +after):\n%s", d)
	}
}

func TestBlobPreservation(t *testing.T) {
	me, path := loadEditor(t, testMotion)
	if err := me.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	doc, err := parse.Parse(d)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	blobs := doc.Blobs()
	if len(blobs) != 1 {
		t.Fatalf("got %d blobs, want 1", len(blobs))
	}
	if !ir.Equal(blobs[0], ir.FromString("meta")) {
		t.Errorf("blob changed: %+v", blobs[0])
	}
}

func TestFrameLookup(t *testing.T) {
	me, _ := loadEditor(t, testMotion)
	if got := me.FrameNames(); len(got) != 2 || got[0] != "1" || got[1] != "2" {
		t.Fatalf("frame names: got %v", got)
	}
	if _, ok := me.Frame("missing"); ok {
		t.Error("lookup of missing frame succeeded")
	}
	f, ok := me.Frame("1")
	if !ok {
		t.Fatal("frame 1 missing")
	}
	// returned frame is a snapshot
	f.Dxl[0].Position = 99
	f2, _ := me.Frame("1")
	if f2.Dxl[0].Position == 99 {
		t.Error("mutating returned frame changed editor state")
	}
}

func TestEditJointsNonStrict(t *testing.T) {
	me, _ := loadEditor(t, testMotion)
	err := me.EditJoints("1", map[string]float64{
		"rotate_1":              0.33,
		"totally_unknown_joint": -0.11,
	}, false)
	if err != nil {
		t.Fatalf("EditJoints: %v", err)
	}
	f, _ := me.Frame("1")
	want := &ir.Frame{
		Time:     100,
		Delay:    10,
		Name:     "1",
		Selected: true,
		Dxl: []ir.JointValue{
			{ID: 1, Position: 0.33},
			{ID: 22, Position: -0.25},
		},
	}
	if d := cmp.Diff(want, f); d != "" {
		t.Errorf("frame 1 (-want +got):\n%s", d)
	}
}

func TestEditJointsStrict(t *testing.T) {
	me, _ := loadEditor(t, testMotion)
	err := me.EditJoints("1", map[string]float64{
		"rotate_1":              0.33,
		"totally_unknown_joint": -0.11,
	}, true)
	if !errors.Is(err, ErrUnknownJoint) {
		t.Fatalf("got %v, want %v", err, ErrUnknownJoint)
	}
	// pairs before the failing one may have been applied; map order is
	// unspecified, so only both outcomes are legal for rotate_1
	f, _ := me.Frame("1")
	if len(f.Dxl) != 2 {
		t.Fatalf("joint count changed: %d", len(f.Dxl))
	}
	if p := f.Dxl[0].Position; p != 0.5 && p != 0.33 {
		t.Errorf("rotate_1 position %g, want 0.5 or 0.33", p)
	}
}

func TestEditJointsNewID(t *testing.T) {
	me, _ := loadEditor(t, testMotion)
	// rotate_torso (id 22) exists in frame 1 but not frame 2
	if err := me.EditJoints("2", map[string]float64{"rotate_torso": 1.2}, true); err != nil {
		t.Fatalf("EditJoints: %v", err)
	}
	f, _ := me.Frame("2")
	if len(f.Dxl) != 2 {
		t.Fatalf("got %d joints, want 2", len(f.Dxl))
	}
	jv := f.Joint(22)
	if jv == nil || jv.Position != 1.2 {
		t.Fatalf("id 22 not appended: %+v", f.Dxl)
	}
}

func TestEditJointsIdempotent(t *testing.T) {
	me, _ := loadEditor(t, testMotion)
	updates := map[string]float64{"rotate_1": 0.4, "rotate_torso": -0.2}
	for range 2 {
		if err := me.EditJoints("1", updates, true); err != nil {
			t.Fatalf("EditJoints: %v", err)
		}
	}
	f, _ := me.Frame("1")
	if len(f.Dxl) != 2 {
		t.Fatalf("repeated edit changed joint count: %d", len(f.Dxl))
	}
	if f.Joint(1).Position != 0.4 || f.Joint(22).Position != -0.2 {
		t.Errorf("positions: %+v", f.Dxl)
	}
}

func TestEditJointsMissingFrame(t *testing.T) {
	me, _ := loadEditor(t, testMotion)
	for _, strict := range []bool{false, true} {
		err := me.EditJoints("nonexistent", map[string]float64{"rotate_1": 0}, strict)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("strict=%t: got %v, want %v", strict, err, ErrNotFound)
		}
	}
}

func TestEditArmJointsShortCircuit(t *testing.T) {
	me, _ := loadEditor(t, testMotion)
	// nothing in the arm group: no mutation, no error
	if err := me.EditArmJoints("1", map[string]float64{"unrelated_joint": 1.0}); err != nil {
		t.Fatalf("EditArmJoints: %v", err)
	}
	f, _ := me.Frame("1")
	if f.Dxl[0].Position != 0.5 {
		t.Error("irrelevant update mutated the frame")
	}
	// the short circuit runs before frame resolution
	if err := me.EditArmJoints("nonexistent", map[string]float64{"unrelated_joint": 1.0}); err != nil {
		t.Fatalf("missing frame with irrelevant updates: %v", err)
	}
	// a relevant update against a missing frame still fails
	err := me.EditArmJoints("nonexistent", map[string]float64{"rotate_1": 1.0})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want %v", err, ErrNotFound)
	}
}

func TestEditArmJointsApplies(t *testing.T) {
	me, _ := loadEditor(t, testMotion)
	err := me.EditArmJoints("1", map[string]float64{
		"rotate_1":        0.7,
		"unrelated_joint": 3.0,
	})
	if err != nil {
		t.Fatalf("EditArmJoints: %v", err)
	}
	f, _ := me.Frame("1")
	if f.Joint(1).Position != 0.7 {
		t.Errorf("rotate_1: got %g, want 0.7", f.Joint(1).Position)
	}
	if len(f.Dxl) != 2 {
		t.Errorf("joint count changed: %d", len(f.Dxl))
	}
}

func TestFailedLoadLeavesEmptyDocument(t *testing.T) {
	me, _ := loadEditor(t, testMotion)
	bad := writeMotion(t, "- {time: 0, name: f, dxl: 3}\n")
	if err := me.Load(bad); !errors.Is(err, parse.ErrParse) {
		t.Fatalf("got %v, want %v", err, parse.ErrParse)
	}
	if names := me.FrameNames(); len(names) != 0 {
		t.Fatalf("document not empty after failed load: %v", names)
	}
}

func TestLoadMissingFile(t *testing.T) {
	me := New()
	err := me.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v, want wrapped os.ErrNotExist", err)
	}
}

func TestSaveKeepsFileMode(t *testing.T) {
	me, path := loadEditor(t, testMotion)
	if err := os.Chmod(path, 0o640); err != nil {
		t.Fatalf("chmod fixture: %v", err)
	}
	if err := me.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	st, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if got := st.Mode().Perm(); got != 0o640 {
		t.Errorf("mode after save: got %o, want 640", got)
	}
	// a fresh file gets the usual default, not the temp file's 0600
	fresh := filepath.Join(t.TempDir(), "fresh.yaml")
	if err := me.Save(fresh); err != nil {
		t.Fatalf("Save fresh: %v", err)
	}
	st, err = os.Stat(fresh)
	if err != nil {
		t.Fatalf("stat fresh: %v", err)
	}
	if got := st.Mode().Perm(); got != 0o644 {
		t.Errorf("mode of fresh file: got %o, want 644", got)
	}
}

func TestSaveUnwritableTarget(t *testing.T) {
	me, _ := loadEditor(t, testMotion)
	err := me.Save(filepath.Join(t.TempDir(), "no-such-dir", "motion.yaml"))
	if err == nil {
		t.Fatal("save to unwritable target succeeded")
	}
}

func TestSetJointMap(t *testing.T) {
	me, _ := loadEditor(t, testMotion)
	me.SetJointMap(map[string]int{"elbow": 7})
	if err := me.EditJoints("1", map[string]float64{"elbow": 0.9}, true); err != nil {
		t.Fatalf("EditJoints with new mapping: %v", err)
	}
	f, _ := me.Frame("1")
	if jv := f.Joint(7); jv == nil || jv.Position != 0.9 {
		t.Fatalf("elbow edit not applied: %+v", f.Dxl)
	}
	// the old names are gone from the mapping
	err := me.EditJoints("1", map[string]float64{"rotate_1": 0}, true)
	if !errors.Is(err, ErrUnknownJoint) {
		t.Fatalf("got %v, want %v", err, ErrUnknownJoint)
	}
	// mutating the returned copy must not touch editor state
	m := me.JointMap()
	m["elbow"] = 99
	if me.JointMap()["elbow"] != 7 {
		t.Error("JointMap returned live state")
	}
}

func TestWithJointMap(t *testing.T) {
	me := New(WithJointMap(map[string]int{"head": 3}))
	if got := me.JointMap(); len(got) != 1 || got["head"] != 3 {
		t.Fatalf("JointMap: got %v", got)
	}
	if got := New().JointMap(); got["rotate_torso"] != 22 {
		t.Fatalf("default mapping missing rotate_torso: %v", got)
	}
}
