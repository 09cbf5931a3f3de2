// Package motion edits robot motion-sequence YAML documents.
//
// An Editor loads a motion file, classifying each top-level entry as a
// typed keyframe or an opaque blob, lets callers look frames up by name and
// apply named joint-position updates, and saves the document back with the
// original entry order and blob contents preserved.
//
//	me := motion.New()
//	if err := me.Load(path); err != nil {
//	    return err
//	}
//	err := me.EditJoints("2", map[string]float64{"rotate_1": 0.33}, false)
//	if err != nil {
//	    return err
//	}
//	if err := me.Save(path); err != nil {
//	    return err
//	}
//
// Editors are not safe for concurrent use; callers share one instance only
// under external serialization.
package motion
