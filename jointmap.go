package motion

import "maps"

// JointMap resolves human-readable joint names to servo ids during edits.
// It is editor-instance state, independent of any loaded document; replacing
// it never re-associates already-loaded frame data.
type JointMap map[string]int

// DefaultJointMap returns the built-in name-to-id table. Adjust per robot.
func DefaultJointMap() JointMap {
	return JointMap{
		"rotate_torso": 22,
		"rotate_0":     0,
		"rotate_1":     1,
		"rotate_2":     2,
		"rotate_3":     3,
		"rotate_5":     5,
	}
}

// armJoints is the arm+torso group EditArmJoints restricts itself to.
var armJoints = []string{
	"rotate_torso",
	"rotate_0",
	"rotate_1",
	"rotate_2",
	"rotate_3",
	"rotate_5",
}

func (m JointMap) clone() JointMap {
	res := make(JointMap, len(m))
	maps.Copy(res, m)
	return res
}
