package cloud

import (
	"github.com/seqsense/pcgol/mat"
)

// Mobject is the scene-node surface this package consumes from the engine.
// Any node can be offered as a group member; only those carrying
// point-cloud data pass CheckMembers.
type Mobject interface {
	Center() mat.Vec3
	NumPoints() int
}

// pointCloudNode is the capability a group member must actually have.
// *Cloud and everything embedding it satisfy it.
type pointCloudNode interface {
	asCloud() *Cloud
}

func (c *Cloud) asCloud() *Cloud {
	return c
}

// Group is a composite of homogeneous point-cloud members.
type Group struct {
	Cloud
}

// CheckMembers reports ErrMemberType if any member does not carry
// point-cloud data.
func CheckMembers(members ...Mobject) error {
	for _, m := range members {
		if _, ok := m.(pointCloudNode); !ok {
			return ErrMemberType
		}
	}
	return nil
}

// FromMembers validates members and attaches them as children of a new
// group. On validation failure nothing is attached.
func FromMembers(p Params, members ...Mobject) (*Group, error) {
	if err := CheckMembers(members...); err != nil {
		return nil, err
	}
	g := &Group{Cloud: *New(p)}
	for _, m := range members {
		g.Add(m.(pointCloudNode).asCloud())
	}
	return g, nil
}
