// Copyright © 2024 Galvanized Logic Inc.

package rider

// entity.go builds the three canonical rider shapes: a body-only rag-doll
// ("Bosh" in the original implementation), a sled-only rider, and a body
// mounted onto a sled. Bones and joints are constructed once, in a fixed
// order, and that order is what the physics package relies on for
// deterministic constraint solving (SPEC_FULL.md §5).

// Entity is a rider: a set of points plus the bones and joints that hold
// them together. Bones and joints reference points only by PointID, never
// by pointer, so an Entity can be freely copied and split (see Split).
type Entity struct {
	Points map[PointID]Point
	Bones  []Bone
	Joints []Joint
}

// Clone returns a deep copy of e: a new Points map and copied bone/joint
// slices, so mutating the clone never touches e.
func (e Entity) Clone() Entity {
	points := make(map[PointID]Point, len(e.Points))
	for id, p := range e.Points {
		points[id] = p
	}
	var bones []Bone
	if e.Bones != nil {
		bones = make([]Bone, len(e.Bones))
		copy(bones, e.Bones)
	}
	var joints []Joint
	if e.Joints != nil {
		joints = make([]Joint, len(e.Joints))
		copy(joints, e.Joints)
	}
	return Entity{Points: points, Bones: bones, Joints: joints}
}

// IsMounted reports whether e has any joints or Mount bones, i.e. whether it
// is a combined body+sled that can still break apart.
func (e Entity) IsMounted() bool {
	if len(e.Joints) > 0 {
		return true
	}
	for _, b := range e.Bones {
		if b.Kind == Mount {
			return true
		}
	}
	return false
}

// NewBody returns a new body-only rider at the default rest pose: six body
// points, six Normal bones, two Repel bones (shoulder to each foot), no
// joints.
func NewBody() Entity {
	points := bodyPoints()
	bones := []Bone{
		newNormalBone(points, Shoulder, Butt),
		newNormalBone(points, Shoulder, LeftHand),
		newNormalBone(points, Shoulder, RightHand),
		newNormalBone(points, Butt, LeftFoot),
		newNormalBone(points, Butt, RightFoot),
		newNormalBone(points, Shoulder, RightHand),
	}
	bones = append(bones,
		newRepelBone(points, Shoulder, LeftFoot, repelLengthFactor),
		newRepelBone(points, Shoulder, RightFoot, repelLengthFactor),
	)
	return Entity{Points: points, Bones: bones}
}

// NewSled returns a new sled-only rider at the default rest pose: four sled
// points, six Normal bones, no joints.
func NewSled() Entity {
	points := sledPoints()
	bones := []Bone{
		newNormalBone(points, Peg, Tail),
		newNormalBone(points, Tail, Nose),
		newNormalBone(points, Nose, Rope),
		newNormalBone(points, Rope, Peg),
		newNormalBone(points, Peg, Nose),
		newNormalBone(points, Rope, Tail),
	}
	return Entity{Points: points, Bones: bones}
}

// NewBodySled returns a new body mounted on a sled at the default rest
// pose: the union of NewBody and NewSled's points and bones, plus three
// sled-mount bones, five body-mount bones, and two joints.
func NewBodySled() Entity {
	body, sled := NewBody(), NewSled()

	points := make(map[PointID]Point, len(body.Points)+len(sled.Points))
	for id, p := range body.Points {
		points[id] = p
	}
	for id, p := range sled.Points {
		points[id] = p
	}

	bones := make([]Bone, 0, len(body.Bones)+len(sled.Bones)+8)
	bones = append(bones, body.Bones...)
	bones = append(bones, sled.Bones...)
	bones = append(bones,
		newMountBone(points, Peg, Butt, mountEndurance),
		newMountBone(points, Tail, Butt, mountEndurance),
		newMountBone(points, Nose, Butt, mountEndurance),

		newMountBone(points, Shoulder, Peg, mountEndurance),
		newMountBone(points, Rope, LeftHand, mountEndurance),
		newMountBone(points, Rope, RightHand, mountEndurance),
		newMountBone(points, LeftFoot, Nose, mountEndurance),
		newMountBone(points, RightFoot, Nose, mountEndurance),
	)

	joints := []Joint{
		{A1: Shoulder, A2: Butt, B1: Rope, B2: Peg},
		{A1: Peg, A2: Tail, B1: Rope, B2: Peg},
	}

	return Entity{Points: points, Bones: bones, Joints: joints}
}

// Split rewrites a mounted entity as two independent entities sharing the
// current point positions: the body's six points with its Normal/Repel
// bones, and the sled's four points with its Normal bones. Mount bones and
// joints are discarded. Split never inspects e.Joints/e.Bones for anything
// but their Normal/Repel members — it assumes e is (or was) a BodySled.
func (e Entity) Split() (body, sled Entity) {
	bodyPts := make(map[PointID]Point, 6)
	sledPts := make(map[PointID]Point, 4)
	for id, p := range e.Points {
		if id.IsBody() {
			bodyPts[id] = p
		} else {
			sledPts[id] = p
		}
	}

	var bodyBones, sledBones []Bone
	for _, b := range e.Bones {
		if b.Kind == Mount {
			continue
		}
		if b.P1.IsBody() && b.P2.IsBody() {
			bodyBones = append(bodyBones, b)
		} else if !b.P1.IsBody() && !b.P2.IsBody() {
			sledBones = append(sledBones, b)
		}
	}

	return Entity{Points: bodyPts, Bones: bodyBones}, Entity{Points: sledPts, Bones: sledBones}
}
