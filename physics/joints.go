// Copyright © 2024 Galvanized Logic Inc.

package physics

import "github.com/gazed/bosh/rider"

// jointFailed reports whether any of e's joints has flipped: for a joint
// with edges A1->A2 and B1->B2, a negative cross product means the body
// has rotated past the sled in a way the mount can no longer hold, and the
// rider should separate.
func jointFailed(e rider.Entity) bool {
	for _, j := range e.Joints {
		a := e.Points[j.A2].Location.Sub(e.Points[j.A1].Location)
		b := e.Points[j.B2].Location.Sub(e.Points[j.B1].Location)
		if a.CrossLength(b) < 0 {
			return true
		}
	}
	return false
}
