package collision

import "github.com/go-gl/mathgl/mgl64"

// Body is anything with a world transform and box geometry.
type Body interface {
	Position() mgl64.Vec3
	Bounds() AABB
}

// Obstacle is a body living in the scene graph.
type Obstacle interface {
	Body
	Visible() bool
	Collidable() bool
}

// Hitbox returns the actor's shrunken box, optionally as if it stood at
// hypothetical instead of its current position.
func Hitbox(actor Body, hypothetical *mgl64.Vec3, hitboxScale float64) AABB {
	box := actor.Bounds()
	if hypothetical != nil {
		box = box.Translate(hypothetical.Sub(actor.Position()))
	}
	return box.Expand(-box.Diagonal() * (1 - hitboxScale) / 2)
}

// CheckCollision reports whether actor, shrunk by hitboxScale and optionally
// moved to hypothetical, overlaps obstacle. This tests the destination box,
// not the path to it.
func CheckCollision(actor, obstacle Body, hypothetical *mgl64.Vec3, hitboxScale float64) bool {
	return Hitbox(actor, hypothetical, hitboxScale).Intersects(obstacle.Bounds())
}

// Detector carries the hitbox scale for repeated checks.
type Detector struct {
	HitboxScale float64
}

// Check is CheckCollision with the detector's hitbox scale.
func (d Detector) Check(actor, obstacle Body, hypothetical *mgl64.Vec3) bool {
	return CheckCollision(actor, obstacle, hypothetical, d.HitboxScale)
}

// FirstHit returns the first obstacle in candidates that the actor would hit
// at hypothetical. Self, invisible and non-collidable obstacles are skipped.
func (d Detector) FirstHit(actor Body, hypothetical *mgl64.Vec3, candidates []Obstacle) (Obstacle, bool) {
	for _, o := range candidates {
		if o == nil || any(o) == any(actor) || !o.Visible() || !o.Collidable() {
			continue
		}
		if d.Check(actor, o, hypothetical) {
			return o, true
		}
	}
	return nil, false
}
