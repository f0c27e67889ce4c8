package field

import "gonum.org/v1/gonum/spatial/r2"

// collideAll resolves every unordered pair once, against the positions of
// the current frame. It is not iterated to convergence.
func collideAll(bodies []Body, restitution float64) int {
	n := 0
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if resolve(&bodies[i], &bodies[j], restitution) {
				n++
			}
		}
	}
	return n
}

// resolve separates an overlapping pair and applies a restitution impulse
// along the contact normal. Coincident centres have no normal and are left
// untouched.
func resolve(a, b *Body, restitution float64) bool {
	d := r2.Sub(b.Pos, a.Pos)
	dist := r2.Norm(d)
	reach := a.radius + b.radius
	if dist >= reach || dist == 0 {
		return false
	}

	n := r2.Scale(1/dist, d)
	overlap := (reach - dist) / 2
	a.Pos = r2.Sub(a.Pos, r2.Scale(overlap, n))
	b.Pos = r2.Add(b.Pos, r2.Scale(overlap, n))

	closing := r2.Dot(r2.Sub(b.Vel, a.Vel), n)
	if closing > 0 {
		return true
	}

	j := -(1 + restitution) * closing / (1/a.mass + 1/b.mass)
	a.Vel = r2.Sub(a.Vel, r2.Scale(j/a.mass, n))
	b.Vel = r2.Add(b.Vel, r2.Scale(j/b.mass, n))
	return true
}
