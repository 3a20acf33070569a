package quadtree

import "math"

// Force returns the gravitational force-per-unit-target-mass on the body
// at index self (identified by index, not position, so the body never
// attracts itself even if another body is co-located), using the Barnes-
// Hut opening criterion (2*half < theta*distance) to decide whether to
// treat a node as a point mass. softening is added in quadrature to the
// squared separation before the inverse-cube falloff.
//
// There is no max-force clamp here; spec.md's direct kernels clamp
// per-pair contributions but the tree path does not (§4.4, §9).
func (t *Tree) Force(self int, pos Vec2, theta, g, softening float64) Vec2 {
	if t.root == nil {
		return Vec2{}
	}

	var fx, fy float64
	eps2 := softening * softening
	theta2 := theta * theta

	stack := make([]*Node, 0, 64)
	stack = append(stack, t.root)

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if node.mass <= 0 {
			continue
		}

		if node.leaf && node.bodyIdx == self {
			continue
		}

		dx := node.com.X - pos.X
		dy := node.com.Y - pos.Y
		d2 := dx*dx + dy*dy
		w := 2 * node.half

		if node.leaf || w*w < theta2*d2 {
			if d2 < 1e-10 {
				continue
			}
			dSoft2 := d2 + eps2
			invD := 1.0 / math.Sqrt(dSoft2)
			invD3 := invD * invD * invD
			f := g * node.mass * invD3
			fx += f * dx
			fy += f * dy
			continue
		}

		for _, c := range node.children {
			if c != nil {
				stack = append(stack, c)
			}
		}
	}

	return Vec2{X: fx, Y: fy}
}
