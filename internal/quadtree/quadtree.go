package quadtree

import (
	"github.com/san-kum/nbody2d/internal/body"
)

// Tuning constants, named in spec.md's constant table.
const (
	MinNodeSize     = 0.1
	NodePadding     = 1.05
	SofteningLength = 1e-2
	coincidentEps2  = 1e-12
)

// Vec2 is an alias of body.Vec2, so callers pass body.Vec2 values directly.
type Vec2 = body.Vec2

// Node is one axis-aligned cell of the partition. Containment is the
// half-open box [center-half, center+half) on each axis, so quadrants
// partition the box without overlap.
type Node struct {
	center Vec2
	half   float64 // half-extent; node width is 2*half

	mass float64
	com  Vec2

	children [4]*Node
	leaf     bool
	bodyIdx  int // index into the tree's source slice; -1 if leaf is empty
}

// Tree is a Barnes-Hut quadtree built fresh from a body population each
// step. It stores indices into the caller's position/mass slices, never
// pointers, so it never needs to track a body being removed mid-step.
type Tree struct {
	root         *Node
	outsideCount int
}

func contains(center Vec2, half float64, p Vec2) bool {
	return p.X >= center.X-half && p.X < center.X+half &&
		p.Y >= center.Y-half && p.Y < center.Y+half
}

// quadrant returns the child index (0-3) for p within node, using the low
// two bits of (x>center.x, y>center.y).
func quadrant(center Vec2, p Vec2) int {
	idx := 0
	if p.X > center.X {
		idx |= 1
	}
	if p.Y > center.Y {
		idx |= 2
	}
	return idx
}

func childCenter(parentCenter Vec2, parentHalf float64, q int) Vec2 {
	half := parentHalf / 2
	dx, dy := -half, -half
	if q&1 != 0 {
		dx = half
	}
	if q&2 != 0 {
		dy = half
	}
	return Vec2{X: parentCenter.X + dx, Y: parentCenter.Y + dy}
}

// Build constructs a Tree over positions[i]/masses[i] for i in
// [0,len(positions)). An empty slice produces an empty Tree whose Force
// always returns the zero vector. Bodies outside the computed root box are
// skipped and counted in OutsideCount (the facade rebuilds the tree fresh
// from current positions every step, so in practice this never fires; it
// exists for spec.md's stats surface).
func Build(positions []Vec2, masses []float64) *Tree {
	t := &Tree{}
	n := len(positions)
	if n == 0 {
		return t
	}

	minX, minY := positions[0].X, positions[0].Y
	maxX, maxY := minX, minY
	for _, p := range positions[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	center := Vec2{X: (minX + maxX) / 2, Y: (minY + maxY) / 2}
	extent := maxX - minX
	if dy := maxY - minY; dy > extent {
		extent = dy
	}
	half := NodePadding * extent / 2
	if half < MinNodeSize {
		half = MinNodeSize
	}

	t.root = &Node{center: center, half: half, leaf: true, bodyIdx: -1, com: center}

	for i, p := range positions {
		if !contains(center, half, p) {
			t.outsideCount++
			continue
		}
		insert(t.root, i, p)
	}

	aggregate(t.root, positions, masses)
	return t
}

// OutsideCount returns how many bodies fell outside the root box at Build
// time.
func (t *Tree) OutsideCount() int { return t.outsideCount }

// insert places body index bi at position p into the subtree rooted at
// node, iteratively subdividing as needed (spec.md §4.3.2).
func insert(node *Node, bi int, p Vec2) {
	for {
		if !node.leaf {
			node = node.children[quadrant(node.center, p)]
			continue
		}

		if node.bodyIdx == -1 {
			node.bodyIdx = bi
			node.com = p
			return
		}

		// Leaf already holds `other` at node.com. Two bodies at an
		// indistinguishable position are accepted as co-located instead
		// of subdividing forever.
		if node.com.Sub(p).Len2() < coincidentEps2 {
			return
		}

		other, otherPos := node.bodyIdx, node.com
		node.leaf = false
		node.bodyIdx = -1
		for q := 0; q < 4; q++ {
			c := childCenter(node.center, node.half, q)
			node.children[q] = &Node{center: c, half: node.half / 2, leaf: true, bodyIdx: -1, com: c}
		}

		insert(node.children[quadrant(node.center, otherPos)], other, otherPos)
		node = node.children[quadrant(node.center, p)]
	}
}

// aggregate performs the post-order mass/center-of-mass pass required by
// the quadtree invariants: M = sum of child masses, COM is the
// mass-weighted mean of child COMs, and empty nodes have M=0, COM=center.
func aggregate(node *Node, positions []Vec2, masses []float64) (mass float64, com Vec2) {
	if node.leaf {
		if node.bodyIdx == -1 {
			node.mass, node.com = 0, node.center
			return 0, node.center
		}
		node.mass = masses[node.bodyIdx]
		node.com = positions[node.bodyIdx]
		return node.mass, node.com
	}

	var totalMass, comX, comY float64
	for _, c := range node.children {
		m, cm := aggregate(c, positions, masses)
		totalMass += m
		comX += cm.X * m
		comY += cm.Y * m
	}
	node.mass = totalMass
	if totalMass > 0 {
		node.com = Vec2{X: comX / totalMass, Y: comY / totalMass}
	} else {
		node.com = node.center
	}
	return node.mass, node.com
}
