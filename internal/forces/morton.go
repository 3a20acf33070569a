package forces

import (
	"math"
	"sort"

	"github.com/san-kum/nbody2d/internal/body"
)

// mortonOrdered computes the same all-pairs force sum as naive, but first
// sorts bodies by Z-order (Morton code) of their position so the i and j
// loops walk memory in a spatially coherent order, trading a one-time
// O(n log n) sort for fewer cache misses on the O(n^2) pass.
func mortonOrdered(a *body.Arrays, g, softening, maxForce float64) int64 {
	n := a.Len()
	order := mortonOrder(a.PosX, a.PosY)

	eps2 := softening * softening
	var ops int64

	for oi := 0; oi < n; oi++ {
		i := order[oi]
		xi, yi := a.PosX[i], a.PosY[i]
		for oj := oi + 1; oj < n; oj++ {
			j := order[oj]
			fx, fy := pairForce(xi, yi, a.PosX[j], a.PosY[j], a.Mass[i], a.Mass[j], g, eps2, maxForce)
			if !a.Fixed[i] {
				a.FX[i] += fx
				a.FY[i] += fy
			}
			if !a.Fixed[j] {
				a.FX[j] -= fx
				a.FY[j] -= fy
			}
			ops++
		}
	}
	return ops
}

// mortonOrder returns body indices sorted by the Z-order curve of their
// position, quantized into a fixed grid spanning the bounding box of all
// positions.
func mortonOrder(posX, posY []float64) []int {
	n := len(posX)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if n == 0 {
		return order
	}

	minX, minY := posX[0], posY[0]
	maxX, maxY := posX[0], posY[0]
	for i := 1; i < n; i++ {
		minX = math.Min(minX, posX[i])
		maxX = math.Max(maxX, posX[i])
		minY = math.Min(minY, posY[i])
		maxY = math.Max(maxY, posY[i])
	}

	spanX := maxX - minX
	spanY := maxY - minY
	if spanX <= 0 {
		spanX = 1
	}
	if spanY <= 0 {
		spanY = 1
	}

	const gridBits = 16
	const gridMax = (1 << gridBits) - 1

	codes := make([]uint64, n)
	for i := 0; i < n; i++ {
		gx := uint32(gridMax * (posX[i] - minX) / spanX)
		gy := uint32(gridMax * (posY[i] - minY) / spanY)
		codes[i] = interleave(gx, gy)
	}

	sort.Slice(order, func(a, b int) bool {
		return codes[order[a]] < codes[order[b]]
	})
	return order
}

// interleave bit-interleaves two 16-bit coordinates into a 32-bit Morton
// code using the classic magic-number spread (Hacker's Delight).
func interleave(x, y uint32) uint64 {
	return uint64(spreadBits(x)) | (uint64(spreadBits(y)) << 1)
}

func spreadBits(v uint32) uint32 {
	v &= 0x0000ffff
	v = (v | (v << 8)) & 0x00FF00FF
	v = (v | (v << 4)) & 0x0F0F0F0F
	v = (v | (v << 2)) & 0x33333333
	v = (v | (v << 1)) & 0x55555555
	return v
}
