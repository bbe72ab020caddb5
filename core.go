//===============================================================================
//                                                                              //
// Author    :  Angus Johnson (C++ original); Go rewrite for Clipper2 semantics //
// Library   :  clipper2 - a 2-D polygon clipping and offsetting engine         //
//                                                                              //
// License:                                                                     //
// Use, modification & distribution is subject to Boost Software License Ver 1. //
// http://www.boost.org/LICENSE_1_0.txt                                         //
//                                                                              //
//===============================================================================

// Package clipper implements a Vatti-style sweep-line Boolean polygon
// clipping engine and a companion polygon offsetting (Minkowski sum with a
// disk or square) builder. All clipping arithmetic runs on integer
// coordinates (Point64); floating-point paths are scaled at the boundary.
package clipper

import "math"

// Point64 is an integer 2-D coordinate. All internal clipping arithmetic
// uses Point64; callers working in floating point scale through ClipperD
// (ScalePath/UnscalePath).
type Point64 struct {
	X, Y int64
}

// Path64 is a sequence of vertices describing one contour (open or closed).
type Path64 []Point64

// Paths64 is a set of independent contours.
type Paths64 []Path64

// PointD is a floating-point 2-D coordinate, used only at the public
// boundary (offset normals, and the geom.Point adapter in geomio.go).
type PointD struct {
	X, Y float64
}

// PathD is the floating-point analogue of Path64.
type PathD []PointD

// Rect64 is an axis-aligned bounding box.
type Rect64 struct {
	Left, Top, Right, Bottom int64
}

func (r Rect64) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

func (r Rect64) Contains(pt Point64) bool {
	return pt.X > r.Left && pt.X < r.Right && pt.Y > r.Top && pt.Y < r.Bottom
}

// GetBounds returns the bounding box enclosing every point of path.
func GetBounds(path Path64) Rect64 {
	if len(path) == 0 {
		return Rect64{}
	}
	r := Rect64{Left: math.MaxInt64, Top: math.MaxInt64, Right: math.MinInt64, Bottom: math.MinInt64}
	for _, pt := range path {
		if pt.X < r.Left {
			r.Left = pt.X
		}
		if pt.X > r.Right {
			r.Right = pt.X
		}
		if pt.Y < r.Top {
			r.Top = pt.Y
		}
		if pt.Y > r.Bottom {
			r.Bottom = pt.Y
		}
	}
	return r
}

// GetBoundsPaths returns the bounding box of every path combined.
func GetBoundsPaths(paths Paths64) Rect64 {
	r := Rect64{Left: math.MaxInt64, Top: math.MaxInt64, Right: math.MinInt64, Bottom: math.MinInt64}
	for _, p := range paths {
		pb := GetBounds(p)
		if pb.IsEmpty() {
			continue
		}
		if pb.Left < r.Left {
			r.Left = pb.Left
		}
		if pb.Right > r.Right {
			r.Right = pb.Right
		}
		if pb.Top < r.Top {
			r.Top = pb.Top
		}
		if pb.Bottom > r.Bottom {
			r.Bottom = pb.Bottom
		}
	}
	return r
}

// Area returns the signed area of a closed path: positive when the
// vertices run counter-clockwise with Y pointing up (clockwise when Y
// grows downward); see IsPositive.
func Area(path Path64) float64 {
	n := len(path)
	if n < 3 {
		return 0
	}
	a := 0.0
	prev := path[n-1]
	for _, pt := range path {
		a += float64(prev.Y+pt.Y) * float64(prev.X-pt.X)
		prev = pt
	}
	return a / 2
}

// AreaD is the PathD analogue of Area.
func AreaD(path PathD) float64 {
	n := len(path)
	if n < 3 {
		return 0
	}
	a := 0.0
	prev := path[n-1]
	for _, pt := range path {
		a += (prev.Y + pt.Y) * (prev.X - pt.X)
		prev = pt
	}
	return a / 2
}

// AreaCombined sums Area across every path in the set.
func AreaCombined(paths Paths64) float64 {
	total := 0.0
	for _, p := range paths {
		total += Area(p)
	}
	return total
}

// IsPositive reports whether path's signed Area is non-negative
// (counter-clockwise with Y up, clockwise with Y growing downward).
func IsPositive(path Path64) bool {
	return Area(path) >= 0
}

func pointsEqual(a, b Point64) bool {
	return a.X == b.X && a.Y == b.Y
}

// CrossProduct returns the Z component of (pt2-pt1) x (pt3-pt2), computed in
// float64 to avoid int64 overflow on the product of two ~2^31 deltas.
func CrossProduct(pt1, pt2, pt3 Point64) float64 {
	return float64(pt2.X-pt1.X)*float64(pt3.Y-pt2.Y) -
		float64(pt2.Y-pt1.Y)*float64(pt3.X-pt2.X)
}

// DotProduct returns (pt2-pt1) . (pt3-pt2).
func DotProduct(pt1, pt2, pt3 Point64) float64 {
	return float64(pt2.X-pt1.X)*float64(pt3.X-pt2.X) +
		float64(pt2.Y-pt1.Y)*float64(pt3.Y-pt2.Y)
}

func distanceSqr(a, b Point64) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return dx*dx + dy*dy
}

// ReversePath returns path with vertex order reversed.
func ReversePath(path Path64) Path64 {
	n := len(path)
	out := make(Path64, n)
	for i, pt := range path {
		out[n-1-i] = pt
	}
	return out
}

// StripDuplicates removes immediately-repeated points, and (for closed
// paths) a duplicate of the first point at the end.
func StripDuplicates(path Path64, isClosedPath bool) Path64 {
	if len(path) == 0 {
		return path
	}
	out := make(Path64, 0, len(path))
	out = append(out, path[0])
	for _, pt := range path[1:] {
		if !pointsEqual(out[len(out)-1], pt) {
			out = append(out, pt)
		}
	}
	if isClosedPath && len(out) > 1 && pointsEqual(out[0], out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}

// ScalePath scales a floating-point path to integer coordinates by scale
// (typically a power of ten), rounding to the nearest integer.
func ScalePath(path PathD, scale float64) Path64 {
	out := make(Path64, len(path))
	for i, pt := range path {
		out[i] = Point64{X: round64(pt.X * scale), Y: round64(pt.Y * scale)}
	}
	return out
}

// ScalePaths is the Paths64 analogue of ScalePath.
func ScalePaths(paths []PathD, scale float64) Paths64 {
	out := make(Paths64, len(paths))
	for i, p := range paths {
		out[i] = ScalePath(p, scale)
	}
	return out
}

// UnscalePath converts an integer path back to floating point by 1/scale.
func UnscalePath(path Path64, scale float64) PathD {
	out := make(PathD, len(path))
	inv := 1 / scale
	for i, pt := range path {
		out[i] = PointD{X: float64(pt.X) * inv, Y: float64(pt.Y) * inv}
	}
	return out
}

// UnscalePaths is the Paths64 analogue of UnscalePath.
func UnscalePaths(paths Paths64, scale float64) []PathD {
	out := make([]PathD, len(paths))
	for i, p := range paths {
		out[i] = UnscalePath(p, scale)
	}
	return out
}

func round64(f float64) int64 {
	if f < 0 {
		return int64(f - 0.5)
	}
	return int64(f + 0.5)
}
