package tmap

import "math"

// PointF is a position in continuous map or screen space.
type PointF struct {
	X, Y float64
}

func Pt(x, y float64) PointF { return PointF{X: x, Y: y} }

func (p PointF) Add(q PointF) PointF { return PointF{p.X + q.X, p.Y + q.Y} }
func (p PointF) Sub(q PointF) PointF { return PointF{p.X - q.X, p.Y - q.Y} }

// SizeF is a width/height pair in pixels.
type SizeF struct {
	Width, Height float64
}

// RectF is an axis-aligned rectangle with its origin at the top-left.
type RectF struct {
	X, Y          float64
	Width, Height float64
}

func (r RectF) Contains(p PointF) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

func (r RectF) Intersects(other RectF) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Translated returns the rectangle shifted by d.
func (r RectF) Translated(d PointF) RectF {
	return RectF{X: r.X + d.X, Y: r.Y + d.Y, Width: r.Width, Height: r.Height}
}

// BoundsOf returns the bounding rectangle of a set of points.
func BoundsOf(pts []PointF) RectF {
	if len(pts) == 0 {
		return RectF{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return RectF{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
