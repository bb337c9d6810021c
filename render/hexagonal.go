package render

import (
	"math"

	"mapsmith/tmap"
)

// HexagonalRenderer renders staggered hexagonal grids. Like the orthogonal
// projection, screen and pixel space coincide; only the tile grid differs.
type HexagonalRenderer struct {
	m *tmap.Map

	tileWidth, tileHeight     int // rounded down to even
	sideLengthX, sideLengthY  int
	sideOffsetX, sideOffsetY  int
	columnWidth, rowHeight    int
	staggerX, staggerEven     bool
}

func NewHexagonalRenderer(m *tmap.Map) *HexagonalRenderer {
	r := &HexagonalRenderer{
		m:           m,
		tileWidth:   m.TileWidth() &^ 1,
		tileHeight:  m.TileHeight() &^ 1,
		staggerX:    m.StaggerAxis() == tmap.StaggerX,
		staggerEven: m.StaggerIndex() == tmap.StaggerEven,
	}
	if r.staggerX {
		r.sideLengthX = m.HexSideLength()
	} else {
		r.sideLengthY = m.HexSideLength()
	}
	r.sideOffsetX = (r.tileWidth - r.sideLengthX) / 2
	r.sideOffsetY = (r.tileHeight - r.sideLengthY) / 2
	r.columnWidth = r.sideOffsetX + r.sideLengthX
	r.rowHeight = r.sideOffsetY + r.sideLengthY
	return r
}

func (r *HexagonalRenderer) Map() *tmap.Map { return r.m }

func (r *HexagonalRenderer) ScreenToPixelCoords(p tmap.PointF) tmap.PointF { return p }
func (r *HexagonalRenderer) PixelToScreenCoords(p tmap.PointF) tmap.PointF { return p }

func (r *HexagonalRenderer) PixelToTileCoords(p tmap.PointF) tmap.PointF {
	return r.ScreenToTileCoords(p)
}

func (r *HexagonalRenderer) TileToPixelCoords(p tmap.PointF) tmap.PointF {
	return r.TileToScreenCoords(p)
}

// staggered reports whether the given column (stagger-x) or row (stagger-y)
// is the shifted one.
func (r *HexagonalRenderer) staggered(i int) bool {
	odd := i&1 != 0
	if r.staggerEven {
		return !odd
	}
	return odd
}

func (r *HexagonalRenderer) ScreenToTileCoords(p tmap.PointF) tmap.PointF {
	x, y := p.X, p.Y
	if r.staggerX {
		if r.staggerEven {
			x -= float64(r.tileWidth)
		} else {
			x -= float64(r.sideOffsetX)
		}
	} else {
		if r.staggerEven {
			y -= float64(r.tileHeight)
		} else {
			y -= float64(r.sideOffsetY)
		}
	}

	// Grid-aligned reference tile.
	refX := math.Floor(x / float64(r.columnWidth*2))
	refY := math.Floor(y / float64(r.rowHeight*2))

	// Position relative to the reference tile's base square.
	relX := x - refX*float64(r.columnWidth*2)
	relY := y - refY*float64(r.rowHeight*2)

	if r.staggerX {
		refX *= 2
		if r.staggerEven {
			refX++
		}
	} else {
		refY *= 2
		if r.staggerEven {
			refY++
		}
	}

	// Nearest of the four candidate hex centers wins.
	var centers [4]tmap.PointF
	if r.staggerX {
		left := float64(r.sideLengthX) / 2
		centerX := left + float64(r.columnWidth)
		centerY := float64(r.tileHeight) / 2
		centers[0] = tmap.Pt(left, centerY)
		centers[1] = tmap.Pt(centerX, centerY-float64(r.rowHeight))
		centers[2] = tmap.Pt(centerX, centerY+float64(r.rowHeight))
		centers[3] = tmap.Pt(left+float64(r.columnWidth*2), centerY)
	} else {
		top := float64(r.sideLengthY) / 2
		centerX := float64(r.tileWidth) / 2
		centerY := top + float64(r.rowHeight)
		centers[0] = tmap.Pt(centerX, top)
		centers[1] = tmap.Pt(centerX-float64(r.columnWidth), centerY)
		centers[2] = tmap.Pt(centerX+float64(r.columnWidth), centerY)
		centers[3] = tmap.Pt(centerX, top+float64(r.rowHeight*2))
	}

	offsetsX := [4][2]float64{{0, 0}, {1, -1}, {1, 0}, {2, 0}}
	offsetsY := [4][2]float64{{0, 0}, {-1, 1}, {1, 1}, {0, 2}}

	nearest := 0
	minDist := math.MaxFloat64
	for i, c := range centers {
		dx := c.X - relX
		dy := c.Y - relY
		if d := dx*dx + dy*dy; d < minDist {
			minDist = d
			nearest = i
		}
	}

	offsets := offsetsY
	if r.staggerX {
		offsets = offsetsX
	}
	return tmap.Pt(refX+offsets[nearest][0], refY+offsets[nearest][1])
}

func (r *HexagonalRenderer) TileToScreenCoords(p tmap.PointF) tmap.PointF {
	tileX := int(math.Floor(p.X))
	tileY := int(math.Floor(p.Y))
	var pixelX, pixelY int
	if r.staggerX {
		pixelY = tileY * (r.tileHeight + r.sideLengthY)
		if r.staggered(tileX) {
			pixelY += r.rowHeight
		}
		pixelX = tileX * r.columnWidth
	} else {
		pixelX = tileX * (r.tileWidth + r.sideLengthX)
		if r.staggered(tileY) {
			pixelX += r.columnWidth
		}
		pixelY = tileY * r.rowHeight
	}
	return tmap.Pt(float64(pixelX), float64(pixelY))
}

func (r *HexagonalRenderer) MapBounds() tmap.SizeF {
	w, h := r.m.Width(), r.m.Height()
	if r.staggerX {
		return tmap.SizeF{
			Width:  float64(w*r.columnWidth + r.sideOffsetX),
			Height: float64(h*(r.tileHeight+r.sideLengthY) + r.rowHeight),
		}
	}
	return tmap.SizeF{
		Width:  float64(w*(r.tileWidth+r.sideLengthX) + r.columnWidth),
		Height: float64(h*r.rowHeight + r.sideOffsetY),
	}
}
