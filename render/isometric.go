package render

import "mapsmith/tmap"

// IsometricRenderer renders diamond-projected grids. Pixel coordinates are
// defined so that one tile edge spans tileHeight pixels on both axes.
type IsometricRenderer struct {
	m *tmap.Map
}

func NewIsometricRenderer(m *tmap.Map) *IsometricRenderer {
	return &IsometricRenderer{m: m}
}

func (r *IsometricRenderer) Map() *tmap.Map { return r.m }

func (r *IsometricRenderer) PixelToTileCoords(p tmap.PointF) tmap.PointF {
	th := float64(r.m.TileHeight())
	return tmap.Pt(p.X/th, p.Y/th)
}

func (r *IsometricRenderer) TileToPixelCoords(p tmap.PointF) tmap.PointF {
	th := float64(r.m.TileHeight())
	return tmap.Pt(p.X*th, p.Y*th)
}

func (r *IsometricRenderer) ScreenToTileCoords(p tmap.PointF) tmap.PointF {
	tw := float64(r.m.TileWidth())
	th := float64(r.m.TileHeight())
	x := p.X - float64(r.m.Height())*tw/2
	tileX := x / tw
	tileY := p.Y / th
	return tmap.Pt(tileY+tileX, tileY-tileX)
}

func (r *IsometricRenderer) TileToScreenCoords(p tmap.PointF) tmap.PointF {
	tw := float64(r.m.TileWidth())
	th := float64(r.m.TileHeight())
	originX := float64(r.m.Height()) * tw / 2
	return tmap.Pt((p.X-p.Y)*tw/2+originX, (p.X+p.Y)*th/2)
}

func (r *IsometricRenderer) ScreenToPixelCoords(p tmap.PointF) tmap.PointF {
	return r.TileToPixelCoords(r.ScreenToTileCoords(p))
}

func (r *IsometricRenderer) PixelToScreenCoords(p tmap.PointF) tmap.PointF {
	return r.TileToScreenCoords(r.PixelToTileCoords(p))
}

func (r *IsometricRenderer) MapBounds() tmap.SizeF {
	side := float64(r.m.Width() + r.m.Height())
	return tmap.SizeF{
		Width:  side * float64(r.m.TileWidth()) / 2,
		Height: side * float64(r.m.TileHeight()) / 2,
	}
}
