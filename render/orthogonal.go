package render

import "mapsmith/tmap"

// OrthogonalRenderer renders plain rectangular grids. Screen and pixel space
// coincide.
type OrthogonalRenderer struct {
	m *tmap.Map
}

func NewOrthogonalRenderer(m *tmap.Map) *OrthogonalRenderer {
	return &OrthogonalRenderer{m: m}
}

func (r *OrthogonalRenderer) Map() *tmap.Map { return r.m }

func (r *OrthogonalRenderer) ScreenToPixelCoords(p tmap.PointF) tmap.PointF { return p }
func (r *OrthogonalRenderer) PixelToScreenCoords(p tmap.PointF) tmap.PointF { return p }

func (r *OrthogonalRenderer) PixelToTileCoords(p tmap.PointF) tmap.PointF {
	return tmap.Pt(p.X/float64(r.m.TileWidth()), p.Y/float64(r.m.TileHeight()))
}

func (r *OrthogonalRenderer) TileToPixelCoords(p tmap.PointF) tmap.PointF {
	return tmap.Pt(p.X*float64(r.m.TileWidth()), p.Y*float64(r.m.TileHeight()))
}

func (r *OrthogonalRenderer) ScreenToTileCoords(p tmap.PointF) tmap.PointF {
	return r.PixelToTileCoords(p)
}

func (r *OrthogonalRenderer) TileToScreenCoords(p tmap.PointF) tmap.PointF {
	return r.TileToPixelCoords(p)
}

func (r *OrthogonalRenderer) MapBounds() tmap.SizeF {
	return tmap.SizeF{
		Width:  float64(r.m.Width() * r.m.TileWidth()),
		Height: float64(r.m.Height() * r.m.TileHeight()),
	}
}
