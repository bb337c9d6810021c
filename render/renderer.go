// Package render converts between screen, pixel and tile coordinates for the
// supported map projections. All transforms are pure functions of the map's
// grid parameters.
package render

import "mapsmith/tmap"

// MapRenderer is the coordinate-transform surface consumed by the tools and
// the snapping helper.
//
// Screen coordinates are positions on the rendered map canvas. Pixel
// coordinates are the map-space positions objects are stored in. Tile
// coordinates address the grid, fractional values included.
type MapRenderer interface {
	ScreenToPixelCoords(p tmap.PointF) tmap.PointF
	PixelToScreenCoords(p tmap.PointF) tmap.PointF
	ScreenToTileCoords(p tmap.PointF) tmap.PointF
	TileToScreenCoords(p tmap.PointF) tmap.PointF
	PixelToTileCoords(p tmap.PointF) tmap.PointF
	TileToPixelCoords(p tmap.PointF) tmap.PointF

	// MapBounds is the map's bounding size on screen, used by the canvas.
	MapBounds() tmap.SizeF

	Map() *tmap.Map
}

// NewRenderer picks the renderer matching the map's orientation.
func NewRenderer(m *tmap.Map) MapRenderer {
	switch m.Orientation() {
	case tmap.Isometric:
		return NewIsometricRenderer(m)
	case tmap.Hexagonal:
		return NewHexagonalRenderer(m)
	default:
		return NewOrthogonalRenderer(m)
	}
}
