package tool

import (
	"math"

	"mapsmith/render"
	"mapsmith/scene"
	"mapsmith/tmap"
)

// FineGridDivisions is how many steps a tile edge is divided into when
// fine snapping is active. The editor overrides it from config.
var FineGridDivisions = 4

// SnapHelper rounds raw pixel positions to the grid based on the modifier
// keys held: no modifiers snaps to whole tiles, Control snaps to the fine
// grid, Alt disables snapping.
type SnapHelper struct {
	renderer   render.MapRenderer
	snapToGrid bool
	snapToFine bool
}

func NewSnapHelper(r render.MapRenderer, mods scene.Modifiers) SnapHelper {
	h := SnapHelper{renderer: r, snapToGrid: true}
	if mods.Has(scene.ModControl) {
		h.snapToGrid = false
		h.snapToFine = true
	}
	if mods.Has(scene.ModAlt) {
		h.snapToGrid = false
		h.snapToFine = false
	}
	return h
}

// Snap returns the snapped pixel position. Pure function of its input.
func (h SnapHelper) Snap(pixel tmap.PointF) tmap.PointF {
	switch {
	case h.snapToFine:
		n := float64(FineGridDivisions)
		tc := h.renderer.PixelToTileCoords(pixel)
		tc = tmap.Pt(math.Round(tc.X*n)/n, math.Round(tc.Y*n)/n)
		return h.renderer.TileToPixelCoords(tc)
	case h.snapToGrid:
		tc := h.renderer.PixelToTileCoords(pixel)
		tc = tmap.Pt(math.Round(tc.X), math.Round(tc.Y))
		return h.renderer.TileToPixelCoords(tc)
	default:
		return pixel
	}
}
