package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	"mapsmith/document"
	"mapsmith/render"
	"mapsmith/scene"
	"mapsmith/script"
	"mapsmith/tilesets"
	"mapsmith/tmap"
	"mapsmith/tool"
)

// App is the editor shell: it owns the canvas transform, translates raw
// input into scene events and draws the document.
type App struct {
	ui         *ebitenui.UI
	toolBar    *ToolBar
	layerPanel *LayerPanel

	doc      *document.Document
	renderer render.MapRenderer
	scene    *scene.MapScene
	tools    *tool.Manager

	zoom       float64
	panX, panY float64
	isPanning  bool
	lastPanX   int
	lastPanY   int
	lastSent   tmap.PointF

	tilesetsDir     string
	tilesetList     []*tmap.Tileset
	selectedTileset int
	selectedTileID  int
	watcher         *tilesets.Watcher

	templates        []*script.Template
	selectedTemplate int

	clipboardOK    bool
	lastActiveTool string
	lastLayer      int

	gridPixel *ebiten.Image

	width, height int
}

// selectedTile feeds the tile placement tool. Nil while nothing is selected,
// which makes the tool refuse to start.
func (a *App) selectedTile() *tmap.Tile {
	if a.selectedTileset < 0 || a.selectedTileset >= len(a.tilesetList) {
		return nil
	}
	return a.tilesetList[a.selectedTileset].TileAt(a.selectedTileID)
}

// currentTemplate feeds the template placement tool.
func (a *App) currentTemplate() *script.Template {
	if a.selectedTemplate < 0 || a.selectedTemplate >= len(a.templates) {
		return nil
	}
	return a.templates[a.selectedTemplate]
}

func (a *App) loadTilesets() {
	sets, err := tilesets.LoadDir(a.tilesetsDir)
	if err != nil {
		log.Warn().Err(err).Str("dir", a.tilesetsDir).Msg("no tilesets loaded")
		return
	}
	a.tilesetList = sets
	if a.selectedTileset >= len(sets) {
		a.selectedTileset = 0
		a.selectedTileID = 0
	}
	log.Info().Int("count", len(sets)).Msg("tilesets loaded")
}

func (a *App) drainWatcher() {
	if a.watcher == nil {
		return
	}
	for {
		select {
		case reload, ok := <-a.watcher.Reloads:
			if !ok {
				a.watcher = nil
				return
			}
			log.Info().Strs("paths", reload.Paths).Msg("tileset definitions changed")
			a.loadTilesets()
		case err, ok := <-a.watcher.Errors:
			if !ok {
				a.watcher = nil
				return
			}
			log.Error().Err(err).Msg("tileset watcher")
		default:
			return
		}
	}
}

func (a *App) screenToScene(sx, sy int) tmap.PointF {
	return tmap.Pt(
		(float64(sx)-a.panX)/a.zoom,
		(float64(sy)-a.panY)/a.zoom,
	)
}

func modifiers() scene.Modifiers {
	var mods scene.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= scene.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= scene.ModControl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= scene.ModAlt
	}
	return mods
}

func (a *App) Update() error {
	a.drainWatcher()

	if a.ui != nil {
		a.ui.Update()
	}

	a.handleViewInput()
	a.handleHotkeys()
	a.forwardSceneEvents()
	a.syncToolBar()
	a.syncLayerPanel()
	return nil
}

// syncToolBar reflects tool switches done outside the toolbar (hotkeys,
// Escape) back into the radio group.
func (a *App) syncToolBar() {
	active := a.tools.ActiveTool()
	if active == nil || a.toolBar == nil {
		return
	}
	if active.Name() != a.lastActiveTool {
		a.lastActiveTool = active.Name()
		a.toolBar.SetTool(a.lastActiveTool)
	}
}

// syncLayerPanel reflects layer switches done via hotkeys back into the
// layer buttons.
func (a *App) syncLayerPanel() {
	if a.layerPanel == nil {
		return
	}
	if idx := a.doc.CurrentLayerIndex(); idx != a.lastLayer {
		a.lastLayer = idx
		a.layerPanel.SetSelected(idx)
	}
}

// handleViewInput pans with the middle button and zooms with the wheel,
// keeping the point under the cursor fixed.
func (a *App) handleViewInput() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		a.isPanning = true
		a.lastPanX, a.lastPanY = ebiten.CursorPosition()
	}
	if a.isPanning && ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		cx, cy := ebiten.CursorPosition()
		a.panX += float64(cx - a.lastPanX)
		a.panY += float64(cy - a.lastPanY)
		a.lastPanX, a.lastPanY = cx, cy
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle) {
		a.isPanning = false
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		cx, cy := ebiten.CursorPosition()
		oldZoom := a.zoom
		if wy > 0 {
			a.zoom *= 1.1
		} else {
			a.zoom /= 1.1
		}
		if a.zoom < 0.25 {
			a.zoom = 0.25
		}
		if a.zoom > 8.0 {
			a.zoom = 8.0
		}
		if a.zoom != oldZoom {
			worldX := (float64(cx) - a.panX) / oldZoom
			worldY := (float64(cy) - a.panY) / oldZoom
			a.panX = float64(cx) - worldX*a.zoom
			a.panY = float64(cy) - worldY*a.zoom
		}
	}
}

func (a *App) handleHotkeys() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)

	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			if a.doc.Redo() {
				log.Debug().Msg("redo")
			}
		} else if a.doc.Undo() {
			log.Debug().Msg("undo")
		}
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyY) {
		if a.doc.Redo() {
			log.Debug().Msg("redo")
		}
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.copySelection()
	}

	hotkeys := []struct {
		key  ebiten.Key
		name string
	}{
		{ebiten.Key1, tool.SelectionToolName},
		{ebiten.Key2, tool.PointToolName},
		{ebiten.Key3, tool.RectangleToolName},
		{ebiten.Key4, tool.EllipseToolName},
		{ebiten.Key5, tool.TileToolName},
		{ebiten.Key6, tool.TemplateToolName},
	}
	for _, hk := range hotkeys {
		if !ctrl && inpututil.IsKeyJustPressed(hk.key) {
			a.selectToolByName(hk.name)
		}
	}

	// Cycle the selected tile and template.
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		a.cycleTile(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		a.cycleTile(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) && len(a.templates) > 0 {
		a.selectedTemplate = (a.selectedTemplate + 1) % len(a.templates)
	}

	// Cycle the active layer.
	if !ctrl && inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		a.cycleLayer(-1)
	}
	if !ctrl && inpututil.IsKeyJustPressed(ebiten.KeyE) {
		a.cycleLayer(1)
	}
}

func (a *App) selectToolByName(name string) {
	if t := a.tools.Find(name); t != nil {
		a.tools.SelectTool(t)
		if a.toolBar != nil {
			a.toolBar.SetTool(name)
		}
	}
}

func (a *App) cycleTile(dir int) {
	ts := a.tilesetList
	if a.selectedTileset < 0 || a.selectedTileset >= len(ts) {
		return
	}
	count := ts[a.selectedTileset].TileCount()
	if count == 0 {
		return
	}
	a.selectedTileID = (a.selectedTileID + dir + count) % count
}

func (a *App) cycleLayer(dir int) {
	count := a.doc.Map().LayerCount()
	if count == 0 {
		return
	}
	next := (a.doc.CurrentLayerIndex() + dir + count) % count
	a.doc.SetCurrentLayer(next)
}

// forwardSceneEvents turns raw ebiten input into the scene's event stream.
func (a *App) forwardSceneEvents() {
	for _, key := range []struct {
		keys []ebiten.Key
		ev   scene.Key
	}{
		{[]ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}, scene.KeyEnter},
		{[]ebiten.Key{ebiten.KeyEscape}, scene.KeyEscape},
		{[]ebiten.Key{ebiten.KeyDelete, ebiten.KeyBackspace}, scene.KeyDelete},
	} {
		for _, k := range key.keys {
			if inpututil.IsKeyJustPressed(k) {
				a.scene.KeyPressed(key.ev)
				break
			}
		}
	}

	pos := a.screenToScene(ebiten.CursorPosition())
	mods := modifiers()

	// Clicks over UI widgets never reach the canvas.
	if !ebuiinput.UIHovered {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			a.scene.MousePressed(scene.MouseEvent{Pos: pos, Button: scene.LeftButton, Modifiers: mods})
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
			a.scene.MousePressed(scene.MouseEvent{Pos: pos, Button: scene.RightButton, Modifiers: mods})
		}
	}
	if pos != a.lastSent {
		a.scene.MouseMoved(pos, mods)
		a.lastSent = pos
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		a.scene.MouseReleased(scene.MouseEvent{Pos: pos, Button: scene.LeftButton, Modifiers: mods})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		a.scene.MouseReleased(scene.MouseEvent{Pos: pos, Button: scene.RightButton, Modifiers: mods})
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	if a.gridPixel == nil {
		a.gridPixel = ebiten.NewImage(1, 1)
		a.gridPixel.Fill(color.White)
	}
	screen.Fill(color.RGBA{R: 30, G: 30, B: 34, A: 255})

	a.drawGrid(screen)
	for _, gi := range a.scene.GroupItems() {
		a.drawGroupItem(screen, gi, 0.45)
	}
	for _, gi := range a.scene.ToolItems() {
		a.drawGroupItem(screen, gi, 0.75)
	}
	a.drawStatus(screen)

	if a.ui != nil {
		a.ui.Draw(screen)
	}
}

func (a *App) drawGrid(screen *ebiten.Image) {
	bounds := a.renderer.MapBounds()
	gridColor := color.RGBA{R: 70, G: 70, B: 80, A: 255}

	a.fillRect(screen, tmap.RectF{Width: bounds.Width, Height: 1 / a.zoom}, gridColor, 1)
	a.fillRect(screen, tmap.RectF{Y: bounds.Height, Width: bounds.Width, Height: 1 / a.zoom}, gridColor, 1)
	a.fillRect(screen, tmap.RectF{Width: 1 / a.zoom, Height: bounds.Height}, gridColor, 1)
	a.fillRect(screen, tmap.RectF{X: bounds.Width, Width: 1 / a.zoom, Height: bounds.Height}, gridColor, 1)

	// Tile grid lines only for the rectangular projection; the other
	// projections keep just the bounds.
	m := a.doc.Map()
	if m.Orientation() != tmap.Orthogonal {
		return
	}
	for x := 1; x < m.Width(); x++ {
		fx := float64(x * m.TileWidth())
		a.fillRect(screen, tmap.RectF{X: fx, Width: 1 / a.zoom, Height: bounds.Height}, gridColor, 1)
	}
	for y := 1; y < m.Height(); y++ {
		fy := float64(y * m.TileHeight())
		a.fillRect(screen, tmap.RectF{Y: fy, Width: bounds.Width, Height: 1 / a.zoom}, gridColor, 1)
	}
}

func (a *App) drawGroupItem(screen *ebiten.Image, gi *scene.ObjectGroupItem, alpha float32) {
	groupColor := gi.Group().Color()
	selected := a.doc.SelectedObjects()

	for _, item := range gi.Items() {
		rect := item.Bounds().Translated(gi.Pos())
		if rect.Width < 1 {
			rect.Width = 1
		}
		if rect.Height < 1 {
			rect.Height = 1
		}
		a.fillRect(screen, rect, groupColor, alpha)

		for _, sel := range selected {
			if sel == item.Object() {
				a.strokeRect(screen, rect, color.RGBA{R: 255, G: 220, B: 80, A: 255})
				break
			}
		}
	}
}

func (a *App) fillRect(screen *ebiten.Image, r tmap.RectF, c color.RGBA, alpha float32) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width*a.zoom, r.Height*a.zoom)
	op.GeoM.Translate(r.X*a.zoom+a.panX, r.Y*a.zoom+a.panY)
	op.ColorScale.Scale(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, alpha)
	screen.DrawImage(a.gridPixel, op)
}

func (a *App) strokeRect(screen *ebiten.Image, r tmap.RectF, c color.RGBA) {
	t := 1 / a.zoom
	a.fillRect(screen, tmap.RectF{X: r.X, Y: r.Y, Width: r.Width, Height: t}, c, 1)
	a.fillRect(screen, tmap.RectF{X: r.X, Y: r.Y + r.Height - t, Width: r.Width, Height: t}, c, 1)
	a.fillRect(screen, tmap.RectF{X: r.X, Y: r.Y, Width: t, Height: r.Height}, c, 1)
	a.fillRect(screen, tmap.RectF{X: r.X + r.Width - t, Y: r.Y, Width: t, Height: r.Height}, c, 1)
}

func (a *App) drawStatus(screen *ebiten.Image) {
	pos := a.screenToScene(ebiten.CursorPosition())
	tile := a.renderer.ScreenToTileCoords(pos)

	var toolName string
	if t := a.tools.ActiveTool(); t != nil {
		toolName = t.Name()
	}
	layerName := "-"
	if layer := a.doc.Map().LayerAt(a.doc.CurrentLayerIndex()); layer != nil {
		layerName = layer.Name()
	}
	status := fmt.Sprintf("tool: %s  layer: %s  tile: %.1f,%.1f  undo: %d",
		toolName, layerName, tile.X, tile.Y, a.doc.History().Len())
	if t := a.selectedTile(); t != nil {
		status += fmt.Sprintf("  tileset: %s #%d", t.Tileset().Name(), t.ID())
	}
	if tmpl := a.currentTemplate(); tmpl != nil {
		status += fmt.Sprintf("  template: %s", tmpl.Name)
	}
	ebitenutil.DebugPrintAt(screen, status, 8, a.height-20)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.width, a.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
