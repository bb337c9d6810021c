package main

import (
	"bytes"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"mapsmith/tool"
)

// ToolBar keeps the toolbar's radio group in sync with hotkey tool switches.
type ToolBar struct {
	group   *widget.RadioGroup
	buttons []*widget.Button
	names   []string
}

func (t *ToolBar) SetTool(name string) {
	for i, n := range t.names {
		if n == name {
			t.group.SetActive(t.buttons[i])
			return
		}
	}
}

// LayerPanel keeps the layer buttons in sync with the document's active
// layer.
type LayerPanel struct {
	group   *widget.RadioGroup
	buttons []*widget.Button
}

func (p *LayerPanel) SetSelected(index int) {
	if index >= 0 && index < len(p.buttons) {
		p.group.SetActive(p.buttons[index])
	}
}

func BuildEditorUI(app *App) (*ebitenui.UI, *ToolBar, *LayerPanel) {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}
	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	toolbarContainer, toolBar := buildToolBar(ui.PrimaryTheme, &fontFace, app)
	layerContainer, layerPanel := buildLayerPanel(ui.PrimaryTheme, &fontFace, app)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	toolbarContainer.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	layerContainer.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	}
	root.AddChild(toolbarContainer)
	root.AddChild(layerContainer)

	ui.Container = root
	return ui, toolBar, layerPanel
}

// buildLayerPanel lists the document's layers as a radio group plus lock and
// hide toggles for the active layer.
func buildLayerPanel(theme *widget.Theme, fontFace *text.Face, app *App) (*widget.Container, *LayerPanel) {
	panel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(120, 0),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(4),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(toolbarBackground)),
	)

	var layerButtons []*widget.Button
	for _, layer := range app.doc.Map().Layers() {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(layer.Name(), fontFace, toolButtonTextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(110, 32)),
		)
		layerButtons = append(layerButtons, btn)
		panel.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(layerButtons))
	for _, b := range layerButtons {
		elements = append(elements, b)
	}
	group := widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			for idx, b := range layerButtons {
				if args.Active == b {
					app.doc.SetCurrentLayer(idx)
					return
				}
			}
		}),
	)
	if idx := app.doc.CurrentLayerIndex(); idx >= 0 && idx < len(layerButtons) {
		group.SetActive(layerButtons[idx])
	}

	lockBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Lock", fontFace, toolButtonTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(110, 32)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if layer := app.doc.Map().LayerAt(app.doc.CurrentLayerIndex()); layer != nil {
				layer.SetLocked(!layer.Locked())
			}
		}),
	)
	hideBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Hide", fontFace, toolButtonTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(110, 32)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if layer := app.doc.Map().LayerAt(app.doc.CurrentLayerIndex()); layer != nil {
				layer.SetVisible(!layer.Visible())
			}
		}),
	)
	panel.AddChild(lockBtn)
	panel.AddChild(hideBtn)

	return panel, &LayerPanel{group: group, buttons: layerButtons}
}

func buildToolBar(theme *widget.Theme, fontFace *text.Face, app *App) (*widget.Container, *ToolBar) {
	tools := []struct {
		label string
		name  string
	}{
		{"Select", tool.SelectionToolName},
		{"Point", tool.PointToolName},
		{"Rect", tool.RectangleToolName},
		{"Ellipse", tool.EllipseToolName},
		{"Tile", tool.TileToolName},
		{"Template", tool.TemplateToolName},
	}

	toolbar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 48),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(toolbarBackground)),
	)

	var toolButtons []*widget.Button
	names := make([]string, 0, len(tools))
	for _, t := range tools {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(t.label, fontFace, toolButtonTextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(48, 40),
			),
		)
		toolButtons = append(toolButtons, btn)
		names = append(names, t.name)
		toolbar.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(toolButtons))
	for _, b := range toolButtons {
		elements = append(elements, b)
	}
	group := widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			for idx, b := range toolButtons {
				if args.Active == b {
					if t := app.tools.Find(names[idx]); t != nil {
						app.tools.SelectTool(t)
					}
					return
				}
			}
		}),
	)
	group.SetActive(toolButtons[0])

	undoBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Undo", fontFace, toolButtonTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(48, 40)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			app.doc.Undo()
		}),
	)
	redoBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Redo", fontFace, toolButtonTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(48, 40)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			app.doc.Redo()
		}),
	)
	toolbar.AddChild(undoBtn)
	toolbar.AddChild(redoBtn)

	return toolbar, &ToolBar{group: group, buttons: toolButtons, names: names}
}
