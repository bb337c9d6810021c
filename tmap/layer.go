package tmap

// Layer is a single layer of a map. Concrete kinds are ObjectGroup and
// TileLayer.
type Layer interface {
	Name() string
	SetName(string)
	Visible() bool
	SetVisible(bool)
	Locked() bool
	SetLocked(bool)
	Offset() PointF
	SetOffset(PointF)
}

// layerProps carries the state shared by all layer kinds.
type layerProps struct {
	name    string
	visible bool
	locked  bool
	offset  PointF
}

func (l *layerProps) Name() string        { return l.name }
func (l *layerProps) SetName(n string)    { l.name = n }
func (l *layerProps) Visible() bool       { return l.visible }
func (l *layerProps) SetVisible(v bool)   { l.visible = v }
func (l *layerProps) Locked() bool        { return l.locked }
func (l *layerProps) SetLocked(v bool)    { l.locked = v }
func (l *layerProps) Offset() PointF      { return l.offset }
func (l *layerProps) SetOffset(o PointF)  { l.offset = o }

// TileLayer is a fixed grid of cells. The editor's placement tools never
// target it, but maps commonly carry one below their object groups.
type TileLayer struct {
	layerProps
	width, height int
	cells         []Cell
}

func NewTileLayer(name string, width, height int) *TileLayer {
	return &TileLayer{
		layerProps: layerProps{name: name, visible: true},
		width:      width,
		height:     height,
		cells:      make([]Cell, width*height),
	}
}

func (t *TileLayer) Width() int  { return t.width }
func (t *TileLayer) Height() int { return t.height }

func (t *TileLayer) CellAt(x, y int) Cell {
	if x < 0 || y < 0 || x >= t.width || y >= t.height {
		return Cell{}
	}
	return t.cells[y*t.width+x]
}

func (t *TileLayer) SetCell(x, y int, c Cell) {
	if x < 0 || y < 0 || x >= t.width || y >= t.height {
		return
	}
	t.cells[y*t.width+x] = c
}
