package tmap

// Orientation selects the map projection.
type Orientation int

const (
	Orthogonal Orientation = iota
	Isometric
	Hexagonal
)

// StaggerAxis selects which axis is staggered on hexagonal maps.
type StaggerAxis int

const (
	StaggerX StaggerAxis = iota
	StaggerY
)

// StaggerIndex selects whether even or odd rows/columns are shifted.
type StaggerIndex int

const (
	StaggerOdd StaggerIndex = iota
	StaggerEven
)

// Map is the persistent document model: layer list, tileset list and the
// grid parameters the renderers project through.
type Map struct {
	orientation   Orientation
	width, height int // in tiles
	tileWidth     int // in pixels
	tileHeight    int
	hexSideLength int
	staggerAxis   StaggerAxis
	staggerIndex  StaggerIndex
	layers        []Layer
	tilesets      []*Tileset
}

func NewMap(orientation Orientation, width, height, tileWidth, tileHeight int) *Map {
	return &Map{
		orientation: orientation,
		width:       width,
		height:      height,
		tileWidth:   tileWidth,
		tileHeight:  tileHeight,
		staggerAxis: StaggerY,
	}
}

func (m *Map) Orientation() Orientation { return m.orientation }
func (m *Map) Width() int               { return m.width }
func (m *Map) Height() int              { return m.height }
func (m *Map) TileWidth() int           { return m.tileWidth }
func (m *Map) TileHeight() int          { return m.tileHeight }

func (m *Map) HexSideLength() int          { return m.hexSideLength }
func (m *Map) SetHexSideLength(l int)      { m.hexSideLength = l }
func (m *Map) StaggerAxis() StaggerAxis    { return m.staggerAxis }
func (m *Map) SetStaggerAxis(a StaggerAxis) { m.staggerAxis = a }
func (m *Map) StaggerIndex() StaggerIndex  { return m.staggerIndex }
func (m *Map) SetStaggerIndex(i StaggerIndex) { m.staggerIndex = i }

func (m *Map) Layers() []Layer  { return m.layers }
func (m *Map) LayerCount() int  { return len(m.layers) }

func (m *Map) LayerAt(index int) Layer {
	if index < 0 || index >= len(m.layers) {
		return nil
	}
	return m.layers[index]
}

func (m *Map) AddLayer(l Layer) { m.layers = append(m.layers, l) }

func (m *Map) Tilesets() []*Tileset { return m.tilesets }

func (m *Map) AddTileset(s *Tileset) { m.tilesets = append(m.tilesets, s) }

// RemoveTileset drops s from the tileset list, reporting whether it was
// present.
func (m *Map) RemoveTileset(s *Tileset) bool {
	for i, t := range m.tilesets {
		if t == s {
			m.tilesets = append(m.tilesets[:i], m.tilesets[i+1:]...)
			return true
		}
	}
	return false
}

// HasTileset reports whether s is already part of the map.
func (m *Map) HasTileset(s *Tileset) bool {
	for _, t := range m.tilesets {
		if t == s {
			return true
		}
	}
	return false
}
