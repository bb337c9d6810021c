package tmap

// Tileset is a named collection of same-sized tiles.
type Tileset struct {
	name       string
	image      string
	tileWidth  int
	tileHeight int
	columns    int
	tiles      []*Tile
}

func NewTileset(name string, tileWidth, tileHeight int) *Tileset {
	return &Tileset{name: name, tileWidth: tileWidth, tileHeight: tileHeight}
}

func (s *Tileset) Name() string      { return s.name }
func (s *Tileset) Image() string     { return s.image }
func (s *Tileset) SetImage(p string) { s.image = p }
func (s *Tileset) TileWidth() int    { return s.tileWidth }
func (s *Tileset) TileHeight() int   { return s.tileHeight }
func (s *Tileset) Columns() int      { return s.columns }
func (s *Tileset) SetColumns(c int)  { s.columns = c }
func (s *Tileset) TileCount() int    { return len(s.tiles) }

// AddTiles grows the tileset to n sequentially numbered tiles.
func (s *Tileset) AddTiles(n int) {
	for i := 0; i < n; i++ {
		s.tiles = append(s.tiles, &Tile{id: len(s.tiles), tileset: s})
	}
}

func (s *Tileset) TileAt(id int) *Tile {
	if id < 0 || id >= len(s.tiles) {
		return nil
	}
	return s.tiles[id]
}

// Tile is one tile of a tileset.
type Tile struct {
	id      int
	tileset *Tileset
}

func (t *Tile) ID() int           { return t.id }
func (t *Tile) Tileset() *Tileset { return t.tileset }

// Cell is a reference to a tile, with flip flags.
type Cell struct {
	Tile                  *Tile
	FlippedHorizontally   bool
	FlippedVertically     bool
	FlippedAntiDiagonally bool
}

func (c Cell) IsEmpty() bool { return c.Tile == nil }

// Tileset returns the tileset of the referenced tile, or nil for an empty
// cell.
func (c Cell) Tileset() *Tileset {
	if c.Tile == nil {
		return nil
	}
	return c.Tile.tileset
}
