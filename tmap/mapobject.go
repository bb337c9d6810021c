package tmap

// Shape determines how a map object's geometry is interpreted.
type Shape int

const (
	Rectangle Shape = iota
	Point
	Ellipse
	Polygon
	Polyline
)

// MapObject is a single placed object on an object group.
type MapObject struct {
	name     string
	kind     string
	shape    Shape
	position PointF
	size     SizeF
	polygon  []PointF
	rotation float64
	cell     Cell
	group    *ObjectGroup
	props    map[string]string
}

func NewMapObject(name string, shape Shape) *MapObject {
	return &MapObject{name: name, shape: shape}
}

func (o *MapObject) Name() string     { return o.name }
func (o *MapObject) SetName(n string) { o.name = n }

// Kind is the user-defined object type string ("spawn", "door", ...).
func (o *MapObject) Kind() string     { return o.kind }
func (o *MapObject) SetKind(k string) { o.kind = k }

func (o *MapObject) Shape() Shape     { return o.shape }
func (o *MapObject) SetShape(s Shape) { o.shape = s }

func (o *MapObject) Position() PointF     { return o.position }
func (o *MapObject) SetPosition(p PointF) { o.position = p }

func (o *MapObject) Size() SizeF     { return o.size }
func (o *MapObject) SetSize(s SizeF) { o.size = s }

func (o *MapObject) Polygon() []PointF      { return o.polygon }
func (o *MapObject) SetPolygon(ps []PointF) { o.polygon = ps }

func (o *MapObject) Rotation() float64     { return o.rotation }
func (o *MapObject) SetRotation(r float64) { o.rotation = r }

// Cell is the object's tile reference; empty for shape objects.
func (o *MapObject) Cell() Cell     { return o.cell }
func (o *MapObject) SetCell(c Cell) { o.cell = c }

// Property returns the named custom property, "" when unset.
func (o *MapObject) Property(name string) string { return o.props[name] }

// Properties is the object's custom property map, nil when none are set.
func (o *MapObject) Properties() map[string]string { return o.props }

func (o *MapObject) SetProperty(name, value string) {
	if o.props == nil {
		o.props = make(map[string]string)
	}
	o.props[name] = value
}

// ObjectGroup is the group currently owning the object, nil while detached.
func (o *MapObject) ObjectGroup() *ObjectGroup { return o.group }

// Bounds is the object's bounding rectangle in pixel coordinates.
func (o *MapObject) Bounds() RectF {
	switch o.shape {
	case Polygon, Polyline:
		return BoundsOf(o.polygon).Translated(o.position)
	default:
		return RectF{X: o.position.X, Y: o.position.Y, Width: o.size.Width, Height: o.size.Height}
	}
}
