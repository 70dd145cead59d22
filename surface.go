package shapes

// ItemID is the opaque identifier a Surface returns for a created polygon.
// The zero ItemID is never issued.
type ItemID uint64

// Surface is the drawing collaborator that shapes call into.
//
// Changes made through a Surface take effect immediately, but are not
// guaranteed to be visible until Refresh is called.
//
// Canvas is the implementation shipped with this package.
type Surface interface {
	// CreatePolygon registers a new polygon item.
	CreatePolygon(vertices []Vertex, style Style) (ItemID, error)

	// ConfigureItem sets one style attribute of an item.
	ConfigureItem(id ItemID, key StyleKey, value string) error

	// ItemStyle reads one style attribute of an item.
	ItemStyle(id ItemID, key StyleKey) (string, error)

	// ReconfigureGeometry replaces the vertex list of an item.
	ReconfigureGeometry(id ItemID, vertices []Vertex) error

	// DeleteItem removes an item. The id must not be used afterwards.
	DeleteItem(id ItemID) error

	// Refresh redraws the surface.
	Refresh() error
}
