// Package domain contains the core data types for the hotel front-desk
// application: the room catalog, the reservation aggregate, and the pure
// settlement arithmetic. This package has no I/O and is imported by every
// other internal package (repo, service, handler).
package domain

// RoomType classifies a room in the fixed catalog.
type RoomType string

const (
	RoomSingle RoomType = "Single"
	RoomDouble RoomType = "Double"
	RoomTriple RoomType = "Triple"
	RoomVIP    RoomType = "VIP"
)

// Room is one entry of the static room catalog: a room number, its type, and
// the current nightly price in whole pesos. Rooms are reference data — they
// are never created or destroyed at runtime.
type Room struct {
	Number       string   `json:"number"`
	Type         RoomType `json:"type"`
	NightlyPrice int64    `json:"nightly_price"`
}

// Catalog is the read-only room inventory of the property, looked up by room
// number. Build one with NewCatalog or use DefaultCatalog.
type Catalog struct {
	rooms    []Room
	byNumber map[string]Room
}

// NewCatalog builds a Catalog from a fixed room list.
func NewCatalog(rooms []Room) *Catalog {
	byNumber := make(map[string]Room, len(rooms))
	for _, r := range rooms {
		byNumber[r.Number] = r
	}
	return &Catalog{rooms: rooms, byNumber: byNumber}
}

// DefaultCatalog returns the property's seeded seven-room inventory.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Room{
		{Number: "101", Type: RoomSingle, NightlyPrice: 1500},
		{Number: "102", Type: RoomSingle, NightlyPrice: 1500},
		{Number: "103", Type: RoomSingle, NightlyPrice: 1500},
		{Number: "201", Type: RoomDouble, NightlyPrice: 2500},
		{Number: "202", Type: RoomDouble, NightlyPrice: 2500},
		{Number: "203", Type: RoomTriple, NightlyPrice: 3500},
		{Number: "301", Type: RoomVIP, NightlyPrice: 5000},
	})
}

// ByNumber looks a room up by its number.
func (c *Catalog) ByNumber(number string) (Room, bool) {
	r, ok := c.byNumber[number]
	return r, ok
}

// All returns the full catalog in seeded order. The returned slice is a copy;
// callers may not mutate reference data.
func (c *Catalog) All() []Room {
	out := make([]Room, len(c.rooms))
	copy(out, c.rooms)
	return out
}
