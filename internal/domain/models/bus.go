package models

// Bus is one vehicle line operated from the station.
type Bus struct {
	ID            int64  `json:"id"`
	RouteNumber   string `json:"route_number"`
	DepartureTime string `json:"departure_time"`
	Destination   string `json:"destination"`
}

func (b *Bus) GetID() int64   { return b.ID }
func (b *Bus) SetID(id int64) { b.ID = id }

func (b *Bus) Pointers() []any {
	return []any{&b.RouteNumber, &b.DepartureTime, &b.Destination}
}
