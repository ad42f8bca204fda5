package models

// Schedule assigns a bus to a route for one departure/arrival pair.
type Schedule struct {
	ID            int64  `json:"id"`
	BusID         int64  `json:"bus_id"`
	RouteID       int64  `json:"route_id"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
}

func (s *Schedule) GetID() int64   { return s.ID }
func (s *Schedule) SetID(id int64) { s.ID = id }

func (s *Schedule) Pointers() []any {
	return []any{&s.BusID, &s.RouteID, &s.DepartureTime, &s.ArrivalTime}
}
