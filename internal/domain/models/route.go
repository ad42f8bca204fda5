package models

// Route is a start/end pair with its length in kilometers.
type Route struct {
	ID         int64   `json:"id"`
	StartPoint string  `json:"start_point"`
	EndPoint   string  `json:"end_point"`
	DistanceKm float64 `json:"distance_km"`
}

func (r *Route) GetID() int64   { return r.ID }
func (r *Route) SetID(id int64) { r.ID = id }

func (r *Route) Pointers() []any {
	return []any{&r.StartPoint, &r.EndPoint, &r.DistanceKm}
}
