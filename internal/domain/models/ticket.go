package models

type Ticket struct {
	ID            int64   `json:"id"`
	PassengerName string  `json:"passenger_name"`
	ScheduleID    int64   `json:"schedule_id"`
	SeatNumber    string  `json:"seat_number"`
	Price         float64 `json:"price"`
}

func (t *Ticket) GetID() int64   { return t.ID }
func (t *Ticket) SetID(id int64) { t.ID = id }

func (t *Ticket) Pointers() []any {
	return []any{&t.PassengerName, &t.ScheduleID, &t.SeatNumber, &t.Price}
}

// TicketDetail is a ticket joined with its schedule, bus and route for printing.
type TicketDetail struct {
	Ticket
	DepartureTime string
	ArrivalTime   string
	RouteNumber   string
	Destination   string
	StartPoint    string
	EndPoint      string
	DistanceKm    float64
}
