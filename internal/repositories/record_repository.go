package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	intdb "busstation/internal/db"
	"busstation/internal/domain"
	"busstation/internal/domain/models"
	"busstation/internal/registry"
)

// RecordRepository is the generic CRUD store over every registered table.
// Each call runs as its own statement; nothing spans tables.
type RecordRepository struct {
	DB      *sql.DB
	Dialect intdb.Dialect
}

func (r RecordRepository) selectColumns(t registry.Table) string {
	return "id, " + strings.Join(t.Columns(), ", ")
}

func scanRecord(t registry.Table, row interface{ Scan(...any) error }) (registry.Record, error) {
	rec := t.New()
	var id int64
	dest := append([]any{&id}, rec.Pointers()...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	rec.SetID(id)
	return rec, nil
}

// List returns every row of t ordered by id. An empty table yields an empty slice.
func (r RecordRepository) List(ctx context.Context, t registry.Table) ([]registry.Record, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY id ASC`, r.selectColumns(t), t.SQLName)
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, r.Dialect.Translate(t.Name, 0, err)
	}
	defer rows.Close()

	out := []registry.Record{}
	for rows.Next() {
		rec, err := scanRecord(t, rows)
		if err != nil {
			return nil, r.Dialect.Translate(t.Name, 0, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, r.Dialect.Translate(t.Name, 0, err)
	}
	return out, nil
}

func (r RecordRepository) Get(ctx context.Context, t registry.Table, id int64) (registry.Record, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = ?`, r.selectColumns(t), t.SQLName)
	rec, err := scanRecord(t, r.DB.QueryRowContext(ctx, r.Dialect.Rebind(query), id))
	if err != nil {
		return nil, r.Dialect.Translate(t.Name, id, err)
	}
	return rec, nil
}

// Create inserts rec and stores the assigned id on it.
func (r RecordRepository) Create(ctx context.Context, t registry.Table, rec registry.Record) error {
	cols := t.Columns()
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`, t.SQLName, strings.Join(cols, ", "), marks)
	args := registry.Values(rec)

	var id int64
	if r.Dialect.Returning {
		err := r.DB.QueryRowContext(ctx, r.Dialect.Rebind(query+` RETURNING id`), args...).Scan(&id)
		if err != nil {
			return r.Dialect.Translate(t.Name, 0, err)
		}
	} else {
		res, err := r.DB.ExecContext(ctx, r.Dialect.Rebind(query), args...)
		if err != nil {
			return r.Dialect.Translate(t.Name, 0, err)
		}
		if id, err = res.LastInsertId(); err != nil {
			return domain.InternalError{Msg: "could not read new id", Err: err}
		}
	}
	rec.SetID(id)
	return nil
}

// Update overwrites every field of the row identified by rec.GetID().
func (r RecordRepository) Update(ctx context.Context, t registry.Table, rec registry.Record) error {
	id := rec.GetID()
	sets := make([]string, 0, len(t.Fields))
	for _, c := range t.Columns() {
		sets = append(sets, c+" = ?")
	}
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = ?`, t.SQLName, strings.Join(sets, ", "))
	args := append(registry.Values(rec), id)

	res, err := r.DB.ExecContext(ctx, r.Dialect.Rebind(query), args...)
	if err != nil {
		return r.Dialect.Translate(t.Name, id, err)
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		// MySQL reports 0 for an update that changed nothing, so confirm the row is gone.
		if _, err := r.Get(ctx, t, id); err != nil {
			return err
		}
	}
	return nil
}

func (r RecordRepository) Delete(ctx context.Context, t registry.Table, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, t.SQLName)
	res, err := r.DB.ExecContext(ctx, r.Dialect.Rebind(query), id)
	if err != nil {
		return r.Dialect.Translate(t.Name, id, err)
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: t.Name, ID: id}
	}
	return nil
}

// TicketDetail loads a ticket with its schedule, bus and route.
func (r RecordRepository) TicketDetail(ctx context.Context, id int64) (models.TicketDetail, error) {
	var d models.TicketDetail
	err := r.DB.QueryRowContext(ctx, r.Dialect.Rebind(`
		SELECT
			t.id, t.passenger_name, t.schedule_id, t.seat_number, t.price,
			s.departure_time, s.arrival_time,
			b.route_number, b.destination,
			rt.start_point, rt.end_point, rt.distance_km
		FROM ticket t
		JOIN schedule s ON s.id = t.schedule_id
		JOIN bus b ON b.id = s.bus_id
		JOIN route rt ON rt.id = s.route_id
		WHERE t.id = ?
	`), id).Scan(
		&d.ID, &d.PassengerName, &d.ScheduleID, &d.SeatNumber, &d.Price,
		&d.DepartureTime, &d.ArrivalTime,
		&d.RouteNumber, &d.Destination,
		&d.StartPoint, &d.EndPoint, &d.DistanceKm,
	)
	if err != nil {
		return d, r.Dialect.Translate("Ticket", id, err)
	}
	return d, nil
}
