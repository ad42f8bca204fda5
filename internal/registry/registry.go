// Package registry maps table tokens (Bus, Driver, Route, Schedule, Ticket) to
// descriptors that drive storage, form coercion and rendering generically.
package registry

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"busstation/internal/domain"
	"busstation/internal/domain/models"
)

type Kind int

const (
	KindText Kind = iota
	KindDecimal
	KindRef
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindDecimal:
		return "decimal"
	case KindRef:
		return "reference"
	default:
		return "unknown"
	}
}

// MarshalText lets JSON clients tell text, decimal and reference fields apart.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Field describes one client-supplied column. Ref names the referenced token for KindRef.
type Field struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Kind  Kind   `json:"kind"`
	Size  int    `json:"size,omitempty"`
	Ref   string `json:"ref,omitempty"`
}

// Record is implemented by every entity. Pointers returns the addresses of the
// field values in the same order as Table.Fields.
type Record interface {
	GetID() int64
	SetID(id int64)
	Pointers() []any
}

type Table struct {
	Name    string
	SQLName string
	Fields  []Field
	New     func() Record
}

// Columns returns the SQL column names of the client-supplied fields.
func (t Table) Columns() []string {
	out := make([]string, 0, len(t.Fields))
	for _, f := range t.Fields {
		out = append(out, f.Name)
	}
	return out
}

// References returns the foreign-key fields in declaration order.
func (t Table) References() []Field {
	out := []Field{}
	for _, f := range t.Fields {
		if f.Kind == KindRef {
			out = append(out, f)
		}
	}
	return out
}

// Order matters: referenced tables come before the tables that reference them.
var tables = []Table{
	{
		Name:    "Bus",
		SQLName: "bus",
		Fields: []Field{
			{Name: "route_number", Label: "Route number", Kind: KindText, Size: 50},
			{Name: "departure_time", Label: "Departure time", Kind: KindText, Size: 50},
			{Name: "destination", Label: "Destination", Kind: KindText, Size: 100},
		},
		New: func() Record { return &models.Bus{} },
	},
	{
		Name:    "Driver",
		SQLName: "driver",
		Fields: []Field{
			{Name: "name", Label: "Name", Kind: KindText, Size: 100},
			{Name: "phone", Label: "Phone", Kind: KindText, Size: 50},
			{Name: "license_number", Label: "License number", Kind: KindText, Size: 50},
		},
		New: func() Record { return &models.Driver{} },
	},
	{
		Name:    "Route",
		SQLName: "route",
		Fields: []Field{
			{Name: "start_point", Label: "Start point", Kind: KindText, Size: 100},
			{Name: "end_point", Label: "End point", Kind: KindText, Size: 100},
			{Name: "distance_km", Label: "Distance (km)", Kind: KindDecimal},
		},
		New: func() Record { return &models.Route{} },
	},
	{
		Name:    "Schedule",
		SQLName: "schedule",
		Fields: []Field{
			{Name: "bus_id", Label: "Bus", Kind: KindRef, Ref: "Bus"},
			{Name: "route_id", Label: "Route", Kind: KindRef, Ref: "Route"},
			{Name: "departure_time", Label: "Departure time", Kind: KindText, Size: 50},
			{Name: "arrival_time", Label: "Arrival time", Kind: KindText, Size: 50},
		},
		New: func() Record { return &models.Schedule{} },
	},
	{
		Name:    "Ticket",
		SQLName: "ticket",
		Fields: []Field{
			{Name: "passenger_name", Label: "Passenger name", Kind: KindText, Size: 100},
			{Name: "schedule_id", Label: "Schedule", Kind: KindRef, Ref: "Schedule"},
			{Name: "seat_number", Label: "Seat number", Kind: KindText, Size: 10},
			{Name: "price", Label: "Price", Kind: KindDecimal},
		},
		New: func() Record { return &models.Ticket{} },
	},
}

var byName = func() map[string]Table {
	m := make(map[string]Table, len(tables))
	for _, t := range tables {
		m[t.Name] = t
	}
	return m
}()

// Lookup resolves a table token. Tokens are case-sensitive.
func Lookup(name string) (Table, error) {
	t, ok := byName[name]
	if !ok {
		return Table{}, domain.UnknownTableError{Name: name}
	}
	return t, nil
}

// Names returns the known tokens in registry order.
func Names() []string {
	out := make([]string, 0, len(tables))
	for _, t := range tables {
		out = append(out, t.Name)
	}
	return out
}

// Tables returns a copy of the descriptors in registry order.
func Tables() []Table {
	out := make([]Table, len(tables))
	copy(out, tables)
	return out
}

// Getter reads one submitted value. gin's (*Context).GetPostForm satisfies it.
type Getter func(field string) (string, bool)

// Assign coerces submitted values onto rec. Every field is required; text is
// copied verbatim, decimals and references must parse.
func Assign(t Table, rec Record, get Getter) error {
	ptrs := rec.Pointers()
	if len(ptrs) != len(t.Fields) {
		return domain.InternalError{Msg: fmt.Sprintf("%s: record shape does not match descriptor", t.Name)}
	}
	for i, f := range t.Fields {
		raw, ok := get(f.Name)
		if !ok {
			return domain.ValidationError{Field: f.Name, Msg: "required"}
		}
		if err := coerce(f, raw, ptrs[i]); err != nil {
			return err
		}
	}
	return nil
}

func coerce(f Field, raw string, dst any) error {
	switch p := dst.(type) {
	case *string:
		*p = raw
	case *float64:
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return domain.ValidationError{Field: f.Name, Msg: fmt.Sprintf("%q is not a decimal number", raw), Err: err}
		}
		*p = v
	case *int64:
		v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return domain.ValidationError{Field: f.Name, Msg: fmt.Sprintf("%q is not a record id", raw), Err: err}
		}
		*p = v
	default:
		return domain.InternalError{Msg: fmt.Sprintf("unsupported field type %T for %s", dst, f.Name)}
	}
	return nil
}

// Values dereferences rec.Pointers() for use as query arguments.
func Values(rec Record) []any {
	ptrs := rec.Pointers()
	out := make([]any, 0, len(ptrs))
	for _, p := range ptrs {
		switch v := p.(type) {
		case *string:
			out = append(out, *v)
		case *float64:
			out = append(out, *v)
		case *int64:
			out = append(out, *v)
		default:
			out = append(out, p)
		}
	}
	return out
}

// Display formats field values for HTML forms and listings.
func Display(rec Record) []string {
	ptrs := rec.Pointers()
	out := make([]string, 0, len(ptrs))
	for _, p := range ptrs {
		switch v := p.(type) {
		case *string:
			out = append(out, *v)
		case *float64:
			out = append(out, strconv.FormatFloat(*v, 'f', -1, 64))
		case *int64:
			out = append(out, strconv.FormatInt(*v, 10))
		default:
			out = append(out, fmt.Sprint(p))
		}
	}
	return out
}
