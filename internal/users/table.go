package users

import (
	"errors"
	"fmt"
)

// ErrUnknownProjection is returned by Project for a projection name that
// is not one of the Projection constants.
var ErrUnknownProjection = errors.New("unknown projection")

// Record is a single user row.
type Record struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// Age is the age-only projection of a Record.
type Age struct {
	Age int `json:"age"`
}

// Name is the name-only projection of a Record.
type Name struct {
	Name string `json:"name"`
}

// ID is the id-only projection of a Record.
type ID struct {
	ID int `json:"id"`
}

// Projection names a derived view of the table.
type Projection string

const (
	ProjectionAll   Projection = "all"
	ProjectionAges  Projection = "ages"
	ProjectionNames Projection = "names"
	ProjectionIDs   Projection = "ids"
)

// Projections lists every supported projection in a stable order.
var Projections = []Projection{ProjectionAll, ProjectionAges, ProjectionNames, ProjectionIDs}

// Valid reports whether p names a supported projection.
func (p Projection) Valid() bool {
	for _, known := range Projections {
		if p == known {
			return true
		}
	}
	return false
}

var defaultRecords = [...]Record{
	{ID: 1, Name: "sara", Age: 26},
	{ID: 2, Name: "sam", Age: 25},
	{ID: 3, Name: "santa", Age: 23},
}

// Table is a read-only, ordered sequence of records. Every accessor
// returns a fresh slice so callers can never mutate the backing rows.
// The zero value is an empty table.
type Table struct {
	records []Record
}

// New builds a table from the given records, copying them.
func New(records ...Record) *Table {
	rows := make([]Record, len(records))
	copy(rows, records)
	return &Table{records: rows}
}

// Default returns the fixed table served by the gateway.
func Default() *Table {
	return New(defaultRecords[:]...)
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// GetAll returns every record in table order.
func (t *Table) GetAll() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

// GetAges returns one {age} object per record in table order.
func (t *Table) GetAges() []Age {
	out := make([]Age, 0, len(t.records))
	for _, r := range t.records {
		out = append(out, Age{Age: r.Age})
	}
	return out
}

// GetNames returns one {name} object per record in table order.
func (t *Table) GetNames() []Name {
	out := make([]Name, 0, len(t.records))
	for _, r := range t.records {
		out = append(out, Name{Name: r.Name})
	}
	return out
}

// GetIds returns one {id} object per record in table order.
func (t *Table) GetIds() []ID {
	out := make([]ID, 0, len(t.records))
	for _, r := range t.records {
		out = append(out, ID{ID: r.ID})
	}
	return out
}

// Project returns the named projection as a JSON-serialisable value.
func (t *Table) Project(p Projection) (interface{}, error) {
	switch p {
	case ProjectionAll:
		return t.GetAll(), nil
	case ProjectionAges:
		return t.GetAges(), nil
	case ProjectionNames:
		return t.GetNames(), nil
	case ProjectionIDs:
		return t.GetIds(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProjection, p)
	}
}

// Rows returns the named projection as generic field maps, one per record.
// Used by transports that cannot carry Go structs directly.
func (t *Table) Rows(p Projection) ([]map[string]interface{}, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProjection, p)
	}
	rows := make([]map[string]interface{}, 0, len(t.records))
	for _, r := range t.records {
		var row map[string]interface{}
		switch p {
		case ProjectionAll:
			row = map[string]interface{}{"id": r.ID, "name": r.Name, "age": r.Age}
		case ProjectionAges:
			row = map[string]interface{}{"age": r.Age}
		case ProjectionNames:
			row = map[string]interface{}{"name": r.Name}
		case ProjectionIDs:
			row = map[string]interface{}{"id": r.ID}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
