package users

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	tbl := Default()
	require.Equal(t, 3, tbl.Len())
	assert.Equal(t, []Record{
		{ID: 1, Name: "sara", Age: 26},
		{ID: 2, Name: "sam", Age: 25},
		{ID: 3, Name: "santa", Age: 23},
	}, tbl.GetAll())
}

func TestProjectionsJSON(t *testing.T) {
	tbl := Default()

	cases := []struct {
		name string
		got  interface{}
		want string
	}{
		{"all", tbl.GetAll(), `[{"id":1,"name":"sara","age":26},{"id":2,"name":"sam","age":25},{"id":3,"name":"santa","age":23}]`},
		{"ages", tbl.GetAges(), `[{"age":26},{"age":25},{"age":23}]`},
		{"names", tbl.GetNames(), `[{"name":"sara"},{"name":"sam"},{"name":"santa"}]`},
		{"ids", tbl.GetIds(), `[{"id":1},{"id":2},{"id":3}]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.got)
			require.NoError(t, err)
			// Exact string comparison also pins key order.
			assert.Equal(t, tc.want, string(b))
		})
	}
}

func TestGetAllReturnsCopy(t *testing.T) {
	tbl := Default()
	rows := tbl.GetAll()
	rows[0].Name = "mutated"

	assert.Equal(t, "sara", tbl.GetAll()[0].Name)
	assert.Equal(t, "sara", Default().GetAll()[0].Name)
}

func TestNewCopiesInput(t *testing.T) {
	in := []Record{{ID: 7, Name: "x", Age: 1}}
	tbl := New(in...)
	in[0].Age = 99

	assert.Equal(t, 1, tbl.GetAges()[0].Age)
}

func TestProjectIsIdempotent(t *testing.T) {
	tbl := Default()
	for _, p := range Projections {
		first, err := tbl.Project(p)
		require.NoError(t, err)
		second, err := tbl.Project(p)
		require.NoError(t, err)
		assert.Equal(t, first, second, "projection %s", p)
	}
}

func TestProjectOrderPreserved(t *testing.T) {
	tbl := New(
		Record{ID: 9, Name: "z", Age: 1},
		Record{ID: 3, Name: "a", Age: 50},
		Record{ID: 5, Name: "m", Age: 20},
	)
	assert.Equal(t, []ID{{9}, {3}, {5}}, tbl.GetIds())
	assert.Equal(t, []Name{{"z"}, {"a"}, {"m"}}, tbl.GetNames())
	assert.Equal(t, []Age{{1}, {50}, {20}}, tbl.GetAges())
}

func TestProjectUnknown(t *testing.T) {
	tbl := Default()

	_, err := tbl.Project("emails")
	assert.True(t, errors.Is(err, ErrUnknownProjection))

	_, err = New().Rows("emails")
	assert.ErrorIs(t, err, ErrUnknownProjection)
}

func TestRows(t *testing.T) {
	rows, err := Default().Rows(ProjectionAll)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, map[string]interface{}{"id": 2, "name": "sam", "age": 25}, rows[1])

	rows, err = Default().Rows(ProjectionNames)
	require.NoError(t, err)
	assert.Equal(t, []map[string]interface{}{{"name": "sara"}, {"name": "sam"}, {"name": "santa"}}, rows)
}

func TestEmptyTable(t *testing.T) {
	var tbl Table
	assert.Empty(t, tbl.GetAll())
	assert.NotNil(t, tbl.GetAges())
	assert.Equal(t, 0, tbl.Len())
}
