package ddl

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kolonna/internal/datamodel"
	"kolonna/internal/sqldialect"
)

func strptr(s string) *string { return &s }

func TestColumnScalarMappingPostgres(t *testing.T) {
	comp := NewCompiler(sqldialect.Postgres{})

	cases := []struct {
		scalar datamodel.ScalarType
		want   string
	}{
		{datamodel.String, "text"},
		{datamodel.Boolean, "boolean"},
		{datamodel.Int, "int"},
		{datamodel.Float, "Decimal(65,30)"},
		{datamodel.Cuid, "varchar (25)"},
		{datamodel.Enum, "text"},
		{datamodel.Json, "text"},
		{datamodel.DateTime, "timestamp (3)"},
		{datamodel.UUID, "uuid"},
	}
	for _, tc := range cases {
		t.Run(string(tc.scalar), func(t *testing.T) {
			got, err := comp.Column(datamodel.Field{Name: "f", Type: tc.scalar, Required: true})
			require.NoError(t, err)
			assert.Equal(t, fmt.Sprintf(`"f" %s NOT NULL`, tc.want), got)
		})
	}
}

func TestColumnListOverridesScalar(t *testing.T) {
	comp := NewCompiler(sqldialect.Postgres{})

	// list-поле хранится текстом независимо от скаляра
	for scalar := range map[datamodel.ScalarType]struct{}{
		datamodel.String: {}, datamodel.Boolean: {}, datamodel.Int: {},
		datamodel.Float: {}, datamodel.Cuid: {}, datamodel.Enum: {},
		datamodel.Json: {}, datamodel.DateTime: {}, datamodel.UUID: {},
	} {
		got, err := comp.Column(datamodel.Field{Name: "vals", Type: scalar, List: true})
		require.NoError(t, err, scalar)
		assert.Equal(t, `"vals" text NULL`, got, scalar)
	}
}

func TestColumnNullability(t *testing.T) {
	comp := NewCompiler(sqldialect.Postgres{})

	got, err := comp.Column(datamodel.Field{Name: "age", Type: datamodel.Int, Required: true})
	require.NoError(t, err)
	assert.Equal(t, `"age" int NOT NULL`, got)

	got, err = comp.Column(datamodel.Field{Name: "age", Type: datamodel.Int})
	require.NoError(t, err)
	assert.Equal(t, `"age" int NULL`, got)
	assert.NotContains(t, got, "NOT NULL")
}

func TestColumnDefault(t *testing.T) {
	comp := NewCompiler(sqldialect.Postgres{})

	got, err := comp.Column(datamodel.Field{Name: "id", Type: datamodel.Cuid, Required: true, Default: strptr("cuid()")})
	require.NoError(t, err)
	assert.Equal(t, `"id" varchar (25) NOT NULL DEFAULT cuid()`, got)

	// без default — без клаузы и без хвостового пробела
	got, err = comp.Column(datamodel.Field{Name: "id", Type: datamodel.Cuid, Required: true})
	require.NoError(t, err)
	assert.Equal(t, `"id" varchar (25) NOT NULL`, got)
	assert.NotContains(t, got, "DEFAULT")

	// пустой default подавляется, DEFAULT без значения не собираем
	got, err = comp.Column(datamodel.Field{Name: "id", Type: datamodel.Cuid, Required: true, Default: strptr("  ")})
	require.NoError(t, err)
	assert.Equal(t, `"id" varchar (25) NOT NULL`, got)
}

func TestColumnScenarios(t *testing.T) {
	comp := NewCompiler(sqldialect.Postgres{})

	cases := []struct {
		name string
		f    datamodel.Field
		want string
	}{
		{"age int", datamodel.Field{Name: "age", Type: datamodel.Int, Required: true}, `"age" int NOT NULL`},
		{"tags list", datamodel.Field{Name: "tags", Type: datamodel.String, List: true}, `"tags" text NULL`},
		{"price decimal", datamodel.Field{Name: "price", Type: datamodel.Float, Required: true}, `"price" Decimal(65,30) NOT NULL`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := comp.Column(tc.f)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestColumnUnsupportedScalar(t *testing.T) {
	comp := NewCompiler(sqldialect.Postgres{})

	_, err := comp.Column(datamodel.Field{Name: "x", Type: datamodel.ScalarType("geometry")})
	require.Error(t, err)

	var unsupported *sqldialect.UnsupportedScalarTypeError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, datamodel.ScalarType("geometry"), unsupported.ScalarType)
}

func TestColumnAutoGeneratedHasNoEffect(t *testing.T) {
	comp := NewCompiler(sqldialect.Postgres{})

	plain, err := comp.Column(datamodel.Field{Name: "id", Type: datamodel.Cuid, Required: true})
	require.NoError(t, err)
	auto, err := comp.Column(datamodel.Field{Name: "id", Type: datamodel.Cuid, Required: true, AutoGenerated: true})
	require.NoError(t, err)
	assert.Equal(t, plain, auto)
}

func TestColumnDeterministic(t *testing.T) {
	comp := NewCompiler(sqldialect.Postgres{})
	f := datamodel.Field{Name: "when", Type: datamodel.DateTime, Required: true, Default: strptr("now()")}

	first, err := comp.Column(f)
	require.NoError(t, err)
	second, err := comp.Column(f)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
