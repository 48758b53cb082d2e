package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/schemagen/schema"
)

func TestNewDialect(t *testing.T) {
	for driver, want := range map[string]*Dialect{
		"":           Generic,
		"postgresql": Postgres,
		"MySQL":      MySQL,
		"sqlite3":    SQLite,
		"ora":        Oracle,
	} {
		d, err := NewDialect(driver)
		require.NoError(t, err, driver)
		assert.Same(t, want, d, driver)
	}

	_, err := NewDialect("db2")
	assert.EqualError(t, err, `unsupported platform "db2"`)
}

func TestDialectsCoverEveryDataType(t *testing.T) {
	dataTypes := []schema.DataType{
		schema.Bool, schema.Int, schema.Int8, schema.Int16, schema.Int32, schema.Int64,
		schema.Uint, schema.Uint8, schema.Uint16, schema.Uint32, schema.Uint64,
		schema.Float32, schema.Float64, schema.Decimal,
		schema.String, schema.Char, schema.Text, schema.Bytes, schema.Time, schema.Date,
	}

	for _, d := range []*Dialect{Generic, Postgres, MySQL, SQLite, Oracle} {
		for _, dt := range dataTypes {
			_, ok := d.FieldType(dt)
			assert.True(t, ok, "%v has no type for %v", d.Name(), dt)
		}

		_, ok := d.FieldType("money")
		assert.False(t, ok)
	}
}

func TestDialectColumnTypes(t *testing.T) {
	amount := &schema.FieldDefinition{Name: "amount", Type: schema.Decimal, Size: 10, SubSize: 2}
	note := &schema.FieldDefinition{Name: "note", Type: schema.String, Size: 40}

	assert.Equal(t, "DECIMAL(10,2)", amount.ColumnType(Generic))
	assert.Equal(t, "numeric(10,2)", amount.ColumnType(Postgres))
	assert.Equal(t, "decimal(10,2)", amount.ColumnType(MySQL))
	assert.Equal(t, "numeric", amount.ColumnType(SQLite))
	assert.Equal(t, "varchar(40)", note.ColumnType(Postgres))
	assert.Equal(t, "text", note.ColumnType(SQLite))
	assert.Equal(t, "VARCHAR2(40)", note.ColumnType(Oracle))
	assert.Equal(t, "NUMBER(10,2)", amount.ColumnType(Oracle))
}
