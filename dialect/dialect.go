package dialect

import (
	"fmt"
	"strings"

	"gorm.io/schemagen/schema"
)

// Dialect type table of one database platform
type Dialect struct {
	name  string
	types map[schema.DataType]schema.FieldType
}

// Name platform name
func (d *Dialect) Name() string {
	return d.name
}

// FieldType look up how the platform spells dt
func (d *Dialect) FieldType(dt schema.DataType) (schema.FieldType, bool) {
	ft, ok := d.types[dt]
	return ft, ok
}

// Generic platform used when no driver is configured
var Generic = &Dialect{name: "generic", types: genericTypes}

var genericTypes = map[schema.DataType]schema.FieldType{
	schema.Bool:    {Name: "BOOLEAN"},
	schema.Int:     {Name: "INTEGER"},
	schema.Int8:    {Name: "SMALLINT"},
	schema.Int16:   {Name: "SMALLINT"},
	schema.Int32:   {Name: "INTEGER"},
	schema.Int64:   {Name: "BIGINT"},
	schema.Uint:    {Name: "INTEGER"},
	schema.Uint8:   {Name: "SMALLINT"},
	schema.Uint16:  {Name: "INTEGER"},
	schema.Uint32:  {Name: "BIGINT"},
	schema.Uint64:  {Name: "NUMERIC", DefaultSize: 20, SizeAllowed: true},
	schema.Float32: {Name: "REAL"},
	schema.Float64: {Name: "DOUBLE PRECISION"},
	schema.Decimal: {Name: "DECIMAL", DefaultSize: 38, SizeAllowed: true, MaxPrecision: 38},
	schema.String:  {Name: "VARCHAR", DefaultSize: 255, SizeAllowed: true},
	schema.Char:    {Name: "CHAR", DefaultSize: 1, SizeAllowed: true},
	schema.Text:    {Name: "CLOB"},
	schema.Bytes:   {Name: "BLOB"},
	schema.Time:    {Name: "TIMESTAMP"},
	schema.Date:    {Name: "DATE"},
}

// NewDialect returns the type table of driver
func NewDialect(driver string) (*Dialect, error) {
	switch strings.ToLower(driver) {
	case "", "generic":
		return Generic, nil
	case "postgres", "postgresql", "pgx":
		return Postgres, nil
	case "mysql", "mariadb", "tidb":
		return MySQL, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	case "oracle", "ora", "oci8":
		return Oracle, nil
	}
	return nil, fmt.Errorf("unsupported platform %q", driver)
}
