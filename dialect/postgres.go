package dialect

import "gorm.io/schemagen/schema"

// Postgres PostgreSQL type table
var Postgres = &Dialect{
	name: "postgres",
	types: map[schema.DataType]schema.FieldType{
		schema.Bool:    {Name: "boolean"},
		schema.Int:     {Name: "integer"},
		schema.Int8:    {Name: "smallint"},
		schema.Int16:   {Name: "smallint"},
		schema.Int32:   {Name: "integer"},
		schema.Int64:   {Name: "bigint"},
		schema.Uint:    {Name: "bigint"},
		schema.Uint8:   {Name: "smallint"},
		schema.Uint16:  {Name: "integer"},
		schema.Uint32:  {Name: "bigint"},
		schema.Uint64:  {Name: "numeric", DefaultSize: 20, SizeAllowed: true},
		schema.Float32: {Name: "real"},
		schema.Float64: {Name: "double precision"},
		schema.Decimal: {Name: "numeric", DefaultSize: 38, SizeAllowed: true, MaxPrecision: 1000},
		schema.String:  {Name: "varchar", DefaultSize: 255, SizeAllowed: true},
		schema.Char:    {Name: "char", DefaultSize: 1, SizeAllowed: true},
		schema.Text:    {Name: "text"},
		schema.Bytes:   {Name: "bytea"},
		schema.Time:    {Name: "timestamp with time zone"},
		schema.Date:    {Name: "date"},
	},
}
