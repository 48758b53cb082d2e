package dialect

import "gorm.io/schemagen/schema"

// SQLite sqlite3 type table, sizes are accepted and ignored by sqlite
var SQLite = &Dialect{
	name: "sqlite3",
	types: map[schema.DataType]schema.FieldType{
		schema.Bool:    {Name: "numeric"},
		schema.Int:     {Name: "integer"},
		schema.Int8:    {Name: "integer"},
		schema.Int16:   {Name: "integer"},
		schema.Int32:   {Name: "integer"},
		schema.Int64:   {Name: "integer"},
		schema.Uint:    {Name: "integer"},
		schema.Uint8:   {Name: "integer"},
		schema.Uint16:  {Name: "integer"},
		schema.Uint32:  {Name: "integer"},
		schema.Uint64:  {Name: "integer"},
		schema.Float32: {Name: "real"},
		schema.Float64: {Name: "real"},
		schema.Decimal: {Name: "numeric"},
		schema.String:  {Name: "text"},
		schema.Char:    {Name: "text"},
		schema.Text:    {Name: "text"},
		schema.Bytes:   {Name: "blob"},
		schema.Time:    {Name: "datetime"},
		schema.Date:    {Name: "date"},
	},
}
