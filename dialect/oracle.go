package dialect

import "gorm.io/schemagen/schema"

// Oracle Oracle type table
var Oracle = &Dialect{
	name: "oracle",
	types: map[schema.DataType]schema.FieldType{
		schema.Bool:    {Name: "CHAR(1)"},
		schema.Int:     {Name: "INTEGER"},
		schema.Int8:    {Name: "NUMBER(3)"},
		schema.Int16:   {Name: "NUMBER(5)"},
		schema.Int32:   {Name: "INTEGER"},
		schema.Int64:   {Name: "NUMBER(19)"},
		schema.Uint:    {Name: "NUMBER(19)"},
		schema.Uint8:   {Name: "NUMBER(3)"},
		schema.Uint16:  {Name: "NUMBER(5)"},
		schema.Uint32:  {Name: "NUMBER(10)"},
		schema.Uint64:  {Name: "NUMBER", DefaultSize: 20, SizeAllowed: true},
		schema.Float32: {Name: "FLOAT"},
		schema.Float64: {Name: "FLOAT"},
		schema.Decimal: {Name: "NUMBER", DefaultSize: 38, SizeAllowed: true, MaxPrecision: 38},
		schema.String:  {Name: "VARCHAR2", DefaultSize: 255, SizeAllowed: true, MaxPrecision: 4000},
		schema.Char:    {Name: "CHAR", DefaultSize: 1, SizeAllowed: true},
		schema.Text:    {Name: "CLOB"},
		schema.Bytes:   {Name: "BLOB"},
		schema.Time:    {Name: "TIMESTAMP"},
		schema.Date:    {Name: "DATE"},
	},
}
