package dialect

import "gorm.io/schemagen/schema"

// MySQL MySQL and compatible type table
var MySQL = &Dialect{
	name: "mysql",
	types: map[schema.DataType]schema.FieldType{
		schema.Bool:    {Name: "boolean"},
		schema.Int:     {Name: "int"},
		schema.Int8:    {Name: "tinyint"},
		schema.Int16:   {Name: "smallint"},
		schema.Int32:   {Name: "int"},
		schema.Int64:   {Name: "bigint"},
		schema.Uint:    {Name: "int unsigned"},
		schema.Uint8:   {Name: "tinyint unsigned"},
		schema.Uint16:  {Name: "smallint unsigned"},
		schema.Uint32:  {Name: "int unsigned"},
		schema.Uint64:  {Name: "bigint unsigned"},
		schema.Float32: {Name: "float"},
		schema.Float64: {Name: "double"},
		schema.Decimal: {Name: "decimal", DefaultSize: 38, SizeAllowed: true, MaxPrecision: 65},
		schema.String:  {Name: "varchar", DefaultSize: 255, SizeAllowed: true},
		schema.Char:    {Name: "char", DefaultSize: 1, SizeAllowed: true},
		schema.Text:    {Name: "longtext"},
		schema.Bytes:   {Name: "longblob"},
		schema.Time:    {Name: "datetime(3)"},
		schema.Date:    {Name: "date"},
	},
}
