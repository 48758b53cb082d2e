package migrator

import (
	"database/sql"

	"gorm.io/schemagen/schema"
)

// ColumnType column of a generated table as resolved on one platform
type ColumnType struct {
	NameValue          sql.NullString
	DataTypeValue      sql.NullString
	ColumnTypeValue    sql.NullString
	PrimaryKeyValue    sql.NullBool
	UniqueValue        sql.NullBool
	AutoIncrementValue sql.NullBool
	LengthValue        sql.NullInt64
	DecimalSizeValue   sql.NullInt64
	ScaleValue         sql.NullInt64
	NullableValue      sql.NullBool
	AdditionalValue    sql.NullString
}

// Columns column types of table on platform, in field order
func Columns(table *schema.TableDefinition, platform schema.Platform) []ColumnType {
	fields := table.Fields()
	columns := make([]ColumnType, 0, len(fields))
	for _, field := range fields {
		columns = append(columns, newColumnType(field, platform))
	}
	return columns
}

func newColumnType(field *schema.FieldDefinition, platform schema.Platform) ColumnType {
	ct := ColumnType{
		NameValue:          sql.NullString{String: field.Name, Valid: true},
		DataTypeValue:      sql.NullString{String: field.DatabaseTypeName(platform), Valid: true},
		ColumnTypeValue:    sql.NullString{String: field.ColumnType(platform), Valid: true},
		PrimaryKeyValue:    sql.NullBool{Bool: field.IsPrimaryKey(), Valid: true},
		UniqueValue:        sql.NullBool{Bool: field.Unique, Valid: true},
		AutoIncrementValue: sql.NullBool{Bool: field.IsIdentity(), Valid: true},
		NullableValue:      sql.NullBool{Bool: field.AllowsNull(), Valid: true},
		AdditionalValue:    sql.NullString{String: field.Additional, Valid: field.Additional != ""},
	}

	// an explicit type definition carries its own size
	if field.TypeDefinition == "" && field.Size > 0 {
		if field.Type.IsNumeric() {
			ct.DecimalSizeValue = sql.NullInt64{Int64: int64(field.Size), Valid: true}
			ct.ScaleValue = sql.NullInt64{Int64: int64(field.SubSize), Valid: true}
		} else {
			ct.LengthValue = sql.NullInt64{Int64: int64(field.Size), Valid: true}
		}
	}
	return ct
}

// Name returns the name of the column.
func (ct ColumnType) Name() string {
	return ct.NameValue.String
}

// DatabaseTypeName returns the database system name of the column type.
// Length specifiers are not included.
// Common type names include "VARCHAR", "TEXT", "NVARCHAR", "DECIMAL", "BOOL",
// "INT", and "BIGINT".
func (ct ColumnType) DatabaseTypeName() string {
	return ct.DataTypeValue.String
}

// ColumnType returns the database type of the column. lke `varchar(16)`
func (ct ColumnType) ColumnType() (columnType string, ok bool) {
	return ct.ColumnTypeValue.String, ct.ColumnTypeValue.Valid
}

// PrimaryKey returns the column is primary key or not.
func (ct ColumnType) PrimaryKey() (isPrimaryKey bool, ok bool) {
	return ct.PrimaryKeyValue.Bool, ct.PrimaryKeyValue.Valid
}

// AutoIncrement returns the column is auto increment or not.
func (ct ColumnType) AutoIncrement() (isAutoIncrement bool, ok bool) {
	return ct.AutoIncrementValue.Bool, ct.AutoIncrementValue.Valid
}

// Length returns the column type length for variable length column types
func (ct ColumnType) Length() (length int64, ok bool) {
	return ct.LengthValue.Int64, ct.LengthValue.Valid
}

// DecimalSize returns the scale and precision of a decimal type.
func (ct ColumnType) DecimalSize() (precision int64, scale int64, ok bool) {
	return ct.DecimalSizeValue.Int64, ct.ScaleValue.Int64, ct.DecimalSizeValue.Valid
}

// Nullable reports whether the column may be null.
func (ct ColumnType) Nullable() (nullable bool, ok bool) {
	return ct.NullableValue.Bool, ct.NullableValue.Valid
}

// Unique reports whether the column may be unique.
func (ct ColumnType) Unique() (unique bool, ok bool) {
	return ct.UniqueValue.Bool, ct.UniqueValue.Valid
}

// Additional returns the constraint text following the column type.
func (ct ColumnType) Additional() (value string, ok bool) {
	return ct.AdditionalValue.String, ct.AdditionalValue.Valid
}
