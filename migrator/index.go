package migrator

import (
	"database/sql"

	"gorm.io/schemagen/schema"
)

// PrimaryKeyIndexName name of primary key indexes
const PrimaryKeyIndexName = "PRIMARY"

// Index primary or unique key of a generated table
type Index struct {
	TableName       string
	NameValue       string
	ColumnList      []string
	PrimaryKeyValue sql.NullBool
	UniqueValue     sql.NullBool
}

// Indexes primary key of table followed by its unique keys
func Indexes(table *schema.TableDefinition) []Index {
	var indexes []Index
	if pks := table.PrimaryKeyFieldNames(); len(pks) > 0 {
		indexes = append(indexes, Index{
			TableName:       table.QualifiedName(),
			NameValue:       PrimaryKeyIndexName,
			ColumnList:      pks,
			PrimaryKeyValue: sql.NullBool{Bool: true, Valid: true},
			UniqueValue:     sql.NullBool{Bool: true, Valid: true},
		})
	}

	for _, uk := range table.UniqueKeys {
		indexes = append(indexes, Index{
			TableName:       table.QualifiedName(),
			NameValue:       uk.Name,
			ColumnList:      uk.Fields,
			PrimaryKeyValue: sql.NullBool{Bool: false, Valid: true},
			UniqueValue:     sql.NullBool{Bool: true, Valid: true},
		})
	}
	return indexes
}

// Table return the table name of the index.
func (idx Index) Table() string {
	return idx.TableName
}

// Name return the name  of the index.
func (idx Index) Name() string {
	return idx.NameValue
}

// Columns return the columns fo the index
func (idx Index) Columns() []string {
	return idx.ColumnList
}

// PrimaryKey returns the index is primary key or not.
func (idx Index) PrimaryKey() (isPrimaryKey bool, ok bool) {
	return idx.PrimaryKeyValue.Bool, idx.PrimaryKeyValue.Valid
}

// Unique returns whether the index is unique or not.
func (idx Index) Unique() (unique bool, ok bool) {
	return idx.UniqueValue.Bool, idx.UniqueValue.Valid
}
