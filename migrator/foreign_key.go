package migrator

import "gorm.io/schemagen/schema"

// ForeignKey foreign key of a generated table, Columns()[i] references
// ReferencedColumns()[i]
type ForeignKey struct {
	TableName            string
	NameValue            string
	ColumnList           []string
	ReferencedTableName  string
	ReferencedColumnList []string
}

// ForeignKeys foreign keys of table in the order they were added
func ForeignKeys(table *schema.TableDefinition) []ForeignKey {
	fks := make([]ForeignKey, 0, len(table.ForeignKeys))
	for _, fk := range table.ForeignKeys {
		fks = append(fks, ForeignKey{
			TableName:            table.QualifiedName(),
			NameValue:            fk.Name,
			ColumnList:           fk.SourceFields,
			ReferencedTableName:  fk.TargetTable,
			ReferencedColumnList: fk.TargetFields,
		})
	}
	return fks
}

// Table return the table name of the foreign key.
func (fk ForeignKey) Table() string {
	return fk.TableName
}

// Name return the name of the foreign key.
func (fk ForeignKey) Name() string {
	return fk.NameValue
}

// Columns return the referencing columns
func (fk ForeignKey) Columns() []string {
	return fk.ColumnList
}

// ReferencedTable return the referenced table name.
func (fk ForeignKey) ReferencedTable() string {
	return fk.ReferencedTableName
}

// ReferencedColumns return the referenced columns, in key order
func (fk ForeignKey) ReferencedColumns() []string {
	return fk.ReferencedColumnList
}
