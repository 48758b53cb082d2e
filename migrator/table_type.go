package migrator

import "gorm.io/schemagen/schema"

// TableType generated table
type TableType struct {
	SchemaValue string
	NameValue   string
	TypeValue   string
}

func newTableType(table *schema.TableDefinition) TableType {
	return TableType{SchemaValue: table.Qualifier, NameValue: table.Name, TypeValue: "BASE TABLE"}
}

// Schema returns the schema of the table.
func (ct TableType) Schema() string {
	return ct.SchemaValue
}

// Name returns the name of the table.
func (ct TableType) Name() string {
	return ct.NameValue
}

// Type returns the type of the table.
func (ct TableType) Type() string {
	return ct.TypeValue
}

// QualifiedName returns the name prefixed with the schema, if any.
func (ct TableType) QualifiedName() string {
	return schema.QualifiedName(ct.SchemaValue, ct.NameValue)
}
