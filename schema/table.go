package schema

import "gorm.io/schemagen/utils"

// TableDefinition a generated table
type TableDefinition struct {
	Name        string
	Qualifier   string
	ForeignKeys []*ForeignKeyConstraint
	UniqueKeys  []*UniqueKeyConstraint

	fields       []*FieldDefinition
	fieldsByName map[string]*FieldDefinition
}

func NewTableDefinition(name, qualifier string) *TableDefinition {
	return &TableDefinition{
		Name:         name,
		Qualifier:    qualifier,
		fieldsByName: map[string]*FieldDefinition{},
	}
}

// QualifiedName name prefixed with the qualifier, if any
func (table *TableDefinition) QualifiedName() string {
	return QualifiedName(table.Qualifier, table.Name)
}

// QualifiedName joins qualifier and table name
func QualifiedName(qualifier, name string) string {
	if qualifier == "" {
		return name
	}
	return qualifier + "." + name
}

// AddField appends field unless a field with the same name exists, reports
// whether it was added
func (table *TableDefinition) AddField(field *FieldDefinition) bool {
	if _, ok := table.fieldsByName[field.Name]; ok {
		return false
	}

	table.fields = append(table.fields, field)
	table.fieldsByName[field.Name] = field
	return true
}

func (table *TableDefinition) Field(name string) *FieldDefinition {
	return table.fieldsByName[name]
}

// Fields in the order they were added
func (table *TableDefinition) Fields() []*FieldDefinition {
	return table.fields
}

// PrimaryKeyFieldNames primary key columns in declaration order
func (table *TableDefinition) PrimaryKeyFieldNames() (names []string) {
	for _, field := range table.fields {
		if field.IsPrimaryKey() {
			names = append(names, field.Name)
		}
	}
	return
}

// AddForeignKey ignores fk when an equivalent constraint exists, reports
// whether it was added
func (table *TableDefinition) AddForeignKey(fk *ForeignKeyConstraint) bool {
	for _, existing := range table.ForeignKeys {
		if existing.Equivalent(fk) {
			return false
		}
	}

	table.ForeignKeys = append(table.ForeignKeys, fk)
	return true
}

// AddUniqueKey ignores uk when a unique key on the same columns exists,
// reports whether it was added
func (table *TableDefinition) AddUniqueKey(uk *UniqueKeyConstraint) bool {
	for _, existing := range table.UniqueKeys {
		if utils.SameSet(existing.Fields, uk.Fields) {
			return false
		}
	}

	table.UniqueKeys = append(table.UniqueKeys, uk)
	return true
}
