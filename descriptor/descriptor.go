package descriptor

import (
	"fmt"
	"reflect"

	"gorm.io/schemagen/schema"
)

// Table a table referenced by mapping metadata
type Table struct {
	Name      string
	Qualifier string
	// UniqueConstraints column groups declared unique on the table
	UniqueConstraints [][]string
}

func NewTable(name string) *Table {
	return &Table{Name: name}
}

func (table *Table) QualifiedName() string {
	if table == nil {
		return ""
	}
	return schema.QualifiedName(table.Qualifier, table.Name)
}

// FieldKey identifies one column, fields with equal keys describe the same column
type FieldKey struct {
	Table  string
	Column string
}

func (key FieldKey) String() string {
	if key.Table == "" {
		return key.Column
	}
	return key.Table + "." + key.Column
}

// Field a raw column as declared by a mapping
type Field struct {
	Name  string
	Table *Table
	// Type semantic type, folded by schema.ParseDataType
	Type schema.DataType
	// TypeName raw platform type name, used when Type is empty or unknown
	TypeName string
	// ColumnDefinition complete type definition, used verbatim
	ColumnDefinition string
	Length           int
	Precision        int
	Scale            int
	NotNull          bool
	Unique           bool
	// Additional constraint text following the column type, e.g. DEFAULT 0
	Additional string
	Insertable bool
	Updatable  bool
}

// NewField returns an insertable and updatable column
func NewField(table *Table, name string) *Field {
	return &Field{Name: name, Table: table, Insertable: true, Updatable: true}
}

func (field *Field) Key() FieldKey {
	return FieldKey{Table: field.Table.QualifiedName(), Column: field.Name}
}

func (field *Field) String() string {
	return field.Key().String()
}

// FieldPair ForeignKey references Key
type FieldPair struct {
	ForeignKey *Field
	Key        *Field
}

// IDGeneration how primary key values are assigned
type IDGeneration int

const (
	GenerationNone IDGeneration = iota
	// GenerationIdentity the database assigns the value, an identity column
	GenerationIdentity
	GenerationSequence
	GenerationTable
)

func (g IDGeneration) String() string {
	switch g {
	case GenerationIdentity:
		return "identity"
	case GenerationSequence:
		return "sequence"
	case GenerationTable:
		return "table"
	}
	return "none"
}

// Descriptor how one entity maps to its tables
type Descriptor struct {
	Name      string
	ModelType reflect.Type
	// Embedded embeddable entities own no table
	Embedded         bool
	Tables           []*Table
	Fields           []*Field
	PrimaryKeyFields []*Field
	// SecondaryKeys keyed by qualified secondary table name, ForeignKey is a
	// column of the secondary table, Key a primary key column of the primary table
	SecondaryKeys map[string][]FieldPair
	IDGeneration  IDGeneration
	// SequenceField column assigned by IDGeneration, defaults to the only primary key
	SequenceField *Field
	Mappings      []Mapping
}

func (d *Descriptor) String() string {
	return d.Name
}

// PrimaryTable first mapped table, nil for embedded entities
func (d *Descriptor) PrimaryTable() *Table {
	if len(d.Tables) == 0 {
		return nil
	}
	return d.Tables[0]
}

// keyOf fields without table belong to the primary table
func (d *Descriptor) keyOf(field *Field) FieldKey {
	key := field.Key()
	if field.Table == nil {
		key.Table = d.PrimaryTable().QualifiedName()
	}
	return key
}

// IsPrimaryKey reports whether field is a primary key column of any table of d
func (d *Descriptor) IsPrimaryKey(field *Field) bool {
	key := d.keyOf(field)
	for _, pk := range d.PrimaryKeyFields {
		if d.keyOf(pk) == key {
			return true
		}
	}

	for _, pairs := range d.SecondaryKeys {
		for _, pair := range pairs {
			if pair.ForeignKey != nil && d.keyOf(pair.ForeignKey) == key {
				return true
			}
		}
	}
	return false
}

// IsIdentity reports whether the database assigns field
func (d *Descriptor) IsIdentity(field *Field) bool {
	if d.IDGeneration != GenerationIdentity {
		return false
	}

	if d.SequenceField != nil {
		return d.keyOf(d.SequenceField) == d.keyOf(field)
	}
	return len(d.PrimaryKeyFields) == 1 && d.keyOf(d.PrimaryKeyFields[0]) == d.keyOf(field)
}

// Validate checks references between the descriptor parts
func (d *Descriptor) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("descriptor without name")
	}

	for _, field := range d.Fields {
		if field.Name == "" {
			return fmt.Errorf("%v: field without column name", d)
		}
	}

	for _, pk := range d.PrimaryKeyFields {
		if !d.hasField(pk) {
			return fmt.Errorf("%v: primary key %v is not a mapped field", d, pk)
		}
	}
	return nil
}

func (d *Descriptor) hasField(field *Field) bool {
	key := d.keyOf(field)
	for _, f := range d.Fields {
		if d.keyOf(f) == key {
			return true
		}
	}
	return false
}
