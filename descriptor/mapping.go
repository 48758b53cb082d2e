package descriptor

import "gorm.io/schemagen/schema"

// Mapping one attribute level rule of a descriptor, implemented only by the
// mapping kinds of this package:
//
//	DirectToField, Serialized, TypeConversion, OneToOne, OneToMany,
//	ManyToMany, DirectCollection, AggregateCollection, Transformation
type Mapping interface {
	AttributeName() string
	mapping()
}

// DirectToField attribute stored in one column
type DirectToField struct {
	Attribute string
	Field     *Field
}

// Serialized attribute serialized into one binary column
type Serialized struct {
	Attribute string
	Field     *Field
}

// TypeConversion attribute converted to DataType before it is stored
type TypeConversion struct {
	Attribute string
	Field     *Field
	DataType  schema.DataType
}

// OneToOne ForeignKeys columns live in the source entity tables
type OneToOne struct {
	Attribute   string
	Reference   string
	ForeignKeys []FieldPair
}

// OneToMany ForeignKeys columns live in the target entity tables
type OneToMany struct {
	Attribute   string
	Reference   string
	ForeignKeys []FieldPair
}

// ManyToMany association stored in RelationTable; SourceKeys reference the
// source entity, TargetKeys the target entity
type ManyToMany struct {
	Attribute     string
	Reference     string
	RelationTable *Table
	SourceKeys    []FieldPair
	TargetKeys    []FieldPair
}

// DirectCollection collection of values stored in CollectionTable, a map
// when KeyField is set
type DirectCollection struct {
	Attribute       string
	CollectionTable *Table
	ReferenceKeys   []FieldPair
	ValueField      *Field
	KeyField        *Field
}

// AggregateCollection collection of embeddables stored in the target table,
// TargetForeignKeys columns live in that table
type AggregateCollection struct {
	Attribute         string
	Reference         string
	TargetForeignKeys []FieldPair
}

// FieldTransformer computes the value of Field.
//
// The column type is the first result of Transformer's BuildFieldValue
// method, or of the descriptor model's Method when Transformer is nil.
type FieldTransformer struct {
	Field       *Field
	Method      string
	Transformer interface{}
}

// Transformation attribute stored in columns computed by transformers
type Transformation struct {
	Attribute    string
	Transformers []FieldTransformer
}

func (m *DirectToField) AttributeName() string       { return m.Attribute }
func (m *Serialized) AttributeName() string          { return m.Attribute }
func (m *TypeConversion) AttributeName() string      { return m.Attribute }
func (m *OneToOne) AttributeName() string            { return m.Attribute }
func (m *OneToMany) AttributeName() string           { return m.Attribute }
func (m *ManyToMany) AttributeName() string          { return m.Attribute }
func (m *DirectCollection) AttributeName() string    { return m.Attribute }
func (m *AggregateCollection) AttributeName() string { return m.Attribute }
func (m *Transformation) AttributeName() string      { return m.Attribute }

func (*DirectToField) mapping()       {}
func (*Serialized) mapping()          {}
func (*TypeConversion) mapping()      {}
func (*OneToOne) mapping()            {}
func (*OneToMany) mapping()           {}
func (*ManyToMany) mapping()          {}
func (*DirectCollection) mapping()    {}
func (*AggregateCollection) mapping() {}
func (*Transformation) mapping()      {}
