package schema

// FieldDefinition column of a generated table.
//
// Type, TypeName and TypeDefinition are alternatives, an explicit
// TypeDefinition wins over Type which wins over TypeName.
type FieldDefinition struct {
	Name           string
	Type           DataType
	TypeName       string
	TypeDefinition string
	Size           int
	SubSize        int
	Unique         bool
	// Additional free-form constraint text appended after the column type
	Additional string

	primaryKey bool
	identity   bool
	notNull    bool
}

// NewFieldDefinition returns a nullable column named name
func NewFieldDefinition(name string) *FieldDefinition {
	return &FieldDefinition{Name: name}
}

func (field *FieldDefinition) IsPrimaryKey() bool { return field.primaryKey }

// SetPrimaryKey primary key columns never allow null
func (field *FieldDefinition) SetPrimaryKey(primaryKey bool) {
	field.primaryKey = primaryKey
	if primaryKey {
		field.notNull = true
	}
}

func (field *FieldDefinition) IsIdentity() bool { return field.identity }

// SetIdentity identity columns never allow null
func (field *FieldDefinition) SetIdentity(identity bool) {
	field.identity = identity
	if identity {
		field.notNull = true
	}
}

func (field *FieldDefinition) AllowsNull() bool { return !field.notNull }

// SetAllowNull has no effect on primary key or identity columns
func (field *FieldDefinition) SetAllowNull(allowNull bool) {
	field.notNull = !allowNull || field.primaryKey || field.identity
}

// CopyTypeFrom copy type, size and scale of parent
func (field *FieldDefinition) CopyTypeFrom(parent *FieldDefinition) {
	field.Type = parent.Type
	field.TypeName = parent.TypeName
	field.Size = parent.Size
	field.SubSize = parent.SubSize
}
