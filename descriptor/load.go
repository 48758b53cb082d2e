package descriptor

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"gorm.io/schemagen/schema"
	"gorm.io/schemagen/utils"
)

type document struct {
	Entities []entitySpec `yaml:"entities"`
}

type tableSpec struct {
	Name              string     `yaml:"name"`
	Qualifier         string     `yaml:"qualifier"`
	UniqueConstraints [][]string `yaml:"uniqueConstraints"`
}

type entitySpec struct {
	Name          string                `yaml:"name"`
	Embedded      bool                  `yaml:"embedded"`
	Tables        []tableSpec           `yaml:"tables"`
	Fields        []fieldSpec           `yaml:"fields"`
	PrimaryKey    []string              `yaml:"primaryKey"`
	SecondaryKeys map[string][]pairSpec `yaml:"secondaryKeys"`
	IDGeneration  string                `yaml:"idGeneration"`
	SequenceField string                `yaml:"sequenceField"`
	Mappings      []mappingSpec         `yaml:"mappings"`
}

type fieldSpec struct {
	Column           string `yaml:"column"`
	Type             string `yaml:"type"`
	TypeName         string `yaml:"typeName"`
	ColumnDefinition string `yaml:"columnDefinition"`
	Length           int    `yaml:"length"`
	Precision        int    `yaml:"precision"`
	Scale            int    `yaml:"scale"`
	NotNull          bool   `yaml:"notNull"`
	Unique           bool   `yaml:"unique"`
	Additional       string `yaml:"additional"`
	// Settings gorm tag style settings, e.g. "type:decimal;precision:10;not null"
	Settings string `yaml:"settings"`
}

type pairSpec struct {
	ForeignKey string `yaml:"foreignKey"`
	Key        string `yaml:"key"`
}

type transformerSpec struct {
	Field  string `yaml:"field"`
	Method string `yaml:"method"`
}

type mappingSpec struct {
	Kind         string            `yaml:"kind"`
	Attribute    string            `yaml:"attribute"`
	Reference    string            `yaml:"reference"`
	Field        string            `yaml:"field"`
	DataType     string            `yaml:"dataType"`
	Table        string            `yaml:"table"`
	ForeignKeys  []pairSpec        `yaml:"foreignKeys"`
	SourceKeys   []pairSpec        `yaml:"sourceKeys"`
	TargetKeys   []pairSpec        `yaml:"targetKeys"`
	Value        *fieldSpec        `yaml:"value"`
	Key          *fieldSpec        `yaml:"key"`
	Transformers []transformerSpec `yaml:"transformers"`
}

// LoadFile load descriptors from a YAML file
func LoadFile(path string) ([]*Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open descriptors")
	}
	defer f.Close()

	return Load(f)
}

// Load load descriptors from a YAML document.
//
// Columns are referenced as `TABLE.column`, or `column` for a column of the
// entity's primary table. Columns of an entity without tables have no table,
// the generator binds them to the entity's default table. Every reference to
// the same table yields the same *Table.
func Load(r io.Reader) ([]*Descriptor, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrap(err, "decode descriptors")
	}

	l := &loader{tables: map[string]*Table{}}
	descriptors := make([]*Descriptor, 0, len(doc.Entities))
	for _, spec := range doc.Entities {
		d, err := l.entity(spec)
		if err != nil {
			return nil, errors.WithMessagef(err, "entity %s", spec.Name)
		}

		if err := d.Validate(); err != nil {
			return nil, err
		}
		descriptors = append(descriptors, d)
	}
	return descriptors, nil
}

type loader struct {
	tables map[string]*Table
	// fields declared by the entity being loaded
	fields  map[FieldKey]*Field
	primary *Table
}

func (l *loader) table(qualifiedName string) *Table {
	if table, ok := l.tables[qualifiedName]; ok {
		return table
	}

	table := NewTable(qualifiedName)
	if idx := strings.Index(qualifiedName, "."); idx > 0 {
		table.Qualifier, table.Name = qualifiedName[:idx], qualifiedName[idx+1:]
	}
	l.tables[qualifiedName] = table
	return table
}

// field resolve a column reference, reusing fields declared by the entity
func (l *loader) field(ref string) (*Field, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, errors.New("empty column reference")
	}

	table, column := l.primary, ref
	if idx := strings.LastIndex(ref, "."); idx > 0 {
		table, column = l.table(ref[:idx]), ref[idx+1:]
	}

	if field, ok := l.fields[FieldKey{Table: table.QualifiedName(), Column: column}]; ok {
		return field, nil
	}
	return NewField(table, column), nil
}

func (l *loader) declare(spec fieldSpec) (*Field, error) {
	field, err := l.field(spec.Column)
	if err != nil {
		return nil, err
	}

	field.Type = schema.DataType(spec.Type)
	field.TypeName = spec.TypeName
	field.ColumnDefinition = spec.ColumnDefinition
	field.Length = spec.Length
	field.Precision = spec.Precision
	field.Scale = spec.Scale
	field.NotNull = spec.NotNull
	field.Unique = spec.Unique
	field.Additional = spec.Additional

	if spec.Settings != "" {
		if err := applySettings(field, ParseTagSetting(spec.Settings, ";")); err != nil {
			return nil, err
		}
	}
	return field, nil
}

func (l *loader) pairs(specs []pairSpec) ([]FieldPair, error) {
	pairs := make([]FieldPair, 0, len(specs))
	for _, spec := range specs {
		fk, err := l.field(spec.ForeignKey)
		if err != nil {
			return nil, err
		}

		key, err := l.field(spec.Key)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, FieldPair{ForeignKey: fk, Key: key})
	}
	return pairs, nil
}

func (l *loader) entity(spec entitySpec) (*Descriptor, error) {
	d := &Descriptor{Name: spec.Name, Embedded: spec.Embedded}
	l.fields = map[FieldKey]*Field{}
	l.primary = nil

	for _, ts := range spec.Tables {
		table := l.table(schema.QualifiedName(ts.Qualifier, ts.Name))
		for _, columns := range ts.UniqueConstraints {
			if !hasColumnGroup(table.UniqueConstraints, columns) {
				table.UniqueConstraints = append(table.UniqueConstraints, columns)
			}
		}
		d.Tables = append(d.Tables, table)
	}
	l.primary = d.PrimaryTable()

	for _, fs := range spec.Fields {
		field, err := l.declare(fs)
		if err != nil {
			return nil, err
		}
		l.fields[field.Key()] = field
		d.Fields = append(d.Fields, field)
	}

	for _, ref := range spec.PrimaryKey {
		field, err := l.field(ref)
		if err != nil {
			return nil, err
		}
		d.PrimaryKeyFields = append(d.PrimaryKeyFields, field)
	}

	if len(spec.SecondaryKeys) > 0 {
		d.SecondaryKeys = make(map[string][]FieldPair, len(spec.SecondaryKeys))
		for name, specs := range spec.SecondaryKeys {
			pairs, err := l.pairs(specs)
			if err != nil {
				return nil, err
			}
			d.SecondaryKeys[l.table(name).QualifiedName()] = pairs
		}
	}

	switch strings.ToLower(spec.IDGeneration) {
	case "", "none":
	case "identity", "auto_increment", "autoincrement":
		d.IDGeneration = GenerationIdentity
	case "sequence":
		d.IDGeneration = GenerationSequence
	case "table":
		d.IDGeneration = GenerationTable
	default:
		return nil, errors.Errorf("unknown id generation %q", spec.IDGeneration)
	}

	if spec.SequenceField != "" {
		field, err := l.field(spec.SequenceField)
		if err != nil {
			return nil, err
		}
		d.SequenceField = field
	}

	for _, ms := range spec.Mappings {
		m, err := l.mapping(ms)
		if err != nil {
			return nil, errors.WithMessagef(err, "mapping %s", ms.Attribute)
		}
		d.Mappings = append(d.Mappings, m)
	}
	return d, nil
}

func (l *loader) mapping(spec mappingSpec) (Mapping, error) {
	var err error

	switch strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(spec.Kind)) {
	case "direct", "directtofield":
		m := &DirectToField{Attribute: spec.Attribute}
		m.Field, err = l.field(spec.Field)
		return m, err
	case "serialized":
		m := &Serialized{Attribute: spec.Attribute}
		m.Field, err = l.field(spec.Field)
		return m, err
	case "typeconversion":
		m := &TypeConversion{Attribute: spec.Attribute, DataType: schema.DataType(spec.DataType)}
		m.Field, err = l.field(spec.Field)
		return m, err
	case "onetoone":
		m := &OneToOne{Attribute: spec.Attribute, Reference: spec.Reference}
		m.ForeignKeys, err = l.pairs(spec.ForeignKeys)
		return m, err
	case "onetomany":
		m := &OneToMany{Attribute: spec.Attribute, Reference: spec.Reference}
		m.ForeignKeys, err = l.pairs(spec.ForeignKeys)
		return m, err
	case "manytomany":
		m := &ManyToMany{Attribute: spec.Attribute, Reference: spec.Reference}
		if spec.Table != "" {
			m.RelationTable = l.table(spec.Table)
		}
		if m.SourceKeys, err = l.pairs(spec.SourceKeys); err != nil {
			return nil, err
		}
		m.TargetKeys, err = l.pairs(spec.TargetKeys)
		return m, err
	case "directcollection", "elementcollection", "directmap":
		if spec.Table == "" || spec.Value == nil {
			return nil, errors.New("direct collection needs table and value")
		}

		m := &DirectCollection{Attribute: spec.Attribute, CollectionTable: l.table(spec.Table)}
		if m.ReferenceKeys, err = l.pairs(spec.ForeignKeys); err != nil {
			return nil, err
		}
		if m.ValueField, err = l.collectionField(m.CollectionTable, *spec.Value); err != nil {
			return nil, err
		}
		if spec.Key != nil {
			m.KeyField, err = l.collectionField(m.CollectionTable, *spec.Key)
		}
		return m, err
	case "aggregatecollection":
		m := &AggregateCollection{Attribute: spec.Attribute, Reference: spec.Reference}
		m.TargetForeignKeys, err = l.pairs(spec.ForeignKeys)
		return m, err
	case "transformation":
		m := &Transformation{Attribute: spec.Attribute}
		for _, ts := range spec.Transformers {
			field, err := l.field(ts.Field)
			if err != nil {
				return nil, err
			}
			m.Transformers = append(m.Transformers, FieldTransformer{Field: field, Method: ts.Method})
		}
		return m, nil
	}
	return nil, errors.Errorf("unknown mapping kind %q", spec.Kind)
}

func hasColumnGroup(groups [][]string, columns []string) bool {
	for _, group := range groups {
		if utils.SameSet(group, columns) {
			return true
		}
	}
	return false
}

// collectionField columns of a collection table default to that table
func (l *loader) collectionField(table *Table, spec fieldSpec) (*Field, error) {
	if !strings.Contains(spec.Column, ".") {
		spec.Column = table.QualifiedName() + "." + spec.Column
	}
	return l.declare(spec)
}
