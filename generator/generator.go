package generator

import (
	"context"

	"gorm.io/schemagen/descriptor"
	"gorm.io/schemagen/schema"
)

// Generator derives table definitions from mapping descriptors
type Generator struct {
	config Config
}

// New returns a generator configured by opts
func New(opts ...ConfigOption) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(&g.config)
	}
	g.config.setDefaults()
	return g
}

// Platform the platform column types are checked against
func (g *Generator) Platform() schema.Platform {
	return g.config.Platform
}

// Generate build the schema of descriptors with a generator configured by opts
func Generate(ctx context.Context, descriptors []*descriptor.Descriptor, opts ...ConfigOption) *schema.TableCreator {
	return New(opts...).Generate(ctx, descriptors)
}

// Generate builds the tables of descriptors.
//
// Every table and column owned by a descriptor is created before any
// relationship is processed, foreign keys are ordered against complete
// target keys. Inconsistent metadata is logged and never aborts the run.
func (g *Generator) Generate(ctx context.Context, descriptors []*descriptor.Descriptor) *schema.TableCreator {
	r := g.newRun(ctx)
	for _, desc := range descriptors {
		if desc == nil || desc.Embedded {
			continue
		}
		r.buildTables(desc)
	}

	for _, desc := range descriptors {
		if desc == nil || desc.Embedded {
			continue
		}
		r.buildRelations(desc)
	}
	return r.tables.creator
}

// run state of one Generate call
type run struct {
	ctx    context.Context
	config Config
	fields *fieldRegistry
	tables *tableRegistry

	tablesByDesc map[*descriptor.Descriptor][]*descriptor.Table
	// boundTables tables of declared fields without table
	boundTables map[*descriptor.Field]*descriptor.Table
}

func (g *Generator) newRun(ctx context.Context) *run {
	return &run{
		ctx:          ctx,
		config:       g.config,
		fields:       newFieldRegistry(g.config.Platform, g.config.Logger),
		tables:       newTableRegistry(g.config.Namer),
		tablesByDesc: map[*descriptor.Descriptor][]*descriptor.Table{},
		boundTables:  map[*descriptor.Field]*descriptor.Table{},
	}
}

// tablesOf tables of desc, a descriptor without tables maps to the table
// named after it
func (r *run) tablesOf(desc *descriptor.Descriptor) []*descriptor.Table {
	if len(desc.Tables) > 0 {
		return desc.Tables
	}

	if tables, ok := r.tablesByDesc[desc]; ok {
		return tables
	}

	tables := []*descriptor.Table{descriptor.NewTable(r.config.Namer.TableName(desc.Name))}
	r.tablesByDesc[desc] = tables
	return tables
}

func (r *run) primaryTable(desc *descriptor.Descriptor) *descriptor.Table {
	return r.tablesOf(desc)[0]
}

// buildTables creates the tables of desc and the columns it declares
func (r *run) buildTables(desc *descriptor.Descriptor) {
	for _, table := range r.tablesOf(desc) {
		r.tables.getOrCreate(table)
	}

	primary := r.primaryTable(desc)
	r.bindFields(primary, desc.Fields...)
	r.bindFields(primary, desc.PrimaryKeyFields...)
	r.bindFields(primary, desc.SequenceField)

	for _, raw := range desc.Fields {
		isPrimaryKey := desc.IsPrimaryKey(raw)
		field := r.addField(onTable(raw, primary), isPrimaryKey)
		if isPrimaryKey && desc.IsIdentity(raw) {
			field.SetIdentity(true)
		}
	}
}

// bindFields records table as the table of the fields without table, so
// references from other descriptors find them
func (r *run) bindFields(table *descriptor.Table, fields ...*descriptor.Field) {
	for _, field := range fields {
		if field != nil && field.Table == nil {
			r.boundTables[field] = table
		}
	}
}

// bind returns field bound to the table recorded for it in pass 1
func (r *run) bind(field *descriptor.Field) *descriptor.Field {
	if field == nil || field.Table != nil {
		return field
	}
	return onTable(field, r.boundTables[field])
}

// addField adds the canonical definition of raw to the table of raw
func (r *run) addField(raw *descriptor.Field, isPrimaryKey bool) *schema.FieldDefinition {
	field := r.fields.getOrCreate(r.ctx, raw, isPrimaryKey)
	if raw.Table != nil {
		r.tables.getOrCreate(raw.Table).AddField(field)
	}
	return field
}
