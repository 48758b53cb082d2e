package generator

import (
	"fmt"

	"gorm.io/schemagen/descriptor"
	"gorm.io/schemagen/schema"
)

// buildRelations adds the tables, columns and foreign keys implied by the
// mappings of desc, then links its secondary tables to the primary table
func (r *run) buildRelations(desc *descriptor.Descriptor) {
	for _, m := range desc.Mappings {
		switch m := m.(type) {
		case *descriptor.DirectToField:
		case *descriptor.Serialized:
			r.buildSerialized(desc, m)
		case *descriptor.TypeConversion:
			r.buildTypeConversion(desc, m)
		case *descriptor.OneToOne:
			r.buildForeignKeyMapping(m.ForeignKeys)
		case *descriptor.OneToMany:
			r.buildForeignKeyMapping(m.ForeignKeys)
		case *descriptor.ManyToMany:
			r.buildManyToMany(desc, m)
		case *descriptor.DirectCollection:
			r.buildDirectCollection(desc, m)
		case *descriptor.AggregateCollection:
			r.buildAggregateCollection(desc, m)
		case *descriptor.Transformation:
			r.buildTransformation(desc, m)
		default:
			panic(fmt.Sprintf("schemagen: unsupported mapping %T of %v", m, desc))
		}
	}

	r.buildSecondaryTables(desc)
}

// ownField returns the definition of a column of desc, creating it if the
// descriptor does not declare it
func (r *run) ownField(desc *descriptor.Descriptor, raw *descriptor.Field) *schema.FieldDefinition {
	return r.addField(onTable(raw, r.primaryTable(desc)), desc.IsPrimaryKey(raw))
}

// buildSerialized serialized values are stored as bytes whatever their type
func (r *run) buildSerialized(desc *descriptor.Descriptor, m *descriptor.Serialized) {
	if m.Field == nil {
		return
	}

	field := r.ownField(desc, m.Field)
	field.Type = schema.Bytes
	field.TypeName = ""
	field.Size, field.SubSize = 0, 0
}

func (r *run) buildTypeConversion(desc *descriptor.Descriptor, m *descriptor.TypeConversion) {
	if m.Field == nil || m.DataType == "" {
		return
	}

	field := r.ownField(desc, m.Field)
	dataType, ok := schema.ParseDataType(string(m.DataType))
	if ok {
		_, ok = r.config.Platform.FieldType(dataType)
	}

	if !ok {
		r.config.Logger.Warn(r.ctx, "column %v: conversion type %q is not supported by %s, keeping %s", m.Field, m.DataType, r.config.Platform.Name(), field.ColumnType(r.config.Platform))
		return
	}

	field.Type = dataType
	field.TypeName = ""
	if !dataType.IsStringLike() && !dataType.IsNumeric() {
		field.Size, field.SubSize = 0, 0
	}
}

// buildForeignKeyMapping foreign key columns take the type of the columns
// they reference unless they have an explicit type definition, missing
// columns are added to their table
func (r *run) buildForeignKeyMapping(pairs []descriptor.FieldPair) {
	pairs = r.bindPairs(pairs, nil, nil)
	for _, pair := range pairs {
		if pair.ForeignKey == nil || pair.Key == nil || pair.ForeignKey.Table == nil {
			continue
		}
		r.foreignKeyField(pair, false)
	}

	r.addForeignKeys(pairs)
}

// foreignKeyField returns the definition of the foreign key column of pair.
// A new column is resolved against the key column, an existing one takes
// the type of the key column.
func (r *run) foreignKeyField(pair descriptor.FieldPair, isPrimaryKey bool) *schema.FieldDefinition {
	field, ok := r.fields.lookup(pair.ForeignKey.Key())
	if !ok {
		return r.addField(r.resolve(pair.ForeignKey, pair.Key), isPrimaryKey)
	}

	if parent, ok := r.fields.lookup(pair.Key.Key()); ok {
		propagateType(field, parent)
	}
	if isPrimaryKey {
		field.SetPrimaryKey(true)
	}

	if pair.ForeignKey.Table != nil {
		r.tables.getOrCreate(pair.ForeignKey.Table).AddField(field)
	}
	return field
}

func propagateType(field, parent *schema.FieldDefinition) {
	if field == parent || field.TypeDefinition != "" {
		return
	}

	if parent.TypeDefinition != "" {
		field.TypeDefinition = parent.TypeDefinition
		return
	}

	if parent.Type != "" || parent.TypeName != "" {
		field.CopyTypeFrom(parent)
	}
}

// buildManyToMany the join table stores the keys of both sides as its
// primary key and references both tables
func (r *run) buildManyToMany(desc *descriptor.Descriptor, m *descriptor.ManyToMany) {
	relation := m.RelationTable
	if relation == nil {
		relation = descriptor.NewTable(r.config.Namer.JoinTableName(desc.Name + m.Reference))
	}
	r.tables.getOrCreate(relation)

	sourceKeys := r.bindPairs(m.SourceKeys, relation, r.primaryTable(desc))
	targetKeys := r.bindPairs(m.TargetKeys, relation, nil)

	for _, pairs := range [][]descriptor.FieldPair{sourceKeys, targetKeys} {
		for _, pair := range pairs {
			r.foreignKeyField(pair, true)
		}
		r.addForeignKeys(pairs)
	}
}

// buildDirectCollection the collection table references the owner, its
// reference columns are not a primary key as an owner has many values
func (r *run) buildDirectCollection(desc *descriptor.Descriptor, m *descriptor.DirectCollection) {
	collection := m.CollectionTable
	if collection == nil {
		collection = descriptor.NewTable(r.config.Namer.JoinTableName(desc.Name + m.Attribute))
	}
	r.tables.getOrCreate(collection)

	referenceKeys := r.bindPairs(m.ReferenceKeys, collection, r.primaryTable(desc))
	for _, pair := range referenceKeys {
		r.foreignKeyField(pair, true).SetPrimaryKey(false)
	}

	if m.ValueField != nil {
		r.addField(onTable(m.ValueField, collection), false)
	}

	if m.KeyField != nil {
		r.addField(onTable(m.KeyField, collection), false)
	}

	r.addForeignKeys(referenceKeys)
}

// buildAggregateCollection the target table of an aggregate collection
// stores the owner keys, its descriptor does not declare them
func (r *run) buildAggregateCollection(desc *descriptor.Descriptor, m *descriptor.AggregateCollection) {
	targetKeys := r.bindPairs(m.TargetForeignKeys, nil, r.primaryTable(desc))
	for _, pair := range targetKeys {
		if pair.ForeignKey.Table == nil {
			continue
		}
		r.foreignKeyField(pair, false)
	}

	r.addForeignKeys(targetKeys)
}

// buildSecondaryTables secondary tables reference the primary table by its
// primary key, a secondary table without key columns gets the primary key
// columns under the same names
func (r *run) buildSecondaryTables(desc *descriptor.Descriptor) {
	tables := r.tablesOf(desc)
	if len(tables) < 2 {
		return
	}

	primary := tables[0]
	for _, table := range tables[1:] {
		pairs, ok := desc.SecondaryKeys[table.QualifiedName()]
		if !ok {
			for _, pk := range desc.PrimaryKeyFields {
				pairs = append(pairs, descriptor.FieldPair{ForeignKey: descriptor.NewField(table, pk.Name), Key: pk})
			}
		}

		pairs = r.bindPairs(pairs, table, primary)
		for _, pair := range pairs {
			r.foreignKeyField(pair, true)
		}
		r.addForeignKeys(pairs)
	}
}

// bindPairs binds foreign key columns without table to fkTable, and key
// columns without table to keyTable. Columns left without table take the
// table of the descriptor declaring them.
func (r *run) bindPairs(pairs []descriptor.FieldPair, fkTable, keyTable *descriptor.Table) []descriptor.FieldPair {
	bound := make([]descriptor.FieldPair, 0, len(pairs))
	for _, pair := range pairs {
		if pair.ForeignKey == nil || pair.Key == nil {
			panic(fmt.Sprintf("schemagen: incomplete foreign key pair %v -> %v", pair.ForeignKey, pair.Key))
		}
		bound = append(bound, descriptor.FieldPair{
			ForeignKey: r.bind(onTable(pair.ForeignKey, fkTable)),
			Key:        r.bind(onTable(pair.Key, keyTable)),
		})
	}
	return bound
}
