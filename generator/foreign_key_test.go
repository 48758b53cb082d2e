package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/schemagen/descriptor"
	"gorm.io/schemagen/schema"
)

func targetTable(r *run, name string, pks []string, uniques ...[]string) *schema.TableDefinition {
	table := r.tables.getOrCreate(&descriptor.Table{Name: name, UniqueConstraints: uniques})
	for _, pk := range pks {
		field := schema.NewFieldDefinition(pk)
		field.SetPrimaryKey(true)
		table.AddField(field)
	}
	return table
}

func TestForeignKeyOrderedByPrimaryKey(t *testing.T) {
	r, recorder := newTestRun()
	source := r.tables.getOrCreate(descriptor.NewTable("CHILD"))
	target := targetTable(r, "PARENT", []string{"p2", "p1"})

	fk := r.addForeignKeyConstraint(source, target, []string{"f1", "f2"}, []string{"p1", "p2"})
	require.NotNil(t, fk)
	assert.Equal(t, []string{"f2", "f1"}, fk.SourceFields)
	assert.Equal(t, []string{"p2", "p1"}, fk.TargetFields)
	assert.Equal(t, "PARENT", fk.TargetTable)
	assert.Equal(t, "fk_CHILD_f2_f1", fk.Name)
	assert.Equal(t, []*schema.ForeignKeyConstraint{fk}, source.ForeignKeys)
	assert.Empty(t, recorder.Warns)
}

func TestForeignKeyOrderedByUniqueKey(t *testing.T) {
	r, recorder := newTestRun()
	source := r.tables.getOrCreate(descriptor.NewTable("CHILD"))
	target := targetTable(r, "PARENT", nil, []string{"x"}, []string{"u1", "u2"})

	fk := r.addForeignKeyConstraint(source, target, []string{"fb", "fa"}, []string{"u2", "u1"})
	require.NotNil(t, fk)
	assert.Equal(t, []string{"fa", "fb"}, fk.SourceFields)
	assert.Equal(t, []string{"u1", "u2"}, fk.TargetFields)
	assert.Empty(t, recorder.Warns)
}

func TestForeignKeyPrimaryKeyBeforeUniqueKey(t *testing.T) {
	r, _ := newTestRun()
	source := r.tables.getOrCreate(descriptor.NewTable("CHILD"))
	target := targetTable(r, "PARENT", []string{"b", "a"}, []string{"a", "b"})

	fk := r.addForeignKeyConstraint(source, target, []string{"fa", "fb"}, []string{"a", "b"})
	assert.Equal(t, []string{"fb", "fa"}, fk.SourceFields)
	assert.Equal(t, []string{"b", "a"}, fk.TargetFields)
}

func TestForeignKeyUnresolvedKeepsOrder(t *testing.T) {
	r, recorder := newTestRun()
	source := r.tables.getOrCreate(descriptor.NewTable("CHILD"))
	target := targetTable(r, "PARENT", []string{"p1"}, []string{"u1", "u2", "u3"})

	var fk *schema.ForeignKeyConstraint
	require.NotPanics(t, func() {
		fk = r.addForeignKeyConstraint(source, target, []string{"f2", "f1"}, []string{"c2", "c1"})
	})
	assert.Equal(t, []string{"f2", "f1"}, fk.SourceFields)
	assert.Equal(t, []string{"c2", "c1"}, fk.TargetFields)
	require.Len(t, recorder.Warns, 1)
	assert.Contains(t, recorder.Warns[0], "matches no key")
}

func TestForeignKeyRepeatedTargetColumn(t *testing.T) {
	r, recorder := newTestRun()
	source := r.tables.getOrCreate(descriptor.NewTable("CHILD"))
	target := targetTable(r, "PARENT", []string{"p1", "p2"})

	fk := r.addForeignKeyConstraint(source, target, []string{"f1", "f2"}, []string{"p2", "p2"})
	assert.Equal(t, []string{"f1", "f2"}, fk.SourceFields)
	assert.Equal(t, []string{"p2", "p2"}, fk.TargetFields)
	require.Len(t, recorder.Warns, 1)
	assert.Contains(t, recorder.Warns[0], "references column p2 twice")
}

func TestForeignKeyDuplicatesIgnored(t *testing.T) {
	r, _ := newTestRun()
	source := r.tables.getOrCreate(descriptor.NewTable("CHILD"))
	target := targetTable(r, "PARENT", nil)

	require.NotNil(t, r.addForeignKeyConstraint(source, target, []string{"f1", "f2"}, []string{"p1", "p2"}))
	assert.Nil(t, r.addForeignKeyConstraint(source, target, []string{"f2", "f1"}, []string{"p2", "p1"}))
	assert.Len(t, source.ForeignKeys, 1)

	// same columns, other target
	other := targetTable(r, "OTHER", nil)
	assert.NotNil(t, r.addForeignKeyConstraint(source, other, []string{"f1", "f2"}, []string{"p1", "p2"}))
	assert.Len(t, source.ForeignKeys, 2)
}

func TestForeignKeyLengthMismatchPanics(t *testing.T) {
	r, _ := newTestRun()
	source := r.tables.getOrCreate(descriptor.NewTable("CHILD"))
	target := targetTable(r, "PARENT", []string{"p1", "p2"})

	assert.Panics(t, func() {
		r.addForeignKeyConstraint(source, target, []string{"f1", "f2"}, []string{"p1"})
	})
}

func TestAddForeignKeysGroupsByTable(t *testing.T) {
	r, recorder := newTestRun()
	child, parent, other := descriptor.NewTable("CHILD"), descriptor.NewTable("PARENT"), descriptor.NewTable("OTHER")
	targetTable(r, "PARENT", []string{"a", "b"})

	r.addForeignKeys([]descriptor.FieldPair{
		{ForeignKey: descriptor.NewField(child, "pb"), Key: descriptor.NewField(parent, "b")},
		{ForeignKey: descriptor.NewField(child, "oid"), Key: descriptor.NewField(other, "id")},
		{ForeignKey: descriptor.NewField(child, "pa"), Key: descriptor.NewField(parent, "a")},
		{ForeignKey: descriptor.NewField(child, "x"), Key: descriptor.NewField(nil, "id")},
	})

	table, ok := r.tables.lookup(child)
	require.True(t, ok)
	require.Len(t, table.ForeignKeys, 2)
	assert.Equal(t, []string{"pa", "pb"}, table.ForeignKeys[0].SourceFields)
	assert.Equal(t, "PARENT", table.ForeignKeys[0].TargetTable)
	assert.Equal(t, []string{"oid"}, table.ForeignKeys[1].SourceFields)
	assert.Equal(t, "OTHER", table.ForeignKeys[1].TargetTable)
	require.Len(t, recorder.Warns, 1)
	assert.Contains(t, recorder.Warns[0], "has no table")
}

func TestUniqueKeysNamedSequentially(t *testing.T) {
	r, _ := newTestRun()
	table := &descriptor.Table{Name: "ORDERS", UniqueConstraints: [][]string{{"CODE"}, {}, {"A", "B"}}}

	def := r.tables.getOrCreate(table)
	require.Len(t, def.UniqueKeys, 2)
	assert.Equal(t, "uni_ORDERS_1", def.UniqueKeys[0].Name)
	assert.Equal(t, []string{"A", "B"}, def.UniqueKeys[1].Fields)
	assert.Equal(t, "uni_ORDERS_2", def.UniqueKeys[1].Name)

	// repeated lookups attach nothing
	assert.Same(t, def, r.tables.getOrCreate(table))
	assert.Len(t, def.UniqueKeys, 2)
}

func TestUniqueKeysSkipRepeatedColumns(t *testing.T) {
	r, _ := newTestRun()
	table := &descriptor.Table{Name: "T", UniqueConstraints: [][]string{{"code"}, {"B", "A"}, {"code"}, {"A", "B"}}}

	def := r.tables.getOrCreate(table)
	require.Len(t, def.UniqueKeys, 2)
	assert.Equal(t, "uni_T_1", def.UniqueKeys[0].Name)
	assert.Equal(t, "uni_T_2", def.UniqueKeys[1].Name)
	assert.Equal(t, []string{"B", "A"}, def.UniqueKeys[1].Fields)
}
