package descriptor_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/schemagen/descriptor"
	"gorm.io/schemagen/schema"
)

func TestLoadFile(t *testing.T) {
	descriptors, err := descriptor.LoadFile("testdata/model.yaml")
	require.NoError(t, err)
	require.Len(t, descriptors, 4)

	order, item, student := descriptors[0], descriptors[1], descriptors[2]

	assert.Equal(t, "Order", order.Name)
	assert.Equal(t, descriptor.GenerationIdentity, order.IDGeneration)
	assert.Equal(t, [][]string{{"CODE"}}, order.PrimaryTable().UniqueConstraints)
	require.Len(t, order.Fields, 3)

	code := order.Fields[1]
	assert.Equal(t, schema.DataType("string"), code.Type)
	assert.Equal(t, 12, code.Length)
	assert.True(t, code.NotNull)

	total := order.Fields[2]
	assert.Equal(t, 10, total.Precision)
	assert.Equal(t, 2, total.Scale)
	assert.Equal(t, "CHECK (TOTAL >= 0)", total.Additional)

	// primary keys and mappings reuse the declared fields
	assert.Same(t, order.Fields[0], order.PrimaryKeyFields[0])
	direct, ok := order.Mappings[0].(*descriptor.DirectToField)
	require.True(t, ok)
	assert.Same(t, code, direct.Field)

	items, ok := order.Mappings[1].(*descriptor.OneToMany)
	require.True(t, ok)
	assert.Equal(t, "LineItem", items.Reference)
	require.Len(t, items.ForeignKeys, 1)
	assert.Equal(t, descriptor.FieldKey{Table: "LINE_ITEMS", Column: "ORDER_ID"}, items.ForeignKeys[0].ForeignKey.Key())
	assert.Same(t, order.Fields[0], items.ForeignKeys[0].Key)

	// tables are shared across entities
	assert.Same(t, item.PrimaryTable(), items.ForeignKeys[0].ForeignKey.Table)
	assert.Equal(t, "VARCHAR(20) DEFAULT 'n/a'", item.Fields[2].ColumnDefinition)

	m2m, ok := student.Mappings[1].(*descriptor.ManyToMany)
	require.True(t, ok)
	assert.Equal(t, "STUDENT_COURSE", m2m.RelationTable.QualifiedName())
	assert.Equal(t, "COURSES", m2m.TargetKeys[0].Key.Table.Name)

	collection, ok := student.Mappings[2].(*descriptor.DirectCollection)
	require.True(t, ok)
	assert.Equal(t, descriptor.FieldKey{Table: "STUDENT_NICKNAMES", Column: "NICKNAME"}, collection.ValueField.Key())
	assert.Equal(t, 30, collection.ValueField.Length)
	assert.Nil(t, collection.KeyField)

	course := descriptors[3]
	assert.Equal(t, "SCHOOL.COURSES", course.PrimaryTable().QualifiedName())
	assert.Equal(t, "SCHOOL", course.PrimaryTable().Qualifier)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		err  string
	}{
		{
			name: "unknown kind",
			doc:  "entities:\n  - name: A\n    tables: [{name: A}]\n    mappings:\n      - kind: embedded\n        attribute: x\n",
			err:  `unknown mapping kind "embedded"`,
		},
		{
			name: "unknown generation",
			doc:  "entities:\n  - name: A\n    tables: [{name: A}]\n    idGeneration: uuid\n",
			err:  `unknown id generation "uuid"`,
		},
		{
			name: "unmapped primary key",
			doc:  "entities:\n  - name: A\n    tables: [{name: A}]\n    primaryKey: [ID]\n",
			err:  "primary key A.ID is not a mapped field",
		},
		{
			name: "invalid yaml",
			doc:  "entities: [",
			err:  "decode descriptors",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := descriptor.Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.err)
		})
	}
}

func TestLoadEntityWithoutTables(t *testing.T) {
	doc := `
entities:
  - name: CreditCard
    fields:
      - {column: id, type: int}
      - {column: number, type: string}
    primaryKey: [id]
    mappings:
      - {kind: oneToMany, attribute: payments, reference: Payment, foreignKeys: [{foreignKey: PAYMENTS.CARD_ID, key: id}]}
`
	descriptors, err := descriptor.Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, descriptors, 1)

	card := descriptors[0]
	assert.Empty(t, card.Tables)
	require.Len(t, card.Fields, 2)
	assert.Nil(t, card.Fields[0].Table)
	assert.Same(t, card.Fields[0], card.PrimaryKeyFields[0])

	payments := card.Mappings[0].(*descriptor.OneToMany)
	assert.Same(t, card.Fields[0], payments.ForeignKeys[0].Key)
	assert.Equal(t, "PAYMENTS", payments.ForeignKeys[0].ForeignKey.Table.Name)
}

func TestLoadSharedTableUniqueConstraints(t *testing.T) {
	doc := `
entities:
  - name: A
    tables: [{name: T, uniqueConstraints: [[code], [x, y]]}]
  - name: B
    tables: [{name: T, uniqueConstraints: [[code], [y, x], [z]]}]
`
	descriptors, err := descriptor.Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, descriptors, 2)

	table := descriptors[0].PrimaryTable()
	assert.Same(t, table, descriptors[1].PrimaryTable())
	assert.Equal(t, [][]string{{"code"}, {"x", "y"}, {"z"}}, table.UniqueConstraints)
}

func TestLoadEmpty(t *testing.T) {
	descriptors, err := descriptor.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, descriptors)
}
