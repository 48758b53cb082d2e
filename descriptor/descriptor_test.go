package descriptor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/schemagen/descriptor"
)

func TestFieldKey(t *testing.T) {
	table := &descriptor.Table{Name: "ORDERS", Qualifier: "SALES"}

	a := descriptor.NewField(table, "ID")
	b := descriptor.NewField(&descriptor.Table{Name: "ORDERS", Qualifier: "SALES"}, "ID")
	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, "SALES.ORDERS.ID", a.String())
	assert.True(t, a.Insertable)
	assert.True(t, a.Updatable)

	var unbound descriptor.Field
	unbound.Name = "ID"
	assert.Equal(t, "ID", unbound.String())
}

func TestDescriptorKeys(t *testing.T) {
	orders, details := descriptor.NewTable("ORDERS"), descriptor.NewTable("ORDER_DETAILS")
	id := descriptor.NewField(orders, "ID")
	detailID := descriptor.NewField(details, "ORDER_ID")
	note := descriptor.NewField(orders, "NOTE")

	d := &descriptor.Descriptor{
		Name:             "Order",
		Tables:           []*descriptor.Table{orders, details},
		Fields:           []*descriptor.Field{id, note, detailID},
		PrimaryKeyFields: []*descriptor.Field{id},
		SecondaryKeys: map[string][]descriptor.FieldPair{
			"ORDER_DETAILS": {{ForeignKey: detailID, Key: id}},
		},
		IDGeneration: descriptor.GenerationIdentity,
	}

	assert.Same(t, orders, d.PrimaryTable())
	assert.True(t, d.IsPrimaryKey(descriptor.NewField(orders, "ID")))
	assert.True(t, d.IsPrimaryKey(detailID))
	assert.False(t, d.IsPrimaryKey(note))

	assert.True(t, d.IsIdentity(id))
	assert.False(t, d.IsIdentity(detailID))

	d.SequenceField = note
	assert.True(t, d.IsIdentity(note))
	assert.False(t, d.IsIdentity(id))

	d.IDGeneration = descriptor.GenerationSequence
	assert.False(t, d.IsIdentity(note))
	assert.Equal(t, "sequence", d.IDGeneration.String())
}

func TestDescriptorValidate(t *testing.T) {
	orders := descriptor.NewTable("ORDERS")
	id := descriptor.NewField(orders, "ID")

	assert.NoError(t, (&descriptor.Descriptor{Name: "Order", Fields: []*descriptor.Field{id}, PrimaryKeyFields: []*descriptor.Field{id}}).Validate())
	assert.Error(t, (&descriptor.Descriptor{}).Validate())
	assert.EqualError(t,
		(&descriptor.Descriptor{Name: "Order", PrimaryKeyFields: []*descriptor.Field{id}}).Validate(),
		"Order: primary key ORDERS.ID is not a mapped field",
	)
	assert.EqualError(t,
		(&descriptor.Descriptor{Name: "Order", Fields: []*descriptor.Field{descriptor.NewField(orders, "")}}).Validate(),
		"Order: field without column name",
	)
}
