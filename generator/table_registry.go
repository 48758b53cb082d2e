package generator

import (
	"gorm.io/schemagen/descriptor"
	"gorm.io/schemagen/schema"
)

// tableRegistry table definitions of one run by qualified name
type tableRegistry struct {
	namer   schema.Namer
	creator *schema.TableCreator
}

func newTableRegistry(namer schema.Namer) *tableRegistry {
	return &tableRegistry{namer: namer, creator: schema.NewTableCreator()}
}

// getOrCreate unique constraints of table are attached when the definition
// is created only
func (r *tableRegistry) getOrCreate(table *descriptor.Table) *schema.TableDefinition {
	if def := r.creator.Table(table.QualifiedName()); def != nil {
		return def
	}

	def := schema.NewTableDefinition(table.Name, table.Qualifier)
	addUniqueKeys(r.namer, def, table.UniqueConstraints)
	r.creator.AddTable(def)
	return def
}

func (r *tableRegistry) lookup(table *descriptor.Table) (*schema.TableDefinition, bool) {
	def := r.creator.Table(table.QualifiedName())
	return def, def != nil
}
