package generator

import "gorm.io/schemagen/schema"

// emitForeignKey attach the constraint to source, equivalent constraints are
// ignored
func (r *run) emitForeignKey(source, target *schema.TableDefinition, fkNames, targetNames []string) *schema.ForeignKeyConstraint {
	fk := schema.NewForeignKeyConstraint(
		r.config.Namer.ForeignKeyName(source.Name, fkNames), fkNames, targetNames, target.QualifiedName(),
	)

	if !source.AddForeignKey(fk) {
		return nil
	}
	return fk
}

// addUniqueKeys unique keys are named by their position among the unique
// keys of table, starting at 1. Groups repeating the columns of an existing
// unique key are skipped.
func addUniqueKeys(namer schema.Namer, table *schema.TableDefinition, groups [][]string) {
	for _, columns := range groups {
		if len(columns) == 0 {
			continue
		}

		table.AddUniqueKey(&schema.UniqueKeyConstraint{
			Name:   namer.UniqueKeyName(table.Name, len(table.UniqueKeys)+1),
			Fields: append([]string(nil), columns...),
		})
	}
}
