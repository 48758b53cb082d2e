package generator

import (
	"fmt"

	"gorm.io/schemagen/descriptor"
	"gorm.io/schemagen/schema"
)

// addForeignKeyConstraint adds a foreign key from source to target, composite
// keys are reordered to the column order of a key of target first.
func (r *run) addForeignKeyConstraint(source, target *schema.TableDefinition, fkNames, targetNames []string) *schema.ForeignKeyConstraint {
	if len(fkNames) > 1 && len(fkNames) == len(targetNames) {
		fkNames, targetNames = r.orderForeignKey(target, fkNames, targetNames)
	}
	return r.emitForeignKey(source, target, fkNames, targetNames)
}

// orderForeignKey match the pairs to the primary key of target, or else to
// the first covering unique key. Unmatched pairs keep their order.
func (r *run) orderForeignKey(target *schema.TableDefinition, fkNames, targetNames []string) ([]string, []string) {
	fkByTarget := make(map[string]string, len(targetNames))
	for idx, name := range targetNames {
		if _, ok := fkByTarget[name]; ok {
			r.config.Logger.Warn(r.ctx, "foreign key (%v) to %s references column %s twice, keeping declared order", fkNames, target.QualifiedName(), name)
			return fkNames, targetNames
		}
		fkByTarget[name] = fkNames[idx]
	}

	if fks, ok := orderBy(target.PrimaryKeyFieldNames(), fkByTarget); ok {
		return fks, target.PrimaryKeyFieldNames()
	}

	for _, uk := range target.UniqueKeys {
		if fks, ok := orderBy(uk.Fields, fkByTarget); ok {
			return fks, append([]string(nil), uk.Fields...)
		}
	}

	r.config.Logger.Warn(r.ctx, "foreign key (%v) to %s matches no key of the table, keeping declared order", fkNames, target.QualifiedName())
	return fkNames, targetNames
}

func orderBy(keyNames []string, fkByTarget map[string]string) ([]string, bool) {
	if len(keyNames) == 0 || len(keyNames) != len(fkByTarget) {
		return nil, false
	}

	fks := make([]string, 0, len(keyNames))
	for _, name := range keyNames {
		fk, ok := fkByTarget[name]
		if !ok {
			return nil, false
		}
		fks = append(fks, fk)
	}
	return fks, true
}

type fkGroup struct {
	source, target *descriptor.Table
	fkNames        []string
	targetNames    []string
}

// addForeignKeys adds one constraint per pair of tables, pairs without a
// table are skipped
func (r *run) addForeignKeys(pairs []descriptor.FieldPair) {
	var groups []*fkGroup

	for _, pair := range pairs {
		if pair.ForeignKey == nil || pair.Key == nil {
			panic(fmt.Sprintf("schemagen: incomplete foreign key pair %v -> %v", pair.ForeignKey, pair.Key))
		}

		source := pair.ForeignKey.Table
		if source == nil || pair.Key.Table == nil {
			r.config.Logger.Warn(r.ctx, "foreign key %v -> %v has no table, skipped", pair.ForeignKey, pair.Key)
			continue
		}

		var group *fkGroup
		for _, g := range groups {
			if g.source.QualifiedName() == source.QualifiedName() && g.target.QualifiedName() == pair.Key.Table.QualifiedName() {
				group = g
				break
			}
		}

		if group == nil {
			group = &fkGroup{source: source, target: pair.Key.Table}
			groups = append(groups, group)
		}
		group.fkNames = append(group.fkNames, pair.ForeignKey.Name)
		group.targetNames = append(group.targetNames, pair.Key.Name)
	}

	for _, g := range groups {
		r.addForeignKeyConstraint(r.tables.getOrCreate(g.source), r.tables.getOrCreate(g.target), g.fkNames, g.targetNames)
	}
}
