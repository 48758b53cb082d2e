package schema

// TableCreator the tables produced by one generation run
type TableCreator struct {
	tables []*TableDefinition
	byName map[string]*TableDefinition
}

func NewTableCreator() *TableCreator {
	return &TableCreator{byName: map[string]*TableDefinition{}}
}

// AddTable reports false if a table with the same qualified name exists
func (tc *TableCreator) AddTable(table *TableDefinition) bool {
	name := table.QualifiedName()
	if _, ok := tc.byName[name]; ok {
		return false
	}

	tc.tables = append(tc.tables, table)
	tc.byName[name] = table
	return true
}

// Table look up table by qualified name
func (tc *TableCreator) Table(name string) *TableDefinition {
	return tc.byName[name]
}

// Tables in creation order
func (tc *TableCreator) Tables() []*TableDefinition {
	return tc.tables
}

// SortedTables orders tables so that every table comes after the tables its
// foreign keys reference. Ties keep creation order, tables on a reference
// cycle are appended in creation order.
func (tc *TableCreator) SortedTables() []*TableDefinition {
	var (
		indegree   = make(map[*TableDefinition]int, len(tc.tables))
		dependents = make(map[*TableDefinition][]*TableDefinition, len(tc.tables))
		sorted     = make([]*TableDefinition, 0, len(tc.tables))
		done       = make(map[*TableDefinition]bool, len(tc.tables))
	)

	for _, table := range tc.tables {
		seen := map[*TableDefinition]bool{}
		for _, fk := range table.ForeignKeys {
			target := tc.byName[fk.TargetTable]
			if target == nil || target == table || seen[target] {
				continue
			}
			seen[target] = true
			indegree[table]++
			dependents[target] = append(dependents[target], table)
		}
	}

	for {
		var next *TableDefinition
		for _, table := range tc.tables {
			if !done[table] && indegree[table] == 0 {
				next = table
				break
			}
		}

		if next == nil {
			break
		}

		done[next] = true
		sorted = append(sorted, next)
		for _, dependent := range dependents[next] {
			indegree[dependent]--
		}
	}

	for _, table := range tc.tables {
		if !done[table] {
			sorted = append(sorted, table)
		}
	}
	return sorted
}
