package schema

import (
	"fmt"
	"strings"

	"gorm.io/schemagen/utils"
)

// ForeignKeyConstraint SourceFields[i] references TargetFields[i] of TargetTable
type ForeignKeyConstraint struct {
	Name         string
	SourceFields []string
	TargetFields []string
	TargetTable  string
}

// NewForeignKeyConstraint panics when the column lists are empty or differ in
// length, such input means the mapping metadata is corrupt.
func NewForeignKeyConstraint(name string, sourceFields, targetFields []string, targetTable string) *ForeignKeyConstraint {
	if len(sourceFields) == 0 || len(sourceFields) != len(targetFields) {
		panic(fmt.Sprintf("schemagen: foreign key %s to %s has %d source and %d target columns", name, targetTable, len(sourceFields), len(targetFields)))
	}

	return &ForeignKeyConstraint{
		Name:         name,
		SourceFields: append([]string(nil), sourceFields...),
		TargetFields: append([]string(nil), targetFields...),
		TargetTable:  targetTable,
	}
}

// Equivalent reports whether both constraints pair the same columns with the
// same target table, regardless of column order
func (fk *ForeignKeyConstraint) Equivalent(other *ForeignKeyConstraint) bool {
	return fk.TargetTable == other.TargetTable && utils.SameSet(fk.pairs(), other.pairs())
}

func (fk *ForeignKeyConstraint) pairs() []string {
	pairs := make([]string, len(fk.SourceFields))
	for idx, name := range fk.SourceFields {
		pairs[idx] = name + "\x00" + fk.TargetFields[idx]
	}
	return pairs
}

func (fk *ForeignKeyConstraint) String() string {
	return fmt.Sprintf("%s (%s) REFERENCES %s (%s)", fk.Name, strings.Join(fk.SourceFields, ", "), fk.TargetTable, strings.Join(fk.TargetFields, ", "))
}

// UniqueKeyConstraint a named candidate key
type UniqueKeyConstraint struct {
	Name   string
	Fields []string
}

func (uk *UniqueKeyConstraint) String() string {
	return fmt.Sprintf("%s (%s)", uk.Name, strings.Join(uk.Fields, ", "))
}
