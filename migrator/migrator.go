package migrator

import (
	"errors"
	"fmt"

	"gorm.io/schemagen/schema"
)

// ErrTableNotFound table is not part of the generated schema
var ErrTableNotFound = errors.New("table not found")

// Migrator reads a generated schema on one platform
type Migrator struct {
	Config
}

// Config schema config
type Config struct {
	Platform schema.Platform
	Creator  *schema.TableCreator
}

func New(creator *schema.TableCreator, platform schema.Platform) Migrator {
	return Migrator{Config{Platform: platform, Creator: creator}}
}

// GetTables tables in dependency order, referenced tables first
func (m Migrator) GetTables() []TableType {
	tables := m.Creator.SortedTables()
	tableTypes := make([]TableType, 0, len(tables))
	for _, table := range tables {
		tableTypes = append(tableTypes, newTableType(table))
	}
	return tableTypes
}

func (m Migrator) HasTable(name string) bool {
	return m.Creator.Table(name) != nil
}

func (m Migrator) table(name string) (*schema.TableDefinition, error) {
	if table := m.Creator.Table(name); table != nil {
		return table, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrTableNotFound, name)
}

// ColumnTypes columns of the table named name
func (m Migrator) ColumnTypes(name string) ([]ColumnType, error) {
	table, err := m.table(name)
	if err != nil {
		return nil, err
	}
	return Columns(table, m.Platform), nil
}

// GetIndexes primary and unique keys of the table named name
func (m Migrator) GetIndexes(name string) ([]Index, error) {
	table, err := m.table(name)
	if err != nil {
		return nil, err
	}
	return Indexes(table), nil
}

// GetForeignKeys foreign keys of the table named name
func (m Migrator) GetForeignKeys(name string) ([]ForeignKey, error) {
	table, err := m.table(name)
	if err != nil {
		return nil, err
	}
	return ForeignKeys(table), nil
}
