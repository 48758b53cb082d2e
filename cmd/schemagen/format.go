package main

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
	"gorm.io/schemagen/migrator"
)

// tableView everything written about one table
type tableView struct {
	table       migrator.TableType
	columns     []migrator.ColumnType
	indexes     []migrator.Index
	foreignKeys []migrator.ForeignKey
}

func tableViews(m migrator.Migrator) ([]tableView, error) {
	var views []tableView
	for _, table := range m.GetTables() {
		view := tableView{table: table}

		var err error
		if view.columns, err = m.ColumnTypes(table.QualifiedName()); err != nil {
			return nil, err
		}
		if view.indexes, err = m.GetIndexes(table.QualifiedName()); err != nil {
			return nil, err
		}
		if view.foreignKeys, err = m.GetForeignKeys(table.QualifiedName()); err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// textFormatter formats the schema as compact text, writes stop at the
// first error
type textFormatter struct {
	writer io.Writer
	err    error
}

func newTextFormatter(w io.Writer) *textFormatter {
	return &textFormatter{writer: w}
}

func (f *textFormatter) Format(m migrator.Migrator) error {
	views, err := tableViews(m)
	if err != nil {
		return err
	}

	for i, view := range views {
		if i > 0 {
			f.println()
		}
		f.formatTable(view)
	}
	return f.err
}

func (f *textFormatter) printf(format string, args ...interface{}) {
	if f.err == nil {
		_, f.err = fmt.Fprintf(f.writer, format, args...)
	}
}

func (f *textFormatter) println(args ...interface{}) {
	if f.err == nil {
		_, f.err = fmt.Fprintln(f.writer, args...)
	}
}

func (f *textFormatter) formatTable(view tableView) {
	pkStr := ""
	for _, idx := range view.indexes {
		if pk, _ := idx.PrimaryKey(); pk {
			pkStr = fmt.Sprintf(" (PK: %s)", strings.Join(idx.Columns(), ", "))
		}
	}
	f.printf("TABLE %s%s\n", view.table.QualifiedName(), pkStr)

	for _, col := range view.columns {
		f.printf("  %s\n", formatColumn(col))
	}

	if len(view.foreignKeys) > 0 {
		f.println()
		f.println("  FOREIGN KEYS:")
		for _, fk := range view.foreignKeys {
			f.printf("    %s (%s) → %s (%s)\n", fk.Name(), strings.Join(fk.Columns(), ", "), fk.ReferencedTable(), strings.Join(fk.ReferencedColumns(), ", "))
		}
	}

	var uniques []migrator.Index
	for _, idx := range view.indexes {
		if pk, _ := idx.PrimaryKey(); !pk {
			uniques = append(uniques, idx)
		}
	}

	if len(uniques) > 0 {
		f.println()
		f.println("  UNIQUE KEYS:")
		for _, idx := range uniques {
			f.printf("    %s (%s)\n", idx.Name(), strings.Join(idx.Columns(), ", "))
		}
	}
}

func formatColumn(col migrator.ColumnType) string {
	columnType, _ := col.ColumnType()
	parts := []string{col.Name() + ":", columnType}

	if autoIncrement, _ := col.AutoIncrement(); autoIncrement {
		parts = append(parts, "IDENTITY")
	}

	if unique, _ := col.Unique(); unique {
		parts = append(parts, "UNIQUE")
	}

	if nullable, _ := col.Nullable(); !nullable {
		parts = append(parts, "NOT NULL")
	}

	if additional, ok := col.Additional(); ok {
		parts = append(parts, additional)
	}

	return strings.Join(parts, " ")
}

type yamlColumn struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	PrimaryKey bool   `yaml:"primaryKey,omitempty"`
	Identity   bool   `yaml:"identity,omitempty"`
	Unique     bool   `yaml:"unique,omitempty"`
	Nullable   bool   `yaml:"nullable"`
	Additional string `yaml:"additional,omitempty"`
}

type yamlKey struct {
	Name    string   `yaml:"name"`
	Columns []string `yaml:"columns"`
}

type yamlForeignKey struct {
	Name              string   `yaml:"name"`
	Columns           []string `yaml:"columns"`
	ReferencedTable   string   `yaml:"referencedTable"`
	ReferencedColumns []string `yaml:"referencedColumns"`
}

type yamlTable struct {
	Name        string           `yaml:"name"`
	Schema      string           `yaml:"schema,omitempty"`
	Columns     []yamlColumn     `yaml:"columns"`
	PrimaryKey  []string         `yaml:"primaryKey,omitempty"`
	UniqueKeys  []yamlKey        `yaml:"uniqueKeys,omitempty"`
	ForeignKeys []yamlForeignKey `yaml:"foreignKeys,omitempty"`
}

// yamlFormatter formats the schema as a YAML document
type yamlFormatter struct {
	writer io.Writer
}

func newYAMLFormatter(w io.Writer) *yamlFormatter {
	return &yamlFormatter{writer: w}
}

func (f *yamlFormatter) Format(m migrator.Migrator) error {
	views, err := tableViews(m)
	if err != nil {
		return err
	}

	doc := struct {
		Platform string      `yaml:"platform"`
		Tables   []yamlTable `yaml:"tables"`
	}{Platform: m.Platform.Name()}

	for _, view := range views {
		table := yamlTable{Name: view.table.Name(), Schema: view.table.Schema()}

		for _, col := range view.columns {
			columnType, _ := col.ColumnType()
			pk, _ := col.PrimaryKey()
			identity, _ := col.AutoIncrement()
			unique, _ := col.Unique()
			nullable, _ := col.Nullable()
			additional, _ := col.Additional()
			table.Columns = append(table.Columns, yamlColumn{
				Name: col.Name(), Type: columnType, PrimaryKey: pk, Identity: identity,
				Unique: unique, Nullable: nullable, Additional: additional,
			})
		}

		for _, idx := range view.indexes {
			if pk, _ := idx.PrimaryKey(); pk {
				table.PrimaryKey = idx.Columns()
			} else {
				table.UniqueKeys = append(table.UniqueKeys, yamlKey{Name: idx.Name(), Columns: idx.Columns()})
			}
		}

		for _, fk := range view.foreignKeys {
			table.ForeignKeys = append(table.ForeignKeys, yamlForeignKey{
				Name: fk.Name(), Columns: fk.Columns(), ReferencedTable: fk.ReferencedTable(), ReferencedColumns: fk.ReferencedColumns(),
			})
		}
		doc.Tables = append(doc.Tables, table)
	}

	encoder := yaml.NewEncoder(f.writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return err
	}
	return encoder.Close()
}
