package schema

import (
	"fmt"
	"strings"
)

// FieldType how a platform spells one data type
type FieldType struct {
	Name           string
	DefaultSize    int
	DefaultSubSize int
	SizeAllowed    bool
	MaxPrecision   int
}

// Platform database type table consulted while resolving columns
type Platform interface {
	Name() string
	FieldType(DataType) (FieldType, bool)
}

// ColumnType returns the type string of the column on platform p.
// An explicit TypeDefinition always wins and is used verbatim, then the
// semantic Type, then the raw TypeName. A column without any of them is
// typed as a string.
func (field *FieldDefinition) ColumnType(p Platform) string {
	if field.TypeDefinition != "" {
		return field.TypeDefinition
	}

	if field.Type != "" {
		if ft, ok := p.FieldType(field.Type); ok {
			return ft.format(field.Size, field.SubSize)
		}
	}

	if field.TypeName != "" {
		if field.Size > 0 {
			return sizedType(field.TypeName, field.Size, field.SubSize)
		}
		return field.TypeName
	}

	if ft, ok := p.FieldType(String); ok {
		return ft.format(field.Size, 0)
	}
	return string(String)
}

// DatabaseTypeName type name without size, e.g. VARCHAR
func (field *FieldDefinition) DatabaseTypeName(p Platform) string {
	if field.TypeDefinition != "" {
		if idx := strings.IndexAny(field.TypeDefinition, "( "); idx > 0 {
			return strings.ToUpper(field.TypeDefinition[:idx])
		}
		return strings.ToUpper(field.TypeDefinition)
	}

	if field.Type != "" {
		if ft, ok := p.FieldType(field.Type); ok {
			return strings.ToUpper(ft.Name)
		}
	}

	if field.TypeName != "" {
		return strings.ToUpper(field.TypeName)
	}

	if ft, ok := p.FieldType(String); ok {
		return strings.ToUpper(ft.Name)
	}
	return strings.ToUpper(string(String))
}

func (ft FieldType) format(size, subSize int) string {
	if !ft.SizeAllowed {
		return ft.Name
	}

	if size == 0 {
		size, subSize = ft.DefaultSize, ft.DefaultSubSize
	}

	if ft.MaxPrecision > 0 && size > ft.MaxPrecision {
		size = ft.MaxPrecision
	}

	if size <= 0 {
		return ft.Name
	}
	return sizedType(ft.Name, size, subSize)
}

func sizedType(name string, size, subSize int) string {
	if subSize > 0 {
		return fmt.Sprintf("%s(%d,%d)", name, size, subSize)
	}
	return fmt.Sprintf("%s(%d)", name, size)
}
