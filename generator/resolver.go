package generator

import "gorm.io/schemagen/descriptor"

// resolve returns the column child stored with the type of parent.
//
// Type, length, precision and scale come from the raw field registered for
// parent, constraints from child. Without a registered parent the type is
// left unset.
func (r *run) resolve(child, parent *descriptor.Field) *descriptor.Field {
	resolved := descriptor.NewField(child.Table, child.Name)
	resolved.NotNull = child.NotNull
	resolved.Unique = child.Unique
	resolved.Additional = child.Additional
	resolved.Insertable = child.Insertable
	resolved.Updatable = child.Updatable
	resolved.ColumnDefinition = child.ColumnDefinition

	if parent == nil {
		return resolved
	}

	if raw, ok := r.fields.rawField(parent.Key()); ok {
		resolved.Type = raw.Type
		resolved.TypeName = raw.TypeName
		resolved.Length = raw.Length
		resolved.Precision = raw.Precision
		resolved.Scale = raw.Scale

		if resolved.ColumnDefinition == "" {
			resolved.ColumnDefinition = raw.ColumnDefinition
		}
	}
	return resolved
}

// onTable returns field bound to table when field has no table
func onTable(field *descriptor.Field, table *descriptor.Table) *descriptor.Field {
	if field == nil || field.Table != nil || table == nil {
		return field
	}

	bound := *field
	bound.Table = table
	return &bound
}
