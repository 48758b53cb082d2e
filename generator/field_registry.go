package generator

import (
	"context"

	"gorm.io/schemagen/descriptor"
	"gorm.io/schemagen/logger"
	"gorm.io/schemagen/schema"
)

// fieldRegistry canonical column definitions of one run, indexed by column key
type fieldRegistry struct {
	platform schema.Platform
	logger   logger.Interface

	definitions []*schema.FieldDefinition
	index       map[descriptor.FieldKey]int
	raw         map[descriptor.FieldKey]*descriptor.Field
}

func newFieldRegistry(platform schema.Platform, logger logger.Interface) *fieldRegistry {
	return &fieldRegistry{
		platform: platform,
		logger:   logger,
		index:    map[descriptor.FieldKey]int{},
		raw:      map[descriptor.FieldKey]*descriptor.Field{},
	}
}

// getOrCreate returns the definition of the column identified by raw, the
// first request creates it. A primary key request promotes an existing
// definition.
func (r *fieldRegistry) getOrCreate(ctx context.Context, raw *descriptor.Field, isPrimaryKey bool) *schema.FieldDefinition {
	key := raw.Key()
	if idx, ok := r.index[key]; ok {
		field := r.definitions[idx]
		if isPrimaryKey && !field.IsPrimaryKey() {
			field.SetPrimaryKey(true)
		}
		return field
	}

	field := r.newDefinition(ctx, raw)
	field.SetPrimaryKey(isPrimaryKey)

	r.index[key] = len(r.definitions)
	r.definitions = append(r.definitions, field)
	r.raw[key] = raw
	return field
}

// lookup returns the definition of key if it was created
func (r *fieldRegistry) lookup(key descriptor.FieldKey) (*schema.FieldDefinition, bool) {
	if idx, ok := r.index[key]; ok {
		return r.definitions[idx], true
	}
	return nil, false
}

// rawField returns the first raw field registered for key
func (r *fieldRegistry) rawField(key descriptor.FieldKey) (*descriptor.Field, bool) {
	raw, ok := r.raw[key]
	return raw, ok
}

func (r *fieldRegistry) newDefinition(ctx context.Context, raw *descriptor.Field) *schema.FieldDefinition {
	field := schema.NewFieldDefinition(raw.Name)
	field.Unique = raw.Unique
	field.Additional = raw.Additional
	field.SetAllowNull(!raw.NotNull)

	if raw.ColumnDefinition != "" {
		field.TypeDefinition = raw.ColumnDefinition
		return field
	}

	if raw.Type != "" {
		if dataType, ok := schema.ParseDataType(string(raw.Type)); ok {
			if _, supported := r.platform.FieldType(dataType); supported {
				field.Type = dataType
				if dataType.IsStringLike() {
					field.Size = raw.Length
				} else if dataType.IsNumeric() && raw.Precision > 0 {
					field.Size = raw.Precision
					field.SubSize = raw.Scale
				}
				return field
			}
		}
	}

	if raw.TypeName != "" {
		field.TypeName = raw.TypeName
		if raw.Length > 0 {
			field.Size = raw.Length
		} else if raw.Precision > 0 {
			field.Size, field.SubSize = raw.Precision, raw.Scale
		}
		return field
	}

	if raw.Type != "" {
		r.logger.Warn(ctx, "column %v: type %q is not supported by %s, using %s", raw, raw.Type, r.platform.Name(), schema.String)
	} else {
		r.logger.Warn(ctx, "column %v: no type, using %s", raw, schema.String)
	}
	field.Type = schema.String
	field.Size = raw.Length
	return field
}
