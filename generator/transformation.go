package generator

import (
	"reflect"

	"gorm.io/schemagen/descriptor"
	"gorm.io/schemagen/schema"
)

const buildFieldValueMethod = "BuildFieldValue"

// buildTransformation columns computed by transformers are typed after the
// first result of the transformer method, string when it cannot be found.
// Columns with a declared type keep it.
func (r *run) buildTransformation(desc *descriptor.Descriptor, m *descriptor.Transformation) {
	for _, transformer := range m.Transformers {
		if transformer.Field == nil {
			continue
		}

		field := r.ownField(desc, transformer.Field)
		raw, _ := r.fields.rawField(onTable(transformer.Field, r.primaryTable(desc)).Key())
		if raw != nil && (raw.Type != "" || raw.TypeName != "" || raw.ColumnDefinition != "") {
			continue
		}

		dataType, ok := transformedType(desc.ModelType, transformer)
		if ok {
			_, ok = r.config.Platform.FieldType(dataType)
		}

		if !ok {
			r.config.Logger.Info(r.ctx, "column %v: cannot infer type of transformer %s, using %s", transformer.Field, transformerMethod(transformer), schema.String)
			dataType = schema.String
		}

		field.Type = dataType
		field.TypeName = ""
	}
}

func transformerMethod(transformer descriptor.FieldTransformer) string {
	if transformer.Method != "" {
		return transformer.Method
	}
	return buildFieldValueMethod
}

// transformedType looks the method up on the transformer, or on modelType
// when there is no transformer
func transformedType(modelType reflect.Type, transformer descriptor.FieldTransformer) (schema.DataType, bool) {
	var (
		name     = transformerMethod(transformer)
		method   reflect.Method
		ok       bool
		receiver reflect.Type
	)

	if transformer.Transformer != nil {
		receiver = reflect.TypeOf(transformer.Transformer)
	} else {
		receiver = modelType
	}

	if receiver == nil {
		return "", false
	}

	if method, ok = receiver.MethodByName(name); !ok && receiver.Kind() != reflect.Ptr {
		method, ok = reflect.PtrTo(receiver).MethodByName(name)
	}

	if !ok || method.Type.NumOut() == 0 {
		return "", false
	}

	dataType := schema.DataTypeOf(method.Type.Out(0))
	return dataType, dataType != ""
}
