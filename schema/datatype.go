package schema

import (
	"reflect"
	"strings"
	"time"
)

// DataType semantic column type, independent of any database platform
type DataType string

const (
	Bool    DataType = "bool"
	Int     DataType = "int"
	Int8    DataType = "int8"
	Int16   DataType = "int16"
	Int32   DataType = "int32"
	Int64   DataType = "int64"
	Uint    DataType = "uint"
	Uint8   DataType = "uint8"
	Uint16  DataType = "uint16"
	Uint32  DataType = "uint32"
	Uint64  DataType = "uint64"
	Float32 DataType = "float32"
	Float64 DataType = "float64"
	Decimal DataType = "decimal"
	String  DataType = "string"
	Char    DataType = "char"
	Text    DataType = "text"
	Bytes   DataType = "bytes"
	Time    DataType = "time"
	Date    DataType = "date"
)

var TimeReflectType = reflect.TypeOf(time.Time{})

var knownDataTypes = map[DataType]bool{
	Bool: true, Int: true, Int8: true, Int16: true, Int32: true, Int64: true,
	Uint: true, Uint8: true, Uint16: true, Uint32: true, Uint64: true,
	Float32: true, Float64: true, Decimal: true,
	String: true, Char: true, Text: true, Bytes: true, Time: true, Date: true,
}

// dataTypeAliases wrapper and spelling variants folded onto their canonical type
var dataTypeAliases = map[string]DataType{
	"boolean":    Bool,
	"integer":    Int,
	"byte":       Uint8,
	"short":      Int16,
	"rune":       Int32,
	"long":       Int64,
	"float":      Float32,
	"double":     Float64,
	"numeric":    Decimal,
	"number":     Decimal,
	"bigdecimal": Decimal,
	"biginteger": Decimal,
	"big.float":  Decimal,
	"big.int":    Decimal,
	"str":        String,
	"varchar":    String,
	"character":  Char,
	"clob":       Text,
	"[]byte":     Bytes,
	"byte[]":     Bytes,
	"[]uint8":    Bytes,
	"blob":       Bytes,
	"binary":     Bytes,
	"time.time":  Time,
	"timestamp":  Time,
	"datetime":   Time,
}

// ParseDataType returns the canonical data type for name. Pointer and
// wrapper spellings such as "*int64", "Integer" or "[]byte" are folded onto
// their value type. It reports false when name is not a known type.
func ParseDataType(name string) (DataType, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimLeft(name, "*")
	if name == "" {
		return "", false
	}

	if dt := DataType(name); knownDataTypes[dt] {
		return dt, true
	}

	if dt, ok := dataTypeAliases[name]; ok {
		return dt, true
	}
	return DataType(name), false
}

// IsStringLike size of string like types comes from the column length
func (dt DataType) IsStringLike() bool {
	return dt == String || dt == Char || dt == Text
}

// IsNumeric reports whether dt is a number type
func (dt DataType) IsNumeric() bool {
	switch dt {
	case Int, Int8, Int16, Int32, Int64, Uint, Uint8, Uint16, Uint32, Uint64, Float32, Float64, Decimal:
		return true
	}
	return false
}

// DataTypeOf map a go type to its data type, returns "" for unsupported types
func DataTypeOf(typ reflect.Type) DataType {
	for typ != nil && typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}

	if typ == nil {
		return ""
	}

	switch typ.Kind() {
	case reflect.Bool:
		return Bool
	case reflect.Int:
		return Int
	case reflect.Int8:
		return Int8
	case reflect.Int16:
		return Int16
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Uint:
		return Uint
	case reflect.Uint8:
		return Uint8
	case reflect.Uint16:
		return Uint16
	case reflect.Uint32:
		return Uint32
	case reflect.Uint64:
		return Uint64
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	case reflect.String:
		return String
	case reflect.Struct:
		if typ.ConvertibleTo(TimeReflectType) {
			return Time
		} else if strings.Contains(typ.Name(), "Decimal") || typ.String() == "big.Float" || typ.String() == "big.Int" {
			return Decimal
		}
	case reflect.Array, reflect.Slice:
		if typ.Elem().Kind() == reflect.Uint8 {
			return Bytes
		}
	}
	return ""
}
