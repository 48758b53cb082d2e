package descriptor

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/schemagen/schema"
	"gorm.io/schemagen/utils"
)

// ParseTagSetting parse gorm style settings like `type:decimal;precision:10;not null`,
// keys are upper cased, a trailing backslash escapes sep
func ParseTagSetting(str string, sep string) map[string]string {
	settings := map[string]string{}
	names := strings.Split(str, sep)

	for i := 0; i < len(names); i++ {
		j := i
		if len(names[j]) > 0 {
			for {
				if names[j][len(names[j])-1] == '\\' && i+1 < len(names) {
					i++
					names[j] = names[j][0:len(names[j])-1] + sep + names[i]
					names[i] = ""
				} else {
					break
				}
			}
		}

		values := strings.Split(names[j], ":")
		k := strings.TrimSpace(strings.ToUpper(values[0]))

		if len(values) >= 2 {
			settings[k] = strings.Join(values[1:], ":")
		} else if k != "" {
			settings[k] = k
		}
	}

	return settings
}

// applySettings copy parsed tag settings onto field
func applySettings(field *Field, settings map[string]string) (err error) {
	atoi := func(key, val string) int {
		n, e := strconv.Atoi(strings.TrimSpace(val))
		if e != nil && err == nil {
			err = errors.Wrapf(e, "invalid %s %q of column %v", strings.ToLower(key), val, field)
		}
		return n
	}

	if val, ok := settings["TYPE"]; ok {
		field.Type = schema.DataType(strings.TrimSpace(val))
	}

	if val, ok := settings["TYPENAME"]; ok {
		field.TypeName = strings.TrimSpace(val)
	}

	if val, ok := settings["DEFINITION"]; ok {
		field.ColumnDefinition = val
	}

	if val, ok := settings["SIZE"]; ok {
		field.Length = atoi("SIZE", val)
	} else if val, ok := settings["LENGTH"]; ok {
		field.Length = atoi("LENGTH", val)
	}

	if val, ok := settings["PRECISION"]; ok {
		field.Precision = atoi("PRECISION", val)
	}

	if val, ok := settings["SCALE"]; ok {
		field.Scale = atoi("SCALE", val)
	}

	if val, ok := settings["NOT NULL"]; ok && utils.CheckTruth(val) {
		field.NotNull = true
	} else if val, ok := settings["NOTNULL"]; ok && utils.CheckTruth(val) {
		field.NotNull = true
	}

	if val, ok := settings["UNIQUE"]; ok && utils.CheckTruth(val) {
		field.Unique = true
	}

	var additional []string
	if val, ok := settings["DEFAULT"]; ok {
		additional = append(additional, "DEFAULT "+strings.TrimSpace(val))
	}
	if val, ok := settings["CHECK"]; ok {
		additional = append(additional, "CHECK ("+strings.TrimSpace(val)+")")
	}
	if len(additional) > 0 {
		field.Additional = strings.Join(additional, " ")
	}

	// read only
	if _, ok := settings["->"]; ok {
		field.Insertable = false
		field.Updatable = false
	}

	if v, ok := settings["<-"]; ok && v != "<-" {
		field.Insertable = strings.Contains(v, "create")
		field.Updatable = strings.Contains(v, "update")
	}
	return err
}
