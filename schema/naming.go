package schema

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/jinzhu/inflection"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Namer namer interface
type Namer interface {
	TableName(entity string) string
	JoinTableName(joinTable string) string
	ForeignKeyName(table string, columns []string) string
	UniqueKeyName(table string, idx int) string
}

// NamingStrategy tables, constraints naming strategy
type NamingStrategy struct {
	TablePrefix   string
	SingularTable bool
	// UpperCase upper case generated identifiers, e.g. LINE_ITEMS
	UpperCase bool
	// IdentifierMaxLength constraint names longer than this are hashed, default 64
	IdentifierMaxLength int
}

// TableName convert entity name to table name
func (ns NamingStrategy) TableName(str string) string {
	if ns.SingularTable {
		return ns.casing(ns.TablePrefix + toDBName(str))
	}
	return ns.casing(ns.TablePrefix + inflection.Plural(toDBName(str)))
}

// JoinTableName convert string to join table name
func (ns NamingStrategy) JoinTableName(str string) string {
	if strings.ToLower(str) == str {
		return ns.casing(ns.TablePrefix + str)
	}
	return ns.TableName(str)
}

// ForeignKeyName generate foreign key name
func (ns NamingStrategy) ForeignKeyName(table string, columns []string) string {
	return ns.formatName("fk", table, strings.Join(columns, "_"))
}

// UniqueKeyName generate name of the idx-th unique key of table, starting at 1
func (ns NamingStrategy) UniqueKeyName(table string, idx int) string {
	return ns.formatName("uni", table, fmt.Sprint(idx))
}

func (ns NamingStrategy) formatName(prefix, table, name string) string {
	formattedName := strings.ReplaceAll(strings.Join([]string{
		prefix, table, name,
	}, "_"), ".", "_")

	maxLength := ns.IdentifierMaxLength
	if maxLength == 0 {
		maxLength = 64
	}

	if utf8.RuneCountInString(formattedName) > maxLength {
		h := sha1.New()
		h.Write([]byte(formattedName))
		bs := h.Sum(nil)

		formattedName = formattedName[0:maxLength-8] + hex.EncodeToString(bs)[:8]
	}
	return ns.casing(formattedName)
}

var upperCaser = cases.Upper(language.Und)

func (ns NamingStrategy) casing(name string) string {
	if ns.UpperCase {
		return upperCaser.String(name)
	}
	return name
}

var (
	smap sync.Map
	// https://github.com/golang/lint/blob/master/lint.go#L770
	commonInitialisms         = []string{"API", "ASCII", "CPU", "CSS", "DNS", "EOF", "GUID", "HTML", "HTTP", "HTTPS", "ID", "IP", "JSON", "LHS", "QPS", "RAM", "RHS", "RPC", "SLA", "SMTP", "SSH", "TLS", "TTL", "UID", "UI", "UUID", "URI", "URL", "UTF8", "VM", "XML", "XSRF", "XSS"}
	commonInitialismsReplacer *strings.Replacer
)

func init() {
	titleCaser := cases.Title(language.Und)
	commonInitialismsForReplacer := make([]string, 0, len(commonInitialisms))
	for _, initialism := range commonInitialisms {
		commonInitialismsForReplacer = append(commonInitialismsForReplacer, initialism, titleCaser.String(initialism))
	}
	commonInitialismsReplacer = strings.NewReplacer(commonInitialismsForReplacer...)
}

func toDBName(name string) string {
	if name == "" {
		return ""
	} else if v, ok := smap.Load(name); ok {
		return v.(string)
	}

	var (
		value                                    = commonInitialismsReplacer.Replace(name)
		buf                                      strings.Builder
		lastCase, nextCase, nextNumber, curCase bool // upper case == true
	)
	curCase = value[0] <= 'Z' && value[0] >= 'A'

	for i, v := range value[:len(value)-1] {
		nextCase = value[i+1] <= 'Z' && value[i+1] >= 'A'
		nextNumber = value[i+1] >= '0' && value[i+1] <= '9'

		if curCase {
			if lastCase && (nextCase || nextNumber) {
				buf.WriteRune(v + 32)
			} else {
				if i > 0 && value[i-1] != '_' && value[i+1] != '_' {
					buf.WriteByte('_')
				}
				buf.WriteRune(v + 32)
			}
		} else {
			buf.WriteRune(v)
		}

		lastCase = curCase
		curCase = nextCase
	}

	if curCase {
		if !lastCase && len(value) > 1 {
			buf.WriteByte('_')
		}
		buf.WriteByte(value[len(value)-1] + 32)
	} else {
		buf.WriteByte(value[len(value)-1])
	}

	result := buf.String()
	smap.Store(name, result)
	return result
}
