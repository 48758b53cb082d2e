package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToDBName(t *testing.T) {
	var maps = map[string]string{
		"":                          "",
		"x":                         "x",
		"X":                         "x",
		"userRestrictions":          "user_restrictions",
		"ThisIsATest":               "this_is_a_test",
		"PFAndESI":                  "pf_and_esi",
		"AbcAndJkl":                 "abc_and_jkl",
		"EmployeeID":                "employee_id",
		"SKU_ID":                    "sku_id",
		"FieldX":                    "field_x",
		"HTTPAndSMTP":               "http_and_smtp",
		"HTTPServerHandlerForURLID": "http_server_handler_for_url_id",
		"UUID":                      "uuid",
		"HTTPURL":                   "http_url",
		"HTTP_URL":                  "http_url",
		"SHA256Hash":                "sha256_hash",
		"SHA256HASH":                "sha256_hash",
		"LineItem":                  "line_item",
	}

	for key, value := range maps {
		if toDBName(key) != value {
			t.Errorf("%v toName should equal %v, but got %v", key, value, toDBName(key))
		}
	}
}

func TestNamingStrategy(t *testing.T) {
	ns := NamingStrategy{TablePrefix: "app_"}

	assert.Equal(t, "app_line_items", ns.TableName("LineItem"))
	assert.Equal(t, "app_student_course", ns.JoinTableName("student_course"))
	assert.Equal(t, "app_student_courses", ns.JoinTableName("StudentCourse"))
	assert.Equal(t, "fk_line_items_order_id", ns.ForeignKeyName("line_items", []string{"order_id"}))
	assert.Equal(t, "uni_orders_2", ns.UniqueKeyName("orders", 2))
	assert.Equal(t, "fk_sales_orders_customer_id", ns.ForeignKeyName("sales.orders", []string{"customer_id"}))
}

func TestNamingStrategySingularUpperCase(t *testing.T) {
	ns := NamingStrategy{SingularTable: true, UpperCase: true}

	assert.Equal(t, "LINE_ITEM", ns.TableName("LineItem"))
	assert.Equal(t, "ORDER", ns.TableName("Order"))
	assert.Equal(t, "FK_LINE_ITEM_ORDER_ID", ns.ForeignKeyName("LINE_ITEM", []string{"ORDER_ID"}))
}

func TestNamingStrategyLongNames(t *testing.T) {
	ns := NamingStrategy{IdentifierMaxLength: 30}
	columns := []string{"first_very_long_column_name", "second_very_long_column_name"}

	name := ns.ForeignKeyName("a_table_with_a_long_name", columns)
	assert.Len(t, name, 30)
	assert.True(t, strings.HasPrefix(name, "fk_a_table_with_a_lo"))
	assert.Equal(t, name, ns.ForeignKeyName("a_table_with_a_long_name", columns))
	assert.NotEqual(t, name, ns.ForeignKeyName("a_table_with_a_long_name", columns[:1]))
}
