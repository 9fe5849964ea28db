package importer

import "strings"

// columnAliases maps normalized header names to canonical field keys.
// Source CSVs show up with either display-cased ("Transaction ID") or
// snake_cased ("transaction_id") headers; both normalize to the same key.
var columnAliases = map[string]string{
	"transaction id":      "transaction_id",
	"date":                "date",
	"customer id":         "customer_id",
	"customer name":       "customer_name",
	"phone number":        "phone_number",
	"gender":              "gender",
	"age":                 "age",
	"customer region":     "customer_region",
	"customer type":       "customer_type",
	"product id":          "product_id",
	"product name":        "product_name",
	"brand":               "brand",
	"product category":    "product_category",
	"subcategory":         "subcategory",
	"tags":                "tags",
	"quantity":            "quantity",
	"price per unit":      "price_per_unit",
	"discount percentage": "discount_percentage",
	"total amount":        "total_amount",
	"final amount":        "final_amount",
	"payment method":      "payment_method",
	"order status":        "order_status",
	"delivery type":       "delivery_type",
	"store id":            "store_id",
	"store location":      "store_location",
	"salesperson id":      "salesperson_id",
	"employee name":       "employee_name",
}

// canonicalColumn resolves a raw header cell to its canonical key, or ""
// if the column is unknown (such columns are ignored).
func canonicalColumn(header string) string {
	normalized := strings.ToLower(strings.TrimSpace(header))
	normalized = strings.ReplaceAll(normalized, "_", " ")
	normalized = strings.Join(strings.Fields(normalized), " ")
	return columnAliases[normalized]
}
