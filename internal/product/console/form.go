package console

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ridloal/product-console/internal/product/domain"
)

// Form field names, shared with the page templates.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldQuantity    = "quantity"

	FieldGetID = "getId"

	FieldUpdateID          = "updateId"
	FieldUpdateName        = "updateName"
	FieldUpdateDescription = "updateDescription"
	FieldUpdatePrice       = "updatePrice"
	FieldUpdateQuantity    = "updateQuantity"

	FieldDeleteID = "productId"
)

var (
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
)

// parsePrice reads the leading decimal literal of the value ("9.99abc" -> 9.99).
// It returns nil when there is none or the result is not finite.
func parsePrice(raw string) *float64 {
	lit := leadingFloat.FindString(strings.TrimSpace(raw))
	if lit == "" {
		return nil
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// parseQuantity reads the leading integer digits, so "5.9" is 5 and "1e3" is 1.
func parseQuantity(raw string) *int {
	lit := leadingInt.FindString(strings.TrimSpace(raw))
	if lit == "" {
		return nil
	}
	n, err := strconv.Atoi(lit)
	if err != nil {
		return nil
	}
	return &n
}

func readProductRequest(form Form, name, description, price, quantity string) domain.ProductRequest {
	return domain.ProductRequest{
		Name:        form.Get(name),
		Description: form.Get(description),
		Price:       parsePrice(form.Get(price)),
		Quantity:    parseQuantity(form.Get(quantity)),
	}
}
