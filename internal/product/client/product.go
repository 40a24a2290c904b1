package client

import (
	"encoding/json"
	"fmt"

	"github.com/ridloal/product-console/internal/product/domain"
)

// productID is an opaque id that the API may send as a JSON string or number.
type productID string

func (id *productID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = productID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("product id must be a string or number, got %s", data)
	}
	*id = productID(n.String())
	return nil
}

// productBody is the part of a product the console reads. Timestamps and any
// other server fields are ignored.
type productBody struct {
	ID          productID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
}

func (p productBody) toDomain() domain.Product {
	return domain.Product{
		ID:          string(p.ID),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
	}
}
