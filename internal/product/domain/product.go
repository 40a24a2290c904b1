package domain

import (
	"time"
)

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"` // Menggunakan float untuk kemudahan, decimal lebih baik untuk uang
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductRequest is the body of create and update calls.
// Price and Quantity are pointers so an unparseable form value is sent as null.
type ProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
}

// MessageResponse is the single-message error body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse is the field-level error body, keyed by field name.
type ValidationErrorResponse struct {
	Errors map[string][]string `json:"errors"`
}
