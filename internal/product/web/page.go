package web

import (
	"net/url"
	"strconv"

	"github.com/ridloal/product-console/internal/product/console"
	"github.com/ridloal/product-console/internal/product/domain"
)

// formFields lists the inputs that belong to each form, for ResetForm.
var formFields = map[console.FormID][]string{
	console.FormCreate: {console.FieldName, console.FieldDescription, console.FieldPrice, console.FieldQuantity},
	console.FormGet:    {console.FieldGetID},
	console.FormUpdate: {
		console.FieldUpdateID, console.FieldUpdateName, console.FieldUpdateDescription,
		console.FieldUpdatePrice, console.FieldUpdateQuantity,
	},
	console.FormDelete: {console.FieldDeleteID},
}

// ProductEntry is one rendered line of the product list.
type ProductEntry struct {
	Name        string
	Description string
	Price       string
	Quantity    string
}

// Page is the state of one rendered console page. It implements console.View.
type Page struct {
	entries    []ProductEntry
	listError  string
	listLoaded bool
	texts      map[console.Region]string
	values     url.Values
}

// NewPage starts a page that echoes the submitted values back into its forms.
func NewPage(submitted url.Values) *Page {
	values := url.Values{}
	for k, v := range submitted {
		values[k] = append([]string(nil), v...)
	}
	return &Page{
		texts:  map[console.Region]string{},
		values: values,
	}
}

func (p *Page) ShowProducts(products []domain.Product) {
	p.entries = make([]ProductEntry, 0, len(products))
	for _, product := range products {
		p.entries = append(p.entries, ProductEntry{
			Name:        product.Name,
			Description: "Description: " + product.Description,
			Price:       "Price: " + console.FormatPrice(product.Price),
			Quantity:    "Quantity: " + strconv.Itoa(product.Quantity),
		})
	}
	p.listError = ""
	p.listLoaded = true
}

func (p *Page) ShowListError(message string) {
	p.entries = nil
	p.listError = message
	p.listLoaded = true
}

func (p *Page) SetText(region console.Region, text string) {
	p.texts[region] = text
}

func (p *Page) ResetForm(form console.FormID) {
	for _, field := range formFields[form] {
		p.values.Del(field)
	}
}

// Template accessors.

func (p *Page) Products() []ProductEntry { return p.entries }
func (p *Page) ListError() string        { return p.listError }
func (p *Page) ListLoaded() bool         { return p.listLoaded }

func (p *Page) Text(region string) string {
	return p.texts[console.Region(region)]
}

func (p *Page) Value(field string) string {
	return p.values.Get(field)
}
