package console

import "github.com/ridloal/product-console/internal/product/domain"

// Region names a text display area of the page.
type Region string

const (
	RegionCreateMessage Region = "createMessage"
	RegionGetMessage    Region = "getMessage"
	RegionUpdateMessage Region = "updateMessage"
	RegionDeleteMessage Region = "deleteMessage"

	RegionProductName        Region = "productName"
	RegionProductDescription Region = "productDescription"
	RegionProductPrice       Region = "productPrice"
	RegionProductQuantity    Region = "productQuantity"
)

// FormID names a form whose fields can be reset.
type FormID string

const (
	FormCreate FormID = "productForm"
	FormGet    FormID = "getForm"
	FormUpdate FormID = "updateForm"
	FormDelete FormID = "deleteForm"
)

// View is everything the console is allowed to change on the page.
type View interface {
	// ShowProducts replaces the whole product list.
	ShowProducts(products []domain.Product)
	// ShowListError replaces the product list with an error message.
	ShowListError(message string)
	SetText(region Region, text string)
	ResetForm(form FormID)
}

// Form gives read access to submitted field values. url.Values satisfies it.
type Form interface {
	Get(key string) string
}
