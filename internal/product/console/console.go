package console

import (
	"context"
	"errors"
	"strconv"

	"github.com/ridloal/product-console/internal/product/client"
	"github.com/ridloal/product-console/internal/product/domain"
)

const (
	MsgCreated       = "Product created successfully!"
	MsgUpdated       = "Product updated successfully!"
	MsgDeleted       = "Product was deleted successfully!"
	MsgUnavailable   = "Unable to reach the product service"
	MsgUnexpected    = "Unexpected response from the product service"
	listErrorPrefix  = "Error: "
	createdIDPrefix  = " ID: "
	descriptionLabel = "Description: "
	priceLabel       = "Price: "
	quantityLabel    = "Quantity: "
)

// ProductAPI is the remote collection the console drives.
type ProductAPI interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, req domain.ProductRequest) (string, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, req domain.ProductRequest) error
	DeleteProduct(ctx context.Context, id string) error
}

// Console maps form submissions onto Product API calls and projects the outcome onto a View.
// It keeps no state of its own, so one Console serves any number of concurrent pages.
// Failed calls are logged by the ProductAPI, not here.
type Console struct {
	api ProductAPI
}

func NewConsole(api ProductAPI) *Console {
	return &Console{api: api}
}

// List re-fetches the collection and replaces the displayed list.
func (c *Console) List(ctx context.Context, view View) {
	products, err := c.api.ListProducts(ctx)
	if err != nil {
		view.ShowListError(listErrorPrefix + errorMessage(err))
		return
	}
	view.ShowProducts(products)
}

func (c *Console) Create(ctx context.Context, form Form, view View) {
	req := readProductRequest(form, FieldName, FieldDescription, FieldPrice, FieldQuantity)

	id, err := c.api.CreateProduct(ctx, req)
	if err != nil {
		view.SetText(RegionCreateMessage, errorMessage(err))
		return
	}

	view.ResetForm(FormCreate)
	c.List(ctx, view)

	message := MsgCreated
	if id != "" {
		message += createdIDPrefix + id
	}
	view.SetText(RegionCreateMessage, message)
}

func (c *Console) FetchOne(ctx context.Context, form Form, view View) {
	product, err := c.api.GetProduct(ctx, form.Get(FieldGetID))
	if err != nil {
		view.SetText(RegionGetMessage, errorMessage(err))
		for _, region := range []Region{RegionProductName, RegionProductDescription, RegionProductPrice, RegionProductQuantity} {
			view.SetText(region, "")
		}
		return
	}

	view.SetText(RegionProductName, product.Name)
	view.SetText(RegionProductDescription, descriptionLabel+product.Description)
	view.SetText(RegionProductPrice, priceLabel+FormatPrice(product.Price))
	view.SetText(RegionProductQuantity, quantityLabel+strconv.Itoa(product.Quantity))
	view.SetText(RegionGetMessage, "")
}

func (c *Console) Update(ctx context.Context, form Form, view View) {
	req := readProductRequest(form, FieldUpdateName, FieldUpdateDescription, FieldUpdatePrice, FieldUpdateQuantity)

	if err := c.api.UpdateProduct(ctx, form.Get(FieldUpdateID), req); err != nil {
		view.SetText(RegionUpdateMessage, errorMessage(err))
		return
	}

	c.List(ctx, view)
	view.SetText(RegionUpdateMessage, MsgUpdated)
}

func (c *Console) Delete(ctx context.Context, form Form, view View) {
	if err := c.api.DeleteProduct(ctx, form.Get(FieldDeleteID)); err != nil {
		view.SetText(RegionDeleteMessage, errorMessage(err))
		return
	}

	c.List(ctx, view)
	view.SetText(RegionDeleteMessage, MsgDeleted)
}

// FormatPrice renders a price the way a browser prints a number: 9.99, 12.5, 3.
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

// errorMessage is the text shown to the user for a failed call.
func errorMessage(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, client.ErrUnavailable):
		return MsgUnavailable
	case errors.Is(err, client.ErrUnexpectedResponse):
		return MsgUnexpected
	default:
		return err.Error()
	}
}
