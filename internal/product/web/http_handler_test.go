package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/ridloal/product-console/internal/platform/logger"
	"github.com/ridloal/product-console/internal/product/client"
	"github.com/ridloal/product-console/internal/product/console"
	"github.com/ridloal/product-console/internal/product/console/mocks"
	"github.com/ridloal/product-console/internal/product/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

var widget = domain.Product{ID: "1", Name: "Widget", Description: "A widget", Price: 9.99, Quantity: 5}

func setupRouter(api console.ProductAPI) *gin.Engine {
	router := gin.New()
	NewConsoleHandler(console.NewConsole(api)).RegisterRoutes(router)
	return router
}

func postForm(router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestConsoleHandler_Index(t *testing.T) {
	t.Run("Renders product list", func(t *testing.T) {
		mockAPI := new(mocks.MockProductAPI)
		mockAPI.On("ListProducts", mock.Anything).Return([]domain.Product{widget}, nil).Once()
		router := setupRouter(mockAPI)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, "<h2>Widget</h2>")
		assert.Contains(t, body, "<p>Description: A widget</p>")
		assert.Contains(t, body, "<p>Price: 9.99</p>")
		assert.Contains(t, body, "<p>Quantity: 5</p>")
		mockAPI.AssertExpectations(t)
	})

	t.Run("Renders list error", func(t *testing.T) {
		mockAPI := new(mocks.MockProductAPI)
		mockAPI.On("ListProducts", mock.Anything).Return(nil, &client.APIError{StatusCode: 500, Message: "boom"}).Once()
		router := setupRouter(mockAPI)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "<p>Error: boom</p>")
	})

	t.Run("Escapes product text", func(t *testing.T) {
		mockAPI := new(mocks.MockProductAPI)
		mockAPI.On("ListProducts", mock.Anything).Return([]domain.Product{{ID: "x", Name: "<script>alert(1)</script>"}}, nil).Once()
		router := setupRouter(mockAPI)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotContains(t, rr.Body.String(), "<script>alert(1)</script>")
		assert.Contains(t, rr.Body.String(), "&lt;script&gt;")
	})
}

func TestConsoleHandler_CreateProduct(t *testing.T) {
	form := url.Values{"name": {"Widget"}, "description": {"A widget"}, "price": {"9.99"}, "quantity": {"5"}}

	t.Run("Success clears form and shows message", func(t *testing.T) {
		mockAPI := new(mocks.MockProductAPI)
		mockAPI.On("CreateProduct", mock.Anything, mock.AnythingOfType("domain.ProductRequest")).Return("1", nil).Once()
		mockAPI.On("ListProducts", mock.Anything).Return([]domain.Product{widget}, nil).Once()
		router := setupRouter(mockAPI)

		rr := postForm(router, "/products", form)

		assert.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, "Product created successfully! ID: 1")
		assert.Contains(t, body, "<h2>Widget</h2>")
		assert.Contains(t, body, `name="name" placeholder="Name" value=""`)
		mockAPI.AssertExpectations(t)
	})

	t.Run("Failure keeps values and still shows list", func(t *testing.T) {
		mockAPI := new(mocks.MockProductAPI)
		mockAPI.On("CreateProduct", mock.Anything, mock.AnythingOfType("domain.ProductRequest")).
			Return("", &client.APIError{StatusCode: 400, Message: "Name is required"}).Once()
		mockAPI.On("ListProducts", mock.Anything).Return([]domain.Product{}, nil).Once()
		router := setupRouter(mockAPI)

		rr := postForm(router, "/products", url.Values{"description": {"A widget"}, "price": {"9.99"}, "quantity": {"5"}})

		body := rr.Body.String()
		assert.Contains(t, body, "Name is required")
		assert.Contains(t, body, `name="description" placeholder="Description" value="A widget"`)
		mockAPI.AssertExpectations(t)
	})
}

func TestConsoleHandler_GetProduct(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		mockAPI := new(mocks.MockProductAPI)
		p := widget
		mockAPI.On("GetProduct", mock.Anything, "1").Return(&p, nil).Once()
		mockAPI.On("ListProducts", mock.Anything).Return([]domain.Product{widget}, nil).Once()
		router := setupRouter(mockAPI)

		rr := postForm(router, "/products/get", url.Values{"getId": {"1"}})

		body := rr.Body.String()
		assert.Contains(t, body, `<h3 id="productName">Widget</h3>`)
		assert.Contains(t, body, `<p id="productDescription">Description: A widget</p>`)
		assert.Contains(t, body, `<p id="productPrice">Price: 9.99</p>`)
		assert.Contains(t, body, `<p id="productQuantity">Quantity: 5</p>`)
		mockAPI.AssertExpectations(t)
	})

	t.Run("Not found", func(t *testing.T) {
		mockAPI := new(mocks.MockProductAPI)
		mockAPI.On("GetProduct", mock.Anything, "999").Return(nil, &client.APIError{StatusCode: 404, Message: "Not found"}).Once()
		mockAPI.On("ListProducts", mock.Anything).Return([]domain.Product{widget}, nil).Once()
		router := setupRouter(mockAPI)

		rr := postForm(router, "/products/get", url.Values{"getId": {"999"}})

		body := rr.Body.String()
		assert.Contains(t, body, `<p id="getMessage" class="message">Not found</p>`)
		assert.Contains(t, body, `<h3 id="productName"></h3>`)
	})
}

func TestConsoleHandler_UpdateAndDelete(t *testing.T) {
	t.Run("Update", func(t *testing.T) {
		mockAPI := new(mocks.MockProductAPI)
		mockAPI.On("UpdateProduct", mock.Anything, "1", mock.AnythingOfType("domain.ProductRequest")).Return(nil).Once()
		mockAPI.On("ListProducts", mock.Anything).Return([]domain.Product{widget}, nil).Once()
		router := setupRouter(mockAPI)

		rr := postForm(router, "/products/update", url.Values{
			"updateId": {"1"}, "updateName": {"Widget"}, "updateDescription": {"A widget"},
			"updatePrice": {"12.50"}, "updateQuantity": {"5"},
		})

		assert.Contains(t, rr.Body.String(), "Product updated successfully!")
		mockAPI.AssertExpectations(t)
	})

	t.Run("Delete", func(t *testing.T) {
		mockAPI := new(mocks.MockProductAPI)
		mockAPI.On("DeleteProduct", mock.Anything, "1").Return(nil).Once()
		mockAPI.On("ListProducts", mock.Anything).Return([]domain.Product{}, nil).Once()
		router := setupRouter(mockAPI)

		rr := postForm(router, "/products/delete", url.Values{"productId": {"1"}})

		assert.Contains(t, rr.Body.String(), "Product was deleted successfully!")
		mockAPI.AssertExpectations(t)
	})
}

func TestRegisterDiagnostics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "diagnostics_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	router := gin.New()
	RegisterDiagnostics(router, reg)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "diagnostics_test_total 1")
}

func TestPage_ResetForm(t *testing.T) {
	page := NewPage(url.Values{"name": {"Widget"}, "updateId": {"1"}})

	page.ResetForm(console.FormCreate)

	assert.Empty(t, page.Value("name"))
	assert.Equal(t, "1", page.Value("updateId"))
}
