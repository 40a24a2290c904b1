package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ridloal/product-console/internal/platform/logger"
	"github.com/ridloal/product-console/internal/product/console"
)

//go:embed templates/*.html
var templateFS embed.FS

const pageTemplate = "index.html"

func LoadTemplates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

type ConsoleHandler struct {
	console *console.Console
}

func NewConsoleHandler(c *console.Console) *ConsoleHandler {
	return &ConsoleHandler{console: c}
}

func (h *ConsoleHandler) RegisterRoutes(router *gin.Engine) {
	router.SetHTMLTemplate(LoadTemplates())

	router.GET("/", h.Index)
	productRoutes := router.Group("/products")
	{
		productRoutes.POST("", h.CreateProduct)
		productRoutes.POST("/get", h.GetProduct)
		productRoutes.POST("/update", h.UpdateProduct)
		productRoutes.POST("/delete", h.DeleteProduct)
	}
}

// RegisterDiagnostics exposes liveness and the Prometheus registry.
func RegisterDiagnostics(router gin.IRoutes, gatherer prometheus.Gatherer) {
	router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

func (h *ConsoleHandler) Index(c *gin.Context) {
	page := NewPage(nil)
	h.console.List(c.Request.Context(), page)
	h.render(c, page)
}

func (h *ConsoleHandler) CreateProduct(c *gin.Context) {
	h.submit(c, h.console.Create)
}

func (h *ConsoleHandler) GetProduct(c *gin.Context) {
	h.submit(c, h.console.FetchOne)
}

func (h *ConsoleHandler) UpdateProduct(c *gin.Context) {
	h.submit(c, h.console.Update)
}

func (h *ConsoleHandler) DeleteProduct(c *gin.Context) {
	h.submit(c, h.console.Delete)
}

type operation func(ctx context.Context, form console.Form, view console.View)

// submit runs one form operation and renders the page. When the operation did not
// refresh the list (failures, fetch-one), the list is loaded so the page is complete.
func (h *ConsoleHandler) submit(c *gin.Context, op operation) {
	if err := c.Request.ParseForm(); err != nil {
		logger.Error("ConsoleHandler: bad form submission", err)
		c.String(http.StatusBadRequest, "Invalid form submission")
		return
	}

	ctx := c.Request.Context()
	page := NewPage(c.Request.PostForm)
	op(ctx, c.Request.PostForm, page)
	if !page.ListLoaded() {
		h.console.List(ctx, page)
	}
	h.render(c, page)
}

func (h *ConsoleHandler) render(c *gin.Context, page *Page) {
	c.HTML(http.StatusOK, pageTemplate, page)
}
