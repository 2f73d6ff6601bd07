package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/contentforge/admin-api/internal/core/domain"
	"github.com/contentforge/admin-api/internal/core/ports"
)

// CatalogHandler serves the products, keywords and blog posts screens.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

type productRequest struct {
	Name        string  `json:"name"        validate:"required,max=200"`
	SKU         string  `json:"sku"         validate:"required,max=64"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"       validate:"min=0"`
	Currency    string  `json:"currency"    validate:"omitempty,len=3"`
	Status      string  `json:"status"      validate:"omitempty,oneof=active draft archived"`
	Description string  `json:"description"`
}

func (r productRequest) toInput() ports.ProductInput {
	return ports.ProductInput{
		Name:        r.Name,
		SKU:         r.SKU,
		Category:    r.Category,
		Price:       r.Price,
		Currency:    r.Currency,
		Status:      domain.ProductStatus(r.Status),
		Description: r.Description,
	}
}

type keywordRequest struct {
	Term         string `json:"term"          validate:"required,max=120"`
	SearchVolume int    `json:"search_volume" validate:"min=0"`
	Difficulty   int    `json:"difficulty"    validate:"min=0,max=100"`
	URL          string `json:"url"           validate:"omitempty,url"`
}

// ListProducts handles GET /v1/admin/products.
//
// @Summary      List products
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        search    query     string  false  "Name or SKU contains"
// @Param        status    query     string  false  "active, draft or archived"
// @Param        category  query     string  false  "Category"
// @Param        page      query     int     false  "Page (1-based)"
// @Param        limit     query     int     false  "Page size (max 100)"
// @Success      200       {object}  pageResponse[domain.Product]
// @Router       /v1/admin/products [get]
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	page, err := h.service.ListProducts(c.Request().Context(), ports.ProductFilter{
		Search:      c.QueryParam("search"),
		Status:      domain.ProductStatus(c.QueryParam("status")),
		Category:    c.QueryParam("category"),
		PageRequest: pageRequest(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPageResponse(page))
}

// GetProduct handles GET /v1/admin/products/:id.
//
// @Summary      Get a product
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /v1/admin/products/{id} [get]
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	p, err := h.service.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// CreateProduct handles POST /v1/admin/products.
//
// @Summary      Create a product
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product"
// @Success      201   {object}  domain.Product
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/admin/products [post]
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req productRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	p, err := h.service.CreateProduct(c.Request().Context(), req.toInput(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

// UpdateProduct handles PUT /v1/admin/products/:id.
//
// @Summary      Replace a product
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Product ID"
// @Param        body  body      productRequest  true  "Product"
// @Success      200   {object}  domain.Product
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/admin/products/{id} [put]
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req productRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	p, err := h.service.UpdateProduct(c.Request().Context(), c.Param("id"), req.toInput(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// ListKeywords handles GET /v1/admin/keywords.
//
// @Summary      List tracked keywords
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Term contains"
// @Param        status  query     string  false  "tracking or paused"
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Success      200     {object}  pageResponse[domain.Keyword]
// @Router       /v1/admin/keywords [get]
func (h *CatalogHandler) ListKeywords(c echo.Context) error {
	page, err := h.service.ListKeywords(c.Request().Context(), ports.KeywordFilter{
		Search:      c.QueryParam("search"),
		Status:      domain.KeywordStatus(c.QueryParam("status")),
		PageRequest: pageRequest(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPageResponse(page))
}

// TrackKeyword handles POST /v1/admin/keywords.
//
// @Summary      Start tracking a keyword
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      keywordRequest  true  "Keyword"
// @Success      201   {object}  domain.Keyword
// @Failure      409   {object}  map[string]string
// @Router       /v1/admin/keywords [post]
func (h *CatalogHandler) TrackKeyword(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req keywordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	k, err := h.service.TrackKeyword(c.Request().Context(), ports.KeywordInput{
		Term:         req.Term,
		SearchVolume: req.SearchVolume,
		Difficulty:   req.Difficulty,
		URL:          req.URL,
	}, actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, k)
}

// UntrackKeyword handles DELETE /v1/admin/keywords/:id.
//
// @Summary      Stop tracking a keyword
// @Tags         catalog
// @Security     BearerAuth
// @Param        id  path  string  true  "Keyword ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/admin/keywords/{id} [delete]
func (h *CatalogHandler) UntrackKeyword(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	if err := h.service.UntrackKeyword(c.Request().Context(), c.Param("id"), actor); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListBlogPosts handles GET /v1/admin/blog-posts.
//
// @Summary      List generated blog posts
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Title or keyword contains"
// @Param        status  query     string  false  "draft, scheduled, published or failed"
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Success      200     {object}  pageResponse[domain.BlogPost]
// @Router       /v1/admin/blog-posts [get]
func (h *CatalogHandler) ListBlogPosts(c echo.Context) error {
	page, err := h.service.ListBlogPosts(c.Request().Context(), ports.BlogFilter{
		Search:      c.QueryParam("search"),
		Status:      domain.BlogStatus(c.QueryParam("status")),
		PageRequest: pageRequest(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPageResponse(page))
}

// BlogSummary handles GET /v1/admin/blog-posts/summary.
//
// @Summary      Blog post counts by status
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int
// @Router       /v1/admin/blog-posts/summary [get]
func (h *CatalogHandler) BlogSummary(c echo.Context) error {
	counts, err := h.service.BlogSummary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, counts)
}
