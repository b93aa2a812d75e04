package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/FotoStock-api/internal/application/catalog"
	"github.com/jhoicas/FotoStock-api/internal/application/dto"
	"github.com/jhoicas/FotoStock-api/internal/domain"
)

// CatalogHandler catálogo público de una tienda, accesible por slug
// sin autenticación.
type CatalogHandler struct {
	uc *catalog.CatalogUseCase
}

// NewCatalogHandler construye el handler del catálogo público.
func NewCatalogHandler(uc *catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Get godoc
// @Summary      Catálogo público de la tienda
// @Tags         catalog
// @Produce      json
// @Param        slug    path   string  true   "slug de la tienda"
// @Param        limit   query  int     false  "máximo de filas"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/{slug} [get]
func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	store, products, err := h.uc.Get(c.Params("slug"), limit, offset)
	if err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "STORE_NOT_FOUND", Message: "tienda no encontrada"})
		}
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"store":    store,
		"products": products,
	})
}

// ExportPDF godoc
// @Summary      Descargar el catálogo de la tienda en PDF
// @Tags         catalog
// @Produce      application/pdf
// @Param        slug  path  string  true  "slug de la tienda"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/{slug}/pdf [get]
func (h *CatalogHandler) ExportPDF(c *fiber.Ctx) error {
	slug := c.Params("slug")
	pdf, err := h.uc.ExportPDF(c.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "STORE_NOT_FOUND", Message: "tienda no encontrada"})
		}
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="catalogo-%s.pdf"`, slug))
	return c.Send(pdf)
}
