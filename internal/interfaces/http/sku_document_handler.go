package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/ports"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// SkuDocumentHandler expone la ficha PDF y el feed XML de SKUs.
type SkuDocumentHandler struct {
	uc    *catalog.SkuUseCase
	sheet ports.SkuSheetRenderer
	feed  ports.SkuFeedEncoder
	log   *logger.Logger
}

// NewSkuDocumentHandler construye el handler.
func NewSkuDocumentHandler(uc *catalog.SkuUseCase, sheet ports.SkuSheetRenderer, feed ports.SkuFeedEncoder, log *logger.Logger) *SkuDocumentHandler {
	return &SkuDocumentHandler{uc: uc, sheet: sheet, feed: feed, log: log}
}

// Sheet godoc
// @Summary      Ficha técnica del SKU en PDF
// @Tags         skus
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del SKU"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/skus/{id}/sheet.pdf [get]
func (h *SkuDocumentHandler) Sheet(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	sku, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	pdfBytes, err := h.sheet.RenderSkuSheet(c.UserContext(), sku)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="sku-%s.pdf"`, sku.SkuNumber))
	return c.Send(pdfBytes)
}

// Feed godoc
// @Summary      Feed XML de SKUs
// @Description  Mismos filtros y paginación que el listado. ETag calculado sobre la forma canónica del XML.
// @Tags         skus
// @Produce      application/xml
// @Param        name        query  string  false  "Nombre (parcial)"
// @Param        product_id  query  int     false  "Producto"
// @Param        is_active   query  bool    false  "Activos"
// @Param        limit       query  int     false  "Límite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {string}  string
// @Success      304
// @Router       /api/skus/feed.xml [get]
func (h *SkuDocumentHandler) Feed(c *fiber.Ctx) error {
	var filter dto.SkuFilterRequest
	if err := c.QueryParser(&filter); err != nil {
		return badRequest(c, "INVALID_QUERY", "filtros inválidos")
	}
	list, err := h.uc.List(c.UserContext(), filter, pageFromQuery(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	body, digest, err := h.feed.EncodeSkuFeed(c.UserContext(), list.Items)
	if err != nil {
		return writeError(c, h.log, err)
	}
	etag := `"` + digest + `"`
	c.Set(fiber.HeaderETag, etag)
	if c.Get(fiber.HeaderIfNoneMatch) == etag {
		return c.SendStatus(fiber.StatusNotModified)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(body)
}
