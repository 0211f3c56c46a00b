package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// SkuHandler maneja las peticiones HTTP del agregado SKU.
type SkuHandler struct {
	uc  *catalog.SkuUseCase
	log *logger.Logger
}

// NewSkuHandler construye el handler.
func NewSkuHandler(uc *catalog.SkuUseCase, log *logger.Logger) *SkuHandler {
	return &SkuHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear SKU con tramos de precio y valores de atributo
// @Description  Todo o nada: si falla cualquier fila hija no queda nada persistido.
// @Tags         skus
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSkuRequest  true  "Datos del SKU"
// @Success      201   {object}  dto.SkuResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/skus [post]
func (h *SkuHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSkuRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener SKU con precios, atributos y full path
// @Tags         skus
// @Produce      json
// @Param        id   path  int  true  "ID del SKU"
// @Success      200  {object}  dto.SkuResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/skus/{id} [get]
func (h *SkuHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar SKUs
// @Tags         skus
// @Produce      json
// @Param        name        query  string  false  "Nombre (parcial)"
// @Param        slug        query  string  false  "Slug exacto"
// @Param        sku_number  query  string  false  "Número de SKU"
// @Param        product_id  query  int     false  "Producto"
// @Param        is_active   query  bool    false  "Activos"
// @Param        limit       query  int     false  "Límite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.SkuListResponse
// @Router       /api/skus [get]
func (h *SkuHandler) List(c *fiber.Ctx) error {
	var filter dto.SkuFilterRequest
	if err := c.QueryParser(&filter); err != nil {
		return badRequest(c, "INVALID_QUERY", "filtros inválidos")
	}
	out, err := h.uc.List(c.UserContext(), filter, pageFromQuery(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar SKU
// @Description  attribute_values: ausente conserva, null o [] borra, lista reemplaza. Tramos: borrar, crear y actualizar en una sola tx.
// @Tags         skus
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del SKU"
// @Param        body  body  dto.UpdateSkuRequest  true  "Cambios"
// @Success      200   {object}  dto.SkuResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/skus/{id} [put]
func (h *SkuHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	var in dto.UpdateSkuRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.UserContext(), GetUserID(c), id, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Desactivar SKU
// @Tags         skus
// @Security     Bearer
// @Param        id   path  int  true  "ID del SKU"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/skus/{id} [delete]
func (h *SkuHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	if err := h.uc.SoftDelete(c.UserContext(), GetUserID(c), id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
