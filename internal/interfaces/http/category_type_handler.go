package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// CategoryTypeHandler maneja las peticiones HTTP para CategoryType.
type CategoryTypeHandler struct {
	uc  *catalog.CategoryTypeUseCase
	log *logger.Logger
}

// NewCategoryTypeHandler construye el handler.
func NewCategoryTypeHandler(uc *catalog.CategoryTypeUseCase, log *logger.Logger) *CategoryTypeHandler {
	return &CategoryTypeHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear tipo de categoría
// @Tags         category-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryTypeRequest  true  "Datos del tipo"
// @Success      201   {object}  dto.CategoryTypeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/category-types [post]
func (h *CategoryTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryTypeRequest
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
// @Summary      Obtener tipo de categoría por ID
// @Tags         category-types
// @Produce      json
// @Param        id   path  int  true  "ID del tipo"
// @Success      200  {object}  dto.CategoryTypeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/category-types/{id} [get]
func (h *CategoryTypeHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar tipos de categoría
// @Tags         category-types
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.CategoryTypeListResponse
// @Router       /api/category-types [get]
func (h *CategoryTypeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageFromQuery(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar tipo de categoría
// @Tags         category-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del tipo"
// @Param        body  body  dto.UpdateCategoryTypeRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.CategoryTypeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/category-types/{id} [put]
func (h *CategoryTypeHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	var in dto.UpdateCategoryTypeRequest
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
// @Summary      Desactivar tipo de categoría
// @Description  Rechazado si hay categorías activas del tipo.
// @Tags         category-types
// @Security     Bearer
// @Param        id   path  int  true  "ID del tipo"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/category-types/{id} [delete]
func (h *CategoryTypeHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	if err := h.uc.SoftDelete(c.UserContext(), GetUserID(c), id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
