package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stocktrack/internal/application/dto"
	"github.com/tu-usuario/stocktrack/internal/application/usecase"
	"github.com/tu-usuario/stocktrack/internal/domain"
	"github.com/tu-usuario/stocktrack/internal/domain/entity"
	"github.com/tu-usuario/stocktrack/internal/domain/repository"
)

// InventoryHandler maneja las peticiones HTTP de inventario (protegido).
type InventoryHandler struct {
	uc *usecase.ItemUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.ItemUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// validateCreate chequeos de frontera antes de tocar el caso de uso.
func validateCreate(in dto.CreateItemRequest) *dto.ErrorResponse {
	if in.Name == "" || in.SKU == "" {
		return &dto.ErrorResponse{Code: "VALIDATION", Message: "name y sku son requeridos"}
	}
	if in.Quantity < 0 || in.MinQuantity < 0 {
		return &dto.ErrorResponse{Code: "VALIDATION", Message: "quantity y minQuantity deben ser >= 0"}
	}
	if in.Price.LessThan(decimal.Zero) {
		return &dto.ErrorResponse{Code: "VALIDATION", Message: "price debe ser >= 0"}
	}
	if in.Status != nil && !in.Status.Valid() {
		return &dto.ErrorResponse{Code: "VALIDATION", Message: "status inválido"}
	}
	return nil
}

func validateUpdate(in dto.UpdateItemRequest) *dto.ErrorResponse {
	if in.Name != nil && *in.Name == "" {
		return &dto.ErrorResponse{Code: "VALIDATION", Message: "name no puede ser vacío"}
	}
	if in.SKU != nil && *in.SKU == "" {
		return &dto.ErrorResponse{Code: "VALIDATION", Message: "sku no puede ser vacío"}
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		return &dto.ErrorResponse{Code: "VALIDATION", Message: "quantity debe ser >= 0"}
	}
	if in.MinQuantity != nil && *in.MinQuantity < 0 {
		return &dto.ErrorResponse{Code: "VALIDATION", Message: "minQuantity debe ser >= 0"}
	}
	if in.Price != nil && in.Price.LessThan(decimal.Zero) {
		return &dto.ErrorResponse{Code: "VALIDATION", Message: "price debe ser >= 0"}
	}
	if in.Status != nil && !in.Status.Valid() {
		return &dto.ErrorResponse{Code: "VALIDATION", Message: "status inválido"}
	}
	return nil
}

// Create godoc
// @Summary      Crear ítem de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Datos del ítem"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errResp := validateCreate(in); errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errResp)
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar inventario con filtros y paginación
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        page      query  int     false  "Página"  default(1)
// @Param        limit     query  int     false  "Límite"  default(10)
// @Param        search    query  string  false  "Busca en name, sku o description"
// @Param        category  query  string  false  "Substring de categoría"
// @Param        status    query  string  false  "IN_STOCK | LOW_STOCK | OUT_OF_STOCK"
// @Success      200  {object}  dto.ItemListResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	filter := repository.ItemFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}
	if s := c.Query("status"); s != "" {
		status := entity.Status(s)
		if !status.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status inválido"})
		}
		filter.Status = status
	}
	out, err := h.uc.List(page, limit, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Conteos agregados de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/inventory/stats [get]
func (h *InventoryHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Ítems en LOW_STOCK u OUT_OF_STOCK (sin paginar)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener ítem por ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ítem"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualización parcial de un ítem
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ítem"
// @Param        body  body  dto.UpdateItemRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [patch]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errResp := validateUpdate(in); errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errResp)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ítem por ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ítem"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "ítem eliminado correctamente"})
}
