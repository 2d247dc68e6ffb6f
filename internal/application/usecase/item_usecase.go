package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stocktrack/internal/application/dto"
	"github.com/tu-usuario/stocktrack/internal/domain"
	"github.com/tu-usuario/stocktrack/internal/domain/entity"
	"github.com/tu-usuario/stocktrack/internal/domain/repository"
	"github.com/tu-usuario/stocktrack/internal/domain/stock"
)

// ItemUseCase CRUD y consultas de inventario. La derivación de status vive en
// domain/stock; aquí se decide cuándo invocarla.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create crea un ítem. Si el request trae status explícito se guarda tal cual
// (sin re-derivar); si no, el status sale de Derive(quantity, minQuantity).
func (uc *ItemUseCase) Create(createdByID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	status := stock.Derive(in.Quantity, in.MinQuantity)
	if in.Status != nil {
		status = *in.Status
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:          uuid.New().String(),
		Name:        in.Name,
		SKU:         in.SKU,
		Description: in.Description,
		Quantity:    in.Quantity,
		MinQuantity: in.MinQuantity,
		Price:       in.Price,
		Category:    in.Category,
		Location:    in.Location,
		Status:      status,
		CreatedByID: createdByID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	// Relectura para incluir el resumen del creador.
	stored, err := uc.repo.GetByID(item.ID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		stored = item
	}
	return toItemResponse(stored), nil
}

// GetByID obtiene un ítem por ID; ErrNotFound si no existe.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// Update aplica un patch parcial. El status se re-deriva SOLO cuando el patch
// trae quantity y no trae status explícito; en ese caso el minQuantity usado
// es el del patch si viene, si no el almacenado. Un patch que solo cambia
// minQuantity deja el status intacto aunque quede desactualizado (ventana de
// inconsistencia conocida y preservada).
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Quantity != nil && in.Status == nil {
		minQuantity := item.MinQuantity
		if in.MinQuantity != nil {
			minQuantity = *in.MinQuantity
		}
		item.Status = stock.Derive(*in.Quantity, minQuantity)
	}
	if in.Status != nil {
		item.Status = *in.Status
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.SKU != nil {
		item.SKU = *in.SKU
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.MinQuantity != nil {
		item.MinQuantity = *in.MinQuantity
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Location != nil {
		item.Location = *in.Location
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina un ítem por ID; ErrNotFound si no existe.
func (uc *ItemUseCase) Delete(id string) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List lista ítems con filtros y paginación. search es un OR case-insensitive
// sobre name/sku/description; category substring case-insensitive; status
// match exacto; todos combinados con AND. Orden: created_at DESC.
func (uc *ItemUseCase) List(page, limit int, filter repository.ItemFilter) (*dto.ItemListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	items, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return &dto.ItemListResponse{
		Items: out,
		Pagination: dto.Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: (total + limit - 1) / limit,
		},
	}, nil
}

// LowStock devuelve todos los ítems LOW_STOCK u OUT_OF_STOCK ordenados por
// cantidad ascendente, sin paginar.
func (uc *ItemUseCase) LowStock() ([]dto.ItemResponse, error) {
	items, err := uc.repo.ListLowStock()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return out, nil
}

// Stats devuelve el total y los conteos por estado. Son cuatro consultas
// independientes sin snapshot compartido: bajo escrituras concurrentes los
// números pueden no cuadrar entre sí.
func (uc *ItemUseCase) Stats() (*dto.StatsResponse, error) {
	total, err := uc.repo.Count(repository.ItemFilter{})
	if err != nil {
		return nil, err
	}
	inStock, err := uc.repo.CountByStatus(entity.StatusInStock)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.repo.CountByStatus(entity.StatusLowStock)
	if err != nil {
		return nil, err
	}
	outOfStock, err := uc.repo.CountByStatus(entity.StatusOutOfStock)
	if err != nil {
		return nil, err
	}
	return &dto.StatsResponse{
		Total:      total,
		InStock:    inStock,
		LowStock:   lowStock,
		OutOfStock: outOfStock,
	}, nil
}

func toItemResponse(it *entity.InventoryItem) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		SKU:         it.SKU,
		Description: it.Description,
		Quantity:    it.Quantity,
		MinQuantity: it.MinQuantity,
		Price:       it.Price,
		Category:    it.Category,
		Location:    it.Location,
		Status:      it.Status,
		CreatedBy: dto.CreatorResponse{
			ID:       it.CreatedBy.ID,
			Username: it.CreatedBy.Username,
			Role:     it.CreatedBy.Role,
		},
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}
