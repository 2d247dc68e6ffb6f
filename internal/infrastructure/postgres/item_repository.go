package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/stocktrack/internal/domain"
	"github.com/tu-usuario/stocktrack/internal/domain/entity"
	"github.com/tu-usuario/stocktrack/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `
	i.id, i.name, i.sku, i.description, i.quantity, i.min_quantity, i.price,
	i.category, i.location, i.status, i.created_by_id,
	u.id, u.username, u.role,
	i.created_at, i.updated_at`

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL. Las
// lecturas incluyen el resumen del usuario creador vía JOIN con users.
type ItemRepo struct {
	pool *pgxpool.Pool
}

// NewItemRepository construye el adaptador de persistencia para inventario.
func NewItemRepository(pool *pgxpool.Pool) *ItemRepo {
	return &ItemRepo{pool: pool}
}

// Create persiste un nuevo ítem. ErrDuplicate si el id colisiona.
func (r *ItemRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, name, sku, description, quantity, min_quantity, price, category, location, status, created_by_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.pool.Exec(context.Background(), query,
		item.ID, item.Name, item.SKU, item.Description, item.Quantity, item.MinQuantity,
		item.Price, item.Category, item.Location, item.Status, item.CreatedByID,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID; (nil, nil) si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM inventory_items i
		JOIN users u ON u.id = i.created_by_id
		WHERE i.id = $1`
	row := r.pool.QueryRow(context.Background(), query, id)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// Update persiste los campos mutables del ítem.
func (r *ItemRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET name = $2, sku = $3, description = $4, quantity = $5, min_quantity = $6,
		    price = $7, category = $8, location = $9, status = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		item.ID, item.Name, item.SKU, item.Description, item.Quantity, item.MinQuantity,
		item.Price, item.Category, item.Location, item.Status, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete elimina un ítem por ID.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// buildFilter arma las cláusulas WHERE posicionales para ItemFilter: search es
// un OR (name/sku/description, ILIKE), category substring ILIKE y status match
// exacto; se combinan con AND.
func buildFilter(filter repository.ItemFilter) (string, []any) {
	var clauses []string
	var args []any
	next := func() string { return "$" + strconv.Itoa(len(args)+1) }

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		p := "$" + strconv.Itoa(len(args))
		clauses = append(clauses, "(i.name ILIKE "+p+" OR i.sku ILIKE "+p+" OR i.description ILIKE "+p+")")
	}
	if filter.Category != "" {
		clauses = append(clauses, "i.category ILIKE "+next())
		args = append(args, "%"+filter.Category+"%")
	}
	if filter.Status != "" {
		clauses = append(clauses, "i.status = "+next())
		args = append(args, filter.Status)
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// List aplica filter con orden created_at DESC y paginación limit/offset.
func (r *ItemRepo) List(filter repository.ItemFilter, limit, offset int) ([]*entity.InventoryItem, error) {
	where, args := buildFilter(filter)
	query := `
		SELECT ` + itemColumns + `
		FROM inventory_items i
		JOIN users u ON u.id = i.created_by_id` + where + `
		ORDER BY i.created_at DESC
		LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)
	return r.queryItems(query, args...)
}

// Count cuenta los ítems que cumplen filter (sin paginación).
func (r *ItemRepo) Count(filter repository.ItemFilter) (int, error) {
	where, args := buildFilter(filter)
	query := `SELECT COUNT(*) FROM inventory_items i` + where
	var n int
	if err := r.pool.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

// CountByStatus cuenta los ítems con el estado dado.
func (r *ItemRepo) CountByStatus(status entity.Status) (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM inventory_items WHERE status = $1`, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count items by status: %w", err)
	}
	return n, nil
}

// ListLowStock devuelve LOW_STOCK y OUT_OF_STOCK ordenados por cantidad
// ascendente, sin paginar.
func (r *ItemRepo) ListLowStock() ([]*entity.InventoryItem, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM inventory_items i
		JOIN users u ON u.id = i.created_by_id
		WHERE i.status = $1 OR i.status = $2
		ORDER BY i.quantity ASC`
	return r.queryItems(query, entity.StatusLowStock, entity.StatusOutOfStock)
}

func (r *ItemRepo) queryItems(query string, args ...any) ([]*entity.InventoryItem, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

func scanItem(row pgx.Row) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := row.Scan(
		&it.ID, &it.Name, &it.SKU, &it.Description, &it.Quantity, &it.MinQuantity,
		&it.Price, &it.Category, &it.Location, &it.Status, &it.CreatedByID,
		&it.CreatedBy.ID, &it.CreatedBy.Username, &it.CreatedBy.Role,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}
