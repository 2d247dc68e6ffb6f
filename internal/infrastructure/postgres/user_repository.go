package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/stocktrack/internal/domain"
	"github.com/tu-usuario/stocktrack/internal/domain/entity"
	"github.com/tu-usuario/stocktrack/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, username, password_hash, role, is_active, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste un nuevo usuario. ErrUsernameTaken si el username ya existe.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, username, password_hash, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Username, user.PasswordHash, user.Role, user.Active,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID; (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.findOne(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetActiveByUsername obtiene un usuario ACTIVO por username. Es el lookup de
// autenticación: un usuario desactivado no aparece aquí.
func (r *UserRepo) GetActiveByUsername(username string) (*entity.User, error) {
	return r.findOne(`SELECT `+userColumns+` FROM users WHERE username = $1 AND is_active = true`, username)
}

// FindAnyByRole devuelve algún usuario con el rol dado, o (nil, nil).
func (r *UserRepo) FindAnyByRole(role entity.Role) (*entity.User, error) {
	return r.findOne(`SELECT `+userColumns+` FROM users WHERE role = $1 LIMIT 1`, role)
}

func (r *UserRepo) findOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.Active,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// List lista todas las cuentas ordenadas por fecha de creación descendente.
func (r *UserRepo) List() ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.Active, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// SetActive fija el flag de actividad y devuelve la fila actualizada.
// ErrUserNotFound si el id no existe.
func (r *UserRepo) SetActive(id string, active bool) (*entity.User, error) {
	query := `
		UPDATE users SET is_active = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, id, active).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.Active,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("set user active: %w", err)
	}
	return &u, nil
}

// UpdateLastLogin refresca updated_at como marca de último acceso.
func (r *UserRepo) UpdateLastLogin(id string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE users SET updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}
