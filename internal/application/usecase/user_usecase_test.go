package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/stocktrack/internal/application/dto"
	"github.com/tu-usuario/stocktrack/internal/application/usecase"
	"github.com/tu-usuario/stocktrack/internal/domain"
	"github.com/tu-usuario/stocktrack/internal/domain/entity"
	"github.com/tu-usuario/stocktrack/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del puerto UserRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users   []*entity.User
	creates int // cuántas veces se llamó Create (para verificar fail-closed)
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (f *fakeUserRepo) Create(user *entity.User) error {
	f.creates++
	for _, u := range f.users {
		if u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}
	cp := *user
	f.users = append(f.users, &cp)
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetActiveByUsername(username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username && u.Active {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAnyByRole(role entity.Role) (*entity.User, error) {
	for _, u := range f.users {
		if u.Role == role {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(f.users))
	for _, u := range f.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeUserRepo) SetActive(id string, active bool) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			u.Active = active
			u.UpdatedAt = time.Now()
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) UpdateLastLogin(id string) error {
	for _, u := range f.users {
		if u.ID == id {
			u.UpdatedAt = time.Now()
		}
	}
	return nil
}

func seedUser(repo *fakeUserRepo, id, username string, role entity.Role, active bool, password string) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	repo.users = append(repo.users, &entity.User{
		ID:           id,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Active:       active,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta de cuentas con política de roles
// ──────────────────────────────────────────────────────────────────────────────

// Un ADMIN no puede crear otro ADMIN; la política corta ANTES de persistir.
func TestUserCreate_AdminNoCreaAdmin_FailClosed(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(entity.RoleAdmin, dto.CreateUserRequest{
		Username: "nuevo-admin", Password: "secreto123", Role: entity.RoleAdmin,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Zero(t, repo.creates, "no debe llamarse al store cuando la política falla")
}

// Nadie crea SUPER_ADMIN por la API, ni siquiera otro SUPER_ADMIN.
func TestUserCreate_SuperAdminNuncaSeCreaPorAPI(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(entity.RoleSuperAdmin, dto.CreateUserRequest{
		Username: "otro-root", Password: "secreto123", Role: entity.RoleSuperAdmin,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Zero(t, repo.creates)
}

func TestUserCreate_SuperAdminCreaAdmin(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(entity.RoleSuperAdmin, dto.CreateUserRequest{
		Username: "nuevo-admin", Password: "secreto123", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)
	assert.True(t, out.IsActive, "activo por defecto")
}

// Role ausente equivale a USER.
func TestUserCreate_RoleVacioEsUser(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(entity.RoleAdmin, dto.CreateUserRequest{
		Username: "empleado", Password: "secreto123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, out.Role)
}

// El password se persiste hasheado, nunca en claro.
func TestUserCreate_PasswordQuedaHasheado(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(entity.RoleAdmin, dto.CreateUserRequest{
		Username: "empleado", Password: "secreto123",
	})
	require.NoError(t, err)
	require.Len(t, repo.users, 1)
	stored := repo.users[0]
	assert.NotEqual(t, "secreto123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
}

func TestUserCreate_UsernameDuplicado(t *testing.T) {
	repo := &fakeUserRepo{}
	seedUser(repo, "u1", "empleado", entity.RoleUser, true, "x")
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(entity.RoleAdmin, dto.CreateUserRequest{
		Username: "empleado", Password: "secreto123",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado y activación
// ──────────────────────────────────────────────────────────────────────────────

// Ninguna proyección incluye jamás el hash del password.
func TestUserList_SinHash(t *testing.T) {
	repo := &fakeUserRepo{}
	seedUser(repo, "u1", "ana", entity.RoleAdmin, true, "pw-ana")
	seedUser(repo, "u2", "beto", entity.RoleUser, false, "pw-beto")
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.List()
	require.NoError(t, err)
	require.Len(t, out, 2)
	// dto.UserResponse no tiene campo de hash; verificamos además que los
	// datos visibles son los esperados.
	assert.Equal(t, "ana", out[0].Username)
	assert.True(t, out[0].IsActive)
	assert.Equal(t, "beto", out[1].Username)
	assert.False(t, out[1].IsActive)
}

func TestUserSetActive(t *testing.T) {
	repo := &fakeUserRepo{}
	seedUser(repo, "u1", "ana", entity.RoleUser, true, "x")
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.SetActive("u1", false)
	require.NoError(t, err)
	assert.False(t, out.IsActive)

	_, err = uc.SetActive("no-existe", true)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
