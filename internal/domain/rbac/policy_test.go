package rbac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/stocktrack/internal/domain"
	"github.com/tu-usuario/stocktrack/internal/domain/entity"
	"github.com/tu-usuario/stocktrack/internal/domain/rbac"
)

// Nadie puede crear un SUPER_ADMIN, sin importar el rango del actor.
func TestAuthorizeCreate_SuperAdminNuncaSeCrea(t *testing.T) {
	for _, creator := range []entity.Role{entity.RoleSuperAdmin, entity.RoleAdmin, entity.RoleUser} {
		err := rbac.AuthorizeCreate(creator, entity.RoleSuperAdmin)
		assert.ErrorIs(t, err, domain.ErrForbidden,
			"creator=%s no debe poder crear SUPER_ADMIN", creator)
	}
}

// Solo SUPER_ADMIN puede crear ADMIN.
func TestAuthorizeCreate_SoloSuperAdminCreaAdmin(t *testing.T) {
	assert.NoError(t, rbac.AuthorizeCreate(entity.RoleSuperAdmin, entity.RoleAdmin))
	assert.ErrorIs(t, rbac.AuthorizeCreate(entity.RoleAdmin, entity.RoleAdmin), domain.ErrForbidden)
	assert.ErrorIs(t, rbac.AuthorizeCreate(entity.RoleUser, entity.RoleAdmin), domain.ErrForbidden)
}

// Crear USER está permitido para cualquier actor (el gate de ruta ya exige
// ADMIN o SUPER_ADMIN antes de llegar aquí).
func TestAuthorizeCreate_CrearUserSiemprePasa(t *testing.T) {
	for _, creator := range []entity.Role{entity.RoleSuperAdmin, entity.RoleAdmin, entity.RoleUser} {
		assert.NoError(t, rbac.AuthorizeCreate(creator, entity.RoleUser),
			"creator=%s debe poder crear USER", creator)
	}
}

func TestCanManageUsers(t *testing.T) {
	assert.True(t, rbac.CanManageUsers(entity.RoleSuperAdmin))
	assert.True(t, rbac.CanManageUsers(entity.RoleAdmin))
	assert.False(t, rbac.CanManageUsers(entity.RoleUser))
	assert.False(t, rbac.CanManageUsers(entity.Role("desconocido")))
}
