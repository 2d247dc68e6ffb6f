// Package rbac contiene la política de autorización por roles.
// Decisiones puras: sin I/O ni estado; la persistencia y el transporte
// consultan estas funciones antes de mutar nada.
package rbac

import (
	"github.com/tu-usuario/stocktrack/internal/domain"
	"github.com/tu-usuario/stocktrack/internal/domain/entity"
)

// rank tabla explícita de privilegio. Mayor valor = más privilegio.
// Se usa una tabla cerrada en vez de comparar strings para que las reglas
// sean exhaustivas y verificables en aislamiento.
var rank = map[entity.Role]int{
	entity.RoleUser:       1,
	entity.RoleAdmin:      2,
	entity.RoleSuperAdmin: 3,
}

// AuthorizeCreate decide si un actor con rol creator puede crear una cuenta
// con rol target. Reglas:
//   - nadie crea SUPER_ADMIN por la vía normal (solo existe vía seed),
//   - solo SUPER_ADMIN crea ADMIN,
//   - cualquier actor autorizado crea USER.
//
// Falla cerrado: cualquier violación devuelve domain.ErrForbidden y el
// llamador no debe persistir nada.
func AuthorizeCreate(creator, target entity.Role) error {
	if target == entity.RoleSuperAdmin {
		return domain.ErrForbidden
	}
	if target == entity.RoleAdmin && creator != entity.RoleSuperAdmin {
		return domain.ErrForbidden
	}
	return nil
}

// CanManageUsers indica si el rol puede listar cuentas, crear usuarios y
// activar/desactivar. No hay chequeo por rol objetivo aquí; eso es cosa de
// AuthorizeCreate.
func CanManageUsers(r entity.Role) bool {
	return rank[r] >= rank[entity.RoleAdmin]
}
