package repository

import "github.com/jhoicas/commodities-api/internal/domain/entity"

// UserRepository define el puerto de lectura para User (DIP).
// La lista de credenciales es fija y de solo lectura: no hay escrituras.
type UserRepository interface {
	// FindByEmail devuelve una copia del usuario o domain.ErrUserNotFound.
	FindByEmail(email string) (*entity.User, error)
	// FindByID devuelve una copia del usuario o domain.ErrUserNotFound.
	FindByID(id string) (*entity.User, error)
}
