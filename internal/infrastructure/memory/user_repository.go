package memory

import (
	"github.com/jhoicas/commodities-api/internal/domain"
	"github.com/jhoicas/commodities-api/internal/domain/entity"
	"github.com/jhoicas/commodities-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo lista fija de credenciales en memoria. Solo lectura: los usuarios
// se cargan en la construcción y son inmutables después.
type UserRepo struct {
	users []*entity.User
	clock *Clock
}

// NewUserRepository construye el almacén de usuarios con la lista dada.
func NewUserRepository(clock *Clock, seed []*entity.User) *UserRepo {
	users := make([]*entity.User, 0, len(seed))
	for _, u := range seed {
		users = append(users, cloneUser(u))
	}
	return &UserRepo{users: users, clock: clock}
}

// FindByEmail devuelve una copia del usuario con ese email exacto o
// domain.ErrUserNotFound. Aplica la latencia de login (es la única lectura
// que ocurre en el camino de autenticación).
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	r.clock.Sleep(latencyLogin)

	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// FindByID devuelve una copia del usuario o domain.ErrUserNotFound.
func (r *UserRepo) FindByID(id string) (*entity.User, error) {
	r.clock.Sleep(latencyGet)

	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	return &c
}
