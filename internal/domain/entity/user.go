package entity

// Roles válidos para User.
const (
	RoleManager     = "manager"
	RoleStorekeeper = "storekeeper"
)

// User representa un usuario del sistema. Los usuarios provienen únicamente
// de la lista fija de credenciales y son inmutables después de la carga.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano después de la carga
	Name         string
	Role         string // manager, storekeeper
}
