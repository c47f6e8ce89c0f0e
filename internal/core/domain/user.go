package domain

import (
	"time"

	"github.com/uptrace/bun"
)

// Role is a user's authorization role. Roles are flat: ADMIN does not
// implicitly satisfy USER-only routes.
type Role = string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleUser
}

// User models an authenticated actor in the system. Rows are soft-deleted:
// a removed user keeps its row (and its unique email) with deleted_at set.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`

	ID           int64      `bun:"id,pk,autoincrement" json:"id"`
	Email        string     `bun:"email,notnull,unique" json:"email"`
	PasswordHash string     `bun:"password,notnull" json:"-"`
	FirstName    string     `bun:"first_name,notnull" json:"firstName"`
	LastName     string     `bun:"last_name,notnull" json:"lastName"`
	Role         Role       `bun:"role,notnull" json:"role"`
	CreatedAt    time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"createdAt"`
	UpdatedAt    time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updatedAt"`
	DeletedAt    *time.Time `bun:"deleted_at,soft_delete,nullzero" json:"-"`
}
