package domain

// UserStatus mirrors the platform's account standing codes.
type UserStatus int

const (
	UserStatusValid UserStatus = iota
	UserStatusForbidden
	UserStatusNotVerified
)

type UserRole string

const (
	RoleAdministrator UserRole = "administrator"
	RoleRegular       UserRole = "regular"
)

// User is the resolved caller identity, fetched fresh per request.
type User struct {
	ID     int64      `db:"id"`
	Name   string     `db:"name"`
	Email  string     `db:"email"`
	Status UserStatus `db:"status"`
	Role   UserRole   `db:"role"`
}
