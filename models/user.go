package models

// Role is the access level of a [User]. It is stored as a string so that new
// roles only need a new constant and, when they gate routes, a new guard.
type Role string

const (
	// RoleAdmin may create, update and delete any user.
	RoleAdmin Role = "Admin"

	// RoleUser may read the directory and update its own record.
	RoleUser Role = "User"
)

// Roles lists every known role.
var Roles = []Role{RoleAdmin, RoleUser}

// Valid reports whether r is one of the known [Roles].
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// User is a directory entry persisted in the "users" table.
type User struct {
	// ID is the primary key of the user.
	ID int32 `json:"id" db:"id"`

	// Name is the non-empty display name of the user.
	Name string `json:"name" db:"name"`

	// Role is either [RoleAdmin] or [RoleUser].
	Role Role `json:"role" db:"role"`

	// Password holds the bcrypt hash of the user's credential.
	// It is never serialized into outbound JSON.
	Password string `json:"-" db:"password"`
}

// UserForCreate is the inbound payload of user creation and update.
// Password arrives in plain text and is replaced with its hash before it
// reaches the store.
type UserForCreate struct {
	ID       int32  `json:"id" validate:"gte=0"`
	Name     string `json:"name" validate:"required"`
	Role     Role   `json:"role" validate:"required,oneof=Admin User"`
	Password string `json:"password" validate:"required"`
}

// ToUser converts the payload into a [User] carrying the same fields.
func (u UserForCreate) ToUser() User {
	return User{
		ID:       u.ID,
		Name:     u.Name,
		Role:     u.Role,
		Password: u.Password,
	}
}

// Credentials is the login payload: a user id and a plain-text password.
type Credentials struct {
	ID       int32  `json:"id"`
	Password string `json:"password"`
}

// DeleteRequest identifies the user removed by DELETE /users.
type DeleteRequest struct {
	ID int32 `json:"id" validate:"gt=0"`
}
