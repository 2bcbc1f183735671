package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a hostel resident or admin. Email is the natural key:
// lookups and badge updates filter on email, not on the ObjectID.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
	Badge Badge              `bson:"badge,omitempty" json:"badge,omitempty"`
}

// RoleAdmin is the only privileged role; any other value (or none) is a
// regular user.
const RoleAdmin = "admin"

// IsAdmin reports whether the user holds the admin role. A nil user
// (missing record) is never an admin.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
