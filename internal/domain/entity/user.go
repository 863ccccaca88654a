package entity

import "time"

// User represents the centralized authentication table.
// Accounts are never physically deleted; deactivation flips IsActive.
type User struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Role      string    `gorm:"type:varchar(50);not null;index" json:"role"`
	IsActive  *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Role constants
const (
	RoleAdmin        = "admin"
	RoleDoctor       = "doctor"
	RoleNurse        = "nurse"
	RoleReceptionist = "receptionist"
	RolePatient      = "patient"
	RolePharmacist   = "pharmacist"
)

// Roles is the closed set of valid roles.
var Roles = []string{
	RoleAdmin,
	RoleDoctor,
	RoleNurse,
	RoleReceptionist,
	RolePatient,
	RolePharmacist,
}

// IsValidRole reports whether role belongs to the closed role set.
func IsValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}
