package entity

import "time"

// Patient represents a patient demographic record.
// Appointments and visits reference patients by integer foreign key;
// relationship traversal happens through repository queries, never here.
type Patient struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName   string    `gorm:"type:varchar(255);index" json:"first_name"`
	LastName    string    `gorm:"type:varchar(255);index" json:"last_name"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PhoneNumber string    `gorm:"type:varchar(20)" json:"phone_number"`
	DateOfBirth time.Time `gorm:"type:date" json:"date_of_birth"`
	Address     string    `gorm:"type:text" json:"address"`
	Gender      string    `gorm:"type:varchar(30)" json:"gender"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender constants
const (
	GenderMale        = "Male"
	GenderFemale      = "Female"
	GenderOther       = "Other"
	GenderUndisclosed = "Prefer not to say"
)
