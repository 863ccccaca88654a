package entity

import "time"

// Doctor represents a practicing physician record.
type Doctor struct {
	ID             int       `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName      string    `gorm:"type:varchar(255);index" json:"first_name"`
	LastName       string    `gorm:"type:varchar(255);index" json:"last_name"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PhoneNumber    string    `gorm:"type:varchar(20)" json:"phone_number"`
	Specialization string    `gorm:"type:varchar(100);index" json:"specialization"`
	LicenseNumber  string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}
