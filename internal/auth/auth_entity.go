package auth

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Email      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password   string    `gorm:"type:varchar(255);not null"`
	Role       string    `gorm:"type:varchar(20);not null;default:'viewer'"`
	IsVerified bool      `gorm:"not null;default:false"`

	// Kode verifikasi dan reset hanya disimpan dalam bentuk hash bcrypt
	VerificationCodeHash  string `gorm:"type:varchar(255)"`
	VerificationExpiresAt *time.Time
	ResetCodeHash         string `gorm:"type:varchar(255)"`
	ResetExpiresAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
