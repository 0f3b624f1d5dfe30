package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// APIKey is a service credential. KeyID is the public identifier presented
// at /api/auth/token; only the bcrypt hash of the secret is stored.
type APIKey struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
	KeyID      string         `gorm:"uniqueIndex;not null" json:"key_id"`
	SecretHash string         `gorm:"not null" json:"-"`
	Label      string         `json:"label"`
	Role       string         `gorm:"default:'user';index" json:"role"` // "admin", "user"
	IsActive   bool           `gorm:"default:true" json:"is_active"`
	LastUsedAt *time.Time     `json:"last_used_at,omitempty"`
}

// HashSecret hashes the key secret using bcrypt
func (k *APIKey) HashSecret(secret string) error {
	hashedSecret, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	k.SecretHash = string(hashedSecret)
	return nil
}

// CheckSecret compares a presented secret with the stored hash
func (k *APIKey) CheckSecret(secret string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(k.SecretHash), []byte(secret))
	return err == nil
}

// LLMUsageLog tracks token consumption of the boundary LLM calls
type LLMUsageLog struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Purpose      string    `gorm:"not null;index" json:"purpose"` // "enhance", "title"
	Provider     string    `gorm:"not null" json:"provider"`
	Model        string    `gorm:"not null" json:"model"`
	InputTokens  int64     `gorm:"not null" json:"input_tokens"`
	OutputTokens int64     `gorm:"not null" json:"output_tokens"`
	TotalTokens  int64     `gorm:"not null" json:"total_tokens"`
	CostUSD      float64   `gorm:"default:0" json:"cost_usd"`
	Fallback     bool      `gorm:"default:false" json:"fallback"`
	DurationMS   int64     `gorm:"not null" json:"duration_ms"`
	RequestID    string    `gorm:"index" json:"request_id"`
	UserID       string    `gorm:"index" json:"user_id"`
}
