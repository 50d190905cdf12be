package models

import "gorm.io/gorm"

// User represents a registered account. The password hash never leaves
// the server; subscription status is the only field mutated after
// registration.
type User struct {
	gorm.Model
	Email              string `gorm:"unique;not null;size:255" json:"email"`
	PasswordHash       string `gorm:"not null" json:"-"`
	SubscriptionStatus string `gorm:"not null;default:inactive" json:"subscription_status"`
}
