package model

import "time"

type User struct {
	ID          int64
	GoogleSub   string
	Email       string
	Name        *string
	AvatarURL   *string
	CreatedAt   time.Time
	LastLoginAt *time.Time
}
