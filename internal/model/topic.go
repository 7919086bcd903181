package model

import "time"

type Topic struct {
	ID          int64
	Name        string
	IsSuggested bool
	CreatedAt   time.Time
}
