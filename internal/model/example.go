package model

import "time"

type Example struct {
	ID        int64
	EntryID   int64
	TextEN    string
	TextES    *string
	Rank      int
	CreatedAt time.Time
}
