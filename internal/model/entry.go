package model

import "time"

type Entry struct {
	ID        int64
	Headword  string
	MeaningEN *string
	MeaningES *string
	Notes     *string
	Level     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TopicRef is the lightweight topic association carried by search results.
type TopicRef struct {
	ID   int64
	Name string
}

// SearchHit is an entry matched by ranked search together with its topics.
// PrimaryTopic is the first associated topic that is not the catch-all
// "mixed" topic, falling back to the first association.
type SearchHit struct {
	Entry        Entry
	PrimaryTopic *TopicRef
	TopicIDs     []int64
}
