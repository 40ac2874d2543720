package models

import "time"

type ChangeKind string

const (
	BookCreated ChangeKind = "created"
	BookUpdated ChangeKind = "updated"
	BookDeleted ChangeKind = "deleted"
)

// ChangeEvent records a successful mutation of the catalog.
type ChangeEvent struct {
	Kind   ChangeKind `json:"kind"`
	BookID string     `json:"book_id"`
	Name   string     `json:"name"`
	At     time.Time  `json:"at"`
}
