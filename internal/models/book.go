package models

import (
	"fmt"
	"time"
)

type Book struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Year       int       `json:"year"`
	Author     string    `json:"author"`
	Summary    string    `json:"summary"`
	Publisher  string    `json:"publisher"`
	PageCount  int       `json:"pageCount"`
	ReadPage   int       `json:"readPage"`
	Finished   bool      `json:"finished"`
	Reading    bool      `json:"reading"`
	InsertedAt time.Time `json:"insertedAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// BookSummary is the reduced projection returned when listing books.
type BookSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
}

// RefreshFinished recomputes the derived finished flag.
func (b *Book) RefreshFinished() {
	b.Finished = b.ReadPage == b.PageCount
}

func (b Book) Brief() BookSummary {
	return BookSummary{
		ID:        b.ID,
		Name:      b.Name,
		Publisher: b.Publisher,
	}
}

func (b Book) String() string {
	status := "unread"
	switch {
	case b.Finished:
		status = "finished"
	case b.Reading:
		status = "reading"
	}
	return fmt.Sprintf("\"%s\" (%d) [%s, %d/%d]", b.Name, b.Year, status, b.ReadPage, b.PageCount)
}
