package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"bookshelf-api/internal/dto"
	"bookshelf-api/internal/models"
)

const idLength = 16

const (
	reasonMissingName  = "Please provide the book name"
	reasonPageOverflow = "readPage cannot be greater than pageCount"
	reasonNegativePage = "pageCount and readPage cannot be negative"
)

// EventPublisher receives catalog mutations. Publish must not block.
type EventPublisher interface {
	Publish(event models.ChangeEvent) bool
}

type nopPublisher struct{}

func (nopPublisher) Publish(models.ChangeEvent) bool { return false }

// Bookshelf holds the book catalog in insertion order.
type Bookshelf struct {
	mu     sync.RWMutex
	books  []*models.Book
	events EventPublisher
	newID  func() (string, error)
	now    func() time.Time
}

type Option func(*Bookshelf)

func WithEvents(p EventPublisher) Option {
	return func(s *Bookshelf) { s.events = p }
}

func WithClock(now func() time.Time) Option {
	return func(s *Bookshelf) { s.now = now }
}

func WithIDGenerator(gen func() (string, error)) Option {
	return func(s *Bookshelf) { s.newID = gen }
}

func NewBookshelf(opts ...Option) *Bookshelf {
	s := &Bookshelf{
		books:  []*models.Book{},
		events: nopPublisher{},
		newID:  func() (string, error) { return gonanoid.New(idLength) },
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddBook validates req and appends a new book, returning its id.
func (s *Bookshelf) AddBook(req dto.CreateBookRequest) (string, error) {
	if err := validateBook(req.Name, req.PageCount, req.ReadPage); err != nil {
		return "", err
	}

	id, err := s.newID()
	if err != nil {
		return "", fmt.Errorf("generate book id: %w", err)
	}

	now := s.now()
	book := &models.Book{
		ID:         id,
		Name:       req.Name,
		Year:       req.Year,
		Author:     req.Author,
		Summary:    req.Summary,
		Publisher:  req.Publisher,
		PageCount:  req.PageCount,
		ReadPage:   req.ReadPage,
		Reading:    req.Reading,
		InsertedAt: now,
		UpdatedAt:  now,
	}
	book.RefreshFinished()

	s.mu.Lock()
	s.books = append(s.books, book)
	s.mu.Unlock()

	s.publish(models.BookCreated, book)
	return id, nil
}

// ListBooks returns summaries of the books matching every supplied filter.
func (s *Bookshelf) ListBooks(query dto.ListBooksQuery) []models.BookSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := []models.BookSummary{}
	for _, book := range s.books {
		if query.Name != nil && !strings.Contains(strings.ToLower(book.Name), strings.ToLower(*query.Name)) {
			continue
		}
		if query.Reading != nil && book.Reading != flagSet(*query.Reading) {
			continue
		}
		if query.Finished != nil && book.Finished != flagSet(*query.Finished) {
			continue
		}
		results = append(results, book.Brief())
	}
	return results
}

func (s *Bookshelf) GetBook(id string) (models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book := s.findBookUnsafe(id)
	if book == nil {
		return models.Book{}, ErrBookNotFound
	}
	return *book, nil
}

// UpdateBook merges req over the stored book. The id is resolved before the
// payload is validated.
func (s *Bookshelf) UpdateBook(id string, req dto.UpdateBookRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	book := s.findBookUnsafe(id)
	if book == nil {
		return ErrBookNotFound
	}

	var name string
	if req.Name != nil {
		name = *req.Name
	}

	updated := *book
	applyUpdate(&updated, req)
	if err := validateBook(name, updated.PageCount, updated.ReadPage); err != nil {
		return err
	}

	updated.RefreshFinished()
	updated.UpdatedAt = s.now()
	*book = updated

	s.publish(models.BookUpdated, book)
	return nil
}

func (s *Bookshelf) DeleteBook(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, book := range s.books {
		if book.ID == id {
			s.books = append(s.books[:i], s.books[i+1:]...)
			s.publish(models.BookDeleted, book)
			return nil
		}
	}

	return ErrBookNotFound
}

func (s *Bookshelf) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.books)
}

func (s *Bookshelf) findBookUnsafe(id string) *models.Book {
	for _, book := range s.books {
		if book.ID == id {
			return book
		}
	}
	return nil
}

func (s *Bookshelf) publish(kind models.ChangeKind, book *models.Book) {
	s.events.Publish(models.ChangeEvent{
		Kind:   kind,
		BookID: book.ID,
		Name:   book.Name,
		At:     s.now(),
	})
}

func applyUpdate(book *models.Book, req dto.UpdateBookRequest) {
	if req.Name != nil {
		book.Name = *req.Name
	}
	if req.Year != nil {
		book.Year = *req.Year
	}
	if req.Author != nil {
		book.Author = *req.Author
	}
	if req.Summary != nil {
		book.Summary = *req.Summary
	}
	if req.Publisher != nil {
		book.Publisher = *req.Publisher
	}
	if req.PageCount != nil {
		book.PageCount = *req.PageCount
	}
	if req.ReadPage != nil {
		book.ReadPage = *req.ReadPage
	}
	if req.Reading != nil {
		book.Reading = *req.Reading
	}
}

// validateBook applies the checks in order; the first failure wins.
func validateBook(name string, pageCount, readPage int) error {
	if name == "" {
		return invalid("name", reasonMissingName)
	}
	if readPage > pageCount {
		return invalid("readPage", reasonPageOverflow)
	}
	if pageCount < 0 || readPage < 0 {
		return invalid("pageCount", reasonNegativePage)
	}
	return nil
}

// flagSet reports whether a boolean filter token means true. Only "1" does.
func flagSet(token string) bool {
	return token == "1"
}
