package service

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"oceanpanel/internal/models"
)

// ErrMissingFields is returned when a feedback submission lacks a name or a
// message.
var ErrMissingFields = errors.New("service: name and message are required")

// Board holds visitor feedback in memory. Entries live for the process
// lifetime only; a restart starts with an empty board.
type Board struct {
	mu       sync.RWMutex
	comments []models.Comment
}

func NewBoard() *Board {
	return &Board{}
}

// Add validates and stores one comment, returning it with its assigned ID and
// timestamp.
func (b *Board) Add(topic, fullName, institution, message string) (models.Comment, error) {
	fullName = strings.TrimSpace(fullName)
	message = strings.TrimSpace(message)
	if fullName == "" || message == "" {
		return models.Comment{}, ErrMissingFields
	}

	c := models.Comment{
		ID:          uuid.NewString(),
		Topic:       strings.TrimSpace(topic),
		FullName:    fullName,
		Institution: strings.TrimSpace(institution),
		Message:     message,
		CreatedAt:   time.Now().UTC(),
	}

	b.mu.Lock()
	b.comments = append(b.comments, c)
	b.mu.Unlock()
	return c, nil
}

// List returns all comments, newest first. Entries are appended in arrival
// order, so reversing gives the display order.
func (b *Board) List() []models.Comment {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]models.Comment, len(b.comments))
	for i, c := range b.comments {
		out[len(b.comments)-1-i] = c
	}
	return out
}
