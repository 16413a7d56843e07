package model

import (
	"fmt"

	"github.com/google/uuid"
)

// IDSource hands out identifiers that are unique within a running session.
type IDSource interface {
	NextID() string
}

// UUIDSource issues time-ordered UUIDv7 strings.
type UUIDSource struct{}

func (UUIDSource) NextID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// SequenceSource issues prefix-1, prefix-2, ... and is meant for tests and fixtures.
type SequenceSource struct {
	Prefix string
	next   int
}

func (s *SequenceSource) NextID() string {
	s.next++
	prefix := s.Prefix
	if prefix == "" {
		prefix = "id"
	}
	return fmt.Sprintf("%s-%d", prefix, s.next)
}
