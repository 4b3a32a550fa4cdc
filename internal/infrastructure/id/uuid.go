package id

import "github.com/google/uuid"

// Generator mints unique identifiers for orders, receipts and gateway
// transactions.
type Generator interface {
	NewID() string
}

type uuidGenerator struct{}

func NewUUIDGenerator() Generator { return uuidGenerator{} }

func (uuidGenerator) NewID() string { return uuid.NewString() }
