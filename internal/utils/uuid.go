// Package utils holds small shared helpers with no better home.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered request identifiers for pending
// gateway calls.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
