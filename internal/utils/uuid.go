// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// UUIDGenerator hands out request trace ids. Ids are UUIDv7 so they sort by
// creation time in the access log.
type UUIDGenerator struct {
	next func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{next: uuid.NewV7}
}

// Generate never fails: when the time-ordered source errors a random
// UUIDv4 is returned instead.
func (g *UUIDGenerator) Generate() string {
	id, err := g.next()
	if err != nil {
		id = uuid.New()
	}
	return id.String()
}
