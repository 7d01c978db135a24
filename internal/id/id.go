// Package id generates unique identifiers for journal records.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// recordPrefix marks ids minted for journal records.
const recordPrefix = "rec"

// NewRecordID creates a unique id for a new journal record.
// Format: rec-nanoid (e.g., "rec-V1StGXR8_Z5jdHi6B-myT").
//
// NanoIDs are URL-friendly and compact (21 characters vs UUID's 36).
// Returns an error if the system lacks entropy for secure random generation.
func NewRecordID() (string, error) {
	nid, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return recordPrefix + "-" + nid, nil
}

// MustNewRecordID is like NewRecordID but panics if generation fails.
// Use only where failure should crash the program (e.g., test setup).
func MustNewRecordID() string {
	nid, err := NewRecordID()
	if err != nil {
		panic(fmt.Sprintf("failed to generate record ID: %v", err))
	}
	return nid
}
