package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/theflywheel/hashkv"
)

// Record is the result of the user demo as written to disk.
type Record struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	CombinedKey string `json:"combined_key"`
	hashkv.Fingerprint
}

// NewRecord validates the input and fingerprints "name|email".
func NewRecord(name, email string, size int) (Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Record{}, errors.New("name is required")
	}
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return Record{}, fmt.Errorf("invalid email %q: %w", email, err)
	}

	key := name + "|" + addr.Address
	fp, err := hashkv.FingerprintOf(hashkv.SimpleHash(), key, size)
	if err != nil {
		return Record{}, err
	}

	return Record{
		ID:          uuid.NewString(),
		Name:        name,
		Email:       addr.Address,
		CombinedKey: key,
		Fingerprint: fp,
	}, nil
}

// Save writes the record as indented JSON
func (r Record) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
