package utils

import (
	"io"
	"log/slog"
	"strings"
)

func Map[A any, B any](input []A, mapper func(A) B) []B {
	output := make([]B, len(input))
	for i, item := range input {
		output[i] = mapper(item)
	}
	return output
}

// ContainsFold reports whether input holds item, ignoring case.
func ContainsFold(input []string, item string) bool {
	for _, i := range input {
		if strings.EqualFold(i, item) {
			return true
		}
	}
	return false
}

// Page returns the slice window starting at offset with at most limit items.
func Page[A any](input []A, limit int, offset int) []A {
	if offset >= len(input) {
		return make([]A, 0)
	}
	end := offset + limit
	if end > len(input) {
		end = len(input)
	}
	return input[offset:end]
}

// CleanList trims every entry and drops empty ones and case-insensitive duplicates.
func CleanList(input []string) []string {
	output := make([]string, 0, len(input))
	for _, item := range input {
		item = strings.TrimSpace(item)
		if item == "" || ContainsFold(output, item) {
			continue
		}
		output = append(output, item)
	}
	return output
}

func Closer(c io.Closer) func() {
	return func() {
		if err := c.Close(); err != nil {
			slog.Warn("failed to close resource", "error", err)
		}
	}
}
