// Package fetch downloads prebuilt provider libraries from GitHub releases
// and verifies them against the release manifest.
package fetch

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
)

// VerifyChecksum hashes a file already on disk and compares it to the
// manifest digest.
func VerifyChecksum(filePath, expectedSHA256 string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file for checksum: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return fmt.Errorf("failed to read file for checksum: %w", err)
	}
	return matchDigest(filePath, expectedSHA256, hex.EncodeToString(h.Sum(nil)))
}

// matchDigest compares hex digests ignoring case and surrounding space. A
// manifest entry without a digest never matches.
func matchDigest(file, expected, actual string) error {
	expected = strings.ToLower(strings.TrimSpace(expected))
	if expected == "" || expected != actual {
		return &ChecksumError{File: file, Expected: expected, Actual: actual}
	}
	return nil
}

// ChecksumError reports a digest that does not match the manifest.
type ChecksumError struct {
	File     string
	Expected string
	Actual   string
}

func (e *ChecksumError) Error() string {
	expected := e.Expected
	if expected == "" {
		expected = "(none in manifest)"
	}
	return fmt.Sprintf("checksum mismatch for %s\nExpected: %s\nActual:   %s", e.File, expected, e.Actual)
}
