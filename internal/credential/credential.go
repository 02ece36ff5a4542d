// Package credential derives and verifies stored password credentials.
//
// A credential is the pair (hash, salt): a fresh 16-byte random salt and the
// PBKDF2 (HMAC-SHA-256, 1000 iterations) derivation of the password over it,
// both base64-encoded for storage. Verification recomputes the derivation
// with the stored salt and compares in constant time.
package credential

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/betauni/betauni/internal/domain"
	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLen    = 16
	keyLen     = 32
	iterations = 1000
)

// ErrInvalidData means a stored hash or salt could not be decoded. It is a
// data-integrity failure, distinct from a plain password mismatch.
var ErrInvalidData = errors.New("credential: invalid stored credential data")

// ErrEmptyPassword rejects empty plaintexts before any derivation happens.
var ErrEmptyPassword = errors.New("credential: empty password")

// Derive builds a credential for a new password with a fresh random salt.
func Derive(plaintext string) (domain.Credential, error) {
	if plaintext == "" {
		return domain.Credential{}, ErrEmptyPassword
	}

	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return domain.Credential{}, fmt.Errorf("credential: reading salt: %w", err)
	}

	return domain.Credential{
		Hash: base64.StdEncoding.EncodeToString(derive(plaintext, salt)),
		Salt: base64.StdEncoding.EncodeToString(salt),
	}, nil
}

// DeriveWithSalt recomputes the credential for plaintext using an existing
// base64-encoded salt. Used during verification.
func DeriveWithSalt(plaintext, encodedSalt string) (domain.Credential, error) {
	if plaintext == "" {
		return domain.Credential{}, ErrEmptyPassword
	}

	salt, err := base64.StdEncoding.DecodeString(encodedSalt)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	return domain.Credential{
		Hash: base64.StdEncoding.EncodeToString(derive(plaintext, salt)),
		Salt: encodedSalt,
	}, nil
}

// Verify reports whether plaintext matches the stored credential. A mismatch
// is a normal false; only undecodable stored data is an error, so a
// derivation failure can never pass as authenticated.
func Verify(plaintext, storedHash, storedSalt string) (bool, error) {
	want, err := base64.StdEncoding.DecodeString(storedHash)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	recomputed, err := DeriveWithSalt(plaintext, storedSalt)
	if err != nil {
		return false, err
	}
	got, err := base64.StdEncoding.DecodeString(recomputed.Hash)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

func derive(plaintext string, salt []byte) []byte {
	return pbkdf2.Key([]byte(plaintext), salt, iterations, keyLen, sha256.New)
}
