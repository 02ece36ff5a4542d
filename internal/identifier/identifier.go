// Package identifier produces candidate account ids: 6 decimal digits for
// students, 6 uppercase letters for professors. Candidates are not checked
// for collisions; the accounts table's primary key enforces uniqueness and
// the registration flow retries on conflict.
package identifier

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	idLen   = 6
	digits  = "0123456789"
	letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Generator is the candidate-id source. The zero value is ready to use;
// services take it behind a small interface so tests can force collisions.
type Generator struct{}

func (Generator) NewStudentID() string {
	return randomString(idLen, digits)
}

func (Generator) NewProfessorID() string {
	return randomString(idLen, letters)
}

// randomString draws length characters uniformly from charset using the
// process-wide CSPRNG. A failing CSPRNG leaves nothing sensible to do.
func randomString(length int, charset string) string {
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			panic(fmt.Sprintf("failed to generate random string: %v", err))
		}
		b[i] = charset[n.Int64()]
	}
	return string(b)
}
