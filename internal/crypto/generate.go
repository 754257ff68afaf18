package crypto

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

// GeneratePasswords generates numPasswords random passwords of passwordLen
// characters each, every character drawn uniformly from charset. The caller
// guarantees a non-empty charset and positive length and count.
func GeneratePasswords(charset []byte, passwordLen, numPasswords int) ([]string, error) {
	return generatePasswords(rand.Reader, charset, passwordLen, numPasswords)
}

// generatePasswords draws one big random integer covering the whole batch
// and reads it back as base-|charset| digits, least significant first.
// Sampling digits from a single oversized draw sidesteps per-character
// modulo bias.
func generatePasswords(entropy io.Reader, charset []byte, passwordLen, numPasswords int) ([]string, error) {
	base := big.NewInt(int64(len(charset)))
	totalChars := passwordLen * numPasswords

	// One byte of headroom beyond the bits strictly needed to cover
	// base^totalChars outcomes keeps the leftover range bias negligible.
	numBits := new(big.Int).Exp(base, big.NewInt(int64(totalChars)), nil).BitLen()
	numBytes := numBits/8 + 1

	buf := make([]byte, numBytes)
	if _, err := io.ReadFull(entropy, buf); err != nil {
		return nil, errors.Wrap(err, "reading entropy")
	}

	// The buffer is a little-endian integer; big.Int wants big-endian.
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	value := new(big.Int).SetBytes(buf)

	rem := new(big.Int)
	passwords := make([]string, 0, numPasswords)
	password := make([]byte, passwordLen)
	for i := 0; i < numPasswords; i++ {
		for j := range password {
			value.DivMod(value, base, rem)
			password[j] = charset[rem.Uint64()]
		}
		passwords = append(passwords, string(password))
	}
	return passwords, nil
}
