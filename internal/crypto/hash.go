package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	ErrInvalidHashFormat   = errors.New("invalid encoded hash format")
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)

// HashParams configures the Argon2id hashing parameters.
type HashParams struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultHashParams returns recommended Argon2id parameters.
func DefaultHashParams() HashParams {
	return HashParams{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// phcHash is a decoded $argon2id$v=19$m=..,t=..,p=..$<salt>$<key> string.
type phcHash struct {
	params HashParams
	salt   []byte
	key    []byte
}

func (h phcHash) String() string {
	enc := base64.RawStdEncoding
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.params.Memory, h.params.Iterations, h.params.Parallelism,
		enc.EncodeToString(h.salt), enc.EncodeToString(h.key))
}

// derive computes the Argon2id key of secret under h's salt and parameters.
func (h phcHash) derive(secret string) []byte {
	p := h.params
	return argon2.IDKey([]byte(secret), h.salt, p.Iterations, p.Memory, p.Parallelism, p.KeyLength)
}

// HashSecret hashes a generated secret with Argon2id for systems that only
// accept a verifier, and returns it in PHC string form.
func HashSecret(secret string) (string, error) {
	return hashSecret(secret, DefaultHashParams())
}

func hashSecret(secret string, params HashParams) (string, error) {
	h := phcHash{params: params, salt: make([]byte, params.SaltLength)}
	if _, err := rand.Read(h.salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}
	h.key = h.derive(secret)
	return h.String(), nil
}

// VerifySecret reports whether secret matches the PHC encoded Argon2id hash.
// The comparison is constant time.
func VerifySecret(secret, encoded string) (bool, error) {
	h, err := parsePHC(encoded)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(h.key, h.derive(secret)) == 1, nil
}

func parsePHC(encoded string) (phcHash, error) {
	fields := strings.Split(encoded, "$")
	if len(fields) != 6 || fields[0] != "" || fields[1] != "argon2id" {
		return phcHash{}, ErrInvalidHashFormat
	}

	rawVersion, ok := strings.CutPrefix(fields[2], "v=")
	if !ok {
		return phcHash{}, ErrInvalidHashFormat
	}
	version, err := strconv.Atoi(rawVersion)
	if err != nil {
		return phcHash{}, ErrInvalidHashFormat
	}
	if version != argon2.Version {
		return phcHash{}, ErrIncompatibleVersion
	}

	var h phcHash
	for _, kv := range strings.Split(fields[3], ",") {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return phcHash{}, ErrInvalidHashFormat
		}
		var bits int
		var dst func(uint64)
		switch name {
		case "m":
			bits, dst = 32, func(v uint64) { h.params.Memory = uint32(v) }
		case "t":
			bits, dst = 32, func(v uint64) { h.params.Iterations = uint32(v) }
		case "p":
			bits, dst = 8, func(v uint64) { h.params.Parallelism = uint8(v) }
		default:
			return phcHash{}, ErrInvalidHashFormat
		}
		v, err := strconv.ParseUint(value, 10, bits)
		if err != nil || v == 0 {
			return phcHash{}, ErrInvalidHashFormat
		}
		dst(v)
	}
	if h.params.Memory == 0 || h.params.Iterations == 0 || h.params.Parallelism == 0 {
		return phcHash{}, ErrInvalidHashFormat
	}

	if h.salt, err = base64.RawStdEncoding.DecodeString(fields[4]); err != nil {
		return phcHash{}, ErrInvalidHashFormat
	}
	if h.key, err = base64.RawStdEncoding.DecodeString(fields[5]); err != nil || len(h.key) == 0 {
		return phcHash{}, ErrInvalidHashFormat
	}
	h.params.SaltLength = uint32(len(h.salt))
	h.params.KeyLength = uint32(len(h.key))

	return h, nil
}
