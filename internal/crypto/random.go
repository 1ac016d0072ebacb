package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Source produces uniformly distributed indices in [0, n).
type Source interface {
	IntN(n int) int
}

type cryptoSource struct{}

// CryptoSource returns the default Source backed by crypto/rand.
// It is safe for concurrent use.
func CryptoSource() Source {
	return cryptoSource{}
}

// IntN panics when n is not positive or the system entropy source fails;
// neither condition can be recovered from by the caller.
func (cryptoSource) IntN(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("crypto: IntN called with non-positive bound %d", n))
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("crypto: reading random source: %v", err))
	}
	return int(v.Int64())
}

// Option configures a generator.
type Option func(*options)

type options struct {
	source Source
}

// WithSource overrides the randomness source, mainly for tests.
func WithSource(src Source) Option {
	return func(o *options) {
		if src != nil {
			o.source = src
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{source: CryptoSource()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
