package crypto

import "strings"

// PassphraseGenerator produces passphrases of distinct words from the word list.
type PassphraseGenerator struct {
	config PassphraseConfig
	source Source
}

// NewPassphraseGenerator validates cfg and returns a generator for it.
func NewPassphraseGenerator(cfg PassphraseConfig, opts ...Option) (*PassphraseGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := applyOptions(opts)
	return &PassphraseGenerator{config: cfg, source: o.source}, nil
}

// Config returns the validated configuration.
func (g *PassphraseGenerator) Config() PassphraseConfig {
	return g.config
}

// Generate returns WordCount words joined by PassphraseDelimiter. Words are
// sampled uniformly without replacement and kept in draw order.
func (g *PassphraseGenerator) Generate() string {
	return strings.Join(sampleWords(g.source, g.config.WordCount), PassphraseDelimiter)
}

// GenerateN returns n passphrases.
func (g *PassphraseGenerator) GenerateN(n int) ([]string, error) {
	if err := ValidateGenerationCount(n); err != nil {
		return nil, err
	}
	out := make([]string, n)
	for i := range out {
		out[i] = g.Generate()
	}
	return out, nil
}

// sampleWords runs k steps of a Fisher-Yates shuffle over the word list
// indices; the first k positions are the sample.
func sampleWords(src Source, k int) []string {
	n := len(wordlist)
	if k > n {
		panic("crypto: passphrase word count exceeds word list size")
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	words := make([]string, k)
	for i := 0; i < k; i++ {
		j := i + src.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
		words[i] = wordlist[idx[i]]
	}
	return words
}
