package crypto

// PasswordGenerator produces random passwords from a cached alphabet.
type PasswordGenerator struct {
	config  PasswordConfig
	charset []byte
	source  Source
}

// NewPasswordGenerator validates cfg and caches its alphabet.
func NewPasswordGenerator(cfg PasswordConfig, opts ...Option) (*PasswordGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := applyOptions(opts)
	return &PasswordGenerator{
		config:  cfg,
		charset: BuildCharset(cfg),
		source:  o.source,
	}, nil
}

// Config returns the validated configuration.
func (g *PasswordGenerator) Config() PasswordConfig {
	return g.config
}

// Generate returns a password of exactly Length characters, each drawn
// independently and uniformly from the alphabet.
func (g *PasswordGenerator) Generate() string {
	if len(g.charset) == 0 {
		panic("crypto: password generator has an empty alphabet")
	}

	result := make([]byte, g.config.Length)
	for i := range result {
		result[i] = g.charset[g.source.IntN(len(g.charset))]
	}
	return string(result)
}

// GenerateN returns n passwords.
func (g *PasswordGenerator) GenerateN(n int) ([]string, error) {
	if err := ValidateGenerationCount(n); err != nil {
		return nil, err
	}
	out := make([]string, n)
	for i := range out {
		out[i] = g.Generate()
	}
	return out, nil
}
