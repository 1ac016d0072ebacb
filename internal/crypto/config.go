package crypto

const (
	DefaultLength    = 16
	MaxLength        = 1024
	DefaultWordCount = 4
	MaxWordCount     = 20
)

// PasswordConfig configures the password generator.
type PasswordConfig struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Digits    bool
	Symbols   bool
}

// DefaultPasswordConfig returns sensible defaults: 16 characters with all categories enabled.
func DefaultPasswordConfig() PasswordConfig {
	return PasswordConfig{
		Length:    DefaultLength,
		Uppercase: true,
		Lowercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

// Validate checks the length bounds and that at least one category is enabled.
func (c PasswordConfig) Validate() error {
	if c.Length < 1 {
		return &ValidationError{Kind: ErrInvalidLength, Value: c.Length}
	}
	if c.Length > MaxLength {
		return &ValidationError{Kind: ErrLengthTooLarge, Value: c.Length, Max: MaxLength}
	}
	if !c.Uppercase && !c.Lowercase && !c.Digits && !c.Symbols {
		return ErrNoCharacterSetsEnabled
	}
	return nil
}

// PassphraseConfig configures the passphrase generator.
type PassphraseConfig struct {
	WordCount int
}

// DefaultPassphraseConfig returns a four word passphrase configuration.
func DefaultPassphraseConfig() PassphraseConfig {
	return PassphraseConfig{WordCount: DefaultWordCount}
}

// Validate checks the word count against MaxWordCount and the size of the
// word list, since words are drawn without replacement.
func (c PassphraseConfig) Validate() error {
	if c.WordCount < 1 {
		return &ValidationError{Kind: ErrInvalidWordCount, Value: c.WordCount}
	}
	if c.WordCount > MaxWordCount {
		return &ValidationError{Kind: ErrWordCountTooLarge, Value: c.WordCount, Max: MaxWordCount}
	}
	if c.WordCount > len(wordlist) {
		return &ValidationError{Kind: ErrWordCountTooLarge, Value: c.WordCount, Max: len(wordlist)}
	}
	return nil
}
