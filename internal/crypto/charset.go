package crypto

const (
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	DigitChars     = "0123456789"
	SymbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// BuildCharset returns the alphabet for cfg: the enabled categories appended
// in the fixed order uppercase, lowercase, digits, symbols. It does not
// validate cfg and returns an empty slice when every category is disabled.
func BuildCharset(cfg PasswordConfig) []byte {
	categories := []struct {
		enabled bool
		chars   string
	}{
		{cfg.Uppercase, UppercaseChars},
		{cfg.Lowercase, LowercaseChars},
		{cfg.Digits, DigitChars},
		{cfg.Symbols, SymbolChars},
	}

	charset := make([]byte, 0, len(UppercaseChars)+len(LowercaseChars)+len(DigitChars)+len(SymbolChars))
	for _, c := range categories {
		if c.enabled {
			charset = append(charset, c.chars...)
		}
	}
	return charset
}
