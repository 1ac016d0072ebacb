package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Digits    *bool `json:"digits"`
	Symbols   *bool `json:"symbols"`
	Count     int   `json:"count"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Passwords []string `json:"passwords"`
	Length    int      `json:"length"`
}

// PassphraseRequest represents a passphrase generation request.
type PassphraseRequest struct {
	Words int `json:"words"`
	Count int `json:"count"`
}

// PassphraseResponse represents a passphrase generation response.
type PassphraseResponse struct {
	Passphrases []string `json:"passphrases"`
	Words       int      `json:"words"`
}
