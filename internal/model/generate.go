package model

// GenerateRequest represents a password batch generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length         int   `json:"length"`
	Uppercase      *bool `json:"uppercase"`
	Lowercase      *bool `json:"lowercase"`
	Numbers        *bool `json:"numbers"`
	Symbols        *bool `json:"symbols"`
	ExcludeSimilar bool  `json:"exclude_similar"`
	Count          int   `json:"count"`
}

// GeneratedPassword is one scored item of a batch response.
type GeneratedPassword struct {
	ID            string `json:"id"`
	Password      string `json:"password"`
	Strength      int    `json:"strength"`
	StrengthLabel string `json:"strength_label"`
}

// GenerateResponse represents a password batch generation response.
// Passwords are in generation order.
type GenerateResponse struct {
	Passwords []GeneratedPassword `json:"passwords"`
	Count     int                 `json:"count"`
}

// StrengthLabel maps a numeric strength score to its display tier.
func StrengthLabel(score int) string {
	switch {
	case score >= 80:
		return "Very Strong"
	case score >= 60:
		return "Strong"
	case score >= 40:
		return "Medium"
	default:
		return "Weak"
	}
}
