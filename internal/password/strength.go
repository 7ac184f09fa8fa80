package password

// Score rates a password 0-100 from its length and character composition.
// It is a pure function of the string: additive bonuses for length tiers
// and per-class presence, plus a complexity bonus when a password of eight
// or more characters covers all four classes, capped at 100. This is a
// heuristic, not an entropy estimate.
func Score(pw string) int {
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range pw {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	score := 0
	if len(pw) >= 8 {
		score += 20
	}
	if len(pw) >= 12 {
		score += 15
	}
	if len(pw) >= 16 {
		score += 15
	}
	if hasLower {
		score += 10
	}
	if hasUpper {
		score += 10
	}
	if hasDigit {
		score += 10
	}
	if hasSymbol {
		score += 20
	}
	if len(pw) >= 8 && hasLower && hasUpper && hasDigit && hasSymbol {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}
