package password

import (
	"errors"
	"strings"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// similarChars are visually ambiguous and removed from every pool
	// when Config.ExcludeSimilar is set.
	similarChars = "il1Lo0O"

	MinLength = 4
	MaxLength = 50
)

var ErrEmptyCharset = errors.New("no usable characters for the given configuration")

// Class identifies one of the selectable character classes.
type Class int

const (
	ClassUppercase Class = iota
	ClassLowercase
	ClassNumbers
	ClassSymbols
)

func (c Class) String() string {
	switch c {
	case ClassUppercase:
		return "uppercase"
	case ClassLowercase:
		return "lowercase"
	case ClassNumbers:
		return "numbers"
	case ClassSymbols:
		return "symbols"
	}
	return "unknown"
}

// chars returns the base character set for the class.
func (c Class) chars() string {
	switch c {
	case ClassUppercase:
		return uppercaseChars
	case ClassLowercase:
		return lowercaseChars
	case ClassNumbers:
		return numberChars
	case ClassSymbols:
		return symbolChars
	}
	return ""
}

// classOrder fixes the iteration order everywhere pools are walked, so
// pool concatenation and the guaranteed-character pass are deterministic.
var classOrder = []Class{ClassUppercase, ClassLowercase, ClassNumbers, ClassSymbols}

// Config selects the character classes and length for generation.
type Config struct {
	Length         int
	Uppercase      bool
	Lowercase      bool
	Numbers        bool
	Symbols        bool
	ExcludeSimilar bool
}

// DefaultConfig returns sensible defaults: 16 characters with all classes enabled.
func DefaultConfig() Config {
	return Config{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

func (cfg Config) classEnabled(c Class) bool {
	switch c {
	case ClassUppercase:
		return cfg.Uppercase
	case ClassLowercase:
		return cfg.Lowercase
	case ClassNumbers:
		return cfg.Numbers
	case ClassSymbols:
		return cfg.Symbols
	}
	return false
}

// ClassPool is one enabled class together with its filtered character set.
type ClassPool struct {
	Class Class
	Chars string
}

// Pools holds the effective character pools for a configuration. Full is
// the concatenation of every enabled class pool in classOrder.
type Pools struct {
	Full     string
	PerClass []ClassPool
}

// BuildPools derives the effective pools from cfg. Every enabled class has
// the similar-character set stripped when ExcludeSimilar is set. It returns
// ErrEmptyCharset when no class is enabled, or when filtering empties the
// pool of an enabled class.
func BuildPools(cfg Config) (Pools, error) {
	var pools Pools
	for _, c := range classOrder {
		if !cfg.classEnabled(c) {
			continue
		}
		chars := c.chars()
		if cfg.ExcludeSimilar {
			chars = stripSimilar(chars)
		}
		if chars == "" {
			return Pools{}, ErrEmptyCharset
		}
		pools.PerClass = append(pools.PerClass, ClassPool{Class: c, Chars: chars})
		pools.Full += chars
	}

	if len(pools.PerClass) == 0 {
		return Pools{}, ErrEmptyCharset
	}
	return pools, nil
}

// stripSimilar removes every visually ambiguous character from charset.
func stripSimilar(charset string) string {
	var b strings.Builder
	b.Grow(len(charset))
	for i := 0; i < len(charset); i++ {
		if strings.IndexByte(similarChars, charset[i]) < 0 {
			b.WriteByte(charset[i])
		}
	}
	return b.String()
}
