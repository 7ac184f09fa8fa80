package service

import (
	"errors"

	"github.com/google/uuid"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/password"
)

var (
	ErrLengthTooShort   = errors.New("password length must be at least 4")
	ErrLengthTooLong    = errors.New("password length must be at most 50")
	ErrCountNotPositive = errors.New("count must be positive")
	ErrCountTooLarge    = errors.New("count exceeds the allowed maximum")
)

// GeneratorService orchestrates batch password generation: it validates the
// request once, then produces independent scored passwords.
type GeneratorService struct {
	gen          *password.Generator
	defaultLen   int
	defaultBatch int
	maxBatch     int
}

// NewGeneratorService creates a GeneratorService. A nil gen falls back to a
// generator with the cryptographically secure default source.
func NewGeneratorService(gen *password.Generator, defaultLen, defaultBatch, maxBatch int) *GeneratorService {
	if gen == nil {
		gen = password.NewGenerator(nil)
	}
	return &GeneratorService{
		gen:          gen,
		defaultLen:   defaultLen,
		defaultBatch: defaultBatch,
		maxBatch:     maxBatch,
	}
}

// GenerateBatch produces a batch of passwords based on the given request.
// The batch fails atomically: an invalid configuration yields no items.
func (s *GeneratorService) GenerateBatch(req model.GenerateRequest) (model.GenerateResponse, error) {
	cfg := password.Config{
		Length:         req.Length,
		Uppercase:      boolOrDefault(req.Uppercase, true),
		Lowercase:      boolOrDefault(req.Lowercase, true),
		Numbers:        boolOrDefault(req.Numbers, true),
		Symbols:        boolOrDefault(req.Symbols, true),
		ExcludeSimilar: req.ExcludeSimilar,
	}

	if cfg.Length == 0 {
		cfg.Length = s.defaultLen
	}
	if cfg.Length < password.MinLength {
		return model.GenerateResponse{}, ErrLengthTooShort
	}
	if cfg.Length > password.MaxLength {
		return model.GenerateResponse{}, ErrLengthTooLong
	}

	count := req.Count
	if count == 0 {
		count = s.defaultBatch
	}
	if count < 0 {
		return model.GenerateResponse{}, ErrCountNotPositive
	}
	if count > s.maxBatch {
		return model.GenerateResponse{}, ErrCountTooLarge
	}

	// Pools are pure data derived from the config; build them once and
	// reuse them for every item in the batch.
	pools, err := password.BuildPools(cfg)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	items := make([]model.GeneratedPassword, count)
	for i := range items {
		pw, err := s.gen.Generate(cfg, pools)
		if err != nil {
			return model.GenerateResponse{}, err
		}
		score := password.Score(pw)
		items[i] = model.GeneratedPassword{
			ID:            uuid.NewString(),
			Password:      pw,
			Strength:      score,
			StrengthLabel: model.StrengthLabel(score),
		}
	}

	return model.GenerateResponse{
		Passwords: items,
		Count:     len(items),
	}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
