package password

// Generator produces random passwords from built pools.
type Generator struct {
	src Source
}

// NewGenerator creates a Generator backed by src. A nil src falls back to
// the cryptographically secure default.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = CryptoSource{}
	}
	return &Generator{src: src}
}

// Generate creates one password from the given pools. Every enabled class
// contributes at least one character, remaining positions are filled from
// the full pool, and the result is shuffled so the guaranteed characters
// are not predictably placed.
//
// The output length is cfg.Length, except when cfg.Length is smaller than
// the number of enabled classes: then the output is exactly one character
// per enabled class, the minimum that still satisfies class coverage.
func (g *Generator) Generate(cfg Config, pools Pools) (string, error) {
	if len(pools.Full) == 0 || len(pools.PerClass) == 0 {
		return "", ErrEmptyCharset
	}

	length := cfg.Length
	if length < len(pools.PerClass) {
		length = len(pools.PerClass)
	}

	result := make([]byte, 0, length)

	// One guaranteed character per enabled class, in table order.
	for _, cp := range pools.PerClass {
		result = append(result, cp.Chars[g.src.IntN(len(cp.Chars))])
	}

	// Fill the remaining positions from the full pool.
	for len(result) < length {
		result = append(result, pools.Full[g.src.IntN(len(pools.Full))])
	}

	g.shuffle(result)

	return string(result), nil
}

// shuffle applies a Fisher-Yates permutation in place.
func (g *Generator) shuffle(data []byte) {
	for i := len(data) - 1; i > 0; i-- {
		j := g.src.IntN(i + 1)
		data[i], data[j] = data[j], data[i]
	}
}
