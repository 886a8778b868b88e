package engine

import "time"

// Business-tuned thresholds. These values were calibrated against real
// order sheets; behavior compatibility depends on them, so do not re-derive.
const (
	// Similarity cascade early exits (0..100 scale).
	tier1Accept = 90.0
	tier2Accept = 85.0
	tier3Floor  = 70.0 // jamo decomposition only below this

	// Primary pass.
	stage1Floor        = 85.0 // product-name similarity floor, stage 1
	lengthRatioMin     = 0.7  // shorter/longer normalized-length guard
	stage2TopN         = 5
	sizeGate           = 50.0 // hard size gate, blocks junior/adult leakage
	totalFloor         = 60.0
	earlyAccept        = 92.0
	neutralPriceScore  = 50.0
	stage1CandidateCap = 1000

	// Aggregate weights, primary pass.
	weightProduct = 0.45
	weightSize    = 0.30
	weightColor   = 0.20
	weightPrice   = 0.05

	// Fallback pass (0..1 scale; intentionally a different scale and floor
	// than the primary pass).
	fallbackProductFloor = 0.3
	fallbackAcceptFloor  = 0.3
	fallbackCandidateCap = 50
	fallbackScanCap      = 30

	// Aggregate weights, fallback pass.
	fallbackWeightProduct = 0.6
	fallbackWeightColor   = 0.2
	fallbackWeightSize    = 0.2

	// Cache capacities. The jamo cache is deliberately small: its hit rate
	// is low because decomposition only runs for likely-misspelled pairs.
	normalizeCacheCap  = 1000
	synonymCacheCap    = 500
	jamoCacheCap       = 300
	similarityCacheCap = 500
)

// FailureLabel is the sentinel the result sheet shows for unmatched rows.
const FailureLabel = "매칭 실패"

// Config holds the soft per-row deadlines. On expiry the partial result is
// accepted and processing moves on; a timeout is never batch-fatal.
type Config struct {
	Stage1Timeout      time.Duration // candidate scan budget per row
	RowTimeout         time.Duration // whole-row budget, primary pass
	FallbackRowTimeout time.Duration // per-row budget, fallback pass
}

func DefaultConfig() Config {
	return Config{
		Stage1Timeout:      1 * time.Second,
		RowTimeout:         10 * time.Second,
		FallbackRowTimeout: 5 * time.Second,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Stage1Timeout <= 0 {
		c.Stage1Timeout = def.Stage1Timeout
	}
	if c.RowTimeout <= 0 {
		c.RowTimeout = def.RowTimeout
	}
	if c.FallbackRowTimeout <= 0 {
		c.FallbackRowTimeout = def.FallbackRowTimeout
	}
	return c
}
