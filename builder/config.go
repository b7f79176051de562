// Package builder provides internal configuration types and functional options
// for graph constructors. It centralizes common settings such as random number
// generator, vertex ID scheme, edge weight distribution, bipartite partition
// labels, and sequence-synthesis parameters to keep builder implementations
// DRY and consistent.
//
// The key type is BuilderOption, a function that mutates a builderConfig.
// builderConfig holds:
//   - rng:      *rand.Rand source for randomness (nil → deterministic).
//   - idFn:     IDFn to produce vertex identifiers from integer indices.
//   - weightFn: WeightFn to produce edge weights given an RNG.
//   - leftPrefix/rightPrefix: partition-side ID prefixes for CompleteBipartite.
//   - amplitude/frequency/trendK/noiseSigma: shared knobs for sequence
//     builders (Pulse/Chirp/OHLC); stored here, but extract*Params ignore
//     them and BuildPulse/BuildAudioChirp/BuildOHLCSeries use fixed defaults.
//
// Use newBuilderConfig to obtain a config with sensible defaults, then apply
// any number of BuilderOption in order. Later options override earlier ones.
//
// Complexity: newBuilderConfig applies N options in O(N) time, O(1) extra space.
package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes the behavior of a graph constructor.
// It mutates the builderConfig before graph construction begins.
//
// Option constructors VALIDATE and PANIC on meaningless inputs (per lvlath
// 99-rules); algorithms themselves MUST NOT panic.
type BuilderOption func(cfg *builderConfig)

// defaultLeftPrefix and defaultRightPrefix label the two partitions of
// CompleteBipartite when WithPartitionPrefix is not supplied.
const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// builderConfig holds the configurable parameters for graph builders.
//
// builderConfig is not safe for concurrent mutation; each builder invocation
// should create its own config via newBuilderConfig.
type builderConfig struct {
	rng      *rand.Rand // optional RNG; nil means deterministic behavior
	idFn     IDFn       // function to generate vertex IDs from indices
	weightFn WeightFn   // function to generate edge weights

	leftPrefix  string // CompleteBipartite left-partition ID prefix
	rightPrefix string // CompleteBipartite right-partition ID prefix

	amplitude  float64 // sequence amplitude A (Pulse/Chirp/OHLC)
	frequency  float64 // sequence base frequency f0 (Pulse/Chirp)
	trendK     float64 // sequence linear trend coefficient
	noiseSigma float64 // sequence Gaussian noise sigma
}

// newBuilderConfig returns a builderConfig initialized with defaults, then
// applies each provided BuilderOption in order. If opts is empty, returns
// defaults: nil RNG, DefaultIDFn, DefaultWeightFn, "L"/"R" partition prefixes,
// zero sequence knobs.
//
// Complexity: O(len(opts)) time, O(1) extra space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:         nil,             // no RNG → deterministic ID and weight functions
		idFn:        DefaultIDFn,     // decimal IDs "0","1",…
		weightFn:    DefaultWeightFn, // constant DefaultEdgeWeight
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
		amplitude:   defAmp,
		frequency:   0,
		trendK:      defTrendSlope,
		noiseSigma:  defSigma,
	}

	// Apply each option in order; later options override earlier ones.
	var opt BuilderOption
	for _, opt = range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil to surface programmer error early and keep invariants tight.
// Complexity: O(1) time, O(1) space.
func WithIDScheme(idFn IDFn) BuilderOption {
	if idFn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(cfg *builderConfig) {
		cfg.idFn = idFn
	}
}

// WithWeightFn overrides the per-edge weight generator.
// Panics on nil; weight policy must be explicit if customized.
// Complexity: O(1) time, O(1) space.
func WithWeightFn(wfn WeightFn) BuilderOption {
	if wfn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(cfg *builderConfig) {
		cfg.weightFn = wfn
	}
}

// WithRand sets an explicit *rand.Rand source for randomness.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(rng *rand.Rand) BuilderOption {
	if rng == nil {
		panic("builder: WithRand(nil)")
	}
	return func(cfg *builderConfig) {
		cfg.rng = rng
	}
}

// WithSeed creates a new *rand.Rand seeded with the given value and
// assigns it as the RNG source. Use this for reproducible randomness.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPartitionPrefix sets bipartite side labels (left/right) for
// CompleteBipartite, overriding the "L"/"R" defaults. An empty string is
// accepted as-is (produces bare numeric IDs on that side).
// Complexity: O(1) time, O(1) space.
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.leftPrefix, cfg.rightPrefix = left, right
	}
}

// WithAmplitude sets the sequence amplitude A (>0) for datasets (Pulse/Chirp/OHLC).
// Panics if A <= 0 to avoid degenerate outputs.
// Complexity: O(1) time, O(1) space.
func WithAmplitude(A float64) BuilderOption {
	if A <= 0 {
		panic(fmt.Sprintf("builder: WithAmplitude(A<=0), got %v", A))
	}
	return func(cfg *builderConfig) {
		cfg.amplitude = A
	}
}

// WithFrequency sets the base frequency f0 (>0) for chirps/periodic pulses.
// Panics if f0 <= 0.
// Complexity: O(1) time, O(1) space.
func WithFrequency(f0 float64) BuilderOption {
	if f0 <= 0 {
		panic(fmt.Sprintf("builder: WithFrequency(f0<=0), got %v", f0))
	}
	return func(cfg *builderConfig) {
		cfg.frequency = f0
	}
}

// WithTrend sets the linear trend coefficient k for sequences.
// Any real value is accepted (including 0).
// Complexity: O(1) time, O(1) space.
func WithTrend(k float64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.trendK = k
	}
}

// WithNoise sets Gaussian noise sigma (>=0) for sequences.
// Panics if sigma < 0. Noise draws are seeded by cfg.rng.
// Complexity: O(1) time, O(1) space.
func WithNoise(sigma float64) BuilderOption {
	if sigma < 0 {
		panic(fmt.Sprintf("builder: WithNoise(sigma<0), got %v", sigma))
	}
	return func(cfg *builderConfig) {
		cfg.noiseSigma = sigma
	}
}
