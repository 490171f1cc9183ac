// Package catalog holds the static registries the recommendation engine
// is built on: known workload signatures and priced GPU offerings. Both
// are injected into the engine at construction so tests can substitute
// fixtures without touching engine logic.
package catalog

// SignatureCategory groups workload signatures by modality.
type SignatureCategory string

const (
	CategoryText     SignatureCategory = "text"
	CategoryImage    SignatureCategory = "image"
	CategoryAudio    SignatureCategory = "audio"
	CategoryFallback SignatureCategory = "fallback"
)

// Signature describes one known workload: the tokens that identify it in
// project sources and the base VRAM footprint of its model family.
// Matching is case-insensitive substring matching over raw text, so a
// token inside a comment counts the same as a genuine usage. That
// imprecision is accepted; the catalog is a heuristic, not a parser.
type Signature struct {
	ID              string            `json:"id"`
	Matchers        []string          `json:"matchers"`
	BaseFootprintGB float64           `json:"base_footprint_gb"`
	Category        SignatureCategory `json:"category"`
}

// PatternCatalog is an ordered set of signatures. Order is the selection
// contract: the estimator picks the first signature that matches anywhere,
// so entries are kept sorted by descending footprint, with multi-matcher
// entries ahead of single-matcher ones at equal footprint. A slice, never
// a map: map iteration order would silently break the guarantee.
type PatternCatalog struct {
	signatures []Signature
}

// NewPatternCatalog returns the built-in signature registry.
func NewPatternCatalog() *PatternCatalog {
	return &PatternCatalog{signatures: defaultSignatures}
}

// NewPatternCatalogFrom wraps a caller-supplied signature sequence,
// trusted to already be in selection order.
func NewPatternCatalogFrom(signatures []Signature) *PatternCatalog {
	return &PatternCatalog{signatures: signatures}
}

// AllSignatures returns every signature in selection order.
func (c *PatternCatalog) AllSignatures() []Signature {
	return c.signatures
}

var defaultSignatures = []Signature{
	{
		ID:              "llama-2-70b",
		Matchers:        []string{"llama-2-70b", "llama-70b", "meta-llama/llama-2-70b"},
		BaseFootprintGB: 140,
		Category:        CategoryText,
	},
	{
		ID:              "mixtral-8x7b",
		Matchers:        []string{"mixtral-8x7b", "mistralai/mixtral"},
		BaseFootprintGB: 90,
		Category:        CategoryText,
	},
	{
		ID:              "falcon-40b",
		Matchers:        []string{"falcon-40b", "tiiuae/falcon-40b"},
		BaseFootprintGB: 80,
		Category:        CategoryText,
	},
	{
		ID:              "llama-2-13b",
		Matchers:        []string{"llama-2-13b", "llama-13b"},
		BaseFootprintGB: 26,
		Category:        CategoryText,
	},
	{
		ID:              "flux-1-dev",
		Matchers:        []string{"flux.1-dev", "fluxpipeline", "black-forest-labs/flux"},
		BaseFootprintGB: 24,
		Category:        CategoryImage,
	},
	{
		ID:              "llama-2-7b",
		Matchers:        []string{"llama-2-7b", "llama-7b", "mistral-7b"},
		BaseFootprintGB: 14,
		Category:        CategoryText,
	},
	{
		ID:              "stable-diffusion-xl",
		Matchers:        []string{"stable-diffusion-xl", "stablediffusionxlpipeline", "sdxl"},
		BaseFootprintGB: 12,
		Category:        CategoryImage,
	},
	{
		ID:              "whisper-large",
		Matchers:        []string{"whisper-large", "openai/whisper-large"},
		BaseFootprintGB: 10,
		Category:        CategoryAudio,
	},
	{
		ID:              "stable-diffusion-1.5",
		Matchers:        []string{"stablediffusionpipeline", "stable-diffusion-v1-5", "runwayml/stable-diffusion"},
		BaseFootprintGB: 6,
		Category:        CategoryImage,
	},
	{
		ID:              "whisper-base",
		Matchers:        []string{"openai/whisper", "whisperprocessor"},
		BaseFootprintGB: 6,
		Category:        CategoryAudio,
	},
	{
		ID:              "gpt2",
		Matchers:        []string{"gpt2"},
		BaseFootprintGB: 5,
		Category:        CategoryText,
	},
	// Generic framework tokens: low-priority fallback when nothing above
	// matched but the project clearly runs an ML stack.
	{
		ID:              "generic-framework",
		Matchers:        []string{"torch", "tensorflow", "transformers", "diffusers", "jax"},
		BaseFootprintGB: 4,
		Category:        CategoryFallback,
	},
}
