package domain

import "fmt"

// EnhancementOptions is the pure value object carrying the caller's
// enhancement preferences. Normalize applies defaults, Validate checks the
// enumerations; the workflow never mutates options after validation.
type EnhancementOptions struct {
	Variations         int                   `json:"variations"`
	Style              string                `json:"style"`
	Format             string                `json:"format"`
	Length             string                `json:"length"`
	Constraints        EnhancementConstraint `json:"constraints"`
	CustomInstructions string                `json:"customInstructions,omitempty"`
}

// EnhancementConstraint holds the named boolean toggles a caller may request.
type EnhancementConstraint struct {
	Statistics  bool `json:"statistics"`
	Examples    bool `json:"examples"`
	Balanced    bool `json:"balanced"`
	Citations   bool `json:"citations"`
	StepByStep  bool `json:"stepByStep"`
	AvoidJargon bool `json:"avoidJargon"`
}

const (
	defaultVariations = 3
	maxVariations     = 10
)

var (
	validStyles  = map[string]struct{}{"default": {}, "professional": {}, "casual": {}, "technical": {}}
	validFormats = map[string]struct{}{"default": {}, "structured": {}, "conversational": {}, "directive": {}}
	validLengths = map[string]struct{}{"default": {}, "brief": {}, "detailed": {}, "comprehensive": {}}
)

// Normalize fills zero values with the documented defaults.
func (o *EnhancementOptions) Normalize() {
	if o.Variations == 0 {
		o.Variations = defaultVariations
	}
	if o.Style == "" {
		o.Style = "default"
	}
	if o.Format == "" {
		o.Format = "default"
	}
	if o.Length == "" {
		o.Length = "default"
	}
}

// Validate reports ErrValidation when a field is outside its allowed range.
func (o EnhancementOptions) Validate() error {
	if o.Variations < 1 || o.Variations > maxVariations {
		return fmt.Errorf("%w: variations must be between 1 and %d", ErrValidation, maxVariations)
	}
	if _, ok := validStyles[o.Style]; !ok {
		return fmt.Errorf("%w: unsupported style %q", ErrValidation, o.Style)
	}
	if _, ok := validFormats[o.Format]; !ok {
		return fmt.Errorf("%w: unsupported format %q", ErrValidation, o.Format)
	}
	if _, ok := validLengths[o.Length]; !ok {
		return fmt.Errorf("%w: unsupported length %q", ErrValidation, o.Length)
	}
	return nil
}
