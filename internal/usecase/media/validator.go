package media

import (
	"fmt"
	"slices"

	"github.com/shopstack/storefront-media/internal/infrastructure/config"
)

// Variant selects the validation rules of a call site: general product
// images or the stricter store logo.
type Variant int

const (
	VariantProduct Variant = iota
	VariantLogo
)

// minInputBytes rejects empty and truncated payloads before any decode work.
const minInputBytes = 12

// Rules are the per-variant validation constants.
type Rules struct {
	MaxBytes    int64
	AllowedMIME []string
}

func ProductRules(cfg config.PipelineConfig) Rules {
	return Rules{
		MaxBytes:    cfg.MaxProductImageBytes,
		AllowedMIME: []string{"image/jpeg", "image/jpg", "image/png", "image/webp", "image/gif"},
	}
}

func LogoRules(cfg config.PipelineConfig) Rules {
	return Rules{
		MaxBytes:    cfg.MaxLogoBytes,
		AllowedMIME: []string{"image/jpeg", "image/jpg", "image/png", "image/webp", "image/gif", "image/svg+xml"},
	}
}

// ValidationResult lists every violated constraint so callers can surface a
// complete diagnostic in one pass.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// Validate checks declared size and MIME type against the variant's rules.
// Pure function, no I/O, never inspects pixel content.
func Validate(sizeBytes int64, mime string, rules Rules) ValidationResult {
	var violations []string

	if sizeBytes < minInputBytes {
		violations = append(violations, "file is empty or too small to be an image")
	} else if rules.MaxBytes > 0 && sizeBytes > rules.MaxBytes {
		violations = append(violations,
			fmt.Sprintf("exceeds maximum allowed size of %d MB", rules.MaxBytes/(1<<20)))
	}

	if !slices.Contains(rules.AllowedMIME, mime) {
		violations = append(violations, fmt.Sprintf("file type %q is not allowed", mime))
	}

	return ValidationResult{Valid: len(violations) == 0, Errors: violations}
}
