package csscolor

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/csscolor/pkg/sanitizer"
)

// TagName is the struct tag key read by ValidateStruct.
const TagName = "csscolor"

// ParseTag builds a Constraint from a struct tag value such as
//
//	mode=hex_short;normalizer=trim,lower;message=Pick a short hex color.
//
// Keys are mode, message, normalizer (comma-separated transform names from
// the sanitizer registry) and groups (comma-separated). Options are separated
// by ";"; write ";;" for a literal semicolon inside a value, as in
// "message=Pick red;; or blue". An empty tag yields a constraint that uses the
// validator's default mode.
func ParseTag(tag string) (*Constraint, error) {
	var opts []Option

	for _, part := range splitOptions(tag) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		key, value, _ := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "mode":
			opts = append(opts, WithMode(Mode(value)))
		case "message":
			opts = append(opts, WithMessage(value))
		case "normalizer":
			fn, err := normalizerChain(splitList(value))
			if err != nil {
				return nil, err
			}
			opts = append(opts, WithNormalizer(fn))
		case "groups":
			opts = append(opts, WithGroups(splitList(value)...))
		default:
			return nil, invalidArgument("unknown tag option %q", key)
		}
	}

	return NewConstraint(opts...)
}

// splitOptions splits tag on ";" while turning ";;" into a literal ";".
func splitOptions(tag string) []string {
	var (
		parts []string
		b     strings.Builder
	)
	for i := 0; i < len(tag); i++ {
		if tag[i] != ';' {
			b.WriteByte(tag[i])
			continue
		}
		if i+1 < len(tag) && tag[i+1] == ';' {
			b.WriteByte(';')
			i++
			continue
		}
		parts = append(parts, b.String())
		b.Reset()
	}
	return append(parts, b.String())
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// normalizerChain resolves sanitizer transform names into one Normalizer.
// No names means no normalizer.
func normalizerChain(names []string) (Normalizer, error) {
	if len(names) == 0 {
		return nil, nil
	}
	fn, err := sanitizer.Chain(names...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return NormalizerFunc(fn), nil
}
