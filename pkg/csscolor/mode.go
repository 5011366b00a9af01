package csscolor

import "regexp"

// Mode selects the color syntax family a value is checked against.
type Mode string

const (
	HexLong     Mode = "hex_long"
	HexShort    Mode = "hex_short"
	NamedColors Mode = "named_colors"
)

// DefaultMode is the mode validators fall back to when none is configured.
const DefaultMode = HexLong

// The named-colors pattern is intentionally unanchored at the end: any
// string starting with one of the eight names is accepted ("redwood").
var patterns = map[Mode]*regexp.Regexp{
	HexLong:     regexp.MustCompile(`(?i)^#[0-9a-f]{6}([0-9a-f]{2})?$`),
	HexShort:    regexp.MustCompile(`(?i)^#[0-9a-f]{3,4}$`),
	NamedColors: regexp.MustCompile(`(?i)^(black|red|green|yellow|blue|magenta|cyan|white)`),
}

// Modes lists every known mode.
func Modes() []Mode {
	return []Mode{HexLong, HexShort, NamedColors}
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	_, ok := patterns[m]
	return ok
}

func (m Mode) String() string { return string(m) }

// ParseMode converts a mode token such as "hex_short" into a Mode.
// Matching is exact: "HEX_SHORT" is rejected.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", invalidArgument(`the "mode" parameter value %q is not valid`, s)
	}
	return m, nil
}

// UnmarshalText lets env and yaml decoders produce validated modes.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m), nil
}

// Match reports whether s satisfies the pattern of mode m.
// Unknown modes never match.
func (m Mode) Match(s string) bool {
	re, ok := patterns[m]
	if !ok {
		return false
	}
	return re.MatchString(s)
}
