package csscolor_test

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/csscolor/pkg/csscolor"
	"github.com/dmitrymomot/csscolor/pkg/logger"
	"github.com/dmitrymomot/csscolor/pkg/sanitizer"
	"github.com/dmitrymomot/csscolor/pkg/validator"
)

type emptyStringer struct{}

func (emptyStringer) String() string { return "" }

type colorName struct{ name string }

func (c colorName) String() string { return c.name }

type opaque struct{ Hex string }

type hexString string

func newValidator(t *testing.T) *csscolor.Validator {
	t.Helper()
	v, err := csscolor.NewValidator(csscolor.HexLong)
	require.NoError(t, err)
	return v
}

func requireViolation(t *testing.T, res csscolor.Result, message, value string) {
	t.Helper()
	require.False(t, res.Valid(), "value %s should be rejected", value)
	require.NotNil(t, res.Violation)
	assert.Equal(t, message, res.Violation.Template)
	assert.Equal(t, csscolor.InvalidFormatError, res.Violation.Code)
	assert.Equal(t, map[string]string{validator.ValueParameter: `"` + value + `"`}, res.Violation.Parameters)
}

func TestNewValidator(t *testing.T) {
	t.Parallel()

	t.Run("accepts every known mode", func(t *testing.T) {
		t.Parallel()
		for _, m := range csscolor.Modes() {
			v, err := csscolor.NewValidator(m)
			require.NoError(t, err)
			assert.Equal(t, m, v.DefaultMode())
		}
	})

	t.Run("rejects unknown default mode", func(t *testing.T) {
		t.Parallel()
		v, err := csscolor.NewValidator("Unknown Mode")
		require.Error(t, err)
		assert.Nil(t, v)
		assert.ErrorIs(t, err, csscolor.ErrInvalidArgument)
		assert.Contains(t, err.Error(), `"defaultMode" parameter value "Unknown Mode" is not valid`)
	})

	t.Run("rejects empty default mode", func(t *testing.T) {
		t.Parallel()
		_, err := csscolor.NewValidator("")
		assert.ErrorIs(t, err, csscolor.ErrInvalidArgument)
	})

	t.Run("MustValidator panics on unknown mode", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { csscolor.MustValidator("rgb") })
		assert.NotPanics(t, func() { csscolor.MustValidator(csscolor.DefaultMode) })
	})
}

func TestValidate_AbsentValues(t *testing.T) {
	t.Parallel()

	var nilString *string
	var nilStringer *colorName

	values := map[string]any{
		"nil":                  nil,
		"empty string":         "",
		"empty stringer":       emptyStringer{},
		"nil pointer":          nilString,
		"nil stringer pointer": nilStringer,
		"empty named string":   hexString(""),
		"pointer to empty":     new(string),
	}

	for name, value := range values {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			for _, m := range csscolor.Modes() {
				res, err := newValidator(t).Validate(value, csscolor.MustConstraint(csscolor.WithMode(m)))
				require.NoError(t, err)
				assert.True(t, res.Valid())
				assert.Empty(t, res.Mode)
			}
		})
	}
}

func TestValidate_UnexpectedType(t *testing.T) {
	t.Parallel()

	for _, value := range []any{opaque{Hex: "#fff"}, []string{"#fff"}, map[string]string{}, struct{}{}} {
		res, err := newValidator(t).Validate(value, csscolor.MustConstraint())
		require.Error(t, err)
		assert.True(t, res.Valid())
		assert.ErrorIs(t, err, csscolor.ErrUnexpectedType)

		var typeErr *csscolor.UnexpectedTypeError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, "string", typeErr.Expected)
		assert.NotEmpty(t, typeErr.Given)
	}
}

func TestValidate_ValidHexLong(t *testing.T) {
	t.Parallel()

	colors := []string{
		"#ABCDEF", "#abcdef", "#C0FFEE", "#c0ffee", "#501311",
		"#ABCDEF00", "#abcdef01", "#C0FFEE02", "#c0ffee03", "#501311FF",
	}

	v := newValidator(t)
	for _, color := range colors {
		res, err := v.Validate(color, csscolor.MustConstraint())
		require.NoError(t, err, color)
		assert.True(t, res.Valid(), "value %s should be valid", color)
		assert.Equal(t, csscolor.HexLong, res.Mode)
	}
}

func TestValidate_ValidHexShort(t *testing.T) {
	t.Parallel()

	c := csscolor.MustConstraint(csscolor.WithMode(csscolor.HexShort))
	v := newValidator(t)
	for _, color := range []string{"#F4B", "#FAB", "#F4B1", "#FAB1", "#f4b", "#fab", "#f4b1", "#fab1"} {
		res, err := v.Validate(color, c)
		require.NoError(t, err, color)
		assert.True(t, res.Valid(), "value %s should be valid", color)
	}
}

func TestValidate_ValidNamedColors(t *testing.T) {
	t.Parallel()

	names := []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}
	c := csscolor.MustConstraint(csscolor.WithMode(csscolor.NamedColors))
	v := newValidator(t)

	for _, name := range names {
		for _, spelling := range []string{name, strings.ToUpper(name), strings.ToUpper(name[:1]) + name[1:]} {
			res, err := v.Validate(spelling, c)
			require.NoError(t, err, spelling)
			assert.True(t, res.Valid(), "value %s should be valid", spelling)
		}
	}
}

func TestValidate_NamedColorsPrefix(t *testing.T) {
	t.Parallel()

	c := csscolor.MustConstraint(csscolor.WithMode(csscolor.NamedColors))
	v := newValidator(t)

	for _, value := range []string{"redwood", "Bluetooth", "whitespace", "black!"} {
		res, err := v.Validate(value, c)
		require.NoError(t, err)
		assert.True(t, res.Valid(), "value %s starts with a color name", value)
	}

	res, err := v.Validate(" red", c)
	require.NoError(t, err)
	assert.False(t, res.Valid(), "leading characters are not skipped")
}

func TestValidate_InvalidHexLong(t *testing.T) {
	t.Parallel()

	colors := []string{
		"ABCDEF", "abcdef", "#K0FFEE", "#k0ffee", "#_501311",
		"ABCDEF00", "abcdefcc", "#K0FFEE33", "#k0ffeecc", "#_50131100",
		"#FAℬ", "#Ⅎab", "#F4️⃣B", "#f(4)b", "#907;",
		"#ABCDEF0", "#ABCDEF000", "#ABCDEF\n",
	}

	c := csscolor.MustConstraint(csscolor.WithMessage("myMessage"))
	v := newValidator(t)
	for _, color := range colors {
		res, err := v.Validate(color, c)
		require.NoError(t, err, color)
		requireViolation(t, res, "myMessage", color)
		assert.Equal(t, `myMessage`, res.Violation.Message)
		assert.Equal(t, color, res.Violation.InvalidValue)
	}
}

func TestValidate_InvalidHexShort(t *testing.T) {
	t.Parallel()

	c := csscolor.MustConstraint(
		csscolor.WithMode(csscolor.HexShort),
		csscolor.WithMessage("myMessage"),
	)
	v := newValidator(t)
	for _, color := range []string{"ABC", "ABCD", "abc", "abcd", "#K0F", "#K0FF", "#k0f", "#k0ff", "#_50", "#_501", "#ABCDEF"} {
		res, err := v.Validate(color, c)
		require.NoError(t, err, color)
		requireViolation(t, res, "myMessage", color)
	}
}

func TestValidate_InvalidNamedColors(t *testing.T) {
	t.Parallel()

	c := csscolor.MustConstraint(
		csscolor.WithMode(csscolor.NamedColors),
		csscolor.WithMessage("myMessage"),
	)
	v := newValidator(t)
	for _, color := range []string{"fabpot", "ngrekas", "symfony", "FABPOT", "NGREKAS", "SYMFONY", "#FF0000"} {
		res, err := v.Validate(color, c)
		require.NoError(t, err, color)
		requireViolation(t, res, "myMessage", color)
	}
}

func TestValidate_ModeSelection(t *testing.T) {
	t.Parallel()

	v := newValidator(t)

	t.Run("hex long rejects short form", func(t *testing.T) {
		t.Parallel()
		res, err := v.Validate("#F4B", csscolor.MustConstraint(csscolor.WithMode(csscolor.HexLong)))
		require.NoError(t, err)
		requireViolation(t, res, csscolor.DefaultMessage, "#F4B")
		assert.Equal(t, csscolor.HexLong, res.Mode)
	})

	t.Run("hex short accepts short forms", func(t *testing.T) {
		t.Parallel()
		c := csscolor.MustConstraint(csscolor.WithMode(csscolor.HexShort))
		for _, value := range []string{"#F4B", "#F4B1"} {
			res, err := v.Validate(value, c)
			require.NoError(t, err)
			assert.True(t, res.Valid())
			assert.Equal(t, csscolor.HexShort, res.Mode)
		}
	})

	t.Run("named colors", func(t *testing.T) {
		t.Parallel()
		res, err := v.Validate("red", csscolor.MustConstraint(csscolor.WithMode(csscolor.NamedColors)))
		require.NoError(t, err)
		assert.True(t, res.Valid())
	})

	t.Run("validator default applies to unset mode", func(t *testing.T) {
		t.Parallel()
		short := csscolor.MustValidator(csscolor.HexShort)
		res, err := short.Validate("#fab", csscolor.MustConstraint())
		require.NoError(t, err)
		assert.True(t, res.Valid())
		assert.Equal(t, csscolor.HexShort, res.Mode)
	})
}

func TestValidate_DefaultMessage(t *testing.T) {
	t.Parallel()

	res, err := newValidator(t).Validate("#F4B", csscolor.MustConstraint())
	require.NoError(t, err)
	require.NotNil(t, res.Violation)
	assert.Equal(t, "This value is not a valid hexadecimal color.", res.Violation.Message)

	name, err := validator.CodeName(res.Violation.Code)
	require.NoError(t, err)
	assert.Equal(t, "INVALID_FORMAT_ERROR", name)
}

func TestValidate_MessageInterpolation(t *testing.T) {
	t.Parallel()

	c := csscolor.MustConstraint(csscolor.WithMessage("{{ value }} is not a color."))
	res, err := newValidator(t).Validate("nope", c)
	require.NoError(t, err)
	require.NotNil(t, res.Violation)
	assert.Equal(t, `"nope" is not a color.`, res.Violation.Message)
	assert.Equal(t, "{{ value }} is not a color.", res.Violation.Template)
}

func TestValidate_Normalizer(t *testing.T) {
	t.Parallel()

	v := newValidator(t)

	t.Run("trim makes padded value valid", func(t *testing.T) {
		t.Parallel()
		res, err := v.Validate("  #ABCDEF  ", csscolor.MustConstraint(csscolor.WithNormalizer(strings.TrimSpace)))
		require.NoError(t, err)
		assert.True(t, res.Valid())
	})

	t.Run("padded value fails without normalizer", func(t *testing.T) {
		t.Parallel()
		res, err := v.Validate("  #ABCDEF  ", csscolor.MustConstraint())
		require.NoError(t, err)
		requireViolation(t, res, csscolor.DefaultMessage, "  #ABCDEF  ")
	})

	t.Run("violation reports value before normalization", func(t *testing.T) {
		t.Parallel()
		c := csscolor.MustConstraint(csscolor.WithNormalizer(sanitizer.ToUpper))
		res, err := v.Validate(" #k0ffee", c)
		require.NoError(t, err)
		requireViolation(t, res, csscolor.DefaultMessage, " #k0ffee")
	})

	t.Run("normalizer output to empty is matched, not skipped", func(t *testing.T) {
		t.Parallel()
		c := csscolor.MustConstraint(csscolor.WithNormalizer(strings.TrimSpace))
		res, err := v.Validate("   ", c)
		require.NoError(t, err)
		requireViolation(t, res, csscolor.DefaultMessage, "   ")
	})

	t.Run("composed sanitizer pipeline", func(t *testing.T) {
		t.Parallel()
		c := csscolor.MustConstraint(csscolor.WithNormalizer(
			sanitizer.Compose(sanitizer.RemoveWhitespace, sanitizer.EnsurePrefix("#")),
		))
		res, err := v.Validate(" c0 ff ee ", c)
		require.NoError(t, err)
		assert.True(t, res.Valid())
	})
}

func TestValidate_ScalarAndStringerValues(t *testing.T) {
	t.Parallel()

	v := newValidator(t)
	named := csscolor.MustConstraint(csscolor.WithMode(csscolor.NamedColors))
	short := csscolor.MustConstraint(csscolor.WithMode(csscolor.HexShort))

	res, err := v.Validate(colorName{name: "cyan"}, named)
	require.NoError(t, err)
	assert.True(t, res.Valid())

	res, err = v.Validate(&colorName{name: "purple"}, named)
	require.NoError(t, err)
	requireViolation(t, res, csscolor.DefaultMessage, "purple")

	res, err = v.Validate(hexString("#abc"), short)
	require.NoError(t, err)
	assert.True(t, res.Valid())

	s := "#abc"
	res, err = v.Validate(&s, short)
	require.NoError(t, err)
	assert.True(t, res.Valid())

	res, err = v.Validate(123, short)
	require.NoError(t, err)
	requireViolation(t, res, csscolor.DefaultMessage, "123")

	res, err = v.Validate(1.5, short)
	require.NoError(t, err)
	requireViolation(t, res, csscolor.DefaultMessage, "1.5")

	res, err = v.Validate(true, short)
	require.NoError(t, err)
	requireViolation(t, res, csscolor.DefaultMessage, "true")
}

func TestValidate_RuntimeModeCheck(t *testing.T) {
	t.Parallel()

	c := csscolor.MustConstraint()
	c.Mode = "Unknown Mode"

	res, err := newValidator(t).Validate("#F4B907", c)
	require.Error(t, err)
	assert.True(t, res.Valid())
	assert.ErrorIs(t, err, csscolor.ErrInvalidArgument)
	assert.Contains(t, err.Error(), `"*csscolor.Constraint.Mode" parameter value "Unknown Mode" is not valid`)
}

func TestValidate_NilConstraint(t *testing.T) {
	t.Parallel()

	_, err := newValidator(t).Validate("#fff", nil)
	assert.ErrorIs(t, err, csscolor.ErrInvalidArgument)
}

func TestResolveAndBind(t *testing.T) {
	t.Parallel()

	v := csscolor.MustValidator(csscolor.NamedColors)

	t.Run("resolve does not mutate", func(t *testing.T) {
		t.Parallel()
		c := csscolor.MustConstraint()
		mode, err := v.Resolve(c)
		require.NoError(t, err)
		assert.Equal(t, csscolor.NamedColors, mode)
		assert.Empty(t, c.Mode)
	})

	t.Run("explicit mode wins", func(t *testing.T) {
		t.Parallel()
		mode, err := v.Resolve(csscolor.MustConstraint(csscolor.WithMode(csscolor.HexShort)))
		require.NoError(t, err)
		assert.Equal(t, csscolor.HexShort, mode)
	})

	t.Run("bind persists the resolved mode", func(t *testing.T) {
		t.Parallel()
		c := csscolor.MustConstraint()
		require.NoError(t, v.Bind(c))
		assert.Equal(t, csscolor.NamedColors, c.Mode)
	})

	t.Run("bind rejects unknown mode", func(t *testing.T) {
		t.Parallel()
		c := csscolor.MustConstraint()
		c.Mode = "hsl"
		assert.ErrorIs(t, v.Bind(c), csscolor.ErrInvalidArgument)
		assert.Equal(t, csscolor.Mode("hsl"), c.Mode)
	})

	t.Run("resolution is idempotent", func(t *testing.T) {
		t.Parallel()
		c := csscolor.MustConstraint()
		first, err := v.Validate("redwood", c)
		require.NoError(t, err)
		assert.Equal(t, csscolor.NamedColors, first.Mode)

		c.Mode = first.Mode
		second, err := v.Validate("redwood", c)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestValidate_Logging(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithFormat(logger.FormatText),
		logger.WithLevel(slog.LevelDebug),
	)
	v := csscolor.MustValidator(csscolor.HexLong, csscolor.WithLogger(log))

	_, err := v.Validate("#zzz", csscolor.MustConstraint())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "csscolor: value rejected")
	assert.Contains(t, out, "mode=hex_long")
	assert.Contains(t, out, csscolor.InvalidFormatError)
}

func TestValidate_Concurrent(t *testing.T) {
	t.Parallel()

	v := newValidator(t)
	c := csscolor.MustConstraint()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			value := "#C0FFEE"
			if i%2 == 1 {
				value = "#K0FFEE"
			}
			res, err := v.Validate(value, c)
			assert.NoError(t, err)
			assert.Equal(t, i%2 == 0, res.Valid())
		}(i)
	}
	wg.Wait()

	assert.Empty(t, c.Mode)
}
