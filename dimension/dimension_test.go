package dimension

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mensura/errs"
)

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	length, err := r.Register("Length", 'L')
	require.NoError(t, err)
	require.Equal(t, "Length", length.TextID())
	require.Equal(t, 'L', length.Symbol())

	lower, err := r.Register("Time", 't')
	require.NoError(t, err)
	require.Equal(t, 'T', lower.Symbol(), "symbols are upper-cased")

	digit, err := r.Register("Information", '2')
	require.NoError(t, err)
	require.Equal(t, '2', digit.Symbol())

	require.Equal(t, 3, r.Len())
	require.Equal(t, []Dimension{length, lower, digit}, r.All())
}

func TestRegistry_RegisterErrors(t *testing.T) {
	tests := []struct {
		name   string
		textID string
		symbol rune
		err    error
	}{
		{"punctuation symbol", "Bad", '*', errs.ErrInvalidSymbol},
		{"space symbol", "Bad", ' ', errs.ErrInvalidSymbol},
		{"empty text id", "", 'Q', errs.ErrEmptyTextID},
		{"whitespace text id", "  \t", 'Q', errs.ErrEmptyTextID},
		{"duplicate text id", "Length", 'X', errs.ErrDuplicateDimension},
		{"duplicate text id other case", "LENGTH", 'Y', errs.ErrDuplicateDimension},
		{"duplicate symbol", "Distance", 'L', errs.ErrDuplicateDimension},
		{"duplicate symbol lower case", "Distance", 'l', errs.ErrDuplicateDimension},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			_, err := r.Register("Length", 'L')
			require.NoError(t, err)

			_, err = r.Register(tt.textID, tt.symbol)
			require.ErrorIs(t, err, tt.err)
			require.Equal(t, 1, r.Len(), "failed registration must not modify the registry")
		})
	}
}

func TestRegistry_DuplicateTextIDDifferentSymbol(t *testing.T) {
	r := NewRegistry()
	_, err := r.Register("Length", 'L')
	require.NoError(t, err)

	_, err = r.Register("Length", 'X')
	require.ErrorIs(t, err, errs.ErrDuplicateDimension)

	_, ok := r.BySymbol('X')
	require.False(t, ok)
}

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry()
	length := r.MustRegister("Length", 'L')
	temp := r.MustRegister("Temperature", 'Θ')

	d, ok := r.BySymbol('l')
	require.True(t, ok)
	require.Equal(t, length, d)

	d, ok = r.ByTextID("lEnGtH")
	require.True(t, ok)
	require.Equal(t, length, d)

	d, ok = r.BySymbol('θ')
	require.True(t, ok)
	require.Equal(t, temp, d)

	_, ok = r.ByTextID("Mass")
	require.False(t, ok)
}

func TestRegistry_Freeze(t *testing.T) {
	r := NewRegistry()
	r.MustRegister("Length", 'L')
	r.Freeze()
	require.True(t, r.Frozen())

	_, err := r.Register("Time", 'T')
	require.ErrorIs(t, err, errs.ErrRegistryFrozen)

	require.Panics(t, func() { r.MustRegister("Time", 'T') })
}

func TestRegistry_Validate(t *testing.T) {
	r := NewRegistry()
	r.MustRegister("Length", 'L')
	r.MustRegister("Time", 'T')

	require.NoError(t, r.Validate(NewExponents(map[rune]int{'L': 1, 'T': -1})))
	require.NoError(t, r.Validate(Dimensionless()))
	require.ErrorIs(t, r.Validate(NewExponents(map[rune]int{'M': 1})), errs.ErrUnknownDimension)
}

func TestDimension_String(t *testing.T) {
	r := NewRegistry()
	d := r.MustRegister("Length", 'L')

	require.Equal(t, "Length(L)", d.String())
	require.False(t, d.IsZero())
	require.True(t, Dimension{}.IsZero())
}
