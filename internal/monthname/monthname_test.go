package monthname

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		locale Locale
		month  int
		want   string
	}{
		{EnUS, 1, "january"},
		{EnUS, 8, "august"},
		{EnUS, 12, "december"},
		{RuRU, 1, "январь"},
		{RuRU, 5, "май"},
		{RuRU, 12, "декабрь"},
	}
	for _, tt := range tests {
		got, err := NameFor(tt.locale, tt.month)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestNameFor_Errors(t *testing.T) {
	t.Parallel()

	_, err := NameFor(EnUS, 0)
	assert.ErrorIs(t, err, ErrInvalidMonth)
	_, err = NameFor(RuRU, 13)
	assert.ErrorIs(t, err, ErrInvalidMonth)
	_, err = NameFor(Locale("de-DE"), 1)
	assert.ErrorIs(t, err, ErrUnsupportedLocale)
}

func TestParseLocale(t *testing.T) {
	t.Parallel()

	l, err := ParseLocale(" ru-RU ")
	require.NoError(t, err)
	assert.Equal(t, RuRU, l)

	for _, bad := range []string{"", "en", "en_US", "EN-us", "ru", "fr-FR"} {
		_, err := ParseLocale(bad)
		assert.ErrorIs(t, err, ErrUnsupportedLocale, "input %q", bad)
	}
}

func TestProvider_SetLocaleRejectsUnsupported(t *testing.T) {
	t.Parallel()

	p := NewProvider()
	assert.Equal(t, EnUS, p.Locale())

	require.NoError(t, p.SetLocale(RuRU))
	name, err := p.Name(3)
	require.NoError(t, err)
	assert.Equal(t, "март", name)

	err = p.SetLocale(Locale("de-DE"))
	assert.ErrorIs(t, err, ErrUnsupportedLocale)
	assert.Equal(t, RuRU, p.Locale())
}

func TestSupported(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Locale{EnUS, RuRU}, Supported())
	for _, l := range Supported() {
		assert.True(t, IsSupported(l))
	}
	assert.False(t, IsSupported(""))
}
