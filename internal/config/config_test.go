package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledstrip-go/drivers/ledstrip"
	"ledstrip-go/drivers/ledstrip/pinmap"
	"ledstrip-go/drivers/ledstrip/timing"
	"ledstrip-go/errcode"
)

func TestEmbeddedScenariosResolve(t *testing.T) {
	for _, name := range Names() {
		s, err := Named(name)
		require.NoError(t, err, name)
		r, err := s.Resolve()
		require.NoError(t, err, name)
		assert.NotEmpty(t, r.Colors, name)
		assert.True(t, r.Binding.Valid(), name)
		_, err = r.Protocol.Check(r.Profile)
		assert.NoError(t, err, name)
	}
}

func TestParseColors(t *testing.T) {
	s, err := Parse([]byte(`
family: atmega2560
pin: 42
colors: ["#0a0b0c", [1, 2, 3], "ffffff"]
order: bgr
`))
	require.NoError(t, err)
	r, err := s.Resolve()
	require.NoError(t, err)
	assert.Equal(t, []ledstrip.Color{{R: 10, G: 11, B: 12}, {R: 1, G: 2, B: 3}, {R: 255, G: 255, B: 255}}, r.Colors)
	assert.Equal(t, pinmap.Binding{Addr: pinmap.PortL, Bit: 7}, r.Binding)
	assert.Equal(t, ledstrip.OrderBGR, r.Config.Order)
	assert.Equal(t, timing.Clock16MHz, r.Profile.Clock)
}

func TestParseErrors(t *testing.T) {
	for _, doc := range []string{
		`colors: [[1, 2]]`,
		`colors: ["#12345"]`,
		`colors: ["#zzzzzz"]`,
		`colors: [{r: 1}]`,
		`colors: [[1, 2, 256]]`,
	} {
		_, err := Parse([]byte(doc))
		assert.Error(t, err, doc)
	}
}

func TestResolveErrors(t *testing.T) {
	cases := map[string]errcode.Code{
		"family: attiny85":                    errcode.UnknownFamily,
		"family: atmega328p\npin: 21":         errcode.UnknownPin,
		"protocol: apa102":                    errcode.UnknownProtocol,
		"clock_hz: 8000000\nprotocol: tm1804": errcode.UnsupportedClock,
		"order: rgbw":                         errcode.InvalidOrder,
		"family: sam3x8e\nprotocol: tm1804":   errcode.UnsupportedClock,
	}
	for doc, want := range cases {
		s, err := Parse([]byte(doc))
		require.NoError(t, err, doc)
		_, err = s.Resolve()
		assert.Equal(t, want, errcode.Of(err), doc)
	}
}

func TestDefaults(t *testing.T) {
	s, err := Parse([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, "sim", s.Family)
	assert.Equal(t, 6, s.Pin)
	assert.Equal(t, timing.Clock16MHz, s.ClockHz)
	assert.Equal(t, "ws2812b", s.Protocol)

	due, err := Parse([]byte(`family: sam3x8e`))
	require.NoError(t, err)
	assert.Equal(t, timing.Clock84MHz, due.ClockHz)

	zero, err := Parse([]byte(`pin: 0`))
	require.NoError(t, err)
	assert.Equal(t, 0, zero.Pin)
}

func TestSaveLoadAndLookupOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	s, err := Named("leonardo")
	require.NoError(t, err)
	require.NoError(t, Save(path, s))
	back, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s, back)

	old := EmbeddedLookup
	EmbeddedLookup = func(string) ([]byte, bool) { return nil, false }
	t.Cleanup(func() { EmbeddedLookup = old })
	_, err = Named("uno")
	require.Error(t, err)
	assert.Equal(t, errcode.UnknownScenario, errcode.Of(err))
}

func TestNamedUnknownScenario(t *testing.T) {
	_, err := Named("duemilanove")
	require.Error(t, err)
	assert.Equal(t, errcode.UnknownScenario, errcode.Of(err))
	assert.NotEqual(t, errcode.UnknownFamily, errcode.Of(err))
}
