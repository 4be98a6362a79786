package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidechart/asv-telemetry/internal/domain"
)

func TestParseLayer_KnownValues(t *testing.T) {
	cases := map[string]domain.Layer{
		"surface": domain.LayerSurface,
		"middle":  domain.LayerMiddle,
		"sea bed": domain.LayerSeaBed,
		"Surface": domain.LayerSurface,
		"SEA BED": domain.LayerSeaBed,
	}
	for in, want := range cases {
		got, err := domain.ParseLayer(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got)
	}
}

func TestParseLayer_UnknownValue_Rejected(t *testing.T) {
	for _, in := range []string{"lake bottom", "seabed", "", "bottom", "surface "} {
		_, err := domain.ParseLayer(in)
		assert.ErrorIs(t, err, domain.ErrValidation, "input %q should be rejected", in)
	}
}

func TestLayer_JSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(domain.LayerSeaBed)
	require.NoError(t, err)
	assert.Equal(t, `"sea bed"`, string(b))

	var l domain.Layer
	require.NoError(t, json.Unmarshal(b, &l))
	assert.Equal(t, domain.LayerSeaBed, l)
}

func TestLayer_UnmarshalJSON_UnknownValue(t *testing.T) {
	var l domain.Layer
	err := json.Unmarshal([]byte(`"lake bottom"`), &l)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
