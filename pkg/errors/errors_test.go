package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("site.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "site.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: site.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("site.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: site.yaml: no such file", err.Error())
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("headline.stops[2].position", "stops must be ordered by position", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "headline.stops[2].position", validationErr.Field)
	require.Contains(t, err.Error(), "stops must be ordered")
}

func TestColorErrorIncludesValue(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("bad hex")
	err := NewColorError("#zzz", underlying)

	var colorErr *ColorError
	require.ErrorAs(t, err, &colorErr)
	require.Equal(t, "#zzz", colorErr.Value)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), `"#zzz"`)
}

func TestDeliveryErrorIncludesTransport(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("connection refused")
	err := NewDeliveryError("smtp", underlying)

	var deliveryErr *DeliveryError
	require.ErrorAs(t, err, &deliveryErr)
	require.Equal(t, "smtp", deliveryErr.Transport)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "delivery error [smtp]: connection refused", err.Error())
}
