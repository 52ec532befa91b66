package validator_test

import (
	"errors"
	"math"
	"testing"

	playground "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/goowebia/hay-paso/pkg/validator"
)

type color string

func (c color) Valid() bool { return c == "red" || c == "blue" }

type point struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lng float64 `json:"lng" validate:"lng"`
}

type sample struct {
	Name  string `json:"name" validate:"notblank"`
	Color color  `json:"color" validate:"enum"`
	Where *point `json:"where" validate:"omitempty"`
}

func firstTag(t *testing.T, err error) (string, string) {
	t.Helper()
	var verrs playground.ValidationErrors
	require.True(t, errors.As(err, &verrs), "expected ValidationErrors, got %v", err)
	require.NotEmpty(t, verrs)
	return verrs[0].Field(), verrs[0].Tag()
}

func TestValidateStruct_OK(t *testing.T) {
	require.NoError(t, validator.ValidateStruct(sample{Name: "x", Color: "red"}))
	require.NoError(t, validator.ValidateStruct(sample{Name: "x", Color: "blue", Where: &point{Lat: 0, Lng: 0}}))
	require.NoError(t, validator.ValidateStruct(sample{Name: "x", Color: "blue", Where: &point{Lat: -90, Lng: 180}}))
}

func TestValidateStruct_NotBlank(t *testing.T) {
	for _, name := range []string{"", "   ", "\n\t"} {
		field, tag := firstTag(t, validator.ValidateStruct(sample{Name: name, Color: "red"}))
		require.Equal(t, "name", field)
		require.Equal(t, "notblank", tag)
	}
}

func TestValidateStruct_Enum(t *testing.T) {
	field, tag := firstTag(t, validator.ValidateStruct(sample{Name: "x", Color: "green"}))
	require.Equal(t, "color", field)
	require.Equal(t, "enum", tag)
}

func TestValidateStruct_Coordinates(t *testing.T) {
	cases := []point{
		{Lat: 90.0001, Lng: 0},
		{Lat: -91, Lng: 0},
		{Lat: 0, Lng: 180.5},
		{Lat: 0, Lng: -181},
		{Lat: math.NaN(), Lng: 0},
	}
	for _, p := range cases {
		p := p
		_, tag := firstTag(t, validator.ValidateStruct(sample{Name: "x", Color: "red", Where: &p}))
		require.Contains(t, []string{"lat", "lng"}, tag)
	}
}
