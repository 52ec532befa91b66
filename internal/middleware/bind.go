package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goowebia/hay-paso/pkg/e"
	"github.com/goowebia/hay-paso/pkg/validator"
)

const maxBodyBytes = 1 << 20

// DecodeJSON reads exactly one JSON object from the request body into dst.
// An empty body leaves dst untouched.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode body: %v: %w", err, e.ErrInvalidInput)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode body: trailing data: %w", e.ErrInvalidInput)
	}
	return nil
}

// BindJSON decodes and then validates dst with its struct tags.
func BindJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := DecodeJSON(w, r, dst); err != nil {
		return err
	}
	if err := validator.ValidateStruct(dst); err != nil {
		return fmt.Errorf("validate body: %v: %w", err, e.ErrInvalidInput)
	}
	return nil
}
