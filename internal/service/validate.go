package service

import (
	"errors"
	"strings"

	playground "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/goowebia/hay-paso/internal/domain"
	"github.com/goowebia/hay-paso/pkg/e"
	"github.com/goowebia/hay-paso/pkg/validator"
)

// ReportValidator turns a draft into a Report. Apart from the ID it is a pure function of the draft.
type ReportValidator struct {
	newID func() uuid.UUID
}

func NewReportValidator(newID func() uuid.UUID) *ReportValidator {
	if newID == nil {
		newID = uuid.New
	}
	return &ReportValidator{newID: newID}
}

func (v *ReportValidator) Validate(d domain.ReportDraft) (*domain.Report, error) {
	if err := validator.ValidateStruct(d); err != nil {
		return nil, toValidationError(err)
	}

	r := &domain.Report{
		ID:               v.newID(),
		AuthorName:       d.AuthorName,
		AuthorAvatar:     d.AuthorAvatar,
		CreatedAt:        d.CreatedAt,
		Location:         strings.TrimSpace(d.Location),
		Description:      strings.TrimSpace(d.Description),
		Status:           d.Status,
		MediaURL:         d.MediaURL,
		MediaKind:        domain.MediaKindOf(d.MediaURL),
		IsExternalSource: d.IsExternalSource,
	}
	if d.Coords != nil {
		c := *d.Coords
		r.Coords = &c
	}
	return r, nil
}

// toValidationError reports the first failing field, in draft field order.
func toValidationError(err error) error {
	var verrs playground.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return e.Wrap("validate draft", e.ErrInvalidInput)
	}

	fe := verrs[0]
	switch fe.StructField() {
	case "Description":
		return &e.ValidationError{Field: "description", Err: e.ErrEmptyDescription}
	case "Location":
		return &e.ValidationError{Field: "location", Err: e.ErrEmptyLocation}
	case "Status":
		return &e.ValidationError{Field: "status", Err: e.ErrInvalidStatus}
	case "Lat", "Lng":
		return &e.ValidationError{Field: "coords", Err: e.ErrInvalidCoordinates}
	default:
		return &e.ValidationError{Field: fe.Field(), Err: e.ErrInvalidInput}
	}
}
