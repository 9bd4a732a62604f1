package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"slices"
	"strings"

	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/go-playground/validator/v10"
)

const (
	maxBodyBytes = 1 << 20

	codeMissingField = "missing_field"
	codeInvalidField = "invalid_field"
	codeUnknownField = "unknown_field"
	codeInvalidBody  = "invalid_body"
)

type (
	// Fields are pointers so an absent key is told apart from an empty value.
	createLocationRequest struct {
		Name *string `json:"name" validate:"required"`
	}

	createAPIUserRequest struct {
		Name     *string `json:"name" validate:"required"`
		Email    *string `json:"email" validate:"required,email"`
		Password *string `json:"password" validate:"required"`
	}

	createDeviceRequest struct {
		Name     *string           `json:"name" validate:"required"`
		Type     *string           `json:"type" validate:"required"`
		Login    *string           `json:"login" validate:"required"`
		Password *string           `json:"password" validate:"required"`
		Location *model.LocationID `json:"location" validate:"required,gt=0"`
		APIUser  *model.APIUserID  `json:"api_user" validate:"required,gt=0"`
	}

	// updateDeviceRequest accepts any subset of the device columns. An
	// explicit null is rejected rather than read as absent.
	updateDeviceRequest struct {
		Name     *string           `json:"name"`
		Type     *string           `json:"type"`
		Login    *string           `json:"login"`
		Password *string           `json:"password"`
		Location *model.LocationID `json:"location" validate:"omitempty,gt=0"`
		APIUser  *model.APIUserID  `json:"api_user" validate:"omitempty,gt=0"`
	}

	nullRejecter interface {
		rejectsNullFields()
	}
)

var jsonNull = []byte("null")

func (updateDeviceRequest) rejectsNullFields() {}

func (r updateDeviceRequest) toPatch() model.DevicePatch {
	return model.DevicePatch{
		Name:     r.Name,
		Type:     r.Type,
		Login:    r.Login,
		Password: r.Password,
		Location: r.Location,
		APIUser:  r.APIUser,
	}
}

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return validate
}

// decodeAndValidate reads exactly one JSON object into dst, rejecting
// unknown keys, and then applies the struct's validation tags.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := decodeJSONBody(w, r, dst); err != nil {
		return err
	}

	if err := h.validate.Struct(dst); err != nil {
		return toValidationErrors(err)
	}

	return nil
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	var raw json.RawMessage
	if err := decoder.Decode(&raw); err != nil {
		return decodeError(err)
	}

	if decoder.More() {
		return newValidationError("", "request body must contain a single JSON object", codeInvalidBody)
	}

	if bytes.Equal(raw, jsonNull) {
		return newValidationError("", "request body must be a JSON object", codeInvalidBody)
	}

	strict := json.NewDecoder(bytes.NewReader(raw))
	strict.DisallowUnknownFields()

	if err := strict.Decode(dst); err != nil {
		return decodeError(err)
	}

	if _, ok := dst.(nullRejecter); ok {
		return rejectNullFields(raw)
	}

	return nil
}

func rejectNullFields(raw json.RawMessage) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return decodeError(err)
	}

	keys := make([]string, 0, len(fields))
	for key, value := range fields {
		if bytes.Equal(value, jsonNull) {
			keys = append(keys, key)
		}
	}

	if len(keys) == 0 {
		return nil
	}

	slices.Sort(keys)

	validationErrs := model.NewValidationErrors()
	for _, key := range keys {
		validationErrs.Add(key, "invalid field: "+key, codeInvalidField)
	}

	return validationErrs
}

func decodeError(err error) error {
	var (
		syntaxErr   *json.SyntaxError
		typeErr     *json.UnmarshalTypeError
		maxBytesErr *http.MaxBytesError
	)

	switch {
	case errors.Is(err, io.EOF):
		return newValidationError("", "request body is empty", codeInvalidBody)
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return newValidationError("", "malformed JSON body", codeInvalidBody)
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return newValidationError("", "request body must be a JSON object", codeInvalidBody)
		}

		return newValidationError(typeErr.Field, "invalid type for field: "+typeErr.Field, codeInvalidField)
	case errors.As(err, &maxBytesErr):
		return newValidationError("", "request body is too large", codeInvalidBody)
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)

		return newValidationError(field, "unknown field: "+field, codeUnknownField)
	default:
		return newValidationError("", "invalid request body", codeInvalidBody)
	}
}

func toValidationErrors(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return newValidationError("", err.Error(), codeInvalidBody)
	}

	validationErrs := model.NewValidationErrors()

	for _, fieldErr := range fieldErrs {
		field := fieldErr.Field()

		switch fieldErr.Tag() {
		case "required":
			validationErrs.Add(field, "missing field: "+field, codeMissingField)
		case "gt":
			validationErrs.Add(field, "invalid field: "+field+" must be a positive id", codeInvalidField)
		case "email":
			validationErrs.Add(field, "invalid field: "+field+" must be a valid email address", codeInvalidField)
		default:
			validationErrs.Add(field, fmt.Sprintf("invalid field: %s failed %s", field, fieldErr.Tag()), codeInvalidField)
		}
	}

	return validationErrs
}

func newValidationError(field, message, code string) error {
	validationErrs := model.NewValidationErrors()
	validationErrs.Add(field, message, code)

	return validationErrs
}
