package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/xeipuuv/gojsonschema"

	"github.com/sportbet/sportbet-api/mason"
	"github.com/sportbet/sportbet-api/services"
)

const maxBodyBytes = 1_048_576 // 1MB

var errUnsupportedMediaType = errors.New("request body must be application/json")

// validationError carries the schema validator's message into the error
// document's details.
type validationError struct {
	details string
}

func (e *validationError) Error() string {
	return e.details
}

func writeMason(w http.ResponseWriter, status int, doc mason.Document, headers http.Header) error {
	js, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	for key, value := range headers {
		w.Header()[key] = value
	}
	w.Header().Set("Content-Type", mason.MediaType)
	w.WriteHeader(status)
	if _, err = w.Write(js); err != nil {
		return err
	}
	return nil
}

// errorResponse emits the uniform error document shape every failure uses.
func errorResponse(w http.ResponseWriter, status int, title string, details ...string) {
	if err := writeMason(w, status, mason.ErrorBody(title, details...), nil); err != nil {
		slog.Error("failed to write error document", slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func serverErrorResponse(w http.ResponseWriter, err error) {
	slog.Error("internal server error", slog.Any("error", err))
	errorResponse(w, http.StatusInternalServerError, "Internal server error",
		"the server encountered a problem and could not process your request")
}

// readValidatedJSON enforces the JSON media type, validates the body
// against the entity's schema and decodes it into dst.
func readValidatedJSON(r *http.Request, schema map[string]any, dst any) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return errUnsupportedMediaType
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return &validationError{details: fmt.Sprintf("failed to read request body: %v", err)}
	}

	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(schema), gojsonschema.NewBytesLoader(body))
	if err != nil {
		// Malformed JSON never reaches schema evaluation.
		return &validationError{details: err.Error()}
	}
	if !result.Valid() {
		return &validationError{details: result.Errors()[0].String()}
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return &validationError{details: err.Error()}
	}
	return nil
}

// requestErrorResponse maps readValidatedJSON failures to 415/400.
func requestErrorResponse(w http.ResponseWriter, err error) {
	if errors.Is(err, errUnsupportedMediaType) {
		errorResponse(w, http.StatusUnsupportedMediaType, "Unsupported media type", "JSON required")
		return
	}
	var ve *validationError
	if errors.As(err, &ve) {
		errorResponse(w, http.StatusBadRequest, "Invalid JSON document", ve.details)
		return
	}
	errorResponse(w, http.StatusBadRequest, "Invalid JSON document", err.Error())
}

// mapServiceErrorToHTTP преобразует ошибки сервисного слоя в HTTP-ответы.
func mapServiceErrorToHTTP(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrEventNotFound),
		errors.Is(err, services.ErrMemberNotFound),
		errors.Is(err, services.ErrGameNotFound),
		errors.Is(err, services.ErrBetGameNotFound),
		errors.Is(err, services.ErrBetNotFound):
		errorResponse(w, http.StatusNotFound, "Not found", err.Error())

	case errors.Is(err, services.ErrEventNameConflict),
		errors.Is(err, services.ErrMemberNicknameConflict),
		errors.Is(err, services.ErrGameNumberConflict),
		errors.Is(err, services.ErrBetConflict):
		errorResponse(w, http.StatusConflict, err.Error())

	case errors.Is(err, services.ErrBetNegativeGoals):
		errorResponse(w, http.StatusUnprocessableEntity, "Bet goals must not be negative")

	case errors.Is(err, services.ErrEventNameRequired),
		errors.Is(err, services.ErrMemberNicknameRequired),
		errors.Is(err, services.ErrGameFieldsRequired):
		errorResponse(w, http.StatusBadRequest, "Invalid JSON document", err.Error())

	case errors.Is(err, services.ErrEmblemStorageDisabled):
		errorResponse(w, http.StatusServiceUnavailable, err.Error())

	default:
		serverErrorResponse(w, err)
	}
}

func locationHeader(url string) http.Header {
	return http.Header{"Location": []string{url}}
}
