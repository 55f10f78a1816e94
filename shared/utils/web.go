package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/Ghorpaderamdas/server-Hotel/shared/errors"
	"github.com/Ghorpaderamdas/server-Hotel/shared/logger"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), errors.StatusCode(err))
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Error("encoding json response", "error", err)
	}
}

// Validate runs struct tag validation on v.
func Validate(v any) error {
	return validate.Struct(v)
}

func DecodeValidate(r io.Reader, body any) error {
	if err := Decode(r, body); err != nil {
		return err
	}
	if err := Validate(body); err != nil {
		logger.Log.Debug("validation failed", "error", err)
		return errors.BadRequest("Required fields missing")
	}
	return nil
}

func Decode(r io.Reader, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("invalid json", "error", err)
		return errors.BadRequest("Body is invalid json")
	}
	return nil
}
