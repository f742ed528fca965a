package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// large enough for bodies carrying base64 images.
const maxBodySize = 4 << 20

var ErrBodyTooLarge = errors.New("request body too large")

type Envelope map[string]any

// ReadJSON decodes a single JSON value from the request body into dst, rejecting
// fields dst does not have.
func ReadJSON(r *http.Request, dst any) error {
	return readJSON(r, dst, true)
}

// ReadJSONLenient is ReadJSON that ignores unknown fields.
func ReadJSONLenient(r *http.Request, dst any) error {
	return readJSON(r, dst, false)
}

func readJSON(r *http.Request, dst any, strict bool) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodySize)
	dec := json.NewDecoder(body)
	if strict {
		dec.DisallowUnknownFields()
	}

	if err := dec.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			return ErrBodyTooLarge
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		default:
			return fmt.Errorf("failed to decode body: %w", err)
		}
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

func WriteJSON(w http.ResponseWriter, status int, data any) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(append(js, '\n'))
	return err
}
