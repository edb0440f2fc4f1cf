package utils

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"pulseboard/internal/shared/errors"
)

// DecodeImage decodes a base64 payload, accepting an optional data URL
// prefix, and enforces maxBytes on the decoded size.
func DecodeImage(field, encoded string, maxBytes int) ([]byte, error) {
	if encoded == "" {
		return nil, nil
	}
	if strings.HasPrefix(encoded, "data:") {
		if _, rest, ok := strings.Cut(encoded, ","); ok {
			encoded = rest
		}
	}
	if base64.StdEncoding.DecodedLen(len(encoded)) > maxBytes+3 {
		return nil, imageTooLarge(field, maxBytes)
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.NewValidationError("Validation failed", field+" must be base64 encoded")
	}
	if len(data) > maxBytes {
		return nil, imageTooLarge(field, maxBytes)
	}
	return data, nil
}

func imageTooLarge(field string, maxBytes int) error {
	return errors.NewValidationError("Validation failed",
		fmt.Sprintf("%s must be at most %d bytes", field, maxBytes))
}

// ImageContentType sniffs the stored bytes.
func ImageContentType(data []byte) string {
	return http.DetectContentType(data)
}
