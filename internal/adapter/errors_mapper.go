// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-site-gateway/models"
	"github.com/go-resty/resty/v2"
)

// unauthorizedPrefix starts every authorization failure message the gateway
// sends with its 400 answers.
const unauthorizedPrefix = "Unauthorized"

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := errorMessage(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		if strings.HasPrefix(message, unauthorizedPrefix) {
			return fmt.Errorf("%w: %s", ErrUnauthorized, message)
		}
		return fmt.Errorf("%w: %s", ErrGatewayRejected, message)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	default:
		if message == "" {
			message = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), message)
	}
}

// errorMessage extracts the "error" field of a gateway error envelope and
// falls back to the trimmed raw body.
func errorMessage(body []byte) string {
	var envelope models.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return envelope.Error
	}

	return strings.TrimSpace(string(body))
}
