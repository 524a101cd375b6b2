// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the server and the fetcher:
// JSON response writing, JWT signing and verification, the resty client
// wrapper and id generation.
package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// marshalFailureBody is written when the payload cannot be encoded.
const marshalFailureBody = `{"error":"error writing data to JSON"}`

// WriteJSON serializes data to JSON and writes it to the HTTP response with
// the given status code and a "Content-Type: application/json" header.
//
// If marshaling fails, a JSON error body is sent with
// 500 Internal Server Error and a wrapped error is returned.
//
// Example usage:
//
//	WriteJSON(w, items, http.StatusOK)
//	WriteJSON(w, models.ErrorResponse{Error: "Missing taxonomy name."}, http.StatusBadRequest)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "application/json")

	jsonData, err := json.Marshal(data)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(marshalFailureBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
