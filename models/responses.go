// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the body of every failed gateway response.
type ErrorResponse struct {
	Error string `json:"error"`
}
