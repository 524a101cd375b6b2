// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the gateway rejects the token.
	ErrUnauthorized = errors.New("gateway unauthorized")

	// ErrGatewayRejected is returned for any other 400 answer; the gateway's
	// error message is appended.
	ErrGatewayRejected = errors.New("gateway rejected request")

	// ErrNotFound is returned when the route does not exist on the gateway.
	ErrNotFound = errors.New("gateway route not found")

	// ErrUnexpectedStatus covers every other non-2xx answer.
	ErrUnexpectedStatus = errors.New("unexpected gateway status")

	// ErrDecodingResponse is returned when a 2xx body is not a JSON array.
	ErrDecodingResponse = errors.New("error decoding gateway response")

	ErrInvalidAddress = errors.New("invalid gateway address")
)
