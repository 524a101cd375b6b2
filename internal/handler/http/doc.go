// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the gateway.
//
// Every data endpoint goes through the same authenticated dispatch: the
// bearer token is taken from the Authorization header, verified against
// the endpoint's expected subject, and exactly one service call produces
// the JSON list returned with 200. Any failure along the way is logged with
// the endpoint id and answered with 400 and an {"error": "..."} body.
//
// Request tracing, access logging and response compression are applied as
// router middleware before requests reach the endpoint handlers.
package http
