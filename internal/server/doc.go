// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the gateway's HTTP server until SIGTERM, SIGINT or
// SIGQUIT, then shuts it down gracefully.
package server
