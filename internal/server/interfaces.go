// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle of the gateway server.
//
// RunServer blocks until a stop signal arrives or serving fails, and
// Shutdown stops accepting requests and waits for in-flight ones.
type Server interface {
	RunServer() error

	Shutdown()
}
