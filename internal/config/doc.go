// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the gateway server and the fetcher.
//
// Configuration is assembled from multiple sources. A field set by an
// earlier source is kept; later sources only fill fields that are still
// empty, and built-in defaults fill whatever remains:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetStructuredConfig] for the gateway server and
// [GetFetcherConfig] for the fetcher.
package config
