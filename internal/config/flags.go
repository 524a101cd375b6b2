// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a gateway listen address in format [host]:[port]
//	-d content store DSN
//	-c/-config json file path with configs
//	-auth-secret shared JWT secret
//	-app-version application version
//	-request-timeout gateway request timeout (e.g., "30s", "1m")
//	-gateway-url gateway base URL used by the fetcher
//	-gateway-timeout fetcher request timeout
//	-out fetcher output directory
//	-token-duration lifetime of fetcher tokens (e.g., "5m")
//	-datasets comma separated list of datasets to fetch
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var authSecret string
	var appVersion string
	var requestTimeout time.Duration
	var gatewayURL string
	var gatewayTimeout time.Duration
	var outputDir string
	var tokenDuration time.Duration
	var datasets string

	fs := flag.NewFlagSet("gateway", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Content store DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&authSecret, "auth-secret", "", "Shared JWT secret")
	fs.StringVar(&appVersion, "app-version", "", "Application version")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&gatewayURL, "gateway-url", "", "Gateway base URL")
	fs.DurationVar(&gatewayTimeout, "gateway-timeout", 0, "Gateway request timeout (e.g., 30s)")
	fs.StringVar(&outputDir, "out", "", "Output directory for fetched datasets")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 5m)")
	fs.StringVar(&datasets, "datasets", "", "Comma separated datasets to fetch")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			AuthSecret: authSecret,
			Version:    appVersion,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    gatewayURL,
			RequestTimeout: gatewayTimeout,
		},
		Workers: Workers{
			OutputDir:     outputDir,
			TokenDuration: tokenDuration,
			Datasets:      splitList(datasets),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}

	return list
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
