// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
)

// envParsers trims string values, including each element of
// envSeparator-split lists, so "events, members" yields two clean names.
var envParsers = map[reflect.Type]env.ParserFunc{
	reflect.TypeOf(""): func(v string) (any, error) {
		return strings.TrimSpace(v), nil
	},
}

// parseEnv fills cfg from the environment following the env, envPrefix and
// envSeparator tags on [StructuredConfig].
func parseEnv(cfg any) error {
	opts := env.Options{FuncMap: envParsers}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
