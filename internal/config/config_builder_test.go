// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns the
// defaults only.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, defaults(), cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that a field set by an earlier source
// is not overwritten by a later one, while empty fields are filled.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{AuthSecret: "from-env"}},
		&StructuredConfig{App: App{AuthSecret: "from-flags", Version: "1.0.0"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.AuthSecret)
	assert.Equal(t, "1.0.0", cfg.App.Version)
}

func TestBuild_DefaultsDoNotOverrideSources(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Server:  Server{HTTPAddress: "0.0.0.0:9000"},
		Workers: Workers{TokenDuration: time.Hour},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Hour, cfg.Workers.TokenDuration)
	assert.Equal(t, defaultOutputDir, cfg.Workers.OutputDir)
	assert.Equal(t, defaultArticlesCollectionID, cfg.Endpoints.ArticlesCollectionID)
}

// ── withEnv / withFlags / withJSON ───────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_AUTH_SECRET": "env-secret"})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-secret", b.configs[0].App.AuthSecret)
}

func TestWithEnv_SetsError_OnInvalidValue(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "never"})

	b := newConfigBuilder().withEnv()
	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlags_AppendsConfig(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-auth-secret", "flag-secret"})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-secret", b.configs[0].App.AuthSecret)
}

func TestWithFlags_SetsError_OnBadFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "nonsense"})
	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"auth_secret": "json-secret"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-secret", b.configs[1].App.AuthSecret)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/file.json"})

	b.withJSON()
	require.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_UsesFirstPath verifies that the env-provided path takes
// priority over the flag-provided one.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "second"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "first", b.configs[2].App.Version)
}

// ── loadConfig ───────────────────────────────────────────────────────────────

func TestLoadConfig_AllSources(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"auth_secret": "json-secret", "version": "json-version"},
		"storage": map[string]any{"db": map[string]any{"dsn": "json.db"}},
	})
	setEnvVars(t, map[string]string{
		"APP_AUTH_SECRET": "env-secret",
		"CONFIG":          path,
	})

	cfg, err := loadConfig([]string{"-app-version", "flag-version"})

	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.App.AuthSecret)
	assert.Equal(t, "flag-version", cfg.App.Version)
	assert.Equal(t, "json.db", cfg.Storage.DB.DSN)
}
