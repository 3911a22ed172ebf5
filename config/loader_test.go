// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	l := NewLoader(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.Equal(t, Defaults(), l.Load())
}

func TestLoadPartialTOMLOverlaysOnlySetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	os.WriteFile(path, []byte("scroll_speed = 42.0\n"), 0o644)

	l := NewLoader(path)
	got := l.Load()

	want := Defaults()
	want.ScrollSpeed = 42.0
	assert.Equal(t, want, got)
}

func TestLoadYAMLByExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	os.WriteFile(path, []byte("default_click_timeout: 0.2\n"), 0o644)

	l := NewLoader(path)
	got := l.Load()

	assert.InDelta(t, 0.2, got.DefaultClickTimeout, 1e-6)
	assert.Equal(t, Defaults().ScrollSpeed, got.ScrollSpeed)
}

func TestLoadCorruptFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	os.WriteFile(path, []byte("not = [valid toml"), 0o644)

	l := NewLoader(path)
	assert.Equal(t, Defaults(), l.Load())
}
