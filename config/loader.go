// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"

	baseerrors "github.com/inputcore/engine/base/errors"
	"github.com/fsnotify/fsnotify"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the settings file resolved under the user's home
// directory, mirroring the teacher's own `~/.config/<app>` convention.
const DefaultPath = "~/.config/inputcore/settings.toml"

// Loader resolves, loads, and optionally hot-reloads a Constants table.
// The zero value is usable; Load falls back to Defaults on any read or
// parse failure rather than surfacing an error to the engine (§7).
type Loader struct {
	Path    string
	watcher *fsnotify.Watcher
}

// NewLoader returns a Loader rooted at path, or [DefaultPath] if empty.
func NewLoader(path string) *Loader {
	if path == "" {
		path = DefaultPath
	}
	return &Loader{Path: path}
}

// Load resolves l.Path (expanding a leading ~ via go-homedir), reads it
// as TOML (or YAML, by extension), and merges any nonzero fields over
// [Defaults]. A missing file, unresolvable home directory, or parse
// error all yield Defaults(), logged but not fatal.
func (l *Loader) Load() Constants {
	out := Defaults()

	resolved, err := homedir.Expand(l.Path)
	if err != nil {
		baseerrors.Log(err)
		return out
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		// No settings file is the common case, not a failure worth logging.
		return out
	}

	var loaded Constants
	if filepath.Ext(resolved) == ".yaml" || filepath.Ext(resolved) == ".yml" {
		err = yaml.Unmarshal(data, &loaded)
	} else {
		err = toml.Unmarshal(data, &loaded)
	}
	if err != nil {
		baseerrors.Log(err)
		return out
	}

	mergeNonZero(&out, loaded)
	return out
}

// Watch starts watching l.Path for writes, invoking onChange with the
// freshly reloaded Constants each time the file changes. The returned
// stop function releases the underlying fsnotify watcher; callers
// should defer it. Watch failures (missing directory, platform limits)
// are logged and Watch becomes a no-op, matching §7's "collaborator
// failure never propagates" policy.
func (l *Loader) Watch(onChange func(Constants)) (stop func()) {
	resolved, err := homedir.Expand(l.Path)
	if err != nil {
		baseerrors.Log(err)
		return func() {}
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		baseerrors.Log(err)
		return func() {}
	}
	if err := w.Add(filepath.Dir(resolved)); err != nil {
		baseerrors.Log(err)
		w.Close()
		return func() {}
	}
	l.watcher = w

	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Name != resolved {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					onChange(l.Load())
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				baseerrors.Log(err)
			}
		}
	}()

	return func() { w.Close() }
}
