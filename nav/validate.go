// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nav

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Validate walks every invariant listed in spec.md §3.3 and returns a
// concatenated human-readable description of any violation, or an empty
// string on success (spec §4.7.G).
func (m *Manager) Validate() string {
	var errs []string

	for layerName, l := range m.Layers {
		for _, groupName := range l.Groups {
			if _, ok := m.Groups[groupName]; !ok {
				errs = append(errs, fmt.Sprintf("layer %q references unknown group %q", layerName, groupName))
			}
		}
	}

	for groupName, layerName := range m.GroupToLayer {
		if _, ok := m.Layers[layerName]; !ok {
			errs = append(errs, fmt.Sprintf("group_to_layer[%q] references unknown layer %q", groupName, layerName))
		}
	}

	for name, g := range m.Groups {
		if len(g.Entries) == 0 && g.SelectedIndex != -1 {
			errs = append(errs, fmt.Sprintf("group %q is empty but selected_index=%d", name, g.SelectedIndex))
		}
		if len(g.Entries) > 0 && (g.SelectedIndex < -1 || g.SelectedIndex >= len(g.Entries)) {
			errs = append(errs, fmt.Sprintf("group %q selected_index=%d out of range [0,%d)", name, g.SelectedIndex, len(g.Entries)))
		}
		seen := map[string]bool{}
		for _, e := range g.Entries {
			key := fmt.Sprintf("%d", e)
			if seen[key] {
				errs = append(errs, fmt.Sprintf("group %q contains duplicate entity %v", name, e))
			}
			seen[key] = true
		}
	}

	for e, groupName := range m.EntityToGroup {
		g, ok := m.Groups[groupName]
		if !ok {
			errs = append(errs, fmt.Sprintf("entity_to_group[%v]=%q references unknown group", e, groupName))
			continue
		}
		if !slices.Contains(g.Entries, e) {
			errs = append(errs, fmt.Sprintf("entity_to_group[%v]=%q but group does not contain the entity", e, groupName))
		}
	}

	return strings.Join(errs, "; ")
}
