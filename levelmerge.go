// SPDX-License-Identifier: GPL-3.0-or-later

package clusterlog

// MergeLevels computes the single per-target maximum-verbosity map a
// process-wide [Hub] needs to observe every client entity declared
// across a test file, since only one [Hub] can be installed as the
// default logger at a time even though the declarative format lets each
// client entity request its own observeLogMessages levels (spec §5, C5).
//
// A target present in more than one client entity's map takes the most
// verbose (via [Level.Max]) of the requested levels, matching the
// original source's `Ord::max` merge. Returns an empty, non-nil map
// if the test file declares no client entities with observeLogMessages.
func MergeLevels(testFile *TestFile) map[string]Level {
	merged := make(map[string]Level)

	update := func(entity TestFileEntity) {
		if entity.Client == nil || entity.Client.ObserveLogMessages == nil {
			return
		}
		for target, level := range entity.Client.ObserveLogMessages {
			if current, ok := merged[target]; ok {
				merged[target] = current.Max(level)
			} else {
				merged[target] = level
			}
		}
	}

	for _, test := range testFile.Tests {
		for _, op := range test.Operations {
			if op.Name != "createEntities" {
				continue
			}
			for _, entity := range op.Arguments.Entities {
				update(entity)
			}
		}
	}

	for _, entity := range testFile.CreateEntities {
		update(entity)
	}

	return merged
}
