// SPDX-License-Identifier: GPL-3.0-or-later

package clusterlog

// This file models just enough of the unified test-format shape (the
// declarative YAML test files the original source runs against) for
// [MergeLevels] to walk: top-level create_entities, and each test's
// createEntities operations. Every other unified-format concept (other
// operation kinds, expectations, outcomes) is out of scope for this
// package (spec §10, Non-goals).

// TestFile is the root of a declarative test file.
type TestFile struct {
	CreateEntities []TestFileEntity `yaml:"createEntities"`
	Tests          []TestCase       `yaml:"tests"`
}

// TestCase is a single test within a [TestFile].
type TestCase struct {
	Description string          `yaml:"description"`
	Operations  []TestOperation `yaml:"operations"`
}

// TestOperation is a single step of a [TestCase]. Only the createEntities
// operation is modeled; its Entities field is populated from the
// operation's `arguments.entities` list.
type TestOperation struct {
	Name      string `yaml:"name"`
	Arguments struct {
		Entities []TestFileEntity `yaml:"entities"`
	} `yaml:"arguments"`
}

// TestFileEntity is a single entity definition. Only the client variant
// is modeled, since it is the only one [MergeLevels] inspects.
type TestFileEntity struct {
	Client *ClientEntity `yaml:"client"`
}

// ClientEntity is the client entity variant of [TestFileEntity].
type ClientEntity struct {
	ObserveLogMessages map[string]Level `yaml:"observeLogMessages"`
}
