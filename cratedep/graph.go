/*
Copyright © 2026 Benny Powers <web@bennypowers.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

// Package cratedep tracks the crate dependency graph handed to the indexer
// by the PackageProvider collaborator, so that cmd/crateidx can print it
// without recomputing reachability on every query. The indexer does not
// use it.
package cratedep

import (
	"slices"
	"sync"
)

// Graph tracks crate dependencies for presentation and diagnostics.
// The indexer does not compute this graph (feature unification and
// dependency resolution are collaborator concerns) — it only records
// what the PackageProvider already resolved.
type Graph struct {
	mu sync.RWMutex

	// dependsOn maps crate name -> set of crate names it depends on.
	dependsOn map[string]map[string]bool

	// dependents maps crate name -> set of crates that depend on it.
	dependents map[string]map[string]bool

	// editions maps crate name -> its edition string.
	editions map[string]string

	// roots maps crate name -> its source root path.
	roots map[string]string
}

// New creates a new empty dependency graph.
func New() *Graph {
	return &Graph{
		dependsOn:  make(map[string]map[string]bool),
		dependents: make(map[string]map[string]bool),
		editions:   make(map[string]string),
		roots:      make(map[string]string),
	}
}

// AddDependency records that crate depends on dep.
func (g *Graph) AddDependency(crate, dep string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.dependsOn[crate] == nil {
		g.dependsOn[crate] = make(map[string]bool)
	}
	g.dependsOn[crate][dep] = true

	if g.dependents[dep] == nil {
		g.dependents[dep] = make(map[string]bool)
	}
	g.dependents[dep][crate] = true
}

// SetEdition records the edition for a crate.
func (g *Graph) SetEdition(crate, edition string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.editions[crate] = edition
}

// Edition returns the recorded edition for a crate, or "" if unknown.
func (g *Graph) Edition(crate string) string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.editions[crate]
}

// SetSourceRoot records the source-root filesystem path for a crate.
func (g *Graph) SetSourceRoot(crate, path string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.roots[crate] = path
}

// Dependencies returns the crates that crate directly depends on, sorted.
func (g *Graph) Dependencies(crate string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	deps := g.dependsOn[crate]
	if deps == nil {
		return nil
	}
	result := make([]string, 0, len(deps))
	for dep := range deps {
		result = append(result, dep)
	}
	slices.Sort(result)
	return result
}

// Crates returns every crate name known to the graph, sorted.
func (g *Graph) Crates() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[string]bool)
	for crate := range g.dependsOn {
		seen[crate] = true
	}
	for crate := range g.dependents {
		seen[crate] = true
	}
	for crate := range g.roots {
		seen[crate] = true
	}
	result := make([]string, 0, len(seen))
	for crate := range seen {
		result = append(result, crate)
	}
	slices.Sort(result)
	return result
}
