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

// Package output provides shared output utilities for crateidx CLI
// commands: rendering an Index summary, a set of resolved use-paths, or a
// dependency tree as either plain text or JSON, and writing the result to
// stdout or to the --output file.
package output

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"crateidx/cratedep"
	"crateidx/fs"
	"crateidx/indexer"
	"crateidx/useresolve"
)

// write sends text to the --output file if set, otherwise to stdout.
func write(osfs fs.FileSystem, text string) error {
	if outputPath := viper.GetString("output"); outputPath != "" {
		return osfs.WriteFile(outputPath, []byte(text+"\n"), 0644)
	}
	fmt.Println(text)
	return nil
}

// indexSummary is the JSON-friendly shape of an Index's counts.
type indexSummary struct {
	Structs       int `json:"structs"`
	Enums         int `json:"enums"`
	Consts        int `json:"consts"`
	TypeAliases   int `json:"type_aliases"`
	Modules       int `json:"modules"`
	UseDecls      int `json:"use_decls"`
	UnresolvedUse int `json:"unresolved_use_decls"`
}

func summarize(idx *indexer.Index) indexSummary {
	s := indexSummary{UseDecls: len(idx.Results)}
	for _, r := range idx.Results {
		if len(r.Resolved) == 0 {
			s.UnresolvedUse++
		}
	}
	// Tree sizes aren't exposed directly; Glob at the root module is not a
	// total count, so the summary walks Results' resolved items instead of
	// re-deriving counts the Index type doesn't carry.
	seen := map[string]bool{}
	for _, r := range idx.Results {
		for _, item := range r.Resolved {
			key := item.Kind.String() + ":" + itemKey(item)
			if seen[key] {
				continue
			}
			seen[key] = true
			switch item.Kind {
			case useresolve.KindStruct:
				s.Structs++
			case useresolve.KindEnum:
				s.Enums++
			case useresolve.KindConst:
				s.Consts++
			case useresolve.KindTypeAlias:
				s.TypeAliases++
			case useresolve.KindModule:
				s.Modules++
			}
		}
	}
	return s
}

func itemKey(r useresolve.Resolved) string {
	switch r.Kind {
	case useresolve.KindStruct:
		return r.Struct.Module.Key() + "::" + r.Struct.Name
	case useresolve.KindEnum:
		return r.Enum.Module.Key() + "::" + r.Enum.Name
	case useresolve.KindConst:
		return r.Const.Module.Key() + "::" + r.Const.Name
	case useresolve.KindTypeAlias:
		return r.TypeAlias.Module.Key() + "::" + r.TypeAlias.Name
	case useresolve.KindModule:
		return r.Module.Path.Key()
	default:
		return ""
	}
}

// Index prints an Index's item-kind counts and unresolved-use count.
func Index(osfs fs.FileSystem, idx *indexer.Index, format string) error {
	summary := summarize(idx)
	if format == "json" {
		out, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling index summary: %w", err)
		}
		return write(osfs, string(out))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "structs:       %d\n", summary.Structs)
	fmt.Fprintf(&b, "enums:         %d\n", summary.Enums)
	fmt.Fprintf(&b, "consts:        %d\n", summary.Consts)
	fmt.Fprintf(&b, "type aliases:  %d\n", summary.TypeAliases)
	fmt.Fprintf(&b, "modules:       %d\n", summary.Modules)
	fmt.Fprintf(&b, "use decls:     %d (%d unresolved)", summary.UseDecls, summary.UnresolvedUse)
	return write(osfs, b.String())
}

type resolvedItemJSON struct {
	Kind   string `json:"kind"`
	Name   string `json:"name"`
	Module string `json:"module"`
}

func toJSON(r useresolve.Resolved) resolvedItemJSON {
	switch r.Kind {
	case useresolve.KindStruct:
		return resolvedItemJSON{"struct", r.Struct.Name, r.Struct.Module.Key()}
	case useresolve.KindEnum:
		return resolvedItemJSON{"enum", r.Enum.Name, r.Enum.Module.Key()}
	case useresolve.KindConst:
		return resolvedItemJSON{"const", r.Const.Name, r.Const.Module.Key()}
	case useresolve.KindTypeAlias:
		return resolvedItemJSON{"type", r.TypeAlias.Name, r.TypeAlias.Module.Key()}
	case useresolve.KindModule:
		return resolvedItemJSON{"mod", r.Module.Name, r.Module.Path.Key()}
	default:
		return resolvedItemJSON{}
	}
}

func isPublic(r useresolve.Resolved) bool {
	switch r.Kind {
	case useresolve.KindStruct:
		return r.Struct.Vis.Kind != 0 // modpath.Private is the zero value
	case useresolve.KindEnum:
		return r.Enum.Vis.Kind != 0
	case useresolve.KindConst:
		return r.Const.Vis.Kind != 0
	case useresolve.KindTypeAlias:
		return r.TypeAlias.Vis.Kind != 0
	case useresolve.KindModule:
		return r.Module.Vis.Kind != 0
	default:
		return false
	}
}

// Results prints every resolved item across a set of UseResults. When
// publicOnly is set, private items are filtered out at this presentation
// layer only — resolution itself stays policy-free.
func Results(osfs fs.FileSystem, results []indexer.UseResult, publicOnly bool, format string) error {
	if format == "json" {
		var all []resolvedItemJSON
		for _, res := range results {
			for _, r := range res.Resolved {
				if publicOnly && !isPublic(r) {
					continue
				}
				all = append(all, toJSON(r))
			}
		}
		out, err := json.MarshalIndent(all, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling resolved items: %w", err)
		}
		return write(osfs, string(out))
	}

	var b strings.Builder
	for i, res := range results {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s (from %s):\n", res.UsePath.String(), res.Module.String())
		if len(res.Resolved) == 0 {
			b.WriteString("  <unresolved>")
			continue
		}
		for _, r := range res.Resolved {
			if publicOnly && !isPublic(r) {
				continue
			}
			j := toJSON(r)
			fmt.Fprintf(&b, "  %s %s (%s)\n", r.Kind, j.Name, j.Module)
		}
	}
	return write(osfs, strings.TrimRight(b.String(), "\n"))
}

// Tree prints a crate's dependency graph depth-first as plain indented
// text (no colouring, no box-drawing).
func Tree(osfs fs.FileSystem, g *cratedep.Graph, root string) error {
	var b strings.Builder
	visited := make(map[string]bool)
	printTree(&b, g, root, 0, visited)
	return write(osfs, strings.TrimRight(b.String(), "\n"))
}

func printTree(b *strings.Builder, g *cratedep.Graph, crate string, depth int, visited map[string]bool) {
	indent := strings.Repeat("  ", depth)
	if visited[crate] {
		fmt.Fprintf(b, "%s%s (*)\n", indent, crate)
		return
	}
	visited[crate] = true

	edition := g.Edition(crate)
	if edition == "" {
		fmt.Fprintf(b, "%s%s\n", indent, crate)
	} else {
		fmt.Fprintf(b, "%s%s (edition %s)\n", indent, crate, edition)
	}

	deps := g.Dependencies(crate)
	sort.Strings(deps)
	for _, dep := range deps {
		printTree(b, g, dep, depth+1, visited)
	}
}
