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

// Package tree provides the tree command for crateidx: a depth-first,
// plain-text print of the crate dependency graph the PackageProvider
// resolved. Presentation only — the graph itself is built by
// cratedep.Graph, never by this package.
package tree

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"crateidx/cmd/crateidx"
	"crateidx/fs"
	"crateidx/internal/output"
)

// Cmd is the tree command: prints the crate dependency graph rooted at
// the main crate (inferred from --root, or overridden with --main-crate).
var Cmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the crate dependency graph",
	Long: `Build the crate dependency graph from the resolved packages under
--root (and --stdlib, if given) and print it depth-first as plain indented
text, starting from the main crate.`,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	osfs := fs.NewOSFileSystem()
	provider, err := crateidx.BuildProvider(osfs)
	if err != nil {
		return err
	}

	g, err := crateidx.BuildDependencyGraph(provider)
	if err != nil {
		return fmt.Errorf("building dependency graph: %w", err)
	}

	root := viper.GetString("main-crate")
	if root == "" {
		abs, err := filepath.Abs(viper.GetString("root"))
		if err != nil {
			return fmt.Errorf("invalid root directory: %w", err)
		}
		root = filepath.Base(abs)
	}

	return output.Tree(osfs, g, root)
}
