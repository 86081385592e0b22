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

// Package index provides the index command for crateidx.
package index

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"crateidx/cmd/crateidx"
	"crateidx/diag"
	"crateidx/fs"
	"crateidx/internal/output"
)

// Cmd is the index command: runs a full indexing pass and prints a
// summary of every extracted item kind plus unresolved use-path count.
var Cmd = &cobra.Command{
	Use:   "index",
	Short: "Index a crate's items and use-paths",
	Long: `Discover, parse, and extract every item and use-path reachable
from the crate rooted at --root, resolve each use-path, and print a
summary of the result.`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
}

func run(cmd *cobra.Command, args []string) error {
	// format is local to this command (unlike --root/--edition/--stdlib,
	// which are persistent and therefore viper-bound), so it is read
	// straight off the flag set rather than through viper's global
	// namespace, where the resolve command's own "format" key would
	// collide with it.
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("reading format flag: %w", err)
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format %q: must be 'text' or 'json'", format)
	}

	osfs := fs.NewOSFileSystem()
	idx, err := crateidx.RunIndex(context.Background(), osfs, diag.StderrLogger{})
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}
	return output.Index(osfs, idx, format)
}
