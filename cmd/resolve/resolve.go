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

// Package resolve provides the resolve command for crateidx.
package resolve

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"crateidx/cmd/crateidx"
	"crateidx/diag"
	"crateidx/fs"
	"crateidx/indexer"
	"crateidx/internal/output"
)

// Cmd is the resolve command: indexes the crate, then prints every item
// bound by one specific use-path written in one specific module (or every
// use-path discovered, when no arguments are given).
var Cmd = &cobra.Command{
	Use:   "resolve [module] [use-path]",
	Short: "Resolve a use-path against the indexed crate",
	Long: `Index the crate rooted at --root, then print the items a given
use-path resolves to (module is a "::"-joined module path, use-path is the
literal text written in a use declaration). With no arguments, every
resolved use-path found during indexing is printed.`,
	Args: cobra.MaximumNArgs(2),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
	Cmd.Flags().Bool("public-only", false, "Filter out non-public resolved items")
}

func run(cmd *cobra.Command, args []string) error {
	// Both flags are local to this command, so they are read straight off
	// the flag set rather than through viper's global namespace (see
	// cmd/index's comment for why).
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("reading format flag: %w", err)
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format %q: must be 'text' or 'json'", format)
	}
	publicOnly, err := cmd.Flags().GetBool("public-only")
	if err != nil {
		return fmt.Errorf("reading public-only flag: %w", err)
	}

	osfs := fs.NewOSFileSystem()
	idx, err := crateidx.RunIndex(context.Background(), osfs, diag.StderrLogger{})
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	results := idx.Results
	if len(args) == 2 {
		module, usePath := args[0], args[1]
		results = filterResults(idx.Results, module, usePath)
		if len(results) == 0 {
			return fmt.Errorf("no use-decl %q found in module %q", usePath, module)
		}
	}

	return output.Results(osfs, results, publicOnly, format)
}

func filterResults(all []indexer.UseResult, module, usePath string) []indexer.UseResult {
	var out []indexer.UseResult
	for _, r := range all {
		// UsePath.String() carries the declaration's visibility prefix
		// ("pub " etc.); the argument is just the path text, so strip the
		// prefix before comparing.
		text := strings.TrimPrefix(r.UsePath.String(), r.UsePath.Vis.String())
		if r.Module.Key() == module && text == usePath {
			out = append(out, r)
		}
	}
	return out
}
