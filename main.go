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

// Command crateidx indexes a multi-crate package and resolves every
// use-path in it against the items it finds.
package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"crateidx/cmd/index"
	"crateidx/cmd/resolve"
	"crateidx/cmd/tree"
	"crateidx/cmd/version"
)

var (
	cpuprofile     string
	cpuprofileFile *os.File
	rootCmd        = &cobra.Command{
		Use:   "crateidx",
		Short: "Index a crate's items and resolve its use-paths",
		Long: `crateidx discovers every module in a crate (and its dependency
closure), extracts its structs, enums, consts, type aliases, modules, and
extern-crate declarations, and resolves every use declaration against them.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cpuprofile != "" {
				f, err := os.Create(cpuprofile)
				if err != nil {
					return fmt.Errorf("could not create CPU profile: %w", err)
				}
				cpuprofileFile = f
				if err := pprof.StartCPUProfile(f); err != nil {
					closeErr := f.Close()
					return errors.Join(
						fmt.Errorf("could not start CPU profile: %w", err),
						closeErr,
					)
				}
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if cpuprofileFile != nil {
				pprof.StopCPUProfile()
				if err := cpuprofileFile.Close(); err != nil {
					return fmt.Errorf("closing CPU profile: %w", err)
				}
			}
			return nil
		},
	}
)

func init() {
	// Root flags (persistent across all commands)
	rootCmd.PersistentFlags().StringP("root", "r", ".", "Crate source root directory")
	rootCmd.PersistentFlags().String("edition", "", "Edition applied to the crate under --root and to every --stdlib package (defaults to \"2015\" when empty, per Cargo's own default)")
	rootCmd.PersistentFlags().String("stdlib", "", "Path to a standard-library checkout, indexed as extra pseudo-packages")
	rootCmd.PersistentFlags().String("main-crate", "", "Crate whose non-library targets (binaries, tests) are also indexed")
	rootCmd.PersistentFlags().StringSlice("exclude", nil, "Glob patterns of source paths to exclude from discovery")
	rootCmd.PersistentFlags().Bool("allow-2015-degraded", false, "Treat edition-2015 crates with a reduced, relative-to-crate-root approximation instead of failing with UnsupportedEdition")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file (default: stdout)")
	rootCmd.PersistentFlags().StringVar(&cpuprofile, "cpuprofile", "", "Write CPU profile to file")

	_ = viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	_ = viper.BindPFlag("edition", rootCmd.PersistentFlags().Lookup("edition"))
	_ = viper.BindPFlag("stdlib", rootCmd.PersistentFlags().Lookup("stdlib"))
	_ = viper.BindPFlag("main-crate", rootCmd.PersistentFlags().Lookup("main-crate"))
	_ = viper.BindPFlag("exclude", rootCmd.PersistentFlags().Lookup("exclude"))
	_ = viper.BindPFlag("allow-2015-degraded", rootCmd.PersistentFlags().Lookup("allow-2015-degraded"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))

	// Add commands
	rootCmd.AddCommand(index.Cmd)
	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(tree.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
