/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command segtab compiles segment table files from the command line and
// reports what a device would install.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dirpx.dev/segtab"
	"dirpx.dev/segtab/config"
	"dirpx.dev/segtab/scan"
	"dirpx.dev/segtab/targets"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "segtab",
		Short:         "Compile and inspect segment table files",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().Bool("strict", false,
		"reject malformed numerals instead of parsing them as zero")
	root.PersistentFlags().Int("max-line", config.DefaultMaxLineBytes,
		"line length cap in bytes")
	root.PersistentFlags().Bool("verbose", false,
		"log compilation details to stderr")

	viper.SetEnvPrefix("SEGTAB")
	viper.AutomaticEnv()
	_ = viper.BindPFlags(root.PersistentFlags())

	root.AddCommand(newCompileCmd(), newTargetsCmd())
	return root
}

func newDevice(cmd *cobra.Command) (*segtab.Device, error) {
	logger := zerolog.Nop()
	if viper.GetBool("verbose") {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
			With().Timestamp().Logger()
	}
	dev := segtab.New(
		config.WithStrictNumerals(viper.GetBool("strict")),
		config.WithMaxLineBytes(viper.GetInt("max-line")),
		config.WithLogger(logger),
	)
	if err := targets.RegisterBuiltins(dev.Registry()); err != nil {
		dev.Close()
		return nil, err
	}
	return dev, nil
}

func newCompileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compile <file>",
		Short: "Compile a table file and print the installed segments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dev, err := newDevice(cmd)
			if err != nil {
				return err
			}
			defer dev.Close()

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			errs, err := dev.Commit(scan.Reader(f, 0))
			for _, le := range errs {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s:%d: %s\n", args[0], le.Line, le.Msg)
			}
			if err != nil {
				return fmt.Errorf("no table installed: %w", err)
			}

			tbl := dev.Table()
			defer tbl.Put()
			for _, s := range tbl.Segments() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d %d %s\n", s.Low(), s.High(), s.Target().Name())
			}
			return nil
		},
	}
}

func newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the built-in target types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dev, err := newDevice(cmd)
			if err != nil {
				return err
			}
			defer dev.Close()

			var names []string
			for _, tgt := range dev.Registry().Entries() {
				names = append(names, tgt.Name())
			}
			sort.Strings(names)
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}
