// Copyright 2025 WowArchive. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wowarchive/dbc"
)

const version = "0.2.0"

var (
	buildStr string
	source   string
	output   string
	cacheDir string
	defsURL  string
	parallel bool
	verbose  bool
)

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

func runConvert(cmd *cobra.Command, args []string) error {
	gameBuild, err := dbc.ParseGameBuild(buildStr)
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cacheDir == "" {
		cacheDir, err = dbc.DefaultCacheDir()
		if err != nil {
			return err
		}
	}

	fs := afero.NewOsFs()
	opts := &dbc.ConvertOptions{
		Fs:       fs,
		Fetch:    dbc.NewCachingFetcher(fs, cacheDir, defsURL, logger),
		Parallel: parallel,
		Logger:   logger,
	}

	return dbc.ConvertToSQLite(gameBuild, source, output, opts)
}

func main() {

	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a directory of client database files to SQLite",
		RunE:  runConvert,
	}
	convertCmd.Flags().StringVarP(&buildStr, "build", "b", "", "target game build, e.g. 3.3.5.12340")
	convertCmd.Flags().StringVarP(&source, "source", "s", "", "directory containing the table files")
	convertCmd.Flags().StringVarP(&output, "output", "o", "out.db", "path of the SQLite database to create")
	convertCmd.Flags().StringVar(&cacheDir, "dbd-cache", "", "definition cache directory")
	convertCmd.Flags().StringVar(&defsURL, "dbd-url", dbc.DefaultDefinitionsURL, "base URL of the definitions repository")
	convertCmd.Flags().BoolVar(&parallel, "parallel", false, "decode each file across all CPUs")
	convertCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	convertCmd.MarkFlagRequired("build")
	convertCmd.MarkFlagRequired("source")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("dbcsqlite version", version)
		},
	}

	rootCmd := &cobra.Command{
		Use:           "dbcsqlite",
		Short:         "dbcsqlite converts WoW client database tables to SQLite",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.AddCommand(convertCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
