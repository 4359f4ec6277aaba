/*
Copyright 2025 Trident Authors

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

// Package cli implements the localeprobe command line.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jplu/lingo/internal/config"
	"github.com/jplu/lingo/internal/logger"
	"github.com/jplu/lingo/jdk"
)

// app is the state shared by the subcommands once the root command has
// resolved the configuration.
type app struct {
	v   *viper.Viper
	cfg config.Config
	log *slog.Logger
}

func (a *app) factory() jdk.Factory {
	return jdk.Factory{UseOldISOCodes: a.cfg.OldISOCodes}
}

// Execute runs the command line and exits with status 1 on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the localeprobe command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	cmd := &cobra.Command{
		Use:          "localeprobe",
		Short:        "Compare JDK and ICU locale semantics",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Bind(a.v, cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log, err = logger.Setup(logger.Config{
				Debug:  cfg.Debug,
				Format: cfg.LogFormat,
				Writer: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			a.log.Debug("configuration loaded", "old_iso_codes", cfg.OldISOCodes,
				"catalog", cfg.Catalog, "display", cfg.Display.String())
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.Bool(config.KeyDebug, false, "enable debug logging")
	pf.String(config.KeyLogFormat, logger.FormatAuto, "log format: auto, text or json")
	pf.Bool(config.KeyOldISOCodes, false, "report he, yi and id as iw, ji and in like older JDKs")
	pf.String(config.KeyDisplay, "en", "language of display names")
	pf.String(config.KeyCatalog, "", "catalog file run by check instead of the embedded one")
	pf.String(config.KeyConfigFile, "", "config file (yaml, json or toml)")

	cmd.AddCommand(
		inspectCmd(a),
		checkCmd(a),
		canonCmd(a),
		versionCmd(),
	)
	return cmd
}
