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

package cli

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/jplu/lingo/icu"
	"github.com/jplu/lingo/jdk"
)

func inspectCmd(a *app) *cobra.Command {
	var asID bool

	c := &cobra.Command{
		Use:   "inspect <tag>...",
		Short: "Show how both engines read language tags or ICU locale IDs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := a.factory()
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Input", "Engine", "String", "Language tag", "Language", "Script",
				"Country", "Variant", "Display name")

			for _, in := range args {
				var il icu.Locale
				var jl jdk.Locale
				if asID {
					il = icu.New(in)
					converted := il.ToJDK()
					jl = f.FromParts(converted.Base(), converted.Extensions())
				} else {
					jl = f.ForLanguageTag(in)
					il = icu.ForLanguageTag(in)
				}
				a.log.Debug("inspect", "input", in, "jdk", jl.String(), "icu", il.String())

				if err := table.Append([]string{
					in, "jdk", jl.String(), jl.LanguageTag(), jl.Language(), jl.Script(),
					jl.Country(), jl.Variant(), jl.DisplayName(a.cfg.Display),
				}); err != nil {
					return err
				}
				if err := table.Append([]string{
					in, "icu", il.String(), il.LanguageTag(), il.Language(), il.Script(),
					il.Country(), il.Variant(), il.DisplayName(a.cfg.Display),
				}); err != nil {
					return err
				}
			}
			return table.Render()
		},
	}

	c.Flags().BoolVar(&asID, "id", false, "read the arguments as ICU locale IDs (en_US@calendar=buddhist)")
	return c
}
