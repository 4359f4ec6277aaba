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
	"errors"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/jplu/lingo/internal/catalog"
)

var errChecksFailed = errors.New("catalog checks failed")

func checkCmd(a *app) *cobra.Command {
	var verbose bool

	c := &cobra.Command{
		Use:   "check [catalog.yaml]",
		Short: "Run a catalog of locale expectations (the embedded one by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.Catalog
			if len(args) == 1 {
				path = args[0]
			}

			var (
				cat *catalog.Catalog
				err error
			)
			if path == "" {
				cat, err = catalog.Default()
			} else {
				cat, err = catalog.Load(path)
			}
			if err != nil {
				return err
			}

			runner := &catalog.Runner{Factory: a.factory(), Logger: a.log}
			report := runner.Run(cat)

			out := cmd.OutOrStdout()
			table := tablewriter.NewWriter(out)
			table.Header("Case", "Engine", "Status", "Detail")
			for _, res := range report.Results {
				switch {
				case res.Err != nil:
					err = table.Append([]string{res.Case, string(res.Engine), "ERROR", res.Err.Error()})
				case len(res.Mismatches) > 0:
					for _, m := range res.Mismatches {
						if err = table.Append([]string{res.Case, string(res.Engine), "FAIL", m.String()}); err != nil {
							break
						}
					}
				case verbose:
					err = table.Append([]string{res.Case, string(res.Engine), "ok", ""})
				}
				if err != nil {
					return err
				}
			}
			if verbose || report.Failed() > 0 {
				if err := table.Render(); err != nil {
					return err
				}
			}

			fmt.Fprintf(out, "%d cases, %d failed\n", len(report.Results), report.Failed())
			if report.Failed() > 0 {
				return fmt.Errorf("%w: %d of %d", errChecksFailed, report.Failed(), len(report.Results))
			}
			return nil
		},
	}

	c.Flags().BoolVarP(&verbose, "verbose", "v", false, "list passing cases too")
	return c
}
