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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jplu/lingo/internal/buildinfo"
	"github.com/jplu/lingo/langtag"
)

func canonCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "canon <tag>...",
		Short: "Print the canonical form of BCP 47 language tags",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := langtag.Default()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			var failed int
			for _, in := range args {
				lt, err := p.Parse(in)
				if err == nil {
					lt, err = p.Canonicalize(lt)
				}
				if err != nil {
					a.log.Error("cannot canonicalize", "tag", in, "error", err)
					failed++
					continue
				}
				fmt.Fprintf(out, "%s\t%s\n", in, lt)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d tags are ill-formed", failed, len(args))
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
