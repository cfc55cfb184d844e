package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/assimp-bridge/assimp-go/assimp"
	"github.com/spf13/cobra"
)

func newFormatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List the file formats the linked Assimp can import",
		Example: `
# One line per importer
assimp-import formats

# Only the extensions, as JSON
assimp-import formats --extensions --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			onlyExt, _ := cmd.Flags().GetBool("extensions")
			out := cmd.OutOrStdout()

			if onlyExt {
				exts := assimp.SupportedExtensions()
				if asJSON {
					return json.NewEncoder(out).Encode(exts)
				}
				fmt.Fprintln(out, strings.Join(exts, " "))
				return nil
			}

			formats := assimp.SupportedFormats()
			if asJSON {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(formats)
			}
			for _, f := range formats {
				fmt.Fprintf(out, "%-40s %s\n", f.Name, strings.Join(f.Extensions, " "))
			}
			return nil
		},
	}

	cmd.Flags().BoolP("json", "j", false, "Output as JSON")
	cmd.Flags().BoolP("extensions", "e", false, "Only list extensions")
	return cmd
}
