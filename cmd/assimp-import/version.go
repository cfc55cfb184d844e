package main

import (
	"encoding/json"
	"fmt"

	"github.com/assimp-bridge/assimp-go/assimp"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the tool and Assimp library versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib := assimp.LibraryVersion()
			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
					"version": version,
					"assimp":  lib,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "assimp-import %s (assimp %s, revision %x)\n", version, lib, lib.Revision)
			return nil
		},
	}
	cmd.Flags().BoolP("json", "j", false, "Output as JSON")
	return cmd
}
