package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"hpackenc/cmd/hpackc/render"
	"hpackenc/internal/hpack"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the RFC 7541 static table",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := render.NewTable([]string{"index", "name", "value"}).
				WithTitle("static table")

			for _, e := range hpack.StaticTable() {
				table.AddRow([]string{strconv.Itoa(e.Index), e.Name, e.Value})
			}
			table.Print()
			return nil
		},
	}
	return cmd
}
