package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"hpackenc/cmd/hpackc/render"
	"hpackenc/internal/hpack"
)

func newEncodeCmd(flags *rootFlags) *cobra.Command {
	var (
		status  int
		headers []string
		hexOut  bool
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a single header block and print the wire bytes",
		Example: "hpackc encode --status 200 --header content-type:text/html " +
			"--header x-request-id:abc-123",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(flags.verbose)
			if err != nil {
				return err
			}
			defer logger.Sync()

			cfg, err := loadConfig(flags.configPath)
			if err != nil {
				return err
			}

			parsed, err := parseHeaderFlags(headers)
			if err != nil {
				return err
			}

			conn := hpack.NewConn(cfg.MaxHeaderTableSize, logger)
			conn.SetMaxHeaderListSize(cfg.MaxHeaderListSize)
			conn.SetSensitivityPredicate(func(name, value string) bool {
				return cfg.IsSensitive(name)
			})

			wire, err := conn.EncodeHeaders(status != 0, status, parsed)
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			if hexOut {
				fmt.Printf("%x\n", wire)
			} else {
				printEncodeSummary(status, parsed, wire, conn.Stats())
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&status, "status", 0, "HTTP status code to encode as :status (0 to omit)")
	cmd.Flags().StringArrayVar(&headers, "header", nil, "name:value header, may be repeated")
	cmd.Flags().BoolVar(&hexOut, "hex", false, "print raw hex instead of a summary table")

	return cmd
}

func parseHeaderFlags(raw []string) ([]hpack.Header, error) {
	out := make([]hpack.Header, 0, len(raw))
	for _, h := range raw {
		name, value, ok := strings.Cut(h, ":")
		if !ok {
			return nil, fmt.Errorf("invalid --header %q: expected name:value", h)
		}
		out = append(out, hpack.Header{Name: name, Value: value})
	}
	return out, nil
}

func printEncodeSummary(status int, headers []hpack.Header, wire []byte, stats hpack.TableStats) {
	table := render.NewTable([]string{"name", "value"}).WithTitle("encoded headers")
	if status != 0 {
		table.AddRow([]string{":status", strconv.Itoa(status)})
	}
	for _, h := range headers {
		table.AddRow([]string{h.Name, h.Value})
	}
	table.Print()

	fmt.Printf("\n%d bytes written, %x\n", len(wire), wire)
	fmt.Printf("dynamic table: %d entries, %d/%d bytes, %d inserts, %d evictions\n",
		stats.Entries, stats.CurrentSize, stats.MaxSize, stats.Inserts, stats.Evictions)
}
