// Command hpackc is a small CLI around the hpack encoder: encode a
// header set from the command line, inspect the static table, or
// serve a live dynamic-table occupancy dashboard over a websocket.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
