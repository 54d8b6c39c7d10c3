// warehouse-gate exposes a curated, read-only analytics warehouse to a
// natural-language front end, converting questions into vetted SQL and
// executing them under a fixed table/column allow-list.
package main

import (
	"fmt"
	"os"

	"github.com/jainabhishek347/OpenWebUIWithToolANDFunction/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
