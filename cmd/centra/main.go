// Command centra computes degree, closeness and betweenness centrality for
// graph documents.
package main

import (
	"os"

	"github.com/katalvlaran/centra/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
