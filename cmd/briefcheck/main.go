// briefcheck: risk analysis for client project briefs.
//
// Reads a freelance or agency project brief and reports red flags, the
// project type, the client's likely personality, a 0-100 risk score,
// estimates, questions to ask and a draft reply email.
//
// Usage:
//
//	briefcheck analyze brief.txt   # Analyze a brief from a file
//	briefcheck serve               # Start MCP server (stdio transport)
//	briefcheck http                # Start the HTTP API
package main

import (
	"fmt"
	"os"

	"github.com/HendryAvila/briefcheck/internal/cli"
	"github.com/HendryAvila/briefcheck/internal/server"
)

func main() {
	if err := cli.NewRootCmd(cli.DefaultEnv(server.Version)).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
