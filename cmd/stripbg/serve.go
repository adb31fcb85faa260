package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/stripbg/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the stdio JSON-RPC tool server",
	Long: `serve exposes the stripbg operations as tools over JSON-RPC 2.0 on
stdin/stdout, following the MCP method surface. Configure it in an
MCP-compatible client. Logs go to stderr; set STRIPBG_LOG_LEVEL=debug for
startup diagnostics.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// stdout carries the protocol; all logging goes to stderr.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if os.Getenv("STRIPBG_LOG_LEVEL") == "debug" {
		log.Printf("stripbg server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	return server.New().Run()
}
