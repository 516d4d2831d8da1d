// Package main is the entry point for the remind-mcp server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"remindmcp/internal/applescript"
	"remindmcp/internal/config"
	"remindmcp/internal/server"
)

func main() {
	// Log to stderr so stdout stays clean for JSON-RPC
	log.SetOutput(os.Stderr)
	log.SetPrefix("[remind-mcp] ")

	// Load .env file if present (don't error if missing)
	_ = godotenv.Load()

	var configDir string
	var showVersion bool
	flag.StringVar(&configDir, "config", "", "config directory (default: XDG config dir)")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println("remind-mcp " + server.Version)
		return
	}

	cfg, err := config.New(configDir)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	runner := applescript.NewRunner()
	runner.Bin = cfg.Osascript
	runner.Timeout = cfg.Timeout()
	runner.MaxOutput = cfg.MaxOutputBytes

	store := applescript.New(runner)
	s := server.New(store)

	log.Println("serving MCP over stdio")
	if err := mcpserver.ServeStdio(s); err != nil {
		log.Fatalf("server: %v", err)
	}
}
