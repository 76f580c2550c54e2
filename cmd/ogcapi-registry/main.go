package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	ogcapiregistry "github.com/francbartoli/ogcapi-registry"
	"github.com/francbartoli/ogcapi-registry/cmd/ogcapi-registry/commands"
	"github.com/francbartoli/ogcapi-registry/internal/mcpserver"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("ogcapi-registry v%s\n", ogcapiregistry.Version())
	case "help", "-h", "--help":
		printUsage()
	case "validate":
		exitOn(commands.Validate(os.Args[2:]))
	case "conformance":
		exitOn(commands.Conformance(os.Args[2:]))
	case "fetch":
		exitOn(commands.Fetch(os.Args[2:]))
	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := mcpserver.Run(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func exitOn(err error) {
	if err == nil {
		return
	}
	if !errors.Is(err, commands.ErrNotCompliant) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}

func printUsage() {
	fmt.Printf(`ogcapi-registry - OGC API conformance validation for OpenAPI documents

Usage:
  ogcapi-registry <command> [flags] [arguments]

Commands:
  validate     Validate an OpenAPI document against OGC API conformance profiles
  conformance  Analyze conformance class URIs and group them by specification
  fetch        Fetch a remote OpenAPI document and print a summary
  mcp          Run as an MCP server over stdio
  version      Print version information
  help         Show this help message

Use "ogcapi-registry <command> -h" for command-specific flags.
`)
}
