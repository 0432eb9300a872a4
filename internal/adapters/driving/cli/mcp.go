package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glosskit/glosskit-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve [corpus]",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC. The
optional positional corpus becomes the default for tool calls that
omit one. Use --port to start an HTTP server instead.

Examples:
  # Stdio mode (for MCP-compatible assistants)
  glosskit mcp serve corpus.wriml

  # HTTP mode (for MCP Inspector, remote access)
  glosskit mcp serve corpus.wriml --port 8080`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{
		Corpus:   corpusService,
		Search:   searchService,
		Grouping: groupingService,
	}
	if path, err := resolveCorpus(args); err == nil {
		ports.DefaultCorpus = path
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return fmt.Errorf("creating MCP server: %w", err)
	}

	if port > 0 {
		return server.RunHTTP(cmd.Context(), fmt.Sprintf(":%d", port))
	}
	return server.Run(cmd.Context())
}
