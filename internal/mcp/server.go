// Package mcp exposes the documentation corpus to coding agents over the
// Model Context Protocol, speaking JSON-RPC on stdio.
package mcp

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rustdocmd/docmd/internal/build"
	"github.com/rustdocmd/docmd/internal/config"
)

//go:embed instructions.md
var instructions string

type Server struct {
	mcpServer *server.MCPServer
	cfg       *config.Config
}

func NewServer(cfg *config.Config) *Server {
	s := &Server{cfg: cfg}

	mcpServer := server.NewMCPServer(
		"docmd",
		"0.1.0",
		server.WithInstructions(instructions),
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	s.registerTools(mcpServer)
	s.registerResources(mcpServer)

	s.mcpServer = mcpServer
	return s
}

func (s *Server) registerTools(mcpServer *server.MCPServer) {
	mcpServer.AddTool(
		mcp.NewTool("show_item",
			mcp.WithDescription("Show the markdown documentation for one item of a dependency crate. Accepts a fully qualified path like \"serde::Deserializer\"; a bare library name shows the crate overview. Builds the library's documentation on first use."),
			mcp.WithString("path",
				mcp.Description("Item path (e.g., \"serde::Deserializer\") or bare library name"),
				mcp.Required(),
			),
		),
		s.handleShowItem,
	)

	mcpServer.AddTool(
		mcp.NewTool("list_items",
			mcp.WithDescription("List every documented item of a dependency crate with its fully qualified path. Builds the library's documentation on first use."),
			mcp.WithString("library",
				mcp.Description("Library name as declared in Cargo.toml (e.g., \"rustdoc-types\")"),
				mcp.Required(),
			),
		),
		s.handleListItems,
	)

	mcpServer.AddTool(
		mcp.NewTool("build_docs",
			mcp.WithDescription("Build (or rebuild) the markdown documentation corpus for a dependency crate."),
			mcp.WithString("library",
				mcp.Description("Library name as declared in Cargo.toml"),
				mcp.Required(),
			),
		),
		s.handleBuildDocs,
	)
}

func (s *Server) registerResources(mcpServer *server.MCPServer) {
	mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"docmd://{library}/{item}",
			"Rust documentation item",
			mcp.WithTemplateDescription("Read one item's markdown documentation. Item listings reference these URIs."),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		s.handleReadResource,
	)
}

func (s *Server) handleShowItem(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, _ := req.GetArguments()["path"].(string)
	if path == "" {
		return mcp.NewToolResultError("missing required parameter: path"), nil
	}

	content, err := build.Show(ctx, path, s.cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(content), nil
}

func (s *Server) handleListItems(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	library, _ := req.GetArguments()["library"].(string)
	if library == "" {
		return mcp.NewToolResultError("missing required parameter: library"), nil
	}

	content, err := build.List(ctx, library, s.cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(content), nil
}

func (s *Server) handleBuildDocs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	library, _ := req.GetArguments()["library"].(string)
	if library == "" {
		return mcp.NewToolResultError("missing required parameter: library"), nil
	}

	summary, err := build.Run(ctx, library, s.cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("build failed: %v", err)), nil
	}
	return mcp.NewToolResultText(summary.String()), nil
}

func (s *Server) handleReadResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	trimmed := strings.TrimPrefix(uri, "docmd://")
	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) == 0 || parts[0] == "" {
		return nil, fmt.Errorf("invalid resource URI: %s", uri)
	}

	path := parts[0]
	if len(parts) == 2 && parts[1] != "" {
		path += "::" + parts[1]
	}

	content, err := build.Show(ctx, path, s.cfg)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     content,
		},
	}, nil
}

func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}
