package main

import (
	"context"
	"log"
	"strings"

	"github.com/gopatchy/shl"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	mcpServer := server.NewMCPServer(
		"shl-mcp",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	highlightTool := mcp.NewTool("highlight",
		mcp.WithDescription("Convert shell script source to HTML with syntax highlighting spans"),
		mcp.WithString("source",
			mcp.Required(),
			mcp.Description("Shell script source text"),
		),
		mcp.WithString("syntax",
			mcp.Description("Shell dialect (bourne, bash, ksh, csh, zsh); defaults to bourne"),
		),
		mcp.WithBoolean("lineNumbers",
			mcp.Description("Prefix every output line with a line number span"),
		),
		mcp.WithBoolean("pre",
			mcp.Description("Wrap the output in <pre> tags; defaults to true"),
		),
		mcp.WithNumber("tabWidth",
			mcp.Description("Spaces per tab; 0 keeps tabs; defaults to 4"),
		),
	)
	mcpServer.AddTool(highlightTool, highlightHandler)

	stylesheetTool := mcp.NewTool("stylesheet",
		mcp.WithDescription("Generate the CSS stylesheet for the class names emitted by highlight"),
		mcp.WithObject("theme",
			mcp.Description("Map of class key (metachar, keyword, builtin, command, argument, quote, variable, assigned, value, comment, line_number) to CSS declarations; unspecified keys use the built-in theme"),
		),
	)
	mcpServer.AddTool(stylesheetTool, stylesheetHandler)

	dialectsTool := mcp.NewTool("dialects",
		mcp.WithDescription("List the supported shell dialects"),
	)
	mcpServer.AddTool(dialectsTool, dialectsHandler)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func highlightHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source, err := request.RequireString("source")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	syntax := request.GetString("syntax", "bourne")
	lineNumbers := request.GetBool("lineNumbers", false)
	pre := request.GetBool("pre", true)
	tabWidth := request.GetInt("tabWidth", 4)

	h, err := shl.New(&shl.Options{
		Pre:         &pre,
		LineNumbers: &lineNumbers,
		Syntax:      &syntax,
		TabWidth:    &tabWidth,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	html, err := h.Parse(source)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(html), nil
}

func stylesheetHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	theme := shl.DefaultTheme()

	args := request.GetArguments()
	if raw, found := args["theme"]; found {
		overrides, ok := raw.(map[string]any)
		if !ok {
			return mcp.NewToolResultError("theme must be an object of class key to CSS declarations"), nil
		}

		for key, value := range overrides {
			decls, ok := value.(string)
			if !ok {
				return mcp.NewToolResultError("theme values must be strings"), nil
			}

			theme[key] = decls
		}
	}

	css, err := shl.Stylesheet(theme)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(css), nil
}

func dialectsHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(strings.Join(shl.Dialects(), "\n")), nil
}
