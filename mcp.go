package main

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// dayArgs are the arguments of both tools.
type dayArgs struct {
	Day  int `json:"day" jsonschema:"puzzle day, 1 to 25"`
	Year int `json:"year,omitempty" jsonschema:"event year; defaults to the current year"`
}

type inputResult struct {
	Day   int    `json:"day"`
	Year  int    `json:"year"`
	Input string `json:"input"`
}

func (a dayArgs) request(now time.Time) (scaffoldRequest, error) {
	req := scaffoldRequest{Day: a.Day, Year: a.Year}
	if req.Year == 0 {
		req.Year = now.Year()
	}
	return req, req.validate(now)
}

// newToolServer exposes scaffolding and input download as MCP tools.
func newToolServer(b *builder, now func() time.Time) *mcp.Server {
	s := mcp.NewServer(&mcp.Implementation{Name: "aocgen", Version: version}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "scaffold_day",
		Description: "Create the solution module for a puzzle day and download its input. Existing files are left untouched.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args dayArgs) (*mcp.CallToolResult, scaffoldReport, error) {
		req, err := args.request(now())
		if err != nil {
			return nil, scaffoldReport{}, err
		}
		report, err := b.scaffold(ctx, req)
		if err != nil {
			return nil, scaffoldReport{}, err
		}
		return nil, *report, nil
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "fetch_input",
		Description: "Download the puzzle input for a day without writing any file.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args dayArgs) (*mcp.CallToolResult, inputResult, error) {
		req, err := args.request(now())
		if err != nil {
			return nil, inputResult{}, err
		}
		text, err := b.fetcher.fetch(ctx, req.Day, req.Year)
		if err != nil {
			return nil, inputResult{}, err
		}
		return nil, inputResult{Day: req.Day, Year: req.Year, Input: text}, nil
	})

	return s
}

// serveTools runs the tool server on stdin/stdout until the client goes away.
func serveTools(ctx context.Context, b *builder, now func() time.Time) error {
	return newToolServer(b, now).Run(ctx, &mcp.StdioTransport{})
}
