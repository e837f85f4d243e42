// Package main implements aocgen, a CLI that scaffolds Go solutions for
// Advent of Code puzzles.
//
// # Features
//
//   - One Go module per day under solutions/<year>/dayNN, registered in go.work
//   - Puzzle input download with the session cookie from AOC_SESSION
//   - Skip-if-exists writes: reruns fill in missing files and never overwrite
//   - Debug and release runs through `go run`
//   - MCP tool server exposing scaffold_day and fetch_input
//
// # Usage
//
//	aocgen init
//	aocgen scaffold --day N [--year Y]
//	aocgen run --day N [--year Y] [--release]
//	aocgen mcp
//
// # Configuration
//
// An optional aocgen.json in the working directory (or the path given by
// --config) overrides base_url, user_agent, session_env, solutions_dir and
// go_version. A .env file in the working directory is loaded at startup.
package main
