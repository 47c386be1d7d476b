// Command retroctl drives a retrospective board from the terminal: it
// creates retrospectives, posts cards, votes, comments, groups cards,
// tracks action items and can watch a board live.
//
// Usage:
//
//	retroctl --server http://localhost:8080 login alice
//	RETRO_TOKEN=... retroctl retro create "Sprint 1" --team "Team A"
//	retroctl watch <retro-id>
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
