// Command server runs the DutchHelper HTTP API.
// It analyzes Dutch text sentence by sentence through an upstream
// chat-completion provider and serves the results over REST.
//
// Exit codes: 0 = clean shutdown, 1 = startup or runtime error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/dutchhelper-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}
