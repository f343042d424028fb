// =============================================================================
// Theatre Statements - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Theatre Statements CLI. It wires
// signal handling into a context and delegates to the cmd package.
//
// USAGE:
//   statements statement   - Print the statement for an invoice
//   statements validate    - Check inputs without producing a statement
//   statements version     - Display the application version
//
// ARCHITECTURE:
//   - cmd/        : CLI command definitions (Cobra)
//   - internal/   : pricing, aggregation, rendering, loading, config, logging
//   - pkg/        : statement file persistence
//
// =============================================================================

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ginjaninja78/theatre-statements/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.Execute(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
