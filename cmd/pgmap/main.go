// cmd/pgmap/main.go
package main

import (
	"context"
	"os"
	"os/signal"

	"pgmap/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := app.RunContext(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
