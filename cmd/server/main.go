// Command server runs the Weekly Contents HTTP API.
package main

import (
	"context"
	"log"

	"github.com/weeklycontents/backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("application failed: %v", err)
	}
}
