// Command server runs the timetrack HTTP API.
package main

import (
	"context"
	"log"

	"github.com/heartmarshall/timetrack-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
