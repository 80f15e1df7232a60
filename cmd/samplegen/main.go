package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"meridian/internal/app/bootstrap"
	"meridian/internal/shared/events"
)

// samplegen prints a sample webhook envelope for one event name, drawing
// from postgres when a DSN is configured and from a demo-seeded in-memory
// store otherwise.
func main() {
	event := flag.String("event", "order_created", "event name to produce a sample for")
	flag.Parse()

	app, err := bootstrap.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "bootstrap:", err)
		os.Exit(1)
	}
	defer app.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	payload, err := app.Module.Service.SamplePayload(ctx, *event)
	if err != nil {
		app.Logger.Error("generate sample payload", "event", *event, "error", err)
		os.Exit(1)
	}
	if payload == nil {
		app.Logger.Info("no sample available", "event", *event)
		return
	}

	envelope := events.Wrap(*event, app.Config.ServiceName, time.Now(), payload)
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(envelope); err != nil {
		app.Logger.Error("encode envelope", "error", err)
		os.Exit(1)
	}
}
