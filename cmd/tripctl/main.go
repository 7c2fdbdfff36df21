// Command tripctl is the travel planner's client: it validates trip input,
// asks the server to enrich it, persists the result locally, and renders
// trip cards.
//
// Usage:
//
//	tripctl add -destination Paris -start 2026-02-24 -end 2026-02-26
//	tripctl list
//	tripctl remove -id 1708732800000
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/i474232898/travel-planner/internal/client"
	"github.com/i474232898/travel-planner/internal/store"
)

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "add":
		runAdd(os.Args[2:])
	case "list":
		runList(os.Args[2:])
	case "remove":
		runRemove(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: tripctl <add|list|remove> [flags]")
}

// openStore creates the trip store over the file backend at dataDir.
func openStore(dataDir string) *client.TripStore {
	backend, err := store.NewFileStorage(dataDir)
	if err != nil {
		log.Fatalf("open trip storage: %v", err)
	}
	return client.NewTripStore(backend)
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".travel-planner"
	}
	return filepath.Join(home, ".travel-planner")
}

func runAdd(args []string) {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	destination := fs.String("destination", "", "destination city")
	start := fs.String("start", "", "trip start date (2006-01-02)")
	end := fs.String("end", "", "trip end date (2006-01-02)")
	server := fs.String("server", "http://localhost:8080", "travel planner server URL")
	dataDir := fs.String("data", defaultDataDir(), "local trip storage directory")
	fs.Parse(args)

	// Validation happens entirely on this side; invalid input never
	// reaches the server.
	errs := client.ValidateTripForm(*destination, *start, *end)
	if errs.HasError {
		for _, msg := range []string{errs.City, errs.StartDate, errs.EndDate} {
			if msg != "" {
				fmt.Fprintln(os.Stderr, msg)
			}
		}
		os.Exit(1)
	}

	api := client.NewAPIClient(*server, nil)
	enriched, err := api.AddTrip(context.Background(), *destination, *start, *end)
	if err != nil {
		// Enrichment failures are logged and the submission is dropped.
		log.Printf("Error: %v", err)
		os.Exit(1)
	}

	rec, err := openStore(*dataDir).Persist(enriched, *destination, *start, *end)
	if err != nil {
		log.Fatalf("persist trip: %v", err)
	}

	fmt.Println(client.RenderCard(rec))
}

func runList(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	dataDir := fs.String("data", defaultDataDir(), "local trip storage directory")
	fs.Parse(args)

	cards, err := client.RenderAll(openStore(*dataDir))
	if err != nil {
		log.Fatalf("load trips: %v", err)
	}
	if len(cards) == 0 {
		fmt.Println("No trips saved yet.")
		return
	}
	for _, card := range cards {
		fmt.Println(card)
	}
}

func runRemove(args []string) {
	fs := flag.NewFlagSet("remove", flag.ExitOnError)
	id := fs.Int64("id", 0, "id of the trip to remove")
	dataDir := fs.String("data", defaultDataDir(), "local trip storage directory")
	fs.Parse(args)

	if *id == 0 {
		log.Fatal("remove: -id is required")
	}
	if err := openStore(*dataDir).RemoveByID(*id); err != nil {
		log.Fatalf("remove trip: %v", err)
	}
}
