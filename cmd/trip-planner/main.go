package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"ai-trip-planner/internal/app"
	"ai-trip-planner/internal/config"
	"ai-trip-planner/internal/metrics"
	"ai-trip-planner/internal/trip"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	destination := flag.String("destination", "", "Where to go")
	start := flag.String("start", "", "Trip start date (YYYY-MM-DD)")
	end := flag.String("end", "", "Trip end date (YYYY-MM-DD)")
	budget := flag.String("budget", "", "Total budget in rupees")
	travelers := flag.String("travelers", "", "Number of travelers (default 1)")
	interests := flag.String("interests", "", "Comma-separated interests, e.g. Beach,Food")
	flag.Parse()

	if *destination == "" || *start == "" || *end == "" || *budget == "" {
		printUsage()
		os.Exit(1)
	}

	raw := trip.RawTripRequest{
		Destination: *destination,
		StartDate:   *start,
		EndDate:     *end,
		Budget:      *budget,
		Travelers:   *travelers,
	}
	for _, interest := range strings.Split(*interests, ",") {
		if interest = strings.TrimSpace(interest); interest != "" {
			raw.Interests = append(raw.Interests, interest)
		}
	}

	ctx := context.Background()

	gen, err := app.BuildGenerator(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize planner backend: %v", err)
	}

	application := app.NewApp(cfg, gen, metrics.NewStore())

	if err := application.PlanTrip(ctx, raw); err != nil {
		log.Fatalf("Planning failed: %v", err)
	}

	application.PrintMetrics()
}

func printUsage() {
	fmt.Println("Usage: trip-planner -destination <place> -start <date> -end <date> -budget <amount> [-travelers <n>] [-interests <list>]")
	fmt.Println("\nExample:")
	fmt.Println("  trip-planner -destination Goa -start 2025-03-01 -end 2025-03-05 -budget 30000 -travelers 2 -interests Beach,Food")
	flag.PrintDefaults()
}
