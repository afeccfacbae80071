// Command seed populates a running hirelens instance with synthetic
// recruiters, candidates and interview schedules.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hirelens/hirelens/internal/seed"
)

func main() {
	url := flag.String("url", "http://localhost:9080", "base URL of the service")
	recruiters := flag.Int("recruiters", 5, "number of recruiters to create")
	candidates := flag.Int("candidates", 200, "number of candidates to create")
	days := flag.Int("days", 30, "spread creation timestamps over the trailing N days")
	rate := flag.Float64("schedule-rate", 0.4, "fraction of candidates that get an interview schedule")
	rngSeed := flag.Int64("seed", 42, "RNG seed for reproducible datasets")
	flag.Parse()

	runner := seed.NewRunner(*url)
	nr, nc, ns, err := runner.Run(context.Background(), seed.Config{
		Recruiters:   *recruiters,
		Candidates:   *candidates,
		Days:         *days,
		ScheduleRate: *rate,
		Seed:         *rngSeed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed failed after %d recruiters, %d candidates, %d schedules: %v\n", nr, nc, ns, err)
		os.Exit(1)
	}
	fmt.Printf("seeded %d recruiters, %d candidates, %d schedules\n", nr, nc, ns)
}
