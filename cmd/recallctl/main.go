// recallctl — operator CLI for inspecting and seeding recallkit data.
//
// Usage:
//
//	recallctl list                          list recall sets with due counts
//	recallctl sessions [-set id]            list sessions, newest first
//	recallctl stats                         print the dashboard aggregation
//	recallctl replay -session id            render one session transcript
//	recallctl export session -session id    dump one session as JSON
//	recallctl export set -set id            dump one set with its points as JSON
//	recallctl export analytics              dump the dashboard aggregation as JSON
//	recallctl search [-set id] <query>      full-text search points and transcripts
//	recallctl seed <file>                   apply a YAML seed file
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"

	"github.com/recallkit/recallkit/pkg/database"
	"github.com/recallkit/recallkit/pkg/seed"
	"github.com/recallkit/recallkit/pkg/services"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	_ = godotenv.Load()

	ctx := context.Background()
	client, err := connect(ctx)
	if err != nil {
		fatal(err)
	}
	defer client.Close()

	switch os.Args[1] {
	case "list":
		err = runList(ctx, client)
	case "sessions":
		err = runSessions(ctx, client, os.Args[2:])
	case "stats":
		err = runStats(ctx, client)
	case "replay":
		err = runReplay(ctx, client, os.Args[2:])
	case "export":
		err = runExport(ctx, client, os.Args[2:])
	case "search":
		err = runSearch(ctx, client, os.Args[2:])
	case "seed":
		err = runSeed(ctx, client, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: recallctl <list|sessions|stats|replay|export|search|seed> [flags]")
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "recallctl:", err)
	os.Exit(1)
}

func connect(ctx context.Context) (*database.Client, error) {
	cfg, err := database.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return database.NewClient(ctx, cfg)
}

func runList(ctx context.Context, client *database.Client) error {
	sets, err := services.NewSetService(client.Client).ListSets(ctx, time.Now())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTATUS\tPOINTS\tDUE")
	for _, s := range sets {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n", s.ID, s.Name, s.Status, s.TotalPoints, s.DuePoints)
	}
	return w.Flush()
}

func runSessions(ctx context.Context, client *database.Client, args []string) error {
	fs := flag.NewFlagSet("sessions", flag.ExitOnError)
	setID := fs.String("set", "", "filter by recall set ID")
	limit := fs.Int("limit", 50, "maximum rows")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sessions, err := services.NewStatsService(client.Client).ListSessions(ctx, *setID, *limit)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSET\tSTATUS\tRECALLED\tSTARTED")
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d\t%s\n",
			s.ID, s.SetID, s.Status, s.RecalledPoints, s.TargetPoints,
			s.StartedAt.Format(time.RFC3339))
	}
	return w.Flush()
}

func runStats(ctx context.Context, client *database.Client) error {
	stats, err := services.NewStatsService(client.Client).Dashboard(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("sessions:        %d (%d completed, %d active)\n",
		stats.TotalSessions, stats.CompletedSessions, stats.ActiveSessions)
	fmt.Printf("recall:          %d/%d (%.1f%%)\n",
		stats.PointsSuccessful, stats.PointsAttempted, stats.OverallRecallRate*100)
	fmt.Printf("engagement:      %.1f avg\n", stats.AvgEngagement)
	fmt.Printf("study time:      %s\n", (time.Duration(stats.TotalStudyTimeMS) * time.Millisecond).Round(time.Second))
	fmt.Printf("rabbit holes:    %d\n", stats.TotalRabbitholes)
	fmt.Printf("estimated cost:  $%.4f\n", stats.TotalCostUSD)
	return nil
}

func runReplay(ctx context.Context, client *database.Client, args []string) error {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	sessionID := fs.String("session", "", "session ID to replay")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *sessionID == "" {
		return fmt.Errorf("replay: -session is required")
	}

	detail, err := services.NewStatsService(client.Client).GetSession(ctx, *sessionID)
	if err != nil {
		return err
	}
	fmt.Print(renderReplay(detail))
	return nil
}

// setExport is the JSON shape of `export set`.
type setExport struct {
	Set    *services.SetInfo `json:"set"`
	Points []setExportPoint  `json:"points"`
}

type setExportPoint struct {
	ID      string    `json:"id"`
	Content string    `json:"content"`
	Context string    `json:"context,omitempty"`
	Due     time.Time `json:"due"`
	Reps    int       `json:"reps"`
	Lapses  int       `json:"lapses"`
}

func runExport(ctx context.Context, client *database.Client, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("export: a target is required (session, set, or analytics)")
	}
	target, rest := args[0], args[1:]

	switch target {
	case "session":
		fs := flag.NewFlagSet("export session", flag.ExitOnError)
		sessionID := fs.String("session", "", "session ID to export")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *sessionID == "" {
			return fmt.Errorf("export session: -session is required")
		}
		detail, err := services.NewStatsService(client.Client).GetSession(ctx, *sessionID)
		if err != nil {
			return err
		}
		return encodeJSON(detail)

	case "set":
		fs := flag.NewFlagSet("export set", flag.ExitOnError)
		setID := fs.String("set", "", "recall set ID to export")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *setID == "" {
			return fmt.Errorf("export set: -set is required")
		}
		svc := services.NewSetService(client.Client)
		info, err := svc.GetSet(ctx, *setID, time.Now())
		if err != nil {
			return err
		}
		points, err := svc.ListPoints(ctx, *setID)
		if err != nil {
			return err
		}
		out := &setExport{Set: info, Points: make([]setExportPoint, 0, len(points))}
		for _, p := range points {
			out.Points = append(out.Points, setExportPoint{
				ID:      p.ID,
				Content: p.Content,
				Context: p.Context,
				Due:     p.FSRS.Due,
				Reps:    p.FSRS.Reps,
				Lapses:  p.FSRS.Lapses,
			})
		}
		return encodeJSON(out)

	case "analytics":
		stats, err := services.NewStatsService(client.Client).Dashboard(ctx)
		if err != nil {
			return err
		}
		return encodeJSON(stats)

	default:
		return fmt.Errorf("export: unknown target %q (want session, set, or analytics)", target)
	}
}

func runSearch(ctx context.Context, client *database.Client, args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	setID := fs.String("set", "", "restrict to one recall set ID")
	limit := fs.Int("limit", 20, "maximum hits per kind")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("search: exactly one query argument required")
	}

	results, err := services.NewSearchService(client.Client).Search(ctx, fs.Arg(0), *setID, *limit)
	if err != nil {
		return err
	}
	fmt.Print(renderSearch(results))
	return nil
}

func runSeed(ctx context.Context, client *database.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("seed: exactly one file argument required")
	}

	f, err := seed.Load(args[0])
	if err != nil {
		return err
	}
	res, err := seed.Apply(ctx, services.NewSetService(client.Client), f, time.Now())
	if err != nil {
		return err
	}
	fmt.Printf("seeded: %d sets created, %d points created, %d skipped\n",
		res.SetsCreated, res.PointsCreated, res.PointsSkipped)
	return nil
}

func encodeJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
