package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/mireval/rampart/internal/replay"
)

func main() {
	var (
		logPath = flag.String("log", "", "path to a rampart-*.jsonl.zst decision log")
		full    = flag.Bool("full", false, "list every order of every turn")
	)
	flag.Parse()

	if *logPath == "" {
		fmt.Fprintln(os.Stderr, "missing -log")
		os.Exit(2)
	}

	records, err := replay.ReadLog(*logPath)
	if err != nil {
		color.Red("Error reading decision log: %v", err)
		os.Exit(1)
	}
	if len(records) == 0 {
		fmt.Println("empty decision log")
		return
	}

	titleColor := color.New(color.FgCyan, color.Bold)
	titleColor.Printf("\nGame %s — %d turns\n\n", records[0].GameID, len(records))

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Turn", "Strategy", "Threshold", "Orders", "Min Risk", "Breaches"}),
	)
	for _, rec := range records {
		_ = table.Append([]string{
			fmt.Sprintf("%d", rec.Turn),
			rec.Strategy,
			fmt.Sprintf("%.0f → %.0f", rec.ThresholdBefore, rec.ThresholdAfter),
			summarizeOrders(rec),
			minRisk(rec),
			fmt.Sprintf("%d", rec.Breaches),
		})
	}
	_ = table.Render()

	if *full {
		fmt.Println()
		for _, rec := range records {
			for _, o := range rec.Orders {
				fmt.Printf("turn %3d  %-8s %-12s (%d, %d) x%d\n",
					rec.Turn, o.Kind, o.Unit, o.At.X, o.At.Y, o.Quantity)
			}
		}
	}

	color.New(color.FgGreen, color.Bold).Printf("\n✓ Final breach count: %d\n", records[len(records)-1].Breaches)
}

func summarizeOrders(rec replay.TurnRecord) string {
	counts := map[string]int{}
	for _, o := range rec.Orders {
		counts[string(o.Kind)]++
	}
	if len(counts) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(counts))
	for _, kind := range []string{"build", "upgrade", "deploy"} {
		if n := counts[kind]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, kind))
		}
	}
	return strings.Join(parts, ", ")
}

func minRisk(rec replay.TurnRecord) string {
	if len(rec.Risks) == 0 {
		return "-"
	}
	min := rec.Risks[0].Risk
	for _, s := range rec.Risks[1:] {
		if s.Risk < min {
			min = s.Risk
		}
	}
	return fmt.Sprintf("%.0f", min)
}
