package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"location-production-backend/internal/seed"
	"location-production-backend/internal/service"
)

// formatPercent renders a completion value without trailing zeros.
func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

func printSeedResult(w io.Writer, r *seed.Result) error {
	_, err := fmt.Fprintf(w, "Seeded %d projects, %d locations, %d rentals, %d stages\n",
		r.ProjectsCreated, r.LocationsCreated, r.RentalsCreated, r.StagesCreated)
	return err
}

func printProgress(w io.Writer, p *service.RentalProgressResponse) error {
	lines := []struct {
		label string
		value string
	}{
		{"Completion", formatPercent(p.CompletionPercentage)},
		{"Stored", formatPercent(p.StoredCompletionPercentage)},
		{"Stages", strconv.Itoa(p.TotalStages)},
		{"Pending", strconv.Itoa(p.Pending)},
		{"In progress", strconv.Itoa(p.InProgress)},
		{"Completed", strconv.Itoa(p.Completed)},
		{"On hold", strconv.Itoa(p.OnHold)},
		{"Cancelled", strconv.Itoa(p.Cancelled)},
		{"Critical open", strconv.Itoa(p.CriticalOpen)},
		{"Overdue", strconv.Itoa(p.Overdue)},
		{"Milestones", fmt.Sprintf("%d/%d", p.MilestonesCompleted, p.MilestonesTotal)},
	}

	if _, err := fmt.Fprintf(w, "Rental %s\n", p.RentalID); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, l := range lines {
		if _, err := fmt.Fprintf(tw, "  %s:\t%s\n", l.label, l.value); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func printHistory(w io.Writer, entries []service.StageHistoryResponse) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No history recorded.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "CHANGED AT\tFROM\tTO\tCOMPLETION\tBY\tNOTES"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	for _, e := range entries {
		from := "-"
		if e.PreviousStatus != nil {
			from = string(*e.PreviousStatus)
		}
		by := e.ChangedBy
		if by == "" {
			by = "-"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ChangedAt, from, e.NewStatus, formatPercent(e.NewCompletion), by, e.Notes); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}
	return tw.Flush()
}

func printEvents(w io.Writer, events []service.CalendarEventResponse) error {
	if len(events) == 0 {
		_, err := fmt.Fprintln(w, "No events generated.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "TYPE\tSTART\tEND\tTITLE"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	for _, e := range events {
		end := "-"
		if e.EndDate != nil {
			end = *e.EndDate
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.EventType, e.StartDate, end, e.Title); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}
	return tw.Flush()
}
