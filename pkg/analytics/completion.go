package analytics

import (
	"sort"
	"time"

	"olive/entities"
)

// CompletionBucket is one period of the completion-rate chart. Date is a day, the Sunday
// opening a week, or a YYYY-MM month depending on the series.
type CompletionBucket struct {
	Date      string  `json:"date"`
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Rate      float64 `json:"rate"`
}

type CompletionRates struct {
	Daily   []CompletionBucket `json:"daily"`
	Weekly  []CompletionBucket `json:"weekly"`
	Monthly []CompletionBucket `json:"monthly"`
}

// ComputeCompletionRates buckets the tasks created within r by day, week and month.
func ComputeCompletionRates(tasks []entities.Task, r DateRange) CompletionRates {
	in := createdWithin(tasks, r)

	daily := bucketize(in, func(t time.Time) string { return dayKey(t) })
	monthly := bucketize(in, func(t time.Time) string { return t.UTC().Format("2006-01") })

	return CompletionRates{
		Daily:   daily,
		Weekly:  rollWeeks(daily),
		Monthly: monthly,
	}
}

// bucketize counts tasks per key of their creation time, sorted by key.
func bucketize(tasks []entities.Task, key func(time.Time) string) []CompletionBucket {
	idx := map[string]int{}
	out := []CompletionBucket{}
	for _, t := range tasks {
		k := key(t.CreatedAt)
		i, ok := idx[k]
		if !ok {
			i = len(out)
			idx[k] = i
			out = append(out, CompletionBucket{Date: k})
		}
		out[i].Total++
		if t.Status == entities.TaskCompleted {
			out[i].Completed++
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	for i := range out {
		out[i].Rate = percent(out[i].Completed, out[i].Total)
	}
	return out
}

// rollWeeks folds daily buckets into Sunday-starting weeks. Weeks come out in the order
// they are first met while scanning the daily series; no further sort is applied.
func rollWeeks(daily []CompletionBucket) []CompletionBucket {
	idx := map[string]int{}
	out := []CompletionBucket{}
	for _, d := range daily {
		day, err := time.Parse(dayLayout, d.Date)
		if err != nil {
			continue
		}
		week := day.AddDate(0, 0, -int(day.Weekday())).Format(dayLayout)
		i, ok := idx[week]
		if !ok {
			i = len(out)
			idx[week] = i
			out = append(out, CompletionBucket{Date: week})
		}
		out[i].Total += d.Total
		out[i].Completed += d.Completed
	}
	for i := range out {
		out[i].Rate = percent(out[i].Completed, out[i].Total)
	}
	return out
}
