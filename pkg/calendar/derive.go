// Package calendar projects tasks onto a time axis for the calendar view.
package calendar

import (
	"math"
	"slices"
	"sort"
	"time"

	"olive/entities"
)

type EventType string

const (
	EventTask      EventType = "task"
	EventDeadline  EventType = "deadline"
	EventLifecycle EventType = "lifecycle"
)

const (
	ColorAmber = "#f59e0b"
	ColorTeal  = "#14b8a6"
	ColorGreen = "#22c55e"
	ColorGray  = "#6b7280"
	ColorRed   = "#ef4444"
)

// DeadlineHorizonDays bounds how far ahead deadline markers are produced.
const (
	DeadlineHorizonDays = 7
	DeadlineUrgentDays  = 3
)

type Event struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Start       time.Time           `json:"start"`
	End         time.Time           `json:"end"`
	Type        EventType           `json:"type"`
	Color       string              `json:"color"`
	TaskID      string              `json:"taskId,omitempty"`
	FieldID     string              `json:"fieldId,omitempty"`
	Status      entities.TaskStatus `json:"status,omitempty"`
	Description string              `json:"description,omitempty"`
}

type Window struct {
	Start time.Time
	End   time.Time
}

// Filter narrows the derived events. Empty allow-lists admit everything; nil toggles
// count as true.
type Filter struct {
	FieldIDs       []string
	TaskTypes      []string
	Statuses       []entities.TaskStatus
	ShowTasks      *bool
	ShowLifecycles *bool
	ShowDeadlines  *bool
}

func enabled(b *bool) bool { return b == nil || *b }

func (f Filter) admits(t entities.Task) bool {
	if len(f.FieldIDs) > 0 && !slices.Contains(f.FieldIDs, t.FieldID) {
		return false
	}
	if len(f.TaskTypes) > 0 && !slices.Contains(f.TaskTypes, t.Type) {
		return false
	}
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, t.Status) {
		return false
	}
	return true
}

// Derive builds the events visible in w, ordered by start time. now anchors the deadline
// countdown.
func Derive(tasks []entities.Task, w Window, f Filter, now time.Time) []Event {
	events := []Event{}
	for _, t := range tasks {
		if t.ScheduledStart == nil || !f.admits(t) {
			continue
		}
		start := *t.ScheduledStart
		end := start
		if t.ScheduledEnd != nil {
			end = *t.ScheduledEnd
		}
		if start.After(w.End) || end.Before(w.Start) {
			continue
		}

		if enabled(f.ShowTasks) {
			events = append(events, taskEvent(t, start, end))
		}
		if enabled(f.ShowDeadlines) {
			if ev, ok := deadlineEvent(t, now); ok {
				events = append(events, ev)
			}
		}
	}
	if enabled(f.ShowLifecycles) {
		events = append(events, lifecycleEvents(w)...)
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].Start.Before(events[j].Start) })
	return events
}

func taskEvent(t entities.Task, start, end time.Time) Event {
	return Event{
		ID:          "task-" + t.ID,
		Title:       t.Title,
		Start:       start,
		End:         end,
		Type:        EventTask,
		Color:       StatusColor(t.Status),
		TaskID:      t.ID,
		FieldID:     t.FieldID,
		Status:      t.Status,
		Description: t.Description,
	}
}

func deadlineEvent(t entities.Task, now time.Time) (Event, bool) {
	if t.Status == entities.TaskCompleted || t.ScheduledEnd == nil {
		return Event{}, false
	}
	days := DaysUntil(*t.ScheduledEnd, now)
	if days < 0 || days > DeadlineHorizonDays {
		return Event{}, false
	}
	color := ColorAmber
	if days <= DeadlineUrgentDays {
		color = ColorRed
	}
	return Event{
		ID:      "deadline-" + t.ID,
		Title:   "Deadline: " + t.Title,
		Start:   *t.ScheduledEnd,
		End:     *t.ScheduledEnd,
		Type:    EventDeadline,
		Color:   color,
		TaskID:  t.ID,
		FieldID: t.FieldID,
		Status:  t.Status,
	}, true
}

// DaysUntil counts whole days to deadline, rounding partial days up.
func DaysUntil(deadline, now time.Time) int {
	return int(math.Ceil(deadline.Sub(now).Hours() / 24))
}

// lifecycleEvents is where lifecycle milestones will be projected once lifecycles carry
// calendar dates. It yields nothing today.
func lifecycleEvents(Window) []Event { return nil }

func StatusColor(s entities.TaskStatus) string {
	switch s {
	case entities.TaskPending:
		return ColorAmber
	case entities.TaskInProgress:
		return ColorTeal
	case entities.TaskCompleted:
		return ColorGreen
	}
	return ColorGray
}
