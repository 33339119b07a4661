// Package grouping buckets time-ordered series into per-day rows.
package grouping

import "time"

const (
	dayLayout         = "Mon, Jan 02"
	dayWithYearLayout = "Mon, Jan 02 2006"
	timeLayout        = "15:04"
)

// DayLabel formats t as e.g. "Tue, Aug 19".
func DayLabel(t time.Time) string {
	return t.Format(dayLayout)
}

// DayLabelWithYear formats t as e.g. "Tue, Aug 19 2025".
func DayLabelWithYear(t time.Time) string {
	return t.Format(dayWithYearLayout)
}

// TimeLabel formats t as a 24-hour "15:04".
func TimeLabel(t time.Time) string {
	return t.Format(timeLayout)
}

type Slot[T any] struct {
	Time  string
	Index int
	Item  T
}

type Group[T any] struct {
	Day   string
	Slots []Slot[T]
}

// Groups keeps days in the order they were first seen, not sorted.
type Groups[T any] struct {
	groups []Group[T]
	byDay  map[string]int
}

// ByDay walks items once. A new day label opens a new group; later items
// with the same label are appended to it, wherever they appear.
func ByDay[T any](items []T, dayLabel, timeLabel func(T) string) *Groups[T] {
	g := &Groups[T]{byDay: make(map[string]int)}

	for i, item := range items {
		day := dayLabel(item)
		slot := Slot[T]{Time: timeLabel(item), Index: i, Item: item}

		pos, ok := g.byDay[day]
		if !ok {
			pos = len(g.groups)
			g.byDay[day] = pos
			g.groups = append(g.groups, Group[T]{Day: day})
		}
		g.groups[pos].Slots = append(g.groups[pos].Slots, slot)
	}

	return g
}

func (g *Groups[T]) Len() int {
	return len(g.groups)
}

// Keys returns day labels in first-appearance order.
func (g *Groups[T]) Keys() []string {
	keys := make([]string, len(g.groups))
	for i, grp := range g.groups {
		keys[i] = grp.Day
	}
	return keys
}

func (g *Groups[T]) Get(day string) ([]Slot[T], bool) {
	pos, ok := g.byDay[day]
	if !ok {
		return nil, false
	}
	return g.groups[pos].Slots, true
}

// All returns the groups in first-appearance order. Callers must not modify
// the returned slice.
func (g *Groups[T]) All() []Group[T] {
	return g.groups
}
