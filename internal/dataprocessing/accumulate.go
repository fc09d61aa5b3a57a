package dataprocessing

import "sort"

// YearTable accumulates every observation decoded for one report year.
// Repeated (room, month) observations from different files are appended,
// never overwritten; reduction to a single value happens in the Builder.
type YearTable struct {
	Year         int
	observations map[int][]Observation
	metricNames  []string
	metricSeen   map[string]MetricKind
}

// NewYearTable creates an empty table for the given year.
func NewYearTable(year int) *YearTable {
	return &YearTable{
		Year:         year,
		observations: make(map[int][]Observation),
		metricSeen:   make(map[string]MetricKind),
	}
}

// Add appends an observation, recording any newly seen raw metric names in
// first-seen order.
func (t *YearTable) Add(obs Observation) {
	t.observations[obs.Room] = append(t.observations[obs.Room], obs)
	for _, m := range obs.Metrics {
		if _, ok := t.metricSeen[m.Name]; !ok {
			t.metricSeen[m.Name] = m.Kind
			t.metricNames = append(t.metricNames, m.Name)
		}
	}
}

// Merge appends all of other's observations into t.
func (t *YearTable) Merge(other *YearTable) {
	for _, list := range other.observations {
		for _, obs := range list {
			t.Add(obs)
		}
	}
}

// Rooms returns every room with at least one observation, sorted.
func (t *YearTable) Rooms() []int {
	rooms := make([]int, 0, len(t.observations))
	for room := range t.observations {
		rooms = append(rooms, room)
	}
	sort.Ints(rooms)
	return rooms
}

// Observations returns the room's observations sorted by provenance
// (file, page, block), so consumers see the same order regardless of how
// batches completed.
func (t *YearTable) Observations(room int) []Observation {
	list := append([]Observation(nil), t.observations[room]...)
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Page != b.Page {
			return a.Page < b.Page
		}
		return a.Block < b.Block
	})
	return list
}

// MetricNames returns the raw metric column names in first-seen order.
func (t *YearTable) MetricNames() []string {
	return append([]string(nil), t.metricNames...)
}

// MetricKindOf returns the kind recorded for a raw metric name.
func (t *YearTable) MetricKindOf(name string) MetricKind {
	return t.metricSeen[name]
}

// Empty reports whether no observation was ever added.
func (t *YearTable) Empty() bool {
	return len(t.observations) == 0
}

// TableSet maps report years to their accumulating tables. It replaces the
// original auto-vivifying nested mapping with an explicit get-or-insert
// container so merge semantics stay visible.
type TableSet struct {
	years map[int]*YearTable
}

// NewTableSet creates an empty set.
func NewTableSet() *TableSet {
	return &TableSet{years: make(map[int]*YearTable)}
}

// GetOrInsert returns the year's table, creating it when absent.
func (s *TableSet) GetOrInsert(year int) *YearTable {
	t, ok := s.years[year]
	if !ok {
		t = NewYearTable(year)
		s.years[year] = t
	}
	return t
}

// Merge folds other's tables into s by observation-list concatenation.
func (s *TableSet) Merge(other *TableSet) {
	for year, t := range other.years {
		s.GetOrInsert(year).Merge(t)
	}
}

// Years returns the set's years, sorted.
func (s *TableSet) Years() []int {
	years := make([]int, 0, len(s.years))
	for y := range s.years {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Empty reports whether every contained table is empty.
func (s *TableSet) Empty() bool {
	for _, t := range s.years {
		if !t.Empty() {
			return false
		}
	}
	return true
}
