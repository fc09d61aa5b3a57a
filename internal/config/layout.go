package config

import (
	"fmt"
	"strconv"
	"strings"
)

// SingleRoom marks a RoomRange that covers exactly its Start room.
const SingleRoom = -1

// RoomRange is an inclusive room-number range, or a single room when End is
// SingleRoom. Its text form is "101-104" or "1500", which is what both the
// yaml layer and environment overrides use.
type RoomRange struct {
	Start int
	End   int
}

// Expand returns every room number covered by the range, in order.
func (r RoomRange) Expand() []int {
	if r.End == SingleRoom {
		return []int{r.Start}
	}
	rooms := make([]int, 0, r.End-r.Start+1)
	for n := r.Start; n <= r.End; n++ {
		rooms = append(rooms, n)
	}
	return rooms
}

func (r RoomRange) String() string {
	if r.End == SingleRoom {
		return strconv.Itoa(r.Start)
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// MarshalText implements encoding.TextMarshaler.
func (r RoomRange) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting "101-104"
// or "1500".
func (r *RoomRange) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" {
		return fmt.Errorf("empty room range")
	}

	start, end, found := strings.Cut(s, "-")
	startN, err := strconv.Atoi(strings.TrimSpace(start))
	if err != nil {
		return fmt.Errorf("invalid room range %q: %w", s, err)
	}
	if !found {
		r.Start, r.End = startN, SingleRoom
		return nil
	}

	endN, err := strconv.Atoi(strings.TrimSpace(end))
	if err != nil {
		return fmt.Errorf("invalid room range %q: %w", s, err)
	}
	if endN < startN {
		return fmt.Errorf("invalid room range %q: end before start", s)
	}
	r.Start, r.End = startN, endN
	return nil
}

// UnmarshalYAML implements yaml.v2 unmarshaling from the text form.
func (r *RoomRange) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return r.UnmarshalText([]byte(s))
}

// MarshalYAML implements yaml.v2 marshaling to the text form.
func (r RoomRange) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

// ExpandRooms flattens a property layout into the ordered list of every
// room number it covers.
func ExpandRooms(ranges []RoomRange) []int {
	var rooms []int
	for _, r := range ranges {
		rooms = append(rooms, r.Expand()...)
	}
	return rooms
}
