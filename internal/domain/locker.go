package domain

// LockerSize is a discrete size class of a locker slot
type LockerSize string

const (
	SizeSmall  LockerSize = "SMALL"
	SizeMedium LockerSize = "MEDIUM"
	SizeLarge  LockerSize = "LARGE"
)

// AllSizes lists sizes in display order
var AllSizes = []LockerSize{SizeSmall, SizeMedium, SizeLarge}

// IsValid returns true if the size is one of the known size classes
func (s LockerSize) IsValid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	default:
		return false
	}
}

func (s LockerSize) String() string {
	return string(s)
}

// Coordinates is a geographic position of a locker
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Locker represents a physical locker station with slots of several sizes
type Locker struct {
	ID          string
	Name        string
	Location    string
	Coordinates Coordinates
	Capacity    map[LockerSize]int // total physical slots per size
}

// CapacityFor returns the total number of slots of the given size.
// A size absent from the table has zero capacity.
func (l *Locker) CapacityFor(size LockerSize) int {
	if l == nil || l.Capacity == nil {
		return 0
	}
	c := l.Capacity[size]
	if c < 0 {
		return 0
	}
	return c
}

// Sizes returns the sizes present in the capacity table in display order,
// followed by any unknown sizes the catalog may carry
func (l *Locker) Sizes() []LockerSize {
	if l == nil {
		return nil
	}
	sizes := make([]LockerSize, 0, len(l.Capacity))
	for _, s := range AllSizes {
		if _, ok := l.Capacity[s]; ok {
			sizes = append(sizes, s)
		}
	}
	for s := range l.Capacity {
		if !s.IsValid() {
			sizes = append(sizes, s)
		}
	}
	return sizes
}
