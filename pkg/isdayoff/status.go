package isdayoff

// DayStatus is the classification isdayoff.ru reports for one calendar day
type DayStatus uint8

const (
	Workday  DayStatus = 0 // Working day
	DayOff   DayStatus = 1 // Weekend or holiday
	ShortDay DayStatus = 2 // Pre-holiday shortened day (reported only with pre=1)
	Unknown  DayStatus = 3 // Nonexistent or unknown day
)

// StatusSequence holds one DayStatus per day in ascending date order
type StatusSequence []DayStatus

// String returns the lowercase name of the status
func (s DayStatus) String() string {
	switch s {
	case Workday:
		return "workday"
	case DayOff:
		return "dayoff"
	case ShortDay:
		return "shortday"
	case Unknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// IsWorking reports whether people work on the day (full or shortened)
func (s DayStatus) IsWorking() bool {
	return s == Workday || s == ShortDay
}

// Count returns how many entries of the sequence have the given status
func (seq StatusSequence) Count(status DayStatus) int {
	n := 0
	for _, s := range seq {
		if s == status {
			n++
		}
	}
	return n
}

// Decode parses a raw isdayoff.ru response body.
// Format: "100000110000011000001100000110", one digit per day.
// Any byte outside '0'..'3' fails the whole body.
func Decode(body string) (StatusSequence, error) {
	seq := make(StatusSequence, 0, len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c < '0' || c > '9' {
			return nil, &DecodeError{Body: body, Pos: i, Reason: "not a digit"}
		}
		status := DayStatus(c - '0')
		if status > Unknown {
			return nil, &DecodeError{Body: body, Pos: i, Reason: "unsupported day status"}
		}
		seq = append(seq, status)
	}
	return seq, nil
}

// decodeSingle decodes a body that must carry exactly one day
func decodeSingle(body string) (DayStatus, error) {
	if len(body) != 1 {
		return 0, &DecodeError{Body: body, Pos: -1, Reason: "expected exactly one day status"}
	}
	seq, err := Decode(body)
	if err != nil {
		return 0, err
	}
	return seq[0], nil
}
