package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOutOfRange возвращается, когда результат выходит за пределы суток
	ErrTimeOutOfRange = errors.New("time is out of day range")
)

// TimeString время суток без даты (HH:MM или HH:MM:SS)
// Допустимый диапазон 00:00 .. 24:00, где 24:00 означает конец суток
type TimeString struct {
	seconds int
	valid   bool
}

// StartOfDay 00:00
var StartOfDay = TimeString{seconds: 0, valid: true}

// EndOfDay 24:00 - конец суток, используется как верхняя граница окна
var EndOfDay = TimeString{seconds: secondsPerDay, valid: true}

// NewTimeString создает TimeString из времени суток t (дата отбрасывается)
func NewTimeString(t time.Time) TimeString {
	return TimeString{
		seconds: t.Hour()*secondsPerHour + t.Minute()*secondsPerMinute + t.Second(),
		valid:   true,
	}
}

// NewTimeStringFromString парсит строку формата HH:MM или HH:MM:SS
func NewTimeStringFromString(s string) (TimeString, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	values := make([]int, 3)
	for i, part := range parts {
		if len(part) != 2 {
			return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
		v, err := strconv.Atoi(part)
		if err != nil || v < 0 {
			return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
		values[i] = v
	}

	hours, minutes, seconds := values[0], values[1], values[2]
	if hours > 24 || minutes > 59 || seconds > 59 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	if hours == 24 && (minutes != 0 || seconds != 0) {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	return TimeString{
		seconds: hours*secondsPerHour + minutes*secondsPerMinute + seconds,
		valid:   true,
	}, nil
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return !t.valid
}

// IsEndOfDay возвращает true для 24:00
func (t TimeString) IsEndOfDay() bool {
	return t.valid && t.seconds == secondsPerDay
}

// Seconds количество секунд от начала суток
func (t TimeString) Seconds() int {
	return t.seconds
}

// Minutes количество полных минут от начала суток
func (t TimeString) Minutes() int {
	return t.seconds / secondsPerMinute
}

// Compare возвращает -1, 0 или 1
func (t TimeString) Compare(other TimeString) int {
	switch {
	case t.seconds < other.seconds:
		return -1
	case t.seconds > other.seconds:
		return 1
	default:
		return 0
	}
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.seconds < other.seconds
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.seconds > other.seconds
}

// Equal возвращает true, если времена совпадают
func (t TimeString) Equal(other TimeString) bool {
	return t.valid == other.valid && t.seconds == other.seconds
}

// AddMinutes прибавляет минуты, результат должен остаться в пределах 00:00..24:00
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	result := t.seconds + minutes*secondsPerMinute
	if result < 0 || result > secondsPerDay {
		return TimeString{}, fmt.Errorf("%w: %s %+d min", ErrTimeOutOfRange, t, minutes)
	}
	return TimeString{seconds: result, valid: true}, nil
}

// String форматирует время как HH:MM (или HH:MM:SS, если есть секунды)
func (t TimeString) String() string {
	if !t.valid {
		return ""
	}
	hours := t.seconds / secondsPerHour
	minutes := (t.seconds % secondsPerHour) / secondsPerMinute
	seconds := t.seconds % secondsPerMinute
	if seconds != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// Value реализует driver.Valuer (колонки TIME в PostgreSQL)
func (t TimeString) Value() (driver.Value, error) {
	if !t.valid {
		return nil, nil
	}
	hours := t.seconds / secondsPerHour
	minutes := (t.seconds % secondsPerHour) / secondsPerMinute
	seconds := t.seconds % secondsPerMinute
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds), nil
}

// Scan реализует sql.Scanner
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = TimeString{}
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
}

func (t *TimeString) scanString(s string) error {
	// PostgreSQL может вернуть дробные секунды: 08:00:00.000000
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		s = s[:idx]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalJSON реализует json.Marshaler
func (t TimeString) MarshalJSON() ([]byte, error) {
	if !t.valid {
		return []byte("null"), nil
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON реализует json.Unmarshaler
func (t *TimeString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = TimeString{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeString, err)
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
