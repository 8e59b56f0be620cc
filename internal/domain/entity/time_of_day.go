package entity

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Restaurante-api/internal/domain"
)

// TimeOfDay hora del día con precisión de minutos (sin fecha ni zona horaria).
type TimeOfDay struct {
	Hour   int
	Minute int
}

// NewTimeOfDay construye una hora válida (0-23, 0-59).
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: hora fuera de rango %02d:%02d", domain.ErrInvalidInput, hour, minute)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// ParseTimeOfDay interpreta el formato "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("%w: hora inválida %q", domain.ErrInvalidInput, s)
	}
	var h, m int
	if _, err := fmt.Sscanf(parts[0]+":"+parts[1], "%d:%d", &h, &m); err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: hora inválida %q", domain.ErrInvalidInput, s)
	}
	return NewTimeOfDay(h, m)
}

// TotalMinutes devuelve los minutos desde medianoche.
func (t TimeOfDay) TotalMinutes() int {
	return t.Hour*60 + t.Minute
}

// Before indica si t es estrictamente anterior a o.
func (t TimeOfDay) Before(o TimeOfDay) bool {
	return t.TotalMinutes() < o.TotalMinutes()
}

// String formatea como "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// MarshalJSON serializa como "HH:MM".
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON acepta "HH:MM".
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
