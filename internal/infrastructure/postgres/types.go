package postgres

import (
	"fmt"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// Las horas del día se guardan como texto "HH:MM" en columnas anulables.

func timeOfDayToText(t *entity.TimeOfDay) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}

func textToTimeOfDay(s *string) (*entity.TimeOfDay, error) {
	if s == nil {
		return nil, nil
	}
	t, err := entity.ParseTimeOfDay(*s)
	if err != nil {
		return nil, fmt.Errorf("hora almacenada corrupta %q: %w", *s, err)
	}
	return &t, nil
}
