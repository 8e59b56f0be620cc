package schedule

import (
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// ComputeWeekLayout convierte los turnos de una semana en un plan de colocación
// sobre la rejilla de 7 días × 18 horas. Es una función pura: no muta los turnos
// recibidos y puede llamarse concurrentemente sobre un snapshot inmutable.
//
// Los turnos no necesitan venir ordenados ni filtrados a la semana: cada día
// selecciona solo los turnos cuya fecha cae en él. Los turnos sin hora de inicio
// o fin no se colocan ni bloquean a otros.
//
// Por día, en dos pasadas:
//  1. cobertura: cada turno marca como cubiertas las horas posteriores a su hora
//     de inicio dentro de su span, recortando en la hora 24;
//  2. inicio: cada hora no cubierta recoge los turnos que comienzan exactamente
//     ahí, en orden de origen, repartiendo el alto de la celda entre ellos.
//
// Una hora cubierta nunca muestra contenido, aunque otro turno comience ahí:
// ese turno desaparece de la rejilla. Comportamiento heredado y deliberado.
func ComputeWeekLayout(weekStart time.Time, shifts []entity.Shift) WeekLayout {
	start := WeekStartOf(weekStart)
	layout := WeekLayout{WeekStart: start}

	for day := 0; day < 7; day++ {
		date := start.AddDate(0, 0, day)
		layout.Days[day] = computeDayLayout(date, shifts)
	}
	return layout
}

// RowSpanOf filas de una hora que ocupa un turno: ceil(duración/60), mínimo 1.
// Una duración no positiva (dato malformado) también colapsa a 1.
func RowSpanOf(s entity.Shift) int {
	minutes := s.DurationMinutes()
	if minutes <= 0 {
		return 1
	}
	return (minutes + 59) / 60
}

func computeDayLayout(date time.Time, shifts []entity.Shift) DayLayout {
	day := DayLayout{Date: date}

	daily := make([]entity.Shift, 0, len(shifts))
	for _, s := range shifts {
		if sameDay(s.Date, date) && s.HasTimes() {
			daily = append(daily, s)
		}
	}

	// Pasada de cobertura: la hora de inicio nunca se marca; el resto del span
	// sí, recortando en la hora 24.
	var covered [24]bool
	for _, s := range daily {
		span := RowSpanOf(s)
		for h := s.StartTime.Hour + 1; h < s.StartTime.Hour+span && h < 24; h++ {
			covered[h] = true
		}
	}

	// Pasada de inicio sobre las horas mostrables.
	for hour := GridStartHour; hour < GridEndHour; hour++ {
		cell := Cell{Hour: hour}

		if covered[hour] {
			cell.Kind = CellCovered
			day.Cells[hour-GridStartHour] = cell
			continue
		}

		var starting []entity.Shift
		for _, s := range daily {
			if s.StartTime.Hour == hour {
				starting = append(starting, s)
			}
		}
		if len(starting) == 0 {
			cell.Kind = CellEmpty
			day.Cells[hour-GridStartHour] = cell
			continue
		}

		maxSpan := 1
		for _, s := range starting {
			if span := RowSpanOf(s); span > maxSpan {
				maxSpan = span
			}
		}

		// Los turnos que comienzan juntos reparten en partes iguales el alto
		// total abarcado por la celda, no el de una sola hora.
		height := (UnitHeight*float64(maxSpan) - CellPadding) / float64(len(starting))

		cell.Kind = CellStart
		cell.RowSpan = maxSpan
		cell.Shifts = make([]Placement, 0, len(starting))
		for i, s := range starting {
			cell.Shifts = append(cell.Shifts, Placement{
				Shift:      s,
				RowSpan:    RowSpanOf(s),
				StackIndex: i,
				StackCount: len(starting),
				Height:     height,
			})
		}
		day.Cells[hour-GridStartHour] = cell
	}
	return day
}
