package schedule

import (
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// Rejilla horaria del calendario semanal: filas de una hora, de 06:00 a 23:00.
const (
	GridStartHour = 6
	GridEndHour   = 24
	GridRows      = GridEndHour - GridStartHour // 18

	// Unidades de alto de la vista original: 50 por fila, 4 de relleno fijo por celda.
	UnitHeight  = 50.0
	CellPadding = 4.0
)

// CellKind estado de una celda de la rejilla.
type CellKind int

const (
	// CellEmpty ningún turno toca la celda.
	CellEmpty CellKind = iota
	// CellCovered un turno iniciado en una hora anterior del mismo día abarca esta hora;
	// la celda se pinta vacía y sin borde.
	CellCovered
	// CellStart uno o más turnos comienzan exactamente en esta hora.
	CellStart
)

// Placement ubicación de un turno dentro de su celda de inicio.
type Placement struct {
	Shift      entity.Shift
	RowSpan    int // filas de una hora que abarca este turno
	StackIndex int // posición en la pila de la celda (orden de origen)
	StackCount int // turnos que comparten la celda
	Height     float64
}

// Cell una celda (día, hora) de la rejilla.
// RowSpan y Shifts solo son significativos cuando Kind es CellStart.
type Cell struct {
	Hour    int
	Kind    CellKind
	RowSpan int
	Shifts  []Placement
}

// DayLayout las 18 celdas de un día.
type DayLayout struct {
	Date  time.Time
	Cells [GridRows]Cell
}

// WeekLayout plan de colocación de una semana completa (lunes a domingo).
type WeekLayout struct {
	WeekStart time.Time
	Days      [7]DayLayout
}

// Cell devuelve la celda de una hora mostrable; ok=false fuera de [6,24).
func (d DayLayout) Cell(hour int) (Cell, bool) {
	if hour < GridStartHour || hour >= GridEndHour {
		return Cell{}, false
	}
	return d.Cells[hour-GridStartHour], true
}

// WeekStartOf normaliza una fecha al lunes de su semana (solo parte de fecha).
func WeekStartOf(d time.Time) time.Time {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	// time.Weekday: domingo=0 ... sábado=6; la semana del calendario empieza en lunes.
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
