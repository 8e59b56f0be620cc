package dto

// CalendarShift colocación de un turno dentro de su celda de inicio.
type CalendarShift struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	ShiftType    string  `json:"shift_type"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	RowSpan      int     `json:"row_span"`
	StackIndex   int     `json:"stack_index"`
	StackCount   int     `json:"stack_count"`
	Height       float64 `json:"height"`
}

// CalendarCell una celda (hora) de un día del calendario.
// State: "empty" | "covered" | "start".
type CalendarCell struct {
	Hour    int             `json:"hour"`
	State   string          `json:"state"`
	RowSpan int             `json:"row_span,omitempty"`
	Shifts  []CalendarShift `json:"shifts,omitempty"`
}

// CalendarDay las celdas mostrables (06:00-23:00) de un día.
type CalendarDay struct {
	Date  string         `json:"date"`
	Cells []CalendarCell `json:"cells"`
}

// WeekLayoutResponse plan de colocación de la semana completa.
type WeekLayoutResponse struct {
	WeekStart string        `json:"week_start"`
	Days      []CalendarDay `json:"days"`
}
