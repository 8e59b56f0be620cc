package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
	"github.com/jhoicas/Restaurante-api/internal/domain/schedule"
)

// ShiftUseCase casos de uso de turnos: CRUD, consultas y calendario semanal.
type ShiftUseCase struct {
	repo      repository.ShiftRepository
	employees repository.EmployeeRepository
}

// NewShiftUseCase construye el caso de uso.
func NewShiftUseCase(repo repository.ShiftRepository, employees repository.EmployeeRepository) *ShiftUseCase {
	return &ShiftUseCase{repo: repo, employees: employees}
}

// Create valida y registra un turno. El nombre del empleado se resuelve y
// desnormaliza aquí: las referencias viajan por ID, nunca como "ID - Nombre".
func (uc *ShiftUseCase) Create(in dto.CreateShiftRequest) (*dto.ShiftResponse, error) {
	shift, err := uc.shiftFromCreate(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(shift); err != nil {
		return nil, err
	}
	return toShiftResponse(shift), nil
}

// GetByID obtiene un turno por ID.
func (uc *ShiftUseCase) GetByID(id string) (*dto.ShiftResponse, error) {
	shift, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, domain.ErrNotFound
	}
	return toShiftResponse(shift), nil
}

// ShiftQuery filtros opcionales para listar turnos.
type ShiftQuery struct {
	EmployeeID string
	Date       *time.Time
	From       *time.Time
	To         *time.Time
}

// List lista turnos según los filtros: empleado, fecha exacta o rango de fechas.
func (uc *ShiftUseCase) List(q ShiftQuery) (*dto.ShiftListResponse, error) {
	var (
		list []*entity.Shift
		err  error
	)
	switch {
	case q.EmployeeID != "":
		list, err = uc.repo.ListByEmployee(q.EmployeeID)
	case q.Date != nil:
		list, err = uc.repo.ListByDate(*q.Date)
	case q.From != nil && q.To != nil:
		list, err = uc.repo.ListByDateRange(*q.From, *q.To)
	default:
		list, err = uc.repo.List()
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ShiftResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toShiftResponse(s))
	}
	return &dto.ShiftListResponse{Items: items, Total: len(items)}, nil
}

// Update valida y actualiza un turno existente.
func (uc *ShiftUseCase) Update(id string, in dto.UpdateShiftRequest) (*dto.ShiftResponse, error) {
	shift, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, domain.ErrNotFound
	}
	if in.EmployeeID != nil {
		emp, err := uc.resolveEmployee(*in.EmployeeID)
		if err != nil {
			return nil, err
		}
		shift.EmployeeID = emp.ID
		shift.EmployeeName = emp.Name
	}
	if in.Date != nil {
		date, err := dto.ParseDate(*in.Date)
		if err != nil {
			return nil, err
		}
		shift.Date = date
	}
	if in.StartTime != nil {
		t, err := entity.ParseTimeOfDay(*in.StartTime)
		if err != nil {
			return nil, err
		}
		shift.StartTime = &t
	}
	if in.EndTime != nil {
		t, err := entity.ParseTimeOfDay(*in.EndTime)
		if err != nil {
			return nil, err
		}
		shift.EndTime = &t
	}
	if in.ShiftType != nil {
		shift.ShiftType = *in.ShiftType
	}
	if err := validateShift(shift); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(shift); err != nil {
		return nil, err
	}
	return toShiftResponse(shift), nil
}

// Delete elimina un turno por ID.
func (uc *ShiftUseCase) Delete(id string) error {
	shift, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if shift == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// Calendar calcula el plan de colocación de la semana que contiene weekStart.
// Lee un snapshot de los turnos de la semana y delega en el asignador puro.
func (uc *ShiftUseCase) Calendar(weekStart time.Time) (*dto.WeekLayoutResponse, error) {
	start := schedule.WeekStartOf(weekStart)
	shifts, err := uc.repo.ListByDateRange(start, start.AddDate(0, 0, 6))
	if err != nil {
		return nil, err
	}
	snapshot := make([]entity.Shift, 0, len(shifts))
	for _, s := range shifts {
		snapshot = append(snapshot, *s)
	}
	layout := schedule.ComputeWeekLayout(start, snapshot)
	return toWeekLayoutResponse(layout), nil
}

func (uc *ShiftUseCase) shiftFromCreate(in dto.CreateShiftRequest) (*entity.Shift, error) {
	emp, err := uc.resolveEmployee(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	start, err := entity.ParseTimeOfDay(in.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := entity.ParseTimeOfDay(in.EndTime)
	if err != nil {
		return nil, err
	}
	shift := &entity.Shift{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Date:         date,
		StartTime:    &start,
		EndTime:      &end,
		ShiftType:    in.ShiftType,
	}
	if err := validateShift(shift); err != nil {
		return nil, err
	}
	return shift, nil
}

func (uc *ShiftUseCase) resolveEmployee(id string) (*entity.Employee, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: employee_id es requerido", domain.ErrInvalidInput)
	}
	emp, err := uc.employees.GetByID(id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, fmt.Errorf("%w: empleado %s", domain.ErrNotFound, id)
	}
	return emp, nil
}

// validateShift exige fecha, ambas horas, inicio estrictamente anterior al fin
// y tipo de turno. Se valida antes de cualquier mutación del store.
func validateShift(s *entity.Shift) error {
	if s.Date.IsZero() {
		return fmt.Errorf("%w: la fecha es requerida", domain.ErrInvalidInput)
	}
	if s.StartTime == nil {
		return fmt.Errorf("%w: la hora de inicio es requerida", domain.ErrInvalidInput)
	}
	if s.EndTime == nil {
		return fmt.Errorf("%w: la hora de fin es requerida", domain.ErrInvalidInput)
	}
	if !s.StartTime.Before(*s.EndTime) {
		return fmt.Errorf("%w: la hora de inicio debe ser anterior a la de fin", domain.ErrInvalidInput)
	}
	if s.ShiftType == "" {
		return fmt.Errorf("%w: el tipo de turno es requerido", domain.ErrInvalidInput)
	}
	return nil
}

func toShiftResponse(s *entity.Shift) *dto.ShiftResponse {
	resp := &dto.ShiftResponse{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		EmployeeName: s.EmployeeName,
		Date:         dto.FormatDate(s.Date),
		ShiftType:    s.ShiftType,
	}
	if s.StartTime != nil {
		resp.StartTime = s.StartTime.String()
	}
	if s.EndTime != nil {
		resp.EndTime = s.EndTime.String()
	}
	return resp
}

func toWeekLayoutResponse(layout schedule.WeekLayout) *dto.WeekLayoutResponse {
	resp := &dto.WeekLayoutResponse{
		WeekStart: dto.FormatDate(layout.WeekStart),
		Days:      make([]dto.CalendarDay, 0, len(layout.Days)),
	}
	for _, day := range layout.Days {
		d := dto.CalendarDay{
			Date:  dto.FormatDate(day.Date),
			Cells: make([]dto.CalendarCell, 0, len(day.Cells)),
		}
		for _, cell := range day.Cells {
			c := dto.CalendarCell{Hour: cell.Hour, State: cellState(cell.Kind)}
			if cell.Kind == schedule.CellStart {
				c.RowSpan = cell.RowSpan
				c.Shifts = make([]dto.CalendarShift, 0, len(cell.Shifts))
				for _, p := range cell.Shifts {
					c.Shifts = append(c.Shifts, dto.CalendarShift{
						ID:           p.Shift.ID,
						EmployeeID:   p.Shift.EmployeeID,
						EmployeeName: p.Shift.EmployeeName,
						ShiftType:    p.Shift.ShiftType,
						StartTime:    p.Shift.StartTime.String(),
						EndTime:      p.Shift.EndTime.String(),
						RowSpan:      p.RowSpan,
						StackIndex:   p.StackIndex,
						StackCount:   p.StackCount,
						Height:       p.Height,
					})
				}
			}
			d.Cells = append(d.Cells, c)
		}
		resp.Days = append(resp.Days, d)
	}
	return resp
}

func cellState(k schedule.CellKind) string {
	switch k {
	case schedule.CellCovered:
		return "covered"
	case schedule.CellStart:
		return "start"
	default:
		return "empty"
	}
}
