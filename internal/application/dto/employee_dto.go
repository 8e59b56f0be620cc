package dto

// CreateEmployeeRequest entrada para registrar un empleado.
type CreateEmployeeRequest struct {
	Name        string `json:"name"`
	Position    string `json:"position"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

// UpdateEmployeeRequest entrada para actualizar un empleado (campos opcionales).
type UpdateEmployeeRequest struct {
	Name        *string `json:"name"`
	Position    *string `json:"position"`
	PhoneNumber *string `json:"phone_number"`
	Email       *string `json:"email"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

// EmployeeListResponse listado de empleados.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Total int                `json:"total"`
}
