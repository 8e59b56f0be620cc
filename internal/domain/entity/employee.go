package entity

// Employee representa un miembro del personal del restaurante.
type Employee struct {
	ID          string
	Name        string
	Position    string // Chef, Waiter, Manager, etc.
	PhoneNumber string
	Email       string
}
