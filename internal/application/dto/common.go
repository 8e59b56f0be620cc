package dto

import (
	"fmt"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DateLayout formato de fecha aceptado en requests y usado en responses.
const DateLayout = "2006-01-02"

// ParseDate interpreta una fecha "YYYY-MM-DD" (sin zona horaria).
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha inválida %q", domain.ErrInvalidInput, s)
	}
	return d, nil
}

// FormatDate serializa una fecha como "YYYY-MM-DD".
func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}
