// Package memory implementa los puertos de persistencia sobre colecciones en
// memoria: una secuencia por colección para los IDs (PREFIJO + 4 dígitos),
// un candado por colección y snapshots copiados en cada lectura.
package memory

import "fmt"

// formatID aplica el esquema de IDs del store: prefijo + secuencia de 4 dígitos
// con ceros a la izquierda (EMP0001, SHF0001, BK0001, INV0001, TXN0001).
func formatID(prefix string, n int) string {
	return fmt.Sprintf("%s%04d", prefix, n)
}
