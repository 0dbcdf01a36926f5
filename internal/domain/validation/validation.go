// Package validation concentra las reglas de invariantes por entidad.
// Cada validador devuelve un *domain.ValidationError acumulando pares
// campo→mensaje; el caso de uso puede agregar errores propios (unicidad)
// antes de decidir si persiste. Nada se escribe con errores pendientes.
package validation

import (
	"regexp"
	"time"
)

var (
	skuPattern   = regexp.MustCompile(`^[A-Z0-9-]+$`)
	cnpjPattern  = regexp.MustCompile(`^\d{14}$`)
	phonePattern = regexp.MustCompile(`^\d{10,11}$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// endOfDay devuelve el último instante del día de t, en su zona horaria.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// afterToday compara a granularidad de día: true solo si date cae en un día
// posterior al de now.
func afterToday(date, now time.Time) bool {
	return date.After(endOfDay(now))
}
