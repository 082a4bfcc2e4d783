package memory

import "time"

// Latencias simuladas por operación, tomadas del comportamiento esperado de
// una API real sobre red local. Se aplican antes de tocar la colección.
const (
	latencyLogin = 800 * time.Millisecond
	latencyList  = 500 * time.Millisecond
	latencyGet   = 300 * time.Millisecond
	latencyWrite = 500 * time.Millisecond
)

// Clock abstrae el tiempo y la espera. Permite que los tests corran de forma
// síncrona y que la latencia simulada sea configurable por inyección.
type Clock struct {
	Now   func() time.Time
	Sleep func(time.Duration)
}

// SystemClock reloj real: las operaciones del mock duermen sus latencias.
func SystemClock() *Clock {
	return &Clock{Now: time.Now, Sleep: time.Sleep}
}

// InstantClock reloj sin espera, para tests y para desactivar la simulación
// de red (MOCK_LATENCY=false).
func InstantClock() *Clock {
	return &Clock{Now: time.Now, Sleep: func(time.Duration) {}}
}
