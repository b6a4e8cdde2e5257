package requests

// Effect es el efecto sobre la cuota asociado a una arista de la máquina de estados.
type Effect int

const (
	EffectNone Effect = iota
	// EffectReleaseTurn libera el turno que ocupaba la solicitud.
	EffectReleaseTurn
)

type edge struct {
	from Status
	to   Status
}

// transitions es la tabla completa de aristas legales. Cualquier otra (incluida X -> X) es inválida.
// Approved -> Rejected permite revertir una aprobación antes de entregar.
var transitions = map[edge]Effect{
	{StatusPending, StatusApproved}:   EffectNone,
	{StatusPending, StatusRejected}:   EffectReleaseTurn,
	{StatusApproved, StatusDelivered}: EffectReleaseTurn,
	{StatusApproved, StatusRejected}:  EffectReleaseTurn,
}

// Transition devuelve el efecto de ir de from a to, o ok=false si la arista no existe.
func Transition(from, to Status) (Effect, bool) {
	eff, ok := transitions[edge{from: from, to: to}]
	return eff, ok
}

// NextStatuses lista los destinos legales desde s (útil para la UI).
func NextStatuses(s Status) []Status {
	out := make([]Status, 0, 2)
	for _, to := range []Status{StatusApproved, StatusRejected, StatusDelivered} {
		if _, ok := Transition(s, to); ok {
			out = append(out, to)
		}
	}
	return out
}
