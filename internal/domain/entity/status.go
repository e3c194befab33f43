package entity

// Estados del ciclo de vida de una operación (recepción, entrega, traslado, ajuste).
// Draft → {Waiting, Ready} → Done (terminal) o → Canceled (terminal).
// Solo la transición a Done dispara la mutación de inventario/ledger.
const (
	StatusDraft    = "Draft"
	StatusWaiting  = "Waiting"
	StatusReady    = "Ready"
	StatusDone     = "Done"
	StatusCanceled = "Canceled"
)

// ValidStatus indica si s es un estado conocido.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusWaiting, StatusReady, StatusDone, StatusCanceled:
		return true
	}
	return false
}

// IsTerminal indica si el estado es terminal (Done o Canceled).
func IsTerminal(s string) bool {
	return s == StatusDone || s == StatusCanceled
}

// CanEdit indica si una operación en el estado s todavía admite edición
// de cabecera y líneas.
func CanEdit(s string) bool {
	return !IsTerminal(s)
}

// CanComplete indica si desde el estado s es válida la transición a Done.
func CanComplete(s string) bool {
	switch s {
	case StatusDraft, StatusWaiting, StatusReady:
		return true
	}
	return false
}
