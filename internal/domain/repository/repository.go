package repository

// Order dirección de ordenamiento por createdAt en los listados.
type Order int

const (
	OrderDesc Order = iota // por defecto: más reciente primero
	OrderAsc
)

// Direction devuelve el valor de sort que espera el driver (1 asc, -1 desc).
func (o Order) Direction() int {
	if o == OrderAsc {
		return 1
	}
	return -1
}

// ParseOrder interpreta el query param `order`; cualquier valor distinto de
// "asc" cae en descendente.
func ParseOrder(s string) Order {
	if s == "asc" {
		return OrderAsc
	}
	return OrderDesc
}
