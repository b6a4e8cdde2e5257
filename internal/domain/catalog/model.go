package catalog

import "time"

// Medicine es un registro del inventario.
type Medicine struct {
	ID          string
	Name        string
	Description string
	Dose        string
	Unit        string
	ExpiryDate  time.Time
	Lot         string

	QuantityAvailable int
}
