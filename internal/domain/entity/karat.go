package entity

// Karat es el grado de pureza del oro; determina la tarifa de precio por gramo.
type Karat string

// Quilates soportados por el negocio.
const (
	Karat24 Karat = "24"
	Karat22 Karat = "22"
	Karat21 Karat = "21"
	Karat18 Karat = "18"
	Karat14 Karat = "14"
)

// AllKarats en orden descendente de pureza.
var AllKarats = []Karat{Karat24, Karat22, Karat21, Karat18, Karat14}

// Valid indica si el valor corresponde a un quilataje soportado.
func (k Karat) Valid() bool {
	for _, v := range AllKarats {
		if k == v {
			return true
		}
	}
	return false
}
