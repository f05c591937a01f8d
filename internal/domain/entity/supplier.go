package entity

// Supplier proveedor de mercancía. ItemsSupplied cuenta entregas (una por
// transacción de suministro), no unidades.
type Supplier struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
	Notes         string `json:"notes,omitempty"`
	ItemsSupplied int    `json:"itemsSupplied"`
}
