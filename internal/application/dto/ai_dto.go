package dto

// DescribeProductRequest petición de descripción comercial asistida por IA.
// Acepta los atributos sueltos (para piezas aún no guardadas) o un product_id
// existente.
type DescribeProductRequest struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Karat     string `json:"karat"`
	Weight    string `json:"weight"`
}

// AdvisorTextDTO respuesta de texto del asistente. Fallback indica que el
// servicio externo falló y el texto es el mensaje fijo de cortesía.
type AdvisorTextDTO struct {
	Text     string `json:"text"`
	Fallback bool   `json:"fallback"`
}
