package entity

import "time"

// Supplier representa un proveedor de productos.
type Supplier struct {
	ID        string
	Name      string // mínimo 3 caracteres
	CNPJ      string // único, exactamente 14 dígitos
	Email     string // opcional
	Phone     string // opcional, 10-11 dígitos
	Address   string
	Active    bool
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Deleted indica si el proveedor está marcado como eliminado.
func (s *Supplier) Deleted() bool { return s.DeletedAt != nil }

// FormattedCNPJ devuelve el CNPJ con máscara XX.XXX.XXX/XXXX-XX para reportes.
func (s *Supplier) FormattedCNPJ() string {
	if len(s.CNPJ) != 14 {
		return s.CNPJ
	}
	return s.CNPJ[0:2] + "." + s.CNPJ[2:5] + "." + s.CNPJ[5:8] + "/" + s.CNPJ[8:12] + "-" + s.CNPJ[12:14]
}
