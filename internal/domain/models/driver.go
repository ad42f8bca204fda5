package models

type Driver struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"license_number"`
}

func (d *Driver) GetID() int64   { return d.ID }
func (d *Driver) SetID(id int64) { d.ID = id }

func (d *Driver) Pointers() []any {
	return []any{&d.Name, &d.Phone, &d.LicenseNumber}
}
