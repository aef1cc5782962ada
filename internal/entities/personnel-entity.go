package entities

type Personnel struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Field      string `json:"field"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	HireDate   string `json:"hire_date"`
	Active     bool   `json:"active"`
}

func (p *Personnel) GetID() int   { return p.ID }
func (p *Personnel) SetID(id int) { p.ID = id }
