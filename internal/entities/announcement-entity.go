package entities

type Announcement struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	Date      string `json:"date"`
	Important bool   `json:"important"`
}

func (a *Announcement) GetID() int   { return a.ID }
func (a *Announcement) SetID(id int) { a.ID = id }
