package dto

type SlotDTO struct {
	ID       int    `json:"id"`
	Time     string `json:"time"`
	Booked   int    `json:"booked"`
	Max      int    `json:"max"`
	Full     bool   `json:"full"`
	Selected bool   `json:"selected"`
}

type SlotListDTO struct {
	Date  string    `json:"date"`
	Day   string    `json:"day"`
	Slots []SlotDTO `json:"slots"`
}
