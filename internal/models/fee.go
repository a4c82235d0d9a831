package models

type FeeType struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"` // whole rupees, never a formatted string
}
