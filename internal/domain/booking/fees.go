package booking

import "github.com/CampusPayServices/fee-slot-booking/internal/models"

// Fixed fee table, immutable for the process lifetime.
var feeTable = []models.FeeType{
	{Name: "College Fee", Amount: 103000},
	{Name: "Semester Fee", Amount: 2000},
	{Name: "Value Addition fee", Amount: 7500},
}

func Fees() []models.FeeType {
	out := make([]models.FeeType, len(feeTable))
	copy(out, feeTable)
	return out
}

func FeeAmount(name string) (int64, bool) {
	for _, f := range feeTable {
		if f.Name == name {
			return f.Amount, true
		}
	}
	return 0, false
}

func IsKnownFee(name string) bool {
	_, ok := FeeAmount(name)
	return ok
}
