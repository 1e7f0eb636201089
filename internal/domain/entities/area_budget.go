package entities

// AreaBudget tracks the USD allotment of an organizational area.
//
// Storage model (DynamoDB):
//   - PK: area
//
// UsedBudget only grows: every approval of a budget in the area adds its USD total.
type AreaBudget struct {
	Area        string  `json:"area"`
	TotalBudget float64 `json:"total_budget"`
	UsedBudget  float64 `json:"used_budget"`
}

func (a AreaBudget) Remaining() float64 {
	return a.TotalBudget - a.UsedBudget
}
