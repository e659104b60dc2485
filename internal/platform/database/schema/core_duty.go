package schema

// RefDutyTable represents the 'core.duty' table
type RefDutyTable struct {
	Table       string
	ID          string
	Code        string
	Name        string
	Description string
}

// RefDuty is the schema definition for core.duty
var RefDuty = RefDutyTable{
	Table:       "core.duty",
	ID:          "id",
	Code:        "code",
	Name:        "name",
	Description: "description",
}

func (t RefDutyTable) Columns() []string {
	return []string{t.ID, t.Code, t.Name, t.Description}
}
