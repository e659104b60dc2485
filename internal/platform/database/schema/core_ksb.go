package schema

// RefKSBTable represents one of the three KSB tables, which share a shape.
type RefKSBTable struct {
	Table       string
	ID          string
	Code        string
	Name        string
	Description string
}

// RefKnowledge is the schema definition for core.knowledge
var RefKnowledge = RefKSBTable{
	Table:       "core.knowledge",
	ID:          "id",
	Code:        "code",
	Name:        "name",
	Description: "description",
}

// RefSkill is the schema definition for core.skill
var RefSkill = RefKSBTable{
	Table:       "core.skill",
	ID:          "id",
	Code:        "code",
	Name:        "name",
	Description: "description",
}

// RefBehaviour is the schema definition for core.behaviour
var RefBehaviour = RefKSBTable{
	Table:       "core.behaviour",
	ID:          "id",
	Code:        "code",
	Name:        "name",
	Description: "description",
}

func (t RefKSBTable) Columns() []string {
	return []string{t.ID, t.Code, t.Name, t.Description}
}
