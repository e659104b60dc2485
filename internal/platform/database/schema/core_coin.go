package schema

// RefCoinTable represents the 'core.coin' table
type RefCoinTable struct {
	Table string
	ID    string
	Name  string
}

// RefCoin is the schema definition for core.coin
var RefCoin = RefCoinTable{
	Table: "core.coin",
	ID:    "id",
	Name:  "name",
}

func (t RefCoinTable) Columns() []string {
	return []string{t.ID, t.Name}
}
