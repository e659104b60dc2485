package schema

// RefJunctionTable represents a duty association table. All four junctions
// share the same two-column shape: the duty side and the other side.
type RefJunctionTable struct {
	Table   string
	DutyID  string
	OtherID string
}

// RefDutyCoin is the schema definition for core.dutycoin
var RefDutyCoin = RefJunctionTable{
	Table:   "core.dutycoin",
	DutyID:  "dutyid",
	OtherID: "coinid",
}

// RefDutyKnowledge is the schema definition for core.dutyknowledge
var RefDutyKnowledge = RefJunctionTable{
	Table:   "core.dutyknowledge",
	DutyID:  "dutyid",
	OtherID: "knowledgeid",
}

// RefDutySkill is the schema definition for core.dutyskill
var RefDutySkill = RefJunctionTable{
	Table:   "core.dutyskill",
	DutyID:  "dutyid",
	OtherID: "skillid",
}

// RefDutyBehaviour is the schema definition for core.dutybehaviour
var RefDutyBehaviour = RefJunctionTable{
	Table:   "core.dutybehaviour",
	DutyID:  "dutyid",
	OtherID: "behaviourid",
}
