package standard

import (
	"regexp"
	"strings"

	"github.com/forgeline/coinage/internal/platform/apperr"
)

// Kind tags which of the three KSB tables an entity came from. The string
// values appear verbatim in the API's "type" field.
type Kind string

const (
	KindKnowledge Kind = "Knowledge"
	KindSkill     Kind = "Skill"
	KindBehaviour Kind = "Behaviour"
)

// kindOrder is the fixed trial order for KSB code resolution. Codes are not
// guaranteed globally unique across the three tables, so a cross-kind
// collision resolves to the first table that matches.
var kindOrder = []Kind{KindKnowledge, KindSkill, KindBehaviour}

var (
	dutyCodePattern = regexp.MustCompile(`^D\d+$`)
	ksbCodePattern  = regexp.MustCompile(`^[KSB]\d+[A-Za-z]?$`)
)

// NormalizeCode maps client input to the stored code spelling: trimmed and
// uppercased. "k1a" and "K1A" refer to the same row.
func NormalizeCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// ParseDutyCode normalizes and validates a duty code.
func ParseDutyCode(raw string) (string, error) {
	code := NormalizeCode(raw)
	if !dutyCodePattern.MatchString(code) {
		return "", apperr.InvalidCode("Invalid Duty Code format. Duty Code must start with 'D', followed by numbers (e.g., D1, D2).")
	}
	return code, nil
}

// ParseKSBCode normalizes and validates a KSB code.
func ParseKSBCode(raw string) (string, error) {
	code := NormalizeCode(raw)
	if !ksbCodePattern.MatchString(code) {
		return "", apperr.InvalidCode("Invalid KSB Code format. KSB Code must start with 'K', 'S', or 'B', followed by numbers and optionally a letter (e.g., K1, K1a, S2, B3b).")
	}
	return code, nil
}

// ParseKind validates a KSB "type" value.
func ParseKind(raw string) (Kind, error) {
	switch Kind(strings.TrimSpace(raw)) {
	case KindKnowledge:
		return KindKnowledge, nil
	case KindSkill:
		return KindSkill, nil
	case KindBehaviour:
		return KindBehaviour, nil
	}
	return "", apperr.Validation(apperr.CodeValidation, "Invalid KSB type. Type must be 'Knowledge', 'Skill' or 'Behaviour'.")
}
