package model

// StatusID identifies a persistent status condition.
type StatusID int8

const (
	StatusNone StatusID = iota
	StatusBurn
	StatusFreeze
	StatusParalysis
	StatusPoison
	StatusSleep

	StatusCount
)

var statusKeys = [StatusCount]string{"none", "burn", "freeze", "paralysis", "poison", "sleep"}

func (s StatusID) String() string {
	if s < StatusNone || s >= StatusCount {
		return "invalid"
	}
	return statusKeys[s]
}

// ParseStatusID resolves a status key ("burn", "poison", ...). Empty maps to StatusNone.
func ParseStatusID(s string) (StatusID, bool) {
	if s == "" {
		return StatusNone, true
	}
	for i, key := range statusKeys {
		if key == s {
			return StatusID(i), true
		}
	}
	return StatusNone, false
}
