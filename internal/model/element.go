package model

// ElementType is the elemental type of a species or a move.
// Ordinals are used as indices into the effectiveness table, so the order is fixed.
type ElementType int8

const (
	TypeNone ElementType = iota
	TypeNormal
	TypeFire
	TypeWater
	TypeElectric
	TypeGrass
	TypeIce
	TypeFighting
	TypePoison
	TypeGround
	TypeFlying
	TypePsychic
	TypeBug
	TypeRock
	TypeGhost
	TypeDragon
	TypeDark
	TypeSteel
	TypeFairy

	// ElementCount is the number of enumerants including TypeNone.
	ElementCount
)

var elementNames = [ElementCount]string{
	"none", "normal", "fire", "water", "electric", "grass", "ice", "fighting",
	"poison", "ground", "flying", "psychic", "bug", "rock", "ghost", "dragon",
	"dark", "steel", "fairy",
}

// String returns the lowercase type name.
func (t ElementType) String() string {
	if !t.Valid() {
		return "invalid"
	}
	return elementNames[t]
}

// Valid reports whether t is a known enumerant.
func (t ElementType) Valid() bool {
	return t >= TypeNone && t < ElementCount
}

// ParseElementType resolves a lowercase type name.
// Empty string maps to TypeNone.
func ParseElementType(s string) (ElementType, bool) {
	if s == "" {
		return TypeNone, true
	}
	for i, name := range elementNames {
		if name == s {
			return ElementType(i), true
		}
	}
	return TypeNone, false
}
