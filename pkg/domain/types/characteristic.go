package types

// Characteristic is a protected ground under Dutch equal treatment law
// (Algemene wet gelijke behandeling and related acts).
type Characteristic string

const (
	CharacteristicRace              Characteristic = "ras"
	CharacteristicGender            Characteristic = "geslacht"
	CharacteristicAge               Characteristic = "leeftijd"
	CharacteristicDisability        Characteristic = "handicap"
	CharacteristicReligion          Characteristic = "religie"
	CharacteristicSexualOrientation Characteristic = "seksuele_gerichtheid"
	CharacteristicPregnancy         Characteristic = "zwangerschap"
	CharacteristicNationality       Characteristic = "nationaliteit"
	CharacteristicContractType      Characteristic = "contractvorm"

	// CharacteristicMultiple is the fallback classification when no single
	// ground is recognized; the guidance text then covers multiple grounds.
	CharacteristicMultiple Characteristic = "meerdere_gronden"
)

// AllCharacteristics returns all protected grounds, excluding the fallback
func AllCharacteristics() []Characteristic {
	return []Characteristic{
		CharacteristicRace,
		CharacteristicGender,
		CharacteristicAge,
		CharacteristicDisability,
		CharacteristicReligion,
		CharacteristicSexualOrientation,
		CharacteristicPregnancy,
		CharacteristicNationality,
		CharacteristicContractType,
	}
}

// IsValid checks if the characteristic is a recognized protected ground
func (c Characteristic) IsValid() bool {
	for _, v := range AllCharacteristics() {
		if c == v {
			return true
		}
	}
	return false
}

// Normalize maps an unrecognized characteristic to the multiple-grounds
// fallback. Classification is advisory text, never a legal determination,
// so an unknown value degrades instead of failing.
func (c Characteristic) Normalize() Characteristic {
	if c.IsValid() {
		return c
	}
	return CharacteristicMultiple
}

// String returns the string representation of the characteristic
func (c Characteristic) String() string {
	return string(c)
}
