package models

// Division display names. Stored as free text on the content models.
const (
	DivisionCentralAC     = "Central AC"
	DivisionElevators     = "Elevators and Travelators"
	DivisionFireDetection = "Fire Detection & Protection"
	DivisionGenerator     = "Generator"
	DivisionSolar         = "Solar"
	DivisionELV           = "ELV"
)

// Divisions returns the business divisions in display order.
func Divisions() []string {
	return []string{
		DivisionCentralAC,
		DivisionElevators,
		DivisionFireDetection,
		DivisionGenerator,
		DivisionSolar,
		DivisionELV,
	}
}
