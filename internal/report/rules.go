package report

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A findingRule inspects the lowered note text and returns zero or more
// formatted findings. Rules are independent: each is evaluated exactly
// once per note, in the fixed order of the rules slice, and a single
// note can trigger several of them.
type findingRule func(lower string) []string

// rules is the fixed topic battery, in evaluation order.
var rules = []findingRule{
	buildingFabricRule,
	glazingRule,
	heatingRule,
	insulationRule,
	ventilationRule,
	thermalComfortRule,
	renewableRule,
	orientationRule,
}

var (
	reFabric        = regexp.MustCompile(`wall|brick|cavity|block|solid`)
	reSolidWall     = regexp.MustCompile(`solid brick|solid wall`)
	reCavity        = regexp.MustCompile(`cavity`)
	reInsulated     = regexp.MustCompile(`insulation|insulated`)
	reGlazing       = regexp.MustCompile(`window|glazing|glass`)
	reDoubleGlazed  = regexp.MustCompile(`double glaz|double-glaz`)
	reSingleGlazed  = regexp.MustCompile(`single glaz|single-glaz`)
	reTripleGlazed  = regexp.MustCompile(`triple glaz`)
	reHeating       = regexp.MustCompile(`boiler|heating|radiator`)
	reCombi         = regexp.MustCompile(`combi|combination`)
	reCondensing    = regexp.MustCompile(`condensing`)
	reAgeMention    = regexp.MustCompile(`\d+\s*year|age`)
	reAgeYears      = regexp.MustCompile(`(\d+)\s*year`)
	reRadiatorCount = regexp.MustCompile(`(\d+)\s*radiator`)
	reTRV           = regexp.MustCompile(`trv|thermostatic valve`)
	reInsulation    = regexp.MustCompile(`insulation|attic|loft|roof`)
	reDepthMM       = regexp.MustCompile(`(\d+)\s*mm|(\d+)\s*millimeter`)
	reVentilation   = regexp.MustCompile(`ventilation|extract|fan|air|vent`)
	reMechVent      = regexp.MustCompile(`mechanical.*ventilation|mvhr|mev`)
	reExtractFan    = regexp.MustCompile(`extract.*fan|fan.*extract`)
	reTemperature   = regexp.MustCompile(`(\d+)\s*degrees|(\d+)\s*°c`)
	reRenewable     = regexp.MustCompile(`solar|heat pump|pv|photovoltaic|renewable`)
	reSolarPV       = regexp.MustCompile(`solar.*pv|photovoltaic|solar panel`)
	reHeatPump      = regexp.MustCompile(`heat pump|ashp|gshp`)
	reSouthFacing   = regexp.MustCompile(`south.*facing|south-facing`)
	reNorthFacing   = regexp.MustCompile(`north.*facing|north-facing`)
	reTerminalPunct = regexp.MustCompile(`[.!?]$`)
)

func buildingFabricRule(lower string) []string {
	if !reFabric.MatchString(lower) {
		return nil
	}
	switch {
	case reSolidWall.MatchString(lower):
		return []string{"**Building Fabric - External Walls:** The property features solid brick wall construction (pre-1980s typical construction). U-value estimated at 2.1 W/m²K. Recommendation: External or internal wall insulation required to achieve Part L compliance (target U-value: 0.21 W/m²K)."}
	case reCavity.MatchString(lower):
		detail := "Cavity appears uninsulated, estimated U-value 1.5 W/m²K. Cavity wall insulation recommended."
		if reInsulated.MatchString(lower) {
			detail = "Cavity insulation present, estimated U-value 0.35-0.55 W/m²K."
		}
		return []string{"**Building Fabric - External Walls:** Cavity wall construction identified. " + detail}
	}
	return nil
}

func glazingRule(lower string) []string {
	if !reGlazing.MatchString(lower) {
		return nil
	}
	switch {
	case reDoubleGlazed.MatchString(lower):
		return []string{"**Glazing:** Double-glazed uPVC windows installed. Estimated U-value 1.8-2.0 W/m²K. Compliance: Acceptable for existing dwelling, but upgrade to A-rated windows (U-value ≤1.4 W/m²K) would improve BER rating by 5-10 kWh/m²/yr."}
	case reSingleGlazed.MatchString(lower):
		return []string{"**Glazing:** Single-glazed windows identified. Estimated U-value 4.8 W/m²K. **Critical:** Replacement with A-rated double or triple glazing essential for Part L compliance and thermal comfort. Priority upgrade item."}
	case reTripleGlazed.MatchString(lower):
		return []string{"**Glazing:** High-performance triple-glazed windows installed. Estimated U-value 0.8-1.0 W/m²K. Excellent thermal performance, contributes positively to BER rating."}
	}
	return nil
}

func heatingRule(lower string) []string {
	if !reHeating.MatchString(lower) {
		return nil
	}

	boiler := "Central heating boiler"
	switch {
	case reCombi.MatchString(lower):
		boiler = "Combination boiler system identified"
	case reCondensing.MatchString(lower):
		boiler = "Condensing boiler system"
	}

	var efficiency string
	switch {
	case reCondensing.MatchString(lower):
		efficiency = "Seasonal efficiency estimated at 88-94% (SEDBUK rating: A/B)."
	case reAgeMention.MatchString(lower):
		age, ok := firstInt(reAgeYears, lower)
		switch {
		case ok && age > 15:
			efficiency = "Unit is over 15 years old, estimated efficiency 65-75% (SEDBUK D/E). **Recommendation:** Boiler replacement to achieve Part L compliance and reduce heating costs by 25-30%."
		case ok && age > 10:
			efficiency = "Estimated efficiency 78-85% (SEDBUK C). Consider replacement within 3-5 years."
		default:
			efficiency = "Modern unit, estimated efficiency 88-92% (SEDBUK A/B). Satisfactory performance."
		}
	}

	findings := []string{"**Heating System:** " + boiler + ". " + efficiency}

	if count, ok := firstInt(reRadiatorCount, lower); ok {
		detail := "Recommendation: Install TRVs on all radiators (except room with main thermostat) to improve zone control and achieve 8-12% heating energy savings."
		if reTRV.MatchString(lower) {
			detail = "Thermostatic radiator valves (TRVs) installed - good practice for zone control and energy efficiency."
		}
		findings = append(findings, fmt.Sprintf("**Heat Distribution:** Property equipped with %d radiators. %s", count, detail))
	}

	return findings
}

func insulationRule(lower string) []string {
	if !reInsulation.MatchString(lower) {
		return nil
	}
	depth, ok := firstInt(reDepthMM, lower)
	if !ok {
		return nil
	}
	switch {
	case depth < 100:
		return []string{fmt.Sprintf("**Roof Insulation:** Current insulation depth %dmm. **Critical Deficiency:** Part L requires minimum 300mm mineral wool (U-value ≤0.16 W/m²K). Current U-value estimated 0.8-1.2 W/m²K. Priority upgrade: Top-up to 300mm would save 15-20%% on heating costs.", depth)}
	case depth < 200:
		return []string{fmt.Sprintf("**Roof Insulation:** Current insulation depth %dmm, estimated U-value 0.25-0.35 W/m²K. Below current standards. Recommendation: Top-up to 300mm to achieve Part L compliance and optimal thermal performance.", depth)}
	case depth < 300:
		return []string{fmt.Sprintf("**Roof Insulation:** Current insulation depth %dmm, estimated U-value 0.16-0.20 W/m²K. Marginally below the 300mm standard. Recommendation: Top-up to 300mm at next opportunity for optimal thermal performance.", depth)}
	default:
		return []string{fmt.Sprintf("**Roof Insulation:** Adequate insulation depth %dmm identified. Estimated U-value 0.13-0.16 W/m²K. Compliant with Part L requirements. Verify insulation type and condition during detailed survey.", depth)}
	}
}

func ventilationRule(lower string) []string {
	if !reVentilation.MatchString(lower) {
		return nil
	}
	switch {
	case reMechVent.MatchString(lower):
		return []string{"**Ventilation:** Mechanical ventilation system installed. Verify system type (MVHR/MEV), airflow rates, and filter condition. Ensure compliance with TGD Part F ventilation requirements (minimum 0.3 ACH)."}
	case reExtractFan.MatchString(lower):
		return []string{"**Ventilation:** Extract ventilation fans identified in wet rooms. Verify compliance with Part F: kitchen extract ≥60 l/s, bathroom ≥15 l/s. Natural ventilation via trickle vents and openable windows observed."}
	}
	return nil
}

// thermalComfortRule buckets recorded temperatures below 18°C and in
// the 18-22°C band. Values above 22°C intentionally produce nothing.
func thermalComfortRule(lower string) []string {
	temp, ok := firstInt(reTemperature, lower)
	if !ok {
		return nil
	}
	switch {
	case temp < 18:
		return []string{fmt.Sprintf("**Thermal Performance:** Room temperature recorded at %d°C. Below recommended comfort level (21°C for living areas per TGD L). Indicates inadequate heating system capacity or poor building fabric thermal performance. Further investigation required.", temp)}
	case temp <= 22:
		return []string{fmt.Sprintf("**Thermal Performance:** Room temperature %d°C. Within acceptable comfort range (18-21°C living areas, 18°C bedrooms per TGD L). Satisfactory thermal performance observed during survey.", temp)}
	}
	return nil
}

func renewableRule(lower string) []string {
	if !reRenewable.MatchString(lower) {
		return nil
	}
	var findings []string
	if reSolarPV.MatchString(lower) {
		findings = append(findings, "**Renewable Energy:** Solar PV system identified. Verify system capacity (kWp), orientation (south-facing optimal), and integration with electrical system. PV contribution will improve BER rating significantly.")
	}
	if reHeatPump.MatchString(lower) {
		findings = append(findings, "**Renewable Heating:** Heat pump system installed. Verify COP (Coefficient of Performance), system type, and integration. Heat pumps can achieve 250-400% efficiency versus 90% for gas boilers, significantly improving BER rating.")
	}
	return findings
}

func orientationRule(lower string) []string {
	switch {
	case reSouthFacing.MatchString(lower):
		return []string{"**Building Orientation:** South-facing elevation noted. Positive solar gain contribution, beneficial for passive heating. Consider solar thermal or PV installation on south-facing roof."}
	case reNorthFacing.MatchString(lower):
		return []string{"**Building Orientation:** North-facing elevation noted. Limited solar gain, higher heating demand. Enhanced insulation recommended for north-facing walls."}
	}
	return nil
}

// Professionalize converts one casual observation into professional
// assessment text: every topic rule that fires contributes findings, in
// battery order, joined by blank lines. When nothing fires the original
// text is wrapped as a plain survey observation.
func Professionalize(text string) string {
	lower := strings.ToLower(text)

	var findings []string
	for _, rule := range rules {
		findings = append(findings, rule(lower)...)
	}

	if len(findings) == 0 {
		findings = append(findings, "**Survey Observation:** "+asSentence(text))
	}

	return strings.Join(findings, "\n\n")
}

// asSentence capitalizes the first letter and ensures terminal
// punctuation.
func asSentence(text string) string {
	if text == "" {
		return text
	}
	r, size := utf8.DecodeRuneInString(text)
	s := string(unicode.ToUpper(r)) + text[size:]
	if !reTerminalPunct.MatchString(s) {
		s += "."
	}
	return s
}
