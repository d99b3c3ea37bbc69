package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfessionalize_Glazing(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "single glazed is the critical finding",
			text: "single glazed windows throughout",
			want: "**Glazing:** Single-glazed windows identified. Estimated U-value 4.8 W/m²K. **Critical:** Replacement with A-rated double or triple glazing essential for Part L compliance and thermal comfort. Priority upgrade item.",
		},
		{
			name: "double glazed",
			text: "double glazed windows in all rooms",
			want: "**Glazing:** Double-glazed uPVC windows installed. Estimated U-value 1.8-2.0 W/m²K. Compliance: Acceptable for existing dwelling, but upgrade to A-rated windows (U-value ≤1.4 W/m²K) would improve BER rating by 5-10 kWh/m²/yr.",
		},
		{
			name: "triple glazed",
			text: "new triple glazed windows",
			want: "**Glazing:** High-performance triple-glazed windows installed. Estimated U-value 0.8-1.0 W/m²K. Excellent thermal performance, contributes positively to BER rating.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Professionalize(tt.text))
		})
	}
}

func TestProfessionalize_GenericFallback(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "capitalized with period appended",
			text: "it was a nice day",
			want: "**Survey Observation:** It was a nice day.",
		},
		{
			name: "existing punctuation preserved",
			text: "tenant was present during survey!",
			want: "**Survey Observation:** Tenant was present during survey!",
		},
		{
			name: "already capitalized",
			text: "Meter box located at side entrance",
			want: "**Survey Observation:** Meter box located at side entrance.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Professionalize(tt.text))
		})
	}
}

func TestProfessionalize_BuildingFabric(t *testing.T) {
	t.Run("solid brick", func(t *testing.T) {
		got := Professionalize("solid brick wall, no insulation visible")
		assert.Contains(t, got, "**Building Fabric - External Walls:** The property features solid brick wall construction")
		assert.Contains(t, got, "U-value estimated at 2.1 W/m²K")
	})

	t.Run("uninsulated cavity", func(t *testing.T) {
		got := Professionalize("cavity wall construction")
		assert.Contains(t, got, "Cavity wall construction identified.")
		assert.Contains(t, got, "Cavity appears uninsulated, estimated U-value 1.5 W/m²K.")
	})

	t.Run("insulated cavity", func(t *testing.T) {
		got := Professionalize("cavity wall with insulation pumped in")
		assert.Contains(t, got, "Cavity insulation present, estimated U-value 0.35-0.55 W/m²K.")
	})

	t.Run("wall mention without construction detail has no fabric finding", func(t *testing.T) {
		got := Professionalize("crack in the wall by the door")
		assert.NotContains(t, got, "**Building Fabric")
	})
}

func TestProfessionalize_HeatingSystem(t *testing.T) {
	t.Run("condensing boiler efficiency", func(t *testing.T) {
		got := Professionalize("condensing boiler in the utility room")
		assert.Contains(t, got, "**Heating System:** Condensing boiler system. Seasonal efficiency estimated at 88-94% (SEDBUK rating: A/B).")
	})

	t.Run("combi takes precedence for boiler description", func(t *testing.T) {
		got := Professionalize("combi condensing boiler")
		assert.Contains(t, got, "Combination boiler system identified")
	})

	t.Run("old boiler over 15 years", func(t *testing.T) {
		got := Professionalize("boiler is about 20 years old")
		assert.Contains(t, got, "Unit is over 15 years old, estimated efficiency 65-75% (SEDBUK D/E).")
	})

	t.Run("boiler over 10 years", func(t *testing.T) {
		got := Professionalize("boiler is 12 years old")
		assert.Contains(t, got, "Estimated efficiency 78-85% (SEDBUK C). Consider replacement within 3-5 years.")
	})

	t.Run("modern boiler", func(t *testing.T) {
		got := Professionalize("boiler is 5 years old")
		assert.Contains(t, got, "Modern unit, estimated efficiency 88-92% (SEDBUK A/B). Satisfactory performance.")
	})

	t.Run("radiator count with TRVs", func(t *testing.T) {
		got := Professionalize("8 radiators with TRVs fitted")
		assert.Contains(t, got, "**Heat Distribution:** Property equipped with 8 radiators.")
		assert.Contains(t, got, "Thermostatic radiator valves (TRVs) installed")
	})

	t.Run("radiator count without TRVs", func(t *testing.T) {
		got := Professionalize("counted 10 radiators downstairs")
		assert.Contains(t, got, "Property equipped with 10 radiators.")
		assert.Contains(t, got, "Install TRVs on all radiators")
	})
}

func TestProfessionalize_InsulationDepth(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantContains string
	}{
		{
			name:         "below 100mm is critical",
			text:         "attic insulation only 80mm deep",
			wantContains: "**Critical Deficiency:** Part L requires minimum 300mm mineral wool",
		},
		{
			name:         "below 200mm is below standards",
			text:         "loft insulation measured at 150mm",
			wantContains: "estimated U-value 0.25-0.35 W/m²K. Below current standards.",
		},
		{
			name:         "between 200mm and 300mm is marginal",
			text:         "attic insulation depth 250mm",
			wantContains: "Marginally below the 300mm standard.",
		},
		{
			name:         "at or above 300mm is compliant",
			text:         "roof insulation 300mm throughout",
			wantContains: "Adequate insulation depth 300mm identified.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Professionalize(tt.text)
			assert.Contains(t, got, "**Roof Insulation:**")
			assert.Contains(t, got, tt.wantContains)
		})
	}

	t.Run("no depth mentioned means no insulation finding", func(t *testing.T) {
		got := Professionalize("attic insulation present")
		assert.NotContains(t, got, "**Roof Insulation:**")
	})
}

func TestProfessionalize_Ventilation(t *testing.T) {
	t.Run("mechanical ventilation", func(t *testing.T) {
		got := Professionalize("MVHR ventilation unit installed")
		assert.Contains(t, got, "**Ventilation:** Mechanical ventilation system installed.")
		assert.Contains(t, got, "TGD Part F")
	})

	t.Run("extract fans", func(t *testing.T) {
		got := Professionalize("extract fan in the bathroom")
		assert.Contains(t, got, "**Ventilation:** Extract ventilation fans identified in wet rooms.")
		assert.Contains(t, got, "kitchen extract ≥60 l/s, bathroom ≥15 l/s")
	})
}

func TestProfessionalize_ThermalComfort(t *testing.T) {
	t.Run("below 18 degrees", func(t *testing.T) {
		got := Professionalize("living room at 15 degrees")
		assert.Contains(t, got, "Room temperature recorded at 15°C.")
		assert.Contains(t, got, "Below recommended comfort level (21°C for living areas per TGD L).")
	})

	t.Run("comfort range", func(t *testing.T) {
		got := Professionalize("room measured 20°c")
		assert.Contains(t, got, "Room temperature 20°C. Within acceptable comfort range")
	})

	t.Run("above 22 degrees yields no thermal finding", func(t *testing.T) {
		got := Professionalize("bedroom at 25 degrees")
		assert.NotContains(t, got, "**Thermal Performance:**")
		// Nothing else matches either, so the generic fallback applies.
		assert.Equal(t, "**Survey Observation:** Bedroom at 25 degrees.", got)
	})
}

func TestProfessionalize_Renewables(t *testing.T) {
	t.Run("both PV and heat pump fire in one note", func(t *testing.T) {
		got := Professionalize("solar panels on the roof and a heat pump outside")
		findings := strings.Split(got, "\n\n")

		var pvIdx, hpIdx = -1, -1
		for i, f := range findings {
			if strings.HasPrefix(f, "**Renewable Energy:**") {
				pvIdx = i
			}
			if strings.HasPrefix(f, "**Renewable Heating:**") {
				hpIdx = i
			}
		}
		require.NotEqual(t, -1, pvIdx, "missing PV finding")
		require.NotEqual(t, -1, hpIdx, "missing heat pump finding")
		assert.Less(t, pvIdx, hpIdx, "PV finding must precede heat pump finding")
	})

	t.Run("heat pump only", func(t *testing.T) {
		got := Professionalize("air to water heat pump installed")
		assert.Contains(t, got, "**Renewable Heating:** Heat pump system installed.")
		assert.NotContains(t, got, "**Renewable Energy:**")
	})
}

func TestProfessionalize_Orientation(t *testing.T) {
	t.Run("south facing", func(t *testing.T) {
		got := Professionalize("kitchen is south facing")
		assert.Contains(t, got, "**Building Orientation:** South-facing elevation noted.")
	})

	t.Run("north facing", func(t *testing.T) {
		got := Professionalize("north-facing gable")
		assert.Contains(t, got, "**Building Orientation:** North-facing elevation noted.")
	})

	t.Run("south wins when both appear", func(t *testing.T) {
		got := Professionalize("south facing front, north facing rear")
		assert.Contains(t, got, "South-facing elevation noted.")
		assert.NotContains(t, got, "North-facing elevation noted.")
	})
}

func TestProfessionalize_MultipleTopicsInOrder(t *testing.T) {
	got := Professionalize("solid brick walls, single glazed windows, and a 20 year old boiler")
	findings := strings.Split(got, "\n\n")

	require.Len(t, findings, 3)
	assert.True(t, strings.HasPrefix(findings[0], "**Building Fabric - External Walls:**"))
	assert.True(t, strings.HasPrefix(findings[1], "**Glazing:**"))
	assert.True(t, strings.HasPrefix(findings[2], "**Heating System:**"))
}
