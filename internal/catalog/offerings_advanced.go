package catalog

// advancedOfferings is the multi-provider instance table snapshotted from
// the hosted environment listing. Grouped by GPU model, priced per hour.
var advancedOfferings = []Offering{
	// B300
	{Provider: "DATACRUNCH", AcceleratorModel: "B300", UnitCount: 1, MemoryPerUnitGB: 288, HourlyPriceUSD: 7.91},
	{Provider: "DATACRUNCH", AcceleratorModel: "B300", UnitCount: 2, MemoryPerUnitGB: 288, HourlyPriceUSD: 13.85},
	{Provider: "DATACRUNCH", AcceleratorModel: "B300", UnitCount: 4, MemoryPerUnitGB: 288, HourlyPriceUSD: 25.73},
	{Provider: "DATACRUNCH", AcceleratorModel: "B300", UnitCount: 8, MemoryPerUnitGB: 288, HourlyPriceUSD: 49.49},

	// B200
	{Provider: "LAMBDA-LABS", AcceleratorModel: "B200", UnitCount: 1, MemoryPerUnitGB: 180, HourlyPriceUSD: 6.35},
	{Provider: "DATACRUNCH", AcceleratorModel: "B200", UnitCount: 1, MemoryPerUnitGB: 192, HourlyPriceUSD: 6.76},
	{Provider: "DATACRUNCH", AcceleratorModel: "B200", UnitCount: 2, MemoryPerUnitGB: 192, HourlyPriceUSD: 11.54},
	{Provider: "LAMBDA-LABS", AcceleratorModel: "B200", UnitCount: 2, MemoryPerUnitGB: 180, HourlyPriceUSD: 12.46},
	{Provider: "DATACRUNCH", AcceleratorModel: "B200", UnitCount: 4, MemoryPerUnitGB: 192, HourlyPriceUSD: 21.12},
	{Provider: "BOOSTRUN", AcceleratorModel: "B200", UnitCount: 8, MemoryPerUnitGB: 192, HourlyPriceUSD: 38.40},
	{Provider: "DATACRUNCH", AcceleratorModel: "B200", UnitCount: 8, MemoryPerUnitGB: 192, HourlyPriceUSD: 40.27},

	// RTX PRO 6000
	{Provider: "MASSEDCOMPUTE", AcceleratorModel: "RTX PRO 6000", UnitCount: 1, MemoryPerUnitGB: 96, HourlyPriceUSD: 2.15},
	{Provider: "MASSEDCOMPUTE", AcceleratorModel: "RTX PRO 6000", UnitCount: 2, MemoryPerUnitGB: 96, HourlyPriceUSD: 4.30},
	{Provider: "MASSEDCOMPUTE", AcceleratorModel: "RTX PRO 6000", UnitCount: 4, MemoryPerUnitGB: 96, HourlyPriceUSD: 8.59},
	{Provider: "BOOSTRUN", AcceleratorModel: "RTX PRO 6000", UnitCount: 8, MemoryPerUnitGB: 96, HourlyPriceUSD: 11.62},
	{Provider: "MASSEDCOMPUTE", AcceleratorModel: "RTX PRO 6000", UnitCount: 8, MemoryPerUnitGB: 96, HourlyPriceUSD: 17.18},

	// H200
	{Provider: "DIGITALOCEAN", AcceleratorModel: "H200", UnitCount: 1, MemoryPerUnitGB: 141, HourlyPriceUSD: 4.13},
	{Provider: "DATACRUNCH", AcceleratorModel: "H200", UnitCount: 1, MemoryPerUnitGB: 141, HourlyPriceUSD: 5.08},
	{Provider: "DATACRUNCH", AcceleratorModel: "H200", UnitCount: 2, MemoryPerUnitGB: 141, HourlyPriceUSD: 8.18},
	{Provider: "DATACRUNCH", AcceleratorModel: "H200", UnitCount: 4, MemoryPerUnitGB: 141, HourlyPriceUSD: 14.40},
	{Provider: "BOOSTRUN", AcceleratorModel: "H200", UnitCount: 8, MemoryPerUnitGB: 141, HourlyPriceUSD: 23.52},
	{Provider: "DATACRUNCH", AcceleratorModel: "H200", UnitCount: 8, MemoryPerUnitGB: 141, HourlyPriceUSD: 26.83},

	// H100
	{Provider: "HYPERSTACK", AcceleratorModel: "H100", UnitCount: 1, MemoryPerUnitGB: 80, HourlyPriceUSD: 2.28},
	{Provider: "VOLTAGEPARK", AcceleratorModel: "H100", UnitCount: 1, MemoryPerUnitGB: 80, HourlyPriceUSD: 2.39},
	{Provider: "DATACRUNCH", AcceleratorModel: "H100", UnitCount: 1, MemoryPerUnitGB: 80, HourlyPriceUSD: 2.71},
	{Provider: "LAMBDA-LABS", AcceleratorModel: "H100", UnitCount: 1, MemoryPerUnitGB: 80, HourlyPriceUSD: 2.99},
	{Provider: "SCALEWAY", AcceleratorModel: "H100", UnitCount: 1, MemoryPerUnitGB: 80, HourlyPriceUSD: 3.70},
	{Provider: "HYPERSTACK", AcceleratorModel: "H100", UnitCount: 2, MemoryPerUnitGB: 80, HourlyPriceUSD: 4.56},
	{Provider: "VOLTAGEPARK", AcceleratorModel: "H100", UnitCount: 2, MemoryPerUnitGB: 80, HourlyPriceUSD: 4.78},
	{Provider: "HYPERSTACK", AcceleratorModel: "H100", UnitCount: 4, MemoryPerUnitGB: 80, HourlyPriceUSD: 9.12},
	{Provider: "VOLTAGEPARK", AcceleratorModel: "H100", UnitCount: 4, MemoryPerUnitGB: 80, HourlyPriceUSD: 9.55},
	{Provider: "HYPERSTACK", AcceleratorModel: "H100", UnitCount: 8, MemoryPerUnitGB: 80, HourlyPriceUSD: 18.24},
	{Provider: "VOLTAGEPARK", AcceleratorModel: "H100", UnitCount: 8, MemoryPerUnitGB: 80, HourlyPriceUSD: 19.10},

	// A100
	{Provider: "MASSEDCOMPUTE", AcceleratorModel: "A100", UnitCount: 1, MemoryPerUnitGB: 80, HourlyPriceUSD: 1.44},
	{Provider: "JARVIS-LABS", AcceleratorModel: "A100", UnitCount: 1, MemoryPerUnitGB: 80, HourlyPriceUSD: 1.49},
	{Provider: "LAMBDA-LABS", AcceleratorModel: "A100", UnitCount: 1, MemoryPerUnitGB: 80, HourlyPriceUSD: 1.65},
	{Provider: "DENVI", AcceleratorModel: "A100", UnitCount: 1, MemoryPerUnitGB: 40, HourlyPriceUSD: 1.50},
	{Provider: "LAMBDA-LABS", AcceleratorModel: "A100", UnitCount: 1, MemoryPerUnitGB: 40, HourlyPriceUSD: 1.55},
	{Provider: "AWS", AcceleratorModel: "A100", UnitCount: 1, MemoryPerUnitGB: 40, HourlyPriceUSD: 1.77},
	{Provider: "MASSEDCOMPUTE", AcceleratorModel: "A100", UnitCount: 2, MemoryPerUnitGB: 80, HourlyPriceUSD: 2.87},
	{Provider: "MASSEDCOMPUTE", AcceleratorModel: "A100", UnitCount: 4, MemoryPerUnitGB: 80, HourlyPriceUSD: 5.75},
	{Provider: "MASSEDCOMPUTE", AcceleratorModel: "A100", UnitCount: 8, MemoryPerUnitGB: 80, HourlyPriceUSD: 11.50},

	// L40S
	{Provider: "MASSEDCOMPUTE", AcceleratorModel: "L40S", UnitCount: 1, MemoryPerUnitGB: 48, HourlyPriceUSD: 1.19},
	{Provider: "DATACRUNCH", AcceleratorModel: "L40S", UnitCount: 1, MemoryPerUnitGB: 48, HourlyPriceUSD: 1.29},
	{Provider: "MASSEDCOMPUTE", AcceleratorModel: "L40S", UnitCount: 2, MemoryPerUnitGB: 48, HourlyPriceUSD: 2.39},
	{Provider: "MASSEDCOMPUTE", AcceleratorModel: "L40S", UnitCount: 4, MemoryPerUnitGB: 48, HourlyPriceUSD: 4.77},
	{Provider: "MASSEDCOMPUTE", AcceleratorModel: "L40S", UnitCount: 8, MemoryPerUnitGB: 48, HourlyPriceUSD: 9.54},

	// A10
	{Provider: "MASSEDCOMPUTE", AcceleratorModel: "A10", UnitCount: 1, MemoryPerUnitGB: 24, HourlyPriceUSD: 0.65},
	{Provider: "AWS", AcceleratorModel: "A10", UnitCount: 1, MemoryPerUnitGB: 24, HourlyPriceUSD: 0.77},
	{Provider: "LAMBDA-LABS", AcceleratorModel: "A10", UnitCount: 1, MemoryPerUnitGB: 24, HourlyPriceUSD: 0.90},
	{Provider: "MASSEDCOMPUTE", AcceleratorModel: "A10", UnitCount: 2, MemoryPerUnitGB: 24, HourlyPriceUSD: 1.29},
	{Provider: "MASSEDCOMPUTE", AcceleratorModel: "A10", UnitCount: 4, MemoryPerUnitGB: 24, HourlyPriceUSD: 2.59},

	// RTX 4090
	{Provider: "MASSEDCOMPUTE", AcceleratorModel: "RTX 4090", UnitCount: 1, MemoryPerUnitGB: 24, HourlyPriceUSD: 0.59},
	{Provider: "JARVIS-LABS", AcceleratorModel: "RTX 4090", UnitCount: 1, MemoryPerUnitGB: 24, HourlyPriceUSD: 0.69},
	{Provider: "MASSEDCOMPUTE", AcceleratorModel: "RTX 4090", UnitCount: 2, MemoryPerUnitGB: 24, HourlyPriceUSD: 1.19},
	{Provider: "MASSEDCOMPUTE", AcceleratorModel: "RTX 4090", UnitCount: 4, MemoryPerUnitGB: 24, HourlyPriceUSD: 2.38},

	// RTX A6000
	{Provider: "MASSEDCOMPUTE", AcceleratorModel: "RTX A6000", UnitCount: 1, MemoryPerUnitGB: 48, HourlyPriceUSD: 0.89},
	{Provider: "AWS", AcceleratorModel: "RTX A6000", UnitCount: 1, MemoryPerUnitGB: 48, HourlyPriceUSD: 1.39},
	{Provider: "MASSEDCOMPUTE", AcceleratorModel: "RTX A6000", UnitCount: 2, MemoryPerUnitGB: 48, HourlyPriceUSD: 1.79},
	{Provider: "MASSEDCOMPUTE", AcceleratorModel: "RTX A6000", UnitCount: 4, MemoryPerUnitGB: 48, HourlyPriceUSD: 3.58},

	// T4
	{Provider: "AWS", AcceleratorModel: "T4", UnitCount: 1, MemoryPerUnitGB: 16, HourlyPriceUSD: 0.40},
	{Provider: "GCP", AcceleratorModel: "T4", UnitCount: 1, MemoryPerUnitGB: 16, HourlyPriceUSD: 0.42},
	{Provider: "AWS", AcceleratorModel: "T4", UnitCount: 2, MemoryPerUnitGB: 16, HourlyPriceUSD: 0.80},
	{Provider: "AWS", AcceleratorModel: "T4", UnitCount: 4, MemoryPerUnitGB: 16, HourlyPriceUSD: 1.60},

	// V100
	{Provider: "MASSEDCOMPUTE", AcceleratorModel: "V100", UnitCount: 1, MemoryPerUnitGB: 16, HourlyPriceUSD: 0.89},
	{Provider: "AWS", AcceleratorModel: "V100", UnitCount: 1, MemoryPerUnitGB: 32, HourlyPriceUSD: 1.50},
	{Provider: "MASSEDCOMPUTE", AcceleratorModel: "V100", UnitCount: 2, MemoryPerUnitGB: 16, HourlyPriceUSD: 1.79},
}
