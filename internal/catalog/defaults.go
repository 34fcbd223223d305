package catalog

// Model ids of the built-in catalog referenced by roles and rules
const (
	Camry           = "camry"
	RAV4            = "rav4"
	Highlander      = "highlander"
	Tacoma          = "tacoma"
	Supra           = "supra"
	TundraTRDPro    = "tundra_trd_pro_iforce_max"
	Sequoia         = "sequoia"
	GRCorolla       = "gr_corolla"
	TacomaTRDPro    = "tacoma_trd_pro_iforce_max"
	Tundra          = "tundra"
	GR86            = "gr86"
	GrandHighlander = "grandHighlander"
	FourRunner      = "4runner"
	Crown           = "crown"
	BZ4X            = "bz4x"
	Prius           = "prius"
	Corolla         = "corolla"
)

const defaultAnalysis = "The {name} is a strong match for a {lifestyle} lifestyle built around {usage} on {location} roads."

// DefaultFile returns the serialized form of the built-in catalog
func DefaultFile() File {
	return File{
		Models: []Model{
			{
				ID: Camry, Name: "Camry", Tagline: "The Icon Redefined", Price: 28000,
				Specs: Specs{Horsepower: 203, MPG: 32, Seating: 5, Rating: 4.8},
				FuelType: "hybrid", VehicleType: "sedan",
				Highlights: []string{"Advanced Safety", "Hybrid Available", "Sport Mode"},
				Analysis:   "For {usage}, the Camry balances efficiency and comfort, a smart fit for a {lifestyle} lifestyle on {location} streets. Its hybrid option keeps running costs low without giving up refinement.",
			},
			{
				ID: RAV4, Name: "RAV4", Tagline: "Adventure Awaits", Price: 32000,
				Specs: Specs{Horsepower: 203, MPG: 30, Seating: 5, Rating: 4.7},
				FuelType: "gas / hybrid", VehicleType: "SUV",
				Highlights: []string{"AWD Available", "Spacious Interior", "Off-Road Ready"},
				Analysis:   "Your {lifestyle} spirit and plans for {usage} call for a capable all-rounder. The RAV4 pairs available AWD with a spacious cabin, ready for {location} roads and whatever lies past them.",
			},
			{
				ID: Highlander, Name: "Highlander", Tagline: "Family Luxury", Price: 38000,
				Specs: Specs{Horsepower: 295, MPG: 24, Seating: 8, Rating: 4.9},
				FuelType: "gas / hybrid", VehicleType: "SUV",
				Highlights: []string{"3-Row Seating", "Premium Interior", "Towing Capacity"},
				Analysis:   "With {usage} at the center of your plans, the Highlander's three rows and premium interior keep everyone comfortable on {location} drives while matching your {lifestyle} lifestyle.",
			},
			{
				ID: Tacoma, Name: "Tacoma", Tagline: "Built for Legends", Price: 34000,
				Specs: Specs{Horsepower: 278, MPG: 20, Seating: 5, Rating: 4.6},
				FuelType: "gas", VehicleType: "truck",
				Highlights: []string{"Off-Road Package", "Rugged Design", "Best Resale Value"},
				Analysis:   "For {usage}, the Tacoma's rugged build and towing capacity stand out. It is made for a {lifestyle} lifestyle and holds its value on {location} terrain.",
			},
			{
				ID: Supra, Name: "Supra", Tagline: "Performance Elevated.", Price: 56250,
				Specs: Specs{Horsepower: 382, MPG: 27, Seating: 2, Rating: 4.9},
				FuelType: "gas", VehicleType: "coupe",
				Highlights: []string{"Supercar Performance", "Legendary Heritage", "Track Ready"},
			},
			{
				ID: TundraTRDPro, Name: "Tundra TRD Pro i‑FORCE MAX", Tagline: "Heavy‑Duty Performance.", Price: 72510,
				Specs: Specs{Horsepower: 437, MPG: 17, Seating: 5, Rating: 4.9},
				FuelType: "gas / hybrid", VehicleType: "truck",
				Highlights: []string{"Maximum Power", "TRD Pro Package", "Heavy-Duty Towing"},
			},
			{
				ID: Sequoia, Name: "Sequoia", Tagline: "Maximum Capability", Price: 62425,
				Specs: Specs{Horsepower: 437, MPG: 22, Seating: 7, Rating: 4.8},
				FuelType: "gas / hybrid", VehicleType: "SUV",
				Highlights: []string{"Maximum Towing", "Premium Luxury", "Advanced Safety"},
			},
			{
				ID: GRCorolla, Name: "GR Corolla", Tagline: "Race Inspired. Road Ready.", Price: 39160,
				Specs: Specs{Horsepower: 300, MPG: 24, Seating: 5, Rating: 4.9},
				FuelType: "gas", VehicleType: "hatchback",
				Highlights: []string{"High Performance", "Racing Heritage", "Sport Mode"},
			},
			{
				ID: TacomaTRDPro, Name: "Tacoma TRD Pro i‑FORCE MAX", Tagline: "Off‑Road Beast.", Price: 46320,
				Specs: Specs{Horsepower: 326, MPG: 24, Seating: 5, Rating: 4.8},
				FuelType: "gas / hybrid", VehicleType: "truck",
				Highlights: []string{"Off-Road Beast", "i-FORCE MAX", "TRD Pro Package"},
			},
			{
				ID: Tundra, Name: "Tundra", Tagline: "Power. Performance. Precision.", Price: 43355,
				Specs: Specs{Horsepower: 389, MPG: 18, Seating: 5, Rating: 4.7},
				FuelType: "gas / hybrid", VehicleType: "truck",
				Highlights: []string{"Heavy-Duty Towing", "i-FORCE Hybrid", "Premium Interior"},
			},
			{
				ID: GR86, Name: "GR 86", Tagline: "Pure Driving Joy.", Price: 30400,
				Specs: Specs{Horsepower: 228, MPG: 24, Seating: 4, Rating: 4.7},
				FuelType: "gas", VehicleType: "coupe",
				Highlights: []string{"Sports Car", "Track Ready", "Pure Performance"},
			},
			{
				ID: GrandHighlander, Name: "Grand Highlander", Tagline: "More Space. More Power.", Price: 40860,
				Specs: Specs{Horsepower: 362, MPG: 34, Seating: 7, Rating: 4.8},
				FuelType: "hybrid", VehicleType: "SUV",
				Highlights: []string{"Maximum Space", "Hybrid Power", "Premium Features"},
			},
			{
				ID: FourRunner, Name: "4Runner", Tagline: "Built for Adventure", Price: 41270,
				Specs: Specs{Horsepower: 278, MPG: 24, Seating: 5, Rating: 4.6},
				FuelType: "gas", VehicleType: "SUV",
				Highlights: []string{"Off-Road Package", "Rugged Design", "Best Resale Value"},
			},
			{
				ID: Crown, Name: "Crown", Tagline: "Elevated Luxury", Price: 41440,
				Specs: Specs{Horsepower: 240, MPG: 38, Seating: 5, Rating: 4.9},
				FuelType: "hybrid", VehicleType: "sedan/crossover",
				Highlights: []string{"Premium Interior", "Hybrid Performance", "Luxury Features"},
			},
			{
				ID: BZ4X, Name: "bZ4X", Tagline: "Electric. Elevated.", Price: 37070,
				Specs: Specs{Horsepower: 201, MPG: 119, Seating: 5, Rating: 4.6},
				FuelType: "electric", VehicleType: "SUV",
				Highlights: []string{"Fully Electric", "Zero Emissions", "Advanced Tech"},
			},
			{
				ID: Prius, Name: "Prius", Tagline: "The Original Hybrid", Price: 28495,
				Specs: Specs{Horsepower: 194, MPG: 57, Seating: 5, Rating: 4.8},
				FuelType: "hybrid", VehicleType: "hatchback",
				Highlights: []string{"Ultra Fuel Efficient", "Eco-Friendly", "Advanced Tech"},
			},
			{
				ID: Corolla, Name: "Corolla", Tagline: "Reliable. Efficient. Always.", Price: 22725,
				Specs: Specs{Horsepower: 169, MPG: 35, Seating: 5, Rating: 4.7},
				FuelType: "gas / hybrid", VehicleType: "sedan",
				Highlights: []string{"Fuel Efficient", "Advanced Safety", "Reliable Performance"},
			},
		},
		Roles: Roles{
			OffRoad: RAV4,
			Family:  Highlander,
			Entry:   Camry,
			Truck:   Tacoma,
		},
		DefaultAnalysis: defaultAnalysis,
		KeywordRules: []KeywordRule{
			{Field: FieldLifestyle, Keywords: []string{"adventure"}, Points: map[string]int{RAV4: 2, FourRunner: 1, Tacoma: 1}},
			{Field: FieldLifestyle, Keywords: []string{"family"}, Points: map[string]int{Highlander: 2, GrandHighlander: 1, Sequoia: 1}},
			{Field: FieldLifestyle, Keywords: []string{"city", "commute"}, Points: map[string]int{Camry: 1, Corolla: 1, Prius: 1}},
			{Field: FieldLifestyle, Keywords: []string{"sport", "performance"}, Points: map[string]int{GR86: 1, Supra: 1, GRCorolla: 1}},

			{Field: FieldUsage, Keywords: []string{"off"}, Points: map[string]int{RAV4: 2, FourRunner: 1, TacomaTRDPro: 1}},
			{Field: FieldUsage, Keywords: []string{"family"}, Points: map[string]int{Highlander: 2, GrandHighlander: 1}},
			{Field: FieldUsage, Keywords: []string{"haul", "work", "truck"}, Points: map[string]int{Tacoma: 2, Tundra: 1, TundraTRDPro: 1}},
			{Field: FieldUsage, Keywords: []string{"daily", "commute"}, Points: map[string]int{Camry: 1, Corolla: 1, Prius: 1}},
			{Field: FieldUsage, Keywords: []string{"long", "trip"}, Points: map[string]int{Camry: 1, Crown: 1, Highlander: 1}},

			{Field: FieldLocation, Keywords: []string{"urban", "city"}, Points: map[string]int{Camry: 1, Prius: 1, BZ4X: 1}},
			{Field: FieldLocation, Keywords: []string{"suburban"}, Points: map[string]int{RAV4: 1, Highlander: 1}},
			{Field: FieldLocation, Keywords: []string{"rural"}, Points: map[string]int{Tacoma: 1, FourRunner: 1, RAV4: 1}},
		},
		BudgetRules: []BudgetRule{
			{Min: 0, Max: 30000, Points: map[string]int{Camry: 2, Corolla: 1, Prius: 1}},
			{Min: 30000, Max: 40000, Points: map[string]int{RAV4: 1, Tacoma: 1, Highlander: 1, BZ4X: 1}},
			{Min: 40000, Max: 0, Points: map[string]int{Highlander: 1, GrandHighlander: 1, Crown: 1, Sequoia: 1}},
		},
		Packages: []Package{
			{ID: "base", Name: "Base Package", Price: 0, Features: []string{"Standard Features", "Cloth Seats", "Basic Audio"}},
			{ID: "premium", Name: "Premium Package", Price: 3500, Features: []string{"Leather Seats", "Sunroof", "Premium Audio", "Advanced Safety"}},
			{ID: "luxury", Name: "Luxury Package", Price: 6500, Features: []string{"Premium Leather", "Panoramic Roof", "Premium Sound", "All Safety Features", "Heated & Cooled Seats"}},
		},
		Extras: []Extra{
			{ID: "tint", Name: "Window Tint", Price: 400},
			{ID: "mats", Name: "All-Weather Mats", Price: 200},
			{ID: "cargo", Name: "Cargo Organizer", Price: 150},
			{ID: "roof", Name: "Roof Rack", Price: 800},
		},
		Colors: []Color{
			{ID: "red", Name: "Supersonic Red", Hex: "#C1272D"},
			{ID: "black", Name: "Midnight Black", Hex: "#0A0A0A"},
			{ID: "white", Name: "Blizzard Pearl", Hex: "#F0F0F0"},
			{ID: "silver", Name: "Celestial Silver", Hex: "#C0C0C0"},
			{ID: "blue", Name: "Blueprint", Hex: "#1E3A8A"},
		},
	}
}

// Default returns the built-in catalog. It panics if the built-in data is
// invalid, which the package tests rule out.
func Default() *Catalog {
	c, err := New(DefaultFile())
	if err != nil {
		panic(err)
	}
	return c
}
