package catalog

import "github.com/verte-zerg/tentwenty/internal/model"

// DefaultStart is the start page of the built-in catalog.
var DefaultStart = model.StartPage{
	Title:     "Welcome to the 10-20 Measurement App",
	Intro:     "A randomized measurement will be provided,\nFill in answers and click Check Answers button",
	Image:     "assets/images/animated.gif",
	FirstPage: 1,
}

func m(label string, percent int) model.Measurement {
	return model.Measurement{Label: label, Percent: percent}
}

// DefaultPages are the seven 10-20 system pages.
var DefaultPages = []model.PageDefinition{
	{
		ID:             1,
		ReferenceLabel: "nasion to inion",
		Measurements: []model.Measurement{
			m("Nasion to FPz (10%)", 10),
			m("Nasion to Fz (30%)", 30),
			m("Nasion to Cz (50%)", 50),
			m("Nasion to Pz (70%)", 70),
			m("Nasion to Oz (90%)", 90),
		},
		Range:      model.Range{Min: 20, Max: 40},
		NextPageID: 2,
		Image:      "assets/images/page1.png",
	},
	{
		ID:             2,
		ReferenceLabel: "L pre-aricular to R pre-aricular",
		Measurements: []model.Measurement{
			m("L pre to T3 (10%)", 10),
			m("L pre to C3 (30%)", 30),
			m("L pre to C2 (50%)", 50),
			m("L pre to C4 (70%)", 70),
			m("L pre to T4 (90%)", 90),
		},
		Range:      model.Range{Min: 10, Max: 30},
		NextPageID: 3,
		Image:      "assets/images/page2.png",
	},
	{
		ID:             3,
		ReferenceLabel: "circumference",
		Measurements: []model.Measurement{
			m("Fpz to Fp2 (5%)", 5),
			m("Fpz to F8 (15%)", 15),
			m("Fpz to T4 (25%)", 25),
			m("Fpz to T6 (35%)", 35),
			m("Fpz to O2 (45%)", 45),
			m("Fpz to FP1 (5%)", 5),
			m("Fpz to F7 (15%)", 15),
			m("Fpz to T3 (25%)", 25),
			m("Fpz to T5 (35%)", 35),
			m("Fpz to O1 (45%)", 45),
			m("O1 to O2 (10%)", 10),
			m("FP1 to Fp2 (10%)", 10),
		},
		Range:      model.Range{Min: 30, Max: 62},
		NextPageID: 4,
		Image:      "assets/images/page3.png",
	},
	{
		ID:             4,
		ReferenceLabel: "F7 to F8",
		Measurements: []model.Measurement{
			m("F7 to F3 (25%)", 25),
			m("F7 to Fz (50%)", 50),
			m("F7 to F4 (75%)", 75),
		},
		Range:      model.Range{Min: 10, Max: 30},
		NextPageID: 5,
		Image:      "assets/images/page4.png",
	},
	{
		ID:             5,
		ReferenceLabel: "T5 to T6",
		Measurements: []model.Measurement{
			m("T5 to P3 (25%)", 25),
			m("T5 to Pz (50%)", 50),
			m("T5 to P4 (75%)", 75),
		},
		Range:      model.Range{Min: 10, Max: 30},
		NextPageID: 6,
		Image:      "assets/images/page5.png",
	},
	{
		ID:             6,
		ReferenceLabel: "Fp1 to O1",
		Measurements: []model.Measurement{
			m("Fp1 to F3 (25%)", 25),
			m("Fp1 to C3 (50%)", 50),
			m("Fp1 to P3 (75%)", 75),
		},
		Range:      model.Range{Min: 10, Max: 35},
		NextPageID: 7,
		Image:      "assets/images/page6.png",
	},
	{
		ID:             7,
		ReferenceLabel: "FP2 to O2",
		Measurements: []model.Measurement{
			m("Fp2 to F4 (25%)", 25),
			m("Fp2 to C4 (50%)", 50),
			m("Fp2 to P4 (75%)", 75),
		},
		Range:      model.Range{Min: 10, Max: 35},
		NextPageID: model.StartPageID,
		Image:      "assets/images/page7.png",
	},
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(DefaultStart, DefaultPages)
	if err != nil {
		panic("catalog: built-in catalog is invalid: " + err.Error())
	}
	return c
}
