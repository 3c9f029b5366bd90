package estate

import "github.com/etnz/estate/date"

// SampleProperties returns the demonstration portfolio: three rentals.
//
// Each call returns a fresh collection.
func SampleProperties() Properties {
	return Properties{
		{
			ID:              "1",
			Name:            "Maple Street Duplex",
			Address:         "142 Maple Street, Austin, TX",
			Type:            Duplex,
			PurchasePrice:   M(285000),
			CurrentValue:    M(340000),
			MonthlyRent:     M(2800),
			MonthlyExpenses: M(1200),
			YearPurchased:   2021,
			Sqft:            2200,
			Units:           2,
		},
		{
			ID:              "2",
			Name:            "Oak Park Townhome",
			Address:         "78 Oak Park Dr, Austin, TX",
			Type:            Townhome,
			PurchasePrice:   M(195000),
			CurrentValue:    M(245000),
			MonthlyRent:     M(1800),
			MonthlyExpenses: M(850),
			YearPurchased:   2022,
			Sqft:            1500,
			Units:           1,
		},
		{
			ID:              "3",
			Name:            "River Bend Condo",
			Address:         "310 River Bend Blvd #4B, Austin, TX",
			Type:            Condo,
			PurchasePrice:   M(165000),
			CurrentValue:    M(198000),
			MonthlyRent:     M(1450),
			MonthlyExpenses: M(720),
			YearPurchased:   2023,
			Sqft:            950,
			Units:           1,
		},
	}
}

func day(s string) date.Date { return date.MustParse(s) }

func due(s string) *date.Date {
	d := date.MustParse(s)
	return &d
}

func cost(v int64) *Money {
	m := M(v)
	return &m
}

// SampleRenovations returns the renovations of the demonstration portfolio.
//
// Each call returns a fresh collection.
func SampleRenovations() Renovations {
	return Renovations{
		{
			ID:            "1",
			PropertyID:    "1",
			Title:         "Kitchen Remodel - Unit A",
			Description:   "Full kitchen renovation including new cabinets, countertops, and appliances",
			EstimatedCost: M(15000),
			Priority:      High,
			Status:        InProgress,
			Category:      Kitchen,
			CreatedAt:     day("2024-01-15"),
			DueDate:       due("2024-04-01"),
			Notes:         "Contractor scheduled for next month. Need to finalize countertop selection.",
		},
		{
			ID:            "2",
			PropertyID:    "1",
			Title:         "Bathroom Tile Repair - Unit B",
			Description:   "Replace cracked tiles and fix grout in master bathroom",
			EstimatedCost: M(2500),
			Priority:      Medium,
			Status:        Pending,
			Category:      Bathroom,
			CreatedAt:     day("2024-02-01"),
			DueDate:       due("2024-05-15"),
		},
		{
			ID:            "3",
			PropertyID:    "2",
			Title:         "Roof Inspection & Repair",
			Description:   "Annual roof inspection, patch any damaged shingles",
			EstimatedCost: M(3500),
			ActualCost:    cost(2800),
			Priority:      High,
			Status:        Completed,
			Category:      Exterior,
			CreatedAt:     day("2023-11-01"),
			DueDate:       due("2024-01-15"),
			Notes:         "Completed ahead of schedule. Minor repairs only.",
		},
		{
			ID:            "4",
			PropertyID:    "2",
			Title:         "HVAC System Replacement",
			Description:   "Replace aging HVAC unit with energy-efficient model",
			EstimatedCost: M(8000),
			Priority:      High,
			Status:        Pending,
			Category:      HVAC,
			CreatedAt:     day("2024-02-10"),
			DueDate:       due("2024-06-01"),
			Notes:         "Get 3 quotes from local HVAC contractors.",
		},
		{
			ID:            "5",
			PropertyID:    "3",
			Title:         "Interior Paint Refresh",
			Description:   "Repaint all walls in neutral tones before next tenant",
			EstimatedCost: M(1800),
			Priority:      Low,
			Status:        Pending,
			Category:      Interior,
			CreatedAt:     day("2024-02-15"),
			DueDate:       due("2024-07-01"),
			Notes:         "Wait until current lease ends in June.",
		},
		{
			ID:            "6",
			PropertyID:    "3",
			Title:         "Window Replacement",
			Description:   "Replace single-pane windows with double-pane for energy efficiency",
			EstimatedCost: M(4200),
			Priority:      Medium,
			Status:        Pending,
			Category:      Exterior,
			CreatedAt:     day("2024-01-20"),
			DueDate:       due("2024-08-01"),
			Notes:         "Energy audit recommended this upgrade.",
		},
	}
}
