package dataset

import "realestate-analyzer/internal/models"

// seedRecords is the built-in Pune sample dataset used when no dataset file
// is configured. Prices are per-sqft weighted averages, demand is units sold.
func seedRecords() []models.Record {
	return []models.Record{
		{Area: "Aundh", Year: 2021, Price: 9800, Demand: 410},
		{Area: "Aundh", Year: 2022, Price: 10450, Demand: 455},
		{Area: "Aundh", Year: 2023, Price: 11200, Demand: 430},
		{Area: "Baner", Year: 2021, Price: 8900, Demand: 620},
		{Area: "Baner", Year: 2022, Price: 9600, Demand: 700},
		{Area: "Baner", Year: 2023, Price: 10300, Demand: 760},
		{Area: "Wakad", Year: 2021, Price: 7200, Demand: 830},
		{Area: "Wakad", Year: 2022, Price: 7650, Demand: 910},
		{Area: "Wakad", Year: 2023, Price: 8100, Demand: 980},
		{Area: "Hinjewadi", Year: 2021, Price: 6800, Demand: 1040},
		{Area: "Hinjewadi", Year: 2022, Price: 7100, Demand: 1150},
		{Area: "Hinjewadi", Year: 2023, Price: 7550, Demand: 1230},
		{Area: "Kothrud", Year: 2021, Price: 10200, Demand: 380},
		{Area: "Kothrud", Year: 2022, Price: 10700, Demand: 360},
		{Area: "Kothrud", Year: 2023, Price: 11150, Demand: 395},
		{Area: "Viman Nagar", Year: 2021, Price: 9100, Demand: 520},
		{Area: "Viman Nagar", Year: 2022, Price: 9550, Demand: 540},
		{Area: "Viman Nagar", Year: 2023, Price: 9900, Demand: 505},
		{Area: "Kharadi", Year: 2021, Price: 7900, Demand: 690},
		{Area: "Kharadi", Year: 2022, Price: 8500, Demand: 750},
		{Area: "Kharadi", Year: 2023, Price: 9150, Demand: 820},
	}
}
