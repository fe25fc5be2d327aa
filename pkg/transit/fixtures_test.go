package transit

// Sample responses trimmed from transport.opendata.ch

const sampleLocationsResponse = `{
	"stations": [
		{
			"id": "8503000",
			"name": "Zürich HB",
			"score": 101,
			"coordinates": {"type": "WGS84", "x": 47.377847, "y": 8.540502},
			"distance": null
		},
		{
			"id": "8503020",
			"name": "Zürich Hardbrücke",
			"type": "station"
		}
	]
}`

const sampleConnectionsResponse = `{
	"connections": [
		{
			"from": {
				"station": {"id": "8503000", "name": "Zürich HB"},
				"departure": "2024-03-25T17:32:00+0100",
				"platform": "31",
				"prognosis": {"platform": "32", "departure": "2024-03-25T17:34:00+0100"}
			},
			"to": {
				"station": {"id": "8507000", "name": "Bern"},
				"arrival": "2024-03-25T18:28:00+0100",
				"platform": "7"
			},
			"duration": "00d00:56:00",
			"service": {"regular": "daily"},
			"products": ["IC 1"],
			"capacity1st": 1,
			"capacity2nd": 2,
			"sections": [
				{
					"journey": {
						"name": "IC 1 719",
						"category": "IC",
						"categoryCode": 1,
						"number": "1",
						"operator": "SBB",
						"to": "Genève-Aéroport",
						"passList": [
							{"station": {"id": "8503000", "name": "Zürich HB"}, "departure": "2024-03-25T17:32:00+0100"},
							{"station": {"id": "8507000", "name": "Bern"}, "arrival": "2024-03-25T18:28:00+0100"}
						]
					},
					"walk": null,
					"departure": {"station": {"name": "Zürich HB"}, "departure": "2024-03-25T17:32:00+0100"},
					"arrival": {"station": {"name": "Bern"}, "arrival": "2024-03-25T18:28:00+0100"}
				},
				{
					"journey": null,
					"walk": {"duration": 300},
					"departure": {"station": {"name": "Bern"}, "departure": "2024-03-25T18:28:00+0100"},
					"arrival": {"station": {"name": "Bern, Bahnhof"}, "arrival": "2024-03-25T18:33:00+0100"}
				}
			]
		}
	]
}`

const sampleStationboardResponse = `{
	"station": {
		"stations": [{"id": "8503000", "name": "Zürich HB"}]
	},
	"stationboard": [
		{
			"name": "S 8",
			"category": "S",
			"number": "8",
			"operator": "SBB",
			"to": "Winterthur",
			"stop": {"station": {"id": "8503000"}, "departure": "2024-03-25T17:40:00+0100", "platform": "21"}
		},
		{
			"name": "IR 36",
			"category": "IR",
			"number": "36",
			"operator": "SBB",
			"to": "Basel SBB",
			"stop": {
				"station": {"id": "8503000"},
				"departure": "2024-03-25T17:35:00+0100",
				"delay": 3,
				"prognosis": {"departure": "2024-03-25T17:38:00+0100"}
			}
		}
	]
}`
