package response

import "pannel_pintura/internal/domain/entities"

// RatesResponse publishes the active rate table so clients can price quotes
// locally.
type RatesResponse struct {
	Base          map[entities.ProjectType]map[entities.FinishTier]float64 `json:"base"`
	Room          map[int]float64                                          `json:"room"`
	Condition     map[entities.WallCondition]float64                       `json:"condition"`
	Urgency       map[entities.Urgency]float64                             `json:"urgency"`
	MinRooms      int                                                      `json:"min_rooms"`
	MaxRooms      int                                                      `json:"max_rooms"`
	WarrantyYears map[entities.ProjectType]int                             `json:"warranty_years"`
}

type LinkResponse struct {
	URL string `json:"url"`
}

func FromRateTable(t entities.RateTable) RatesResponse {
	warranty := make(map[entities.ProjectType]int, len(entities.ProjectTypes))
	for _, p := range entities.ProjectTypes {
		warranty[p] = p.WarrantyYears()
	}
	return RatesResponse{
		Base:          t.Base,
		Room:          t.Room,
		Condition:     t.Condition,
		Urgency:       t.Urgency,
		MinRooms:      entities.MinRoomCount,
		MaxRooms:      entities.MaxRoomCount,
		WarrantyYears: warranty,
	}
}
