package catalog

type CreateSpaceRequest struct {
	ID           string `json:"id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	AreaSqm      int    `json:"area_sqm"`
	PricePerHour int64  `json:"price_per_hour" binding:"gte=0"`
	PricePerDay  int64  `json:"price_per_day" binding:"gte=0"`
	Available    bool   `json:"available"`
}

type CreateEquipmentRequest struct {
	ID           string `json:"id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Category     string `json:"category"`
	PricePerHour int64  `json:"price_per_hour" binding:"gte=0"`
	PricePerDay  int64  `json:"price_per_day" binding:"gte=0"`
	Available    bool   `json:"available"`
}

type CreatePropRequest struct {
	ID          string `json:"id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category"`
	PricePerDay int64  `json:"price_per_day" binding:"gte=0"`
	Available   bool   `json:"available"`
}

type SetAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}
