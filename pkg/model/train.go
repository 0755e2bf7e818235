package model

// Train is one service on a fixed route. Fares are stored in paise so refund
// arithmetic stays exact; AvailableSeats is mutated only through the
// inventory's reserve/release operations and always satisfies
// 0 <= available <= total.
type Train struct {
	ID             string `json:"id" bson:"_id" validate:"required,min=4,max=12"`
	Name           string `json:"name" bson:"name" validate:"required,min=2,max=60"`
	Origin         string `json:"origin" bson:"origin" validate:"required,min=2,max=40"`
	Destination    string `json:"destination" bson:"destination" validate:"required,min=2,max=40"`
	Departure      string `json:"departure" bson:"departure" validate:"required"`
	Arrival        string `json:"arrival" bson:"arrival" validate:"required"`
	BaseFarePaise  int64  `json:"base_fare_paise" bson:"base_fare_paise" validate:"required,gt=0"`
	TotalSeats     int    `json:"total_seats" bson:"total_seats" validate:"required,min=1,max=1000"`
	AvailableSeats int    `json:"available_seats" bson:"available_seats" validate:"min=0,ltefield=TotalSeats"`
}
