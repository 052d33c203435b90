package entity

// Property is a row of the properties table. CostPerNight is in cents.
//
// AverageRating is not a column; it is filled when the row comes from a query
// that aggregates property_reviews.
type Property struct {
	ID                int64   `json:"id"`
	OwnerID           int64   `json:"owner_id"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	ThumbnailPhotoURL string  `json:"thumbnail_photo_url"`
	CoverPhotoURL     string  `json:"cover_photo_url"`
	CostPerNight      int64   `json:"cost_per_night"`
	ParkingSpaces     int64   `json:"parking_spaces"`
	NumberOfBathrooms int64   `json:"number_of_bathrooms"`
	NumberOfBedrooms  int64   `json:"number_of_bedrooms"`
	Country           string  `json:"country"`
	Street            string  `json:"street"`
	City              string  `json:"city"`
	Province          string  `json:"province"`
	PostCode          string  `json:"post_code"`
	Active            bool    `json:"active"`
	AverageRating     float64 `json:"average_rating,omitempty"`
}

// NewProperty carries every column the property writer inserts. Numeric
// fields accept numeric text because listing forms submit them as strings.
type NewProperty struct {
	OwnerID           FlexInt `json:"owner_id"`
	Title             string  `json:"title" binding:"required"`
	Description       string  `json:"description"`
	ThumbnailPhotoURL string  `json:"thumbnail_photo_url" binding:"required"`
	CoverPhotoURL     string  `json:"cover_photo_url" binding:"required"`
	CostPerNight      FlexInt `json:"cost_per_night"`
	Street            string  `json:"street" binding:"required"`
	City              string  `json:"city" binding:"required"`
	Province          string  `json:"province" binding:"required"`
	PostCode          string  `json:"post_code" binding:"required"`
	Country           string  `json:"country" binding:"required"`
	ParkingSpaces     FlexInt `json:"parking_spaces"`
	NumberOfBathrooms FlexInt `json:"number_of_bathrooms"`
	NumberOfBedrooms  FlexInt `json:"number_of_bedrooms"`
}

// PropertySearch holds the optional catalog filters. A zero value means the
// filter is not applied. Prices are in whole currency units.
type PropertySearch struct {
	City                 string  `form:"city" json:"city"`
	OwnerID              int64   `form:"owner_id" json:"owner_id"`
	MinimumPricePerNight float64 `form:"minimum_price_per_night" json:"minimum_price_per_night"`
	MaximumPricePerNight float64 `form:"maximum_price_per_night" json:"maximum_price_per_night"`
	MinimumRating        float64 `form:"minimum_rating" json:"minimum_rating"`
}

// PropertyReview is a row of the property_reviews table.
type PropertyReview struct {
	ID            int64  `json:"id"`
	GuestID       int64  `json:"guest_id"`
	PropertyID    int64  `json:"property_id"`
	ReservationID int64  `json:"reservation_id"`
	Rating        int16  `json:"rating"`
	Message       string `json:"message"`
}
