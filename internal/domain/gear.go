package domain

// RentalType is the duration tier a cart item was priced at.
type RentalType string

const (
	RentalTypeDay  RentalType = "1day"
	RentalType3Day RentalType = "3day"
	RentalTypeWeek RentalType = "week"
)

// GearItem is a catalog entry. Capacity is the number of physical units the
// club owns; TimesRented and RevenueCents are running aggregates maintained
// by the reservation engine. Prices are precomputed per duration tier and
// treated as inputs here.
type GearItem struct {
	ID             int32  `json:"id"`
	Category       string `json:"category"`
	Name           string `json:"name"`
	Capacity       int32  `json:"capacity"`
	PriceDayCents  int32  `json:"price_day_cents"`
	Price3DayCents int32  `json:"price_3day_cents"`
	PriceWeekCents int32  `json:"price_week_cents"`
	TimesRented    int32  `json:"times_rented"`
	RevenueCents   int64  `json:"revenue_cents"`
}
