package domain

// Procedure represents a bookable service offering. Duration is the
// intrinsic service time in minutes before client adjustments.
type Procedure struct {
	ID        int64
	SectionID int64
	Duration  int
	BasePrice float64
	Discount  float64 // percentage
}

// FinalPrice returns the base price with the discount applied
func (p *Procedure) FinalPrice() float64 {
	return p.BasePrice * (1 - p.Discount/100)
}
