package content

import "time"

// HeroImage is a storefront banner. Order is a display rank sorted
// ascending among active images; it carries no other meaning.
type HeroImage struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Order       int       `json:"order"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MakerStory is an editorial profile of an artisan. It relates to no
// other entity.
type MakerStory struct {
	ID                int       `json:"id"`
	MakerName         string    `json:"makerName"`
	Age               *int      `json:"age"`
	Location          string    `json:"location"`
	Story             string    `json:"story"`
	ImageURL          string    `json:"imageUrl"`
	Occupation        *string   `json:"occupation"`
	FamilyInfo        *string   `json:"familyInfo"`
	CraftsSpecialty   string    `json:"craftsSpecialty"`
	YearsOfExperience *int      `json:"yearsOfExperience"`
	ImpactStatement   *string   `json:"impactStatement"`
	IsActive          bool      `json:"isActive"`
	Order             int       `json:"order"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
