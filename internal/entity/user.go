package entity

type User struct {
	Base

	// ExternalID is the identity issued by the identity provider.
	ExternalID string `gorm:"unique;not null"`
	Username   string `gorm:"unique"`
	Name       string
	Bio        string
	Image      string
	Skills     Array[string]
	Onboarded  bool

	// TimeBalance is the banked time credit of the user. No operation spends or
	// earns it yet.
	TimeBalance int64

	Threads         Array[string]
	AppealsCreated  Array[string]
	AppealsAssisted Array[string]
	Communities     Array[string]
}
