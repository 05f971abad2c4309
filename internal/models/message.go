package models

// Message represents a contact-form message sent from the public site.
type Message struct {
	BaseModel
	FirstName string `gorm:"size:100" json:"firstName"`
	LastName  string `gorm:"size:100" json:"lastName"`
	Email     string `gorm:"size:255" json:"email"`
	Phone     string `gorm:"size:20" json:"phone"`
	Message   string `gorm:"type:text" json:"message"`
}
