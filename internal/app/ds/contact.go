package ds

// ContactForm - сырые данные контактной формы
type ContactForm struct {
	FirstName              string `json:"firstName" form:"firstName"`
	LastName               string `json:"lastName" form:"lastName"`
	Email                  string `json:"email" form:"email"`
	Phone                  string `json:"phone" form:"phone"`
	Company                string `json:"company" form:"company"`
	Service                string `json:"service" form:"service"`
	Subject                string `json:"subject" form:"subject"`
	Message                string `json:"message" form:"message"`
	PrivacyAccepted        bool   `json:"privacyAccepted" form:"privacyAccepted"`
	NewsletterSubscription bool   `json:"newsletterSubscription" form:"newsletterSubscription"`
}

// ContactSubmission - сообщение из контактной формы
type ContactSubmission struct {
	ID                     string `json:"id" gorm:"primaryKey;size:16"`
	FirstName              string `json:"firstName" gorm:"not null"`
	LastName               string `json:"lastName" gorm:"not null"`
	Email                  string `json:"email" gorm:"not null"`
	Phone                  string `json:"phone,omitempty"`
	Company                string `json:"company,omitempty"`
	Service                string `json:"service,omitempty"`
	Subject                string `json:"subject" gorm:"not null"`
	Message                string `json:"message" gorm:"not null"`
	PrivacyAccepted        bool   `json:"privacyAccepted"`
	NewsletterSubscription bool   `json:"newsletterSubscription"`
	Date                   string `json:"date"`
	Time                   string `json:"time"`
	Status                 string `json:"status" gorm:"not null;default:new"`
}

func (ContactSubmission) TableName() string { return "contact_submissions" }
