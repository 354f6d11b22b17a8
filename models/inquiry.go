package models

// InquiryRequest is sent from the selection page. Items may be omitted, in
// which case the caller's saved selection is used.
type InquiryRequest struct {
	Name    string     `json:"name" binding:"required,max=120"`
	Email   string     `json:"email" binding:"required,email"`
	Phone   string     `json:"phone" binding:"omitempty,max=40"`
	Message string     `json:"message" binding:"omitempty,max=2000"`
	Items   []CartItem `json:"items" binding:"omitempty,dive"`
}

// ContactRequest is the general contact form
type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=120"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"omitempty,max=200"`
	Message string `json:"message" binding:"required,max=5000"`
}
