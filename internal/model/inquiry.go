package model

import (
	"time"

	"github.com/google/uuid"
)

// InquiryStatusNew is the status assigned to every fresh inquiry. Status is
// deliberately free-form beyond that: the admin UI uses values like
// "contacted" and "closed" by convention, but nothing is enforced.
const InquiryStatusNew = "new"

// Inquiry is a public event inquiry submitted through the contact form.
type Inquiry struct {
	ID                     string    `json:"id"`
	FirstName              string    `json:"first_name"`
	LastName               string    `json:"last_name"`
	Email                  string    `json:"email"`
	Phone                  string    `json:"phone"`
	Country                string    `json:"country"`
	EventDetails           string    `json:"event_details"`
	VenueAddress           string    `json:"venue_address"`
	NumberOfGuests         string    `json:"number_of_guests"`
	AdditionalRequirements string    `json:"additional_requirements"`
	Date                   string    `json:"date"`
	Time                   string    `json:"time"`
	HowDidYouHear          string    `json:"how_did_you_hear"`
	Status                 string    `json:"status"`
	CreatedAt              time.Time `json:"created_at"`
}

// CreateInquiryRequest is the public payload for submitting an inquiry.
type CreateInquiryRequest struct {
	FirstName              string `json:"first_name" binding:"required"`
	LastName               string `json:"last_name" binding:"required"`
	Email                  string `json:"email" binding:"required,email"`
	Phone                  string `json:"phone" binding:"required"`
	Country                string `json:"country" binding:"required"`
	EventDetails           string `json:"event_details" binding:"required"`
	VenueAddress           string `json:"venue_address" binding:"required"`
	NumberOfGuests         string `json:"number_of_guests" binding:"required"`
	AdditionalRequirements string `json:"additional_requirements" binding:"required"`
	Date                   string `json:"date" binding:"required"`
	Time                   string `json:"time" binding:"required"`
	HowDidYouHear          string `json:"how_did_you_hear" binding:"required"`
}

// UpdateInquiryStatusRequest sets the inquiry status to a caller-supplied
// string. No state machine exists.
type UpdateInquiryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// NewInquiry builds an inquiry with server-assigned fields and the default
// "new" status.
func NewInquiry(req CreateInquiryRequest) Inquiry {
	return Inquiry{
		ID:                     uuid.New().String(),
		FirstName:              req.FirstName,
		LastName:               req.LastName,
		Email:                  req.Email,
		Phone:                  req.Phone,
		Country:                req.Country,
		EventDetails:           req.EventDetails,
		VenueAddress:           req.VenueAddress,
		NumberOfGuests:         req.NumberOfGuests,
		AdditionalRequirements: req.AdditionalRequirements,
		Date:                   req.Date,
		Time:                   req.Time,
		HowDidYouHear:          req.HowDidYouHear,
		Status:                 InquiryStatusNew,
		CreatedAt:              time.Now().UTC(),
	}
}
