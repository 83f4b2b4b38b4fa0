package models

import "time"

// Booking is one persisted rental. Car and Price are denormalized at creation
// time; deleting the model from the catalog later does not touch past bookings.
type Booking struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Address         string    `json:"address"`
	Car             string    `json:"car"`
	PickupDate      time.Time `json:"pickupDate"`
	DropDate        time.Time `json:"dropDate"`
	PickupLocation  string    `json:"pickupLocation"`
	DropoffLocation string    `json:"dropoffLocation"`
	Price           int64     `json:"price"`
}

// BookingDraft carries the customer form fields before submission.
type BookingDraft struct {
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Address         string    `json:"address"`
	Car             string    `json:"car"`
	PickupDate      time.Time `json:"pickupDate"`
	DropDate        time.Time `json:"dropDate"`
	PickupLocation  string    `json:"pickupLocation"`
	DropoffLocation string    `json:"dropoffLocation"`
}

// Quote is the live price preview for the current draft. Price is zero when the
// preview is unavailable (bad dates or empty catalog); Reason says why.
type Quote struct {
	Price     int64  `json:"price"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// Receipt is the terminal, read-only view of a paid booking.
type Receipt struct {
	Heading string  `json:"heading"`
	Booking Booking `json:"booking"`
	Total   string  `json:"total"`
}
