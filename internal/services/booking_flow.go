package services

import (
	"strconv"
	"strings"
	"sync"

	"carrental/internal/domain"
	"carrental/internal/domain/models"
	"carrental/internal/repositories"
	"carrental/internal/utils"
)

// FlowState tracks where a booking flow is in its linear lifecycle.
type FlowState int

const (
	StateDraft FlowState = iota
	StateQuoted
	StatePersisted
	StatePaymentCaptured
	StateReceiptIssued
	StateCancelled
)

func (s FlowState) String() string {
	switch s {
	case StateDraft:
		return "draft"
	case StateQuoted:
		return "quoted"
	case StatePersisted:
		return "persisted"
	case StatePaymentCaptured:
		return "payment_captured"
	case StateReceiptIssued:
		return "receipt_issued"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

const (
	reasonNoVehicles   = "no vehicles available"
	reasonInvalidDates = "invalid dates"
)

// BookingFlow is one customer's booking, from draft through receipt. It is
// single-use: once the receipt is issued the flow is spent and every further
// call is rejected. Cancelling after submission does not roll back the
// persisted booking row.
type BookingFlow struct {
	Cache       *CatalogCache
	BookingRepo repositories.BookingRepository
	PaymentRepo repositories.PaymentRepository

	mu        sync.Mutex
	requestID string
	state     FlowState
	draft     models.BookingDraft
	quote     models.Quote
	booking   models.Booking
}

func NewBookingFlow(cache *CatalogCache, bookings repositories.BookingRepository, payments repositories.PaymentRepository) *BookingFlow {
	return &BookingFlow{
		Cache:       cache,
		BookingRepo: bookings,
		PaymentRepo: payments,
		state:       StateDraft,
	}
}

// SetRequestID tags the flow with the current request for log correlation.
// Guarded by the flow mutex: concurrent requests may share a flow id.
func (f *BookingFlow) SetRequestID(id string) {
	f.mu.Lock()
	f.requestID = id
	f.mu.Unlock()
}

func (f *BookingFlow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *BookingFlow) Quote() models.Quote {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.quote
}

func (f *BookingFlow) Booking() models.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.booking
}

// UpdateDraft stores the current form selection and recomputes the price
// preview. This is a live preview, not a validated submission: bad dates or an
// empty catalog make the quote unavailable (price 0), they never error.
func (f *BookingFlow) UpdateDraft(d models.BookingDraft) (models.Quote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateDraft && f.state != StateQuoted {
		return models.Quote{}, domain.ValidationError{Msg: "booking already submitted"}
	}

	f.draft = d
	f.quote = f.previewQuote(d)
	f.state = StateQuoted
	return f.quote, nil
}

func (f *BookingFlow) previewQuote(d models.BookingDraft) models.Quote {
	rate, ok := f.Cache.Rate(d.Car)
	if !ok || f.Cache.Len() == 0 {
		return models.Quote{Price: 0, Available: false, Reason: reasonNoVehicles}
	}

	total, err := utils.TotalPrice(rate, d.PickupDate, d.DropDate)
	if err != nil {
		return models.Quote{Price: 0, Available: false, Reason: reasonInvalidDates}
	}
	return models.Quote{Price: total, Available: true}
}

// Submit validates the quoted draft and writes exactly one booking row. The
// price is recomputed here against the live cache, not taken from the preview,
// so a quote computed before an admin rate change cannot be persisted.
func (f *BookingFlow) Submit() (models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateQuoted {
		return models.Booking{}, domain.ValidationError{Msg: "nothing to submit in state " + f.state.String()}
	}

	d := f.draft
	if strings.TrimSpace(d.Name) == "" {
		return models.Booking{}, domain.ValidationError{Field: "name", Msg: "must not be empty"}
	}
	if strings.TrimSpace(d.Email) == "" {
		return models.Booking{}, domain.ValidationError{Field: "email", Msg: "must not be empty"}
	}
	if strings.TrimSpace(d.Phone) == "" {
		return models.Booking{}, domain.ValidationError{Field: "phone", Msg: "must not be empty"}
	}

	rate, ok := f.Cache.Rate(d.Car)
	if !ok {
		return models.Booking{}, domain.ValidationError{Field: "car", Msg: reasonNoVehicles}
	}

	total, err := utils.TotalPrice(rate, d.PickupDate, d.DropDate)
	if err != nil {
		return models.Booking{}, err
	}

	b := models.Booking{
		Name:            strings.TrimSpace(d.Name),
		Email:           strings.TrimSpace(d.Email),
		Phone:           strings.TrimSpace(d.Phone),
		Address:         strings.TrimSpace(d.Address),
		Car:             d.Car,
		PickupDate:      d.PickupDate,
		DropDate:        d.DropDate,
		PickupLocation:  strings.TrimSpace(d.PickupLocation),
		DropoffLocation: strings.TrimSpace(d.DropoffLocation),
		Price:           total,
	}

	id, err := f.BookingRepo.Insert(b)
	if err != nil {
		return models.Booking{}, err
	}
	b.ID = id

	f.booking = b
	f.state = StatePersisted
	utils.LogEvent(f.requestID, "booking", "submit", "booking_id="+strconv.FormatInt(id, 10))
	return b, nil
}

// Pay validates the instrument for the selected method, checks the OTP for
// non-emptiness only, and appends one audit row.
func (f *BookingFlow) Pay(p models.Payment, otp string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StatePersisted {
		return domain.ValidationError{Msg: "no submitted booking to pay in state " + f.state.String()}
	}

	if p.IsUPI() {
		if strings.TrimSpace(p.UPIID) == "" {
			return domain.ValidationError{Field: "upi_id", Msg: "must not be empty"}
		}
	} else {
		if strings.TrimSpace(p.CardNumber) == "" ||
			strings.TrimSpace(p.CardName) == "" ||
			strings.TrimSpace(p.Expiry) == "" ||
			strings.TrimSpace(p.CVV) == "" {
			return domain.ValidationError{Field: "card", Msg: "all card details are required"}
		}
	}
	if strings.TrimSpace(otp) == "" {
		return domain.ValidationError{Field: "otp", Msg: "must not be empty"}
	}

	if err := f.PaymentRepo.Save(p); err != nil {
		return err
	}

	f.state = StatePaymentCaptured
	utils.LogEvent(f.requestID, "payment", "capture", "method="+p.Method)
	return nil
}

// Receipt copies the persisted booking into the terminal receipt view and
// spends the flow.
func (f *BookingFlow) Receipt() (models.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateReceiptIssued {
		return models.Receipt{}, domain.ValidationError{Msg: "receipt already issued"}
	}
	if f.state != StatePaymentCaptured {
		return models.Receipt{}, domain.ValidationError{Msg: "no captured payment in state " + f.state.String()}
	}

	f.state = StateReceiptIssued
	return models.Receipt{
		Heading: "BOOKING CONFIRMED - RECEIPT",
		Booking: f.booking,
		Total:   "TOTAL AMOUNT PAID: " + utils.FormatDollar(f.booking.Price),
	}, nil
}

// Cancel discards the in-memory flow. A booking persisted by Submit stays in
// the store; only an admin delete removes it.
func (f *BookingFlow) Cancel() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case StateDraft, StateQuoted, StatePersisted:
		f.state = StateCancelled
		return nil
	default:
		return domain.ValidationError{Msg: "cannot cancel in state " + f.state.String()}
	}
}
