package handlers

import (
	"net/http"

	"carrental/internal/domain/models"
	"carrental/internal/http/middleware"
	"carrental/internal/repositories"
	"carrental/internal/services"
	"carrental/internal/utils"

	"github.com/gin-gonic/gin"
)

type draftPayload struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	Car             string `json:"car"`
	PickupDate      string `json:"pickupDate"`
	DropDate        string `json:"dropDate"`
	PickupLocation  string `json:"pickupLocation"`
	DropoffLocation string `json:"dropoffLocation"`
}

// toDraft is lenient about timestamps: an unparseable date becomes the zero
// time, which the preview reports as invalid dates instead of erroring.
func (p draftPayload) toDraft() models.BookingDraft {
	d := models.BookingDraft{
		Name:            p.Name,
		Email:           p.Email,
		Phone:           p.Phone,
		Address:         p.Address,
		Car:             p.Car,
		PickupLocation:  p.PickupLocation,
		DropoffLocation: p.DropoffLocation,
	}
	if t, err := utils.ParseBookingTime(p.PickupDate); err == nil {
		d.PickupDate = t
	}
	if t, err := utils.ParseBookingTime(p.DropDate); err == nil {
		d.DropDate = t
	}
	return d
}

type paymentPayload struct {
	Method     string `json:"method"`
	CardNumber string `json:"cardNumber"`
	CardName   string `json:"cardName"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
	UPIID      string `json:"upiId"`
	OTP        string `json:"otp"`
}

func newFlow(c *gin.Context) *services.BookingFlow {
	flow := services.NewBookingFlow(
		catalogCache,
		repositories.BookingRepository{},
		repositories.PaymentRepository{},
	)
	flow.SetRequestID(middleware.GetRequestID(c))
	return flow
}

func flowByParam(c *gin.Context) (*services.BookingFlow, string, bool) {
	id := c.Param("id")
	flow, ok := flowStore.Get(id)
	if !ok {
		respondError(c, http.StatusNotFound, "not_found", "booking flow not found", nil)
		return nil, "", false
	}
	flow.SetRequestID(middleware.GetRequestID(c))
	return flow, id, true
}

// POST /api/flows starts a booking flow and returns the selectable car list.
func StartFlow(c *gin.Context) {
	id := flowStore.Put(newFlow(c))
	c.JSON(http.StatusCreated, gin.H{
		"flowId": id,
		"state":  services.StateDraft.String(),
		"cars":   catalogCache.Models(),
	})
}

// PUT /api/flows/:id updates the draft and returns the live price preview.
func UpdateFlowDraft(c *gin.Context) {
	flow, _, ok := flowByParam(c)
	if !ok {
		return
	}

	var payload draftPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	quote, err := flow.UpdateDraft(payload.toDraft())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"state": flow.State().String(),
		"quote": quote,
	})
}

// POST /api/flows/:id/submit persists the booking.
func SubmitFlow(c *gin.Context) {
	flow, _, ok := flowByParam(c)
	if !ok {
		return
	}

	booking, err := flow.Submit()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"state":   flow.State().String(),
		"booking": booking,
	})
}

// POST /api/flows/:id/pay captures the payment.
func PayFlow(c *gin.Context) {
	flow, _, ok := flowByParam(c)
	if !ok {
		return
	}

	var payload paymentPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	payment := models.Payment{
		Method:     payload.Method,
		CardNumber: payload.CardNumber,
		CardName:   payload.CardName,
		Expiry:     payload.Expiry,
		CVV:        payload.CVV,
		UPIID:      payload.UPIID,
	}
	if err := flow.Pay(payment, payload.OTP); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": flow.State().String()})
}

// GET /api/flows/:id/receipt issues the receipt and spends the flow.
func GetFlowReceipt(c *gin.Context) {
	flow, id, ok := flowByParam(c)
	if !ok {
		return
	}

	receipt, err := flow.Receipt()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	flowStore.Remove(id)
	c.JSON(http.StatusOK, receipt)
}

// DELETE /api/flows/:id cancels the flow. A booking persisted before payment
// stays in the store.
func CancelFlow(c *gin.Context) {
	flow, id, ok := flowByParam(c)
	if !ok {
		return
	}

	if err := flow.Cancel(); err != nil {
		RespondDomainError(c, err)
		return
	}
	flowStore.Remove(id)
	c.JSON(http.StatusOK, gin.H{"state": flow.State().String()})
}

// POST /api/quotes is the stateless price preview for the booking form.
func GetQuote(c *gin.Context) {
	var payload draftPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	quote, err := newFlow(c).UpdateDraft(payload.toDraft())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}
