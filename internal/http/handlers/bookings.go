package handlers

import (
	"net/http"
	"strconv"

	"carrental/internal/http/middleware"
	"carrental/internal/repositories"
	"carrental/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/bookings
func GetBookings(c *gin.Context) {
	list, err := (repositories.BookingRepository{}).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// DELETE /api/bookings/:id
func DeleteBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_id", "booking id must be a positive integer", nil)
		return
	}

	if err := (repositories.BookingRepository{}).DeleteByID(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted", "id": id})
}

// GET /api/bookings/:id/receipt returns the printable receipt (inline PDF).
func GetBookingReceiptPDF(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_id", "booking id must be a positive integer", nil)
		return
	}

	svc := services.ReceiptService{
		BookingRepo: repositories.BookingRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateReceipt(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
