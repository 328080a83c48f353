package delivery

import (
	"errors"
	"net/http"

	"cropadvisor-backend/internal/apperr"
	billingdto "cropadvisor-backend/internal/billing/dto"
	"cropadvisor-backend/internal/billing/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type BillingHandler struct {
	billingUsecase usecase.BillingUsecase
}

func NewBillingHandler(billingUsecase usecase.BillingUsecase) *BillingHandler {
	return &BillingHandler{
		billingUsecase: billingUsecase,
	}
}

func (h *BillingHandler) CreateOrder(c *gin.Context) {
	var req billingdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	order, err := h.billingUsecase.CreateOrder(&req)
	if err != nil {
		log.WithError(err).Error("order creation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "error"})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *BillingHandler) ValidatePayment(c *gin.Context) {
	var req billingdto.ValidatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	user, err := h.billingUsecase.ValidatePayment(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidSignature) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Transaction is not legit"})
			return
		}
		log.WithError(err).Error("payment validation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":       "Payment successful! Your plan has been upgraded.",
		"user":      user,
		"orderId":   req.OrderID,
		"paymentId": req.PaymentID,
	})
}
