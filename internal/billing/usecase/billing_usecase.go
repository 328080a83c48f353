package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"cropadvisor-backend/internal/apperr"
	billingdto "cropadvisor-backend/internal/billing/dto"
	userdomain "cropadvisor-backend/internal/user/domain"
	"cropadvisor-backend/internal/user/repository"
	"cropadvisor-backend/pkg/fcm"
	"cropadvisor-backend/pkg/payment"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// paymentCreditGrant is added to the balance on every confirmed payment.
const paymentCreditGrant = 50

// PaymentGateway is the external order API boundary. Implemented by
// pkg/payment; faked in tests.
type PaymentGateway interface {
	CreateOrder(amount int64, currency, receipt string, notes map[string]string) (*payment.Order, error)
	FetchOrder(orderID string) (*payment.Order, error)
}

// PushSender delivers a post-upgrade notification to the account's device.
type PushSender interface {
	SendToDevice(ctx context.Context, token string, data fcm.NotificationData) error
}

// BillingUsecase creates gateway orders and applies verified payments to
// the entitlement fields of an account.
type BillingUsecase interface {
	CreateOrder(req *billingdto.CreateOrderRequest) (*payment.Order, error)
	ValidatePayment(ctx context.Context, req *billingdto.ValidatePaymentRequest) (*userdomain.User, error)
}

type billingUsecase struct {
	userRepo repository.UserRepository
	gateway  PaymentGateway
	push     PushSender // nil when FCM is not configured
	secret   string
	now      func() time.Time
}

// NewBillingUsecase creates a new instance of billingUsecase. secret is the
// gateway shared secret used for signature verification.
func NewBillingUsecase(userRepo repository.UserRepository, gateway PaymentGateway, push PushSender, secret string) BillingUsecase {
	return &billingUsecase{
		userRepo: userRepo,
		gateway:  gateway,
		push:     push,
		secret:   secret,
		now:      time.Now,
	}
}

func (u *billingUsecase) CreateOrder(req *billingdto.CreateOrderRequest) (*payment.Order, error) {
	order, err := u.gateway.CreateOrder(req.Amount*100, req.Currency, req.Receipt, map[string]string{
		"userId":   req.UserID,
		"planName": req.PlanName,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrUpstream, err.Error())
	}
	return order, nil
}

// ValidatePayment verifies the gateway signature before touching the
// ledger. On a mismatch nothing is written. On success the plan, the
// subscription reference, a one-calendar-month expiry and the +50 credit
// grant land in a single store update.
func (u *billingUsecase) ValidatePayment(ctx context.Context, req *billingdto.ValidatePaymentRequest) (*userdomain.User, error) {
	if !u.verifySignature(req.OrderID, req.PaymentID, req.Signature) {
		return nil, apperr.Wrap(apperr.ErrInvalidSignature, "transaction is not legit")
	}

	order, err := u.gateway.FetchOrder(req.OrderID)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrUpstream, err.Error())
	}

	userID := order.Notes["userId"]
	planName := order.Notes["planName"]
	if userID == "" || planName == "" {
		return nil, apperr.Wrap(apperr.ErrValidation, "order notes missing userId or planName")
	}

	planExpiresAt := u.now().AddDate(0, 1, 0)
	user, err := u.userRepo.UpdateFields(userID, map[string]interface{}{
		"plan":            planName,
		"subscription_id": req.PaymentID,
		"plan_expires_at": planExpiresAt,
		"credits":         gorm.Expr("credits + ?", paymentCreditGrant),
	})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Wrap(apperr.ErrNotFound, "user not found")
	}

	u.notifyUpgrade(ctx, user)
	return user, nil
}

func (u *billingUsecase) verifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(u.secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// notifyUpgrade is best effort: a push failure never fails the payment.
func (u *billingUsecase) notifyUpgrade(ctx context.Context, user *userdomain.User) {
	if u.push == nil || user.FCMToken == nil || *user.FCMToken == "" {
		return
	}
	err := u.push.SendToDevice(ctx, *user.FCMToken, fcm.NotificationData{
		Title: "Plan upgraded",
		Body:  "Your " + user.Plan + " plan is now active.",
		Data:  map[string]string{"plan": user.Plan},
	})
	if err != nil {
		log.WithError(err).WithField("userId", user.ID).Warn("failed to send upgrade notification")
	}
}
