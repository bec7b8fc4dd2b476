package checkout

import (
	"context"
	"errors"
	"io"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/MostafaGhazall/E-commerce-Website/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrEmptyCart is returned when no cart line resolves to an existing
// product, so there is nothing to order.
var ErrEmptyCart = errors.New("cart is empty")

// FieldErrors maps form field names to validation messages. It aborts the
// checkout without mutating any controller.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var phonePattern = regexp.MustCompile(`^\+?[0-9\s\-()]{7,20}$`)

// ShippingInput carries the checkout form. It is prefilled from the user
// profile but independently editable before submission.
type ShippingInput struct {
	Name          string `validate:"required"`
	Email         string `validate:"required,email"`
	Address       string `validate:"required"`
	City          string `validate:"required"`
	Region        string
	PostalCode    string
	Country       string `validate:"required"`
	Phone         string `validate:"required,phone"`
	PaymentMethod string `validate:"required"`
}

type cartController interface {
	Items() []domain.CartLine
	Clear() error
}

type catalogController interface {
	ProductByID(id string) (*domain.Product, bool)
}

type orderController interface {
	Add(order domain.Order) error
}

type profileController interface {
	Get() domain.UserProfile
}

// Service assembles orders out of the cart, catalog and profile controllers.
type Service struct {
	cart     cartController
	catalog  catalogController
	orders   orderController
	profile  profileController
	validate *validator.Validate
	logger   *log.Logger
}

func New(cart cartController, catalog catalogController, orders orderController, profile profileController, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	v := validator.New()
	// Registration only fails for a nil func or empty tag.
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return &Service{cart: cart, catalog: catalog, orders: orders, profile: profile, validate: v, logger: logger}
}

// PrefillFromProfile seeds a checkout form from the stored user profile.
func (s *Service) PrefillFromProfile() ShippingInput {
	p := s.profile.Get()
	return ShippingInput{
		Name:       strings.TrimSpace(p.FirstName + " " + p.LastName),
		Email:      p.Email,
		Address:    p.Address,
		City:       p.City,
		Region:     p.Region,
		PostalCode: p.PostalCode,
		Country:    p.Country,
		Phone:      p.Phone,
	}
}

// PlaceOrder validates the shipping form, freezes the current cart into an
// immutable order, appends it to the history and clears the cart. On
// validation failure it returns FieldErrors and mutates nothing. Cart lines
// whose product no longer exists are silently dropped.
func (s *Service) PlaceOrder(ctx context.Context, in ShippingInput) (*domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if errs := s.validateInput(in); len(errs) > 0 {
		return nil, errs
	}

	var (
		items []domain.OrderLine
		total float64
	)
	for _, line := range s.cart.Items() {
		product, ok := s.catalog.ProductByID(line.ProductID)
		if !ok {
			s.logger.Printf("checkout: dropping line, product gone id=%s", line.ProductID)
			continue
		}
		subtotal := product.Price * float64(line.Quantity)
		total += subtotal
		items = append(items, domain.OrderLine{
			ProductID: line.ProductID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  line.Quantity,
			Size:      line.Size,
			Color:     line.Color,
			ColorName: line.ColorName,
			Image:     line.Image,
		})
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	order := domain.Order{
		ID:    uuid.NewString(),
		Date:  time.Now(),
		Items: items,
		Total: total,
		Shipping: domain.ShippingInfo{
			Name:          in.Name,
			Email:         in.Email,
			Address:       in.Address,
			City:          in.City,
			Region:        in.Region,
			PostalCode:    in.PostalCode,
			Country:       in.Country,
			Phone:         in.Phone,
			PaymentMethod: in.PaymentMethod,
		},
	}

	if err := s.orders.Add(order); err != nil {
		return nil, err
	}
	if err := s.cart.Clear(); err != nil {
		return nil, err
	}
	s.logger.Printf("checkout: placed order id=%s lines=%d total=%.2f", order.ID, len(items), total)
	return &order, nil
}

func (s *Service) validateInput(in ShippingInput) FieldErrors {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"form": err.Error()}
	}
	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = "is required"
		case "email":
			out[field] = "must be a valid email address"
		case "phone":
			out[field] = "must be a valid phone number"
		default:
			out[field] = "is invalid"
		}
	}
	return out
}
