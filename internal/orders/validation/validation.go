package validation

import (
	"errors"
	"unicode/utf8"

	"lanchonete-pedidos/pkg/models"
)

// OrderValidator enforces the structural shape of an order payload: required
// fields present, lengths within the column limits. It applies no business
// rules; quantity and price only have to be numbers.
type OrderValidator struct{}

func NewOrderValidator() *OrderValidator {
	return &OrderValidator{}
}

func (v *OrderValidator) Validate(req *models.OrderRequest) error {
	if req.Name == nil {
		return errors.New("name is required")
	}
	if utf8.RuneCountInString(*req.Name) > 100 {
		return errors.New("name must be at most 100 characters")
	}

	if req.Items == nil {
		return errors.New("items is required")
	}

	if req.Quantity == nil {
		return errors.New("quantity is required")
	}

	if req.Price == nil {
		return errors.New("price is required")
	}

	if req.Status != nil && utf8.RuneCountInString(*req.Status) > 20 {
		return errors.New("status must be at most 20 characters")
	}

	return nil
}
