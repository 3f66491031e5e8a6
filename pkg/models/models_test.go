package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func int64Ptr(i int64) *int64     { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestToOrderDefaults(t *testing.T) {
	req := OrderRequest{
		Name:     strPtr("Maria"),
		Items:    []string{"burger", "fries"},
		Quantity: intPtr(2),
		Price:    floatPtr(19.90),
	}

	order := req.ToOrder()

	assert.Equal(t, int64(0), order.ID)
	assert.Equal(t, "Maria", order.Name)
	assert.Equal(t, []string{"burger", "fries"}, order.Items)
	assert.Equal(t, 2, order.Quantity)
	assert.Equal(t, 19.90, order.Price)
	assert.Equal(t, DefaultStatus, order.Status)
	assert.NotNil(t, order.Extras)
	assert.Empty(t, order.Extras)
}

func TestToOrderIgnoresClientID(t *testing.T) {
	req := OrderRequest{
		ID:       int64Ptr(42),
		Name:     strPtr("Maria"),
		Items:    []string{"burger"},
		Quantity: intPtr(1),
		Price:    floatPtr(9.50),
	}

	order := req.ToOrder()
	assert.Equal(t, int64(0), order.ID)
}

func TestToOrderKeepsExplicitFields(t *testing.T) {
	req := OrderRequest{
		Name:     strPtr("João"),
		Items:    []string{"pizza"},
		Quantity: intPtr(3),
		Price:    floatPtr(45.00),
		Extras:   []string{"extra cheese"},
		Status:   strPtr("Preparing"),
	}

	order := req.ToOrder()

	assert.Equal(t, []string{"extra cheese"}, order.Extras)
	assert.Equal(t, "Preparing", order.Status)
}

func TestToOrderNormalizesNilItems(t *testing.T) {
	req := OrderRequest{
		Name:     strPtr("Maria"),
		Quantity: intPtr(1),
		Price:    floatPtr(5.00),
	}

	order := req.ToOrder()

	assert.NotNil(t, order.Items)
	assert.Empty(t, order.Items)
}
