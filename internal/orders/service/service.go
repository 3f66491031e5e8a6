package service

import (
	"context"
	"errors"
	"fmt"

	"lanchonete-pedidos/internal/orders/core"
	"lanchonete-pedidos/pkg/logger"
	"lanchonete-pedidos/pkg/models"
)

// OrderService orchestrates the CRUD lifecycle over a repository. It holds
// no state of its own; everything lives in the backing store.
type OrderService struct {
	repo   core.Repository
	logger *logger.Logger
}

func NewOrderService(repo core.Repository, logger *logger.Logger) *OrderService {
	return &OrderService{
		repo:   repo,
		logger: logger,
	}
}

// Create inserts the order and returns it with the id the persistence layer
// assigned. Any id in the request was already discarded by ToOrder.
func (s *OrderService) Create(ctx context.Context, req *models.OrderRequest, requestID string) (models.Order, error) {
	order := req.ToOrder()

	orderID, err := s.repo.Create(ctx, &order)
	if err != nil {
		s.logger.Error(requestID, "order_creation_failed", "Failed to create order", err)
		return models.Order{}, fmt.Errorf("failed to create order: %w", err)
	}
	order.ID = orderID

	s.logger.Debug(requestID, "order_created", fmt.Sprintf("Order created with ID %d", orderID))
	return order, nil
}

func (s *OrderService) List(ctx context.Context, requestID string) ([]models.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error(requestID, "order_list_failed", "Failed to list orders", err)
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	if orders == nil {
		orders = []models.Order{}
	}

	return orders, nil
}

func (s *OrderService) Get(ctx context.Context, id int64, requestID string) (models.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrOrderNotFound) {
			return models.Order{}, core.ErrOrderNotFound
		}
		s.logger.Error(requestID, "order_get_failed", "Failed to get order", err)
		return models.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	return order, nil
}

// Update replaces every field of the stored order except the id. The
// returned order carries the path id regardless of any id in the payload.
func (s *OrderService) Update(ctx context.Context, id int64, req *models.OrderRequest, requestID string) (models.Order, error) {
	order := req.ToOrder()

	if err := s.repo.Update(ctx, id, &order); err != nil {
		if errors.Is(err, core.ErrOrderNotFound) {
			return models.Order{}, core.ErrOrderNotFound
		}
		s.logger.Error(requestID, "order_update_failed", "Failed to update order", err)
		return models.Order{}, fmt.Errorf("failed to update order: %w", err)
	}
	order.ID = id

	s.logger.Debug(requestID, "order_updated", fmt.Sprintf("Order %d updated", id))
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id int64, requestID string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, core.ErrOrderNotFound) {
			return core.ErrOrderNotFound
		}
		s.logger.Error(requestID, "order_delete_failed", "Failed to delete order", err)
		return fmt.Errorf("failed to delete order: %w", err)
	}

	s.logger.Debug(requestID, "order_deleted", fmt.Sprintf("Order %d deleted", id))
	return nil
}
