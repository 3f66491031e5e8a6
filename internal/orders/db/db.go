package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"lanchonete-pedidos/internal/orders/core"
	"lanchonete-pedidos/pkg/logger"
	"lanchonete-pedidos/pkg/models"
)

// OrderDB persists orders in the pedidos table. Item lists travel as JSON
// text inside the relational row; prices are fixed to two fractional digits
// on the way in.
type OrderDB struct {
	dbPool *pgxpool.Pool
	logger *logger.Logger
}

func NewOrderDB(dbPool *pgxpool.Pool, logger *logger.Logger) *OrderDB {
	return &OrderDB{
		dbPool: dbPool,
		logger: logger,
	}
}

func (d *OrderDB) Create(ctx context.Context, order *models.Order) (int64, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return 0, fmt.Errorf("failed to encode items: %w", err)
	}

	extras, err := marshalExtras(order.Extras)
	if err != nil {
		return 0, err
	}

	var orderID int64
	err = d.dbPool.QueryRow(ctx, `
        INSERT INTO pedidos (nome, produto, quantidade, valor, adicionais, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `, order.Name, string(items), order.Quantity, priceParam(order.Price), extras, order.Status).Scan(&orderID)
	if err != nil {
		return 0, err
	}

	return orderID, nil
}

func (d *OrderDB) List(ctx context.Context) ([]models.Order, error) {
	rows, err := d.dbPool.Query(ctx, `
        SELECT id, nome, produto::text, quantidade, valor::text, adicionais::text, status
        FROM pedidos
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, rows.Err()
}

func (d *OrderDB) GetByID(ctx context.Context, id int64) (models.Order, error) {
	row := d.dbPool.QueryRow(ctx, `
        SELECT id, nome, produto::text, quantidade, valor::text, adicionais::text, status
        FROM pedidos
        WHERE id = $1
    `, id)

	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Order{}, core.ErrOrderNotFound
		}
		return models.Order{}, err
	}

	return order, nil
}

// Update replaces every field of the row except the id. The affected-rows
// count folds the existence check into the mutation itself, so there is no
// window between checking and writing.
func (d *OrderDB) Update(ctx context.Context, id int64, order *models.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}

	extras, err := marshalExtras(order.Extras)
	if err != nil {
		return err
	}

	ct, err := d.dbPool.Exec(ctx, `
        UPDATE pedidos
        SET nome = $1, produto = $2, quantidade = $3, valor = $4, adicionais = $5, status = $6
        WHERE id = $7
    `, order.Name, string(items), order.Quantity, priceParam(order.Price), extras, order.Status, id)
	if err != nil {
		return err
	}

	if ct.RowsAffected() == 0 {
		return core.ErrOrderNotFound
	}

	return nil
}

func (d *OrderDB) Delete(ctx context.Context, id int64) error {
	ct, err := d.dbPool.Exec(ctx, `DELETE FROM pedidos WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if ct.RowsAffected() == 0 {
		return core.ErrOrderNotFound
	}

	return nil
}

// rowScanner covers both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (models.Order, error) {
	var (
		order  models.Order
		items  string
		extras *string
		price  string
	)

	err := row.Scan(&order.ID, &order.Name, &items, &order.Quantity, &price, &extras, &order.Status)
	if err != nil {
		return models.Order{}, err
	}

	order.Items, err = decodeList(&items)
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to decode items for order %d: %w", order.ID, err)
	}

	order.Extras, err = decodeList(extras)
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to decode extras for order %d: %w", order.ID, err)
	}

	order.Price, err = decodePrice(price)
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to decode price for order %d: %w", order.ID, err)
	}

	return order, nil
}

// decodeList turns stored JSON text back into a slice. NULL columns and
// stored JSON nulls both read back as an empty slice, never as a missing
// field.
func decodeList(stored *string) ([]string, error) {
	if stored == nil || *stored == "" {
		return []string{}, nil
	}

	var list []string
	if err := json.Unmarshal([]byte(*stored), &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []string{}
	}

	return list, nil
}

func decodePrice(stored string) (float64, error) {
	dec, err := decimal.NewFromString(stored)
	if err != nil {
		return 0, err
	}
	return dec.InexactFloat64(), nil
}

// priceParam renders the price with exactly two fractional digits for the
// NUMERIC(10,2) column.
func priceParam(price float64) string {
	return decimal.NewFromFloat(price).Round(2).StringFixed(2)
}

// marshalExtras keeps the column NULL when there are no extras, matching the
// rows the original service wrote.
func marshalExtras(extras []string) (*string, error) {
	if len(extras) == 0 {
		return nil, nil
	}

	encoded, err := json.Marshal(extras)
	if err != nil {
		return nil, fmt.Errorf("failed to encode extras: %w", err)
	}

	s := string(encoded)
	return &s, nil
}
