package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"eatplus/order-svc/internal/domain"
	"eatplus/order-svc/internal/service"
	"eatplus/pkg/orderevents"
	"eatplus/pkg/tracing"
)

const orderColumns = `id, customer_id, restaurant_id, address, sub_total, total, order_for, status,
	payment_method_id, note, placed_at, created_at, updated_at`

// openCartAttempts bounds the insert-or-select loop in OpenCart. A retry is
// only needed when the conflicting cart is placed between the two statements.
const openCartAttempts = 3

func scanOrder(row interface{ Scan(...any) error }, o *domain.Order) error {
	var (
		paymentMethod sql.NullInt64
		placedAt      sql.NullTime
	)
	if err := row.Scan(&o.ID, &o.CustomerID, &o.RestaurantID, &o.Address, &o.SubTotal, &o.Total, &o.OrderFor, &o.Status,
		&paymentMethod, &o.Note, &placedAt, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return err
	}
	if paymentMethod.Valid {
		id := paymentMethod.Int64
		o.PaymentMethodID = &id
	}
	if placedAt.Valid {
		t := placedAt.Time
		o.PlacedAt = &t
	}
	return nil
}

// OpenCart returns the customer's OPEN order for the key, creating it if
// there is none. The partial unique index orders_open_cart_key makes the
// insert race safe.
func (r *PostgresRepository) OpenCart(ctx context.Context, key domain.CartKey) (*domain.Order, bool, error) {
	ctx, cancel := withTimeout(ctx, txTimeout)
	defer cancel()

	for attempt := 0; attempt < openCartAttempts; attempt++ {
		var id int64
		err := r.DB.QueryRowContext(ctx, `
			INSERT INTO orders (customer_id, restaurant_id, order_for, status)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (restaurant_id, customer_id, order_for) WHERE status = 1 DO NOTHING
			RETURNING id`,
			key.CustomerID, key.RestaurantID, int(key.OrderFor), int(domain.StatusOpen)).Scan(&id)
		switch {
		case err == nil:
			order, err := r.GetOrder(ctx, id)
			return order, true, err
		case !errors.Is(err, sql.ErrNoRows):
			return nil, false, err
		}

		err = r.DB.QueryRowContext(ctx, `
			SELECT id FROM orders
			WHERE restaurant_id = $1 AND customer_id = $2 AND order_for = $3 AND status = $4`,
			key.RestaurantID, key.CustomerID, int(key.OrderFor), int(domain.StatusOpen)).Scan(&id)
		switch {
		case err == nil:
			order, err := r.GetOrder(ctx, id)
			return order, false, err
		case !errors.Is(err, sql.ErrNoRows):
			return nil, false, err
		}
	}
	return nil, false, fmt.Errorf("open cart for customer %d: gave up after %d attempts", key.CustomerID, openCartAttempts)
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	ctx, cancel := withTimeout(ctx, queryTimeout)
	defer cancel()

	return loadOrder(ctx, r.DB, id, false)
}

func (r *PostgresRepository) OrderIDForLine(ctx context.Context, lineID int64) (int64, error) {
	ctx, cancel := withTimeout(ctx, queryTimeout)
	defer cancel()

	var orderID int64
	err := r.DB.QueryRowContext(ctx, `SELECT order_id FROM order_items WHERE id = $1`, lineID).Scan(&orderID)
	if err != nil {
		return 0, notFound(err, "order item", lineID)
	}
	return orderID, nil
}

// UpdateOrder is the unit of work for every order change. The order row is
// locked, fn mutates the aggregate, and lines, totals, status and outbox
// events are written in the same transaction.
func (r *PostgresRepository) UpdateOrder(ctx context.Context, id int64, fn service.OrderMutation) (*domain.Order, error) {
	ctx, cancel := withTimeout(ctx, txTimeout)
	defer cancel()

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	order, err := loadOrder(ctx, tx, id, true)
	if err != nil {
		return nil, err
	}
	wasOpen := order.Status == domain.StatusOpen
	before := make([]int64, 0, len(order.Items))
	for _, li := range order.Items {
		before = append(before, li.ID)
	}

	if err := fn(ctx, orderTx{tx: tx}, order); err != nil {
		return nil, err
	}

	if wasOpen {
		if err := saveLines(ctx, tx, order, before); err != nil {
			return nil, fmt.Errorf("save order items: %w", err)
		}
	}

	err = tx.QueryRowContext(ctx, `
		UPDATE orders
		SET address = $2, sub_total = $3, total = $4, status = $5, payment_method_id = $6, note = $7,
			placed_at = $8, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		order.ID, order.Address, order.SubTotal, order.Total, int(order.Status), order.PaymentMethodID, order.Note,
		order.PlacedAt).Scan(&order.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}

	if err := appendOutbox(ctx, tx, order.PendingEvents(), tracing.Traceparent(ctx)); err != nil {
		return nil, fmt.Errorf("write outbox: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	order.ClearEvents()
	return order, nil
}

// LatestOrder is the customer's most recently placed order.
func (r *PostgresRepository) LatestOrder(ctx context.Context, customerID int64) (*domain.Order, error) {
	ctx, cancel := withTimeout(ctx, queryTimeout)
	defer cancel()

	var id int64
	err := r.DB.QueryRowContext(ctx, `
		SELECT id FROM orders
		WHERE customer_id = $1 AND placed_at IS NOT NULL
		ORDER BY placed_at DESC, id DESC
		LIMIT 1`, customerID).Scan(&id)
	if err != nil {
		return nil, notFound(err, "latest order for customer", customerID)
	}
	return r.GetOrder(ctx, id)
}

// ListRestaurantOrders returns placed orders newest first, optionally
// narrowed to one status. Open carts are never included.
func (r *PostgresRepository) ListRestaurantOrders(ctx context.Context, restaurantID int64, status domain.Status) ([]domain.Order, error) {
	ctx, cancel := withTimeout(ctx, queryTimeout)
	defer cancel()

	query := `SELECT ` + orderColumns + ` FROM orders WHERE restaurant_id = $1 AND placed_at IS NOT NULL`
	args := []any{restaurantID}
	if status != 0 {
		query += ` AND status = $2`
		args = append(args, int(status))
	}
	query += ` ORDER BY placed_at DESC, id DESC`

	orders, err := queryOrders(ctx, r.DB, query, args...)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
	}
	lines, err := loadLines(ctx, r.DB, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = lines[orders[i].ID]
		if orders[i].Items == nil {
			orders[i].Items = []domain.OrderItem{}
		}
	}
	return orders, nil
}

func (r *PostgresRepository) CountPlacedSince(ctx context.Context, restaurantID int64, since time.Time) (int, error) {
	ctx, cancel := withTimeout(ctx, queryTimeout)
	defer cancel()

	var n int
	err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM orders
		WHERE restaurant_id = $1 AND placed_at >= $2`, restaurantID, since).Scan(&n)
	return n, err
}

// CountByStatusSince groups orders placed since the given instant by their
// current status name.
func (r *PostgresRepository) CountByStatusSince(ctx context.Context, restaurantID int64, since time.Time) (map[string]int64, error) {
	ctx, cancel := withTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctx, `
		SELECT status, COUNT(*) FROM orders
		WHERE restaurant_id = $1 AND placed_at >= $2
		GROUP BY status`, restaurantID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int64{}
	for rows.Next() {
		var (
			status domain.Status
			n      int64
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status.String()] = n
	}
	return counts, rows.Err()
}

type orderTx struct {
	tx *sql.Tx
}

// CountOutstanding takes a transaction scoped advisory lock on the customer
// before counting, so concurrent checkouts by one customer run one at a time.
func (t orderTx) CountOutstanding(ctx context.Context, customerID, restaurantID, excludeOrderID int64) (int, error) {
	if _, err := t.tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, customerID); err != nil {
		return 0, fmt.Errorf("lock customer %d: %w", customerID, err)
	}

	query := `SELECT COUNT(*) FROM orders WHERE customer_id = $1 AND status BETWEEN $2 AND $3 AND id <> $4`
	args := []any{customerID, int(domain.StatusPlaced), int(domain.StatusOnTheWay), excludeOrderID}
	if restaurantID != 0 {
		query += ` AND restaurant_id = $5`
		args = append(args, restaurantID)
	}

	var n int
	if err := t.tx.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func loadOrder(ctx context.Context, q queryer, id int64, forUpdate bool) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var order domain.Order
	if err := scanOrder(q.QueryRowContext(ctx, query, id), &order); err != nil {
		return nil, notFound(err, "order", id)
	}

	lines, err := loadLines(ctx, q, []int64{id})
	if err != nil {
		return nil, err
	}
	order.Items = lines[id]
	if order.Items == nil {
		order.Items = []domain.OrderItem{}
	}
	return &order, nil
}

func queryOrders(ctx context.Context, q queryer, query string, args ...any) ([]domain.Order, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var o domain.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

type lineRef struct {
	orderID int64
	index   int
}

// loadLines reads the lines of the given orders keyed by order id. Open
// carts price from the live catalog, placed orders from their snapshot.
func loadLines(ctx context.Context, q queryer, orderIDs []int64) (map[int64][]domain.OrderItem, error) {
	lines := map[int64][]domain.OrderItem{}
	if len(orderIDs) == 0 {
		return lines, nil
	}

	refs := map[int64]lineRef{}
	lineIDs, err := func() ([]int64, error) {
		rows, err := q.QueryContext(ctx, `
			SELECT oi.id, oi.order_id, oi.item_id, i.name,
				CASE WHEN o.status = 1 THEN i.price ELSE oi.unit_price END,
				oi.quantity, oi.sub_total
			FROM order_items oi
			JOIN orders o ON o.id = oi.order_id
			JOIN items i ON i.id = oi.item_id
			WHERE oi.order_id = ANY($1)
			ORDER BY oi.id`, pq.Array(orderIDs))
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		var ids []int64
		for rows.Next() {
			var li domain.OrderItem
			if err := rows.Scan(&li.ID, &li.OrderID, &li.ItemID, &li.ItemName, &li.UnitPrice, &li.Quantity, &li.SubTotal); err != nil {
				return nil, err
			}
			li.Choices = []domain.SelectedChoice{}
			refs[li.ID] = lineRef{orderID: li.OrderID, index: len(lines[li.OrderID])}
			lines[li.OrderID] = append(lines[li.OrderID], li)
			ids = append(ids, li.ID)
		}
		return ids, rows.Err()
	}()
	if err != nil {
		return nil, err
	}
	if len(lineIDs) == 0 {
		return lines, nil
	}

	rows, err := q.QueryContext(ctx, `
		SELECT oic.order_item_id, c.id, c.name,
			CASE WHEN o.status = 1 THEN c.extra_charge ELSE oic.extra_charge END
		FROM order_item_choices oic
		JOIN order_items oi ON oi.id = oic.order_item_id
		JOIN orders o ON o.id = oi.order_id
		JOIN choices c ON c.id = oic.choice_id
		WHERE oic.order_item_id = ANY($1)
		ORDER BY oic.order_item_id, c.id`, pq.Array(lineIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			lineID int64
			c      domain.SelectedChoice
		)
		if err := rows.Scan(&lineID, &c.ChoiceID, &c.Name, &c.ExtraCharge); err != nil {
			return nil, err
		}
		ref := refs[lineID]
		li := &lines[ref.orderID][ref.index]
		li.Choices = append(li.Choices, c)
	}
	return lines, rows.Err()
}

// saveLines diffs the cart against the line ids it was loaded with: missing
// lines are deleted, lines without an id inserted, the rest updated. Prices
// are written through so the snapshot matches what the customer saw.
func saveLines(ctx context.Context, tx *sql.Tx, order *domain.Order, before []int64) error {
	present := make(map[int64]bool, len(order.Items))
	for _, li := range order.Items {
		if li.ID != 0 {
			present[li.ID] = true
		}
	}
	var removed []int64
	for _, id := range before {
		if !present[id] {
			removed = append(removed, id)
		}
	}
	if len(removed) > 0 {
		if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = $1 AND id = ANY($2)`,
			order.ID, pq.Array(removed)); err != nil {
			return err
		}
	}

	var kept []int64
	for i := range order.Items {
		li := &order.Items[i]
		if li.ID != 0 {
			if _, err := tx.ExecContext(ctx, `
				UPDATE order_items SET quantity = $2, unit_price = $3, sub_total = $4 WHERE id = $1`,
				li.ID, li.Quantity, li.UnitPrice, li.SubTotal); err != nil {
				return err
			}
			kept = append(kept, li.ID)
			continue
		}

		err := tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, item_id, quantity, choice_key, unit_price, sub_total)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			order.ID, li.ItemID, li.Quantity, domain.ChoiceKey(li.Choices), li.UnitPrice, li.SubTotal).Scan(&li.ID)
		if err != nil {
			return err
		}
		li.OrderID = order.ID
		for _, c := range li.Choices {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO order_item_choices (order_item_id, choice_id, extra_charge) VALUES ($1, $2, $3)`,
				li.ID, c.ChoiceID, c.ExtraCharge); err != nil {
				return err
			}
		}
	}

	if len(kept) > 0 {
		if _, err := tx.ExecContext(ctx, `
			UPDATE order_item_choices oic SET extra_charge = c.extra_charge
			FROM choices c
			WHERE c.id = oic.choice_id AND oic.order_item_id = ANY($1)`, pq.Array(kept)); err != nil {
			return err
		}
	}
	return nil
}

func appendOutbox(ctx context.Context, tx *sql.Tx, events []domain.Event, traceparent string) error {
	for _, ev := range events {
		payload, err := json.Marshal(ev)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO outbox (aggregate_type, aggregate_id, type, payload, traceparent)
			VALUES ($1, $2, $3, $4, $5)`,
			orderevents.AggregateOrder, ev.AggregateID(), ev.Type, string(payload), traceparent); err != nil {
			return err
		}
	}
	return nil
}
