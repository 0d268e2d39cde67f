package storage

import (
	"context"

	"github.com/lib/pq"

	"eatplus/order-svc/internal/domain"
)

const restaurantColumns = `id, name, phone, email, address, COALESCE(image_url, ''), verified, available,
	delivery_fee, minimum_delivery_order, created_at`

func scanRestaurant(row interface{ Scan(...any) error }, r *domain.Restaurant) error {
	return row.Scan(&r.ID, &r.Name, &r.Phone, &r.Email, &r.Address, &r.ImageURL, &r.Verified, &r.Available,
		&r.DeliveryFee, &r.MinimumDeliveryOrder, &r.CreatedAt)
}

// ListRestaurants returns the restaurants customers can order from, newest
// first.
func (r *PostgresRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	ctx, cancel := withTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+restaurantColumns+`
		FROM restaurants
		WHERE verified AND available
		ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var rest domain.Restaurant
		if err := scanRestaurant(rows, &rest); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error) {
	ctx, cancel := withTimeout(ctx, queryTimeout)
	defer cancel()

	var rest domain.Restaurant
	row := r.DB.QueryRowContext(ctx, `SELECT `+restaurantColumns+` FROM restaurants WHERE id = $1`, id)
	if err := scanRestaurant(row, &rest); err != nil {
		return nil, notFound(err, "restaurant", id)
	}
	return &rest, nil
}

func (r *PostgresRepository) ListMenuSections(ctx context.Context, restaurantID int64) ([]domain.MenuSection, error) {
	ctx, cancel := withTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, name, "order"
		FROM menu_sections
		WHERE restaurant_id = $1
		ORDER BY "order", id`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sections := []domain.MenuSection{}
	for rows.Next() {
		var s domain.MenuSection
		if err := rows.Scan(&s.ID, &s.RestaurantID, &s.Name, &s.Order); err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

const itemColumns = `i.id, i.restaurant_id, COALESCE(i.menu_section_id, 0), i.name, i.description, COALESCE(i.image_url, ''),
	i.price, i.available, i.delivery, i.takeout, i."order"`

func scanItem(row interface{ Scan(...any) error }, i *domain.Item) error {
	return row.Scan(&i.ID, &i.RestaurantID, &i.MenuSectionID, &i.Name, &i.Description, &i.ImageURL,
		&i.Price, &i.Available, &i.Delivery, &i.Takeout, &i.Order)
}

// ListItems returns available items ordered by section and then by position
// within the section. A valid orderFor narrows the list to items offered for it.
func (r *PostgresRepository) ListItems(ctx context.Context, restaurantID int64, orderFor domain.OrderFor) ([]domain.Item, error) {
	ctx, cancel := withTimeout(ctx, queryTimeout)
	defer cancel()

	query := `SELECT ` + itemColumns + `
		FROM items i
		LEFT JOIN menu_sections ms ON ms.id = i.menu_section_id
		WHERE i.restaurant_id = $1 AND i.available`
	switch orderFor {
	case domain.Delivery:
		query += ` AND i.delivery`
	case domain.Pickup:
		query += ` AND i.takeout`
	}
	query += ` ORDER BY ms."order" NULLS LAST, i."order", i.id`

	rows, err := r.DB.QueryContext(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		var item domain.Item
		if err := scanItem(rows, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	ctx, cancel := withTimeout(ctx, queryTimeout)
	defer cancel()

	var item domain.Item
	row := r.DB.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items i WHERE i.id = $1`, id)
	if err := scanItem(row, &item); err != nil {
		return nil, notFound(err, "item", id)
	}
	return &item, nil
}

// ListOptions returns the item's options with their choices attached.
func (r *PostgresRepository) ListOptions(ctx context.Context, itemID int64) ([]domain.Option, error) {
	ctx, cancel := withTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, item_id, name, type
		FROM options
		WHERE item_id = $1
		ORDER BY id`, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	options := []domain.Option{}
	index := map[int64]int{}
	ids := []int64{}
	for rows.Next() {
		var opt domain.Option
		if err := rows.Scan(&opt.ID, &opt.ItemID, &opt.Name, &opt.Type); err != nil {
			return nil, err
		}
		opt.Choices = []domain.Choice{}
		index[opt.ID] = len(options)
		ids = append(ids, opt.ID)
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return options, nil
	}

	choiceRows, err := r.DB.QueryContext(ctx, `
		SELECT id, option_id, name, extra_charge, is_default
		FROM choices
		WHERE option_id = ANY($1)
		ORDER BY id`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer choiceRows.Close()

	for choiceRows.Next() {
		var c domain.Choice
		if err := choiceRows.Scan(&c.ID, &c.OptionID, &c.Name, &c.ExtraCharge, &c.IsDefault); err != nil {
			return nil, err
		}
		i := index[c.OptionID]
		options[i].Choices = append(options[i].Choices, c)
	}
	return options, choiceRows.Err()
}

// AcceptedPaymentMethods lists what the restaurant takes for the fulfillment
// type. An empty list means the restaurant has not configured any.
func (r *PostgresRepository) AcceptedPaymentMethods(ctx context.Context, restaurantID int64, orderFor domain.OrderFor) ([]domain.PaymentMethod, error) {
	ctx, cancel := withTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctx, `
		SELECT pm.id, pm.name
		FROM restaurant_payment_methods rpm
		JOIN payment_methods pm ON pm.id = rpm.payment_method_id
		WHERE rpm.restaurant_id = $1 AND rpm.order_for = $2
		ORDER BY pm.id`, restaurantID, int(orderFor))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var methods []domain.PaymentMethod
	for rows.Next() {
		var pm domain.PaymentMethod
		if err := rows.Scan(&pm.ID, &pm.Name); err != nil {
			return nil, err
		}
		methods = append(methods, pm)
	}
	return methods, rows.Err()
}
