//go:build integration

package storage

import (
	"context"
	"database/sql"
	"strconv"
	"sync"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"eatplus/order-svc/internal/domain"
	"eatplus/order-svc/internal/service"
)

func startPostgres(t *testing.T) *PostgresRepository {
	t.Helper()
	ctx := context.Background()

	pgC, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("eatplus"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewPostgresRepository(db)
	require.NoError(t, repo.Migrate())
	return repo
}

// seedMenu creates a listed restaurant with one item and returns their ids.
func seedMenu(t *testing.T, db *sql.DB) (restaurantID, itemID int64) {
	t.Helper()
	require.NoError(t, db.QueryRow(`
		INSERT INTO restaurants (name, verified, available, delivery_fee, minimum_delivery_order)
		VALUES ('Diner', TRUE, TRUE, 300, 1000) RETURNING id`).Scan(&restaurantID))
	require.NoError(t, db.QueryRow(`
		INSERT INTO items (restaurant_id, name, price) VALUES ($1, 'Burger', 1000) RETURNING id`,
		restaurantID).Scan(&itemID))
	return restaurantID, itemID
}

func TestIntegration_OpenCartIsUnique(t *testing.T) {
	repo := startPostgres(t)
	restaurantID, _ := seedMenu(t, repo.DB)
	key := domain.CartKey{RestaurantID: restaurantID, CustomerID: 5, OrderFor: domain.Pickup}

	const workers = 10
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		ids     = map[int64]bool{}
		created int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, isNew, err := repo.OpenCart(context.Background(), key)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			ids[order.ID] = true
			if isNew {
				created++
			}
		}()
	}
	wg.Wait()

	assert.Len(t, ids, 1)
	assert.Equal(t, 1, created)
}

func TestIntegration_CheckoutWritesOutbox(t *testing.T) {
	repo := startPostgres(t)
	restaurantID, itemID := seedMenu(t, repo.DB)
	ctx := context.Background()
	pricer := domain.TaxPricer{RateBasisPoints: 1300}

	cart, _, err := repo.OpenCart(ctx, domain.CartKey{RestaurantID: restaurantID, CustomerID: 5, OrderFor: domain.Pickup})
	require.NoError(t, err)

	item, err := repo.GetItem(ctx, itemID)
	require.NoError(t, err)
	_, err = repo.UpdateOrder(ctx, cart.ID, func(_ context.Context, _ service.OrderTx, o *domain.Order) error {
		if err := o.AddItem(*item, nil, 2); err != nil {
			return err
		}
		o.Recompute(pricer, domain.Fees{})
		return nil
	})
	require.NoError(t, err)

	restaurant, err := repo.GetRestaurant(ctx, restaurantID)
	require.NoError(t, err)
	placed, err := repo.UpdateOrder(ctx, cart.ID, func(ctx context.Context, tx service.OrderTx, o *domain.Order) error {
		n, err := tx.CountOutstanding(ctx, o.CustomerID, 0, o.ID)
		if err != nil {
			return err
		}
		require.Zero(t, n)
		o.Recompute(pricer, domain.Fees{})
		return o.Place(domain.CheckoutDetails{}, *restaurant, time.Now().UTC())
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPlaced, placed.Status)
	assert.Equal(t, int64(2000), placed.SubTotal)
	assert.Equal(t, int64(2260), placed.Total)

	reloaded, err := repo.GetOrder(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 1)
	assert.Equal(t, 2, reloaded.Items[0].Quantity)
	assert.NotNil(t, reloaded.PlacedAt)

	var events int
	require.NoError(t, repo.DB.QueryRow(`SELECT COUNT(*) FROM outbox WHERE aggregate_id = $1 AND type = 'order.placed'`,
		strconv.FormatInt(cart.ID, 10)).Scan(&events))
	assert.Equal(t, 1, events)

	latest, err := repo.LatestOrder(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, latest.ID)
}

func TestIntegration_OneOutstandingOrderPerCustomer(t *testing.T) {
	repo := startPostgres(t)
	restaurantID, itemID := seedMenu(t, repo.DB)
	ctx := context.Background()

	item, err := repo.GetItem(ctx, itemID)
	require.NoError(t, err)
	restaurant, err := repo.GetRestaurant(ctx, restaurantID)
	require.NoError(t, err)

	var carts []int64
	for _, orderFor := range []domain.OrderFor{domain.Pickup, domain.Delivery} {
		cart, _, err := repo.OpenCart(ctx, domain.CartKey{RestaurantID: restaurantID, CustomerID: 5, OrderFor: orderFor})
		require.NoError(t, err)
		_, err = repo.UpdateOrder(ctx, cart.ID, func(_ context.Context, _ service.OrderTx, o *domain.Order) error {
			return o.AddItem(*item, nil, 2)
		})
		require.NoError(t, err)
		carts = append(carts, cart.ID)
	}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		placed int
	)
	for _, id := range carts {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_, err := repo.UpdateOrder(ctx, id, func(ctx context.Context, tx service.OrderTx, o *domain.Order) error {
				n, err := tx.CountOutstanding(ctx, o.CustomerID, 0, o.ID)
				if err != nil {
					return err
				}
				if n > 0 {
					return domain.ErrOutstandingOrder
				}
				o.Recompute(domain.TaxPricer{}, domain.Fees{DeliveryFee: restaurant.DeliveryFee})
				return o.Place(domain.CheckoutDetails{Address: "1 Main St"}, *restaurant, time.Now().UTC())
			})
			if err == nil {
				mu.Lock()
				placed++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, domain.ErrOutstandingOrder)
		}(id)
	}
	wg.Wait()

	assert.Equal(t, 1, placed)
}
