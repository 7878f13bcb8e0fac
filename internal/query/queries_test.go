package query

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bid-market/internal/auction"
	"bid-market/internal/aucerrors"
	model "bid-market/internal/models"
	"bid-market/internal/favorites"
	"bid-market/internal/repository"
)

type queryFixture struct {
	repo    *repository.MemoryRepo
	engine  *auction.Engine
	ledger  *favorites.Ledger
	queries *Service
	clock   *fakeClock
}

func newQueryFixture(t *testing.T) *queryFixture {
	t.Helper()
	repo := repository.NewMemoryRepo()
	clock := &fakeClock{current: time.Now().UTC()}
	engine := auction.NewEngineWithClock(repo, clock.Now)
	return &queryFixture{
		repo:    repo,
		engine:  engine,
		ledger:  favorites.NewLedger(repo, engine),
		queries: NewService(repo, engine),
		clock:   clock,
	}
}

func (f *queryFixture) listing(t *testing.T, ownerID string, closingIn time.Duration) model.Product {
	t.Helper()
	product, err := f.engine.CreateListing(ownerID, "listing", "misc", "desc", f.clock.Now().Add(closingIn), 10)
	require.NoError(t, err)
	return product
}

// Tests ListActive filtering, ordering and pagination
func TestService_ListActive(t *testing.T) {
	t.Parallel()

	f := newQueryFixture(t)
	p1 := f.listing(t, "owner1", time.Hour)
	p2 := f.listing(t, "owner1", time.Minute) // will elapse
	p3 := f.listing(t, "owner2", time.Hour)
	p4 := f.listing(t, "owner2", time.Hour)
	require.NoError(t, f.engine.CloseListing(p4.ProductID, "owner2"))

	f.clock.Advance(30 * time.Minute)

	t.Run("expired_and_closed_filtered_out", func(t *testing.T) {
		products, err := f.queries.ListActive(0, 0)
		require.NoError(t, err)
		require.Len(t, products, 2)
		require.Equal(t, p1.ProductID, products[0].ProductID)
		require.Equal(t, p3.ProductID, products[1].ProductID)

		// the elapsed listing was persisted inactive by the read
		stored, err := f.repo.GetProduct(p2.ProductID)
		require.NoError(t, err)
		require.False(t, stored.IsActive)
	})

	t.Run("pagination", func(t *testing.T) {
		page, err := f.queries.ListActive(1, 1)
		require.NoError(t, err)
		require.Len(t, page, 1)
		require.Equal(t, p3.ProductID, page[0].ProductID)

		empty, err := f.queries.ListActive(10, 5)
		require.NoError(t, err)
		require.Empty(t, empty)
	})

	t.Run("negative_skip_treated_as_zero", func(t *testing.T) {
		products, err := f.queries.ListActive(-3, 0)
		require.NoError(t, err)
		require.Len(t, products, 2)
	})
}

// Tests GetListing
func TestService_GetListing(t *testing.T) {
	t.Parallel()

	f := newQueryFixture(t)
	product := f.listing(t, "owner1", time.Minute)
	require.NoError(t, f.engine.PlaceBid(product.ProductID, "user1", 25))

	t.Run("unknown_product", func(t *testing.T) {
		_, err := f.queries.GetListing("missing")
		require.True(t, errors.Is(err, aucerrors.ErrProductNotFound))
	})

	t.Run("first_read_after_elapse_flips_inactive", func(t *testing.T) {
		f.clock.Advance(2 * time.Minute)

		got, err := f.queries.GetListing(product.ProductID)
		require.NoError(t, err)
		require.False(t, got.IsActive)

		winner, ok := auction.Winner(got)
		require.True(t, ok)
		require.Equal(t, "user1", winner)
	})
}

// Tests MyListings bulk expiry
func TestService_MyListings(t *testing.T) {
	t.Parallel()

	f := newQueryFixture(t)
	p1 := f.listing(t, "owner1", time.Minute)
	p2 := f.listing(t, "owner1", time.Hour)
	f.listing(t, "owner2", time.Hour)

	f.clock.Advance(30 * time.Minute)

	products, err := f.queries.MyListings("owner1")
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Equal(t, p1.ProductID, products[0].ProductID)
	require.False(t, products[0].IsActive)
	require.Equal(t, p2.ProductID, products[1].ProductID)
	require.True(t, products[1].IsActive)

	// every stale listing found here transitioned to closed
	stored, err := f.repo.GetProduct(p1.ProductID)
	require.NoError(t, err)
	require.False(t, stored.IsActive)
}

// Tests MyFavorites: frozen at creation time, no expiry re-check
func TestService_MyFavorites(t *testing.T) {
	t.Parallel()

	f := newQueryFixture(t)
	p1 := f.listing(t, "owner1", time.Hour)
	p2 := f.listing(t, "owner1", time.Hour)
	require.NoError(t, f.ledger.Add("user1", p1.ProductID))
	require.NoError(t, f.ledger.Add("user1", p2.ProductID))

	require.NoError(t, f.engine.CloseListing(p1.ProductID, "owner1"))

	products, err := f.queries.MyFavorites("user1")
	require.NoError(t, err)
	require.Len(t, products, 2, "a favorite survives the listing closing")
	require.Equal(t, p1.ProductID, products[0].ProductID)
	require.False(t, products[0].IsActive)

	t.Run("empty_for_unknown_user", func(t *testing.T) {
		products, err := f.queries.MyFavorites("nobody")
		require.NoError(t, err)
		require.Empty(t, products)
	})
}

// Tests MyWonAuctions
func TestService_MyWonAuctions(t *testing.T) {
	t.Parallel()

	f := newQueryFixture(t)
	won := f.listing(t, "owner1", time.Hour)
	require.NoError(t, f.engine.PlaceBid(won.ProductID, "user1", 50))
	require.NoError(t, f.engine.CloseListing(won.ProductID, "owner1"))

	stillLeading := f.listing(t, "owner1", time.Hour)
	require.NoError(t, f.engine.PlaceBid(stillLeading.ProductID, "user1", 50))

	products, err := f.queries.MyWonAuctions("user1")
	require.NoError(t, err)
	require.Len(t, products, 1, "leading an open auction is not winning it")
	require.Equal(t, won.ProductID, products[0].ProductID)

	t.Run("empty_for_user_without_wins", func(t *testing.T) {
		products, err := f.queries.MyWonAuctions("user2")
		require.NoError(t, err)
		require.Empty(t, products)
	})
}

// fakeClock is a mutable clock for expiry-sensitive query tests
type fakeClock struct {
	mu      sync.Mutex
	current time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}
