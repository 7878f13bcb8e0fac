package repository

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bid-market/internal/aucerrors"
	model "bid-market/internal/models"
)

// Helper to create a new User
func newUser(userID, username string) model.User {
	return model.User{
		UserID:       userID,
		Username:     username,
		PasswordHash: "hash-" + username,
	}
}

// Helper to create a new Product
func newProduct(productID, ownerID string, currentBid float64, closingAt time.Time) model.Product {
	return model.Product{
		ProductID:   productID,
		Title:       fmt.Sprintf("%s title", productID),
		Category:    "misc",
		Description: fmt.Sprintf("%s description", productID),
		ClosingAt:   closingAt,
		CurrentBid:  currentBid,
		OwnerID:     ownerID,
		IsActive:    true,
	}
}

// Test CreateUser
func TestMemoryRepo_CreateUser(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateUser(newUser("user1", "alice")))

	t.Run("duplicate_username", func(t *testing.T) {
		err := repo.CreateUser(newUser("user2", "alice"))
		require.Error(t, err)
		require.True(t, errors.Is(err, aucerrors.ErrUsernameTaken))
	})

	t.Run("lookup_by_id_and_username", func(t *testing.T) {
		byID, err := repo.GetUserByID("user1")
		require.NoError(t, err)
		require.Equal(t, "alice", byID.Username)

		byName, err := repo.GetUserByUsername("alice")
		require.NoError(t, err)
		require.Equal(t, "user1", byName.UserID)
	})

	t.Run("unknown_user", func(t *testing.T) {
		_, err := repo.GetUserByID("missing")
		require.True(t, errors.Is(err, aucerrors.ErrUserNotFound))

		_, err = repo.GetUserByUsername("missing")
		require.True(t, errors.Is(err, aucerrors.ErrUserNotFound))
	})
}

// Test product insert/get/update with version control
func TestMemoryRepo_ProductVersioning(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	closing := time.Now().Add(time.Hour)
	require.NoError(t, repo.InsertProduct(newProduct("p1", "owner1", 10, closing)))

	t.Run("insert_sets_version_one", func(t *testing.T) {
		p, err := repo.GetProduct("p1")
		require.NoError(t, err)
		require.Equal(t, int64(1), p.Version)
	})

	t.Run("update_bumps_version", func(t *testing.T) {
		p, err := repo.GetProduct("p1")
		require.NoError(t, err)

		p.CurrentBid = 15
		p.LeadingBidderID = "user1"
		require.NoError(t, repo.UpdateProduct(p))

		after, err := repo.GetProduct("p1")
		require.NoError(t, err)
		require.Equal(t, int64(2), after.Version)
		require.Equal(t, 15.0, after.CurrentBid)
		require.Equal(t, "user1", after.LeadingBidderID)
	})

	t.Run("stale_version_is_rejected", func(t *testing.T) {
		p, err := repo.GetProduct("p1")
		require.NoError(t, err)

		stale := p
		stale.Version = p.Version - 1
		stale.CurrentBid = 999

		err = repo.UpdateProduct(stale)
		require.True(t, errors.Is(err, aucerrors.ErrVersionConflict))

		unchanged, err := repo.GetProduct("p1")
		require.NoError(t, err)
		require.Equal(t, p.CurrentBid, unchanged.CurrentBid)
	})

	t.Run("update_missing_product", func(t *testing.T) {
		err := repo.UpdateProduct(newProduct("missing", "owner1", 10, closing))
		require.True(t, errors.Is(err, aucerrors.ErrProductNotFound))
	})

	t.Run("get_missing_product", func(t *testing.T) {
		_, err := repo.GetProduct("missing")
		require.True(t, errors.Is(err, aucerrors.ErrProductNotFound))
	})
}

// Test concurrent versioned updates never lose a write
func TestMemoryRepo_ConcurrentVersionedUpdates(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	closing := time.Now().Add(time.Hour)
	require.NoError(t, repo.InsertProduct(newProduct("p1", "owner1", 0, closing)))

	var wg sync.WaitGroup
	concurrentCount := 50
	applied := make(chan struct{}, concurrentCount)

	for i := 0; i < concurrentCount; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			// retry loop mirrors how the engine consumes this API
			for {
				p, err := repo.GetProduct("p1")
				require.NoError(t, err)
				p.CurrentBid = p.CurrentBid + 1
				p.LeadingBidderID = fmt.Sprintf("user-%d", i)
				err = repo.UpdateProduct(p)
				if err == nil {
					applied <- struct{}{}
					return
				}
				require.True(t, errors.Is(err, aucerrors.ErrVersionConflict))
			}
		}()
	}

	wg.Wait()
	close(applied)
	require.Len(t, applied, concurrentCount)

	final, err := repo.GetProduct("p1")
	require.NoError(t, err)
	require.Equal(t, float64(concurrentCount), final.CurrentBid)
	require.Equal(t, int64(concurrentCount+1), final.Version)
}

// Test product listings
func TestMemoryRepo_ProductListings(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	closing := time.Now().Add(time.Hour)
	require.NoError(t, repo.InsertProduct(newProduct("p1", "owner1", 10, closing)))
	require.NoError(t, repo.InsertProduct(newProduct("p2", "owner2", 20, closing)))
	require.NoError(t, repo.InsertProduct(newProduct("p3", "owner1", 30, closing)))

	t.Run("list_all_in_insertion_order", func(t *testing.T) {
		products, err := repo.ListProducts()
		require.NoError(t, err)
		require.Len(t, products, 3)
		require.Equal(t, "p1", products[0].ProductID)
		require.Equal(t, "p2", products[1].ProductID)
		require.Equal(t, "p3", products[2].ProductID)
	})

	t.Run("list_by_owner", func(t *testing.T) {
		products, err := repo.ListProductsByOwner("owner1")
		require.NoError(t, err)
		require.Len(t, products, 2)
		require.Equal(t, "p1", products[0].ProductID)
		require.Equal(t, "p3", products[1].ProductID)
	})

	t.Run("won_by_requires_closed_and_leading", func(t *testing.T) {
		p, err := repo.GetProduct("p2")
		require.NoError(t, err)
		p.LeadingBidderID = "winner"
		require.NoError(t, repo.UpdateProduct(p))

		won, err := repo.ListProductsWonBy("winner")
		require.NoError(t, err)
		require.Empty(t, won, "still active listings are never won")

		p, err = repo.GetProduct("p2")
		require.NoError(t, err)
		p.IsActive = false
		require.NoError(t, repo.UpdateProduct(p))

		won, err = repo.ListProductsWonBy("winner")
		require.NoError(t, err)
		require.Len(t, won, 1)
		require.Equal(t, "p2", won[0].ProductID)
	})
}

// Test favorites uniqueness, removal and cascade deletes
func TestMemoryRepo_Favorites(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	closing := time.Now().Add(time.Hour)
	require.NoError(t, repo.CreateUser(newUser("user1", "alice")))
	require.NoError(t, repo.InsertProduct(newProduct("p1", "owner1", 10, closing)))
	require.NoError(t, repo.InsertProduct(newProduct("p2", "owner1", 10, closing)))

	fav := model.Favorite{UserID: "user1", ProductID: "p1"}

	t.Run("insert_and_lookup", func(t *testing.T) {
		require.NoError(t, repo.InsertFavorite(fav))

		exists, err := repo.FavoriteExists("user1", "p1")
		require.NoError(t, err)
		require.True(t, exists)
	})

	t.Run("duplicate_pair_rejected", func(t *testing.T) {
		err := repo.InsertFavorite(fav)
		require.True(t, errors.Is(err, aucerrors.ErrAlreadyFavorited))
	})

	t.Run("list_joined_products", func(t *testing.T) {
		require.NoError(t, repo.InsertFavorite(model.Favorite{UserID: "user1", ProductID: "p2"}))

		products, err := repo.ListFavoriteProducts("user1")
		require.NoError(t, err)
		require.Len(t, products, 2)
		require.Equal(t, "p1", products[0].ProductID)
		require.Equal(t, "p2", products[1].ProductID)
	})

	t.Run("delete_pair", func(t *testing.T) {
		require.NoError(t, repo.DeleteFavorite("user1", "p2"))

		err := repo.DeleteFavorite("user1", "p2")
		require.True(t, errors.Is(err, aucerrors.ErrFavoriteNotFound))
	})

	t.Run("cascade_on_product_delete", func(t *testing.T) {
		require.NoError(t, repo.DeleteProduct("p1"))

		exists, err := repo.FavoriteExists("user1", "p1")
		require.NoError(t, err)
		require.False(t, exists)
	})

	t.Run("cascade_on_user_delete", func(t *testing.T) {
		require.NoError(t, repo.InsertProduct(newProduct("p3", "owner1", 10, closing)))
		require.NoError(t, repo.InsertFavorite(model.Favorite{UserID: "user1", ProductID: "p3"}))

		require.NoError(t, repo.DeleteUser("user1"))

		exists, err := repo.FavoriteExists("user1", "p3")
		require.NoError(t, err)
		require.False(t, exists)
	})
}

// Test concurrent favorite inserts on the same pair: exactly one wins
func TestMemoryRepo_ConcurrentFavoriteInserts(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.InsertProduct(newProduct("p1", "owner1", 10, time.Now().Add(time.Hour))))

	var wg sync.WaitGroup
	var successes, duplicates int64
	var mu sync.Mutex

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.InsertFavorite(model.Favorite{UserID: "user1", ProductID: "p1"})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
			} else if errors.Is(err, aucerrors.ErrAlreadyFavorited) {
				duplicates++
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int64(1), successes)
	require.Equal(t, int64(19), duplicates)
}
