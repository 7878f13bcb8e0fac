package repository

import (
	"fmt"
	"sync"

	"bid-market/internal/aucerrors"
	model "bid-market/internal/models"
)

// MarketDB defines the record store interface for the marketplace.
// Product writes go through UpdateProduct, which performs a versioned
// compare-and-swap so that concurrent read-modify-write cycles on the
// same row cannot lose updates.
type MarketDB interface {
	CreateUser(user model.User) error
	GetUserByID(userID string) (model.User, error)
	GetUserByUsername(username string) (model.User, error)
	DeleteUser(userID string) error

	InsertProduct(product model.Product) error
	GetProduct(productID string) (model.Product, error)
	UpdateProduct(product model.Product) error
	ListProducts() ([]model.Product, error)
	ListProductsByOwner(ownerID string) ([]model.Product, error)
	ListProductsWonBy(userID string) ([]model.Product, error)
	DeleteProduct(productID string) error

	InsertFavorite(fav model.Favorite) error
	DeleteFavorite(userID, productID string) error
	FavoriteExists(userID, productID string) (bool, error)
	ListFavoriteProducts(userID string) ([]model.Product, error)
}

type favKey struct {
	userID    string
	productID string
}

// MemoryRepo is a concurrency-safe in-memory implementation of MarketDB
type MemoryRepo struct {
	mu           sync.RWMutex
	users        map[string]model.User   // key: userID
	usernames    map[string]string       // key: username -> userID
	products     map[string]model.Product
	productOrder []string // productIDs in insertion order
	favorites    map[favKey]struct{}
	favOrder     []favKey // favorite pairs in insertion order
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:     make(map[string]model.User),
		usernames: make(map[string]string),
		products:  make(map[string]model.Product),
		favorites: make(map[favKey]struct{}),
	}
}

// CreateUser inserts a user, enforcing username uniqueness
func (r *MemoryRepo) CreateUser(user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.usernames[user.Username]; taken {
		return fmt.Errorf("create user %s: %w", user.Username, aucerrors.ErrUsernameTaken)
	}
	r.users[user.UserID] = user
	r.usernames[user.Username] = user.UserID
	return nil
}

// GetUserByID returns a user by id
func (r *MemoryRepo) GetUserByID(userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, aucerrors.ErrUserNotFound)
	}
	return user, nil
}

// GetUserByUsername returns a user by unique handle
func (r *MemoryRepo) GetUserByUsername(username string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.usernames[username]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", username, aucerrors.ErrUserNotFound)
	}
	return r.users[userID], nil
}

// DeleteUser removes a user and cascade-deletes their favorites
func (r *MemoryRepo) DeleteUser(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("delete user %s: %w", userID, aucerrors.ErrUserNotFound)
	}
	delete(r.users, userID)
	delete(r.usernames, user.Username)

	// cascade: the user's favorites, their products, and favorites of those products
	owned := make(map[string]bool)
	kept := r.productOrder[:0]
	for _, id := range r.productOrder {
		if p, exists := r.products[id]; exists && p.OwnerID == userID {
			owned[id] = true
			delete(r.products, id)
			continue
		}
		kept = append(kept, id)
	}
	r.productOrder = kept
	r.deleteFavoritesWhere(func(k favKey) bool { return k.userID == userID || owned[k.productID] })
	return nil
}

// InsertProduct inserts a new product row with version 1
func (r *MemoryRepo) InsertProduct(product model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[product.ProductID]; exists {
		return fmt.Errorf("insert product %s: duplicate id", product.ProductID)
	}
	product.Version = 1
	r.products[product.ProductID] = product
	r.productOrder = append(r.productOrder, product.ProductID)
	return nil
}

// GetProduct returns a versioned snapshot of one product
func (r *MemoryRepo) GetProduct(productID string) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[productID]
	if !ok {
		return model.Product{}, fmt.Errorf("get product %s: %w", productID, aucerrors.ErrProductNotFound)
	}
	return product, nil
}

// UpdateProduct writes a product row iff the stored version still matches
// product.Version; on success the stored version is bumped by one.
func (r *MemoryRepo) UpdateProduct(product model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.products[product.ProductID]
	if !ok {
		return fmt.Errorf("update product %s: %w", product.ProductID, aucerrors.ErrProductNotFound)
	}
	if current.Version != product.Version {
		return fmt.Errorf("update product %s: %w", product.ProductID, aucerrors.ErrVersionConflict)
	}
	product.Version++
	r.products[product.ProductID] = product
	return nil
}

// ListProducts returns all products in insertion order
func (r *MemoryRepo) ListProducts() ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]model.Product, 0, len(r.productOrder))
	for _, id := range r.productOrder {
		if p, exists := r.products[id]; exists {
			products = append(products, p)
		}
	}
	return products, nil
}

// ListProductsByOwner returns all products owned by a user, in insertion order
func (r *MemoryRepo) ListProductsByOwner(ownerID string) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var products []model.Product
	for _, id := range r.productOrder {
		if p, exists := r.products[id]; exists && p.OwnerID == ownerID {
			products = append(products, p)
		}
	}
	return products, nil
}

// ListProductsWonBy returns closed products whose last accepted bid belongs to the user
func (r *MemoryRepo) ListProductsWonBy(userID string) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var products []model.Product
	for _, id := range r.productOrder {
		if p, exists := r.products[id]; exists && !p.IsActive && p.LeadingBidderID == userID {
			products = append(products, p)
		}
	}
	return products, nil
}

// DeleteProduct removes a product and cascade-deletes its favorites
func (r *MemoryRepo) DeleteProduct(productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[productID]; !ok {
		return fmt.Errorf("delete product %s: %w", productID, aucerrors.ErrProductNotFound)
	}
	delete(r.products, productID)
	for i, id := range r.productOrder {
		if id == productID {
			r.productOrder = append(r.productOrder[:i], r.productOrder[i+1:]...)
			break
		}
	}
	r.deleteFavoritesWhere(func(k favKey) bool { return k.productID == productID })
	return nil
}

// InsertFavorite inserts a (user, product) pair, enforcing pair uniqueness
func (r *MemoryRepo) InsertFavorite(fav model.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := favKey{userID: fav.UserID, productID: fav.ProductID}
	if _, exists := r.favorites[key]; exists {
		return fmt.Errorf("insert favorite (%s, %s): %w", fav.UserID, fav.ProductID, aucerrors.ErrAlreadyFavorited)
	}
	r.favorites[key] = struct{}{}
	r.favOrder = append(r.favOrder, key)
	return nil
}

// DeleteFavorite removes a (user, product) pair if present
func (r *MemoryRepo) DeleteFavorite(userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := favKey{userID: userID, productID: productID}
	if _, exists := r.favorites[key]; !exists {
		return fmt.Errorf("delete favorite (%s, %s): %w", userID, productID, aucerrors.ErrFavoriteNotFound)
	}
	delete(r.favorites, key)
	for i, k := range r.favOrder {
		if k == key {
			r.favOrder = append(r.favOrder[:i], r.favOrder[i+1:]...)
			break
		}
	}
	return nil
}

// FavoriteExists reports whether the pair is present
func (r *MemoryRepo) FavoriteExists(userID, productID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.favorites[favKey{userID: userID, productID: productID}]
	return exists, nil
}

// ListFavoriteProducts returns the products a user has favorited, in favoriting order
func (r *MemoryRepo) ListFavoriteProducts(userID string) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var products []model.Product
	for _, key := range r.favOrder {
		if key.userID != userID {
			continue
		}
		if p, exists := r.products[key.productID]; exists {
			products = append(products, p)
		}
	}
	return products, nil
}

// deleteFavoritesWhere removes all pairs matching the predicate. Caller holds mu.
func (r *MemoryRepo) deleteFavoritesWhere(match func(favKey) bool) {
	kept := r.favOrder[:0]
	for _, key := range r.favOrder {
		if match(key) {
			delete(r.favorites, key)
			continue
		}
		kept = append(kept, key)
	}
	r.favOrder = kept
}
