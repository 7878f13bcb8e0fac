package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"bid-market/internal/aucerrors"
	model "bid-market/internal/models"
)

const productColumns = `product_id, title, category, description, closing_at,
	current_bid, owner_id, is_active, leading_bidder_id, version`

// Store is a durable implementation of repository.MarketDB over SQLite
type Store struct {
	db *sql.DB
}

// NewStore creates a Store over an opened database
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateUser inserts a user; the UNIQUE index on username is the
// uniqueness backstop.
func (s *Store) CreateUser(user model.User) error {
	_, err := s.db.Exec(
		`INSERT INTO users (user_id, username, password_hash) VALUES (?, ?, ?)`,
		user.UserID, user.Username, user.PasswordHash,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("create user %s: %w", user.Username, aucerrors.ErrUsernameTaken)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetUserByID returns a user by id
func (s *Store) GetUserByID(userID string) (model.User, error) {
	var user model.User
	err := s.db.QueryRow(
		`SELECT user_id, username, password_hash FROM users WHERE user_id = ?`, userID,
	).Scan(&user.UserID, &user.Username, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, fmt.Errorf("get user %s: %w", userID, aucerrors.ErrUserNotFound)
		}
		return model.User{}, fmt.Errorf("query user by id: %w", err)
	}
	return user, nil
}

// GetUserByUsername returns a user by unique handle
func (s *Store) GetUserByUsername(username string) (model.User, error) {
	var user model.User
	err := s.db.QueryRow(
		`SELECT user_id, username, password_hash FROM users WHERE username = ?`, username,
	).Scan(&user.UserID, &user.Username, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, fmt.Errorf("get user %s: %w", username, aucerrors.ErrUserNotFound)
		}
		return model.User{}, fmt.Errorf("query user by username: %w", err)
	}
	return user, nil
}

// DeleteUser removes a user; favorites cascade via the foreign key
func (s *Store) DeleteUser(userID string) error {
	res, err := s.db.Exec(`DELETE FROM users WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("delete user %s: %w", userID, aucerrors.ErrUserNotFound)
	}
	return nil
}

// InsertProduct inserts a new product row with version 1
func (s *Store) InsertProduct(p model.Product) error {
	_, err := s.db.Exec(
		`INSERT INTO products (product_id, title, category, description, closing_at,
			current_bid, owner_id, is_active, leading_bidder_id, version)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 1)`,
		p.ProductID, p.Title, p.Category, p.Description, p.ClosingAt,
		p.CurrentBid, p.OwnerID, p.IsActive, p.LeadingBidderID,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetProduct returns a versioned snapshot of one product
func (s *Store) GetProduct(productID string) (model.Product, error) {
	row := s.db.QueryRow(
		`SELECT `+productColumns+` FROM products WHERE product_id = ?`, productID,
	)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Product{}, fmt.Errorf("get product %s: %w", productID, aucerrors.ErrProductNotFound)
		}
		return model.Product{}, fmt.Errorf("query product: %w", err)
	}
	return p, nil
}

// UpdateProduct writes the row iff the stored version still matches
// p.Version. The versioned WHERE clause makes the read-modify-write
// optimistic; a stale caller gets a version conflict to retry on.
func (s *Store) UpdateProduct(p model.Product) error {
	res, err := s.db.Exec(
		`UPDATE products SET title = ?, category = ?, description = ?, closing_at = ?,
			current_bid = ?, is_active = ?, leading_bidder_id = ?, version = version + 1
		 WHERE product_id = ? AND version = ?`,
		p.Title, p.Category, p.Description, p.ClosingAt,
		p.CurrentBid, p.IsActive, p.LeadingBidderID,
		p.ProductID, p.Version,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if n == 0 {
		var exists bool
		if err := s.db.QueryRow(
			`SELECT EXISTS(SELECT 1 FROM products WHERE product_id = ?)`, p.ProductID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("update product: %w", err)
		}
		if !exists {
			return fmt.Errorf("update product %s: %w", p.ProductID, aucerrors.ErrProductNotFound)
		}
		return fmt.Errorf("update product %s: %w", p.ProductID, aucerrors.ErrVersionConflict)
	}
	return nil
}

// ListProducts returns all products in insertion order
func (s *Store) ListProducts() ([]model.Product, error) {
	return s.queryProducts(`SELECT ` + productColumns + ` FROM products ORDER BY rowid`)
}

// ListProductsByOwner returns all products owned by a user, in insertion order
func (s *Store) ListProductsByOwner(ownerID string) ([]model.Product, error) {
	return s.queryProducts(
		`SELECT `+productColumns+` FROM products WHERE owner_id = ? ORDER BY rowid`, ownerID,
	)
}

// ListProductsWonBy returns closed products whose last accepted bid belongs to the user
func (s *Store) ListProductsWonBy(userID string) ([]model.Product, error) {
	return s.queryProducts(
		`SELECT `+productColumns+` FROM products
		 WHERE is_active = 0 AND leading_bidder_id = ? ORDER BY rowid`, userID,
	)
}

// DeleteProduct removes a product; favorites cascade via the foreign key
func (s *Store) DeleteProduct(productID string) error {
	res, err := s.db.Exec(`DELETE FROM products WHERE product_id = ?`, productID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("delete product %s: %w", productID, aucerrors.ErrProductNotFound)
	}
	return nil
}

// InsertFavorite inserts a pair; the composite primary key is the
// uniqueness backstop.
func (s *Store) InsertFavorite(fav model.Favorite) error {
	_, err := s.db.Exec(
		`INSERT INTO favorites (user_id, product_id) VALUES (?, ?)`,
		fav.UserID, fav.ProductID,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("insert favorite (%s, %s): %w", fav.UserID, fav.ProductID, aucerrors.ErrAlreadyFavorited)
		}
		return fmt.Errorf("insert favorite: %w", err)
	}
	return nil
}

// DeleteFavorite removes a pair if present
func (s *Store) DeleteFavorite(userID, productID string) error {
	res, err := s.db.Exec(
		`DELETE FROM favorites WHERE user_id = ? AND product_id = ?`, userID, productID,
	)
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("delete favorite (%s, %s): %w", userID, productID, aucerrors.ErrFavoriteNotFound)
	}
	return nil
}

// FavoriteExists reports whether the pair is present
func (s *Store) FavoriteExists(userID, productID string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = ? AND product_id = ?)`,
		userID, productID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("query favorite: %w", err)
	}
	return exists, nil
}

// ListFavoriteProducts returns the products a user has favorited, in favoriting order
func (s *Store) ListFavoriteProducts(userID string) ([]model.Product, error) {
	return s.queryProducts(
		`SELECT p.product_id, p.title, p.category, p.description, p.closing_at,
			p.current_bid, p.owner_id, p.is_active, p.leading_bidder_id, p.version
		 FROM favorites f JOIN products p ON p.product_id = f.product_id
		 WHERE f.user_id = ? ORDER BY f.rowid`, userID,
	)
}

func (s *Store) queryProducts(query string, args ...any) ([]model.Product, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (model.Product, error) {
	var p model.Product
	err := row.Scan(
		&p.ProductID, &p.Title, &p.Category, &p.Description, &p.ClosingAt,
		&p.CurrentBid, &p.OwnerID, &p.IsActive, &p.LeadingBidderID, &p.Version,
	)
	if err != nil {
		return model.Product{}, err
	}
	p.ClosingAt = p.ClosingAt.UTC()
	return p, nil
}

// isUniqueConstraintError checks if the error is a SQLite unique constraint violation.
func isUniqueConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
