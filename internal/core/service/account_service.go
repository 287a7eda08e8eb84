package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/delispi/storefront-api/internal/core/domain"
	"github.com/delispi/storefront-api/internal/core/ports"
)

type AccountService struct {
	users     ports.UserRepository
	addresses ports.AddressRepository
	products  ports.ProductRepository
	logger    zerolog.Logger
}

func NewAccountService(users ports.UserRepository, addresses ports.AddressRepository, products ports.ProductRepository, logger zerolog.Logger) *AccountService {
	return &AccountService{users: users, addresses: addresses, products: products, logger: logger}
}

func (s *AccountService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AccountService) UpdateProfile(ctx context.Context, userID string, in ports.UpdateProfileInput) (*domain.User, error) {
	return s.users.UpdateProfile(ctx, userID, in)
}

func (s *AccountService) ListAddresses(ctx context.Context, userID string) ([]domain.PostalAddress, error) {
	return s.addresses.ListByUser(ctx, userID)
}

func (s *AccountService) AddAddress(ctx context.Context, userID string, a domain.PostalAddress) (*domain.PostalAddress, error) {
	a.ID = ""
	a.UserID = userID
	return s.addresses.Create(ctx, &a)
}

func (s *AccountService) UpdateAddress(ctx context.Context, userID, addressID string, a domain.PostalAddress) (*domain.PostalAddress, error) {
	a.UserID = userID
	return s.addresses.Update(ctx, addressID, userID, &a)
}

func (s *AccountService) DeleteAddress(ctx context.Context, userID, addressID string) error {
	return s.addresses.Delete(ctx, addressID, userID)
}

// Wishlist resolves the stored product ids into product records. Ids whose
// product has been removed from the catalog are skipped silently.
func (s *AccountService) Wishlist(ctx context.Context, userID string) ([]domain.Product, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(user.Wishlist))
	for _, id := range user.Wishlist {
		product, err := s.products.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				continue
			}
			return nil, err
		}
		products = append(products, *product)
	}
	return products, nil
}

func (s *AccountService) AddToWishlist(ctx context.Context, userID, productID string) error {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return err
	}
	return s.users.AddToWishlist(ctx, userID, productID)
}

func (s *AccountService) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	return s.users.RemoveFromWishlist(ctx, userID, productID)
}

func (s *AccountService) AdminListCustomers(ctx context.Context) ([]domain.User, error) {
	return s.users.ListByRole(ctx, domain.RoleUser)
}

func (s *AccountService) AdminListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *AccountService) AdminListRecentUsers(ctx context.Context, limit int) ([]domain.User, error) {
	return s.users.ListRecent(ctx, limit)
}

func (s *AccountService) AdminGetCustomer(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *AccountService) AdminUpdateCustomer(ctx context.Context, id string, in ports.UpdateCustomerInput) (*domain.User, error) {
	user, err := s.users.UpdateCustomer(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", id).Msg("customer updated")
	return user, nil
}

func (s *AccountService) AdminDeleteCustomer(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("customer deleted")
	return nil
}
