package cart

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/beyondgamer21/aura-elegance/internal/cache"
	"github.com/beyondgamer21/aura-elegance/internal/domain"
)

// Service wraps the cart store with a read-through cache. Reads go through
// singleflight so concurrent misses for the same session hit the store once.
type Service struct {
	store  Store
	cache  cache.CartCache
	logger *zap.Logger
	sfg    singleflight.Group
}

func NewService(store Store, cartCache cache.CartCache, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		cache:  cartCache,
		logger: logger,
	}
}

// GetCart returns the session's cart. A session with no cart yet gets an
// empty cart, not an error.
func (s *Service) GetCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	v, err, _ := s.sfg.Do(sessionID, func() (interface{}, error) {
		c, err := s.cache.Get(ctx, sessionID)
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("cart cache get failed", zap.String("session_id", sessionID), zap.Error(err))
		}

		c, errGet := s.store.GetCart(ctx, sessionID)
		if errors.Is(errGet, ErrCartNotFound) {
			now := time.Now()
			return &domain.Cart{
				SessionID: sessionID,
				Items:     nil,
				CreatedAt: now,
				UpdatedAt: now,
			}, nil
		}
		if errGet != nil {
			return nil, errGet
		}

		go func() {
			fillCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if errSet := s.cache.Set(fillCtx, sessionID, c); errSet != nil {
				s.logger.Warn("cart cache set failed", zap.String("session_id", sessionID), zap.Error(errSet))
			}
		}()

		return c, nil
	})

	if err != nil {
		return nil, err
	}

	return v.(*domain.Cart), nil
}

func (s *Service) AddItem(ctx context.Context, sessionID string, item domain.CartItem) error {
	if err := s.store.AddItem(ctx, sessionID, item); err != nil {
		return err
	}

	s.invalidateCache(sessionID)
	return nil
}

func (s *Service) UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) error {
	if err := s.store.UpdateItemQuantity(ctx, sessionID, itemID, quantity); err != nil {
		return err
	}

	s.invalidateCache(sessionID)
	return nil
}

func (s *Service) RemoveItem(ctx context.Context, sessionID, itemID string) error {
	if err := s.store.RemoveItem(ctx, sessionID, itemID); err != nil {
		return err
	}

	s.invalidateCache(sessionID)
	return nil
}

func (s *Service) ClearCart(ctx context.Context, sessionID string) error {
	if err := s.store.DeleteCart(ctx, sessionID); err != nil {
		return err
	}

	s.invalidateCache(sessionID)
	return nil
}

func (s *Service) invalidateCache(sessionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, sessionID); err != nil {
		s.logger.Warn("cart cache invalidate failed", zap.String("session_id", sessionID), zap.Error(err))
	}
}
