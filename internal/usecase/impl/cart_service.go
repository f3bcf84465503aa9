package impl

import (
	"context"
	"log/slog"

	deliverycontext "vitacart/internal/delivery/context"
	"vitacart/internal/domain/entity"
	domainerrors "vitacart/internal/domain/errors"
	"vitacart/internal/domain/repository"
	"vitacart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	txManager   repository.TransactionManager
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	TxManager   repository.TransactionManager
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		txManager:   params.TxManager,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// resolveCart finds the cart named by the identity, creating one when it
// does not exist yet. A user id wins over a session token; a stale guest
// token gets a brand new cart and token rather than reviving the old one.
func (srv *cartService) resolveCart(ctx context.Context, identity usecase.CartIdentity) (*entity.Cart, error) {
	if identity.UserID != nil {
		cart, err := srv.cartRepo.FindByUser(ctx, *identity.UserID)
		if err == nil {
			return cart, nil
		}
		if !errors.Is(err, repository.ErrCartNotFound) {
			return nil, errors.Wrap(err, "failed to resolve user cart")
		}

		cart = &entity.Cart{UserID: identity.UserID}
		if err := srv.cartRepo.Create(ctx, cart); err != nil {
			return nil, errors.Wrap(err, "failed to create user cart")
		}
		srv.log(ctx).Debug("Created user cart", slog.Any("userID", *identity.UserID))

		return cart, nil
	}

	if identity.SessionToken != "" {
		cart, err := srv.cartRepo.FindBySessionToken(ctx, identity.SessionToken)
		if err == nil {
			return cart, nil
		}
		if !errors.Is(err, repository.ErrCartNotFound) {
			return nil, errors.Wrap(err, "failed to resolve guest cart")
		}
	}

	cart := &entity.Cart{SessionToken: uuid.New().String()}
	if err := srv.cartRepo.Create(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to create guest cart")
	}
	srv.log(ctx).Debug("Created guest cart", slog.Any("cartID", cart.ID))

	return cart, nil
}

// GetCart returns the identified cart, creating an empty one on first touch.
func (srv *cartService) GetCart(ctx context.Context, identity usecase.CartIdentity) (*entity.Cart, error) {
	return srv.resolveCart(ctx, identity)
}

// AddItem puts a product into the cart. A line for the same product
// already present absorbs the quantity instead of duplicating; variant
// ids play no part in the match.
func (srv *cartService) AddItem(ctx context.Context, input *usecase.AddItemInput) (*entity.Cart, error) {
	if input.Quantity <= 0 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	if _, err := srv.productRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to check product for cart")
	}

	cart, err := srv.resolveCart(ctx, input.Identity)
	if err != nil {
		return nil, err
	}

	// The lookup and the merge run in one transaction so two concurrent
	// adds of the same product cannot both take the create path.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		existing, err := cartRepo.FindItemByProduct(ctx, cart.ID, input.ProductID)
		switch {
		case err == nil:
			if err := cartRepo.UpdateItemQuantity(ctx, existing.ID, existing.Quantity+input.Quantity); err != nil {
				return errors.Wrap(err, "failed to merge cart line")
			}
		case errors.Is(err, repository.ErrCartItemNotFound):
			item := &entity.CartItem{
				CartID:    cart.ID,
				ProductID: input.ProductID,
				VariantID: input.VariantID,
				Quantity:  input.Quantity,
			}
			if err := cartRepo.CreateItem(ctx, item); err != nil {
				return errors.Wrap(err, "failed to add cart line")
			}
		default:
			return errors.Wrap(err, "failed to look up cart line")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return srv.freshCart(ctx, cart.ID)
}

// UpdateItem overwrites a line's quantity; zero or below removes it.
func (srv *cartService) UpdateItem(ctx context.Context, input *usecase.UpdateItemInput) (*entity.Cart, error) {
	item, err := srv.findItem(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}

	if input.Quantity <= 0 {
		if err := srv.cartRepo.DeleteItem(ctx, item.ID); err != nil {
			return nil, errors.Wrap(err, "failed to remove cart line")
		}
	} else if err := srv.cartRepo.UpdateItemQuantity(ctx, item.ID, input.Quantity); err != nil {
		return nil, errors.Wrap(err, "failed to update cart line")
	}

	cart, err := srv.resolveCart(ctx, input.Identity)
	if err != nil {
		return nil, err
	}

	return srv.freshCart(ctx, cart.ID)
}

// RemoveItem deletes a single cart line.
func (srv *cartService) RemoveItem(ctx context.Context, identity usecase.CartIdentity, itemID uuid.UUID) (*entity.Cart, error) {
	item, err := srv.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if err := srv.cartRepo.DeleteItem(ctx, item.ID); err != nil {
		return nil, errors.Wrap(err, "failed to remove cart line")
	}

	cart, err := srv.resolveCart(ctx, identity)
	if err != nil {
		return nil, err
	}

	return srv.freshCart(ctx, cart.ID)
}

// findItem loads a cart line by id. Mutations are keyed on the line id
// alone; the caller's own cart is resolved afterwards only to shape the
// response.
func (srv *cartService) findItem(ctx context.Context, itemID uuid.UUID) (*entity.CartItem, error) {
	item, err := srv.cartRepo.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to load cart line")
	}

	return item, nil
}

// freshCart reloads the cart with its items after a mutation.
func (srv *cartService) freshCart(ctx context.Context, cartID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindByID(ctx, cartID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload cart")
	}

	return cart, nil
}
