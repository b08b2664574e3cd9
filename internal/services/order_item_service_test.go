package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/fanstore/storefront-backend/internal/database"
	"github.com/fanstore/storefront-backend/internal/models"
	"github.com/fanstore/storefront-backend/internal/repository"
)

// OrderItemServiceSuite runs the lifecycle against a real (sqlite) store.
type OrderItemServiceSuite struct {
	suite.Suite
	db       *gorm.DB
	ctx      context.Context
	svc      *OrderItemService
	orderSvc *OrderService
	order    models.Order
	jersey   models.Product
	cap      models.Product
	plain    models.Tag
	patch    models.Tag
}

func (s *OrderItemServiceSuite) SetupTest() {
	s.db = database.NewTestDB(s.T())
	s.ctx = context.Background()

	user := models.User{Username: "fan", Email: "fan@example.com", PasswordHash: "x"}
	s.Require().NoError(s.db.Create(&user).Error)

	s.plain = models.Tag{Label: "Plain", PriceAdjustment: decimal.RequireFromString("0.00")}
	s.patch = models.Tag{Label: "Patch", PriceAdjustment: decimal.RequireFromString("1.50")}
	s.Require().NoError(s.db.Create(&s.plain).Error)
	s.Require().NoError(s.db.Create(&s.patch).Error)

	s.jersey = models.Product{Name: "Home Jersey", Price: decimal.RequireFromString("39.99")}
	s.cap = models.Product{Name: "Snapback Cap", Price: decimal.RequireFromString("10.00")}
	s.Require().NoError(s.db.Create(&s.jersey).Error)
	s.Require().NoError(s.db.Create(&s.cap).Error)

	s.order = models.Order{UserID: user.ID}
	s.Require().NoError(s.db.Create(&s.order).Error)

	items := repository.NewOrderItemRepository(s.db)
	orders := repository.NewOrderRepository(s.db)
	pricing := NewPricingService(repository.NewProductRepository(s.db), NewTagPricingService(repository.NewTagRepository(s.db)))

	s.svc = NewOrderItemService(items, orders, pricing)
	s.orderSvc = NewOrderService(orders, repository.NewUserRepository(s.db), repository.NewTxManager(s.db))
}

func (s *OrderItemServiceSuite) create(productID int64, qty int, tagIDs ...int64) *models.OrderItem {
	item, err := s.svc.Create(s.ctx, &CreateOrderItemRequest{
		OrderID:   s.order.ID,
		ProductID: productID,
		Quantity:  qty,
		TagIDs:    tagIDs,
	})
	s.Require().NoError(err)
	return item
}

func (s *OrderItemServiceSuite) TestCreate_PlainTagTwice() {
	item := s.create(s.jersey.ID, 2, s.plain.ID, s.plain.ID)

	s.True(item.PriceAtPurchase.Equal(decimal.RequireFromString("39.99")), "got %s", item.PriceAtPurchase)
	s.Equal(2, item.Quantity)
	s.Require().NotNil(item.OrderID)
	s.Equal(s.order.ID, *item.OrderID)
}

func (s *OrderItemServiceSuite) TestCreate_PatchTagTwice() {
	item := s.create(s.cap.ID, 1, s.patch.ID, s.patch.ID)

	stored, err := s.svc.Get(s.ctx, item.ID)
	s.Require().NoError(err)
	s.True(stored.PriceAtPurchase.Equal(decimal.RequireFromString("13.00")), "got %s", stored.PriceAtPurchase)
}

func (s *OrderItemServiceSuite) TestCreate_MissingProduct() {
	_, err := s.svc.Create(s.ctx, &CreateOrderItemRequest{OrderID: s.order.ID, ProductID: 9999, Quantity: 1})
	s.ErrorIs(err, ErrProductNotFound)

	items, err := s.svc.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(items)
}

func (s *OrderItemServiceSuite) TestCreate_MissingOrder() {
	_, err := s.svc.Create(s.ctx, &CreateOrderItemRequest{OrderID: 9999, ProductID: s.jersey.ID, Quantity: 1})
	s.ErrorIs(err, ErrOrderNotFound)
}

func (s *OrderItemServiceSuite) TestGet_Idempotent() {
	item := s.create(s.jersey.ID, 1)

	first, err := s.svc.Get(s.ctx, item.ID)
	s.Require().NoError(err)
	second, err := s.svc.Get(s.ctx, item.ID)
	s.Require().NoError(err)
	s.Equal(first, second)
}

func (s *OrderItemServiceSuite) TestUpdateQuantity_KeepsPriceSnapshot() {
	item := s.create(s.cap.ID, 1, s.patch.ID)

	// later catalog changes must not leak into the stored snapshot
	s.Require().NoError(s.db.Model(&s.cap).Update("price", decimal.RequireFromString("99.00")).Error)
	s.Require().NoError(s.db.Model(&s.patch).Update("price_adjustment", decimal.RequireFromString("7.00")).Error)

	updated, err := s.svc.UpdateQuantity(s.ctx, item.ID, &UpdateOrderItemRequest{Quantity: 4})
	s.Require().NoError(err)
	s.Equal(4, updated.Quantity)

	got, err := s.svc.Get(s.ctx, item.ID)
	s.Require().NoError(err)
	s.Equal(4, got.Quantity)
	s.True(got.PriceAtPurchase.Equal(decimal.RequireFromString("11.50")), "got %s", got.PriceAtPurchase)
}

func (s *OrderItemServiceSuite) TestUpdateQuantity_NotFound() {
	_, err := s.svc.UpdateQuantity(s.ctx, 9999, &UpdateOrderItemRequest{Quantity: 2})
	s.ErrorIs(err, ErrOrderItemNotFound)
}

func (s *OrderItemServiceSuite) TestDelete_Twice() {
	item := s.create(s.jersey.ID, 1)

	s.Require().NoError(s.svc.Delete(s.ctx, item.ID))

	_, err := s.svc.Get(s.ctx, item.ID)
	s.ErrorIs(err, ErrOrderItemNotFound)
	s.ErrorIs(s.svc.Delete(s.ctx, item.ID), ErrOrderItemNotFound)
}

func (s *OrderItemServiceSuite) TestList() {
	s.create(s.jersey.ID, 1)
	s.create(s.cap.ID, 3)

	items, err := s.svc.List(s.ctx)
	s.Require().NoError(err)
	s.Len(items, 2)

	byOrder, err := s.svc.ListByOrder(s.ctx, s.order.ID)
	s.Require().NoError(err)
	s.Len(byOrder, 2)

	_, err = s.svc.ListByOrder(s.ctx, 9999)
	s.ErrorIs(err, ErrOrderNotFound)
}

func (s *OrderItemServiceSuite) TestOrderDelete_Cascades() {
	i1 := s.create(s.jersey.ID, 1)
	i2 := s.create(s.cap.ID, 2)

	s.Require().NoError(s.orderSvc.Delete(s.ctx, s.order.ID))

	_, err := s.svc.Get(s.ctx, i1.ID)
	s.ErrorIs(err, ErrOrderItemNotFound)
	_, err = s.svc.Get(s.ctx, i2.ID)
	s.ErrorIs(err, ErrOrderItemNotFound)

	_, err = s.orderSvc.Get(s.ctx, s.order.ID)
	s.ErrorIs(err, ErrOrderNotFound)
	s.ErrorIs(s.orderSvc.Delete(s.ctx, s.order.ID), ErrOrderNotFound)
}

func TestOrderItemServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderItemServiceSuite))
}

// --- storage failure paths ---

func newMockedOrderItemService() (*OrderItemService, *mockOrderItemRepository, *mockOrderRepository, *mockProductRepository) {
	items := new(mockOrderItemRepository)
	orders := new(mockOrderRepository)
	products := new(mockProductRepository)
	pricing := NewPricingService(products, NewTagPricingService(new(mockTagRepository)))
	return NewOrderItemService(items, orders, pricing), items, orders, products
}

func TestOrderItemService_ListStorageFailure(t *testing.T) {
	svc, items, _, _ := newMockedOrderItemService()
	errDB := errors.New("db down")
	items.On("FindAll", mock.Anything).Return(nil, errDB)

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, errDB)
}

func TestOrderItemService_GetStorageFailure(t *testing.T) {
	svc, items, _, _ := newMockedOrderItemService()
	errDB := errors.New("db down")
	items.On("FindByID", mock.Anything, int64(3)).Return(nil, errDB)

	_, err := svc.Get(context.Background(), 3)
	assert.ErrorIs(t, err, errDB)
	assert.NotErrorIs(t, err, ErrOrderItemNotFound)
}

func TestOrderItemService_CreatePersistFailure(t *testing.T) {
	svc, items, orders, products := newMockedOrderItemService()
	errDB := errors.New("insert failed")
	orders.On("Exists", mock.Anything, int64(1)).Return(true, nil)
	products.On("FindByID", mock.Anything, int64(2)).Return(product(2, "10.00"), nil)
	items.On("Create", mock.Anything, mock.AnythingOfType("*models.OrderItem")).Return(errDB)

	_, err := svc.Create(context.Background(), &CreateOrderItemRequest{OrderID: 1, ProductID: 2, Quantity: 1})
	assert.ErrorIs(t, err, errDB)
}

func TestOrderItemService_UpdateRaceWithDelete(t *testing.T) {
	svc, items, _, _ := newMockedOrderItemService()
	existing := &models.OrderItem{ID: 5, Quantity: 1, PriceAtPurchase: decimal.RequireFromString("10")}
	items.On("FindByID", mock.Anything, int64(5)).Return(existing, nil)
	items.On("UpdateQuantity", mock.Anything, existing).Return(repository.ErrNotFound)

	_, err := svc.UpdateQuantity(context.Background(), 5, &UpdateOrderItemRequest{Quantity: 2})
	require.ErrorIs(t, err, ErrOrderItemNotFound)
}

func TestOrderItemService_DeleteStorageFailure(t *testing.T) {
	svc, items, _, _ := newMockedOrderItemService()
	errDB := errors.New("delete failed")
	items.On("FindByID", mock.Anything, int64(5)).Return(&models.OrderItem{ID: 5}, nil)
	items.On("Delete", mock.Anything, int64(5)).Return(errDB)

	err := svc.Delete(context.Background(), 5)
	assert.ErrorIs(t, err, errDB)
}
