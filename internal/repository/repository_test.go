package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/fanstore/storefront-backend/internal/database"
	"github.com/fanstore/storefront-backend/internal/models"
	"github.com/fanstore/storefront-backend/internal/repository"
)

type RepositoryTestSuite struct {
	suite.Suite
	db      *gorm.DB
	ctx     context.Context
	user    models.User
	product models.Product
	tags    []models.Tag
}

func (s *RepositoryTestSuite) SetupTest() {
	s.db = database.NewTestDB(s.T())
	s.ctx = context.Background()

	s.user = models.User{Username: "fan", Email: "fan@example.com", PasswordHash: "x"}
	s.Require().NoError(s.db.Create(&s.user).Error)

	s.tags = []models.Tag{
		{Label: "Plain", PriceAdjustment: decimal.Zero},
		{Label: "Patch", PriceAdjustment: decimal.RequireFromString("1.50")},
	}
	s.Require().NoError(s.db.Create(&s.tags).Error)

	s.product = models.Product{Name: "Home Jersey", Price: decimal.RequireFromString("39.99"), Tags: s.tags}
	s.Require().NoError(s.db.Create(&s.product).Error)
}

func (s *RepositoryTestSuite) newOrder() models.Order {
	order := models.Order{UserID: s.user.ID}
	s.Require().NoError(repository.NewOrderRepository(s.db).Create(s.ctx, &order))
	return order
}

func (s *RepositoryTestSuite) newItem(orderID *int64, qty int) models.OrderItem {
	item := models.OrderItem{
		OrderID:         orderID,
		ProductID:       s.product.ID,
		Quantity:        qty,
		PriceAtPurchase: s.product.Price,
	}
	s.Require().NoError(repository.NewOrderItemRepository(s.db).Create(s.ctx, &item))
	return item
}

func (s *RepositoryTestSuite) TestProduct_FindByID() {
	repo := repository.NewProductRepository(s.db)

	p, err := repo.FindByID(s.ctx, s.product.ID)
	s.Require().NoError(err)
	s.Equal("Home Jersey", p.Name)
	s.True(p.Price.Equal(decimal.RequireFromString("39.99")))

	_, err = repo.FindByID(s.ctx, 9999)
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *RepositoryTestSuite) TestProduct_FindByIDWithTags() {
	p, err := repository.NewProductRepository(s.db).FindByIDWithTags(s.ctx, s.product.ID)
	s.Require().NoError(err)
	s.Require().Len(p.Tags, 2)
	s.Equal("Plain", p.Tags[0].Label)
	s.Equal("Patch", p.Tags[1].Label)
}

func (s *RepositoryTestSuite) TestTag_FindByIDs() {
	repo := repository.NewTagRepository(s.db)

	tags, err := repo.FindByIDs(s.ctx, []int64{s.tags[1].ID, s.tags[1].ID, 4242})
	s.Require().NoError(err)
	s.Require().Len(tags, 1)
	s.Equal("Patch", tags[0].Label)

	tags, err = repo.FindByIDs(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(tags)
}

func (s *RepositoryTestSuite) TestTag_List() {
	tags, err := repository.NewTagRepository(s.db).List(s.ctx)
	s.Require().NoError(err)
	s.Len(tags, 2)
}

func (s *RepositoryTestSuite) TestUser_Exists() {
	repo := repository.NewUserRepository(s.db)

	ok, err := repo.Exists(s.ctx, s.user.ID)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = repo.Exists(s.ctx, 9999)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *RepositoryTestSuite) TestUser_FindByIDWithOrders() {
	repo := repository.NewUserRepository(s.db)
	order := s.newOrder()

	user, err := repo.FindByIDWithOrders(s.ctx, s.user.ID)
	s.Require().NoError(err)
	s.Require().Len(user.Orders, 1)
	s.Equal(order.ID, user.Orders[0].ID)

	_, err = repo.FindByIDWithOrders(s.ctx, 9999)
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *RepositoryTestSuite) TestOrder_CRUD() {
	repo := repository.NewOrderRepository(s.db)
	order := s.newOrder()
	s.newItem(&order.ID, 1)
	s.newItem(&order.ID, 3)

	found, err := repo.FindByID(s.ctx, order.ID)
	s.Require().NoError(err)
	s.Len(found.OrderItems, 2)

	exists, err := repo.Exists(s.ctx, order.ID)
	s.Require().NoError(err)
	s.True(exists)

	orders, err := repo.List(s.ctx)
	s.Require().NoError(err)
	s.Len(orders, 1)

	_, err = repo.FindByID(s.ctx, 9999)
	s.ErrorIs(err, repository.ErrNotFound)
	s.ErrorIs(repo.Delete(s.ctx, 9999), repository.ErrNotFound)
}

func (s *RepositoryTestSuite) TestOrderItem_Lifecycle() {
	repo := repository.NewOrderItemRepository(s.db)
	order := s.newOrder()
	item := s.newItem(&order.ID, 2)
	s.NotZero(item.ID)

	item.Quantity = 5
	s.Require().NoError(repo.UpdateQuantity(s.ctx, &item))

	found, err := repo.FindByID(s.ctx, item.ID)
	s.Require().NoError(err)
	s.Equal(5, found.Quantity)
	s.True(found.PriceAtPurchase.Equal(decimal.RequireFromString("39.99")))

	s.Require().NoError(repo.Delete(s.ctx, item.ID))
	_, err = repo.FindByID(s.ctx, item.ID)
	s.ErrorIs(err, repository.ErrNotFound)
	s.ErrorIs(repo.Delete(s.ctx, item.ID), repository.ErrNotFound)

	ghost := models.OrderItem{ID: item.ID, Quantity: 1}
	s.ErrorIs(repo.UpdateQuantity(s.ctx, &ghost), repository.ErrNotFound)
}

func (s *RepositoryTestSuite) TestOrderItem_FindAllAndByOrder() {
	repo := repository.NewOrderItemRepository(s.db)
	first := s.newOrder()
	second := s.newOrder()
	s.newItem(&first.ID, 1)
	s.newItem(&second.ID, 1)
	s.newItem(nil, 1)

	all, err := repo.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 3)

	byOrder, err := repo.FindByOrderID(s.ctx, first.ID)
	s.Require().NoError(err)
	s.Require().Len(byOrder, 1)
	s.Equal(first.ID, *byOrder[0].OrderID)

	n, err := repo.DeleteByOrderID(s.ctx, second.ID)
	s.Require().NoError(err)
	s.EqualValues(1, n)
}

func (s *RepositoryTestSuite) TestTxManager_RollsBack() {
	order := s.newOrder()
	s.newItem(&order.ID, 1)

	errBoom := errors.New("boom")
	err := repository.NewTxManager(s.db).WithinTx(s.ctx, func(r repository.TxRepos) error {
		if _, err := r.OrderItems().DeleteByOrderID(s.ctx, order.ID); err != nil {
			return err
		}
		return errBoom
	})
	s.ErrorIs(err, errBoom)

	items, err := repository.NewOrderItemRepository(s.db).FindByOrderID(s.ctx, order.ID)
	s.Require().NoError(err)
	s.Len(items, 1)
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func TestOrderItem_FindAllEmpty(t *testing.T) {
	db := database.NewTestDB(t)

	items, err := repository.NewOrderItemRepository(db).FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
