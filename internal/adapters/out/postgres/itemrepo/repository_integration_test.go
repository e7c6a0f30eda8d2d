package itemrepo_test

import (
	"context"
	"testing"
	"time"

	"shop/internal/adapters/out/postgres/itemrepo"
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ItemRepositoryIntegrationTestSuite provides integration tests for ItemRepository
// using PostgreSQL containers to verify database persistence behavior.
type ItemRepositoryIntegrationTestSuite struct {
	suite.Suite
	container      *postgres.PostgresContainer
	db             *gorm.DB
	itemRepository *itemrepo.GormItemRepository
	tracker        *MockAggregateTracker
}

func (suite *ItemRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&itemrepo.ItemDTO{}))
}

func (suite *ItemRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.itemRepository = itemrepo.NewGormItemRepository(suite.db, suite.tracker)
}

func (suite *ItemRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ItemRepositoryIntegrationTestSuite) createTestItem(name string, stock int) *item.Item {
	i, err := item.NewItem(kernel.NewUUID(), item.Book, name, 25000, stock)
	suite.Require().NoError(err)
	return i
}

func (suite *ItemRepositoryIntegrationTestSuite) TestAdd_ValidItem_Success() {
	ctx := context.Background()
	i := suite.createTestItem("Effective Go", 100)

	suite.tracker.On("TrackAggregate", i.ID(), i).Once()

	err := suite.itemRepository.Add(ctx, i)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Table("items").Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ItemRepositoryIntegrationTestSuite) TestGet_ExistingItem_RoundTrips() {
	ctx := context.Background()
	original := suite.createTestItem("Effective Go", 100)

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.itemRepository.Add(ctx, original))

	retrieved, err := suite.itemRepository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.Kind(), retrieved.Kind())
	suite.Equal(original.Name(), retrieved.Name())
	suite.Equal(original.Price(), retrieved.Price())
	suite.Equal(original.Stock(), retrieved.Stock())
}

func (suite *ItemRepositoryIntegrationTestSuite) TestGet_NonExistentItem_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.itemRepository.Get(ctx, kernel.NewUUID())
	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ItemRepositoryIntegrationTestSuite) TestUpdate_StockDrainedToZero_Persisted() {
	ctx := context.Background()
	original := suite.createTestItem("Effective Go", 3)

	suite.tracker.On("TrackAggregate", original.ID(), original).Twice()
	suite.Require().NoError(suite.itemRepository.Add(ctx, original))

	// Zero is a legitimate stock level and must not be skipped on update
	suite.Require().NoError(original.DecreaseStock(3))
	suite.Require().NoError(suite.itemRepository.Update(ctx, original))

	retrieved, err := suite.itemRepository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(0, retrieved.Stock())
}

func (suite *ItemRepositoryIntegrationTestSuite) TestUpdate_NonExistentItem_ReturnsError() {
	ctx := context.Background()
	i := suite.createTestItem("Ghost", 1)

	err := suite.itemRepository.Update(ctx, i)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *ItemRepositoryIntegrationTestSuite) TestGetAll_ReturnsItemsOrderedByName() {
	ctx := context.Background()
	second := suite.createTestItem("The Go Programming Language", 10)
	first := suite.createTestItem("Effective Go", 20)

	suite.tracker.On("TrackAggregate", second.ID(), second).Once()
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.itemRepository.Add(ctx, second))
	suite.Require().NoError(suite.itemRepository.Add(ctx, first))

	items, err := suite.itemRepository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(items, 2)
	suite.Equal("Effective Go", items[0].Name())
	suite.Equal("The Go Programming Language", items[1].Name())
}

func TestItemRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ItemRepositoryIntegrationTestSuite))
}
