package postgres_test

import (
	"context"
	"testing"
	"time"

	"shop/internal/adapters/out/postgres"
	"shop/internal/adapters/out/postgres/itemrepo"
	"shop/internal/adapters/out/postgres/memberrepo"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction boundaries across
// the member, item and order repositories.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&memberrepo.MemberDTO{},
		&itemrepo.ItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.DeliveryDTO{},
		&orderrepo.OrderLineDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE order_lines, deliveries, orders, items, members").Error,
	)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) testFixtures() (*member.Member, *item.Item) {
	address, err := kernel.NewAddress("Seoul", "Main Street 1", "04524")
	suite.Require().NoError(err)

	m, err := member.NewMember(kernel.NewUUID(), "alice", address)
	suite.Require().NoError(err)

	i, err := item.NewItem(kernel.NewUUID(), item.Book, "Effective Go", 25000, 10)
	suite.Require().NoError(err)

	return m, i
}

func (suite *UnitOfWorkIntegrationTestSuite) placeOrder(
	m *member.Member, orderedItem *item.Item, quantity int,
) *order.Order {
	delivery, err := order.NewDelivery(kernel.NewUUID(), m.Address())
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		m.ID(),
		delivery,
		[]order.LineRequest{{Item: orderedItem, Quantity: quantity}},
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	m, orderedItem := suite.testFixtures()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.MemberRepository().Add(ctx, m))
	suite.Require().NoError(uow.ItemRepository().Add(ctx, orderedItem))

	aggregate := suite.placeOrder(m, orderedItem, 3)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.ItemRepository().Update(ctx, orderedItem))

	suite.Require().NoError(uow.Commit(ctx))

	// Changes are visible on the main connection
	verifier := suite.factory.Create()
	retrievedOrder, err := verifier.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Ordered, retrievedOrder.Status())

	retrievedItem, err := verifier.ItemRepository().Get(ctx, orderedItem.ID())
	suite.Require().NoError(err)
	suite.Equal(7, retrievedItem.Stock())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllChanges() {
	ctx := context.Background()
	m, orderedItem := suite.testFixtures()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.MemberRepository().Add(ctx, m))
	suite.Require().NoError(uow.ItemRepository().Add(ctx, orderedItem))

	suite.Require().NoError(uow.Rollback(ctx))

	var memberCount, itemCount int64
	suite.Require().NoError(suite.db.Table("members").Count(&memberCount).Error)
	suite.Require().NoError(suite.db.Table("items").Count(&itemCount).Error)
	suite.Equal(int64(0), memberCount)
	suite.Equal(int64(0), itemCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Rollback(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositories_WithoutBegin_UseMainConnection() {
	ctx := context.Background()
	m, _ := suite.testFixtures()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.MemberRepository().Add(ctx, m))

	var count int64
	suite.Require().NoError(suite.db.Table("members").Count(&count).Error)
	suite.Equal(int64(1), count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
