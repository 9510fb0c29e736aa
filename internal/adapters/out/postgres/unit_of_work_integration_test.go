package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "atelier/internal/adapters/out/postgres"
	"atelier/internal/adapters/out/postgres/customerrepo"
	"atelier/internal/adapters/out/postgres/orderrepo"
	"atelier/internal/adapters/out/postgres/stylerepo"
	"atelier/internal/adapters/out/postgres/tailorrepo"
	"atelier/internal/core/domain/model/customer"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/style"
	"atelier/internal/core/domain/model/tailor"
	"atelier/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&stylerepo.StyleDTO{},
		&tailorrepo.TailorDTO{},
		&orderrepo.OrderDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE customers, styles, tailors, orders").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.CustomerRepository(), "First instance should provide customer repository")
	suite.NotNil(uow1.StyleRepository(), "First instance should provide style repository")
	suite.NotNil(uow1.TailorRepository(), "First instance should provide tailor repository")
	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testCustomer := createTestCustomer(suite.T())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.CustomerRepository().Add(ctx, testCustomer)
	suite.Require().NoError(err)

	retrieved, err := uow.CustomerRepository().Get(ctx, testCustomer.ID())
	suite.Require().NoError(err)
	suite.Equal(testCustomer.ID(), retrieved.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err = newUow.CustomerRepository().Get(ctx, testCustomer.ID())
	suite.Require().NoError(err)
	suite.Equal(testCustomer.Name(), retrieved.Name())
	suite.Equal(testCustomer.Email(), retrieved.Email())
}

// TestUnitOfWork_AssignmentTransaction verifies the tailor assignment writes,
// spanning the tailor and order repositories, commit atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AssignmentTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testStyle := createTestStyle(suite.T())
	testOrder := createTestOrder(suite.T(), testStyle.ID())
	testTailor := createTestTailor(suite.T())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.StyleRepository().Add(ctx, testStyle)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.TailorRepository().Add(ctx, testTailor)
	suite.Require().NoError(err)

	err = testTailor.TakeOrder(testOrder)
	suite.Require().NoError(err)
	err = testOrder.AssignTailor(testTailor.ID())
	suite.Require().NoError(err)

	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)
	err = uow.TailorRepository().Update(ctx, testTailor)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InProgress, retrievedOrder.Status())
	suite.Require().NotNil(retrievedOrder.Tailor())
	suite.Equal(testTailor.ID(), *retrievedOrder.Tailor())

	retrievedTailor, err := newUow.TailorRepository().Get(ctx, testTailor.ID())
	suite.Require().NoError(err)
	suite.Equal(1, retrievedTailor.ActiveOrders())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testStyle := createTestStyle(suite.T())
	testOrder := createTestOrder(suite.T(), testStyle.ID())
	testTailor := createTestTailor(suite.T())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.TailorRepository().Add(ctx, testTailor)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	_, err = newUow.TailorRepository().Get(ctx, testTailor.ID())
	suite.Require().Error(err, "Tailor should not exist after rollback")
}

// TestUnitOfWork_GetAllAvailableWithinTransaction verifies availability queries
// observe writes made earlier in the same transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_GetAllAvailableWithinTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testTailor := createTestTailor(suite.T())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.TailorRepository().Add(ctx, testTailor)
	suite.Require().NoError(err)

	available, err := uow.TailorRepository().GetAllAvailable(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(available, 1)
	suite.Equal(testTailor.ID(), available[0].ID())

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func createTestCustomer(t *testing.T) *customer.Customer {
	t.Helper()

	c, err := customer.NewCustomer(
		kernel.NewUUID(),
		"Amina Bello",
		"amina.bello@example.com",
		"+2348012345678",
		"14 Adeola Odeku St, Victoria Island, Lagos",
	)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func createTestStyle(t *testing.T) *style.GarmentStyle {
	t.Helper()

	s, err := style.NewGarmentStyle(kernel.NewUUID(), "Agbada", []string{"chest", "length", "sleeve"})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func createTestOrder(t *testing.T, styleID kernel.UUID) *order.Order {
	t.Helper()

	chest, err := kernel.NewMeasurement(102)
	if err != nil {
		t.Fatal(err)
	}

	item, err := order.NewItemDesign(styleID, "Agbada", "", nil,
		map[string]kernel.Measurement{"chest": chest})
	if err != nil {
		t.Fatal(err)
	}

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		false,
		[]order.ItemDesign{item},
		"",
		time.Now().AddDate(0, 0, 14).Truncate(time.Second).UTC(),
	)
	if err != nil {
		t.Fatal(err)
	}
	return o
}

func createTestTailor(t *testing.T) *tailor.Tailor {
	t.Helper()

	// Generalist: takes any style.
	tl, err := tailor.NewTailor(kernel.NewUUID(), "Chinedu Okafor", nil)
	if err != nil {
		t.Fatal(err)
	}
	return tl
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
