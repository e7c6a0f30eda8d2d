package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"shop/cmd"
	shophttp "shop/internal/adapters/in/http"
	"shop/internal/adapters/out/postgres/itemrepo"
	"shop/internal/adapters/out/postgres/memberrepo"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateGetLowStockItemsQueryHandler(),
		configs.LowStockThreshold,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		LowStockThreshold: goDotEnvIntVariable("LOW_STOCK_THRESHOLD"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvIntVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	// TranslateError lets repositories map unique index violations
	// to domain errors.
	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&memberrepo.MemberDTO{},
		&itemrepo.ItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.DeliveryDTO{},
		&orderrepo.OrderLineDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := shophttp.NewServer(
		app.CreateRegisterMemberCommandHandler(),
		app.CreateChangeMemberAddressCommandHandler(),
		app.CreateAddItemCommandHandler(),
		app.CreateUpdateItemCommandHandler(),
		app.CreatePlaceOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateGetAllMembersQueryHandler(),
		app.CreateGetAllItemsQueryHandler(),
		app.CreateGetLowStockItemsQueryHandler(),
		app.CreateSearchOrdersQueryHandler(),
		app.CreateSearchOrderSummariesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
