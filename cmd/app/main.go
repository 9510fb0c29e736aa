package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"atelier/cmd"
	atelierhttp "atelier/internal/adapters/in/http"
	"atelier/internal/adapters/out/postgres/customerrepo"
	"atelier/internal/adapters/out/postgres/orderrepo"
	"atelier/internal/adapters/out/postgres/stylerepo"
	"atelier/internal/adapters/out/postgres/tailorrepo"
	"atelier/internal/adapters/out/stylist"
	"atelier/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)

	advisor, err := stylist.NewGenAIStyleAdvisor(context.Background(), configs.GenAIAPIKey, configs.GenAIModel)
	if err != nil {
		log.Fatalf("Failed to create style advisor: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, advisor)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateAssignTailorCommandHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:    goDotEnvVariable("HTTP_PORT"),
		DBHost:      goDotEnvVariable("DB_HOST"),
		DBPort:      goDotEnvVariable("DB_PORT"),
		DBUser:      goDotEnvVariable("DB_USER"),
		DBPassword:  goDotEnvVariable("DB_PASSWORD"),
		DBName:      goDotEnvVariable("DB_NAME"),
		DBSslMode:   goDotEnvVariable("DB_SSLMODE"),
		GenAIAPIKey: goDotEnvVariable("GENAI_API_KEY"),
		GenAIModel:  goDotEnvVariable("GENAI_MODEL"),
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

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&stylerepo.StyleDTO{},
		&tailorrepo.TailorDTO{},
		&orderrepo.OrderDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := atelierhttp.NewServer(
		app.CreateCreateCustomerCommandHandler(),
		app.CreateUpdateCustomerCommandHandler(),
		app.CreateCreateStyleCommandHandler(),
		app.CreateRegisterTailorCommandHandler(),
		app.CreateSubmitOrderCommandHandler(),
		app.CreateCompleteOrderCommandHandler(),
		app.CreateGetAllCustomersQueryHandler(),
		app.CreateGetAllTailorsQueryHandler(),
		app.CreateGetUncompletedOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.UnitOfWorkFactory(),
		app.StyleAdvisor(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
