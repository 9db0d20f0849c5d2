package main_test

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	mainapp "bookstore"
	"bookstore/internal/database"
	"bookstore/internal/services"
	"bookstore/pkg/password"
)

var (
	v           *viper.Viper
	db          *gorm.DB
	app         *fiber.App
	authService *services.AuthService
)

func TestMain(m *testing.M) {
	v = viper.New()
	v.SetDefault("APP_PORT", ":8081")
	v.SetDefault("JWT_SECRET", "test_jwt_secret")
	v.AutomaticEnv()

	var err error
	db, err = gorm.Open(sqlite.Open("file:mainapp?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	hasher := password.NewBcryptHasher()
	if err := database.Migrate(db, "", hasher); err != nil {
		log.Fatalf("Failed to migrate test database: %v", err)
	}

	// No broker in tests; store events stay persisted-only.
	app, authService = mainapp.NewApp(db, hasher, v.GetString("JWT_SECRET"), nil)

	code := m.Run()

	log.Println("Shutting down test environment...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	os.Exit(code)
}

func TestServerStartupAndHealthCheck(t *testing.T) {
	appPort := v.GetString("APP_PORT")
	if appPort == "" {
		appPort = ":8081"
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := app.Listen(appPort); err != nil && err != http.ErrServerClosed {
			log.Printf("Test server listen error: %v", err)
			cancel()
		}
	}()
	defer cancel()

	// Give the server a moment to start
	time.Sleep(100 * time.Millisecond)

	t.Run("HealthCheck", func(t *testing.T) {
		healthCheckURL := fmt.Sprintf("http://localhost%s/health", appPort)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, healthCheckURL, nil)
		if err != nil {
			t.Fatalf("Failed to create health check request: %v", err)
		}

		client := &http.Client{}
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("Health check request failed: %v", err)
		}
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("Failed to read health check response body: %v", err)
		}
		assert.Contains(t, string(bodyBytes), "\"status\":\"healthy\"")
	})

	t.Run("UnauthenticatedAccess", func(t *testing.T) {
		booksURL := fmt.Sprintf("http://localhost%s/api/v1/books", appPort)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, booksURL, nil)
		if err != nil {
			t.Fatalf("Failed to create books request: %v", err)
		}

		client := &http.Client{}
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("Books request failed without token: %v", err)
		}
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("AdminBootstrapToken", func(t *testing.T) {
		user, token, err := authService.Login(database.DefaultAdminUsername, database.DefaultAdminPassword)
		if err != nil {
			t.Fatalf("Default admin login failed: %v", err)
		}
		assert.NotEmpty(t, token)
		assert.Equal(t, "admin", string(user.Role))
	})
}
