package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/andrewpaige1/revision-api/auth"
	"github.com/andrewpaige1/revision-api/config"
	"github.com/andrewpaige1/revision-api/logger"
	"github.com/andrewpaige1/revision-api/models"
	"github.com/andrewpaige1/revision-api/storage"
	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// TestPassword is the plain password of every fixture client.
const TestPassword = "correct-horse"

// NewTestDB opens a private in-memory sqlite database, migrated and seeded
// with the two default categories.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	// every connection to :memory: is a new empty database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := storage.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func TestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	logg, err := logger.New("test")
	if err != nil {
		t.Fatalf("Failed to build logger: %v", err)
	}
	return logg
}

func NewTestStore(t *testing.T) *storage.Store {
	t.Helper()
	return storage.New(NewTestDB(t), TestLogger(t))
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() config.Config {
	return config.Config{
		Port:       8080,
		LogMode:    "test",
		Database:   config.DatabaseConfig{Driver: "sqlite", URL: ":memory:"},
		JWT:        config.JWTConfig{Secret: "test-secret", Issuer: "revision-api-test", Audience: "revision-clients-test"},
		CORS:       config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		BcryptCost: bcrypt.MinCost,
	}
}

func NewTokenIssuer() *auth.TokenIssuer {
	cfg := GetTestConfig()
	return auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience)
}

// CreateTestClient inserts a client whose password is TestPassword.
func CreateTestClient(t *testing.T, db *gorm.DB, pseudo string, isAdmin bool) models.Client {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	client := models.Client{
		Pseudo:   pseudo,
		Password: string(hash),
		Email:    pseudo + "@example.com",
		IsAdmin:  isAdmin,
	}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("Failed to create test client: %v", err)
	}
	return client
}

func CreateTestDeck(t *testing.T, db *gorm.DB, clientID uint, name string) models.Deck {
	t.Helper()
	deck := models.Deck{ClientID: clientID, DeckName: name}
	if err := db.Create(&deck).Error; err != nil {
		t.Fatalf("Failed to create test deck: %v", err)
	}
	return deck
}

func CreateTestCard(t *testing.T, db *gorm.DB, deckID, categoryID uint, front string) models.Card {
	t.Helper()
	card := models.Card{DeckID: deckID, CategoryID: categoryID, FrontCard: front}
	if err := db.Create(&card).Error; err != nil {
		t.Fatalf("Failed to create test card: %v", err)
	}
	return card
}

func CreateTestSession(t *testing.T, db *gorm.DB, deckID uint, completed bool) models.Session {
	t.Helper()
	session := models.Session{DeckID: deckID, Completed: completed}
	if err := db.Create(&session).Error; err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}
	return session
}

func CreateTestCategory(t *testing.T, db *gorm.DB, name string, order int) models.RevisionCategory {
	t.Helper()
	category := models.RevisionCategory{CategoryName: name, DifficultyOrder: order}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("Failed to create test category: %v", err)
	}
	return category
}

// TokenFor signs a token for client, with the client or admin role
// following its is_admin flag.
func TokenFor(t *testing.T, client models.Client) string {
	t.Helper()

	role := auth.RoleClient
	identity := auth.Identity{Pseudo: client.Pseudo}
	if client.IsAdmin {
		role = auth.RoleAdmin
	} else {
		id := client.ID
		identity.ID = &id
	}
	token, err := NewTokenIssuer().CreateToken(role, identity, auth.LoginTokenTTL)
	if err != nil {
		t.Fatalf("Failed to create token: %v", err)
	}
	return token
}

// WithCaller puts validated claims for the caller in the request context, as
// the bearer middleware does.
func WithCaller(r *http.Request, role auth.Role, pseudo string) *http.Request {
	claims := &validator.ValidatedClaims{
		CustomClaims: &auth.CustomClaims{
			Status: role,
			Value:  auth.Identity{Pseudo: pseudo},
		},
	}
	claims.RegisteredClaims.Subject = pseudo
	return r.WithContext(context.WithValue(r.Context(), jwtmiddleware.ContextKey{}, claims))
}

// MakeRequest builds a request with an optional JSON body and bearer token.
func MakeRequest(t *testing.T, method, path string, body interface{}, token string) *http.Request {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// AssertStatus checks the response status code
func AssertStatus(t *testing.T, rr *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if rr.Code != expected {
		t.Fatalf("Expected status %d, got %d. Body: %s", expected, rr.Code, rr.Body.String())
	}
}

// AssertJSON decodes the response body into v
func AssertJSON(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v. Body: %s", err, rr.Body.String())
	}
}

// AssertError checks the status and the {"error": ...} message of a response.
func AssertError(t *testing.T, rr *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	AssertStatus(t, rr, status)
	var body models.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode error body %q: %v", strings.TrimSpace(rr.Body.String()), err)
	}
	if body.Error != message {
		t.Fatalf("Expected error %q, got %q", message, body.Error)
	}
}

