package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"testing"
	"time"

	"github.com/Debanga-06/Expense-Tracker/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	username string
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		username: fmt.Sprintf("testuser_%s", suffix),
		email:    fmt.Sprintf("testuser_%s@example.com", suffix),
		password: "testpassword123",
	}
}

// WithUsername sets the username
func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     b.username,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// BuildAndLogin creates the user, logs in via the API and returns the user
// together with an http.Client carrying the session cookie.
func (b *UserBuilder) BuildAndLogin(t *testing.T, ts *TestServer) (*domain.User, *http.Client) {
	t.Helper()

	user, password := b.Build(t, ts.DB.DB)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to create cookie jar: %v", err)
	}
	client := &http.Client{Jar: jar}

	body, _ := json.Marshal(map[string]string{
		"username": user.Username,
		"password": password,
	})
	resp, err := client.Post(ts.URL("/login"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to log in: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected login status code: %d", resp.StatusCode)
	}

	return user, client
}

// ExpenseBuilder creates test expenses with a builder pattern
type ExpenseBuilder struct {
	owner       *domain.User
	amount      float64
	category    string
	description string
	date        string
}

// NewExpenseBuilder creates a new ExpenseBuilder with default values
func NewExpenseBuilder() *ExpenseBuilder {
	return &ExpenseBuilder{
		amount:   25.50,
		category: "Food",
		date:     "2024-01-15",
	}
}

// WithOwner sets the expense owner
func (b *ExpenseBuilder) WithOwner(user *domain.User) *ExpenseBuilder {
	b.owner = user
	return b
}

// WithAmount sets the amount
func (b *ExpenseBuilder) WithAmount(amount float64) *ExpenseBuilder {
	b.amount = amount
	return b
}

// WithCategory sets the category
func (b *ExpenseBuilder) WithCategory(category string) *ExpenseBuilder {
	b.category = category
	return b
}

// WithDescription sets the description
func (b *ExpenseBuilder) WithDescription(description string) *ExpenseBuilder {
	b.description = description
	return b
}

// WithDate sets the date in YYYY-MM-DD form
func (b *ExpenseBuilder) WithDate(date string) *ExpenseBuilder {
	b.date = date
	return b
}

// Build creates the expense in the database
func (b *ExpenseBuilder) Build(t *testing.T, db *gorm.DB) *domain.Expense {
	t.Helper()

	if b.owner == nil {
		user, _ := NewUserBuilder().Build(t, db)
		b.owner = user
	}

	date, err := time.Parse("2006-01-02", b.date)
	if err != nil {
		t.Fatalf("invalid expense date %q: %v", b.date, err)
	}

	expense := &domain.Expense{
		ID:          uuid.New(),
		OwnerID:     b.owner.ID,
		Amount:      b.amount,
		Category:    b.category,
		Description: b.description,
		Date:        datatypes.Date(date),
		CreatedAt:   time.Now(),
	}

	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create expense: %v", err)
	}

	return expense
}

// DoJSON sends a JSON request with the given client and returns the response
func DoJSON(t *testing.T, client *http.Client, method, url string, body interface{}) *http.Response {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}
