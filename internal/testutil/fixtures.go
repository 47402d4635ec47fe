package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"financebook/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plain-text password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithUsername(t, db, fmt.Sprintf("user%d", nextID()))
}

// CreateTestUserWithUsername creates a user with the given username.
func CreateTestUserWithUsername(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username: username,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategoryType creates a category type with the given name.
func CreateTestCategoryType(t *testing.T, db *gorm.DB, userID uint, name string) *models.CategoryType {
	t.Helper()

	ct := &models.CategoryType{UserID: userID, Name: name}
	if err := db.Create(ct).Error; err != nil {
		t.Fatalf("failed to create test category type: %v", err)
	}
	return ct
}

// CreateTestCategory creates a uniquely named category of the given type.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID, typeID uint, parentID *uint) *models.Category {
	t.Helper()
	return CreateTestCategoryWithName(t, db, userID, typeID, parentID, fmt.Sprintf("Test Category %d", nextID()))
}

// CreateTestCategoryWithName creates a category with the given name.
func CreateTestCategoryWithName(t *testing.T, db *gorm.DB, userID, typeID uint, parentID *uint, name string) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID:   userID,
		Name:     name,
		TypeID:   typeID,
		ParentID: parentID,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestRecipient creates a uniquely named recipient.
func CreateTestRecipient(t *testing.T, db *gorm.DB, userID uint) *models.Recipient {
	t.Helper()

	recipient := &models.Recipient{
		UserID: userID,
		Name:   fmt.Sprintf("Test Recipient %d", nextID()),
	}
	if err := db.Create(recipient).Error; err != nil {
		t.Fatalf("failed to create test recipient: %v", err)
	}
	return recipient
}

// CreateTestPaymentItem creates a payment item with the given amount,
// dated today and linked to categories.
func CreateTestPaymentItem(t *testing.T, db *gorm.DB, userID uint, amount string, categories ...models.Category) *models.PaymentItem {
	t.Helper()

	item := &models.PaymentItem{
		UserID:     userID,
		Amount:     decimal.RequireFromString(amount),
		Date:       time.Now().UTC().Truncate(24 * time.Hour),
		Categories: categories,
	}
	if len(categories) > 0 {
		item.StandardCategoryID = &categories[0].ID
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test payment item: %v", err)
	}
	return item
}
