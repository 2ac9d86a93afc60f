// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "EXPENSE"
	CategoryTypeIncome  CategoryType = "INCOME"
)

// Category represents a user-owned transaction category.
type Category struct {
	ID        uuid.UUID
	Name      string
	Icon      string
	Color     string
	Type      CategoryType
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(name, icon, color string, categoryType CategoryType, userID uuid.UUID) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Icon:      icon,
		Color:     color,
		Type:      categoryType,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DefaultCategory is one entry of the fixed catalog seeded at registration.
type DefaultCategory struct {
	Name  string
	Icon  string
	Color string
	Type  CategoryType
}

// DefaultCategories is the frozen catalog seeded for every new user:
// 8 expense categories followed by 4 income categories.
var DefaultCategories = []DefaultCategory{
	{Name: "Food", Icon: "🍔", Color: "#EF4444", Type: CategoryTypeExpense},
	{Name: "Transport", Icon: "🚗", Color: "#F59E0B", Type: CategoryTypeExpense},
	{Name: "Housing", Icon: "🏠", Color: "#8B5CF6", Type: CategoryTypeExpense},
	{Name: "Health", Icon: "⚕️", Color: "#10B981", Type: CategoryTypeExpense},
	{Name: "Education", Icon: "📚", Color: "#3B82F6", Type: CategoryTypeExpense},
	{Name: "Leisure", Icon: "🎮", Color: "#EC4899", Type: CategoryTypeExpense},
	{Name: "Shopping", Icon: "🛍️", Color: "#F97316", Type: CategoryTypeExpense},
	{Name: "Other", Icon: "📦", Color: "#6B7280", Type: CategoryTypeExpense},
	{Name: "Salary", Icon: "💰", Color: "#10B981", Type: CategoryTypeIncome},
	{Name: "Freelance", Icon: "💼", Color: "#3B82F6", Type: CategoryTypeIncome},
	{Name: "Investments", Icon: "📈", Color: "#8B5CF6", Type: CategoryTypeIncome},
	{Name: "Other", Icon: "💵", Color: "#6B7280", Type: CategoryTypeIncome},
}
