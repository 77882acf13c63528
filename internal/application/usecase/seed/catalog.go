// Package seed populates starter data for brand-new users.
package seed

import "github.com/pennywise/backend/internal/domain/entity"

// defaultCategory describes one entry of the starter category catalog.
type defaultCategory struct {
	Name  string
	Type  entity.CategoryType
	Color string
	Icon  string
}

// sampleTransaction describes one starter transaction, anchored N days
// before seed time.
type sampleTransaction struct {
	CategoryName string
	AmountCents  int64
	Description  string
	Type         entity.TransactionType
	DaysAgo      int
}

// sampleBudget describes one starter budget for the current month.
type sampleBudget struct {
	CategoryName string
	AmountCents  int64
}

// defaultCategories is the fixed starter catalog.
var defaultCategories = []defaultCategory{
	// Income categories
	{Name: "Salary", Type: entity.CategoryTypeIncome, Color: "#10b981", Icon: "💰"},
	{Name: "Freelance", Type: entity.CategoryTypeIncome, Color: "#14b8a6", Icon: "💼"},
	{Name: "Investments", Type: entity.CategoryTypeIncome, Color: "#06b6d4", Icon: "📈"},
	{Name: "Other Income", Type: entity.CategoryTypeIncome, Color: "#0ea5e9", Icon: "💵"},

	// Expense categories
	{Name: "Groceries", Type: entity.CategoryTypeExpense, Color: "#ef4444", Icon: "🛒"},
	{Name: "Rent", Type: entity.CategoryTypeExpense, Color: "#f97316", Icon: "🏠"},
	{Name: "Utilities", Type: entity.CategoryTypeExpense, Color: "#f59e0b", Icon: "⚡"},
	{Name: "Transportation", Type: entity.CategoryTypeExpense, Color: "#eab308", Icon: "🚗"},
	{Name: "Entertainment", Type: entity.CategoryTypeExpense, Color: "#a855f7", Icon: "🎬"},
	{Name: "Dining Out", Type: entity.CategoryTypeExpense, Color: "#ec4899", Icon: "🍽️"},
	{Name: "Healthcare", Type: entity.CategoryTypeExpense, Color: "#8b5cf6", Icon: "🏥"},
	{Name: "Shopping", Type: entity.CategoryTypeExpense, Color: "#d946ef", Icon: "🛍️"},
	{Name: "Education", Type: entity.CategoryTypeExpense, Color: "#6366f1", Icon: "📚"},
	{Name: "Subscriptions", Type: entity.CategoryTypeExpense, Color: "#3b82f6", Icon: "📱"},
}

// sampleTransactions is the fixed starter transaction list.
var sampleTransactions = []sampleTransaction{
	// Income
	{CategoryName: "Salary", AmountCents: 500000, Description: "Monthly salary", Type: entity.TransactionTypeIncome, DaysAgo: 1},
	{CategoryName: "Freelance", AmountCents: 150000, Description: "Website project", Type: entity.TransactionTypeIncome, DaysAgo: 5},
	{CategoryName: "Investments", AmountCents: 25000, Description: "Dividend payment", Type: entity.TransactionTypeIncome, DaysAgo: 10},

	// Expenses across the catalog
	{CategoryName: "Rent", AmountCents: 180000, Description: "Monthly rent", Type: entity.TransactionTypeExpense, DaysAgo: 2},
	{CategoryName: "Groceries", AmountCents: 12500, Description: "Weekly groceries", Type: entity.TransactionTypeExpense, DaysAgo: 1},
	{CategoryName: "Groceries", AmountCents: 8700, Description: "Supermarket", Type: entity.TransactionTypeExpense, DaysAgo: 4},
	{CategoryName: "Groceries", AmountCents: 15200, Description: "Farmers market", Type: entity.TransactionTypeExpense, DaysAgo: 7},
	{CategoryName: "Utilities", AmountCents: 15000, Description: "Electricity bill", Type: entity.TransactionTypeExpense, DaysAgo: 3},
	{CategoryName: "Utilities", AmountCents: 8000, Description: "Water bill", Type: entity.TransactionTypeExpense, DaysAgo: 5},
	{CategoryName: "Transportation", AmountCents: 6000, Description: "Gas", Type: entity.TransactionTypeExpense, DaysAgo: 2},
	{CategoryName: "Transportation", AmountCents: 4500, Description: "Parking", Type: entity.TransactionTypeExpense, DaysAgo: 6},
	{CategoryName: "Transportation", AmountCents: 12000, Description: "Car maintenance", Type: entity.TransactionTypeExpense, DaysAgo: 8},
	{CategoryName: "Entertainment", AmountCents: 5000, Description: "Movie tickets", Type: entity.TransactionTypeExpense, DaysAgo: 3},
	{CategoryName: "Entertainment", AmountCents: 8000, Description: "Concert", Type: entity.TransactionTypeExpense, DaysAgo: 9},
	{CategoryName: "Dining Out", AmountCents: 4500, Description: "Restaurant dinner", Type: entity.TransactionTypeExpense, DaysAgo: 1},
	{CategoryName: "Dining Out", AmountCents: 3200, Description: "Lunch", Type: entity.TransactionTypeExpense, DaysAgo: 4},
	{CategoryName: "Dining Out", AmountCents: 6800, Description: "Weekend brunch", Type: entity.TransactionTypeExpense, DaysAgo: 7},
	{CategoryName: "Healthcare", AmountCents: 15000, Description: "Doctor visit", Type: entity.TransactionTypeExpense, DaysAgo: 10},
	{CategoryName: "Healthcare", AmountCents: 8500, Description: "Pharmacy", Type: entity.TransactionTypeExpense, DaysAgo: 12},
	{CategoryName: "Shopping", AmountCents: 12000, Description: "Clothing", Type: entity.TransactionTypeExpense, DaysAgo: 5},
	{CategoryName: "Shopping", AmountCents: 8000, Description: "Electronics", Type: entity.TransactionTypeExpense, DaysAgo: 11},
	{CategoryName: "Education", AmountCents: 20000, Description: "Online course", Type: entity.TransactionTypeExpense, DaysAgo: 6},
	{CategoryName: "Subscriptions", AmountCents: 1500, Description: "Netflix", Type: entity.TransactionTypeExpense, DaysAgo: 1},
	{CategoryName: "Subscriptions", AmountCents: 1000, Description: "Spotify", Type: entity.TransactionTypeExpense, DaysAgo: 1},
	{CategoryName: "Subscriptions", AmountCents: 2000, Description: "Cloud storage", Type: entity.TransactionTypeExpense, DaysAgo: 3},
}

// sampleBudgets is the fixed starter budget list for the current month.
var sampleBudgets = []sampleBudget{
	{CategoryName: "Groceries", AmountCents: 50000},
	{CategoryName: "Dining Out", AmountCents: 20000},
	{CategoryName: "Transportation", AmountCents: 30000},
	{CategoryName: "Entertainment", AmountCents: 15000},
	{CategoryName: "Shopping", AmountCents: 25000},
	{CategoryName: "Utilities", AmountCents: 25000},
}
