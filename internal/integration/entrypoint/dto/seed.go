package dto

import (
	"github.com/pennywise/backend/internal/application/usecase/seed"
)

// SeedResponse represents the outcome of a seeding request.
type SeedResponse struct {
	Seeded            bool   `json:"seeded"`
	Message           string `json:"message"`
	CategoriesCount   int    `json:"categoriesCount"`
	TransactionsCount int    `json:"transactionsCount"`
	BudgetsCount      int    `json:"budgetsCount"`
}

// ToSeedResponse converts a seed output to its response DTO.
func ToSeedResponse(output *seed.SeedUserDataOutput) SeedResponse {
	return SeedResponse{
		Seeded:            output.Seeded,
		Message:           output.Message,
		CategoriesCount:   output.CategoriesCount,
		TransactionsCount: output.TransactionsCount,
		BudgetsCount:      output.BudgetsCount,
	}
}
