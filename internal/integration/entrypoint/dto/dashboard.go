package dto

import (
	"github.com/pennywise/backend/internal/application/usecase/dashboard"
)

// DashboardRangeQuery represents the date range query parameters shared by
// the dashboard endpoints. Missing values surface coded errors downstream.
type DashboardRangeQuery struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// DashboardStatsResponse represents aggregated totals for a date range.
type DashboardStatsResponse struct {
	TotalIncomeCents   int64 `json:"totalIncomeCents"`
	TotalExpensesCents int64 `json:"totalExpensesCents"`
	BalanceCents       int64 `json:"balanceCents"`
	TransactionCount   int   `json:"transactionCount"`
}

// CategorySpendingResponse represents one category's totals for a date range.
type CategorySpendingResponse struct {
	CategoryID    string `json:"categoryId"`
	CategoryName  string `json:"categoryName"`
	CategoryColor string `json:"categoryColor"`
	TotalCents    int64  `json:"totalCents"`
	Type          string `json:"type"`
}

// CategorySpendingListResponse represents the category spending breakdown.
type CategorySpendingListResponse struct {
	Categories []CategorySpendingResponse `json:"categories"`
}

// ToDashboardStatsResponse converts a stats output to its response DTO.
func ToDashboardStatsResponse(output *dashboard.GetStatsOutput) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalIncomeCents:   output.TotalIncomeCents,
		TotalExpensesCents: output.TotalExpensesCents,
		BalanceCents:       output.BalanceCents,
		TransactionCount:   output.TransactionCount,
	}
}

// ToCategorySpendingListResponse converts spending items to their response DTO.
func ToCategorySpendingListResponse(items []*dashboard.CategorySpendingItem) CategorySpendingListResponse {
	categories := make([]CategorySpendingResponse, len(items))
	for i, item := range items {
		categories[i] = CategorySpendingResponse{
			CategoryID:    item.CategoryID.String(),
			CategoryName:  item.CategoryName,
			CategoryColor: item.CategoryColor,
			TotalCents:    item.TotalCents,
			Type:          string(item.Type),
		}
	}
	return CategorySpendingListResponse{
		Categories: categories,
	}
}
