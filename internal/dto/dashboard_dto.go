package dto

type DashboardStats struct {
	TotalRequests   int64   `json:"total_requests"`
	PendingRequests int64   `json:"pending_requests"`
	CompletedSwaps  int64   `json:"completed_swaps"`
	AverageRating   float64 `json:"average_rating"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
