package dto

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Storage string `json:"storage" example:"postgres"`
	Courses int64  `json:"courses" example:"42"`
}
