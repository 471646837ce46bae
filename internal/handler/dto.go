package handler

const (
	statusSuccess = "success"
	statusFailure = "failure"
)

type GenreRequest struct {
	Prompt string `json:"prompt"`
}

type GenreResponse struct {
	Status string   `json:"status"`
	Genres []string `json:"genres"`
}

type ErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Provider string `json:"provider"`
}
