package client

type NoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type HealthResponse struct {
	OK      bool   `json:"ok"`
	Version string `json:"version"`
	PID     int    `json:"pid"`
}
