package domain

import "time"

type Advisory struct {
	Text        string    `json:"text"`
	GeneratedAt time.Time `json:"generated_at"`
	ReportCount int       `json:"report_count"`
	Degraded    bool      `json:"degraded"`
	// FeedVersion identifies the feed snapshot the text was computed from.
	FeedVersion string `json:"feed_version,omitempty"`
}

// Extraction is the structured part recovered from a free-form social post.
type Extraction struct {
	Description string        `json:"description"`
	Status      TrafficStatus `json:"status"`
}

type IngestRequest struct {
	Text     string `json:"text" validate:"notblank"`
	Source   string `json:"source" validate:"notblank"`
	Avatar   string `json:"avatar"`
	Location string `json:"location"`
	MediaURL string `json:"media_url"`
}

// GenerateRequest is what the text-generation collaborator receives.
type GenerateRequest struct {
	Model             string         `json:"model"`
	Prompt            string         `json:"prompt"`
	SystemInstruction string         `json:"system_instruction"`
	ResponseSchema    map[string]any `json:"response_schema,omitempty"`
}
