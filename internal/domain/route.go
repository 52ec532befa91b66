package domain

type RouteStatus struct {
	Origin        string        `json:"origin"`
	Destination   string        `json:"destination"`
	OverallStatus TrafficStatus `json:"overall_status"`
	EstimatedTime string        `json:"estimated_time"`
	ActiveAlerts  int           `json:"active_alerts"`
}

type MapEmbed struct {
	Provider     string `json:"provider"`
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	EmbedURL     string `json:"embed_url"`
	ExternalLink string `json:"external_link"`
}

type MapLink struct {
	ReportID string `json:"report_id"`
	URL      string `json:"url"`
}
