package response_models

type UpdateStatusResponse struct {
	UpdateAvailable bool   `json:"updateAvailable"`
	CurrentVersion  string `json:"currentVersion"`
	LatestVersion   string `json:"latestVersion,omitempty"`
	LastChecked     string `json:"lastChecked,omitempty"`
}

type UpdateCheckResult struct {
	HasUpdate   bool   `json:"hasUpdate"`
	Version     string `json:"version,omitempty"`
	DownloadURL string `json:"downloadUrl,omitempty"`
}
