package models

type Project struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription,omitempty"`
	Image           string   `json:"image,omitempty"`
	Category        string   `json:"category,omitempty"`
	Technologies    []string `json:"technologies,omitempty"`
	Featured        bool     `json:"featured"`
	LiveURL         string   `json:"liveUrl,omitempty"`
	GithubURL       string   `json:"githubUrl,omitempty"`
	CompletedDate   string   `json:"completedDate"` // YYYY-MM-DD, set at creation
}
