package catalog

// catalogDTO mirrors the JSON catalog file layout.
type catalogDTO struct {
	Categories []categoryDTO `json:"categories"`
	Records    []recordDTO   `json:"records"`
}

type categoryDTO struct {
	ID    string            `json:"id"`
	Name  map[string]string `json:"name"`
	Order int               `json:"order"`
	Icon  string            `json:"icon,omitempty"`
}

type recordDTO struct {
	ID          string            `json:"id"`
	Category    string            `json:"category"`
	Status      string            `json:"status"`
	Title       map[string]string `json:"title"`
	Description map[string]string `json:"description,omitempty"`
	Details     map[string]string `json:"details,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	Examples    []string          `json:"examples,omitempty"`
	Version     string            `json:"version,omitempty"`
}
