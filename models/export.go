package models

type ExportRequest struct {
	Text     string `json:"text"`
	WordList string `json:"wordList"`
	Mode     string `json:"mode"`
	Target   string `json:"target"`
	Boundary string `json:"boundary"`
	Found    bool   `json:"found"`
	Copy     bool   `json:"copy"`
}

type ExportResponse struct {
	Status  string   `json:"status"`
	Count   int      `json:"count"`
	Words   []string `json:"words"`
	Content string   `json:"content"`
	Error   string   `json:"error,omitempty"`
}
