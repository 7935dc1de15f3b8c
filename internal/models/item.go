package models

// Item records which drawer a physical item was put in.
// Timestamp is free text captured by the store at append time.
type Item struct {
	Name      string `json:"item"`
	Drawer    int    `json:"drawer"`
	Notes     string `json:"notes"`
	AddedBy   string `json:"added_by"`
	Timestamp string `json:"timestamp"`
}
