package data

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed demo.json
var demoJSON []byte

// DemoBoard is a board plus the text or URL inputs that become its blocks, in order
type DemoBoard struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Inputs      []string `json:"inputs"`
}

// Demo returns the boards created by `boerdctl seed --demo`
func Demo() ([]DemoBoard, error) {
	var boards []DemoBoard
	if err := json.Unmarshal(demoJSON, &boards); err != nil {
		return nil, fmt.Errorf("failed to parse demo data: %w", err)
	}
	return boards, nil
}
