package storyapi

// ChatRequest is the JSON body posted for one user turn
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the JSON body returned by the story backend
type ChatResponse struct {
	Message  *string `json:"message"`
	ImageURL string  `json:"image_url,omitempty"`
	Relevant *bool   `json:"relevant,omitempty"`
}
