package main

// WordList represents the JSON structure of the answer word file
type WordList struct {
	Words []string `json:"words"`
}

// ErrorResponse is the JSON body returned for 4xx/5xx failures
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
