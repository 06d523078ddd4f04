package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Pretty print JSON helper
func prettyPrint(body []byte) {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		fmt.Println(string(body))
		return
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func post(url string, payload interface{}) ([]byte, int, error) {
	jsonBody, _ := json.Marshal(payload)
	resp, err := http.Post(baseURL+url, "application/json", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	return body, resp.StatusCode, err
}

func runCase(title, url string, payload interface{}) {
	color.Cyan("\n=== %s ===", title)
	body, status, err := post(url, payload)
	if err != nil {
		color.Red("Request failed: %v", err)
		os.Exit(1)
	}
	if status != http.StatusOK {
		color.Red("Status: %d", status)
	} else {
		color.Green("Status: %d", status)
	}
	prettyPrint(body)
}

func main() {
	runCase("Livestock search with price bound", "/catalog/v1/search", map[string]interface{}{
		"query": "healthy goats under 50k in Lagos",
	})

	runCase("Egg search by packaging", "/catalog/v1/search", map[string]interface{}{
		"query": "fresh chicken crates under 30k",
	})

	runCase("Explicit catalog selector", "/catalog/v1/search", map[string]interface{}{
		"query":   "fresh eggs",
		"catalog": "livestock",
	})

	runCase("Chat turn", "/chat/v1/send", map[string]interface{}{
		"message": "do you have any boer goats for sale?",
	})

	runCase("Chat with history", "/chat/v1/send", map[string]interface{}{
		"message": "how much was the first one?",
		"history": []map[string]string{
			{"role": "user", "content": "any goats?"},
			{"role": "assistant", "content": "Yes, we have a Boer buck in Lagos."},
		},
	})

	color.Green("\nAll cases executed.")
}
