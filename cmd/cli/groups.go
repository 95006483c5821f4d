package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
)

var (
	groupTitle       string
	groupSlug        string
	groupDescription string
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Manage groups",
}

var groupsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a group",
	RunE: func(cmd *cobra.Command, args []string) error {
		if groupTitle == "" || groupSlug == "" {
			return fmt.Errorf("both --title and --slug are required")
		}
		body, err := apiPost("/groups", map[string]interface{}{
			"title":       groupTitle,
			"slug":        groupSlug,
			"description": groupDescription,
		})
		if err != nil {
			return err
		}
		fmt.Println(string(body))
		return nil
	},
}

func init() {
	groupsCreateCmd.Flags().StringVar(&groupTitle, "title", "", "Group title")
	groupsCreateCmd.Flags().StringVar(&groupSlug, "slug", "", "URL slug (lowercase letters, digits, hyphens)")
	groupsCreateCmd.Flags().StringVar(&groupDescription, "description", "", "Group description")
	groupsCmd.AddCommand(groupsCreateCmd)
}

// apiPost sends an authenticated JSON POST and returns the response body.
func apiPost(path string, payload map[string]interface{}) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		bodyBytes, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequest("POST", apiURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+authToken)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp map[string]interface{}
		_ = json.Unmarshal(body, &errResp)
		if msg, ok := errResp["message"].(string); ok {
			return nil, fmt.Errorf("API error: %s", msg)
		}
		return nil, fmt.Errorf("API error: status %d", resp.StatusCode)
	}

	return body, nil
}
