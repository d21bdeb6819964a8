package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
)

var linearAPIURL = "https://api.linear.app/graphql"

const assignedIssuesQuery = `query {
  viewer {
    assignedIssues(first: 100) {
      nodes {
        identifier
        title
        url
        estimate
        priority
        createdAt
        completedAt
        state { name }
      }
    }
  }
}`

type linearResponse struct {
	Data struct {
		Viewer *struct {
			AssignedIssues struct {
				Nodes []RawIssue `json:"nodes"`
			} `json:"assignedIssues"`
		} `json:"viewer"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// FetchAssignedIssues pulls the viewer's assigned issues from the Linear
// GraphQL API in a single request.
func FetchAssignedIssues(cfg Config) ([]RawIssue, error) {
	reqBody, err := json.Marshal(map[string]string{"query": assignedIssuesQuery})
	if err != nil {
		return nil, fmt.Errorf("marshaling query: %w", err)
	}

	req, err := http.NewRequest("POST", linearAPIURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", cfg.LinearAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := externalHTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("Linear API returned %d: %s", resp.StatusCode, string(body))
	}

	var result linearResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}
	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("Linear API error: %s", result.Errors[0].Message)
	}
	if result.Data.Viewer == nil {
		return nil, fmt.Errorf("Linear response has no viewer data")
	}

	nodes := result.Data.Viewer.AssignedIssues.Nodes
	log.Printf("linear fetch done issues=%d", len(nodes))
	return nodes, nil
}
