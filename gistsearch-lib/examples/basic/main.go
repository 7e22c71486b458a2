// ABOUTME: Basic example showing a gist search with the gistsearch library
// ABOUTME: Demonstrates default configuration, cache reuse and error handling

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	gistsearch "gist-search-api/gistsearch-lib"
)

func main() {
	// Example 1: Create a client with default configuration
	client, err := gistsearch.NewClient(gistsearch.WithQuietMode())
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}
	defer client.Close()

	ctx := context.Background()

	// Example 2: Search a user's gists
	fmt.Println("=== Searching Gists ===")
	result, err := client.Search(ctx, "octocat", `(?i)hello\s+world`)
	if err != nil {
		log.Printf("Error searching: %v\n", err)
	} else {
		fmt.Printf("Matches: %d\n", len(result.Matches))
		for _, url := range result.Matches {
			fmt.Printf("- %s\n", url)
		}
		for _, s := range result.Skipped {
			fmt.Printf("skipped %s: %s\n", s.ID, s.Reason)
		}
	}

	// Example 3: Repeat the search; responses now come from the cache
	fmt.Println("\n=== Cached Search ===")
	start := time.Now()
	if _, err := client.Search(ctx, "octocat", "Ruby"); err == nil {
		fmt.Printf("Searched in %v\n", time.Since(start))
	}

	// Example 4: Error handling
	fmt.Println("\n=== Error Handling ===")
	_, err = client.Search(ctx, "octocat", "(")
	switch {
	case gistsearch.IsPatternError(err):
		fmt.Println("Invalid pattern:", err)
	case gistsearch.IsUpstreamError(err):
		fmt.Printf("GitHub answered %d: %v\n", gistsearch.UpstreamStatus(err), err)
	case gistsearch.IsNetworkError(err):
		fmt.Println("Network error occurred:", err)
	case err != nil:
		fmt.Println("Other error occurred:", err)
	}

	fmt.Println("\nDone!")
}
