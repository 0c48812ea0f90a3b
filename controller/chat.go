package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const openAIEndpoint = "https://api.openai.com/v1/chat/completions"

const chatSystemPrompt = "You are a friendly assistant for an online bookstore. " +
	"Help visitors find books, explain the catalog categories, and walk them " +
	"through requesting books we don't stock yet. Keep answers short and concrete."

var chatHTTPClient = &http.Client{Timeout: 15 * time.Second}

// cannedResponses is the fallback decision table, checked in order. The first
// entry whose keywords appear in the message wins.
var cannedResponses = []struct {
	keywords []string
	reply    string
}{
	{
		keywords: []string{"hello", "hi", "hey"},
		reply: "Hello! Welcome to the bookstore.\n" +
			"I can help you search the catalog, suggest something to read,\n" +
			"or show you how to request a book we don't have yet.",
	},
	{
		keywords: []string{"search", "find", "looking for"},
		reply: "You can search the whole catalog from the search bar, or use\n" +
			"/api/search/books?q=<title or author> directly.\n" +
			"Searches match titles, authors and descriptions.",
	},
	{
		keywords: []string{"recommend", "suggest"},
		reply: "Have a look at the Trending shelf for what other readers are\n" +
			"viewing right now, or browse by genre if you already know what\n" +
			"you're in the mood for.",
	},
	{
		keywords: []string{"category", "categories", "genre"},
		reply: "We shelve books in ten categories: fiction, nonfiction, mystery,\n" +
			"romance, scifi, fantasy, biography, history, selfhelp and children.\n" +
			"Each category has its own browsable section.",
	},
	{
		keywords: []string{"request"},
		reply: "Can't find a book? Submit a book request with the title, author\n" +
			"and your email. You can upvote existing requests too -- popular\n" +
			"requests get reviewed by our admins first.",
	},
	{
		keywords: []string{"help", "feature", "how do", "how to"},
		reply: "Here's what I can help with:\n" +
			"- searching and browsing the catalog\n" +
			"- trending and featured books\n" +
			"- requesting books we don't stock\n" +
			"- tracking the status of your requests",
	},
}

const defaultCannedReply = "I'm not sure about that one. Try asking about " +
	"searching the catalog, our categories, recommendations, or how to request a book."

// CannedReply picks the fallback response for a message by case-insensitive
// keyword match. It never returns an empty string.
func CannedReply(message string) string {
	lower := strings.ToLower(message)
	for _, entry := range cannedResponses {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.reply
			}
		}
	}
	return defaultCannedReply
}

func askOpenAI(ctx context.Context, apiKey, message string) (string, error) {
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	payload, err := json.Marshal(map[string]interface{}{
		"model": model,
		"messages": []map[string]string{
			{"role": "system", "content": chatSystemPrompt},
			{"role": "user", "content": message},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openAIEndpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := chatHTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai returned status %d", resp.StatusCode)
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

// Chat answers a single message. With an API key configured it asks OpenAI;
// without one, or when the call fails for any reason, it degrades silently to
// the canned decision table. No conversation state is kept between calls.
func Chat(c *gin.Context) {
	var body struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	body.Message = strings.TrimSpace(body.Message)
	if body.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "message is required"})
		return
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		reply, err := askOpenAI(ctx, apiKey, body.Message)
		if err == nil {
			c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"reply": reply, "source": "ai"}})
			return
		}
		log.Println("OpenAI call failed, using fallback:", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"reply": CannedReply(body.Message), "source": "fallback"},
	})
}
