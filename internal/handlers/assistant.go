package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/assistant"
	"storefront/internal/session"
)

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

type relayRequest struct {
	Prompt            string `json:"prompt"`
	SystemInstruction string `json:"systemInstruction"`
}

// ChatWithAssistant appends the shopper's message, asks the model and
// appends the reply. One request may be in flight per session. Any relay
// failure degrades to the canned apology; the chat call itself never
// errors past this handler.
func ChatWithAssistant(client *assistant.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /assistant/chat"
		defer handlePanic(c, route)

		sess := mustSession(c, route)
		if sess == nil {
			return
		}

		var req chatRequest
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		sess.EnsureGreeting(assistant.Greeting)

		gen, err := sess.BeginChat(strings.TrimSpace(req.Message))
		if err != nil {
			if errors.Is(err, session.ErrChatBusy) {
				respondWithError(c, http.StatusConflict, route, "assistant is busy")
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "internal server error")
			return
		}

		reply, err := client.Generate(c.Request.Context(), strings.TrimSpace(req.Message), assistant.SystemInstruction)
		if err != nil {
			log.Printf("[%s] [ERROR] generate failed: %v", route, err)
			reply = assistant.FallbackReply
		}

		if !sess.FinishChat(gen, reply) {
			// Stale generation: the session's chat moved on, discard.
			log.Printf("[%s] discarded stale reply", route)
		}

		c.JSON(http.StatusOK, gin.H{
			"reply":    reply,
			"messages": sess.Messages(),
		})
	}
}

func GetAssistantMessages() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /assistant/messages"
		defer handlePanic(c, route)

		sess := mustSession(c, route)
		if sess == nil {
			return
		}

		sess.EnsureGreeting(assistant.Greeting)
		c.JSON(http.StatusOK, gin.H{"messages": sess.Messages()})
	}
}

// RelayGenerate is the serverless passthrough contract: POST only, 400 on
// a missing prompt, 500 when the server credential is absent, the upstream
// status relayed on upstream failure, and {text} on success. No retries,
// no caching.
func RelayGenerate(client *assistant.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/generate"
		defer handlePanic(c, route)

		var req relayRequest
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Prompt) == "" {
			respondWithError(c, http.StatusBadRequest, route, "se requiere un 'prompt'")
			return
		}

		if !client.Configured() {
			// Configuration error for the operator, not the shopper.
			log.Printf("[%s] [ERROR] API_KEY is not configured", route)
			respondWithError(c, http.StatusInternalServerError, route, "Error de configuración del servidor.")
			return
		}

		text, err := client.Generate(c.Request.Context(), req.Prompt, req.SystemInstruction)
		if err != nil {
			var upstream *assistant.UpstreamError
			if errors.As(err, &upstream) {
				log.Printf("[%s] [ERROR] upstream status %d", route, upstream.Status)
				c.JSON(upstream.Status, gin.H{"error": upstream.Body})
				return
			}
			log.Printf("[%s] [ERROR] generate failed: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "Ocurrió un error interno en el servidor.")
			return
		}

		c.JSON(http.StatusOK, gin.H{"text": text})
	}
}
