package contactControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

type ContactRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Recipient string `json:"recipient"`
}

// HandleContactForm handles POST /api/contact: validates the form and relays
// it through the Resend mail API. Without an API key the message is only
// logged, so local setups stay functional.
func HandleContactForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ungültiger Request-Body"})
			return
		}

		if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Bitte füllen Sie alle Pflichtfelder aus"})
			return
		}

		sender := os.Getenv("EMAIL_USER")
		if sender == "" {
			sender = "kundenservice@ct-studio.store"
		}
		recipient := req.Recipient
		if recipient == "" {
			recipient = sender
		}

		phone := req.Phone
		if phone == "" {
			phone = "Nicht angegeben"
		}
		body := fmt.Sprintf("Name: %s\nE-Mail: %s\nTelefon: %s\nBetreff: %s\n\nNachricht:\n%s\n",
			req.Name, req.Email, phone, req.Subject, req.Message)

		apiKey := os.Getenv("RESEND_API_KEY")
		if apiKey == "" {
			log.Printf("⚠️ RESEND_API_KEY nicht gesetzt, Kontaktanfrage nur protokolliert:\n%s", body)
			c.JSON(http.StatusOK, gin.H{"success": true})
			return
		}

		if err := sendViaResend(apiKey, sender, recipient, req.Email, "Neue Kontaktanfrage: "+req.Subject, body); err != nil {
			log.Printf("❌ E-Mail-Versand fehlgeschlagen: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Die Nachricht konnte nicht gesendet werden"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func sendViaResend(apiKey, from, to, replyTo, subject, text string) error {
	payload, err := json.Marshal(map[string]interface{}{
		"from":     from,
		"to":       []string{to},
		"reply_to": replyTo,
		"subject":  subject,
		"text":     text,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, "https://api.resend.com/emails", bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("resend API status %d: %s", resp.StatusCode, detail)
	}
	return nil
}
