// services/sms_service.go
package services

import (
	"context"
	"fmt"
	"strings"

	"carelink/models"

	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type SMSService struct {
	client     *twilio.RestClient
	fromNumber string
}

func NewSMSService(accountSID, authToken, fromNumber string) *SMSService {
	var client *twilio.RestClient
	if accountSID != "" && authToken != "" {
		client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		})
	}

	return &SMSService{
		client:     client,
		fromNumber: fromNumber,
	}
}

func (ss *SMSService) IsConfigured() bool {
	return ss.client != nil && ss.fromNumber != ""
}

// SendSMS delivers one message and reports the outcome in the result. A
// missing Twilio configuration or a provider failure never propagates as an
// error so batch callers can continue with the remaining recipients.
func (ss *SMSService) SendSMS(ctx context.Context, to, message string) models.SMSResult {
	if !ss.IsConfigured() {
		logrus.Warn("Twilio not configured, skipping SMS send")
		return models.SMSResult{
			Success: false,
			Error:   "SMS service not configured",
		}
	}

	if err := ss.validatePhoneNumber(to); err != nil {
		return models.SMSResult{
			Success: false,
			Error:   err.Error(),
		}
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(ss.fromNumber)
	params.SetBody(message)

	resp, err := ss.client.Api.CreateMessage(params)
	if err != nil {
		logrus.Errorf("Failed to send SMS to %s: %v", to, err)
		return models.SMSResult{
			Success: false,
			Error:   err.Error(),
		}
	}

	messageID := ""
	if resp.Sid != nil {
		messageID = *resp.Sid
	}

	logrus.Infof("SMS sent successfully - SID: %s", messageID)
	return models.SMSResult{
		Success:   true,
		MessageID: messageID,
	}
}

func (ss *SMSService) validatePhoneNumber(phoneNumber string) error {
	if phoneNumber == "" {
		return fmt.Errorf("phone number cannot be empty")
	}

	cleaned := strings.ReplaceAll(phoneNumber, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	if len(cleaned) < 10 || len(cleaned) > 16 {
		return fmt.Errorf("invalid phone number length")
	}

	start := 0
	if strings.HasPrefix(cleaned, "+") {
		start = 1
	}
	for _, char := range cleaned[start:] {
		if char < '0' || char > '9' {
			return fmt.Errorf("phone number contains invalid characters")
		}
	}

	return nil
}
