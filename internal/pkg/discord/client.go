package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/transkotakita/payroll-backend-go/internal/config"
	"github.com/transkotakita/payroll-backend-go/internal/domain/payment"
)

const (
	colorPayment = 0x00FF00
	colorLeave   = 0xFFA500
)

// Client posts payment-recorded events to a Discord webhook.
type Client struct {
	webhookURL string
	httpClient *http.Client
}

func NewClient(cfg config.WebhookConfig) *Client {
	return &Client{
		webhookURL: cfg.DiscordURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// APIError represents a non-2xx webhook response
type APIError struct {
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("discord webhook error: status %d", e.StatusCode)
}

type webhookMessage struct {
	Embeds []embed `json:"embeds"`
}

type embed struct {
	Title     string       `json:"title"`
	Color     int          `json:"color"`
	Fields    []embedField `json:"fields"`
	Footer    embedFooter  `json:"footer"`
	Timestamp string       `json:"timestamp"`
}

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type embedFooter struct {
	Text string `json:"text"`
}

// PaymentRecorded implements payment.Notifier. Returns an error when the
// webhook is unreachable or responds non-2xx; the caller treats that as a
// soft warning.
func (c *Client) PaymentRecorded(ctx context.Context, n payment.Notification) error {
	if c.webhookURL == "" {
		return nil
	}

	title := "\U0001F4B0 Payment Record Added"
	color := colorPayment
	label := "Payment"
	if n.IsLeave {
		title = "\U0001F4CB Leave Record Added"
		color = colorLeave
		label = "Leave"
	}

	msg := webhookMessage{
		Embeds: []embed{{
			Title: title,
			Color: color,
			Fields: []embedField{
				{Name: "Penanggung Jawab", Value: fmt.Sprintf("%s (%s)", n.SupervisorName, n.SupervisorPosition), Inline: true},
				{Name: "Penyetor", Value: fmt.Sprintf("%s (%s)", n.EmployeeName, n.EmployeePosition), Inline: true},
				{Name: "Tanggal", Value: dateDisplay(n.Date, n.EndDate), Inline: true},
				{Name: "Total Hari", Value: fmt.Sprintf("%d hari", n.DaysCount), Inline: true},
			},
			Footer: embedFooter{
				Text: fmt.Sprintf("Total %s: %s", label, FormatIDR(n.Amount)),
			},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}},
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send webhook request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode}
	}

	return nil
}

func dateDisplay(date, endDate string) string {
	from, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	if endDate == "" {
		return from.Format("02 January 2006")
	}
	to, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return date
	}
	return from.Format("02 January") + " - " + to.Format("02 January 2006")
}

// FormatIDR renders a rupiah amount with dot thousands separators,
// e.g. 1500000 -> "Rp1.500.000".
func FormatIDR(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	if amount < 0 {
		s = s[1:]
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}

	if amount < 0 {
		return "-Rp" + string(out)
	}
	return "Rp" + string(out)
}
