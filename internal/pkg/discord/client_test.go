package discord

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transkotakita/payroll-backend-go/internal/config"
	"github.com/transkotakita/payroll-backend-go/internal/domain/payment"
)

func testNotification() payment.Notification {
	return payment.Notification{
		SupervisorName:     "Sari",
		SupervisorPosition: "eksekutif",
		EmployeeName:       "Badu",
		EmployeePosition:   "karyawan",
		Amount:             150000,
		Date:               "2025-06-10",
		EndDate:            "2025-06-12",
		DaysCount:          3,
	}
}

func TestPaymentRecordedPostsEmbed(t *testing.T) {
	var got webhookMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(config.WebhookConfig{DiscordURL: srv.URL})
	err := client.PaymentRecorded(context.Background(), testNotification())
	require.NoError(t, err)

	require.Len(t, got.Embeds, 1)
	e := got.Embeds[0]
	assert.Equal(t, colorPayment, e.Color)
	require.Len(t, e.Fields, 4)
	assert.Equal(t, "Penanggung Jawab", e.Fields[0].Name)
	assert.Equal(t, "Sari (eksekutif)", e.Fields[0].Value)
	assert.Equal(t, "Penyetor", e.Fields[1].Name)
	assert.Equal(t, "Badu (karyawan)", e.Fields[1].Value)
	assert.Equal(t, "Tanggal", e.Fields[2].Name)
	assert.Equal(t, "10 June - 12 June 2025", e.Fields[2].Value)
	assert.Equal(t, "3 hari", e.Fields[3].Value)
	assert.Equal(t, "Total Payment: Rp150.000", e.Footer.Text)
}

func TestPaymentRecordedLeaveEmbed(t *testing.T) {
	var got webhookMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	n := testNotification()
	n.IsLeave = true
	n.Amount = 0
	n.EndDate = ""
	n.DaysCount = 1

	client := NewClient(config.WebhookConfig{DiscordURL: srv.URL})
	require.NoError(t, client.PaymentRecorded(context.Background(), n))

	require.Len(t, got.Embeds, 1)
	assert.Equal(t, colorLeave, got.Embeds[0].Color)
	assert.Equal(t, "10 June 2025", got.Embeds[0].Fields[2].Value)
	assert.Equal(t, "Total Leave: Rp0", got.Embeds[0].Footer.Text)
}

func TestPaymentRecordedNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(config.WebhookConfig{DiscordURL: srv.URL})
	err := client.PaymentRecorded(context.Background(), testNotification())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
}

func TestPaymentRecordedNoURLConfigured(t *testing.T) {
	client := NewClient(config.WebhookConfig{})
	assert.NoError(t, client.PaymentRecorded(context.Background(), testNotification()))
}

func TestFormatIDR(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "Rp0"},
		{500, "Rp500"},
		{50000, "Rp50.000"},
		{1500000, "Rp1.500.000"},
		{-25000, "-Rp25.000"},
	}
	for _, c := range cases {
		if got := FormatIDR(c.amount); got != c.want {
			t.Errorf("FormatIDR(%d) = %q, want %q", c.amount, got, c.want)
		}
	}
}
