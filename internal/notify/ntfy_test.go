package notify

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"crustacean/tracker/internal/config"
	"crustacean/tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAlerts = []domain.Alert{
	{Item: domain.CategorySnowCrab, TodayPrice: 80, Mean: 100},
	{Item: domain.CategoryRedCrab, TodayPrice: 9000, Mean: 12000},
}

func TestComposeMessage(t *testing.T) {
	message := ComposeMessage(testAlerts)

	assert.Equal(t,
		"[줄포상회 시세 알림 - 최저가 기준]\n"+
			"🦀 대게 오늘 최저가 80원 (평균 100원) ⬇ 저렴!\n"+
			"🦀 홍게 오늘 최저가 9000원 (평균 12000원) ⬇ 저렴!",
		message)
}

func TestSendAlertsPostsOneMessage(t *testing.T) {
	var gotPath string
	var gotBody string
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
	}))
	defer server.Close()

	n := NewNtfyNotifier(config.NotifyConfig{BaseURL: server.URL, Topic: "crab-alerts", Timeout: 5})

	err := n.SendAlerts(context.Background(), testAlerts)

	require.NoError(t, err)
	assert.Equal(t, 1, requests)
	assert.Equal(t, "/crab-alerts", gotPath)
	assert.Equal(t, ComposeMessage(testAlerts), gotBody)
}

func TestSendAlertsNothingToSend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an empty alert list")
	}))
	defer server.Close()

	n := NewNtfyNotifier(config.NotifyConfig{BaseURL: server.URL, Topic: "crab-alerts", Timeout: 5})

	require.NoError(t, n.SendAlerts(context.Background(), nil))
}

func TestSendAlertsRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	n := NewNtfyNotifier(config.NotifyConfig{BaseURL: server.URL, Topic: "crab-alerts", Timeout: 5})

	assert.Error(t, n.SendAlerts(context.Background(), testAlerts))
}
