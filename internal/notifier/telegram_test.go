package notifier

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tazhate/ballotbot/config"
)

const okResponse = `{"ok":true,"result":{"message_id":7,"date":1717200000,"chat":{"id":-1001234,"type":"group"},"text":"hi"}}`

func newConfig(endpoint string) *config.Config {
	return &config.Config{
		TelegramToken: "123:abc",
		ChatID:        -1001234,
		APIEndpoint:   endpoint + "/bot%s/%s",
		HTTPTimeout:   5 * time.Second,
	}
}

func TestSendMessagePostsForm(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bot123:abc/sendMessage", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "-1001234", r.PostForm.Get("chat_id"))
		assert.Equal(t, "Please ballot\nhttps://example.com", r.PostForm.Get("text"))
		assert.Equal(t, "Markdown", r.PostForm.Get("parse_mode"))
		assert.Equal(t, "true", r.PostForm.Get("disable_web_page_preview"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(okResponse))
	}))
	defer srv.Close()

	tg := NewTelegram(newConfig(srv.URL))
	require.NoError(t, tg.SendMessage("Please ballot\nhttps://example.com"))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestSendMessageToChannel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "@badminton_sg", r.PostForm.Get("chat_id"))
		w.Write([]byte(okResponse))
	}))
	defer srv.Close()

	cfg := newConfig(srv.URL)
	cfg.ChatID = 0
	cfg.ChannelUsername = "@badminton_sg"

	require.NoError(t, NewTelegram(cfg).SendMessage("hi"))
}

func TestSendMessageAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	}))
	defer srv.Close()

	err := NewTelegram(newConfig(srv.URL)).SendMessage("hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestSendMessageServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	assert.Error(t, NewTelegram(newConfig(srv.URL)).SendMessage("hi"))
}

func TestSendMessageNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	assert.Error(t, NewTelegram(newConfig(url)).SendMessage("hi"))
}
