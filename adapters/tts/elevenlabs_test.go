package tts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestValidateElevenLabsConfig(t *testing.T) {
	assert.Error(t, ValidateElevenLabsConfig(ElevenLabsConfig{}))
	assert.NoError(t, ValidateElevenLabsConfig(ElevenLabsConfig{APIKey: "key"}))
	assert.Error(t, ValidateElevenLabsConfig(ElevenLabsConfig{APIKey: "key", Stability: 1.5}))
	assert.Error(t, ValidateElevenLabsConfig(ElevenLabsConfig{APIKey: "key", Clarity: -0.1}))
	assert.NoError(t, ValidateElevenLabsConfig(ElevenLabsConfig{APIKey: "key", Stability: 0.3, Clarity: 0.9}))
}

func TestSynthesize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/text-to-speech/voice123", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("xi-api-key"))
		assert.Equal(t, "audio/mpeg", r.Header.Get("Accept"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Breathe in slowly.", payload["text"])
		assert.Equal(t, "eleven_monolingual_v1", payload["model_id"])

		settings := payload["voice_settings"].(map[string]any)
		assert.Equal(t, 0.5, settings["stability"])
		assert.Equal(t, 0.75, settings["similarity_boost"])

		w.Write([]byte("mpeg-bytes"))
	}))
	defer server.Close()

	synthesizer, err := NewElevenLabs(ElevenLabsConfig{
		APIKey:     "test-key",
		APIBaseURL: server.URL,
	}, zaptest.NewLogger(t))
	require.NoError(t, err)

	audio, err := synthesizer.Synthesize(context.Background(), "Breathe in slowly.", "voice123")
	require.NoError(t, err)
	assert.Equal(t, []byte("mpeg-bytes"), audio)
}

func TestSynthesizeAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"detail": "invalid api key"}`)
	}))
	defer server.Close()

	synthesizer, err := NewElevenLabs(ElevenLabsConfig{
		APIKey:     "bad-key",
		APIBaseURL: server.URL,
	}, zaptest.NewLogger(t))
	require.NoError(t, err)

	_, err = synthesizer.Synthesize(context.Background(), "text", "voice123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestSynthesizeInputValidation(t *testing.T) {
	synthesizer, err := NewElevenLabs(ElevenLabsConfig{APIKey: "key"}, zaptest.NewLogger(t))
	require.NoError(t, err)

	_, err = synthesizer.Synthesize(context.Background(), "   ", "voice123")
	assert.Error(t, err)

	_, err = synthesizer.Synthesize(context.Background(), "text", "")
	assert.Error(t, err)
}

func TestListVoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/voices", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("xi-api-key"))

		fmt.Fprint(w, `{
			"voices": [
				{"voice_id": "v1", "name": "Rachel", "labels": {"description": "calm"}},
				{"voice_id": "v2", "name": "Domi", "labels": {"description": "warm"}}
			]
		}`)
	}))
	defer server.Close()

	synthesizer, err := NewElevenLabs(ElevenLabsConfig{
		APIKey:     "test-key",
		APIBaseURL: server.URL,
	}, zaptest.NewLogger(t))
	require.NoError(t, err)

	voices, err := synthesizer.ListVoices(context.Background())
	require.NoError(t, err)
	require.Len(t, voices, 2)
	assert.Equal(t, "v1", voices[0].ID)
	assert.Equal(t, "Rachel", voices[0].Name)
	assert.Equal(t, "calm", voices[0].Description)
}
