package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siherrmann/crmfill/model"
)

// Stub extractor recording what it was called with
type stubExtractor struct {
	gotText   string
	gotSource string
	record    *model.ExtractionRecord
}

func (s *stubExtractor) Extract(ctx context.Context, text string, source string) *model.ExtractionRecord {
	s.gotText = text
	s.gotSource = source
	return s.record
}

func newTestServer(extractor Extractor) *httptest.Server {
	return httptest.NewServer(New(extractor, "", nil).Handler())
}

func TestHandleExtract(t *testing.T) {
	t.Run("Valid request returns wrapped record", func(t *testing.T) {
		name := "Priya Sharma"
		extractor := &stubExtractor{
			record: &model.ExtractionRecord{
				Contact:    model.Contact{Name: &name},
				Confidence: 0.80,
			},
		}
		srv := newTestServer(extractor)
		defer srv.Close()

		body := `{"meeting_text": "Had a call with Priya Sharma.", "source": "crm_ui"}`
		resp, err := http.Post(srv.URL+"/extract", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var response ExtractResponse
		err = json.NewDecoder(resp.Body).Decode(&response)
		require.NoError(t, err)

		assert.Equal(t, "Perfect! I've extracted and structured your CRM data:", response.AgentMessage)
		require.NotNil(t, response.Extracted)
		require.NotNil(t, response.Extracted.Contact.Name)
		assert.Equal(t, "Priya Sharma", *response.Extracted.Contact.Name)

		assert.Equal(t, "Had a call with Priya Sharma.", extractor.gotText)
		assert.Equal(t, "crm_ui", extractor.gotSource)
	})

	t.Run("Missing source defaults to manual", func(t *testing.T) {
		extractor := &stubExtractor{record: &model.ExtractionRecord{}}
		srv := newTestServer(extractor)
		defer srv.Close()

		body := `{"meeting_text": "some text"}`
		resp, err := http.Post(srv.URL+"/extract", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "manual", extractor.gotSource)
	})

	t.Run("Empty meeting text is still extracted", func(t *testing.T) {
		extractor := &stubExtractor{record: &model.ExtractionRecord{}}
		srv := newTestServer(extractor)
		defer srv.Close()

		body := `{"meeting_text": ""}`
		resp, err := http.Post(srv.URL+"/extract", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "", extractor.gotText)
	})

	t.Run("Missing meeting text returns bad request", func(t *testing.T) {
		extractor := &stubExtractor{record: &model.ExtractionRecord{}}
		srv := newTestServer(extractor)
		defer srv.Close()

		body := `{"source": "crm_ui"}`
		resp, err := http.Post(srv.URL+"/extract", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Invalid JSON returns bad request", func(t *testing.T) {
		extractor := &stubExtractor{record: &model.ExtractionRecord{}}
		srv := newTestServer(extractor)
		defer srv.Close()

		resp, err := http.Post(srv.URL+"/extract", "application/json", strings.NewReader("{not json"))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("GET returns method not allowed", func(t *testing.T) {
		extractor := &stubExtractor{record: &model.ExtractionRecord{}}
		srv := newTestServer(extractor)
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/extract")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}

func TestHandleRoot(t *testing.T) {
	extractor := &stubExtractor{record: &model.ExtractionRecord{}}
	srv := newTestServer(extractor)
	defer srv.Close()

	t.Run("Root points to the demo UI", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		err = json.NewDecoder(resp.Body).Decode(&body)
		require.NoError(t, err)
		assert.Contains(t, body["message"], "/static/index.html")
	})

	t.Run("Unknown path returns not found", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/unknown")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
