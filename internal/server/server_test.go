package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docforge/docforge/internal/generate"
	"github.com/docforge/docforge/internal/payments"
	"github.com/docforge/docforge/internal/quota"
	"github.com/docforge/docforge/internal/render"
	"github.com/docforge/docforge/internal/store"
	"github.com/docforge/docforge/internal/types"
)

type mockExporter struct {
	pdf      []byte
	filename string
	err      error
	calls    int
}

func (m *mockExporter) Export(_ context.Context, docType string, _ json.RawMessage, _ string) ([]byte, string, error) {
	m.calls++
	if m.err != nil {
		return nil, "", m.err
	}
	filename := m.filename
	if filename == "" {
		filename = docType + ".pdf"
	}
	return m.pdf, filename, nil
}

type mockGenerator struct {
	doc json.RawMessage
	err error
}

func (m *mockGenerator) Generate(_ context.Context, _, _ string) (json.RawMessage, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.doc, nil
}

type mockGate struct {
	decision quota.Decision
	calls    int
	lastUser string
}

func (m *mockGate) Authorize(_ context.Context, userID string) quota.Decision {
	m.calls++
	m.lastUser = userID
	return m.decision
}

type mockProvider struct {
	order *payments.Order
	err   error
}

func (m *mockProvider) CreateOrder(_ context.Context, _ payments.OrderRequest) (*payments.Order, error) {
	return m.order, m.err
}

type mockProcessor struct {
	events []*payments.Event
	err    error
}

func (m *mockProcessor) Handle(_ context.Context, ev *payments.Event) error {
	m.events = append(m.events, ev)
	return m.err
}

type mockProfiles struct {
	profiles map[string]*types.Profile
	err      error
}

func newMockProfiles() *mockProfiles {
	return &mockProfiles{profiles: make(map[string]*types.Profile)}
}

func (m *mockProfiles) GetProfile(_ context.Context, userID string) (*types.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.profiles[userID], nil
}

func (m *mockProfiles) EnsureProfile(_ context.Context, userID, email string) (*types.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	if p, ok := m.profiles[userID]; ok {
		return p, nil
	}
	p := &types.Profile{ID: userID, Email: email, SubscriptionStatus: types.StatusFree, DocsLimit: 1}
	m.profiles[userID] = p
	return p, nil
}

func (m *mockProfiles) ConsumeCredit(_ context.Context, userID string) (bool, error) {
	p, ok := m.profiles[userID]
	if !ok || p.DocsGenerated >= p.DocsLimit {
		return false, nil
	}
	p.DocsGenerated++
	return true, nil
}

func (m *mockProfiles) ResetUsage(_ context.Context, userID string) error {
	p, ok := m.profiles[userID]
	if !ok {
		return errors.New("profile not found")
	}
	p.DocsGenerated = 0
	return nil
}

func (m *mockProfiles) UpdateSubscriptionByID(_ context.Context, _ string, _ store.SubscriptionUpdate) error {
	return nil
}

func (m *mockProfiles) UpdateSubscriptionByEmail(_ context.Context, _ string, _ store.SubscriptionUpdate) error {
	return nil
}

type mockDocuments struct {
	docs map[uuid.UUID]types.Document
}

func newMockDocuments() *mockDocuments {
	return &mockDocuments{docs: make(map[uuid.UUID]types.Document)}
}

func (m *mockDocuments) SaveDocument(_ context.Context, userID, title, content string) (*types.Document, error) {
	doc := types.Document{ID: uuid.New(), UserID: userID, Title: title, Content: content, CreatedAt: time.Now()}
	m.docs[doc.ID] = doc
	return &doc, nil
}

func (m *mockDocuments) ListDocuments(_ context.Context, userID string) ([]types.Document, error) {
	var out []types.Document
	for _, doc := range m.docs {
		if doc.UserID == userID {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (m *mockDocuments) DeleteDocument(_ context.Context, userID string, docID uuid.UUID) error {
	doc, ok := m.docs[docID]
	if !ok || doc.UserID != userID {
		return errors.New("document not found")
	}
	delete(m.docs, docID)
	return nil
}

type testServer struct {
	*Server
	exporter  *mockExporter
	generator *mockGenerator
	gate      *mockGate
	orders    *mockProvider
	webhooks  *mockProcessor
	profiles  *mockProfiles
	documents *mockDocuments
}

func newTestServer() *testServer {
	ts := &testServer{
		exporter:  &mockExporter{pdf: []byte("%PDF-1.4 test")},
		generator: &mockGenerator{doc: json.RawMessage(`{"name":"Asha"}`)},
		gate:      &mockGate{decision: quota.Decision{Allowed: true}},
		orders:    &mockProvider{order: &payments.Order{ID: "order_1", Amount: 69900, Currency: "INR"}},
		webhooks:  &mockProcessor{},
		profiles:  newMockProfiles(),
		documents: newMockDocuments(),
	}
	ts.Server = &Server{
		exporter:        ts.exporter,
		generator:       ts.generator,
		gate:            ts.gate,
		orders:          ts.orders,
		webhooks:        ts.webhooks,
		profiles:        ts.profiles,
		documents:       ts.documents,
		webhookSecret:   "whsec_test",
		generateTimeout: time.Second,
		exportTimeout:   time.Second,
	}
	return ts
}

func (ts *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	ts.routes().ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestExportPDF_Anonymous(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodPost, "/api/export-pdf", map[string]any{
		"docType": "invoice",
		"theme":   "green",
		"data":    map[string]any{"invoice_number": "INV-1"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=invoice.pdf", w.Header().Get("Content-Disposition"))
	assert.Equal(t, []byte("%PDF-1.4 test"), w.Body.Bytes())
	// No user_id on the request, so the quota gate stays out of the path.
	assert.Zero(t, ts.gate.calls)
}

func TestExportPDF_QuotaSpent(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodPost, "/api/export-pdf", map[string]any{
		"docType": "resume",
		"data":    map[string]any{"name": "Asha"},
		"user_id": "user-1",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, ts.gate.calls)
	assert.Equal(t, "user-1", ts.gate.lastUser)
}

func TestExportPDF_QuotaDenied(t *testing.T) {
	ts := newTestServer()
	ts.gate.decision = quota.Decision{
		Allowed: false,
		Reason:  "Document limit reached. Upgrade to Pro for more exports.",
		Profile: &types.Profile{ID: "user-1", DocsLimit: 1, DocsGenerated: 1},
	}

	w := ts.do(http.MethodPost, "/api/export-pdf", map[string]any{
		"docType": "resume",
		"data":    map[string]any{},
		"user_id": "user-1",
	})

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Zero(t, ts.exporter.calls, "denied export must not reach Chrome")

	var resp struct {
		Error     string `json:"error"`
		Remaining int    `json:"remaining"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "Upgrade to Pro")
	assert.Equal(t, 0, resp.Remaining)
}

func TestExportPDF_MalformedData(t *testing.T) {
	ts := newTestServer()
	ts.exporter.err = render.ErrMalformedData

	w := ts.do(http.MethodPost, "/api/export-pdf", map[string]any{
		"docType": "invoice",
		"data":    "not an object",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportPDF_EngineFailure(t *testing.T) {
	ts := newTestServer()
	ts.exporter.err = errors.New("chrome exited unexpectedly")

	w := ts.do(http.MethodPost, "/api/export-pdf", map[string]any{
		"docType": "resume",
		"data":    map[string]any{},
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PDF generation failed", resp["error"])
	assert.Contains(t, resp["detail"], "chrome exited")
}

func TestGenerate_Success(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodPost, "/api/generate", map[string]any{
		"docType": "resume",
		"prompt":  "backend engineer",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"Asha"}`, w.Body.String())
}

func TestGenerate_MissingDocType(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodPost, "/api/generate", map[string]any{"prompt": "anything"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "docType required")
}

func TestGenerate_UnsupportedDocType(t *testing.T) {
	ts := newTestServer()
	ts.generator.err = &generate.ErrUnsupportedDocType{DocType: "memo"}

	w := ts.do(http.MethodPost, "/api/generate", map[string]any{"docType": "memo"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unsupported docType")
}

func TestGenerate_InvalidCompletionCarriesRaw(t *testing.T) {
	ts := newTestServer()
	raw := `Sure, here's your resume: {"name":"Bob"}`
	ts.generator.err = &generate.ErrInvalidCompletion{Raw: raw, Cause: errors.New("invalid character 'S'")}

	w := ts.do(http.MethodPost, "/api/generate", map[string]any{"docType": "resume"})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid AI response", resp["error"])
	assert.Equal(t, raw, resp["raw"])
}

func TestCreateOrder(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodPost, "/api/payments/order", map[string]any{
		"email":  "pat@example.com",
		"userId": "user-1",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var order payments.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, "order_1", order.ID)
	assert.EqualValues(t, 69900, order.Amount)
}

func TestWebhook_ValidSignature(t *testing.T) {
	ts := newTestServer()
	body := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"notes":{"userId":"user-1"}}}}}`)

	req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewReader(body))
	req.Header.Set("X-Razorpay-Signature", payments.ComputeSignature("whsec_test", body))
	w := httptest.NewRecorder()
	ts.routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok"`)
	require.Len(t, ts.webhooks.events, 1)
	assert.Equal(t, payments.EventPaymentCaptured, ts.webhooks.events[0].Name)
}

func TestWebhook_InvalidSignature(t *testing.T) {
	ts := newTestServer()
	body := []byte(`{"event":"payment.captured","payload":{}}`)

	req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewReader(body))
	req.Header.Set("X-Razorpay-Signature", "deadbeef")
	w := httptest.NewRecorder()
	ts.routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid signature")
	assert.Empty(t, ts.webhooks.events, "unverified events must not be processed")
}

func TestWebhook_MissingSignature(t *testing.T) {
	ts := newTestServer()
	body := []byte(`{"event":"subscription.cancelled","payload":{}}`)

	req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewReader(body))
	w := httptest.NewRecorder()
	ts.routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, ts.webhooks.events)
}

func TestWebhook_EmptySecretRefusesDeliveries(t *testing.T) {
	ts := newTestServer()
	ts.Server.webhookSecret = ""
	body := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"notes":{"userId":"victim"}}}}}`)

	// With no secret configured anyone can compute a matching HMAC, so the
	// route must refuse even a "correctly" signed delivery.
	req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewReader(body))
	req.Header.Set("X-Razorpay-Signature", payments.ComputeSignature("", body))
	w := httptest.NewRecorder()
	ts.routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Empty(t, ts.webhooks.events, "unconfigured webhook must not process events")
}

func TestEnsureProfile(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodPost, "/api/profiles/ensure", map[string]any{
		"user_id": "user-1",
		"email":   "pat@example.com",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var p types.Profile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, types.StatusFree, p.SubscriptionStatus)
	assert.Equal(t, 1, p.DocsLimit)
	assert.Equal(t, 0, p.DocsGenerated)
}

func TestEnsureProfile_Invalid(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodPost, "/api/profiles/ensure", map[string]any{"email": "pat@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "missing user_id")

	w = ts.do(http.MethodPost, "/api/profiles/ensure", map[string]any{
		"user_id": "user-1",
		"email":   "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "malformed email")
}

func TestGetProfile_NotFound(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodGet, "/api/profiles/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResetUsage(t *testing.T) {
	ts := newTestServer()
	ts.profiles.profiles["user-1"] = &types.Profile{ID: "user-1", DocsLimit: 1, DocsGenerated: 1}

	w := ts.do(http.MethodPost, "/api/admin/users/user-1/reset-usage", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, ts.profiles.profiles["user-1"].DocsGenerated)
}

func TestDocumentLifecycle(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodPost, "/api/documents", map[string]any{
		"user_id": "user-1",
		"title":   "Draft resume",
		"content": "Senior engineer, 8 years in infrastructure",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var doc types.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))

	w = ts.do(http.MethodGet, "/api/documents?user_id=user-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listing struct {
		Documents []types.Document `json:"documents"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	require.Len(t, listing.Documents, 1)
	assert.Equal(t, "Draft resume", listing.Documents[0].Title)

	w = ts.do(http.MethodDelete, "/api/documents/"+doc.ID.String()+"?user_id=user-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(http.MethodDelete, "/api/documents/"+doc.ID.String()+"?user_id=user-1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteDocument_WrongUser(t *testing.T) {
	ts := newTestServer()
	doc, err := ts.documents.SaveDocument(context.Background(), "owner", "t", "c")
	require.NoError(t, err)

	w := ts.do(http.MethodDelete, "/api/documents/"+doc.ID.String()+"?user_id=intruder", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPrompts(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodGet, "/api/prompts/resume", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		DocType string `json:"docType"`
		Prompts []struct {
			ID     string `json:"id"`
			Prompt string `json:"prompt"`
		} `json:"prompts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "resume", resp.DocType)
	assert.Len(t, resp.Prompts, 5)
}

func TestListPrompts_UnknownDocType(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodGet, "/api/prompts/memo", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
