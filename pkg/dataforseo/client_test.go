package dataforseo

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

type recordedRequest struct {
	method      string
	path        string
	body        string
	auth        string
	contentType string
}

// newRecordingServer returns a server that records every request and answers
// with the given status and body.
func newRecordingServer(t *testing.T, status int, body string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var recorded []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("read request body: %v", err)
		}
		recorded = append(recorded, recordedRequest{
			method:      r.Method,
			path:        r.URL.Path,
			body:        string(data),
			auth:        r.Header.Get("Authorization"),
			contentType: r.Header.Get("Content-Type"),
		})
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &recorded
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := New("login:password", WithBaseURL(baseURL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

const okBody = `{"status_code":20000,"tasks_error":0,"tasks":[]}`

// allOperations enumerates every public operation so dispatch rules can be
// asserted across the board.
func allOperations(c *Client) map[string]func(context.Context, Subject, *Options) (Response, error) {
	return map[string]func(context.Context, Subject, *Options) (Response, error){
		"serp":                 c.SERP,
		"msv":                  c.SearchVolume,
		"keywords_for_site":    c.KeywordsForSite,
		"domain_pages":         c.DomainPages,
		"domain_pages_summary": c.DomainPagesSummary,
	}
}

func TestTaskIDNeverCreatesTask(t *testing.T) {
	srv, recorded := newRecordingServer(t, http.StatusOK, okBody)
	c := newTestClient(t, srv.URL)

	for name, call := range allOperations(c) {
		*recorded = nil
		if _, err := call(context.Background(), Subject{}, &Options{TaskID: "task-42", Live: true}); err != nil {
			t.Fatalf("%s with task id: %v", name, err)
		}
		if len(*recorded) != 1 {
			t.Fatalf("%s: expected 1 request, got %d", name, len(*recorded))
		}
		req := (*recorded)[0]
		if req.method != http.MethodGet {
			t.Fatalf("%s: expected GET for task retrieval, got %s", name, req.method)
		}
		if !strings.Contains(req.path, "/task_get/") || !strings.HasSuffix(req.path, "/task-42") {
			t.Fatalf("%s: unexpected task_get path %s", name, req.path)
		}
		if strings.Contains(req.path, "task_post") || strings.Contains(req.path, "/live") {
			t.Fatalf("%s: task id call hit a creation path %s", name, req.path)
		}
	}
}

func TestLiveFlagSelectsLivePath(t *testing.T) {
	srv, recorded := newRecordingServer(t, http.StatusOK, okBody)
	c := newTestClient(t, srv.URL)

	for name, call := range allOperations(c) {
		*recorded = nil
		if _, err := call(context.Background(), One("example.com"), &Options{Live: true}); err != nil {
			t.Fatalf("%s live: %v", name, err)
		}
		req := (*recorded)[0]
		if req.method != http.MethodPost {
			t.Fatalf("%s: expected POST, got %s", name, req.method)
		}
		if !strings.Contains(req.path, "/live") {
			t.Fatalf("%s: expected live path, got %s", name, req.path)
		}
	}
}

func TestDefaultModePostsTask(t *testing.T) {
	srv, recorded := newRecordingServer(t, http.StatusOK, okBody)
	c := newTestClient(t, srv.URL)

	for name, call := range allOperations(c) {
		*recorded = nil
		if _, err := call(context.Background(), One("example.com"), nil); err != nil {
			t.Fatalf("%s default: %v", name, err)
		}
		req := (*recorded)[0]
		if req.method != http.MethodPost || !strings.HasSuffix(req.path, "/task_post") {
			t.Fatalf("%s: expected POST task_post, got %s %s", name, req.method, req.path)
		}
	}
}

func TestSingleAndListSubjectEquivalent(t *testing.T) {
	srv, recorded := newRecordingServer(t, http.StatusOK, okBody)
	c := newTestClient(t, srv.URL)

	if _, err := c.SERP(context.Background(), One("seo consulting"), &Options{Live: true}); err != nil {
		t.Fatalf("SERP One: %v", err)
	}
	if _, err := c.SERP(context.Background(), Many("seo consulting"), &Options{Live: true}); err != nil {
		t.Fatalf("SERP Many: %v", err)
	}
	if len(*recorded) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(*recorded))
	}
	if (*recorded)[0].body != (*recorded)[1].body {
		t.Fatalf("payloads differ:\n%s\n%s", (*recorded)[0].body, (*recorded)[1].body)
	}
}

func TestDateOrderRejectedBeforeNetwork(t *testing.T) {
	srv, recorded := newRecordingServer(t, http.StatusOK, okBody)
	c := newTestClient(t, srv.URL)

	bad := &Options{DateFrom: "2024-06-01", DateTo: "2024-01-01", Live: true}
	for name, call := range allOperations(c) {
		_, err := call(context.Background(), One("example.com"), bad)
		var inputErr *InputError
		if !errors.As(err, &inputErr) {
			t.Fatalf("%s: expected *InputError, got %v", name, err)
		}
	}
	if len(*recorded) != 0 {
		t.Fatalf("expected no network calls, got %d", len(*recorded))
	}
}

func TestEmptySubjectRejectedBeforeNetwork(t *testing.T) {
	srv, recorded := newRecordingServer(t, http.StatusOK, okBody)
	c := newTestClient(t, srv.URL)

	for _, subject := range []Subject{{}, Many(), One("   ")} {
		_, err := c.SERP(context.Background(), subject, &Options{Live: true})
		var inputErr *InputError
		if !errors.As(err, &inputErr) {
			t.Fatalf("expected *InputError for empty subject, got %v", err)
		}
	}
	if len(*recorded) != 0 {
		t.Fatalf("expected no network calls, got %d", len(*recorded))
	}
}

func TestSearchVolumeReturnsBodyVerbatim(t *testing.T) {
	const canned = `{"tasks":[{"result":[{"keyword":"seo consulting","search_volume":9900}]}]}`
	srv, _ := newRecordingServer(t, http.StatusOK, canned)
	c := newTestClient(t, srv.URL)

	resp, err := c.SearchVolume(context.Background(), One("seo consulting"), &Options{Live: true})
	if err != nil {
		t.Fatalf("SearchVolume: %v", err)
	}

	var want Response
	if err := json.Unmarshal([]byte(canned), &want); err != nil {
		t.Fatalf("unmarshal canned body: %v", err)
	}
	if !reflect.DeepEqual(resp, want) {
		t.Fatalf("response was reshaped:\ngot  %#v\nwant %#v", resp, want)
	}
}

func TestSandboxChangesHostOnly(t *testing.T) {
	prod, err := New("login:password")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sandbox, err := New("login:password", WithSandbox())
	if err != nil {
		t.Fatalf("New sandbox: %v", err)
	}
	if prod.BaseURL() != "https://api.dataforseo.com/v3/" {
		t.Fatalf("unexpected production base URL %s", prod.BaseURL())
	}
	if sandbox.BaseURL() != "https://sandbox.dataforseo.com/v3/" {
		t.Fatalf("unexpected sandbox base URL %s", sandbox.BaseURL())
	}

	// Same call against two different hosts must produce identical payloads.
	srvA, recA := newRecordingServer(t, http.StatusOK, okBody)
	srvB, recB := newRecordingServer(t, http.StatusOK, okBody)
	opts := &Options{Live: true, LocationCode: 2826}
	if _, err := newTestClient(t, srvA.URL).SERP(context.Background(), One("kw"), opts); err != nil {
		t.Fatalf("SERP A: %v", err)
	}
	if _, err := newTestClient(t, srvB.URL).SERP(context.Background(), One("kw"), opts); err != nil {
		t.Fatalf("SERP B: %v", err)
	}
	if (*recA)[0].body != (*recB)[0].body {
		t.Fatalf("payload depends on host:\n%s\n%s", (*recA)[0].body, (*recB)[0].body)
	}
}

func TestTasksErrorSurfacesAPIError(t *testing.T) {
	const body = `{"status_code":20000,"tasks_error":1,"tasks":[{"status_message":"Invalid Field: location_code"}]}`
	srv, _ := newRecordingServer(t, http.StatusOK, body)
	c := newTestClient(t, srv.URL)

	resp, err := c.SERP(context.Background(), One("kw"), &Options{Live: true})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Message != "Invalid Field: location_code" {
		t.Fatalf("unexpected message %q", apiErr.Message)
	}
	if apiErr.Body == nil || resp == nil {
		t.Fatalf("decoded body must be surfaced alongside the error")
	}
	if resp.TasksError() != 1 {
		t.Fatalf("body was reshaped: %#v", resp)
	}
}

func TestHTTPErrorSurfacesAPIError(t *testing.T) {
	srv, _ := newRecordingServer(t, http.StatusUnauthorized, `{"status_message":"You are not authorized to access this resource."}`)
	c := newTestClient(t, srv.URL)

	_, err := c.DomainPages(context.Background(), One("example.com"), &Options{Live: true})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.HTTPStatus != http.StatusUnauthorized {
		t.Fatalf("unexpected status %d", apiErr.HTTPStatus)
	}
	if !strings.Contains(apiErr.Message, "not authorized") {
		t.Fatalf("unexpected message %q", apiErr.Message)
	}
}

func TestTransportErrorSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := newTestClient(t, url)
	_, err := c.SERP(context.Background(), One("kw"), &Options{Live: true})
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *TransportError, got %v", err)
	}
}

func TestAuthorizationAndContentType(t *testing.T) {
	srv, recorded := newRecordingServer(t, http.StatusOK, okBody)
	c := newTestClient(t, srv.URL)

	if _, err := c.SERP(context.Background(), One("kw"), &Options{Live: true}); err != nil {
		t.Fatalf("SERP: %v", err)
	}
	if _, err := c.SERP(context.Background(), Subject{}, &Options{TaskID: "t1"}); err != nil {
		t.Fatalf("SERP task get: %v", err)
	}

	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("login:password"))
	for _, req := range *recorded {
		if req.auth != wantAuth {
			t.Fatalf("unexpected authorization header %q", req.auth)
		}
	}
	if ct := (*recorded)[0].contentType; !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("unexpected content type %q", ct)
	}
}

func TestExtraOverridesModeledFields(t *testing.T) {
	srv, recorded := newRecordingServer(t, http.StatusOK, okBody)
	c := newTestClient(t, srv.URL)

	opts := &Options{Live: true, Extra: map[string]any{"depth": 10, "se_domain": "google.co.uk"}}
	if _, err := c.SERP(context.Background(), One("kw"), opts); err != nil {
		t.Fatalf("SERP: %v", err)
	}

	var tasks []map[string]any
	if err := json.Unmarshal([]byte((*recorded)[0].body), &tasks); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if got := tasks[0]["depth"]; got != float64(10) {
		t.Fatalf("extra did not override default depth, got %v", got)
	}
	if got := tasks[0]["se_domain"]; got != "google.co.uk" {
		t.Fatalf("extra field missing, got %v", got)
	}
}

func TestNewRejectsEmptyAPIKey(t *testing.T) {
	_, err := New("  ")
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected *InputError, got %v", err)
	}
}
