package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/pocketledger/backend/internal/auth"
	"github.com/pocketledger/backend/internal/cache"
	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/events"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/router"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

// Secret is the JWT secret used for all test requests.
var Secret = []byte("pocketledger-test-secret-of-sufficient-length")

// Owner is the user most tests make their requests as.
const Owner = "7d2d2e34-4d33-4b8a-a4c6-0f3e5e0c8f11"

// Auth returns the Authorization header for a token identifying owner.
func Auth(t *testing.T, owner string) map[string]string {
	token, err := auth.NewVerifier(Secret).IssueToken(owner, time.Hour)
	require.Nil(t, err, "issuing token")

	return map[string]string{"Authorization": "Bearer " + token}
}

// Request is a helper method to simplify making a HTTP request for tests.
//
// Unless headers contain an Authorization header, the request is made as Owner.
func Request(t *testing.T, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	var byteBuffer *bytes.Buffer

	switch {
	case body == nil:
		byteBuffer = new(bytes.Buffer)
	case reflect.TypeOf(body).Kind() == reflect.String:
		byteBuffer = bytes.NewBufferString(body.(string))
	case reflect.TypeOf(body).Kind() == reflect.Struct || reflect.TypeOf(body).Kind() == reflect.Map || reflect.TypeOf(body).Kind() == reflect.Slice:
		byteStr, err := json.Marshal(body)
		if err != nil {
			assert.Fail(t, "Request body could not be marshalled from struct input", err)
		}
		byteBuffer = bytes.NewBuffer(byteStr)
	default:
		// Assume we got sent a *bytes.Buffer
		byteBuffer = body.(*bytes.Buffer)
	}

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		assert.FailNow(t, "environment variable API_URL must be set")
	}

	baseURL, err := url.Parse(apiURL)
	if err != nil {
		assert.FailNow(t, "environment variable API_URL must be a valid URL")
	}

	r, teardown, err := router.Config(baseURL)
	defer teardown()

	if err != nil {
		assert.FailNow(t, "Router could not be initialized", err)
	}

	router.AttachRoutes(router.Routes{
		Controller: v1.Controller{
			Engine:    ledger.NewEngine(ledger.NewDBStore(models.DB), 0),
			Cache:     cache.NewLRU(100, time.Minute),
			Publisher: events.Log{Logger: log.Logger},
			Currency:  currency.INR,
		},
		Verifier: auth.NewVerifier(Secret),
	}, r.Group("/"))

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, reqURL, byteBuffer)

	authenticated := false
	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
			if http.CanonicalHeaderKey(header) == "Authorization" {
				authenticated = true
			}
		}
	}

	if !authenticated {
		for header, value := range Auth(t, Owner) {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), &target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v', Request ID: %s", r.Body, reflect.TypeOf(target), err, r.Result().Header.Get("x-request-id"))
	}
}

// AssertHTTPStatus verifies that the HTTP response status is correct
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}
