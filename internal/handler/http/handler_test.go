// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-site-gateway/internal/config"
	"github.com/MKhiriev/go-site-gateway/internal/logger"
	"github.com/MKhiriev/go-site-gateway/internal/mock"
	"github.com/MKhiriev/go-site-gateway/internal/service"
	"github.com/MKhiriev/go-site-gateway/internal/utils"
	"github.com/MKhiriev/go-site-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "handler-test-secret"

var testEndpoints = config.Endpoints{
	EventsSubject:                  "sub-events",
	BlogPostsSubject:               "sub-posts",
	BlogTaxonomiesSubject:          "sub-tax",
	CollectionSubject:              "sub-coll",
	MembersSubject:                 "sub-members",
	ArticlesCollectionID:           "coll-articles",
	ArticlesCategoriesCollectionID: "coll-article-categories",
}

// testServices holds the mocks behind a handler built by newTestHandler.
// Token verification and collection id resolution use the real services.
type testServices struct {
	events          *mock.MockEventService
	blog            *mock.MockBlogService
	collectionItems *mock.MockDocumentRepository
	members         *mock.MockMemberService
	appInfo         *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) (*Handler, testServices) {
	t.Helper()
	return newTestHandlerWithServer(t, config.Server{})
}

func newTestHandlerWithServer(t *testing.T, serverCfg config.Server) (*Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := testServices{
		events:          mock.NewMockEventService(ctrl),
		blog:            mock.NewMockBlogService(ctrl),
		collectionItems: mock.NewMockDocumentRepository(ctrl),
		members:         mock.NewMockMemberService(ctrl),
		appInfo:         mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:       service.NewAuthService(config.App{AuthSecret: testSecret}, logger.Nop()),
		EventService:      mocks.events,
		BlogService:       mocks.blog,
		CollectionService: service.NewCollectionService(mocks.collectionItems, testEndpoints.CollectionIDs(), logger.Nop()),
		MemberService:     mocks.members,
		AppInfoService:    mocks.appInfo,
	}

	return NewHandler(services, testEndpoints, serverCfg, logger.Nop()), mocks
}

// bearer returns an Authorization header value for a token issued to subject.
func bearer(t *testing.T, subject string) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(subject, time.Hour, testSecret)
	require.NoError(t, err)
	return "Bearer " + token.String()
}

func rawItems(items ...string) []json.RawMessage {
	result := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		result = append(result, json.RawMessage(item))
	}
	return result
}

func serve(h *Handler, method, target, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

// errorMessage asserts a 400 JSON error response and returns its message.
func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Error)
	return body.Error
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	services := &service.Services{}
	log := logger.Nop()

	h := NewHandler(services, testEndpoints, config.Server{RequestTimeout: time.Second}, log)

	require.NotNil(t, h)
	assert.Same(t, services, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, testEndpoints, h.endpoints)
	assert.Equal(t, time.Second, h.requestTimeout)
	assert.NotNil(t, h.traceIDs)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

func TestInit_RegistersAllRoutes(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	registered := make(map[string]bool)
	for _, route := range router.Routes() {
		for method := range route.Handlers {
			registered[method+" "+route.Pattern] = true
		}
	}

	for _, want := range []string{
		"GET /api/events",
		"GET /api/blog/posts",
		"GET /api/blog/taxonomies",
		"GET /api/collections",
		"GET /api/members",
		"GET /api/version/",
	} {
		assert.True(t, registered[want], "route %s is not registered", want)
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h, http.MethodGet, "/api/unknown", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		rr := serve(h, method, "/api/events", bearer(t, "sub-events"))
		assert.Equal(t, http.StatusNotFound, rr.Code, method)
	}
}

func TestInit_RecoversPanics(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.members.EXPECT().GetMembers(gomock.Any()).DoAndReturn(func(context.Context) ([]json.RawMessage, error) {
		panic("unexpected nil document")
	})

	rr := serve(h, http.MethodGet, "/api/members", bearer(t, "sub-members"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestInit_CompressesJSON(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.events.EXPECT().GetAllEvents(gomock.Any()).Return(rawItems(`{"title":"`+strings.Repeat("a", 2048)+`"}`), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req.Header.Set("Authorization", bearer(t, "sub-events"))
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
}

func TestInit_RequestTimeoutSetsDeadline(t *testing.T) {
	h, mocks := newTestHandlerWithServer(t, config.Server{RequestTimeout: 5 * time.Second})
	mocks.events.EXPECT().GetAllEvents(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]json.RawMessage, error) {
		_, ok := ctx.Deadline()
		assert.True(t, ok, "request context must carry a deadline")
		return rawItems(), nil
	})

	rr := serve(h, http.MethodGet, "/api/events", bearer(t, "sub-events"))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestInit_VersionIsPublic(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.4.0")

	rr := serve(h, http.MethodGet, "/api/version/", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", string(body))
}
