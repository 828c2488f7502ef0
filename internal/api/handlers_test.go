package api_test

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/munier-ie/stayonx/internal/api"
	errorvalues "github.com/munier-ie/stayonx/internal/error_values"
	"github.com/munier-ie/stayonx/internal/extsync"
	"github.com/munier-ie/stayonx/internal/service"
	"github.com/munier-ie/stayonx/internal/service/mocks"
	"github.com/munier-ie/stayonx/pkg/entity"
	"github.com/munier-ie/stayonx/pkg/httputil"
	jwtservice "github.com/munier-ie/stayonx/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test_secret"

var (
	userID  = uuid.New()
	spaceID = uuid.New()
	handle  = "test_handle"
)

type servicesMocks struct {
	profile  *mocks.MockProfileServiceI
	goal     *mocks.MockGoalServiceI
	streak   *mocks.MockStreakServiceI
	badge    *mocks.MockBadgeServiceI
	space    *mocks.MockSpaceServiceI
	activity *mocks.MockActivityServiceI
	sync     *mocks.MockSyncServiceI
}

func newTestServer(t *testing.T) (*api.Server, servicesMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := servicesMocks{
		profile:  mocks.NewMockProfileServiceI(ctrl),
		goal:     mocks.NewMockGoalServiceI(ctrl),
		streak:   mocks.NewMockStreakServiceI(ctrl),
		badge:    mocks.NewMockBadgeServiceI(ctrl),
		space:    mocks.NewMockSpaceServiceI(ctrl),
		activity: mocks.NewMockActivityServiceI(ctrl),
		sync:     mocks.NewMockSyncServiceI(ctrl),
	}
	serv := api.New(&api.ServicesList{
		ProfileService:  m.profile,
		GoalService:     m.goal,
		StreakService:   m.streak,
		BadgeService:    m.badge,
		SpaceService:    m.space,
		ActivityService: m.activity,
		SyncService:     m.sync,
		JwtService:      jwtservice.New(secret),
		RequestTimeout:  5 * time.Second,
	})
	return serv, m
}

func bearer(t *testing.T) string {
	t.Helper()
	token, err := jwtservice.New(secret).GenerateToken(userID, handle)
	require.NoError(t, err)
	return "Bearer " + token
}

// authed builds a request that went through the auth middleware.
func authed(method, target string, body io.Reader) *http.Request {
	r := httptest.NewRequest(method, target, body)
	return r.WithContext(api.ContextWithUID(r.Context(), userID))
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	body, err := sonic.ConfigDefault.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func TestHealth(t *testing.T) {
	serv, _ := newTestServer(t)
	rr := httptest.NewRecorder()
	serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
}

func TestAuthMiddleware(t *testing.T) {
	serv, m := newTestServer(t)
	expired, err := jwtservice.New(secret).WithTTL(-time.Minute).GenerateToken(userID, handle)
	require.NoError(t, err)
	foreign, err := jwtservice.New("other_secret").GenerateToken(userID, handle)
	require.NoError(t, err)

	testCases := []struct {
		Desc          string
		Authorization string
		ExpectedCode  int
		MockPrepFunc  func()
	}{
		{
			Desc:          "successful auth",
			Authorization: bearer(t),
			ExpectedCode:  http.StatusOK,
			MockPrepFunc: func() {
				m.profile.EXPECT().Ensure(gomock.Any(), userID, handle).Return(&entity.Profile{ID: userID}, nil)
				m.profile.EXPECT().GetByID(gomock.Any(), userID).Return(&entity.Profile{ID: userID, Handle: handle}, nil)
			},
		},
		{
			Desc:          "error missing header",
			ExpectedCode:  http.StatusUnauthorized,
			MockPrepFunc:  func() {},
			Authorization: "",
		},
		{
			Desc:          "error malformed header",
			Authorization: "Token abc",
			ExpectedCode:  http.StatusUnauthorized,
			MockPrepFunc:  func() {},
		},
		{
			Desc:          "error expired token",
			Authorization: "Bearer " + expired,
			ExpectedCode:  http.StatusUnauthorized,
			MockPrepFunc:  func() {},
		},
		{
			Desc:          "error foreign signature",
			Authorization: "Bearer " + foreign,
			ExpectedCode:  http.StatusUnauthorized,
			MockPrepFunc:  func() {},
		},
		{
			Desc:          "error profile store",
			Authorization: bearer(t),
			ExpectedCode:  http.StatusInternalServerError,
			MockPrepFunc: func() {
				m.profile.EXPECT().Ensure(gomock.Any(), userID, handle).Return(nil, errorvalues.ErrStoreUnavailable)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
			if tc.Authorization != "" {
				r.Header.Set("Authorization", tc.Authorization)
			}
			serv.ServeHTTP(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestSetGoals(t *testing.T) {
	serv, m := newTestServer(t)
	until := time.Date(2025, time.March, 17, 12, 0, 0, 0, time.UTC)
	req := api.SetGoalsRequest{Reply: 10, Tweet: 2, DM: 1, DurationDays: 7}
	serviceReq := &service.SetGoalsRequest{Reply: 10, Tweet: 2, DM: 1, DurationDays: 7}

	testCases := []struct {
		Desc         string
		ExpectedCode int
		Body         func() io.Reader
		MockPrepFunc func()
		Check        func(t *testing.T, body []byte)
	}{
		{
			Desc:         "success",
			ExpectedCode: http.StatusOK,
			Body:         func() io.Reader { return jsonBody(t, req) },
			MockPrepFunc: func() {
				m.goal.EXPECT().SetGoals(gomock.Any(), userID, serviceReq).Return(&entity.GoalSet{
					Reply: 10, Tweet: 2, DM: 1, LockDuration: 7, LockUntil: &until,
				}, nil)
			},
		},
		{
			Desc:         "error goals locked",
			ExpectedCode: http.StatusConflict,
			Body:         func() io.Reader { return jsonBody(t, req) },
			MockPrepFunc: func() {
				m.goal.EXPECT().SetGoals(gomock.Any(), userID, serviceReq).
					Return(nil, errorvalues.NewPrecondition(errorvalues.ErrGoalsLocked, &until))
			},
			Check: func(t *testing.T, body []byte) {
				var resp httputil.ErrorResponse
				require.NoError(t, sonic.Unmarshal(body, &resp))
				assert.Equal(t, errorvalues.ErrGoalsLocked.Error(), resp.Message)
				require.NotNil(t, resp.LockedUntil)
				assert.True(t, until.Equal(*resp.LockedUntil))
			},
		},
		{
			Desc:         "error validation",
			ExpectedCode: http.StatusBadRequest,
			Body:         func() io.Reader { return jsonBody(t, req) },
			MockPrepFunc: func() {
				m.goal.EXPECT().SetGoals(gomock.Any(), userID, serviceReq).
					Return(nil, errors.Join(errorvalues.ErrValidation, errors.New("reply too large")))
			},
		},
		{
			Desc:         "error service",
			ExpectedCode: http.StatusInternalServerError,
			Body:         func() io.Reader { return jsonBody(t, req) },
			MockPrepFunc: func() {
				m.goal.EXPECT().SetGoals(gomock.Any(), userID, serviceReq).
					Return(nil, errors.Join(errorvalues.ErrStoreUnavailable, errors.New("connection reset")))
			},
		},
		{
			Desc:         "error corrupted body",
			ExpectedCode: http.StatusBadRequest,
			Body:         func() io.Reader { return strings.NewReader("corrupted") },
			MockPrepFunc: func() {},
		},
		{
			Desc:         "error truncated body",
			ExpectedCode: http.StatusBadRequest,
			Body:         func() io.Reader { return strings.NewReader(`{"reply":`) },
			MockPrepFunc: func() {},
		},
		{
			Desc:         "error garbage before json",
			ExpectedCode: http.StatusBadRequest,
			Body:         func() io.Reader { return strings.NewReader(`xx{"reply":3}`) },
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			serv.SetGoals(rr, authed(http.MethodPut, "/api/v1/me/goals", tc.Body()))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
			if tc.Check != nil {
				body, err := io.ReadAll(rr.Result().Body)
				require.NoError(t, err)
				tc.Check(t, body)
			}
		})
	}
	t.Run("error unauthorized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.SetGoals(rr, httptest.NewRequest(http.MethodPut, "/api/v1/me/goals", jsonBody(t, req)))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestGetGoalsFallsBackToPersonal(t *testing.T) {
	serv, m := newTestServer(t)
	m.goal.EXPECT().Resolve(gomock.Any(), userID).Return(&service.ResolvedGoals{
		Personal:  entity.DefaultGoals(),
		Effective: entity.DefaultGoals(),
		Source:    service.SourcePersonal,
	}, nil)
	rr := httptest.NewRecorder()
	serv.GetGoals(rr, authed(http.MethodGet, "/api/v1/me/goals", nil))
	require.Equal(t, http.StatusOK, rr.Result().StatusCode)
	var resp map[string]any
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&resp))
	assert.Equal(t, "personal", resp["source"])
}

func TestRecordActivity(t *testing.T) {
	serv, m := newTestServer(t)
	req := api.RecordActivityRequest{Date: "2025-03-10", Replies: 3}
	serviceReq := &service.RecordActivityRequest{Date: "2025-03-10", Replies: 3}
	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "success",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				m.activity.EXPECT().Record(gomock.Any(), userID, serviceReq).Return(&service.SyncResult{
					Record:    &entity.ActivityRecord{UserID: userID, Date: "2025-03-10", ActivityCounts: entity.ActivityCounts{Replies: 3}},
					NewBadges: []entity.BadgeDefinition{},
				}, nil)
			},
		},
		{
			Desc:         "error future day",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				m.activity.EXPECT().Record(gomock.Any(), userID, serviceReq).Return(nil, errorvalues.ErrInvalidDay)
			},
		},
		{
			Desc:         "error profile not found",
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				m.activity.EXPECT().Record(gomock.Any(), userID, serviceReq).Return(nil, errorvalues.ErrProfileNotFound)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			serv.RecordActivity(rr, authed(http.MethodPost, "/api/v1/activity", jsonBody(t, req)))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestSpaceRoutes(t *testing.T) {
	serv, m := newTestServer(t)
	m.profile.EXPECT().Ensure(gomock.Any(), userID, handle).Return(&entity.Profile{ID: userID}, nil).AnyTimes()
	lockUntil := time.Now().Add(72 * time.Hour).UTC()

	testCases := []struct {
		Desc         string
		Method       string
		Target       string
		Body         string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "create space",
			Method:       http.MethodPost,
			Target:       "/api/v1/spaces",
			Body:         `{"name":"builders","visibility":"public","reply":10,"lock_days":7}`,
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				m.space.EXPECT().Create(gomock.Any(), userID, &service.CreateSpaceRequest{
					Name: "builders", Visibility: entity.VisibilityPublic, Reply: 10, LockDays: 7,
				}).Return(&entity.Space{ID: spaceID, Name: "builders", OwnerID: userID}, nil)
			},
		},
		{
			Desc:         "error create while member",
			Method:       http.MethodPost,
			Target:       "/api/v1/spaces",
			Body:         `{"name":"builders","visibility":"public"}`,
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				m.space.EXPECT().Create(gomock.Any(), userID, gomock.Any()).
					Return(nil, errorvalues.NewPrecondition(errorvalues.ErrAlreadyMember, nil))
			},
		},
		{
			Desc:         "join without body",
			Method:       http.MethodPost,
			Target:       "/api/v1/spaces/" + spaceID.String() + "/join",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				m.space.EXPECT().Join(gomock.Any(), userID, spaceID, &service.JoinSpaceRequest{}).
					Return(&entity.Membership{SpaceID: spaceID, UserID: userID, JoinedAt: time.Now()}, nil)
			},
		},
		{
			Desc:         "error join private without invite",
			Method:       http.MethodPost,
			Target:       "/api/v1/spaces/" + spaceID.String() + "/join",
			Body:         `{"invite_code":"123456789012"}`,
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				m.space.EXPECT().Join(gomock.Any(), userID, spaceID, &service.JoinSpaceRequest{InviteCode: "123456789012"}).
					Return(nil, errorvalues.NewPrecondition(errorvalues.ErrInviteRequired, nil))
			},
		},
		{
			Desc:         "error quit while locked",
			Method:       http.MethodPost,
			Target:       "/api/v1/spaces/" + spaceID.String() + "/quit",
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				m.space.EXPECT().Quit(gomock.Any(), userID, spaceID).
					Return(errorvalues.NewPrecondition(errorvalues.ErrMembershipLocked, &lockUntil))
			},
		},
		{
			Desc:         "error space goals corrupted body",
			Method:       http.MethodPut,
			Target:       "/api/v1/spaces/" + spaceID.String() + "/goals",
			Body:         `{"reply":`,
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "delete space",
			Method:       http.MethodDelete,
			Target:       "/api/v1/spaces/" + spaceID.String(),
			ExpectedCode: http.StatusNoContent,
			MockPrepFunc: func() {
				m.space.EXPECT().Delete(gomock.Any(), userID, spaceID).Return(nil)
			},
		},
		{
			Desc:         "error delete unexist space",
			Method:       http.MethodDelete,
			Target:       "/api/v1/spaces/" + spaceID.String(),
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				m.space.EXPECT().Delete(gomock.Any(), userID, spaceID).Return(errorvalues.ErrSpaceNotFound)
			},
		},
		{
			Desc:         "error invalid space id",
			Method:       http.MethodGet,
			Target:       "/api/v1/spaces/not-a-uuid",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "feed with limit",
			Method:       http.MethodGet,
			Target:       "/api/v1/spaces/" + spaceID.String() + "/activity?limit=5",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				m.space.EXPECT().Feed(gomock.Any(), spaceID, 5).Return([]entity.SpaceActivityEvent{}, nil)
			},
		},
		{
			Desc:         "list public spaces second page",
			Method:       http.MethodGet,
			Target:       "/api/v1/spaces?limit=10&page=2",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				m.space.EXPECT().ListPublic(gomock.Any(), service.PaginationOpts{Limit: 10, Offset: 10}).Return([]*entity.Space{}, nil)
			},
		},
		{
			Desc:         "create invite",
			Method:       http.MethodPost,
			Target:       "/api/v1/spaces/" + spaceID.String() + "/invites",
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				m.space.EXPECT().CreateInvite(gomock.Any(), userID, spaceID).
					Return(&service.InviteCode{Code: "123456789012", ExpiresAt: time.Now().Add(service.InviteTTL)}, nil)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			var body io.Reader = http.NoBody
			if tc.Body != "" {
				body = strings.NewReader(tc.Body)
			}
			r := httptest.NewRequest(tc.Method, tc.Target, body)
			r.Header.Set("Authorization", bearer(t))
			serv.ServeHTTP(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestSyncHandshake(t *testing.T) {
	serv, m := newTestServer(t)
	t.Run("ready", func(t *testing.T) {
		m.sync.EXPECT().MarkReady(userID)
		rr := httptest.NewRecorder()
		serv.SyncReady(rr, authed(http.MethodPost, "/api/v1/sync/ready", nil))
		assert.Equal(t, http.StatusNoContent, rr.Result().StatusCode)
	})
	t.Run("handshake reports state", func(t *testing.T) {
		m.sync.EXPECT().AwaitReady(gomock.Any(), userID).Return(extsync.StateTimeout)
		rr := httptest.NewRecorder()
		serv.SyncHandshake(rr, authed(http.MethodGet, "/api/v1/sync/handshake", nil))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp map[string]string
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&resp))
		assert.Equal(t, "timeout", resp["state"])
	})
}

func TestSyncStream(t *testing.T) {
	serv, m := newTestServer(t)
	m.profile.EXPECT().Ensure(gomock.Any(), userID, handle).Return(&entity.Profile{ID: userID}, nil)

	msgs := make(chan extsync.Message, 1)
	first := extsync.Message{Type: extsync.MessageType, Goals: extsync.Goals{Reply: 5, Tweet: 1, DM: 1}}
	next := extsync.Message{Type: extsync.MessageType, Goals: extsync.Goals{Reply: 10}}
	m.sync.EXPECT().Subscribe(userID).Return((<-chan extsync.Message)(msgs), func() {})
	m.sync.EXPECT().Snapshot(gomock.Any(), userID).Return(&first, nil)

	ts := httptest.NewServer(serv)
	defer ts.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	r, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/api/v1/sync/stream", nil)
	require.NoError(t, err)
	r.Header.Set("Authorization", bearer(t))
	resp, err := http.DefaultClient.Do(r)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readEvent := func() extsync.Message {
		t.Helper()
		var msg extsync.Message
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if data, ok := strings.CutPrefix(line, "data: "); ok {
				require.NoError(t, sonic.UnmarshalString(strings.TrimSpace(data), &msg))
				return msg
			}
		}
	}
	assert.Equal(t, 5, readEvent().Goals.Reply)
	msgs <- next
	assert.Equal(t, 10, readEvent().Goals.Reply)
	close(msgs)
}
