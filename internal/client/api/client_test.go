package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/common"
)

func TestLoginSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "amit", req["username"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok-1","user":{"id":"u-1","username":"amit","role":"teacher"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	token, user, err := c.Login(context.Background(), "amit", "pw")
	require.NoError(t, err)
	require.Equal(t, "tok-1", token)
	require.Equal(t, "u-1", user.ID)
	require.Equal(t, common.RoleTeacher, user.Role)
}

func TestBearerHeaderAttached(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"user":{"id":"u-1"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	c.SetToken("tok-9")

	_, err := c.Me(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-9", got)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"bad request", http.StatusBadRequest, `{"error":"name required"}`, common.ErrValidation},
		{"unauthorized", http.StatusUnauthorized, `{"error":"invalid token"}`, common.ErrUnauthorized},
		{"forbidden", http.StatusForbidden, `{"error":"forbidden"}`, common.ErrForbidden},
		{"not found", http.StatusNotFound, `{"error":"no profile"}`, common.ErrNotFound},
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`, common.ErrServer},
		{"bad gateway without body", http.StatusBadGateway, ``, common.ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, time.Second)
			_, err := c.Me(context.Background())
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// Exceeding the request bound is a timeout, not a generic network error.
func TestTimeoutDistinctFromOtherErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// park until the client gives up; the request context unblocks the
		// handler so the server can shut down
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 50*time.Millisecond)
	_, err := c.Me(context.Background())
	require.ErrorIs(t, err, common.ErrTimeout)
	require.NotErrorIs(t, err, common.ErrNetwork)
	require.NotErrorIs(t, err, common.ErrServer)
}

func TestUnreachableServerIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Me(context.Background())
	require.ErrorIs(t, err, common.ErrNetwork)
}

func TestMarkAttendanceWireFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/teachers/mark-attendance", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "stu-1", req["student_id"])
		require.Equal(t, "2026-08-31", req["class_date"])
		require.Equal(t, true, req["present"])

		_, _ = w.Write([]byte(`{"id":"a-1","student_id":"stu-1","subject":"Maths","present":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	rec, err := c.MarkAttendance(context.Background(), "stu-1", "2026-08-31", "Maths", true)
	require.NoError(t, err)
	require.Equal(t, "a-1", rec.ID)
	require.True(t, rec.Present)
}

func TestDeleteUserNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/admin/users/u-9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	require.NoError(t, c.DeleteUser(context.Background(), "u-9"))
}
