package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"testing"

	"github.com/Debanga-06/Expense-Tracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		request        map[string]string
		setup          func()
		expectedStatus int
	}{
		{
			name: "successful registration",
			request: map[string]string{
				"username": "newuser",
				"email":    "newuser@example.com",
				"password": "password123",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing email",
			request: map[string]string{
				"username": "nouser",
				"password": "password123",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate username",
			request: map[string]string{
				"username": "existinguser",
				"email":    "fresh@example.com",
				"password": "password123",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithUsername("existinguser").
					Build(t, ts.DB.DB)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			request: map[string]string{
				"username": "freshuser",
				"email":    "existing@example.com",
				"password": "password123",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithEmail("existing@example.com").
					Build(t, ts.DB.DB)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty request body",
			request:        map[string]string{},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			body, _ := json.Marshal(tt.request)
			resp, err := http.Post(ts.URL("/register"), "application/json", bytes.NewBuffer(body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, rawPassword := testutil.NewUserBuilder().
		WithUsername("loginuser").
		WithEmail("loginuser@example.com").
		WithPassword("correctpassword").
		Build(t, ts.DB.DB)

	tests := []struct {
		name           string
		request        map[string]string
		expectedStatus int
		wantCookie     bool
	}{
		{
			name: "login by username",
			request: map[string]string{
				"username": user.Username,
				"password": rawPassword,
			},
			expectedStatus: http.StatusOK,
			wantCookie:     true,
		},
		{
			name: "login by email",
			request: map[string]string{
				"email":    user.Email,
				"password": rawPassword,
			},
			expectedStatus: http.StatusOK,
			wantCookie:     true,
		},
		{
			name: "wrong password",
			request: map[string]string{
				"username": user.Username,
				"password": "wrongpassword",
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown user gets the same error",
			request: map[string]string{
				"username": "nonexistent",
				"password": "anypassword",
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "missing password",
			request: map[string]string{
				"username": user.Username,
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.request)
			resp, err := http.Post(ts.URL("/login"), "application/json", bytes.NewBuffer(body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			var sessionCookie *http.Cookie
			for _, c := range resp.Cookies() {
				if c.Name == "session_token" && c.Value != "" {
					sessionCookie = c
				}
			}

			if tt.wantCookie {
				require.NotNil(t, sessionCookie, "expected a session cookie")
				assert.True(t, sessionCookie.HttpOnly)

				var result struct {
					Message  string `json:"message"`
					Username string `json:"username"`
				}
				testutil.AssertJSONResponse(t, resp, &result)
				assert.Equal(t, user.Username, result.Username)
			} else {
				assert.Nil(t, sessionCookie)
			}
		})
	}
}

func TestAuthHandler_CheckSession(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("logged out", func(t *testing.T) {
		resp, err := http.Get(ts.URL("/check_session"))
		require.NoError(t, err)
		defer resp.Body.Close()

		var result struct {
			LoggedIn bool   `json:"logged_in"`
			Username string `json:"username"`
		}
		testutil.AssertStatusCode(t, resp, http.StatusOK)
		testutil.AssertJSONResponse(t, resp, &result)
		assert.False(t, result.LoggedIn)
		assert.Empty(t, result.Username)
	})

	t.Run("logged in", func(t *testing.T) {
		user, client := testutil.NewUserBuilder().BuildAndLogin(t, ts)

		resp, err := client.Get(ts.URL("/check_session"))
		require.NoError(t, err)
		defer resp.Body.Close()

		var result struct {
			LoggedIn bool   `json:"logged_in"`
			Username string `json:"username"`
		}
		testutil.AssertStatusCode(t, resp, http.StatusOK)
		testutil.AssertJSONResponse(t, resp, &result)
		assert.True(t, result.LoggedIn)
		assert.Equal(t, user.Username, result.Username)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, client := testutil.NewUserBuilder().BuildAndLogin(t, ts)

	resp := testutil.DoJSON(t, client, http.MethodPost, ts.URL("/logout"), nil)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	// The session must be gone afterwards
	check, err := client.Get(ts.URL("/check_session"))
	require.NoError(t, err)
	defer check.Body.Close()

	var result struct {
		LoggedIn bool `json:"logged_in"`
	}
	testutil.AssertJSONResponse(t, check, &result)
	assert.False(t, result.LoggedIn)
}

func TestAuthHandler_LogoutWithoutSession(t *testing.T) {
	ts := testutil.NewTestServer(t)

	jar, _ := cookiejar.New(nil)
	client := &http.Client{Jar: jar}

	resp := testutil.DoJSON(t, client, http.MethodPost, ts.URL("/logout"), nil)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)
}
