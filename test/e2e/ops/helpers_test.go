package ops_test

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	httpapi "github.com/prakarsateknik/opsdesk/internal/ops/http"
	"github.com/prakarsateknik/opsdesk/internal/ops/service"
	"github.com/prakarsateknik/opsdesk/internal/ops/store/drivers/sqlite"
	"github.com/prakarsateknik/opsdesk/pkg/cryptox"
	"github.com/prakarsateknik/opsdesk/pkg/httpx"
	"github.com/prakarsateknik/opsdesk/pkg/jwtx"
	"github.com/prakarsateknik/opsdesk/pkg/opsdk"
	"github.com/prakarsateknik/opsdesk/pkg/slogx"
	"github.com/stretchr/testify/require"
)

/*
 * End-to-end tests run the full service in-process: real SQLite store, real
 * token signing, real HTTP routing, exercised through the SDK client.
 */

const (
	direkturEmail    = "direktur@example.com"
	direkturPassword = "Direktur123!"
	adminEmail       = "admin@example.com"
	adminPassword    = "Admin123!"
	marketingEmail   = "marketing@example.com"
	marketingPass    = "Marketing123!"
	salesEmail       = "sales@example.com"
	salesPassword    = "Sales123!"
	produksiEmail    = "produksi@example.com"
	produksiPassword = "Produksi123!"
)

// TestMain relaxes the rate limits before any server is built. The tests
// hammer the login endpoint far harder than a browser would.
func TestMain(m *testing.M) {
	relaxed := httpx.RateLimitConfig{
		RequestsPerWindow: 10000,
		Window:            time.Minute,
		Burst:             10000,
	}
	httpx.StrictLimit = relaxed
	httpx.ModerateLimit = relaxed
	httpx.LenientLimit = relaxed

	os.Exit(m.Run())
}

// testServer is one running in-process instance of the service.
type testServer struct {
	URL      string
	Client   *opsdk.SDKClient
	Profiles *service.ProfileService
}

// startServer builds a full service stack on a fresh temp database and
// serves it over httptest.
func startServer(t *testing.T) *testServer {
	t.Helper()

	dir := t.TempDir()
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	st, err := sqlite.NewStore(filepath.Join(dir, "opsdesk_e2e.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	keyManager, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer:   "opsdesk-e2e",
		Audience: []string{"opsdesk"},
	})
	require.NoError(t, err)

	logger := slogx.New(slogx.Config{
		Service: "opsdesk",
		Env:     "test",
		Level:   "error",
		Format:  "text",
	})

	feed := service.NewFeed()
	notifier := &service.Notifier{Store: st, Feed: feed}

	router := httpapi.NewRouter(keyManager.KeySet, keyManager.Verifier, "e2e", st, logger)
	router.AuthService = &service.AuthService{
		KeyManager:  keyManager,
		Store:       st,
		Issuer:      "opsdesk-e2e",
		Audience:    []string{"opsdesk"},
		AccessTTL:   time.Hour,
		RememberTTL: time.Hour,
	}
	router.ProfileService = &service.ProfileService{Store: st}
	router.CustomerService = &service.CustomerService{Store: st, Notifier: notifier}
	router.ItemService = &service.ItemService{Store: st, Notifier: notifier}
	router.PurchaseOrderService = &service.PurchaseOrderService{Store: st, Notifier: notifier}
	router.ProductionService = &service.ProductionService{Store: st, Notifier: notifier}
	router.ReferenceService = &service.ReferenceService{Store: st}
	router.NotificationService = &service.NotificationService{Store: st, Feed: feed}
	router.Feed = feed
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:      srv.URL,
		Client:   opsdk.NewSDKClient(srv.URL),
		Profiles: router.ProfileService,
	}
}

// seedStaff creates a staff account directly through the service layer.
func seedStaff(t *testing.T, ts *testServer, email, displayName, role, password string) opsdk.Profile {
	t.Helper()

	p, _, err := ts.Profiles.CreateStaff(context.Background(), email, displayName, role, password)
	require.NoError(t, err)

	return opsdk.Profile{ID: p.ID, Email: p.Email, DisplayName: p.DisplayName, Role: p.Role}
}

// login creates an authenticated session, failing the test on error.
func login(t *testing.T, ts *testServer, email, password string, remember bool) *opsdk.Session {
	t.Helper()

	sess, err := ts.Client.Login(context.Background(), email, password, remember)
	require.NoError(t, err)
	return sess
}

// requireAPIStatus asserts that err is an APIError with the given HTTP status.
func requireAPIStatus(t *testing.T, err error, status int) {
	t.Helper()

	require.Error(t, err)
	apiErr, ok := err.(*opsdk.APIError)
	require.True(t, ok, "expected *opsdk.APIError, got %T: %v", err, err)
	require.Equal(t, status, apiErr.StatusCode)
}
