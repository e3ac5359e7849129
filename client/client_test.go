package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"server/config"
	"server/db"
	"server/handlers"
	"server/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var testDBCounter int64

const testPassword = "test-admin-pass"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	config.ADMIN_PASSWORD = testPassword
	config.JWT_SECRET = "test-secret-0123456789"
	config.MYSQL_DSN = ""
	config.SQLITE_FILE = fmt.Sprintf("file:client%d?mode=memory&cache=shared",
		atomic.AddInt64(&testDBCounter, 1))
	db.Init()
	models.Init()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers.RegisterRoutes(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func loggedInClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	c := New(server.URL)
	token, err := c.Login(context.Background(), testPassword)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	return c
}

func TestLoginAndVerify(t *testing.T) {
	server := newTestServer(t)
	ctx := context.Background()

	c := New(server.URL)
	_, err := c.Login(ctx, "wrong")
	apiErr := &APIError{}
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.False(t, c.Verify(ctx))

	c = loggedInClient(t, server)
	require.True(t, c.Verify(ctx))
}

func TestAlbumServiceCachePatching(t *testing.T) {
	server := newTestServer(t)
	ctx := context.Background()
	c := loggedInClient(t, server)
	albums := NewAlbumService(c)

	require.NoError(t, albums.Refresh(ctx))
	require.Empty(t, albums.Albums())

	first, err := albums.Create(ctx, AlbumParams{Name: "First"})
	require.NoError(t, err)
	second, err := albums.Create(ctx, AlbumParams{Name: "Second"})
	require.NoError(t, err)

	cached := albums.Albums()
	require.Len(t, cached, 2)
	require.Equal(t, second.ID, cached[0].ID) // newest first
	require.Equal(t, first.ID, cached[1].ID)

	desc := "Updated description"
	updated, err := albums.Update(ctx, first.ID, AlbumUpdateParams{Description: &desc})
	require.NoError(t, err)
	require.Equal(t, "First", updated.Name)
	require.Equal(t, desc, albums.Albums()[1].Description)

	installation, err := albums.AddInstallation(ctx, second.ID, InstallationParams{
		Image: "https://media.example/cam.jpg", Title: "Office", Category: "Commercial"})
	require.NoError(t, err)
	require.Len(t, albums.Albums()[0].Installations, 1)

	title := "Office reception"
	patched, err := albums.UpdateInstallation(ctx, second.ID, installation.ID,
		InstallationUpdateParams{Title: &title})
	require.NoError(t, err)
	require.Equal(t, title, patched.Title)
	require.Equal(t, installation.Image, patched.Image)
	require.Equal(t, title, albums.Albums()[0].Installations[0].Title)

	require.NoError(t, albums.DeleteInstallation(ctx, second.ID, installation.ID))
	require.Empty(t, albums.Albums()[0].Installations)

	require.NoError(t, albums.Delete(ctx, second.ID))
	cached = albums.Albums()
	require.Len(t, cached, 1)
	require.Equal(t, first.ID, cached[0].ID)

	// The cache agrees with a fresh fetch.
	require.NoError(t, albums.Refresh(ctx))
	require.Len(t, albums.Albums(), 1)
}

func TestAlbumsSnapshotIsolatedFromLaterMutations(t *testing.T) {
	server := newTestServer(t)
	ctx := context.Background()
	c := loggedInClient(t, server)
	albums := NewAlbumService(c)

	album, err := albums.Create(ctx, AlbumParams{Name: "Snapshot"})
	require.NoError(t, err)
	first, err := albums.AddInstallation(ctx, album.ID, InstallationParams{
		Image: "https://media.example/1.jpg", Title: "Before", Category: "Commercial"})
	require.NoError(t, err)
	second, err := albums.AddInstallation(ctx, album.ID, InstallationParams{
		Image: "https://media.example/2.jpg", Title: "Sibling", Category: "Commercial"})
	require.NoError(t, err)

	snapshot := albums.Albums()
	require.Len(t, snapshot[0].Installations, 2)

	title := "After"
	_, err = albums.UpdateInstallation(ctx, album.ID, first.ID,
		InstallationUpdateParams{Title: &title})
	require.NoError(t, err)
	require.NoError(t, albums.DeleteInstallation(ctx, album.ID, second.ID))

	// The snapshot taken before the mutations still shows the old state.
	require.Len(t, snapshot[0].Installations, 2)
	require.Equal(t, "Before", snapshot[0].Installations[0].Title)
	require.Equal(t, "Sibling", snapshot[0].Installations[1].Title)

	// And the cache itself moved on.
	cached := albums.Albums()
	require.Len(t, cached[0].Installations, 1)
	require.Equal(t, "After", cached[0].Installations[0].Title)
}

func TestFailedMutationLeavesCacheUntouched(t *testing.T) {
	server := newTestServer(t)
	ctx := context.Background()
	c := loggedInClient(t, server)
	albums := NewAlbumService(c)

	_, err := albums.Create(ctx, AlbumParams{Name: "Only"})
	require.NoError(t, err)
	before := albums.Albums()

	c.SetToken("bogus")
	_, err = albums.Create(ctx, AlbumParams{Name: "Rejected"})
	apiErr := &APIError{}
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusForbidden, apiErr.Status)
	require.Equal(t, before, albums.Albums())

	_, err = albums.Update(ctx, 99999, AlbumUpdateParams{})
	require.Error(t, err)
	require.Equal(t, before, albums.Albums())
}

func TestMessageService(t *testing.T) {
	server := newTestServer(t)
	ctx := context.Background()

	// A visitor sends the contact form without any credential.
	visitor := New(server.URL)
	messages := NewMessageService(visitor)
	sent, err := messages.Send(ctx, MessageParams{Name: "A", Email: "a@b.com", Message: "hi"})
	require.NoError(t, err)
	require.Equal(t, "Security Assessment", sent.Service)

	// The admin reads and deletes it.
	admin := loggedInClient(t, server)
	inbox := NewMessageService(admin)
	require.NoError(t, inbox.Refresh(ctx))
	require.Len(t, inbox.Messages(), 1)

	// A failed refresh keeps the previously fetched inbox.
	admin.SetToken("")
	require.Error(t, inbox.Refresh(ctx))
	require.Len(t, inbox.Messages(), 1)

	_, err = admin.Login(ctx, testPassword)
	require.NoError(t, err)
	require.NoError(t, inbox.Delete(ctx, sent.ID))
	require.Empty(t, inbox.Messages())
}
