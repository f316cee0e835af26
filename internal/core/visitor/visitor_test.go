package visitor

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp() *fiber.App {
	app := fiber.New()
	app.Use(New())
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.SendString(ID(c))
	})
	return app
}

func TestNew_IssuesCookie(t *testing.T) {
	app := setupApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_, err = uuid.Parse(string(body))
	assert.NoError(t, err)

	var issued string
	for _, cookie := range resp.Cookies() {
		if cookie.Name == CookieName {
			issued = cookie.Value
		}
	}
	assert.Equal(t, string(body), issued)
}

func TestNew_KeepsExistingCookie(t *testing.T) {
	app := setupApp()
	existing := uuid.NewString()

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Cookie", CookieName+"="+existing)
	resp, err := app.Test(req)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, existing, string(body))
	assert.Empty(t, resp.Cookies())
}

func TestNew_ReplacesMalformedCookie(t *testing.T) {
	app := setupApp()

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Cookie", CookieName+"=not-a-uuid")
	resp, err := app.Test(req)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotEqual(t, "not-a-uuid", string(body))
	assert.NotEmpty(t, resp.Cookies())
}

func TestID_WithoutMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("[" + ID(c) + "]")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "[]", string(body))
}
