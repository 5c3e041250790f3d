package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveFor(t *testing.T, target string) Paging {
	t.Helper()
	var got Paging
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 10, 50)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePagingDefaults(t *testing.T) {
	p := resolveFor(t, "/items")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PerPage)
	assert.Equal(t, 0, p.Offset)
}

func TestResolvePagingAliases(t *testing.T) {
	// The panel's older links use ?index= and ?limit=.
	p := resolveFor(t, "/items?index=3&limit=20")
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 40, p.Offset)

	// Canonical names win over the aliases' defaults.
	p = resolveFor(t, "/items?page=2&per_page=5")
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 5, p.PerPage)
	assert.Equal(t, 5, p.Offset)
}

func TestResolvePagingClampsBadInput(t *testing.T) {
	p := resolveFor(t, "/items?page=-4&per_page=9999")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 50, p.PerPage)

	p = resolveFor(t, "/items?page=abc&per_page=0")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PerPage)
}

func TestBuildPagination(t *testing.T) {
	p := Paging{Page: 2, PerPage: 10, Offset: 10, Limit: 10}
	pg := BuildPagination(25, p, 10)

	assert.Equal(t, int64(25), pg.Total)
	assert.Equal(t, 3, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)
	assert.Equal(t, 10, pg.Count)

	pg = BuildPagination(25, Paging{Page: 3, PerPage: 10}, 5)
	assert.False(t, pg.HasNext)
	assert.True(t, pg.HasPrev)
}
