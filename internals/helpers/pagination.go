package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 25
	MaxPageSize     = 200
)

type Paging struct {
	Page     int
	PageSize int
	Offset   int
	Limit    int
}

// ResolvePaging reads ?page= & ?page_size= and normalizes them.
func ResolvePaging(c *fiber.Ctx) Paging {
	return ResolvePagingWith(c, DefaultPageSize, MaxPageSize)
}

func ResolvePagingWith(c *fiber.Ctx, defaultPageSize, maxPageSize int) Paging {
	page := atoiDefault(strings.TrimSpace(c.Query("page")), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	size := atoiDefault(strings.TrimSpace(c.Query("page_size")), defaultPageSize)
	if size <= 0 {
		size = defaultPageSize
	}
	if maxPageSize > 0 && size > maxPageSize {
		size = maxPageSize
	}

	return Paging{
		Page:     page,
		PageSize: size,
		Offset:   (page - 1) * size,
		Limit:    size,
	}
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
