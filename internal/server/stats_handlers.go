package server

import (
	"skillswap/internal/cache"
	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetSwapStats handles GET /api/admin/stats/swaps. The body is the flat
// counts object with all five lifecycle statuses as keys, zero-valued
// when absent. Counts are served cache-aside with a short TTL since
// admin dashboards poll this endpoint.
func (s *Server) GetSwapStats(c *fiber.Ctx) error {
	var counts map[models.SwapStatus]int64
	err := cache.Aside(c.Context(), cache.SwapStatsKey(), &counts, cache.SwapStatsTTL, func() error {
		var fetchErr error
		counts, fetchErr = s.swapService.StatusCounts(c.Context())
		return fetchErr
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(counts)
}
