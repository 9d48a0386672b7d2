package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crypto-advisor/internal/trace"
)

// Handlers never fail a request: the analysis service masks every upstream
// error into best-effort content, so each route answers 200.

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleTrend(c *gin.Context) {
	ctx, span := trace.StartSpan(c.Request.Context(), "http.trend")
	defer span.End()

	c.JSON(http.StatusOK, s.service.MemecoinReport(ctx))
}

func (s *Server) handleBTC(c *gin.Context) {
	ctx, span := trace.StartSpan(c.Request.Context(), "http.btc")
	defer span.End()

	c.JSON(http.StatusOK, s.service.BitcoinReport(ctx))
}

func (s *Server) handleInvestment(c *gin.Context) {
	ctx, span := trace.StartSpan(c.Request.Context(), "http.investment")
	defer span.End()

	c.JSON(http.StatusOK, s.service.InvestmentReport(ctx))
}

func (s *Server) handleArbitrage(c *gin.Context) {
	ctx, span := trace.StartSpan(c.Request.Context(), "http.arbitrage")
	defer span.End()

	c.JSON(http.StatusOK, s.service.ArbitrageReport(ctx))
}
