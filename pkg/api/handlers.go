// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/luxfi/launchpad/pkg/fixedpoint"
	"github.com/luxfi/launchpad/pkg/launchpad"
)

// CreateProjectRequest mirrors launchpad.ProjectConfig with the caller
// identity attached. Distribution is passed by name.
type CreateProjectRequest struct {
	Caller       string `json:"caller" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Symbol       string `json:"symbol" binding:"required"`
	Token        string `json:"token" binding:"required"`
	Distribution string `json:"distribution" binding:"required,oneof=fixed_price dutch_auction fair_launch"`
	Duration     uint64 `json:"duration" binding:"required"`
	TotalTokens  uint64 `json:"total_tokens" binding:"required"`

	PricePerToken uint64 `json:"price_per_token"`
	MinPrice      uint64 `json:"min_price"`
	MaxPrice      uint64 `json:"max_price"`

	MinRaise uint64 `json:"min_raise"`
	MaxRaise uint64 `json:"max_raise"`

	IndividualMin uint64 `json:"individual_min"`
	IndividualMax uint64 `json:"individual_max"`

	UseWhitelist bool `json:"use_whitelist"`
}

type callerRequest struct {
	Caller string `json:"caller" binding:"required"`
}

type contributeRequest struct {
	Caller string `json:"caller" binding:"required"`
	Amount uint64 `json:"amount" binding:"required"`
}

type whitelistRequest struct {
	Caller string   `json:"caller" binding:"required"`
	Users  []string `json:"users" binding:"required,min=1"`
}

func distributionFromName(name string) launchpad.DistributionType {
	switch name {
	case "fixed_price":
		return launchpad.DistributionFixedPrice
	case "dutch_auction":
		return launchpad.DistributionDutchAuction
	case "fair_launch":
		return launchpad.DistributionFairLaunch
	default:
		return 0
	}
}

func (s *Server) createProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := s.engine.CreateProject(launchpad.Address(req.Caller), launchpad.ProjectConfig{
		Name:          req.Name,
		Symbol:        req.Symbol,
		Token:         req.Token,
		Distribution:  distributionFromName(req.Distribution),
		Duration:      req.Duration,
		TotalTokens:   req.TotalTokens,
		PricePerToken: req.PricePerToken,
		MinPrice:      req.MinPrice,
		MaxPrice:      req.MaxPrice,
		MinRaise:      req.MinRaise,
		MaxRaise:      req.MaxRaise,
		IndividualMin: req.IndividualMin,
		IndividualMax: req.IndividualMax,
		UseWhitelist:  req.UseWhitelist,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"project_id": id})
}

func (s *Server) activateProject(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	var req callerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.engine.ActivateProject(launchpad.Address(req.Caller), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project_id": id, "status": launchpad.StatusActive.String()})
}

func (s *Server) cancelProject(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	var req callerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.engine.CancelProject(launchpad.Address(req.Caller), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project_id": id, "status": launchpad.StatusCanceled.String()})
}

func (s *Server) addParticipants(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	var req whitelistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	users := make([]launchpad.Address, len(req.Users))
	for i, u := range req.Users {
		users[i] = launchpad.Address(u)
	}
	if err := s.engine.AddParticipants(launchpad.Address(req.Caller), id, users); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project_id": id, "added": len(users)})
}

func (s *Server) isWhitelisted(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	admitted, err := s.engine.IsWhitelisted(id, launchpad.Address(c.Param("user")))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project_id": id, "user": c.Param("user"), "whitelisted": admitted})
}

func (s *Server) contribute(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	var req contributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	total, err := s.engine.Contribute(launchpad.Address(req.Caller), id, req.Amount)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project_id": id, "user": req.Caller, "total_contribution": total})
}

func (s *Server) finalize(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	status, err := s.engine.Finalize(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project_id": id, "status": status.String()})
}

func (s *Server) claim(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	var req callerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tokens, err := s.engine.Claim(launchpad.Address(req.Caller), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project_id": id, "user": req.Caller, "tokens": tokens})
}

func (s *Server) refund(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	var req callerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	amount, err := s.engine.Refund(launchpad.Address(req.Caller), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project_id": id, "user": req.Caller, "amount": amount})
}

func (s *Server) getProject(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	p, err := s.engine.GetProject(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	raised, err := s.engine.TotalRaised(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": p, "total_raised": raised})
}

func (s *Server) activeProjects(c *gin.Context) {
	projects, err := s.engine.ActiveProjects()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (s *Server) currentPrice(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	price, err := s.engine.CurrentPrice(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	display := decimal.NewFromUint64(price).Div(decimal.NewFromInt(fixedpoint.Scale))
	c.JSON(http.StatusOK, gin.H{
		"project_id":   id,
		"price_scaled": price,
		"price":        display.String(),
	})
}

func (s *Server) allocation(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	tokens, err := s.engine.Allocation(id, launchpad.Address(c.Param("user")))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project_id": id, "user": c.Param("user"), "tokens": tokens})
}

func projectID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return 0, false
	}
	return id, true
}

// abortWithError maps engine sentinels onto HTTP statuses.
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, launchpad.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, launchpad.ErrUnauthorized),
		errors.Is(err, launchpad.ErrNotWhitelisted):
		status = http.StatusForbidden
	case errors.Is(err, launchpad.ErrInvalidParams),
		errors.Is(err, launchpad.ErrZeroAmount),
		errors.Is(err, launchpad.ErrBelowMinimum),
		errors.Is(err, launchpad.ErrAboveMaximum):
		status = http.StatusBadRequest
	case errors.Is(err, launchpad.ErrAlreadyExists),
		errors.Is(err, launchpad.ErrAlreadyClaimed),
		errors.Is(err, launchpad.ErrAlreadyFinalized),
		errors.Is(err, launchpad.ErrWrongPhase),
		errors.Is(err, launchpad.ErrNotActive),
		errors.Is(err, launchpad.ErrNotEnded),
		errors.Is(err, launchpad.ErrNotCanceled),
		errors.Is(err, launchpad.ErrWindowClosed),
		errors.Is(err, launchpad.ErrWindowOpen),
		errors.Is(err, launchpad.ErrCapReached),
		errors.Is(err, launchpad.ErrNoContribution),
		errors.Is(err, launchpad.ErrCapacityExceeded):
		status = http.StatusConflict
	case errors.Is(err, launchpad.ErrTransferFailed):
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
