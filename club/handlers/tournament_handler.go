package handlers

import (
	"errors"
	"net/http"

	"github.com/Damouche-Billel/4FSC0WE004-Live-Api/club/models"
	"github.com/Damouche-Billel/4FSC0WE004-Live-Api/club/services"
	"github.com/gin-gonic/gin"
)

type TournamentHandler struct {
	tournamentService *services.TournamentService
}

func NewTournamentHandler(tournamentService *services.TournamentService) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: tournamentService,
	}
}

// GetAllTournaments retrieves all tournaments
// @Summary Get all tournaments
// @Description Get all tournaments with teams and their players expanded
// @Tags tournaments
// @Produce json
// @Success 200 {array} models.TournamentResponse
// @Failure 500 {object} map[string]string
// @Router /api/tournaments [get]
func (h *TournamentHandler) GetAllTournaments(c *gin.Context) {
	tournaments, err := h.tournamentService.GetAllTournaments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, tournaments)
}

// GetTournament gets a tournament by ID
// @Summary Get tournament by ID
// @Description Get a tournament with teams and their players expanded
// @Tags tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {object} models.TournamentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/tournaments/{id} [get]
func (h *TournamentHandler) GetTournament(c *gin.Context) {
	id, ok := parseID(c, "Invalid tournament ID")
	if !ok {
		return
	}

	tournament, err := h.tournamentService.GetTournamentByID(id)
	if err != nil {
		if errors.Is(err, services.ErrTournamentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, tournament)
}

// CreateTournament creates a new tournament
// @Summary Create a new tournament
// @Description Create a tournament; every referenced team id must exist
// @Tags tournaments
// @Accept json
// @Produce json
// @Param tournament body models.CreateTournamentRequest true "Tournament data"
// @Success 201 {object} models.TournamentResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/tournaments [post]
func (h *TournamentHandler) CreateTournament(c *gin.Context) {
	var req models.CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tournament, err := h.tournamentService.CreateTournament(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidReference) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, tournament)
}

// UpdateTournament updates a tournament
// @Summary Update tournament
// @Description Update any subset of a tournament's fields, including its status
// @Tags tournaments
// @Accept json
// @Produce json
// @Param id path int true "Tournament ID"
// @Param tournament body models.UpdateTournamentRequest true "Tournament update data"
// @Success 200 {object} models.TournamentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/tournaments/{id} [put]
func (h *TournamentHandler) UpdateTournament(c *gin.Context) {
	id, ok := parseID(c, "Invalid tournament ID")
	if !ok {
		return
	}

	var req models.UpdateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tournament, err := h.tournamentService.UpdateTournament(id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTournamentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidReference), errors.Is(err, services.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, tournament)
}

// DeleteTournament deletes a tournament
// @Summary Delete tournament
// @Description Delete a tournament
// @Tags tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/tournaments/{id} [delete]
func (h *TournamentHandler) DeleteTournament(c *gin.Context) {
	id, ok := parseID(c, "Invalid tournament ID")
	if !ok {
		return
	}

	if err := h.tournamentService.DeleteTournament(id); err != nil {
		if errors.Is(err, services.ErrTournamentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tournament deleted successfully"})
}
