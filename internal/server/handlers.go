package server

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/julianstephens/thirtyday/internal/constants"
	apperrors "github.com/julianstephens/thirtyday/internal/errors"
	"github.com/julianstephens/thirtyday/internal/models"
)

type registerRequest struct {
	Name string `json:"name"`
}

type shareResponse struct {
	ShareID  string `json:"shareId"`
	ShareURL string `json:"shareUrl"`
}

// sharedView is the public projection of a share; the owner id is left out.
type sharedView struct {
	UserName      string          `json:"userName"`
	Streak        int             `json:"streak"`
	DaysSucceeded int             `json:"daysSucceeded"`
	ShareData     json.RawMessage `json:"shareData"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	return nil
}

func (s *Server) health(c *fiber.Ctx) error {
	if err := s.backend.Health(c.UserContext()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":  "error",
			"message": apperrors.PublicMessage(err),
			"storage": s.backend.StorageName(),
		})
	}
	return c.JSON(fiber.Map{
		"status":  "ok",
		"message": constants.HealthMessage,
		"storage": s.backend.StorageName(),
	})
}

func (s *Server) registerUser(c *fiber.Ctx) error {
	var req registerRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	reg, err := s.backend.RegisterUser(c.UserContext(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(reg)
}

func (s *Server) saveProgress(c *fiber.Ctx) error {
	var update models.ProgressUpdate
	if err := parseBody(c, &update); err != nil {
		return err
	}
	if err := s.backend.SaveProgress(c.UserContext(), update); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

func (s *Server) getProgress(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return apperrors.Validation("userId must be a number")
	}
	p, err := s.backend.GetProgress(c.UserContext(), int64(userID))
	if err != nil {
		return err
	}
	return c.JSON(p)
}

func (s *Server) getLeaderboard(c *fiber.Ctx) error {
	board, err := s.backend.GetLeaderboard(c.UserContext())
	if err != nil {
		return err
	}
	if board == nil {
		board = []models.LeaderboardEntry{}
	}
	return c.JSON(board)
}

func (s *Server) createShare(c *fiber.Ctx) error {
	var req models.ShareRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	share, err := s.backend.CreateShare(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(shareResponse{ShareID: share.ID, ShareURL: share.URL})
}

func (s *Server) getShare(c *fiber.Ctx) error {
	share, err := s.backend.GetShare(c.UserContext(), c.Params("shareId"))
	if err != nil {
		return err
	}
	data := share.Extra
	if len(data) == 0 {
		data = json.RawMessage("{}")
	}
	return c.JSON(sharedView{
		UserName:      share.UserName,
		Streak:        share.Streak,
		DaysSucceeded: share.DaysSucceeded,
		ShareData:     data,
		CreatedAt:     share.CreatedAt,
	})
}

// sharePage is the target of share links: a plain text summary.
func (s *Server) sharePage(c *fiber.Ctx) error {
	share, err := s.backend.GetShare(c.UserContext(), c.Params("shareId"))
	if err != nil {
		return err
	}
	return c.SendString(fmt.Sprintf("%s is on a %d-day streak with %d/%d days succeeded.\n",
		share.UserName, share.Streak, share.DaysSucceeded, constants.ChallengeDays))
}
