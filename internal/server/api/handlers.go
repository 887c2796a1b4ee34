package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pairspace/loveos/internal/models"
)

type loginRequest struct {
	Space    string `json:"space"`
	Passcode string `json:"passcode"`
}

type loginResponse struct {
	Token string       `json:"token"`
	Space models.Space `json:"space"`
}

func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}

	token, space, err := s.spaces.Login(c.Request().Context(), req.Space, req.Passcode)
	if err != nil {
		s.logger.Warn(c.Request().Context(), "login failed", "space", req.Space, "error", err)
		return httpError(err)
	}

	return c.JSON(http.StatusOK, loginResponse{Token: token, Space: *space})
}

func (s *Server) handleProfile(c echo.Context) error {
	space, err := s.spaces.Profile(c.Request().Context(), currentSpace(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, space)
}

func (s *Server) handleAnniversary(c echo.Context) error {
	a, err := s.spaces.Anniversary(c.Request().Context(), currentSpace(c), time.Now())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, a)
}

func queryLimit(c echo.Context) int {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return limit
}

func (s *Server) handleListMoods(c echo.Context) error {
	list, err := s.content.ListMoods(c.Request().Context(), queryLimit(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) handleLatestMood(c echo.Context) error {
	author := c.QueryParam("author")
	if author == "" {
		author = currentSpace(c)
	}
	m, err := s.content.LatestMood(c.Request().Context(), author)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, m)
}

type shareMoodRequest struct {
	Emoji    string `json:"emoji"`
	Label    string `json:"label"`
	Color    string `json:"color"`
	Note     string `json:"note"`
	PhotoURL string `json:"photo_url"`
}

func (s *Server) handleShareMood(c echo.Context) error {
	var req shareMoodRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}

	m := &models.MoodEntry{
		Author:   currentSpace(c),
		Emoji:    req.Emoji,
		Label:    req.Label,
		Color:    req.Color,
		Note:     req.Note,
		PhotoURL: req.PhotoURL,
	}
	if err := s.content.ShareMood(c.Request().Context(), m); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, m)
}

func (s *Server) handleListPhotos(c echo.Context) error {
	list, err := s.content.ListPhotos(c.Request().Context(), queryLimit(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

type addPhotoRequest struct {
	ImageURL string `json:"image_url"`
	Caption  string `json:"caption"`
}

func (s *Server) handleAddPhoto(c echo.Context) error {
	var req addPhotoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}
	if req.ImageURL == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "image_url is required")
	}

	p := &models.PhotoEntry{
		ImageURL:   req.ImageURL,
		Caption:    req.Caption,
		UploadedBy: currentSpace(c),
	}
	if err := s.content.AddPhoto(c.Request().Context(), p); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (s *Server) handleListLetters(c echo.Context) error {
	list, err := s.content.ListLetters(c.Request().Context(), queryLimit(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

type sendLetterRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	To      string `json:"to_author"`
}

func (s *Server) handleSendLetter(c echo.Context) error {
	var req sendLetterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}

	l := &models.LetterEntry{
		Title:   req.Title,
		Content: req.Content,
		From:    currentSpace(c),
		To:      req.To,
	}
	if err := s.content.SendLetter(c.Request().Context(), l); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, l)
}

func (s *Server) handleTodaysQuestion(c echo.Context) error {
	q, err := s.content.TodaysQuestion(c.Request().Context(), time.Now())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, q)
}

func (s *Server) handleAnswers(c echo.Context) error {
	list, err := s.content.AnswersFor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

type submitAnswerRequest struct {
	QuestionID string `json:"question_id"`
	Text       string `json:"answer_text"`
}

func (s *Server) handleSubmitAnswer(c echo.Context) error {
	var req submitAnswerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}

	a := &models.AnswerEntry{
		QuestionID: req.QuestionID,
		Author:     currentSpace(c),
		Text:       req.Text,
	}
	if err := s.content.SubmitAnswer(c.Request().Context(), a); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, a)
}

type updateAnswerRequest struct {
	Text string `json:"answer_text"`
}

func (s *Server) handleUpdateAnswer(c echo.Context) error {
	var req updateAnswerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}

	err := s.content.UpdateAnswer(c.Request().Context(), c.Param("id"), currentSpace(c), req.Text)
	if err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
