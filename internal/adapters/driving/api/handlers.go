package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
)

// Dispatch actions.
const (
	actionAnswer       = "answer"
	actionDriveContent = "getDriveContent"
)

// maxBodyBytes bounds the answer request body.
const maxBodyBytes = 1 << 20

// search dispatches on the query parameters in a fixed order.
func (s *Server) search(c echo.Context) error {
	ctx := c.Request().Context()
	action := c.QueryParam("action")
	query := c.QueryParam("query")

	if action == actionAnswer {
		req, err := parseAnswerRequest(c)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, s.ports.Answer.Answer(ctx, req))
	}

	fileID, accessToken := c.QueryParam("fileId"), c.QueryParam("accessToken")
	if action == actionDriveContent && fileID != "" && accessToken != "" {
		return c.JSON(http.StatusOK, s.ports.Content.GetDriveContent(ctx, domain.ContentRequest{
			FileID:      fileID,
			AccessToken: accessToken,
			MimeType:    c.QueryParam("mimeType"),
		}))
	}

	if query == "" && action == "" {
		return echo.NewHTTPError(http.StatusBadRequest, domain.ErrQueryRequired.Error())
	}

	switch domain.Source(c.QueryParam("source")) {
	case domain.SourceNotion:
		res, err := s.ports.Search.SearchNotes(ctx, query)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, res)
	case domain.SourceSlack:
		res, err := s.ports.Search.SearchMessages(ctx, query)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, res)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, domain.ErrInvalidSource.Error())
	}
}

// answerBody is the JSON shape of an answer request.
type answerBody struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

// parseAnswerRequest reads {question, context} from the body, or from the
// query parameter when the body is empty. A query that is not JSON is taken
// as the question itself.
func parseAnswerRequest(c echo.Context) (domain.AnswerRequest, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxBodyBytes))
	if err != nil {
		return domain.AnswerRequest{}, fmt.Errorf("read answer body: %w", err)
	}

	if raw := bytes.TrimSpace(body); len(raw) > 0 {
		req, err := decodeAnswer(raw)
		if err != nil {
			return domain.AnswerRequest{}, fmt.Errorf("parse answer body: %w", err)
		}
		return req, nil
	}

	query := c.QueryParam("query")
	if query == "" {
		return domain.AnswerRequest{}, nil
	}
	req, err := decodeAnswer([]byte(query))
	if err != nil {
		return domain.AnswerRequest{Question: query}, nil
	}
	return req, nil
}

// decodeAnswer accepts an object or a JSON string holding an object.
func decodeAnswer(raw []byte) (domain.AnswerRequest, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return domain.AnswerRequest{}, err
		}
		raw = []byte(inner)
	}

	var b answerBody
	if err := json.Unmarshal(raw, &b); err != nil {
		return domain.AnswerRequest{}, err
	}
	return domain.AnswerRequest{Question: b.Question, Context: b.Context}, nil
}
